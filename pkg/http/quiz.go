package http

import (
	"bytes"
	"fmt"
	"net/http"
)

func (s *Server) welcome(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprint(w, Welcome)
}

func (s *Server) healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprint(w, "ok")
}

func (s *Server) featuredQuestion(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.featuredBody)
}

func (s *Server) allQuestions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.questionsBody)
}

func (s *Server) play(w http.ResponseWriter, r *http.Request) {
	// Render into a buffer so a template failure can still become a
	// proper error status.
	var buf bytes.Buffer
	if err := s.ui.Play(&buf, s.set); err != nil {
		s.l.Warn("Could not render play page", "error", err)
		http.Error(w, "Error while rendering page", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

func writeJSON(w http.ResponseWriter, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}
