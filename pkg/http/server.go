// Package http serves the trivia question set over HTTP.
package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/hashicorp/go-hclog"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/gizmo-platform/trivia/pkg/metrics"
	"github.com/gizmo-platform/trivia/pkg/question"
	"github.com/gizmo-platform/trivia/pkg/ui"
)

// Welcome is the greeting served at the root of the service.
const Welcome = "Welcome to the Trivia App Backend"

// Server manages the HTTP serving components
type Server struct {
	r   chi.Router
	n   *http.Server
	l   hclog.Logger
	m   *metrics.Metrics
	ui  *ui.Renderer
	set *question.Set

	featuredBody  []byte
	questionsBody []byte
}

// NewServer returns a server ready to answer for the configured
// question set.  If no set is provided the builtin one is served.
func NewServer(opts ...Option) (*Server, error) {
	x := new(Server)
	x.r = chi.NewRouter()
	x.n = &http.Server{}
	x.l = hclog.NewNullLogger()

	for _, o := range opts {
		if err := o(x); err != nil {
			return nil, err
		}
	}

	if x.set == nil {
		x.set = question.Builtin()
	}
	if x.m == nil {
		x.m = metrics.New(metrics.WithLogger(x.l))
	}
	if x.ui == nil {
		x.ui = ui.New(ui.WithLogger(x.l))
	}

	var err error
	x.featuredBody, err = json.Marshal(x.set.Featured())
	if err != nil {
		return nil, fmt.Errorf("encode featured question: %w", err)
	}
	x.questionsBody, err = json.Marshal(x.set.Questions())
	if err != nil {
		return nil, fmt.Errorf("encode questions: %w", err)
	}
	x.m.SetQuestionsLoaded(x.set.Len())

	x.r.Use(x.requestID)
	x.r.Use(middleware.RealIP)
	x.r.Use(x.observe)
	x.r.Use(middleware.Recoverer)

	x.r.Handle("/metrics", x.m.Handler())
	x.r.Get("/healthz", x.healthz)

	x.r.Get("/", x.welcome)
	x.r.Get("/quiz", x.featuredQuestion)
	x.r.Get("/trivia", x.featuredQuestion)
	x.r.Get("/play", x.play)
	x.r.Route("/api", func(r chi.Router) {
		r.Get("/questions", x.allQuestions)
	})

	return x, nil
}

// ServeHTTP lets the server be mounted or tested without a socket.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.r.ServeHTTP(w, r)
}

// Serve binds and serves http on the bound socket.  An error will be
// returned if the server cannot initialize.  Failure to bind is
// reported before any request is served.
func (s *Server) Serve(bind string) error {
	ln, err := net.Listen("tcp", bind)
	if err != nil {
		s.l.Error("Could not bind", "bind", bind, "error", err)
		return err
	}
	return s.ServeListener(ln)
}

// ServeListener serves http on an already bound listener.
func (s *Server) ServeListener(ln net.Listener) error {
	s.l.Info("HTTP is starting", "address", ln.Addr().String())
	s.n.Handler = s.r
	return s.n.Serve(ln)
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.l.Info("Stopping...")
	return s.n.Shutdown(ctx)
}

// Registry returns the prometheus registry backing /metrics so other
// components can register collectors alongside the server's own.
func (s *Server) Registry() *prometheus.Registry {
	return s.m.Registry()
}
