package http

import (
	"errors"

	"github.com/hashicorp/go-hclog"

	"github.com/gizmo-platform/trivia/pkg/metrics"
	"github.com/gizmo-platform/trivia/pkg/question"
	"github.com/gizmo-platform/trivia/pkg/ui"
)

// Option enables variadic option passing to the server on startup.
type Option func(*Server) error

// WithLogger sets the logger for the server.
func WithLogger(l hclog.Logger) Option {
	return func(s *Server) error {
		s.l = l.Named("web")
		return nil
	}
}

// WithQuestionSet sets the questions that the server will hand out.
func WithQuestionSet(qs *question.Set) Option {
	return func(s *Server) error {
		if qs == nil {
			return errors.New("question set must not be nil")
		}
		s.set = qs
		return nil
	}
}

// WithMetrics sets the metrics instance that requests are counted
// against and that backs the /metrics endpoint.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Server) error {
		s.m = m
		return nil
	}
}

// WithRenderer sets the template renderer used for the HTML pages.
func WithRenderer(r *ui.Renderer) Option {
	return func(s *Server) error {
		s.ui = r
		return nil
	}
}
