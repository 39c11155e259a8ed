// Package ui renders the human-facing pages of the trivia service.
package ui

import (
	"embed"
	"io"
	"io/fs"

	"github.com/flosch/pongo2/v6"
	"github.com/hashicorp/go-hclog"

	"github.com/gizmo-platform/trivia/pkg/buildinfo"
	"github.com/gizmo-platform/trivia/pkg/question"
)

//go:embed p2/*
var p2fs embed.FS

// Renderer wraps the template set so that pages can be drawn from
// anywhere that has a Set to show.
type Renderer struct {
	l   hclog.Logger
	tpl *pongo2.TemplateSet
}

// Option configures the Renderer.
type Option func(*Renderer)

// WithLogger sets the logger for the renderer.
func WithLogger(l hclog.Logger) Option {
	return func(r *Renderer) {
		r.l = l.Named("ui")
	}
}

// New returns a Renderer backed by the embedded templates.
func New(opts ...Option) *Renderer {
	sub, _ := fs.Sub(p2fs, "p2")

	x := &Renderer{
		l:   hclog.NewNullLogger(),
		tpl: pongo2.NewSet("html", pongo2.NewFSLoader(sub)),
	}
	for _, o := range opts {
		o(x)
	}
	return x
}

// Play writes the page listing every question in the set.
func (r *Renderer) Play(w io.Writer, s *question.Set) error {
	return r.render(w, "play.p2", pongo2.Context{
		"featured":  s.Featured(),
		"questions": s.Questions(),
		"version":   buildinfo.Version,
	})
}

func (r *Renderer) render(w io.Writer, tmpl string, ctx pongo2.Context) error {
	t, err := r.tpl.FromCache(tmpl)
	if err != nil {
		r.l.Error("Could not load template", "template", tmpl, "error", err)
		return err
	}
	if err := t.ExecuteWriter(ctx, w); err != nil {
		r.l.Error("Could not render template", "template", tmpl, "error", err)
		return err
	}
	return nil
}
