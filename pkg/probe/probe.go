// Package probe waits for a trivia service to start answering.  It
// is meant for container health checks and deploy scripts.
package probe

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/hashicorp/go-hclog"
)

// Prober polls a service until it is healthy.
type Prober struct {
	l       hclog.Logger
	c       *http.Client
	path    string
	maxAge  time.Duration
	initial time.Duration
}

// Option configures the Prober.
type Option func(*Prober)

// WithLogger sets the logger for the prober.
func WithLogger(l hclog.Logger) Option { return func(p *Prober) { p.l = l.Named("probe") } }

// WithClient replaces the http client used to poll.
func WithClient(c *http.Client) Option { return func(p *Prober) { p.c = c } }

// WithPath changes the path that is polled, by default /healthz.
func WithPath(path string) Option { return func(p *Prober) { p.path = path } }

// WithMaxElapsed bounds the total time spent waiting.
func WithMaxElapsed(d time.Duration) Option { return func(p *Prober) { p.maxAge = d } }

// WithInitialInterval sets the first delay between attempts.
func WithInitialInterval(d time.Duration) Option { return func(p *Prober) { p.initial = d } }

// New returns a Prober with the given options applied.
func New(opts ...Option) *Prober {
	x := &Prober{
		l:       hclog.NewNullLogger(),
		c:       &http.Client{Timeout: 2 * time.Second},
		path:    "/healthz",
		maxAge:  30 * time.Second,
		initial: 100 * time.Millisecond,
	}
	for _, o := range opts {
		o(x)
	}
	return x
}

// Wait polls base+path until it answers 200 OK, the context is done,
// or the maximum elapsed time has passed.
func (p *Prober) Wait(ctx context.Context, base string) error {
	url := strings.TrimSuffix(base, "/") + p.path

	check := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return backoff.Permanent(err)
		}
		resp, err := p.c.Do(req)
		if err != nil {
			return err
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("unexpected status %d", resp.StatusCode)
		}
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = p.initial
	bo.MaxElapsedTime = p.maxAge

	notify := func(err error, next time.Duration) {
		p.l.Debug("Service not ready", "url", url, "error", err, "retry", next)
	}

	if err := backoff.RetryNotify(check, backoff.WithContext(bo, ctx), notify); err != nil {
		return fmt.Errorf("service at %s not ready: %w", url, err)
	}
	p.l.Info("Service is ready", "url", url)
	return nil
}
