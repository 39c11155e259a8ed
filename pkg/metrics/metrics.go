package metrics

import (
	"net/http"
	"strconv"

	"github.com/hashicorp/go-hclog"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// New returns an initialized instance of the metrics system.
func New(opts ...Option) *Metrics {
	x := &Metrics{
		l: hclog.NewNullLogger(),
		r: prometheus.NewRegistry(),

		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "trivia",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Requests handled, partitioned by route and status code.",
		}, []string{"route", "code"}),

		questionsLoaded: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "trivia",
			Name:      "questions_loaded",
			Help:      "Number of questions in the served set.",
		}),
	}

	x.r.MustRegister(x.httpRequests)
	x.r.MustRegister(x.questionsLoaded)
	x.r.MustRegister(collectors.NewGoCollector())
	x.r.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	for _, o := range opts {
		o(x)
	}

	return x
}

// Registry provides access to the registry that this instance
// manages.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.r
}

// Handler returns the exposition handler for this registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.r, promhttp.HandlerOpts{Registry: m.r})
}

// ObserveRequest counts a single handled request.
func (m *Metrics) ObserveRequest(route string, code int) {
	if route == "" {
		route = "unmatched"
	}
	m.httpRequests.With(prometheus.Labels{"route": route, "code": strconv.Itoa(code)}).Inc()
}

// SetQuestionsLoaded records how many questions are being served.
func (m *Metrics) SetQuestionsLoaded(n int) {
	m.l.Debug("Questions loaded", "count", n)
	m.questionsLoaded.Set(float64(n))
}
