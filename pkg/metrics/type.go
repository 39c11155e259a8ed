package metrics

import (
	"github.com/hashicorp/go-hclog"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics binds the registry as well as the metrics collection.
type Metrics struct {
	l hclog.Logger

	r *prometheus.Registry

	httpRequests    *prometheus.CounterVec
	questionsLoaded prometheus.Gauge
}

// Option provides a configuration framework to setup the metrics
// package.
type Option func(m *Metrics)
