// Package observability owns the Prometheus registry of a bibcheck run and
// exports it for the node exporter textfile collector.
package observability

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/Kaan0029/jabref/internal/errors"
	"github.com/Kaan0029/jabref/internal/logger"
	"github.com/Kaan0029/jabref/internal/observability/metrics"
)

// Metrics holds all the metric collectors for the application.
type Metrics struct {
	registry *prometheus.Registry
	Check    *metrics.CheckMetrics
}

// NewMetrics creates a registry and registers every collector on it.
func NewMetrics() (*Metrics, error) {
	registry := prometheus.NewRegistry()

	checkMetrics, err := metrics.NewCheckMetrics(registry)
	if err != nil {
		return nil, errors.New(fmt.Errorf("failed to create check metrics: %w", err)).
			Component("observability").
			Category(errors.CategoryMetrics).
			Build()
	}

	return &Metrics{
		registry: registry,
		Check:    checkMetrics,
	}, nil
}

// Registry returns the registry all collectors are registered on
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// WriteTextfile writes all metrics to path in the text exposition format.
// The file is written to a temporary file and renamed into place.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return errors.New(fmt.Errorf("failed to write metrics textfile: %w", err)).
			Component("observability").
			Category(errors.CategoryMetrics).
			FileContext(path, 0).
			Build()
	}

	GetLogger().Debug("metrics textfile written", logger.String("path", path))
	return nil
}
