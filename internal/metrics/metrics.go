// Package metrics defines the Prometheus instrumentation for the validation service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	ValidationsValid      prometheus.Counter
	ValidationsInvalid    prometheus.Counter
	IdentifiersBuilt      prometheus.Counter
	IdentifiersRegistered prometheus.Counter
}

// New creates all metrics and registers them with reg. Pass
// prometheus.DefaultRegisterer in production; tests should use a fresh
// prometheus.NewRegistry to avoid duplicate registration.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		ValidationsValid: factory.NewCounter(prometheus.CounterOpts{
			Name: "lei_validations_valid_total",
			Help: "Total number of candidate identifiers that passed validation",
		}),
		ValidationsInvalid: factory.NewCounter(prometheus.CounterOpts{
			Name: "lei_validations_invalid_total",
			Help: "Total number of candidate identifiers rejected by validation",
		}),
		IdentifiersBuilt: factory.NewCounter(prometheus.CounterOpts{
			Name: "lei_identifiers_built_total",
			Help: "Total number of identifiers assembled from parts",
		}),
		IdentifiersRegistered: factory.NewCounter(prometheus.CounterOpts{
			Name: "lei_identifiers_registered_total",
			Help: "Total number of identifiers added to the roster",
		}),
	}
}

// ObserveValidation increments the counter matching a validation outcome.
func (m *Metrics) ObserveValidation(valid bool) {
	if valid {
		m.ValidationsValid.Inc()
	} else {
		m.ValidationsInvalid.Inc()
	}
}

// IncrementIdentifiersBuilt increments the built-identifiers counter by 1.
func (m *Metrics) IncrementIdentifiersBuilt() {
	m.IdentifiersBuilt.Inc()
}

// IncrementIdentifiersRegistered increments the registered-identifiers counter by 1.
func (m *Metrics) IncrementIdentifiersRegistered() {
	m.IdentifiersRegistered.Inc()
}
