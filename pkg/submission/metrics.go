package submission

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/goliatone/go-formgate/pkg/model"
)

// Metrics counts validation passes and field failures. A nil *Metrics records
// nothing.
type Metrics struct {
	passes      *prometheus.CounterVec
	fieldErrors *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with registerer. A nil
// registerer leaves the collectors unregistered.
func NewMetrics(registerer prometheus.Registerer) *Metrics {
	m := &Metrics{
		passes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "formgate_validation_passes_total",
				Help: "Total number of full-form validation passes by result",
			},
			[]string{"result"},
		),
		fieldErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "formgate_field_errors_total",
				Help: "Total number of field validation failures by category and kind",
			},
			[]string{"category", "kind"},
		),
	}
	if registerer != nil {
		registerer.MustRegister(m.passes, m.fieldErrors)
	}
	return m
}

func (m *Metrics) recordPass(allValid bool) {
	if m == nil {
		return
	}
	result := "invalid"
	if allValid {
		result = "valid"
	}
	m.passes.WithLabelValues(result).Inc()
}

func (m *Metrics) recordFieldError(category model.Category, kind model.ErrorKind) {
	if m == nil {
		return
	}
	m.fieldErrors.WithLabelValues(category.String(), string(kind)).Inc()
}
