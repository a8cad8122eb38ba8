package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/ChicagoDave/bodycomp/pkg/calc"
	"github.com/ChicagoDave/bodycomp/pkg/navy"
	"github.com/ChicagoDave/bodycomp/pkg/validation"
)

const namespace = "bodycomp"

// Outcome labels for CalculationsTotal.
const (
	OutcomeOK      = "ok"
	OutcomeInvalid = "invalid"
	OutcomeDomain  = "domain"
	OutcomeError   = "error"
)

// Metrics holds the calculator's Prometheus collectors.
type Metrics struct {
	CalculationsTotal *prometheus.CounterVec
	BodyFatCategory   *prometheus.CounterVec
	BMICategory       *prometheus.CounterVec
	ClampedTotal      prometheus.Counter
}

// New registers the collectors on reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		CalculationsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "calculations_total",
			Help:      "Count of calculations by outcome.",
		}, []string{"outcome"}),

		BodyFatCategory: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "body_fat_category_total",
			Help:      "Count of successful calculations by gender and body fat category.",
		}, []string{"gender", "category"}),

		BMICategory: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bmi_category_total",
			Help:      "Count of successful calculations by BMI category.",
		}, []string{"category"}),

		ClampedTotal: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "clamped_total",
			Help:      "Count of estimates clamped to the 2-60% range.",
		}),
	}
}

// Observe records one calculation outcome.
func (m *Metrics) Observe(res calc.Result, err error) {
	m.CalculationsTotal.WithLabelValues(Outcome(err)).Inc()
	if err != nil {
		return
	}
	m.BodyFatCategory.WithLabelValues(string(res.Measurements.Gender), string(res.BodyFatCategory)).Inc()
	m.BMICategory.WithLabelValues(string(res.BMICategory)).Inc()
	if res.Clamped {
		m.ClampedTotal.Inc()
	}
}

// Outcome classifies a calculation error for labelling.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, validation.ErrInvalidInput):
		return OutcomeInvalid
	case errors.Is(err, navy.ErrUndefinedLog):
		return OutcomeDomain
	}
	return OutcomeError
}
