package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds password evaluation metrics
type Metrics struct {
	PasswordEvaluations        *prometheus.CounterVec
	PasswordViolations         *prometheus.CounterVec
	PasswordEvaluationDuration *prometheus.HistogramVec
}

// New creates the password metrics and registers them on reg. A nil reg
// leaves them unregistered, which is what tests want.
func New(namespace string, reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		PasswordEvaluations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "password",
			Name:      "evaluations_total",
			Help:      "Total number of password evaluations by verdict",
		}, []string{"policy", "result"}),
		PasswordViolations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "password",
			Name:      "rule_violations_total",
			Help:      "Total number of broken password rules",
		}, []string{"policy", "rule"}),
		PasswordEvaluationDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "password",
			Name:      "evaluation_duration_seconds",
			Help:      "Time spent evaluating a password",
			Buckets:   []float64{.00001, .00005, .0001, .0005, .001, .005, .01},
		}, []string{"policy"}),
	}

	if reg != nil {
		reg.MustRegister(m.PasswordEvaluations, m.PasswordViolations, m.PasswordEvaluationDuration)
	}
	return m
}

// ObserveEvaluation records one verdict and the rules it broke.
func (m *Metrics) ObserveEvaluation(policy string, valid bool, rules []string, took time.Duration) {
	if m == nil {
		return
	}
	result := "rejected"
	if valid {
		result = "accepted"
	}
	m.PasswordEvaluations.WithLabelValues(policy, result).Inc()
	for _, rule := range rules {
		m.PasswordViolations.WithLabelValues(policy, rule).Inc()
	}
	m.PasswordEvaluationDuration.WithLabelValues(policy).Observe(took.Seconds())
}
