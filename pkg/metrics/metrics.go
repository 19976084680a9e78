package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	LabelLabel    = "label"
	FormLabel     = "form"
	Outcome       = "outcome"
	Succeeded     = "succeeded"
	Failed        = "failed"
	Unsatisfiable = "unsatisfiable"
	Exhausted     = "exhausted"
	Cancelled     = "cancelled"
)

// Recorder receives the measurements of a synthesis run.
type Recorder interface {
	// ObserveAttempt records one solver session of an attempt.
	ObserveAttempt(form, outcome string, duration time.Duration)
	// ObserveLabel records the final outcome for one precise label.
	ObserveLabel(label, outcome string, attempts, objective int)
}

type recorder struct{}

// NewRecorder returns a Recorder backed by the collectors of this
// package. They only show up on a registry after RegisterSynthesis.
func NewRecorder() Recorder {
	return recorder{}
}

func (recorder) ObserveAttempt(form, outcome string, duration time.Duration) {
	attemptCount.WithLabelValues(form, outcome).Inc()
	solveSummary.WithLabelValues(outcome).Observe(duration.Seconds())
}

func (recorder) ObserveLabel(label, outcome string, attempts, objective int) {
	labelCount.WithLabelValues(outcome).Inc()
	attemptsPerLabel.Observe(float64(attempts))
	if outcome == Succeeded {
		predicateObjective.WithLabelValues(label).Set(float64(objective))
	} else {
		predicateObjective.DeleteLabelValues(label)
	}
}

type RecorderNil struct{}

func NewRecorderNil() Recorder {
	return &RecorderNil{}
}

func (*RecorderNil) ObserveAttempt(_, _ string, _ time.Duration) {}

func (*RecorderNil) ObserveLabel(_, _ string, _, _ int) {}

// To add new metrics:
// 1. Register new metrics in RegisterSynthesis() below.
// 2. Update them from a Recorder method.
var (
	attemptCount = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "synthesis_attempts_total",
			Help: "Monotonic count of solver sessions, by normal form and outcome",
		},
		[]string{FormLabel, Outcome},
	)

	labelCount = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "synthesis_labels_total",
			Help: "Monotonic count of precise labels processed, by outcome",
		},
		[]string{Outcome},
	)

	attemptsPerLabel = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "synthesis_attempts_per_label",
			Help:    "Number of grammar sizes tried before a label was settled",
			Buckets: prometheus.LinearBuckets(1, 1, 10),
		},
	)

	predicateObjective = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "synthesis_predicate_objective",
			Help: "Number of active grammar occurrences in the predicate synthesized for a label",
		},
		[]string{LabelLabel},
	)

	solveSummary = prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name:       "synthesis_solve_duration_seconds",
			Help:       "The duration of a solver session",
			Objectives: map[float64]float64{0.95: 0.05, 0.9: 0.01, 0.99: 0.001},
		},
		[]string{Outcome},
	)
)

var registerOnce sync.Once

// RegisterSynthesis registers the synthesis collectors with the
// default registry. Later calls are no-ops.
func RegisterSynthesis() {
	registerOnce.Do(func() {
		prometheus.MustRegister(attemptCount)
		prometheus.MustRegister(labelCount)
		prometheus.MustRegister(attemptsPerLabel)
		prometheus.MustRegister(predicateObjective)
		prometheus.MustRegister(solveSummary)
	})
}

// WriteTextfile writes every metric of the default registry to path in
// the text exposition format.
func WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, prometheus.DefaultGatherer)
}
