package calculatorapplication

import "github.com/prometheus/client_golang/prometheus"

var (
	computationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "calculator_computations_total",
			Help: "Total number of successful computations.",
		},
		[]string{"operator"},
	)

	noticesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "calculator_notices_total",
			Help: "Computations rejected with a user-facing notice.",
		},
		[]string{"reason"},
	)

	historyWriteFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "calculator_history_write_failures_total",
			Help: "History writes or removals the blob store refused.",
		},
	)
)

func init() {
	prometheus.MustRegister(computationsTotal)
	prometheus.MustRegister(noticesTotal)
	prometheus.MustRegister(historyWriteFailures)
}
