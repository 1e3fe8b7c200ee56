package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Result labels for calculation counters.
const (
	ResultOK      = "ok"
	ResultInvalid = "invalid"
)

var (
	payloadCalculationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scoped_payload_calculations_total",
			Help: "Total number of payload capacity calculations.",
		},
		[]string{"result"},
	)

	payloadCapacityKg = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "scoped_payload_capacity_kg",
			Help: "Most recently computed payload capacity in kilograms.",
		},
	)

	countdownCalculationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scoped_countdown_calculations_total",
			Help: "Total number of days-until-launch calculations.",
		},
		[]string{"result"},
	)

	daysUntilLaunch = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "scoped_days_until_launch",
			Help: "Most recently computed calendar days until launch.",
		},
	)
)

func init() {
	prometheus.MustRegister(payloadCalculationsTotal)
	prometheus.MustRegister(payloadCapacityKg)
	prometheus.MustRegister(countdownCalculationsTotal)
	prometheus.MustRegister(daysUntilLaunch)
}

// RecordPayload counts a payload calculation and, on success, records its
// result.
func RecordPayload(kg float64, err error) {
	if err != nil {
		payloadCalculationsTotal.WithLabelValues(ResultInvalid).Inc()
		return
	}
	payloadCalculationsTotal.WithLabelValues(ResultOK).Inc()
	payloadCapacityKg.Set(kg)
}

// RecordCountdown counts a days-until-launch calculation and, on success,
// records its result.
func RecordCountdown(days int, err error) {
	if err != nil {
		countdownCalculationsTotal.WithLabelValues(ResultInvalid).Inc()
		return
	}
	countdownCalculationsTotal.WithLabelValues(ResultOK).Inc()
	daysUntilLaunch.Set(float64(days))
}

// WriteTextfile writes all registered metrics to path in the Prometheus text
// format, for pickup by the node exporter textfile collector. The file is
// replaced atomically.
func WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, prometheus.DefaultGatherer)
}
