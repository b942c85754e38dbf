package observability

import (
	"fmt"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce sync.Once

	decodePackets = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "radiotap",
			Subsystem: "decode",
			Name:      "packets_total",
			Help:      "RadioTap headers decoded, by outcome.",
		},
		[]string{"outcome"},
	)
	decodeFields = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "radiotap",
			Subsystem: "decode",
			Name:      "fields_total",
			Help:      "Present fields in successfully decoded RadioTap headers.",
		},
		[]string{"field"},
	)
	batchDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "radiotap",
			Subsystem: "decode",
			Name:      "batch_duration_seconds",
			Help:      "Wall time to decode one capture.",
			Buckets:   prometheus.DefBuckets,
		},
	)
)

func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(decodePackets, decodeFields, batchDuration)
	})
}

// RecordDecode counts one header decode and, for successes, each of its
// present fields.
func RecordDecode(outcome string, fields []string) {
	RegisterMetrics()
	decodePackets.WithLabelValues(outcome).Inc()
	for _, field := range fields {
		decodeFields.WithLabelValues(field).Inc()
	}
}

func RecordBatch(duration time.Duration) {
	RegisterMetrics()
	batchDuration.Observe(duration.Seconds())
}

// WriteMetrics writes the default registry to path in the text exposition
// format, for the node_exporter textfile collector. The file is replaced
// atomically.
func WriteMetrics(path string) error {
	RegisterMetrics()
	if err := prometheus.WriteToTextfile(path, prometheus.DefaultGatherer); err != nil {
		return fmt.Errorf("metrics write failed (%s): %w", path, err)
	}
	return nil
}
