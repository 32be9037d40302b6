package observability

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce sync.Once

	payloadDecodes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "satorigw",
			Subsystem: "protocol",
			Name:      "decodes_total",
			Help:      "Total payload decode attempts.",
		},
		[]string{"opcode", "outcome"},
	)
	contentDegrades = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "satorigw",
			Subsystem: "protocol",
			Name:      "content_degrades_total",
			Help:      "Messages that arrived without a content field and got the sentinel.",
		},
	)
)

func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(payloadDecodes, contentDegrades)
	})
}

// RecordDecode counts one decode attempt. The opcode label is the opcode name
// when the envelope got that far, or "invalid" when it did not.
func RecordDecode(opcode string, err error) {
	RegisterMetrics()
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	payloadDecodes.WithLabelValues(opcode, outcome).Inc()
}

func RecordContentDegrade() {
	RegisterMetrics()
	contentDegrades.Inc()
}
