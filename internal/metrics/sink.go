package metrics

import (
	"github.com/goodnatureofminers/balanceprobe/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	classifiedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "balanceprobe",
		Subsystem: "sink",
		Name:      "classified_total",
		Help:      "Count of resolved addresses by classification.",
	}, []string{"classification"})

	fundedWritesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "balanceprobe",
		Subsystem: "sink",
		Name:      "funded_writes_total",
		Help:      "Count of funded entry writes by writer and status.",
	}, []string{"writer", "status"})

	checkpointWritesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "balanceprobe",
		Subsystem: "checkpoint",
		Name:      "writes_total",
		Help:      "Count of checkpoint cursor writes.",
	}, []string{"status"})

	checkpointCursor = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "balanceprobe",
		Subsystem: "checkpoint",
		Name:      "cursor",
		Help:      "Highest index below which every task has been recorded.",
	})
)

// Sink tracks result classification and persistence.
type Sink struct{}

func NewSink() *Sink {
	return &Sink{}
}

func (m Sink) ObserveClassification(c model.Classification) {
	classifiedTotal.WithLabelValues(string(c)).Inc()
}

func (m Sink) ObserveFundedWrite(writer string, err error) {
	fundedWritesTotal.WithLabelValues(writer, status(err)).Inc()
}

func (m Sink) ObserveCheckpoint(err error, cursor int) {
	checkpointWritesTotal.WithLabelValues(status(err)).Inc()
	if err == nil {
		checkpointCursor.Set(float64(cursor))
	}
}

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
