package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	clickhouseRepositoryRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "balanceprobe",
		Subsystem: "clickhouse_repository",
		Name:      "operations_total",
		Help:      "Count of repository operations.",
	}, []string{"operation", "status"})
	clickhouseRepositoryRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "balanceprobe",
		Subsystem: "clickhouse_repository",
		Name:      "operation_duration_seconds",
		Help:      "Duration of repository operations.",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 15, 20, 30},
	}, []string{"operation", "status"})
	clickhouseRepositoryRows = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "balanceprobe",
		Subsystem: "clickhouse_repository",
		Name:      "rows_total",
		Help:      "Rows handed to the repository by operation and status.",
	}, []string{"operation", "status"})
)

// ClickhouseRepository tracks metrics for ClickHouse repository operations.
type ClickhouseRepository struct{}

// NewClickhouseRepository creates a ClickhouseRepository metrics collector.
func NewClickhouseRepository() *ClickhouseRepository {
	return &ClickhouseRepository{}
}

// Observe records duration and status of a repository operation.
func (m ClickhouseRepository) Observe(operation string, rows int, err error, started time.Time) {
	s := status(err)
	clickhouseRepositoryRequestsTotal.WithLabelValues(operation, s).Inc()
	clickhouseRepositoryRequestDuration.WithLabelValues(operation, s).Observe(time.Since(started).Seconds())
	clickhouseRepositoryRows.WithLabelValues(operation, s).Add(float64(rows))
}
