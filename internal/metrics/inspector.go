package metrics

import (
	"strconv"
	"time"

	"github.com/hoodrunio/babylon-staker-indexer/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	inspectionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "inspector",
		Name:      "inspections_total",
		Help:      "Count of transaction inspections.",
	}, []string{"network", "status", "valid"})
	inspectionDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "inspector",
		Name:      "inspection_duration_seconds",
		Help:      "Duration of transaction inspections.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})
)

// Inspector tracks transaction inspections.
type Inspector struct {
	network model.Network
}

// NewInspector constructs an Inspector metrics collector.
func NewInspector(network model.Network) *Inspector {
	return &Inspector{network: orUnknown(network)}
}

// Observe records one inspection.
func (m Inspector) Observe(err error, valid bool, started time.Time) {
	status := statusOf(err)

	inspectionsTotal.WithLabelValues(string(m.network), status, strconv.FormatBool(valid)).Inc()
	inspectionDuration.WithLabelValues(string(m.network), status).Observe(time.Since(started).Seconds())
}
