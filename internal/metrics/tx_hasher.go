package metrics

import (
	"strconv"
	"time"

	"github.com/hoodrunio/babylon-staker-indexer/internal/txid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	txHashTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "tx_hasher",
		Name:      "computations_total",
		Help:      "Count of transaction hash computations by outcome.",
	}, []string{"witness", "result"})
	txHashDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "tx_hasher",
		Name:      "computation_duration_seconds",
		Help:      "Duration of transaction hash computations.",
		Buckets:   []float64{.00001, .00005, .0001, .0005, .001, .005, .01, .05},
	}, []string{"witness"})
)

// TxHasher tracks transaction hash computations.
type TxHasher struct{}

// NewTxHasher constructs a TxHasher metrics collector.
func NewTxHasher() *TxHasher {
	return &TxHasher{}
}

// Observe records the outcome of one computation, labelled by error kind.
func (m TxHasher) Observe(witness bool, err error, started time.Time) {
	w := strconv.FormatBool(witness)
	txHashTotal.WithLabelValues(w, txid.Kind(err)).Inc()
	txHashDuration.WithLabelValues(w).Observe(time.Since(started).Seconds())
}
