package ndjsonsrv

import "github.com/prometheus/client_golang/prometheus"

// metrics are the Prometheus series exposed at /metrics, named the way a
// small ingestion service typically would: one counter per outcome, one
// histogram for per-record decode latency so p50/p99 dashboards work out
// of the box.
type metrics struct {
	recordsTotal   *prometheus.CounterVec
	recordBytes    prometheus.Histogram
	decodeDuration prometheus.Histogram
}

func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		recordsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "jsonstream",
			Subsystem: "ndjsonsrv",
			Name:      "records_total",
			Help:      "NDJSON records ingested, labeled by outcome.",
		}, []string{"outcome"}),
		recordBytes: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "jsonstream",
			Subsystem: "ndjsonsrv",
			Name:      "record_bytes",
			Help:      "Approximate encoded size of each ingested record.",
			Buckets:   prometheus.ExponentialBuckets(64, 4, 8),
		}),
		decodeDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "jsonstream",
			Subsystem: "ndjsonsrv",
			Name:      "decode_duration_seconds",
			Help:      "Time to lazily decode and fully materialize one record.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	reg.MustRegister(m.recordsTotal, m.recordBytes, m.decodeDuration)
	return m
}
