// Package metrics provides an abstract interface for recording metrics,
// with a Prometheus implementation.
//
//	m := metrics.NewPrometheusMetrics(prometheus.NewRegistry())
//	m.RegisterWithLabels("numbername_conversions_total", "Counter", "Conversions by tier", []string{"tier", "mode"})
//	m.RecordWithLabels("numbername_conversions_total", 1, "hundred", "kata")
package metrics

type Metrics interface {
	Register(name, metricType, help string)
	Record(name string, value float64)
	RegisterWithLabels(name, metricType, help string, labels []string)
	RecordWithLabels(name string, value float64, labelValues ...string)
}

// Names of the metrics recorded by the numbername service.
const (
	ConversionsTotal   = "numbername_conversions_total"
	ConversionErrors   = "numbername_conversion_errors_total"
	CacheHitsTotal     = "numbername_cache_hits_total"
	ConversionDuration = "numbername_conversion_duration_seconds"
	CacheEnabled       = "numbername_cache_enabled"
)

// ConversionDurationBuckets suits requests that mostly finish well under a
// millisecond, with a tail for Redis round trips.
var ConversionDurationBuckets = []float64{0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.05, 0.25}

// RegisterServiceMetrics registers every metric the numbername service records.
func RegisterServiceMetrics(m Metrics) {
	m.RegisterWithLabels(ConversionsTotal, "Counter", "Number of successful conversions", []string{"tier", "mode"})
	m.RegisterWithLabels(ConversionErrors, "Counter", "Number of rejected conversion requests", []string{"errcode"})
	m.Register(CacheHitsTotal, "Counter", "Number of names served from the cache")
	m.Register(ConversionDuration, "Histogram", "Time taken to handle a conversion request")
	m.Register(CacheEnabled, "Gauge", "1 when names are cached in Redis, 0 otherwise")
}
