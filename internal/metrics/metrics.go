// Package metrics provides Prometheus metrics for phenoval codec operations
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// CodecMetrics holds the instruments recorded by the wire codec. A nil
// *CodecMetrics is valid and records nothing, so the codec never has
// to branch on whether the embedding application wants metrics.
type CodecMetrics struct {
	EncodesTotal *prometheus.CounterVec
	DecodesTotal *prometheus.CounterVec
	EncodedBytes prometheus.Histogram
	DecodedBytes prometheus.Histogram
}

// NewCodecMetrics creates and registers codec metrics with reg. Pass
// prometheus.DefaultRegisterer for the default registry; a library
// must never register into the default registry on its own.
func NewCodecMetrics(reg prometheus.Registerer) *CodecMetrics {
	factory := promauto.With(reg)

	m := &CodecMetrics{}

	m.EncodesTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "phenoval_encodes_total",
			Help: "Total number of attribute value encodes",
		},
		[]string{"status"},
	)

	m.DecodesTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "phenoval_decodes_total",
			Help: "Total number of attribute value decodes",
		},
		[]string{"status"},
	)

	m.EncodedBytes = factory.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "phenoval_encoded_bytes",
			Help:    "Size of encoded attribute value buffers in bytes",
			Buckets: prometheus.ExponentialBuckets(16, 4, 10),
		},
	)

	m.DecodedBytes = factory.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "phenoval_decoded_bytes",
			Help:    "Size of decoded attribute value buffers in bytes",
			Buckets: prometheus.ExponentialBuckets(16, 4, 10),
		},
	)

	return m
}

// ObserveEncode records one encode outcome.
func (m *CodecMetrics) ObserveEncode(size int, err error) {
	if m == nil {
		return
	}
	if err != nil {
		m.EncodesTotal.WithLabelValues("error").Inc()
		return
	}
	m.EncodesTotal.WithLabelValues("ok").Inc()
	m.EncodedBytes.Observe(float64(size))
}

// ObserveDecode records one decode outcome.
func (m *CodecMetrics) ObserveDecode(size int, err error) {
	if m == nil {
		return
	}
	if err != nil {
		m.DecodesTotal.WithLabelValues("error").Inc()
		return
	}
	m.DecodesTotal.WithLabelValues("ok").Inc()
	m.DecodedBytes.Observe(float64(size))
}
