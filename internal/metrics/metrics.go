// Package metrics defines the counters exposed by the encoder and the decoder.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// UnknownKinds counts values encoded as null because their type is not supported.
	UnknownKinds = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "kjson",
		Subsystem: "encoder",
		Name:      "unknown_kind_total",
		Help:      "Number of values encoded as null because their kind is not supported.",
	})

	// EncodeErrors counts failed encodings.
	EncodeErrors = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "kjson",
		Name:      "encode_errors_total",
		Help:      "Number of encodings that returned an error.",
	})

	// DecodeErrors counts failed decodings.
	DecodeErrors = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "kjson",
		Name:      "decode_errors_total",
		Help:      "Number of decodings that returned an error.",
	})
)

// Collectors returns every collector of this package.
func Collectors() []prometheus.Collector {
	return []prometheus.Collector{UnknownKinds, EncodeErrors, DecodeErrors}
}
