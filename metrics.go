package kjson

import (
	"github.com/chaisql/kjson/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

// RegisterMetrics registers the counters of the package:
// kjson_encoder_unknown_kind_total, kjson_encode_errors_total and kjson_decode_errors_total.
func RegisterMetrics(r prometheus.Registerer) error {
	for _, c := range metrics.Collectors() {
		if err := r.Register(c); err != nil {
			return err
		}
	}

	return nil
}
