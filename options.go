package kjson

import (
	"github.com/chaisql/kjson/domain"
	"github.com/chaisql/kjson/internal/jsonw"
	"go.uber.org/zap"
)

type options struct {
	domains          domain.Resolver
	logger           *zap.Logger
	maxDecimalPlaces int
}

// An Option configures Marshal and MarshalRow.
type Option func(*options)

// WithDomains sets the resolver of the symbol domains of enumerations.
// Without it, enumerations are written as null.
func WithDomains(r domain.Resolver) Option {
	return func(o *options) {
		o.domains = r
	}
}

// WithLogger sets the logger receiving debug messages about values written as null
// because they are not supported or their domain cannot be resolved.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithMaxDecimalPlaces sets the number of fractional digits kept when writing
// floating-point numbers. Extra digits are truncated. Defaults to 5.
func WithMaxDecimalPlaces(n int) Option {
	return func(o *options) {
		o.maxDecimalPlaces = n
	}
}

func newOptions(opts []Option) *options {
	o := options{
		logger:           zap.NewNop(),
		maxDecimalPlaces: jsonw.DefaultMaxDecimalPlaces,
	}

	for _, opt := range opts {
		opt(&o)
	}

	if o.logger == nil {
		o.logger = zap.NewNop()
	}

	return &o
}
