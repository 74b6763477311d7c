package sequence

import (
	"go.llib.dev/frameless/pkg/logging"
	"go.llib.dev/frameless/pkg/zerokit"
	"go.llib.dev/frameless/port/option"
)

// Config is the shared store configuration.
type Config struct {
	// Indexing is the index normalisation policy.
	//
	// Default: DefaultIndexing
	Indexing Indexing
	// Logger receives debug level events about growth and teardown.
	// When nil, the store is silent.
	Logger *logging.Logger
}

// Configure makes Config usable as an Option.
func (c Config) Configure(t *Config) {
	t.Indexing = zerokit.Coalesce(c.Indexing, t.Indexing)
	if c.Logger != nil {
		t.Logger = c.Logger
	}
}

// GetIndexing returns the configured Indexing or the DefaultIndexing.
func (c Config) GetIndexing() Indexing {
	return zerokit.Coalesce(c.Indexing, DefaultIndexing)
}

// Option configures a store.
type Option option.Option[Config]

// WithIndexing sets the index normalisation policy.
func WithIndexing(ix Indexing) Option {
	return option.Func[Config](func(c *Config) {
		c.Indexing = ix
	})
}

// WithLogger sets the logger used for debug events.
func WithLogger(l *logging.Logger) Option {
	return option.Func[Config](func(c *Config) {
		c.Logger = l
	})
}

// ToConfig collects the options into a Config.
func ToConfig(opts []Option) Config {
	return option.ToConfig[Config, Option](opts)
}
