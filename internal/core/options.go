package core

import (
	"log/slog"
)

// Option configures NewInterface, NewClass, NewChecker and NewRegistry.
type Option func(*config)

// Implements declares the interfaces a class must satisfy when it is defined.
// Calls accumulate. Every value must be an *Interface.
func Implements(types ...Type) Option {
	return func(c *config) {
		c.implements = append(c.implements, types...)
		c.implementsSet = true
	}
}

// WithLogger routes debug records to logger. A nil logger discards them.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithRegistry makes spec lookups use registry instead of the process-wide default.
func WithRegistry(registry *Registry) Option {
	return func(c *config) {
		c.registry = registry
	}
}

type config struct {
	registry      *Registry
	logger        *slog.Logger
	implements    []Type
	implementsSet bool
}

// checker returns a Checker sharing the config's registry and logger.
func (c config) checker() *Checker {
	return &Checker{registry: c.registry, logger: c.logger}
}

// applyOptions fills in defaults after running opts.
func applyOptions(opts []Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.registry == nil {
		cfg.registry = defaultRegistry
	}

	if cfg.logger == nil {
		cfg.logger = discardLogger
	}

	return cfg
}

// unexported variables.
var (
	//nolint:gochecknoglobals // Shared no-op logger
	discardLogger = slog.New(slog.DiscardHandler)
)
