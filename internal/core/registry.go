package core

import (
	"log/slog"
	"sync"
)

// Registry memoizes interface specs by interface identity.
// Entries are never invalidated: interfaces are immutable once defined.
// It is safe for concurrent use. The zero value is an empty registry that
// logs nowhere.
type Registry struct {
	mu     sync.Mutex
	specs  map[*Interface]*Spec
	logger *slog.Logger
}

// Len returns the number of cached specs.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.specs)
}

// Spec returns the full spec of iface, computing and caching it on first use.
// Repeated calls for the same interface return the same *Spec.
func (r *Registry) Spec(iface *Interface) *Spec {
	r.mu.Lock()
	defer r.mu.Unlock()

	if spec, ok := r.specs[iface]; ok {
		return spec
	}

	if r.specs == nil {
		r.specs = make(map[*Interface]*Spec)
	}

	spec := extractSpec(iface, modeFull)
	r.specs[iface] = spec

	logger := r.logger
	if logger == nil {
		logger = discardLogger
	}

	logger.Debug("cached interface spec",
		slog.String("interface", iface.Name()),
		slog.Int("members", spec.Len()),
	)

	return spec
}

// DefaultRegistry returns the process-wide registry used when no WithRegistry option is given.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// NewRegistry creates an empty registry. Only WithLogger is honoured.
func NewRegistry(opts ...Option) *Registry {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	logger := cfg.logger
	if logger == nil {
		logger = discardLogger
	}

	return &Registry{
		specs:  make(map[*Interface]*Spec),
		logger: logger,
	}
}

// unexported variables.
var (
	//nolint:gochecknoglobals // Process-wide spec cache; interfaces live for the whole process
	defaultRegistry = NewRegistry()
)
