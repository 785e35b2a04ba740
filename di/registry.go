package di

import (
	"sort"
	"sync"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/weatherdi/errors"
	"github.com/kbukum/weatherdi/logger"
	"github.com/kbukum/weatherdi/observability"
)

const instrumentationName = "github.com/kbukum/weatherdi/di"

// Key identifies a capability or service in the registry.
type Key string

// Dependencies holds the resolved instances a constructor declared, by key.
type Dependencies map[Key]any

// Constructor builds a new instance from its resolved dependencies.
type Constructor func(deps Dependencies) (any, error)

// Binding associates a key with its constructor and the keys it requires.
type Binding struct {
	Key         Key
	Requires    []Key
	Constructor Constructor
}

// Registry collects bindings until Build freezes it into a Resolver.
type Registry struct {
	mu       sync.Mutex
	bindings map[Key]Binding
	frozen   bool
	opts     options
}

// NewRegistry creates an empty registry.
func NewRegistry(opts ...Option) *Registry {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	return &Registry{
		bindings: make(map[Key]Binding),
		opts:     o,
	}
}

// Register adds or replaces the binding for key. The last registration for a
// key wins. Registering after Build returns REGISTRY_FROZEN.
func (r *Registry) Register(key Key, ctor Constructor, requires ...Key) error {
	if key == "" {
		return errors.InvalidBinding(string(key), "key must not be empty")
	}
	if ctor == nil {
		return errors.InvalidBinding(string(key), "constructor must not be nil")
	}
	for _, req := range requires {
		if req == "" {
			return errors.InvalidBinding(string(key), "required key must not be empty")
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.frozen {
		return errors.RegistryFrozen(string(key))
	}
	if _, exists := r.bindings[key]; exists {
		r.log().Debug("Binding replaced", logger.Fields(logger.FieldBinding, string(key)))
	}
	r.bindings[key] = Binding{
		Key:         key,
		Requires:    append([]Key(nil), requires...),
		Constructor: ctor,
	}
	return nil
}

// Has reports whether key currently has a binding.
func (r *Registry) Has(key Key) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.bindings[key]
	return ok
}

// Keys returns the registered keys in sorted order.
func (r *Registry) Keys() []Key {
	r.mu.Lock()
	defer r.mu.Unlock()

	keys := make([]Key, 0, len(r.bindings))
	for k := range r.bindings {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// Build freezes the registry and returns a resolver over a snapshot of its
// bindings. It can be called once.
func (r *Registry) Build() (*Resolver, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.frozen {
		return nil, errors.RegistryFrozen("")
	}
	r.frozen = true

	bindings := make(map[Key]Binding, len(r.bindings))
	for k, b := range r.bindings {
		bindings[k] = b
	}

	id := uuid.New()
	log := r.log().WithFields(logger.Fields(logger.FieldScopeID, id.String()))
	log.Debug("Container built", logger.Fields("bindings", len(bindings)))

	return &Resolver{
		id:       id,
		bindings: bindings,
		log:      log,
		tracer:   r.tracerProvider().Tracer(instrumentationName),
		metrics:  r.containerMetrics(),
	}, nil
}

func (r *Registry) log() *logger.Logger {
	if r.opts.logger != nil {
		return r.opts.logger
	}
	return logger.WithComponent("di")
}

func (r *Registry) tracerProvider() trace.TracerProvider {
	if r.opts.tracerProvider != nil {
		return r.opts.tracerProvider
	}
	return otel.GetTracerProvider()
}

func (r *Registry) containerMetrics() *observability.ContainerMetrics {
	if r.opts.metrics != nil {
		return r.opts.metrics
	}
	m, err := observability.NewContainerMetrics(observability.Meter(instrumentationName))
	if err != nil {
		return nil
	}
	return m
}
