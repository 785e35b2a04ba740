package inject

import (
	"reflect"
	"sort"
	"sync"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/weatherdi/errors"
	"github.com/kbukum/weatherdi/logger"
	"github.com/kbukum/weatherdi/observability"
)

const instrumentationName = "github.com/kbukum/weatherdi/inject"

var errorType = reflect.TypeFor[error]()

type binding struct {
	typ  reflect.Type
	ctor any
}

// Registry collects typed constructors until Build freezes it.
type Registry struct {
	mu       sync.Mutex
	bindings map[reflect.Type]binding
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
		bindings: make(map[reflect.Type]binding),
		opts:     o,
	}
}

// Bind registers ctor as the constructor for T, replacing any earlier
// binding for T. ctor must be a function whose first result is exactly T,
// optionally followed by an error. Its parameters are resolved as bindings.
func Bind[T any](r *Registry, ctor any) error {
	typ := reflect.TypeFor[T]()
	if err := checkConstructor(typ, ctor); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.frozen {
		return errors.RegistryFrozen(typ.String())
	}
	if _, exists := r.bindings[typ]; exists {
		r.log().Debug("Binding replaced", logger.Fields(logger.FieldBinding, typ.String()))
	}
	r.bindings[typ] = binding{typ: typ, ctor: ctor}
	return nil
}

func checkConstructor(typ reflect.Type, ctor any) error {
	if ctor == nil {
		return errors.InvalidBinding(typ.String(), "constructor must not be nil")
	}
	ft := reflect.TypeOf(ctor)
	if ft.Kind() != reflect.Func {
		return errors.InvalidBinding(typ.String(), "constructor must be a function, got "+ft.String())
	}
	switch {
	case ft.NumOut() == 0 || ft.NumOut() > 2:
		return errors.InvalidBinding(typ.String(), "constructor must return the bound type and an optional error")
	case ft.Out(0) != typ:
		return errors.InvalidBinding(typ.String(), "constructor returns "+ft.Out(0).String())
	case ft.NumOut() == 2 && ft.Out(1) != errorType:
		return errors.InvalidBinding(typ.String(), "second result must be error")
	case ft.IsVariadic():
		return errors.InvalidBinding(typ.String(), "variadic constructors are not supported")
	}
	return nil
}

// Has reports whether T currently has a binding.
func Has[T any](r *Registry) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.bindings[reflect.TypeFor[T]()]
	return ok
}

// Types returns the bound type names in sorted order.
func (r *Registry) Types() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	names := make([]string, 0, len(r.bindings))
	for t := range r.bindings {
		names = append(names, t.String())
	}
	sort.Strings(names)
	return names
}

// Build freezes the registry and returns a resolver over its bindings.
// It can be called once.
func (r *Registry) Build() (*Resolver, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.frozen {
		return nil, errors.RegistryFrozen("")
	}
	r.frozen = true

	bindings := make([]binding, 0, len(r.bindings))
	byType := make(map[reflect.Type]binding, len(r.bindings))
	for t, b := range r.bindings {
		bindings = append(bindings, b)
		byType[t] = b
	}
	// dig is insensitive to Provide order; sorting keeps its errors stable.
	sort.Slice(bindings, func(i, j int) bool { return bindings[i].typ.String() < bindings[j].typ.String() })

	id := uuid.New()
	log := r.log().WithFields(logger.Fields(logger.FieldScopeID, id.String()))
	log.Debug("Container built", logger.Fields("bindings", len(bindings)))

	return &Resolver{
		id:       id,
		bindings: bindings,
		byType:   byType,
		log:      log,
		tracer:   r.tracerProvider().Tracer(instrumentationName),
		metrics:  r.containerMetrics(),
	}, nil
}

func (r *Registry) log() *logger.Logger {
	if r.opts.logger != nil {
		return r.opts.logger
	}
	return logger.WithComponent("inject")
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
