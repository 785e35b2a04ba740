package inject

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"reflect"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/dig"

	"github.com/kbukum/weatherdi/errors"
	"github.com/kbukum/weatherdi/logger"
	"github.com/kbukum/weatherdi/observability"
)

// Resolver constructs instances from a frozen set of typed bindings.
// It is safe for concurrent use.
type Resolver struct {
	id       uuid.UUID
	bindings []binding
	byType   map[reflect.Type]binding
	log      *logger.Logger
	tracer   trace.Tracer
	metrics  *observability.ContainerMetrics

	mu      sync.Mutex
	closed  bool
	closers []io.Closer
}

// ScopeID returns the identifier attached to this resolver's logs and spans.
func (r *Resolver) ScopeID() string {
	return r.id.String()
}

// Resolve constructs a new instance of typ and all of its dependencies.
func (r *Resolver) Resolve(ctx context.Context, typ reflect.Type) (any, error) {
	start := time.Now()
	ctx, span := r.tracer.Start(ctx, "di.resolve", trace.WithAttributes(
		attribute.String(observability.AttrBinding, typ.String()),
		attribute.String(observability.AttrScopeID, r.ScopeID()),
	))

	instance, err := r.resolve(ctx, typ)

	status := "ok"
	if err != nil {
		status = "error"
		r.log.WithError(err).Warn("Resolution failed", logger.Fields(logger.FieldBinding, typ.String()))
	} else {
		r.log.Debug("Resolved", logger.Fields(
			logger.FieldBinding, typ.String(),
			logger.FieldDuration, time.Since(start).String(),
		))
	}
	span.SetAttributes(attribute.String(observability.AttrStatus, status))
	observability.EndSpan(span, err)
	r.metrics.RecordResolution(ctx, "typed", typ.String(), status, time.Since(start))

	return instance, err
}

func (r *Resolver) resolve(ctx context.Context, typ reflect.Type) (any, error) {
	if r.isClosed() {
		return nil, errors.ContainerClosed(typ.String())
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.Internal(err)
	}

	graph := dig.New(dig.DeferAcyclicVerification())
	for _, b := range r.bindings {
		if err := graph.Provide(r.tracking(b.ctor)); err != nil {
			return nil, errors.InvalidBinding(b.typ.String(), err.Error()).WithCause(err)
		}
	}

	var instance any
	receiver := reflect.MakeFunc(
		reflect.FuncOf([]reflect.Type{typ}, nil, false),
		func(args []reflect.Value) []reflect.Value {
			instance = args[0].Interface()
			return nil
		},
	)
	if err := graph.Invoke(receiver.Interface()); err != nil {
		if diag := r.diagnose(typ, nil); diag != nil {
			return nil, diag.WithCause(err)
		}
		return nil, errors.ConstructionFailed(typ.String(), dig.RootCause(err))
	}
	return instance, nil
}

// tracking wraps ctor so every io.Closer it builds is tracked, including
// dependencies dig constructs on the way to the requested type.
func (r *Resolver) tracking(ctor any) any {
	fn := reflect.ValueOf(ctor)
	return reflect.MakeFunc(fn.Type(), func(args []reflect.Value) []reflect.Value {
		out := fn.Call(args)
		if len(out) == 2 && !out[1].IsNil() {
			return out
		}
		if c, ok := closerOf(out[0]); ok {
			r.track(c)
		}
		return out
	}).Interface()
}

func closerOf(v reflect.Value) (io.Closer, bool) {
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		if v.IsNil() {
			return nil, false
		}
	}
	c, ok := v.Interface().(io.Closer)
	return c, ok
}

// diagnose walks constructor parameters to name the first missing binding or
// cycle behind a failed invocation.
func (r *Resolver) diagnose(typ reflect.Type, path []string) *errors.AppError {
	name := typ.String()
	next := append(path[:len(path):len(path)], name)
	for _, seen := range path {
		if seen == name {
			return errors.DependencyCycle(name, next)
		}
	}

	b, ok := r.byType[typ]
	if !ok {
		return errors.UnresolvableDependency(name, next)
	}
	ft := reflect.TypeOf(b.ctor)
	for i := 0; i < ft.NumIn(); i++ {
		if diag := r.diagnose(ft.In(i), next); diag != nil {
			return diag
		}
	}
	return nil
}

// Close releases the resolver. Resolved instances implementing io.Closer are
// closed in reverse order. Calling Close more than once is a no-op.
func (r *Resolver) Close() error {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return nil
	}
	r.closed = true
	closers := r.closers
	r.closers = nil
	r.mu.Unlock()

	var errs []error
	for i := len(closers) - 1; i >= 0; i-- {
		if err := closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	r.log.Debug("Container closed", logger.Fields("released", len(closers)))
	return stderrors.Join(errs...)
}

func (r *Resolver) isClosed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.closed
}

func (r *Resolver) track(c io.Closer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closers = append(r.closers, c)
}

// Resolve constructs a new T.
func Resolve[T any](ctx context.Context, r *Resolver) (T, error) {
	var zero T
	typ := reflect.TypeFor[T]()
	instance, err := r.Resolve(ctx, typ)
	if err != nil {
		return zero, err
	}
	result, ok := instance.(T)
	if !ok {
		return zero, errors.WrongType(typ.String(), fmt.Sprintf("%T", instance), typ.String())
	}
	return result, nil
}

// MustResolve is like Resolve but panics on error.
func MustResolve[T any](ctx context.Context, r *Resolver) T {
	result, err := Resolve[T](ctx, r)
	if err != nil {
		panic(fmt.Sprintf("inject: failed to resolve %s: %v", reflect.TypeFor[T](), err))
	}
	return result
}

// Scoped builds reg, runs fn and closes the resolver on every exit path.
func Scoped(ctx context.Context, reg *Registry, fn func(ctx context.Context, c *Resolver) error) (err error) {
	c, err := reg.Build()
	if err != nil {
		return err
	}
	defer func() {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return fn(ctx, c)
}
