package di

import (
	"context"
	stderrors "errors"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/weatherdi/errors"
	"github.com/kbukum/weatherdi/logger"
	"github.com/kbukum/weatherdi/observability"
)

// Container is the read side of a built registry.
type Container interface {
	Resolve(ctx context.Context, key Key) (any, error)
	Close() error
}

var _ Container = (*Resolver)(nil)

// Resolver constructs instances from a frozen set of bindings.
// It is safe for concurrent use.
type Resolver struct {
	id       uuid.UUID
	bindings map[Key]Binding
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

// Resolve constructs a new instance for key, resolving its declared
// requirements depth-first. Nothing is cached between calls.
func (r *Resolver) Resolve(ctx context.Context, key Key) (any, error) {
	start := time.Now()
	ctx, span := r.tracer.Start(ctx, "di.resolve", trace.WithAttributes(
		attribute.String(observability.AttrBinding, string(key)),
		attribute.String(observability.AttrScopeID, r.ScopeID()),
	))

	instance, err := r.resolve(ctx, key, nil)

	status := "ok"
	if err != nil {
		status = "error"
		r.log.WithError(err).Warn("Resolution failed", logger.Fields(logger.FieldBinding, string(key)))
	} else {
		r.log.Debug("Resolved", logger.Fields(
			logger.FieldBinding, string(key),
			logger.FieldDuration, time.Since(start).String(),
		))
	}
	span.SetAttributes(attribute.String(observability.AttrStatus, status))
	observability.EndSpan(span, err)
	r.metrics.RecordResolution(ctx, "keyed", string(key), status, time.Since(start))

	return instance, err
}

func (r *Resolver) resolve(ctx context.Context, key Key, path []Key) (any, error) {
	if r.isClosed() {
		return nil, errors.ContainerClosed(string(key))
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.Internal(err)
	}

	next := append(path[:len(path):len(path)], key)
	for _, seen := range path {
		if seen == key {
			return nil, errors.DependencyCycle(string(key), keyStrings(next))
		}
	}

	b, ok := r.bindings[key]
	if !ok {
		return nil, errors.UnresolvableDependency(string(key), keyStrings(next))
	}

	deps := make(Dependencies, len(b.Requires))
	for _, req := range b.Requires {
		v, err := r.resolve(ctx, req, next)
		if err != nil {
			return nil, err
		}
		deps[req] = v
	}

	instance, err := b.Constructor(deps)
	if err != nil {
		return nil, errors.ConstructionFailed(string(key), err)
	}
	if c, ok := instance.(io.Closer); ok {
		r.track(c)
	}
	return instance, nil
}

// Close releases the resolver. Instances implementing io.Closer are closed in
// reverse construction order. Later resolutions fail with CONTAINER_CLOSED.
// Calling Close more than once is a no-op.
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

func keyStrings(keys []Key) []string {
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = string(k)
	}
	return out
}
