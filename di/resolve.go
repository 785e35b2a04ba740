package di

import (
	"context"
	"fmt"
	"reflect"

	"github.com/kbukum/weatherdi/errors"
)

// Provide registers a typed constructor under key.
func Provide[T any](r *Registry, key Key, ctor func(deps Dependencies) (T, error), requires ...Key) error {
	if ctor == nil {
		return errors.InvalidBinding(string(key), "constructor must not be nil")
	}
	return r.Register(key, func(deps Dependencies) (any, error) {
		return ctor(deps)
	}, requires...)
}

// Dep returns the dependency resolved for key, asserted to T.
func Dep[T any](deps Dependencies, key Key) (T, error) {
	var zero T
	v, ok := deps[key]
	if !ok {
		return zero, errors.UnresolvableDependency(string(key), nil)
	}
	result, ok := v.(T)
	if !ok {
		return zero, errors.WrongType(string(key), fmt.Sprintf("%T", v), typeName[T]())
	}
	return result, nil
}

// Resolve resolves key and asserts the instance to T.
//
// Example:
//
//	svc, err := di.Resolve[*weather.Service](ctx, c, wiring.Keys.WeatherService)
//	if err != nil {
//	    return fmt.Errorf("resolve weather service: %w", err)
//	}
func Resolve[T any](ctx context.Context, c Container, key Key) (T, error) {
	var zero T
	instance, err := c.Resolve(ctx, key)
	if err != nil {
		return zero, err
	}
	result, ok := instance.(T)
	if !ok {
		return zero, errors.WrongType(string(key), fmt.Sprintf("%T", instance), typeName[T]())
	}
	return result, nil
}

// MustResolve is like Resolve but panics on error.
// Use it only where a missing binding is a programming error.
func MustResolve[T any](ctx context.Context, c Container, key Key) T {
	result, err := Resolve[T](ctx, c, key)
	if err != nil {
		panic(fmt.Sprintf("di: failed to resolve %s: %v", key, err))
	}
	return result
}

// TryResolve resolves an optional dependency, reporting false on any failure.
//
//	if m, ok := di.TryResolve[Metrics](ctx, c, "metrics"); ok {
//	    m.Record(...)
//	}
func TryResolve[T any](ctx context.Context, c Container, key Key) (T, bool) {
	result, err := Resolve[T](ctx, c, key)
	if err != nil {
		var zero T
		return zero, false
	}
	return result, true
}

func typeName[T any]() string {
	return reflect.TypeFor[T]().String()
}
