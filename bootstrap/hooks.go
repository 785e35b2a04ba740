package bootstrap

import (
	"context"
	"fmt"

	"github.com/kbukum/weatherdi/di"
)

// Hook is a lifecycle callback that runs during startup or shutdown.
type Hook func(ctx context.Context) error

// BindFunc registers bindings before the container is built.
type BindFunc func(reg *di.Registry) error

// Bind registers a callback that adds bindings to the application's registry.
// Bind callbacks run before the container is built.
func (a *App[C]) Bind(fns ...BindFunc) {
	a.binders = append(a.binders, fns...)
}

// OnConfigure registers a callback that runs after the container is built and
// before components start. Register components that need the container here.
func (a *App[C]) OnConfigure(fn func(ctx context.Context, app *App[C]) error) {
	a.onConfigure = append(a.onConfigure, fn)
}

// OnStart registers a hook that runs after all components are started.
func (a *App[C]) OnStart(hooks ...Hook) {
	a.onStart = append(a.onStart, hooks...)
}

// OnReady registers a hook that runs after the ready check.
func (a *App[C]) OnReady(hooks ...Hook) {
	a.onReady = append(a.onReady, hooks...)
}

// OnStop registers a hook that runs during shutdown before components stop.
func (a *App[C]) OnStop(hooks ...Hook) {
	a.onStop = append(a.onStop, hooks...)
}

func runHooks(ctx context.Context, hooks []Hook) error {
	for i, h := range hooks {
		if err := h(ctx); err != nil {
			return fmt.Errorf("hook %d failed: %w", i, err)
		}
	}
	return nil
}
