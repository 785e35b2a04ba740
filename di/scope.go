package di

import "context"

// Scoped builds reg, runs fn with the resolver and closes the resolver on every
// exit path, including a panic in fn. A close error is returned only when fn
// succeeded.
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
