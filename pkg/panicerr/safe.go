package panicerr

import (
	"context"
	"log/slog"

	"github.com/sourcegraph/conc/panics"
)

// Safe wraps a function that returns an error, catching any panics and returning them as an error.
func Safe(fn func() error) func() error {
	return func() error {
		var (
			catcher panics.Catcher
			err     error
		)
		catcher.Try(func() {
			err = fn()
		})
		if err != nil {
			return err
		}
		return catcher.Recovered().AsError()
	}
}

// SafeContext wraps a function that takes a context and returns an error.
func SafeContext(fn func(context.Context) error) func(context.Context) error {
	return func(ctx context.Context) error {
		return Safe(func() error { return fn(ctx) })()
	}
}

// Try runs fn and converts a panic into an error. Third-party parsers are
// called through it.
func Try[T any](fn func() (T, error)) (T, error) {
	var v T
	err := Safe(func() error {
		var err error
		v, err = fn()
		return err
	})()
	return v, err
}

// Go runs fn on a new goroutine and logs a panic instead of crashing the process.
func Go(ctx context.Context, name string, fn func(context.Context)) {
	go func() {
		if err := SafeContext(func(ctx context.Context) error {
			fn(ctx)
			return nil
		})(ctx); err != nil {
			slog.ErrorContext(ctx, "goroutine panicked", "name", name, "error", err)
		}
	}()
}
