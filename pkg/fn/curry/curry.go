// Package curry captures a prefix or suffix of arguments now and defers the
// rest to a later call.
package curry

import (
	"context"

	"github.com/ib-77/prelude/pkg/fn"
)

// Curry returns a callable that invokes f with the captured arguments first,
// followed by whatever arguments it is later called with.
func Curry(f fn.Callable, captured ...any) fn.Callable {
	prefix := fn.Of(captured...)
	return func(ctx context.Context, args ...any) (fn.Values, error) {
		all := make([]any, 0, len(prefix)+len(args))
		all = append(all, prefix...)
		all = append(all, args...)
		return f(ctx, all...)
	}
}

// RCurry returns a callable that invokes f with the new arguments first,
// followed by the captured ones.
func RCurry(f fn.Callable, captured ...any) fn.Callable {
	suffix := fn.Of(captured...)
	return func(ctx context.Context, args ...any) (fn.Values, error) {
		all := make([]any, 0, len(args)+len(suffix))
		all = append(all, args...)
		all = append(all, suffix...)
		return f(ctx, all...)
	}
}
