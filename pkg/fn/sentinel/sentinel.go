// Package sentinel provides callables that always fail.
//
// Undefined marks a path that must be unreachable in production: reaching it
// is itself a defect. NIY marks functionality left unfinished on purpose and
// due before release. Both return a *fn.UnimplementedError carrying the
// arguments of the offending call and never produce a value.
package sentinel

import (
	"context"

	"github.com/ib-77/prelude/pkg/fn"
)

const (
	KindUndefined = "undefined"
	KindNIY       = "not implemented yet"
)

var (
	_ fn.Callable = Undefined
	_ fn.Callable = NIY
)

func Undefined(_ context.Context, args ...any) (fn.Values, error) {
	return nil, &fn.UnimplementedError{Kind: KindUndefined, Args: fn.Of(args...).Spread()}
}

func NIY(_ context.Context, args ...any) (fn.Values, error) {
	return nil, &fn.UnimplementedError{Kind: KindNIY, Args: fn.Of(args...).Spread()}
}
