package compose

import (
	"context"

	"github.com/ib-77/prelude/pkg/fn"
)

// RCompose returns g such that g(A) = fn(...f2(f1(A))).
//
// With no stages g is [fn.Identity]; with one stage g is that stage. The
// first failing stage aborts the chain and its error is returned as is.
func RCompose(stages ...fn.Callable) fn.Callable {
	switch len(stages) {
	case 0:
		return fn.Identity
	case 1:
		return stages[0]
	}
	chain := make([]fn.Callable, len(stages))
	copy(chain, stages)
	return func(ctx context.Context, args ...any) (fn.Values, error) {
		vs, err := chain[0](ctx, args...)
		if err != nil {
			return nil, err
		}
		for _, stage := range chain[1:] {
			vs, err = stage(ctx, vs...)
			if err != nil {
				return nil, err
			}
		}
		return vs, nil
	}
}

// Compose is [RCompose] with the stage order reversed: Compose(f, g)(x) = f(g(x)).
func Compose(stages ...fn.Callable) fn.Callable {
	reversed := make([]fn.Callable, len(stages))
	for i, stage := range stages {
		reversed[len(stages)-1-i] = stage
	}
	return RCompose(reversed...)
}

// Pipe feeds x as the sole argument through RCompose(stages...).
// With no stages the result is x itself.
func Pipe(ctx context.Context, x any, stages ...fn.Callable) (fn.Values, error) {
	return RCompose(stages...)(ctx, x)
}

// PipeMulti spreads vs as the initial argument list of RCompose(stages...).
// With no stages the result is vs, not narrowed to one value.
func PipeMulti(ctx context.Context, vs fn.Values, stages ...fn.Callable) (fn.Values, error) {
	return RCompose(stages...)(ctx, vs...)
}
