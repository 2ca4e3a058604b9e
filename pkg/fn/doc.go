// Package fn holds the shared vocabulary of the prelude: the Values tuple that
// flows between stages, the Callable every stage is lowered to, the error
// taxonomy and the Result[T] used by fluent chains.
//
// Highlights:
// - Values/Of: ordered, possibly empty result tuple of one invocation
// - Callable: func(ctx, args...) (Values, error)
// - Lift/Lift1/Lift2/LiftErr1/Const/Identity: build callables from plain functions
// - IndexError/KeyError/TypeError/ArityError/UnimplementedError: failure taxonomy
// - Success/Fail/Cancel: construct Result[T]
//
// Sub-packages build on it: compose, curry, ref, coerce, option, sentinel,
// place, chain and core.
package fn
