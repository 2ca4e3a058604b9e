package chain

import (
	"context"
	"log/slog"

	"github.com/ib-77/prelude/pkg/fn"
	"github.com/ib-77/prelude/pkg/fn/core"
	"github.com/ib-77/prelude/pkg/fn/ref"
)

// Chain wraps a fn.Result with context to enable fluent chaining
type Chain struct {
	ctx    context.Context
	result fn.Result[fn.Values]
}

// Start creates a new chain from a Values tuple
func Start(ctx context.Context, vs fn.Values) *Chain {
	return &Chain{
		ctx:    ctx,
		result: fn.Success(fn.Of(vs...)),
	}
}

// FromValue creates a new chain from a single value
func FromValue(ctx context.Context, v any) *Chain {
	return Start(ctx, fn.Values{v})
}

// Result returns the underlying fn.Result
func (c *Chain) Result() fn.Result[fn.Values] {
	return c.result
}

// Then runs f with the current values as its arguments
func (c *Chain) Then(f fn.Callable) *Chain {
	if !c.result.IsSuccess() {
		return c
	}
	if err := c.ctx.Err(); err != nil {
		return c.next(fn.Cancel[fn.Values](err))
	}
	vs, err := f(c.ctx, c.result.Result()...)
	if err != nil {
		return c.next(fn.FailOrCancel[fn.Values](err))
	}
	return c.next(fn.Success(vs))
}

// ThenRef replaces the values with ref.Ref of the primary value at keys
func (c *Chain) ThenRef(keys ...any) *Chain {
	return c.Then(func(ctx context.Context, args ...any) (fn.Values, error) {
		v, err := ref.Ref(ctx, fn.Values(args).First(), keys...)
		if err != nil {
			return nil, err
		}
		return fn.Values{v}, nil
	})
}

// Ensure performs a side effect without changing the result
func (c *Chain) Ensure(onSuccess func(context.Context, fn.Values)) *Chain {
	if c.result.IsSuccess() {
		onSuccess(c.ctx, fn.Of(c.result.Result()...))
	}
	return c
}

// Finally collapses the chain into a final value
func Finally[U any](c *Chain, onSuccess func(context.Context, fn.Values) U,
	onFailure func(context.Context, error) U, onCancel func(context.Context, error) U) U {

	switch {
	case c.result.IsSuccess():
		return onSuccess(c.ctx, c.result.Result())
	case c.result.IsCancel():
		return onCancel(c.ctx, c.result.Err())
	default:
		return onFailure(c.ctx, c.result.Err())
	}
}

func (c *Chain) next(r fn.Result[fn.Values]) *Chain {
	r = r.AtStage(c.result.Stage() + 1)
	err := r.Err()
	core.LoggerFrom(c.ctx).Info(
		"chainStageDone",
		slog.Int("stage", r.Stage()),
		slog.String("resultId", r.Id().String()),
		slog.Any("err", err),
		slog.String("errClass", core.ErrClassifierFrom(c.ctx).Classify(err)),
	)
	return &Chain{ctx: c.ctx, result: r}
}
