package chain

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/bassosimone/slogstub"
	"github.com/ib-77/prelude/pkg/fn"
	"github.com/ib-77/prelude/pkg/fn/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var double = fn.Lift1(func(n int) int { return n * 2 })

func TestStart_Result_Success(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	out := Start(ctx, fn.Of(1, 2)).Result()
	if !out.IsSuccess() || len(out.Result()) != 2 {
		t.Fatalf("expected success with two values, got success=%v, val=%v, err=%v", out.IsSuccess(), out.Result(), out.Err())
	}
}

func TestThen_SuccessPath(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	out := FromValue(ctx, 3).Then(double).Then(double).Result()
	require.True(t, out.IsSuccess())
	assert.Equal(t, fn.Values{12}, out.Result())
}

func TestThen_ShortCircuitOnFailure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	boom := errors.New("boom")
	called := false

	out := FromValue(ctx, 3).
		Then(func(context.Context, ...any) (fn.Values, error) { return nil, boom }).
		Then(func(_ context.Context, args ...any) (fn.Values, error) {
			called = true
			return fn.Of(args...), nil
		}).
		Result()

	assert.True(t, out.IsFailure())
	require.ErrorIs(t, out.Err(), boom)
	assert.False(t, called, "Then must not run after a failure")
}

func TestThen_CancelledContext(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	out := FromValue(ctx, 1).Then(func(context.Context, ...any) (fn.Values, error) {
		called = true
		return nil, nil
	}).Result()

	assert.True(t, out.IsCancel())
	require.ErrorIs(t, out.Err(), context.Canceled)
	assert.False(t, called)
}

func TestThen_StageReturningCancellationIsCancel(t *testing.T) {
	t.Parallel()
	out := FromValue(context.Background(), 1).Then(func(context.Context, ...any) (fn.Values, error) {
		return nil, context.DeadlineExceeded
	}).Result()
	assert.True(t, out.IsCancel())
}

func TestThenRef(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	doc := map[string]any{"items": []int{10, 20, 30}}

	out := FromValue(ctx, doc).ThenRef("items", 1).Then(double).Result()
	require.True(t, out.IsSuccess())
	assert.Equal(t, fn.Values{40}, out.Result())

	out = FromValue(ctx, doc).ThenRef("missing").Result()
	require.ErrorIs(t, out.Err(), fn.ErrKey)
}

func TestEnsure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var seen fn.Values
	out := FromValue(ctx, 11).Ensure(func(_ context.Context, vs fn.Values) { seen = vs }).Result()
	assert.Equal(t, fn.Values{11}, seen)
	assert.Equal(t, fn.Values{11}, out.Result())

	called := false
	FromValue(ctx, 1).
		Then(func(context.Context, ...any) (fn.Values, error) { return nil, errors.New("x") }).
		Ensure(func(context.Context, fn.Values) { called = true })
	assert.False(t, called, "Ensure must not run for a failed chain")
}

func TestFinally_SuccessFailureCancel(t *testing.T) {
	t.Parallel()
	onSuccess := func(context.Context, fn.Values) string { return "ok" }
	onFailure := func(context.Context, error) string { return "fail" }
	onCancel := func(context.Context, error) string { return "cancel" }

	ctx := context.Background()
	assert.Equal(t, "ok", Finally(FromValue(ctx, 1), onSuccess, onFailure, onCancel))

	failed := FromValue(ctx, 1).Then(func(context.Context, ...any) (fn.Values, error) {
		return nil, errors.New("e")
	})
	assert.Equal(t, "fail", Finally(failed, onSuccess, onFailure, onCancel))

	cctx, cancel := context.WithCancel(ctx)
	cancel()
	assert.Equal(t, "cancel", Finally(FromValue(cctx, 1).Then(double), onSuccess, onFailure, onCancel))
}

func TestChain_LogsStages(t *testing.T) {
	t.Parallel()
	var records []slog.Record
	ctx := core.WithLogger(context.Background(), slog.New(&slogstub.FuncHandler{
		EnabledFunc: func(context.Context, slog.Level) bool { return true },
		HandleFunc: func(_ context.Context, rec slog.Record) error {
			records = append(records, rec)
			return nil
		},
	}))

	FromValue(ctx, []int{1}).ThenRef(4)

	require.Len(t, records, 1)
	assert.Equal(t, "chainStageDone", records[0].Message)
	records[0].Attrs(func(a slog.Attr) bool {
		switch a.Key {
		case "stage":
			assert.Equal(t, int64(1), a.Value.Int64())
		case "errClass":
			assert.Equal(t, "IndexError", a.Value.String())
		}
		return true
	})
}

func TestChain_ResultCarriesStage(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	seed := FromValue(ctx, 2)
	assert.Equal(t, 0, seed.Result().Stage())

	out := seed.Then(double).Then(double).Result()
	assert.Equal(t, 2, out.Stage())
	assert.Equal(t, fn.Values{8}, out.Result())

	// the failing stage is the one reported; later stages are skipped
	failed := seed.Then(double).ThenRef(9).Then(double).Result()
	require.ErrorIs(t, failed.Err(), fn.ErrType)
	assert.Equal(t, 2, failed.Stage())
}
