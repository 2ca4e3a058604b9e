package compose

import (
	"context"
	"log/slog"

	"github.com/ib-77/prelude/pkg/fn"
	"github.com/ib-77/prelude/pkg/fn/core"
)

// Trace returns an identity stage that logs the values passing through it at
// debug level, using the logger configured with [core.WithLogger]. Logging is
// skipped when [core.WithTrace] disabled it.
func Trace(name string) fn.Callable {
	return func(ctx context.Context, args ...any) (fn.Values, error) {
		if core.IsTraceEnabled(ctx, true) {
			core.LoggerFrom(ctx).Debug(
				"traceStage",
				slog.String("stage", name),
				slog.Int("count", len(args)),
				slog.Any("values", args),
			)
		}
		return fn.Of(args...), nil
	}
}
