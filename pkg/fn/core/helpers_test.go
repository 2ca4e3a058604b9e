package core

import (
	"context"
	"log/slog"
	"sync"

	"github.com/bassosimone/slogstub"
)

// recorder keeps every record handled by the logger it hands out.
type recorder struct {
	mu      sync.Mutex
	records []slog.Record
}

func (r *recorder) logger() *slog.Logger {
	return slog.New(&slogstub.FuncHandler{
		EnabledFunc: func(context.Context, slog.Level) bool { return true },
		HandleFunc: func(_ context.Context, rec slog.Record) error {
			r.mu.Lock()
			defer r.mu.Unlock()
			r.records = append(r.records, rec)
			return nil
		},
	})
}

func (r *recorder) messages() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.records))
	for _, rec := range r.records {
		out = append(out, rec.Message)
	}
	return out
}
