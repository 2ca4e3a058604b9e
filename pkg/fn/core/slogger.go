package core

// SLogger is the subset of [*slog.Logger] the prelude logs through.
//
// Chains report finished stages with Info; trace stages dump the values they
// see with Debug.
type SLogger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
}

// DefaultSLogger is used when the context carries no logger. It drops
// every record.
func DefaultSLogger() SLogger {
	return nopLogger{}
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}

func (nopLogger) Info(string, ...any) {}
