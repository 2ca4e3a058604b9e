package core

import (
	"context"

	"github.com/ib-77/prelude/pkg/fn"
)

type OptionKey string

const (
	LoggerOptionKey     OptionKey = "logger_options"
	ClassifierOptionKey OptionKey = "classifier_options"
	TraceOptionKey      OptionKey = "trace_options"
)

type LoggerOptions struct {
	Logger SLogger
}

type ClassifierOptions struct {
	Classifier ErrClassifier
}

type TraceOptions struct {
	Enabled bool
}

// ErrClassifier maps errors to short labels for structured logs.
type ErrClassifier interface {
	Classify(err error) string
}

// ErrClassifierFunc adapts a function to the [ErrClassifier] interface.
type ErrClassifierFunc func(error) string

var _ ErrClassifier = ErrClassifierFunc(nil)

// Classify implements [ErrClassifier].
func (f ErrClassifierFunc) Classify(err error) string {
	return f(err)
}

// DefaultErrClassifier labels the prelude's own errors by name.
var DefaultErrClassifier = ErrClassifierFunc(fn.Classify)

func WithLogger(ctx context.Context, logger SLogger) context.Context {
	return context.WithValue(ctx, LoggerOptionKey, LoggerOptions{Logger: logger})
}

func WithErrClassifier(ctx context.Context, classifier ErrClassifier) context.Context {
	return context.WithValue(ctx, ClassifierOptionKey, ClassifierOptions{Classifier: classifier})
}

func WithTrace(ctx context.Context, enabled bool) context.Context {
	return context.WithValue(ctx, TraceOptionKey, TraceOptions{Enabled: enabled})
}

// LoggerFrom returns the logger stored in ctx, or [DefaultSLogger].
func LoggerFrom(ctx context.Context) SLogger {
	options, ok := ctx.Value(LoggerOptionKey).(LoggerOptions)
	if ok && options.Logger != nil {
		return options.Logger
	}
	return DefaultSLogger()
}

func ErrClassifierFrom(ctx context.Context) ErrClassifier {
	options, ok := ctx.Value(ClassifierOptionKey).(ClassifierOptions)
	if ok && options.Classifier != nil {
		return options.Classifier
	}
	return DefaultErrClassifier
}

func IsTraceEnabled(ctx context.Context, defaultEnabled bool) bool {
	options, ok := ctx.Value(TraceOptionKey).(TraceOptions)
	if ok {
		return options.Enabled
	}
	return defaultEnabled
}
