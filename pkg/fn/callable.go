package fn

import (
	"context"
	"fmt"
	"reflect"
)

// Callable is any value invocable with an ordered argument list. Every stage,
// partial application and coerced value of the prelude is lowered to it.
type Callable func(ctx context.Context, args ...any) (Values, error)

// Call invokes c.
func (c Callable) Call(ctx context.Context, args ...any) (Values, error) {
	return c(ctx, args...)
}

// Call1 invokes c and returns its primary value.
func (c Callable) Call1(ctx context.Context, args ...any) (any, error) {
	vs, err := c(ctx, args...)
	if err != nil {
		return nil, err
	}
	return vs.First(), nil
}

// Identity returns its arguments unchanged, preserving their number.
func Identity(_ context.Context, args ...any) (Values, error) {
	return Of(args...), nil
}

// Const returns a callable that ignores its arguments and always returns vs.
func Const(vs ...any) Callable {
	out := Of(vs...)
	return func(context.Context, ...any) (Values, error) {
		return Of(out...), nil
	}
}

// Lift wraps a variadic scalar function.
func Lift(f func(args ...any) any) Callable {
	return func(_ context.Context, args ...any) (Values, error) {
		return Values{f(args...)}, nil
	}
}

// Lift1 wraps a typed one-argument function.
func Lift1[A, B any](f func(A) B) Callable {
	return func(_ context.Context, args ...any) (Values, error) {
		if len(args) != 1 {
			return nil, &ArityError{Want: 1, Got: len(args)}
		}
		a, err := ArgAs[A](args[0])
		if err != nil {
			return nil, err
		}
		return Values{f(a)}, nil
	}
}

// LiftErr1 wraps a typed one-argument function that may fail.
func LiftErr1[A, B any](f func(A) (B, error)) Callable {
	return func(_ context.Context, args ...any) (Values, error) {
		if len(args) != 1 {
			return nil, &ArityError{Want: 1, Got: len(args)}
		}
		a, err := ArgAs[A](args[0])
		if err != nil {
			return nil, err
		}
		b, err := f(a)
		if err != nil {
			return nil, err
		}
		return Values{b}, nil
	}
}

// Lift2 wraps a typed two-argument function.
func Lift2[A, B, C any](f func(A, B) C) Callable {
	return func(_ context.Context, args ...any) (Values, error) {
		if len(args) != 2 {
			return nil, &ArityError{Want: 2, Got: len(args)}
		}
		a, err := ArgAs[A](args[0])
		if err != nil {
			return nil, err
		}
		b, err := ArgAs[B](args[1])
		if err != nil {
			return nil, err
		}
		return Values{f(a, b)}, nil
	}
}

// ArgAs converts an argument to T. A nil argument converts to the zero value
// of any nilable T.
func ArgAs[T any](v any) (T, error) {
	if t, ok := v.(T); ok {
		return t, nil
	}
	var zero T
	if v == nil {
		switch reflect.TypeFor[T]().Kind() {
		case reflect.Interface, reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
			return zero, nil
		}
		return zero, &TypeError{Op: "argument", Kind: "nil"}
	}
	return zero, &TypeError{Op: "argument", Kind: fmt.Sprintf("%T", v)}
}
