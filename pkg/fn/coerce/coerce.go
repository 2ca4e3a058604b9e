// Package coerce normalizes loose values into callables, so configuration
// such as predicates, selectors, constants and lookup tables can be accepted
// uniformly by call sites elsewhere in the toolkit.
package coerce

import (
	"context"
	"fmt"
	"io"
	"reflect"

	"github.com/bassosimone/runtimex"
	"github.com/ib-77/prelude/pkg/fn"
	"github.com/ib-77/prelude/pkg/fn/curry"
	"github.com/ib-77/prelude/pkg/fn/ref"
)

// Form pairs a head with a fixed trailing argument list. It coerces to
// RCurry(EnsureFunction(Head), Args...).
type Form struct {
	Head any
	Args []any
}

// Empty is the explicit empty-list marker; like nil it coerces to identity.
type Empty struct{}

// EnsureFunction returns x as a [fn.Callable]:
//   - a callable (or func(any) any, func(any) (any, error)) is returned as is
//   - a map looks its argument up in itself
//   - an integer n looks up position n of its argument
//   - a [Form], or a non-empty []any read as head followed by arguments,
//     appends the arguments after the call's own
//   - nil, [Empty] or an empty []any is the identity
//   - a bool or [io.EOF] is a constant
//   - a struct, pointer to struct or [ref.Slotted] returns the named field
//
// Any other value fails with a [fn.TypeError].
func EnsureFunction(x any) (fn.Callable, error) {
	switch v := x.(type) {
	case nil, Empty:
		return fn.Identity, nil
	case fn.Callable:
		if v == nil {
			return nil, &fn.TypeError{Op: "coerce", Kind: "nil callable"}
		}
		return v, nil
	case func(context.Context, ...any) (fn.Values, error):
		if v == nil {
			return nil, &fn.TypeError{Op: "coerce", Kind: "nil callable"}
		}
		return v, nil
	case ref.Func:
		return fn.Callable(v), nil
	case func(any) any, func(any) (any, error):
		if fn.IsNil(v) {
			return nil, &fn.TypeError{Op: "coerce", Kind: "nil callable"}
		}
		c, err := ref.Wrap(v)
		if err != nil {
			return nil, err
		}
		return fn.Callable(c.(ref.Func)), nil
	case bool:
		return fn.Const(v), nil
	case Form:
		return formFunction(v.Head, v.Args)
	case []any:
		if len(v) == 0 {
			return fn.Identity, nil
		}
		return formFunction(v[0], v[1:])
	case ref.Slotted, ref.Mapping, ref.Object:
		return lookup(v), nil
	}

	if x == io.EOF {
		return fn.Const(x), nil
	}

	rv := reflect.ValueOf(x)
	switch {
	case rv.CanInt() || rv.CanUint():
		return position(x), nil
	case rv.Kind() == reflect.Map:
		return lookup(x), nil
	case rv.Kind() == reflect.Struct:
		return lookup(x), nil
	case rv.Kind() == reflect.Pointer && !rv.IsNil() && rv.Elem().Kind() == reflect.Struct:
		return lookup(x), nil
	}
	return nil, &fn.TypeError{Op: "coerce", Kind: fmt.Sprintf("%T", x)}
}

// MustEnsureFunction is like [EnsureFunction] but panics on failure. Use it
// for package-level wiring of literal values.
func MustEnsureFunction(x any) fn.Callable {
	return runtimex.PanicOnError1(EnsureFunction(x))
}

func formFunction(head any, args []any) (fn.Callable, error) {
	f, err := EnsureFunction(head)
	if err != nil {
		return nil, err
	}
	return curry.RCurry(f, args...), nil
}

// lookup returns a callable reading its single argument as a key of c.
func lookup(c any) fn.Callable {
	return func(ctx context.Context, args ...any) (fn.Values, error) {
		if len(args) != 1 {
			return nil, &fn.ArityError{Want: 1, Got: len(args)}
		}
		v, err := ref.Ref(ctx, c, args[0])
		if err != nil {
			return nil, err
		}
		return fn.Values{v}, nil
	}
}

// position returns a callable reading index n of its single argument.
func position(n any) fn.Callable {
	return func(ctx context.Context, args ...any) (fn.Values, error) {
		if len(args) != 1 {
			return nil, &fn.ArityError{Want: 1, Got: len(args)}
		}
		v, err := ref.Ref(ctx, args[0], n)
		if err != nil {
			return nil, err
		}
		return fn.Values{v}, nil
	}
}
