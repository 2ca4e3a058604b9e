package ref

import (
	"context"
	"fmt"
	"reflect"

	"github.com/ib-77/prelude/pkg/fn"
)

// Container is the closed union of the kinds addressable by [Ref].
type Container interface {
	container()
}

// Seq is an ordered sequence: any Go slice or array other than []byte.
type Seq struct {
	v reflect.Value
}

// Mapping is any Go map.
type Mapping struct {
	v reflect.Value
}

// Bytes is a byte sequence; elements are returned as byte.
type Bytes []byte

// Text is a character sequence; elements are returned as rune.
type Text string

// Object is a value with named slots: a struct, a pointer to a struct, or a
// [Slotted] implementation.
type Object struct {
	v     reflect.Value
	slots Slotted
}

// Func is a callable used as a container: looking up a key invokes it.
type Func fn.Callable

// Slotted is implemented by values exposing named slots without being structs.
type Slotted interface {
	Slot(name string) (any, bool)
}

func (Seq) container()     {}
func (Mapping) container() {}
func (Bytes) container()   {}
func (Text) container()    {}
func (Object) container()  {}
func (Func) container()    {}

// Len returns the number of elements of the sequence.
func (s Seq) Len() int {
	return s.v.Len()
}

// Wrap classifies v into a [Container]. Unsupported kinds, nil included, fail
// with a [fn.TypeError] naming the Go type.
func Wrap(v any) (Container, error) {
	switch x := v.(type) {
	case nil:
		return nil, &fn.TypeError{Op: "ref", Kind: "nil"}
	case Func, fn.Callable, func(context.Context, ...any) (fn.Values, error),
		func(any) any, func(any) (any, error):
		if fn.IsNil(x) {
			return nil, &fn.TypeError{Op: "ref", Kind: "nil callable"}
		}
	}

	switch x := v.(type) {
	case Container:
		return x, nil
	case fn.Callable:
		return Func(x), nil
	case func(context.Context, ...any) (fn.Values, error):
		return Func(x), nil
	case func(any) any:
		return Func(fn.Lift1(x)), nil
	case func(any) (any, error):
		return Func(fn.LiftErr1(x)), nil
	case []byte:
		return Bytes(x), nil
	case string:
		return Text(x), nil
	case Slotted:
		return Object{slots: x}, nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return Seq{v: rv}, nil
	case reflect.Map:
		return Mapping{v: rv}, nil
	case reflect.Struct:
		return Object{v: rv}, nil
	case reflect.Pointer:
		if !rv.IsNil() && rv.Elem().Kind() == reflect.Struct {
			return Object{v: rv.Elem()}, nil
		}
	}
	return nil, &fn.TypeError{Op: "ref", Kind: fmt.Sprintf("%T", v)}
}
