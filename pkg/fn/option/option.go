package option

import "github.com/bassosimone/runtimex"

type Option[T any] struct {
	value   T
	present bool
}

func Present[T any](v T) Option[T] {
	return Option[T]{value: v, present: true}
}

func Absent[T any]() Option[T] {
	return Option[T]{}
}

// FromPair builds an Option from the comma-ok idiom.
func FromPair[T any](v T, ok bool) Option[T] {
	if !ok {
		return Absent[T]()
	}
	return Present(v)
}

func (o Option[T]) IsPresent() bool {
	return o.present
}

func (o Option[T]) IsAbsent() bool {
	return !o.present
}

func (o Option[T]) Get() (T, bool) {
	return o.value, o.present
}

func (o Option[T]) OrElse(def T) T {
	if o.present {
		return o.value
	}
	return def
}

// MustGet returns the value and panics when the option is absent.
func (o Option[T]) MustGet() T {
	runtimex.Assert(o.present)
	return o.value
}

func Map[A, B any](o Option[A], f func(A) B) Option[B] {
	if !o.present {
		return Absent[B]()
	}
	return Present(f(o.value))
}

func FlatMap[A, B any](o Option[A], f func(A) Option[B]) Option[B] {
	if !o.present {
		return Absent[B]()
	}
	return f(o.value)
}
