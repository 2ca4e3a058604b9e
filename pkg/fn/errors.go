package fn

import (
	"errors"
	"fmt"

	"github.com/bassosimone/errclass"
)

var (
	ErrIndex         = errors.New("index out of range")
	ErrKey           = errors.New("key not found")
	ErrType          = errors.New("unsupported type")
	ErrArity         = errors.New("wrong number of arguments")
	ErrUnimplemented = errors.New("unimplemented")
)

// IndexError reports an out-of-range positional access. Key holds the index
// as passed when it does not fit in an int; Index is then meaningless.
type IndexError struct {
	Index int
	Len   int
	Key   any
}

func (e *IndexError) Error() string {
	if e.Key != nil {
		return fmt.Sprintf("%s: index %v, length %d", ErrIndex, e.Key, e.Len)
	}
	return fmt.Sprintf("%s: index %d, length %d", ErrIndex, e.Index, e.Len)
}

func (e *IndexError) Is(target error) bool {
	return target == ErrIndex
}

// KeyError reports a missing mapping key or object field.
type KeyError struct {
	Key any
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("%s: %#v", ErrKey, e.Key)
}

func (e *KeyError) Is(target error) bool {
	return target == ErrKey
}

// TypeError reports a value whose kind the operation Op does not support.
type TypeError struct {
	Op   string
	Kind string
}

func (e *TypeError) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("%s: %s", ErrType, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %s", e.Op, ErrType, e.Kind)
}

func (e *TypeError) Is(target error) bool {
	return target == ErrType
}

// ArityError reports an argument-count mismatch. Want is -1 when the callee
// only knows the count was wrong.
type ArityError struct {
	Want int
	Got  int
}

func (e *ArityError) Error() string {
	if e.Want < 0 {
		return fmt.Sprintf("%s: got %d", ErrArity, e.Got)
	}
	return fmt.Sprintf("%s: want %d, got %d", ErrArity, e.Want, e.Got)
}

func (e *ArityError) Is(target error) bool {
	return target == ErrArity
}

// UnimplementedError is returned by the sentinel callables. Args holds the
// arguments of the offending call.
type UnimplementedError struct {
	Kind string
	Args []any
}

func (e *UnimplementedError) Error() string {
	return fmt.Sprintf("%s: %s called with %v", ErrUnimplemented, e.Kind, e.Args)
}

func (e *UnimplementedError) Is(target error) bool {
	return target == ErrUnimplemented
}

// Classify maps err to a short label suitable for structured logs.
//
// Errors of the taxonomy map to their own names; any other error is
// classified by errclass.
func Classify(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrIndex):
		return "IndexError"
	case errors.Is(err, ErrKey):
		return "KeyError"
	case errors.Is(err, ErrType):
		return "TypeError"
	case errors.Is(err, ErrArity):
		return "ArityError"
	case errors.Is(err, ErrUnimplemented):
		return "UnimplementedError"
	default:
		return errclass.New(err)
	}
}
