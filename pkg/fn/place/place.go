// Package place rotates and shifts values between positions of a slice.
package place

import "github.com/ib-77/prelude/pkg/fn"

// Rotate moves s[idx[1]] into s[idx[0]], s[idx[2]] into s[idx[1]] and so on,
// and the old s[idx[0]] into the last position. Indices are checked first:
// an out-of-range index leaves s untouched.
func Rotate[T any](s []T, idx ...int) error {
	if err := check(len(s), idx); err != nil {
		return err
	}
	if len(idx) < 2 {
		return nil
	}
	first := s[idx[0]]
	for i := 0; i < len(idx)-1; i++ {
		s[idx[i]] = s[idx[i+1]]
	}
	s[idx[len(idx)-1]] = first
	return nil
}

// Shift moves values one position left like [Rotate], stores v in the last
// position and returns the value displaced from the first. With no indices
// it returns v.
func Shift[T any](s []T, v T, idx ...int) (T, error) {
	if err := check(len(s), idx); err != nil {
		var zero T
		return zero, err
	}
	if len(idx) == 0 {
		return v, nil
	}
	first := s[idx[0]]
	for i := 0; i < len(idx)-1; i++ {
		s[idx[i]] = s[idx[i+1]]
	}
	s[idx[len(idx)-1]] = v
	return first, nil
}

func check(length int, idx []int) error {
	for _, i := range idx {
		if i < 0 || i >= length {
			return &fn.IndexError{Index: i, Len: length}
		}
	}
	return nil
}
