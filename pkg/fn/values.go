package fn

// Values is the ordered result tuple of one invocation. It is forwarded as the
// full argument list of the next stage in a composition.
type Values []any

// Of builds a Values tuple from its arguments.
func Of(vs ...any) Values {
	if len(vs) == 0 {
		return Values{}
	}
	out := make(Values, len(vs))
	copy(out, vs)
	return out
}

// Len returns the number of values in the tuple.
func (v Values) Len() int {
	return len(v)
}

// At returns the i-th value, or an IndexError.
func (v Values) At(i int) (any, error) {
	if i < 0 || i >= len(v) {
		return nil, &IndexError{Index: i, Len: len(v)}
	}
	return v[i], nil
}

// First returns the primary value, or nil for the empty tuple.
func (v Values) First() any {
	if len(v) == 0 {
		return nil
	}
	return v[0]
}

// Single returns the only value of the tuple.
func (v Values) Single() (any, error) {
	if len(v) != 1 {
		return nil, &ArityError{Want: 1, Got: len(v)}
	}
	return v[0], nil
}

// Spread returns a copy of the tuple as an argument list.
func (v Values) Spread() []any {
	out := make([]any, len(v))
	copy(out, v)
	return out
}
