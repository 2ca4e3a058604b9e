package option

// When runs then with the value if o is present and reports whether it ran.
func When[T any](o Option[T], then func(T)) bool {
	if !o.present {
		return false
	}
	then(o.value)
	return true
}

// IfAll runs then with every unwrapped value when all opts are present, and
// orElse otherwise. The first absent option short-circuits the check. A nil
// orElse is allowed.
func IfAll[T any](opts []Option[T], then func([]T), orElse func()) {
	values := make([]T, 0, len(opts))
	for _, o := range opts {
		if !o.present {
			if orElse != nil {
				orElse()
			}
			return
		}
		values = append(values, o.value)
	}
	then(values)
}

// IfLet2 is the two-value, mixed-type form of [IfAll].
func IfLet2[A, B any](a Option[A], b Option[B], then func(A, B), orElse func()) {
	if !a.present || !b.present {
		if orElse != nil {
			orElse()
		}
		return
	}
	then(a.value, b.value)
}
