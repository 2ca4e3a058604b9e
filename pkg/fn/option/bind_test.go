package option

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWhen(t *testing.T) {
	t.Parallel()
	var got []int
	assert.True(t, When(Present(0), func(v int) { got = append(got, v) }))
	assert.False(t, When(Absent[int](), func(v int) { got = append(got, v) }))
	assert.Equal(t, []int{0}, got)
}

func TestIfAll(t *testing.T) {
	t.Parallel()

	var got []bool
	elseCalled := false
	IfAll([]Option[bool]{Present(false), Present(true)},
		func(vs []bool) { got = vs },
		func() { elseCalled = true })
	assert.Equal(t, []bool{false, true}, got)
	assert.False(t, elseCalled)

	thenCalled := false
	IfAll([]Option[bool]{Present(true), Absent[bool](), Present(true)},
		func([]bool) { thenCalled = true },
		func() { elseCalled = true })
	assert.False(t, thenCalled)
	assert.True(t, elseCalled)

	// no options: vacuously all present
	IfAll(nil, func(vs []int) { assert.Empty(t, vs) }, nil)

	// a nil else-branch is allowed
	IfAll([]Option[int]{Absent[int]()}, func([]int) { t.Fatal("then must not run") }, nil)
}

func TestIfLet2(t *testing.T) {
	t.Parallel()
	var out string
	IfLet2(Present("n"), Present(2),
		func(s string, n int) { out = s + string(rune('0'+n)) },
		func() { out = "else" })
	assert.Equal(t, "n2", out)

	IfLet2(Present("n"), Absent[int](),
		func(string, int) { out = "then" },
		func() { out = "else" })
	assert.Equal(t, "else", out)
}
