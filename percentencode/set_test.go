package percentencode_test

import (
	"testing"

	"github.com/hueristiq/hq-go-url/percentencode"
	"github.com/stretchr/testify/assert"
)

func TestSetAdd(t *testing.T) {
	t.Parallel()

	s := percentencode.New(0x7E)
	s = s.Add('x')

	assert.True(t, s.Contains('x'))
	assert.False(t, s.Contains('y'))
}

func TestSetSub(t *testing.T) {
	t.Parallel()

	s := percentencode.New(0x7E, 'x', 'y')
	s = s.Sub('x')

	assert.False(t, s.Contains('x'))
	assert.True(t, s.Contains('y'))
}

func TestSetUnion(t *testing.T) {
	t.Parallel()

	a := percentencode.New(0x7E, 'a')
	b := percentencode.New(0x7E, 'b')

	u := a.Union(b)

	assert.True(t, u.Contains('a'))
	assert.True(t, u.Contains('b'))
	assert.False(t, u.Contains('c'))
}

func TestSetIntersect(t *testing.T) {
	t.Parallel()

	a := percentencode.New(0x7E, 'a', 'b')
	b := percentencode.New(0x7E, 'b', 'c')

	i := a.Intersect(b)

	assert.True(t, i.Contains('b'))
	assert.False(t, i.Contains('a'))
	assert.False(t, i.Contains('c'))
}

func TestSetThresholdAlwaysMember(t *testing.T) {
	t.Parallel()

	s := percentencode.New(0x7E)

	assert.True(t, s.Contains(0x1F600)) // above threshold: always a member
	assert.False(t, s.Contains('a'))
}

func TestNewExclude(t *testing.T) {
	t.Parallel()

	s := percentencode.NewExclude(0x7E, 'a', 'b')

	assert.False(t, s.Contains('a'))
	assert.False(t, s.Contains('b'))
	assert.True(t, s.Contains('c'))
}

func TestStaticSetsAreLayered(t *testing.T) {
	t.Parallel()

	// Every C0-control-set member must also be a fragment/query/path/userinfo
	// set member: each of these static sets extends the C0 control set.
	for c := rune(0); c <= 0x1F; c++ {
		assert.True(t, percentencode.C0ControlSet.Contains(c))
		assert.True(t, percentencode.FragmentSet.Contains(c))
		assert.True(t, percentencode.QuerySet.Contains(c))
		assert.True(t, percentencode.PathSet.Contains(c))
		assert.True(t, percentencode.UserinfoSet.Contains(c))
	}

	assert.True(t, percentencode.FragmentSet.Contains('"'))
	assert.True(t, percentencode.QuerySet.Contains('#'))
	assert.True(t, percentencode.SpecialQuerySet.Contains('\''))
	assert.True(t, percentencode.PathSet.Contains('?'))
	assert.True(t, percentencode.UserinfoSet.Contains('@'))

	assert.False(t, percentencode.UserinfoSet.Contains('a'))
}
