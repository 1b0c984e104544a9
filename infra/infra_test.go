package infra_test

import (
	"testing"

	"github.com/hueristiq/hq-go-url/infra"
	"github.com/stretchr/testify/assert"
)

func TestIsASCIIAlpha(t *testing.T) {
	t.Parallel()

	assert.True(t, infra.IsASCIIAlpha('a'))
	assert.True(t, infra.IsASCIIAlpha('Z'))
	assert.False(t, infra.IsASCIIAlpha('9'))
	assert.False(t, infra.IsASCIIAlpha('-'))
}

func TestIsASCIIDigit(t *testing.T) {
	t.Parallel()

	assert.True(t, infra.IsASCIIDigit('0'))
	assert.True(t, infra.IsASCIIDigit('9'))
	assert.False(t, infra.IsASCIIDigit('a'))
}

func TestIsASCIIHexDigitAndValue(t *testing.T) {
	t.Parallel()

	cases := []struct {
		c     rune
		valid bool
		value int
	}{
		{'0', true, 0},
		{'9', true, 9},
		{'a', true, 10},
		{'f', true, 15},
		{'A', true, 10},
		{'F', true, 15},
		{'g', false, 0},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.valid, infra.IsASCIIHexDigit(tc.c))

		if tc.valid {
			assert.Equal(t, tc.value, infra.HexValue(tc.c))
		}
	}
}

func TestIsC0Control(t *testing.T) {
	t.Parallel()

	assert.True(t, infra.IsC0Control(0x00))
	assert.True(t, infra.IsC0Control(0x1F))
	assert.False(t, infra.IsC0Control(0x20))
}

func TestIsC0ControlOrSpace(t *testing.T) {
	t.Parallel()

	assert.True(t, infra.IsC0ControlOrSpace(0x20))
	assert.True(t, infra.IsC0ControlOrSpace(0x00))
	assert.False(t, infra.IsC0ControlOrSpace('a'))
}

func TestIsASCIITabOrNewline(t *testing.T) {
	t.Parallel()

	assert.True(t, infra.IsASCIITabOrNewline('\t'))
	assert.True(t, infra.IsASCIITabOrNewline('\n'))
	assert.True(t, infra.IsASCIITabOrNewline('\r'))
	assert.False(t, infra.IsASCIITabOrNewline(' '))
}

func TestIsASCIIWhitespace(t *testing.T) {
	t.Parallel()

	for _, c := range []rune{'\t', '\n', '\f', '\r', ' '} {
		assert.True(t, infra.IsASCIIWhitespace(c))
	}

	assert.False(t, infra.IsASCIIWhitespace('a'))
}
