package percentencode_test

import (
	"testing"

	"github.com/hueristiq/hq-go-url/percentencode"
	"github.com/stretchr/testify/assert"
)

func TestDecode(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		out  string
	}{
		{"no escapes", "example.com", "example.com"},
		{"simple escape", "a%20b", "a b"},
		{"lowercase hex", "a%2fb", "a/b"},
		{"trailing percent", "a%", "a%"},
		{"incomplete escape", "a%2", "a%2"},
		{"invalid hex passes through", "a%zz", "a%zz"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.out, percentencode.Decode(tc.in))
		})
	}
}
