package punycode_test

import (
	"testing"

	"github.com/hueristiq/hq-go-url/idna/punycode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecode(t *testing.T) {
	t.Parallel()

	cases := []struct {
		unicode string
		ascii   string
	}{
		{"example", "example-"},
		{"bücher", "bcher-kva"},
		{"例え", "r8jz45g"},
		{"テスト", "zckzah"},
	}

	for _, tc := range cases {
		t.Run(tc.unicode, func(t *testing.T) {
			t.Parallel()

			encoded, err := punycode.Encode(tc.unicode)
			require.NoError(t, err)
			assert.Equal(t, tc.ascii, encoded)

			decoded, err := punycode.Decode(tc.ascii)
			require.NoError(t, err)
			assert.Equal(t, tc.unicode, decoded)
		})
	}
}

func TestDecodeInvalidDigit(t *testing.T) {
	t.Parallel()

	_, err := punycode.Decode("a-!!!")
	require.Error(t, err)
}
