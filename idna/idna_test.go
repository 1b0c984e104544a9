package idna_test

import (
	"testing"

	"github.com/hueristiq/hq-go-url/idna"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultFlags() idna.Flags {
	return idna.Flags{
		UseSTD3ASCIIRules: true,
		CheckHyphens:      true,
		CheckBidi:         true,
		CheckJoiners:      true,
		VerifyDNSLength:   true,
	}
}

func TestToASCII(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		domain string
		want   string
	}{
		{"plain ascii", "example.com", "example.com"},
		{"uppercase folds", "EXAMPLE.COM", "example.com"},
		{"japanese labels", "例え.テスト", "xn--r8jz45g.xn--zckzah"},
		{"already encoded passes through", "xn--r8jz45g.xn--zckzah", "xn--r8jz45g.xn--zckzah"},
		{"trailing dot preserved", "example.com.", "example.com."},
		{"eszett transitional off stays valid", "straße.de", "xn--strae-oqa.de"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := idna.ToASCII(tc.domain, defaultFlags())
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestToASCIIDisallowedCodePoint(t *testing.T) {
	t.Parallel()

	_, err := idna.ToASCII("exa mple.com", defaultFlags())
	require.Error(t, err)
}

func TestToASCIIEmptyLabel(t *testing.T) {
	t.Parallel()

	_, err := idna.ToASCII("example..com", defaultFlags())
	require.Error(t, err)
}

func TestToASCIIHyphenRule(t *testing.T) {
	t.Parallel()

	_, err := idna.ToASCII("-example.com", defaultFlags())
	require.Error(t, err)
}

func TestToASCIIDNSLength(t *testing.T) {
	t.Parallel()

	long := make([]byte, 64)
	for i := range long {
		long[i] = 'a'
	}

	_, err := idna.ToASCII(string(long)+".com", defaultFlags())
	require.Error(t, err)
}

func TestToASCIIRoundTripsThroughPunycode(t *testing.T) {
	t.Parallel()

	ascii, err := idna.ToASCII("bücher.example", defaultFlags())
	require.NoError(t, err)
	assert.Equal(t, "xn--bcher-kva.example", ascii)

	again, err := idna.ToASCII(ascii, defaultFlags())
	require.NoError(t, err)
	assert.Equal(t, ascii, again)
}
