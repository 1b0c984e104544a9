package percentencode_test

import (
	"testing"

	"github.com/hueristiq/hq-go-url/percentencode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding"
)

func TestResolveEncodingDefaultsToUTF8(t *testing.T) {
	t.Parallel()

	enc, name, err := percentencode.ResolveEncoding("")

	require.NoError(t, err)
	assert.NotNil(t, enc)
	assert.Equal(t, "utf-8", name)
}

func TestResolveEncodingNormalizesLabel(t *testing.T) {
	t.Parallel()

	enc, _, err := percentencode.ResolveEncoding("  ISO-8859-1  ")

	require.NoError(t, err)
	assert.NotNil(t, enc)
}

func TestResolveEncodingUnknownLabelErrors(t *testing.T) {
	t.Parallel()

	_, _, err := percentencode.ResolveEncoding("not-a-real-encoding-label")

	require.Error(t, err)
}

func TestOutputEncodingForcesUTF8ForSpecialScheme(t *testing.T) {
	t.Parallel()

	requested, requestedName, err := percentencode.ResolveEncoding("iso-8859-1")
	require.NoError(t, err)

	enc, name := percentencode.OutputEncoding(requested, requestedName, true, "https")

	assert.Equal(t, encoding.Nop, enc)
	assert.Equal(t, "utf-8", name)
}

func TestOutputEncodingHonoursRequestedForNonSpecialScheme(t *testing.T) {
	t.Parallel()

	requested, requestedName, err := percentencode.ResolveEncoding("iso-8859-1")
	require.NoError(t, err)

	enc, name := percentencode.OutputEncoding(requested, requestedName, false, "foo")

	assert.Equal(t, requested, enc)
	assert.Equal(t, requestedName, name)
}

func TestOutputEncodingHonoursRequestedForWebSocketSchemes(t *testing.T) {
	t.Parallel()

	requested, requestedName, err := percentencode.ResolveEncoding("iso-8859-1")
	require.NoError(t, err)

	for _, scheme := range []string{"ws", "wss"} {
		enc, name := percentencode.OutputEncoding(requested, requestedName, true, scheme)

		assert.Equal(t, requested, enc)
		assert.Equal(t, requestedName, name)
	}
}

// TestEncoderFallsBackToNumericCharacterReference exercises the only
// caller-visible branch of the non-UTF-8 output-encoding path (spec.md
// §4.2, §9): a code point the narrower codec cannot represent is replaced
// by an XML numeric character reference before the percent-encode walk.
func TestEncoderFallsBackToNumericCharacterReference(t *testing.T) {
	t.Parallel()

	narrow, _, err := percentencode.ResolveEncoding("iso-8859-1")
	require.NoError(t, err)

	enc := percentencode.Encoder{Encoding: narrow, Set: percentencode.QuerySet}

	out := enc.Encode("a\U0001F43Cb")

	assert.Equal(t, "a&%23128060;b", out)
}
