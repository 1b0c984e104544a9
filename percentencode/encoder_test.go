package percentencode_test

import (
	"testing"

	"github.com/hueristiq/hq-go-url/percentencode"
	"github.com/stretchr/testify/assert"
)

func TestEncoderIdempotentOnExistingEscape(t *testing.T) {
	t.Parallel()

	enc := percentencode.Encoder{Set: percentencode.PathSet}

	out := enc.Encode("a%2Fb")

	assert.Equal(t, "a%2Fb", out)
}

func TestEncoderEncodesSpace(t *testing.T) {
	t.Parallel()

	enc := percentencode.Encoder{Set: percentencode.QuerySet}

	out := enc.Encode("a b")

	assert.Equal(t, "a%20b", out)
}

func TestEncoderDoesNotTreatBarePercentAsEscape(t *testing.T) {
	t.Parallel()

	enc := percentencode.Encoder{Set: percentencode.SafestPathSet}

	out := enc.Encode("100% done")

	assert.Equal(t, "100%25%20done", out)
}

func TestEncoderSpaceAsPlus(t *testing.T) {
	t.Parallel()

	enc := percentencode.Encoder{Set: percentencode.QuerySet, SpaceAsPlus: true}

	out := enc.Encode("a b")

	assert.Equal(t, "a+b", out)
}

func TestEncoderLeavesUnreservedAlone(t *testing.T) {
	t.Parallel()

	enc := percentencode.Encoder{Set: percentencode.UserinfoSet}

	out := enc.Encode("abcXYZ019-._~")

	assert.Equal(t, "abcXYZ019-._~", out)
}
