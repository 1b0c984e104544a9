package idna_test

import (
	"testing"

	"github.com/hueristiq/hq-go-url/idna"
	"github.com/stretchr/testify/require"
)

func TestToASCIIRejectsLeadingCombiningMark(t *testing.T) {
	t.Parallel()

	_, err := idna.ToASCII("́abc.com", defaultFlags())
	require.Error(t, err)
}

func TestToASCIIRejectsLabelInitialJoiner(t *testing.T) {
	t.Parallel()

	_, err := idna.ToASCII("‌abc.com", defaultFlags())
	require.Error(t, err)
}

func TestToASCIIRejectsDoubleHyphenAtPositionThree(t *testing.T) {
	t.Parallel()

	_, err := idna.ToASCII("ab--cd.com", defaultFlags())
	require.Error(t, err)
}

func TestToASCIIAllowsHyphenElsewhere(t *testing.T) {
	t.Parallel()

	_, err := idna.ToASCII("a-b-c.com", defaultFlags())
	require.NoError(t, err)
}
