package host_test

import (
	"testing"

	"github.com/hueristiq/hq-go-url/host"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDomain(t *testing.T) {
	t.Parallel()

	h, err := host.Parse("EXAMPLE.com", true)
	require.NoError(t, err)
	assert.Equal(t, host.KindDomain, h.Kind)
	assert.Equal(t, "example.com", h.Domain)
	assert.Equal(t, "example.com", h.String())
}

func TestParseIDNDomain(t *testing.T) {
	t.Parallel()

	h, err := host.Parse("例え.テスト", true)
	require.NoError(t, err)
	assert.Equal(t, host.KindDomain, h.Kind)
	assert.Equal(t, "xn--r8jz45g.xn--zckzah", h.Domain)
}

func TestParseIPv4Domain(t *testing.T) {
	t.Parallel()

	h, err := host.Parse("192.168.0.1", true)
	require.NoError(t, err)
	assert.Equal(t, host.KindIPv4, h.Kind)
	assert.Equal(t, "192.168.0.1", h.String())
}

func TestParseIPv4EndsInNumber(t *testing.T) {
	t.Parallel()

	h, err := host.Parse("0x1.1", true)
	require.NoError(t, err)
	assert.Equal(t, host.KindIPv4, h.Kind)
}

func TestParseIPv6(t *testing.T) {
	t.Parallel()

	h, err := host.Parse("[::1]", true)
	require.NoError(t, err)
	assert.Equal(t, host.KindIPv6, h.Kind)
	assert.Equal(t, "[::1]", h.String())
}

func TestParseIPv6MissingBracket(t *testing.T) {
	t.Parallel()

	_, err := host.Parse("[::1", true)
	require.Error(t, err)
}

func TestParseOpaqueHost(t *testing.T) {
	t.Parallel()

	h, err := host.Parse("EXAMPLE.com", false)
	require.NoError(t, err)
	assert.Equal(t, host.KindOpaque, h.Kind)
	assert.Equal(t, "EXAMPLE.com", h.String())
}

func TestParseForbiddenCodePoint(t *testing.T) {
	t.Parallel()

	_, err := host.Parse("exa mple.com", false)
	require.Error(t, err)
}

func TestParseEmptyHost(t *testing.T) {
	t.Parallel()

	h, err := host.Parse("", true)
	require.NoError(t, err)
	assert.Equal(t, host.KindEmpty, h.Kind)
}
