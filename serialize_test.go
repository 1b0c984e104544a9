package url_test

import (
	"testing"

	"github.com/hueristiq/hq-go-url"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerializeCanonicalDropsDefaultPort(t *testing.T) {
	t.Parallel()

	u, err := url.Parse("http://example.com:80/")
	require.NoError(t, err)

	assert.Equal(t, "http://example.com/", url.Serialize(u, url.SerializeOptions{Canonicalize: true}))
}

func TestSerializeNonCanonicalKeepsDefaultPort(t *testing.T) {
	t.Parallel()

	u, err := url.Parse("http://example.com:80/")
	require.NoError(t, err)

	assert.Equal(t, "http://example.com:80/", url.Serialize(u, url.SerializeOptions{Canonicalize: false}))
}

func TestSerializeExcludeFragment(t *testing.T) {
	t.Parallel()

	u, err := url.Parse("http://example.com/#frag")
	require.NoError(t, err)

	assert.Equal(t, "http://example.com/", url.Serialize(u, url.SerializeOptions{ExcludeFragment: true, Canonicalize: true}))
}

func TestSerializeOpaquePath(t *testing.T) {
	t.Parallel()

	u, err := url.Parse("mailto:user@example.com")
	require.NoError(t, err)

	assert.Equal(t, "mailto:user@example.com", u.String())
}

func TestSerializeBarePasswordColonPreservedNonCanonical(t *testing.T) {
	t.Parallel()

	u, err := url.Parse("http://user:@example.com/")
	require.NoError(t, err)

	assert.True(t, u.PasswordTokenSeen)
	assert.Equal(t, "http://user:@example.com/", url.Serialize(u, url.SerializeOptions{Canonicalize: false}))
	assert.Equal(t, "http://user@example.com/", url.Serialize(u, url.SerializeOptions{Canonicalize: true}))
}
