package parser_test

import (
	"testing"

	"github.com/hueristiq/hq-go-url/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURLParserParse(t *testing.T) {
	t.Parallel()

	p := parser.NewURLParser()

	u, err := p.Parse("https://www.example.com:8080/path?q=1#f")
	require.NoError(t, err)
	assert.Equal(t, "https", u.Scheme)
	assert.Equal(t, "www.example.com", u.Host.Domain)
	assert.EqualValues(t, 8080, u.Port)
	require.NotNil(t, u.Domain)
	assert.Equal(t, "www", u.Domain.Subdomain)
	assert.Equal(t, "example", u.Domain.SLD)
	assert.Equal(t, "com", u.Domain.TLD)
}

func TestURLParserParseIPv4HostHasNoDomain(t *testing.T) {
	t.Parallel()

	p := parser.NewURLParser()

	u, err := p.Parse("http://192.168.0.1/path")
	require.NoError(t, err)
	assert.Nil(t, u.Domain)
}

func TestURLParserParseIPv6HostHasNoDomain(t *testing.T) {
	t.Parallel()

	p := parser.NewURLParser()

	u, err := p.Parse("https://[2001:db8::1]:17000/path")
	require.NoError(t, err)
	assert.Nil(t, u.Domain)
}

func TestURLParserParseInvalidURLFails(t *testing.T) {
	t.Parallel()

	p := parser.NewURLParser()

	_, err := p.Parse("http://[::1/")
	require.Error(t, err)
}

func TestURLParserWithDefaultScheme(t *testing.T) {
	t.Parallel()

	p := parser.NewURLParser(parser.URLParserWithDefaultScheme("https"))

	tests := []struct {
		name   string
		url    string
		scheme string
	}{
		{"no scheme", "example.com/path", "https"},
		{"bare ://", "://example.com/path", "https"},
		{"scheme already present", "http://example.com/path", "http"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			u, err := p.Parse(tt.url)
			require.NoError(t, err)
			assert.Equal(t, tt.scheme, u.Scheme)
			assert.Equal(t, "example.com", u.Host.Domain)
		})
	}
}
