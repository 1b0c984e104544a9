package domain_test

import (
	"testing"

	"github.com/hueristiq/hq-go-url/domain"
	"github.com/stretchr/testify/assert"
)

func TestDomainString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   domain.Domain
		want string
	}{
		{"full", domain.Domain{Subdomain: "www", SLD: "example", TLD: "com"}, "www.example.com"},
		{"no subdomain", domain.Domain{SLD: "example", TLD: "com"}, "example.com"},
		{"sld only", domain.Domain{SLD: "localhost"}, "localhost"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, tt.in.String())
		})
	}
}

func TestParserParse(t *testing.T) {
	t.Parallel()

	p := domain.NewParser()

	tests := []struct {
		name string
		in   string
		want domain.Domain
	}{
		{"simple", "www.example.com", domain.Domain{Subdomain: "www", SLD: "example", TLD: "com"}},
		{"multi-label subdomain", "a.b.example.com", domain.Domain{Subdomain: "a.b", SLD: "example", TLD: "com"}},
		{"two known tld labels", "example.co.uk", domain.Domain{Subdomain: "example", SLD: "co", TLD: "uk"}},
		{"single label", "localhost", domain.Domain{SLD: "localhost"}},
		{"unknown tld", "example.invalidtld", domain.Domain{SLD: "example.invalidtld"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := p.Parse(tt.in)
			assert.Equal(t, tt.want.Subdomain, got.Subdomain)
			assert.Equal(t, tt.want.SLD, got.SLD)
			assert.Equal(t, tt.want.TLD, got.TLD)
		})
	}
}

func TestParserWithTLDs(t *testing.T) {
	t.Parallel()

	p := domain.NewParser(domain.WithTLDs("internal"))

	got := p.Parse("host.service.internal")
	assert.Equal(t, "host", got.Subdomain)
	assert.Equal(t, "service", got.SLD)
	assert.Equal(t, "internal", got.TLD)

	got = p.Parse("example.com")
	assert.Equal(t, "example.com", got.SLD)
}
