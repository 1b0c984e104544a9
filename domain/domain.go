// Package domain splits an ASCII domain name into its subdomain, second-level
// domain (SLD) and top-level domain (TLD) using a suffix array over a list of
// known TLDs. It is layered on top of the core WHATWG host parser: once a URL's
// host has been resolved to an ascii domain, this package can further decompose
// it for classification, analytics or display purposes.
//
// This is a supplemental feature, not part of the WHATWG URL standard itself,
// carried over from the prior revision of this repository.
package domain

import (
	"index/suffixarray"
	"strings"

	"github.com/hueristiq/hq-go-url/tlds"
)

// Domain represents a parsed domain name, broken down into three main components:
//   - Subdomain: the subdomain part of the domain (e.g., "www" in "www.example.com").
//   - SLD: the second-level domain, the core part of the domain (e.g., "example").
//   - TLD: the top-level domain, the domain suffix (e.g., "com").
type Domain struct {
	Subdomain string
	SLD       string
	TLD       string
}

// String reassembles the components of the domain back into a complete domain
// name string. Non-empty components are joined with a dot ("."); missing
// components are omitted.
func (d *Domain) String() (domain string) {
	var parts []string

	if d.Subdomain != "" {
		parts = append(parts, d.Subdomain)
	}

	if d.SLD != "" {
		parts = append(parts, d.SLD)
	}

	if d.TLD != "" {
		parts = append(parts, d.TLD)
	}

	domain = strings.Join(parts, ".")

	return
}

// Interface defines a standard interface for domain name representations.
type Interface interface {
	String() (domain string)
}

var _ Interface = (*Domain)(nil)

// Parser splits full domain strings into subdomain, SLD and TLD, using a
// suffix array over a list of known TLDs for efficient matching.
type Parser struct {
	sa *suffixarray.Index
}

// Parse takes a full ascii domain string and splits it into subdomain, SLD
// and TLD. If no known TLD is found, the whole input is returned as the SLD.
func (p *Parser) Parse(unparsed string) (parsed *Domain) {
	parsed = &Domain{}

	parts := strings.Split(unparsed, ".")

	if len(parts) <= 1 {
		parsed.SLD = unparsed

		return
	}

	offset := p.findTLDOffset(parts)

	if offset < 0 {
		parsed.SLD = unparsed

		return
	}

	parsed.Subdomain = strings.Join(parts[:offset], ".")
	parsed.SLD = parts[offset]
	parsed.TLD = strings.Join(parts[offset+1:], ".")

	return
}

// WithTLDs reconfigures the parser to use a custom set of TLDs instead of the
// bundled official+pseudo lists.
func (p *Parser) WithTLDs(TLDs ...string) {
	p.sa = suffixarray.New([]byte("\x00" + strings.Join(TLDs, "\x00") + "\x00"))
}

// findTLDOffset walks the domain parts from right to left, using the suffix
// array to find the longest known TLD suffix, and returns the index one
// position before it begins (i.e. the SLD's index), or -1 if none matched.
func (p *Parser) findTLDOffset(parts []string) (offset int) {
	offset = -1

	partsLastIndex := len(parts) - 1

	for i := partsLastIndex; i >= 0; i-- {
		candidate := strings.Join(parts[i:], ".")

		indices := p.sa.Lookup([]byte(candidate), -1)

		if len(indices) > 0 {
			offset = i - 1
		} else {
			break
		}
	}

	return
}

// ParserInterface defines the interface for domain-parsing functionality.
type ParserInterface interface {
	Parse(unparsed string) (parsed *Domain)
}

var _ ParserInterface = (*Parser)(nil)

// Option configures a Parser instance, e.g. to supply a custom TLD list.
type Option func(parser *Parser)

// NewParser creates a Parser initialized with the bundled official and
// pseudo TLD lists. Additional Options may override this default.
func NewParser(options ...Option) (parser *Parser) {
	parser = &Parser{}

	TLDs := make([]string, 0, len(tlds.Official)+len(tlds.Pseudo))

	TLDs = append(TLDs, tlds.Official...)
	TLDs = append(TLDs, tlds.Pseudo...)

	parser.sa = suffixarray.New([]byte("\x00" + strings.Join(TLDs, "\x00") + "\x00"))

	for _, option := range options {
		option(parser)
	}

	return
}

// WithTLDs returns an Option that configures the Parser with a custom TLD list.
func WithTLDs(TLDs ...string) Option {
	return func(p *Parser) {
		p.WithTLDs(TLDs...)
	}
}
