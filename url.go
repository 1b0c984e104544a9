// Package url implements the WHATWG URL Standard's parser and serializer
// (spec.md §3, §4.6, §4.7), on top of the host, IPv4/IPv6 and
// percent-encoding machinery in the sibling packages.
package url

import (
	"github.com/hueristiq/hq-go-url/host"
	"github.com/hueristiq/hq-go-url/schemes"
)

// PathKind distinguishes a URL's structured (segmented) path from an opaque
// one (spec.md §3, GLOSSARY "Opaque path").
type PathKind int

const (
	PathStructured PathKind = iota
	PathOpaque
)

// URL is the in-memory URL record produced by Parse (spec.md §3). Only one
// of PathKind's two representations of Path is meaningful at a time:
// Segments when PathKind is PathStructured, Opaque when PathKind is PathOpaque.
type URL struct {
	Scheme   string
	Username string
	Password string

	HasHost bool
	Host    host.Host

	HasPort bool
	Port    uint16

	PathKind PathKind
	Segments []string
	Opaque   string

	HasQuery bool
	Query    string

	HasFragment bool
	Fragment    string

	// Syntactic shadow fields (spec.md §3, §9): recorded so that
	// serialization with canonicalize=false can reproduce delimiters that
	// appeared in the input even though what follows them is empty.
	// Parse never sets PathTokenSeen; Serialize reads it only when a caller
	// has set it.
	PasswordTokenSeen bool
	PortTokenSeen     bool
	DefaultPortSeen   bool
	PathTokenSeen     bool
	QueryTokenSeen    bool
	FragmentTokenSeen bool
}

// IsSpecial reports whether u.Scheme is one of the URL Standard's special
// schemes (spec.md §3 "is_special").
func (u *URL) IsSpecial() (ok bool) {
	return schemes.IsSpecial(u.Scheme)
}

// HasOpaquePath reports whether u's path is the single-string ("opaque")
// variant rather than a list of segments.
func (u *URL) HasOpaquePath() (ok bool) {
	return u.PathKind == PathOpaque
}

// includesCredentials reports whether u carries a non-empty username or
// password, the condition Serialize uses to decide whether an "@"
// must be emitted (spec.md §4.7).
func (u *URL) includesCredentials() (ok bool) {
	return u.Username != "" || u.Password != ""
}
