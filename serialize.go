package url

import (
	"strconv"
	"strings"

	"github.com/hueristiq/hq-go-url/schemes"
)

// SerializeOptions controls Serialize's output (spec.md §4.7).
type SerializeOptions struct {
	// ExcludeFragment omits "#fragment" even when the URL has one.
	ExcludeFragment bool

	// Canonicalize, when true, drops every syntactic-shadow hint (default
	// port, empty-password/port delimiters) and emits the minimal canonical
	// form. When false, the original syntactic choices are reproduced where
	// the result is still a valid URL (spec.md §3 "Syntactic shadow
	// fields", §9).
	Canonicalize bool
}

// Serialize renders u back into a URL string (spec.md §4.7).
func Serialize(u *URL, opts SerializeOptions) (out string) {
	var b strings.Builder

	b.WriteString(u.Scheme)
	b.WriteByte(':')

	switch {
	case u.HasHost:
		b.WriteString("//")

		if u.includesCredentials() || (u.PasswordTokenSeen && !opts.Canonicalize) {
			b.WriteString(u.Username)

			if u.Password != "" || (u.PasswordTokenSeen && !opts.Canonicalize) {
				b.WriteByte(':')
				b.WriteString(u.Password)
			}

			b.WriteByte('@')
		}

		b.WriteString(u.Host.String())

		switch {
		case u.HasPort:
			b.WriteByte(':')
			b.WriteString(formatPort(u.Port))
		case !opts.Canonicalize && u.DefaultPortSeen:
			if def, ok := schemes.DefaultPort(u.Scheme); ok {
				b.WriteByte(':')
				b.WriteString(formatPort(uint16(def)))
			}
		case !opts.Canonicalize && u.PortTokenSeen:
			b.WriteByte(':')
		}
	case u.PathKind == PathStructured && len(u.Segments) > 0 && u.Segments[0] == "":
		b.WriteString("/.")
	}

	switch u.PathKind {
	case PathOpaque:
		b.WriteString(u.Opaque)
	default:
		if len(u.Segments) == 1 && u.Segments[0] == "" && u.PathTokenSeen && !opts.Canonicalize {
			break
		}

		for _, seg := range u.Segments {
			b.WriteByte('/')
			b.WriteString(seg)
		}
	}

	if u.HasQuery || (!opts.Canonicalize && u.QueryTokenSeen) {
		b.WriteByte('?')
		b.WriteString(u.Query)
	}

	if !opts.ExcludeFragment && (u.HasFragment || (!opts.Canonicalize && u.FragmentTokenSeen)) {
		b.WriteByte('#')
		b.WriteString(u.Fragment)
	}

	out = b.String()

	return
}

// String renders u with Canonicalize=true and no excluded components, the
// common case.
func (u *URL) String() (out string) {
	return Serialize(u, SerializeOptions{Canonicalize: true})
}

func formatPort(port uint16) (out string) {
	return strconv.Itoa(int(port))
}
