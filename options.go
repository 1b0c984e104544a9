package url

import (
	"github.com/hueristiq/hq-go-url/percentencode"
)

// EncodeSets bundles the percent-encode sets the state machine applies to
// each component (spec.md §4.1, §4.6). The zero value is meaningless; use
// DefaultEncodeSets or SafestEncodeSets.
type EncodeSets struct {
	C0           percentencode.Set
	Userinfo     percentencode.Set
	Path         percentencode.Set
	Query        percentencode.Set
	SpecialQuery percentencode.Set
	Fragment     percentencode.Set
}

// DefaultEncodeSets are the URL Standard's own encode sets (spec.md §4.1
// "Static encode sets").
func DefaultEncodeSets() (sets EncodeSets) {
	return EncodeSets{
		C0:           percentencode.C0ControlSet,
		Userinfo:     percentencode.UserinfoSet,
		Path:         percentencode.PathSet,
		Query:        percentencode.QuerySet,
		SpecialQuery: percentencode.SpecialQuerySet,
		Fragment:     percentencode.FragmentSet,
	}
}

// SafestEncodeSets are the unions of the URL Standard's sets with their RFC
// 3986 and RFC 2396 counterparts (spec.md §4.8), used by the safe-URL
// facade so the result is valid under all three standards at once.
func SafestEncodeSets() (sets EncodeSets) {
	return EncodeSets{
		C0:           percentencode.C0ControlSet,
		Userinfo:     percentencode.SafestUserinfoSet,
		Path:         percentencode.SafestPathSet,
		Query:        percentencode.SafestQuerySet,
		SpecialQuery: percentencode.SafestQuerySet,
		Fragment:     percentencode.SafestFragmentSet,
	}
}

// Option configures a Parse call using the functional-options pattern.
type Option func(*parseConfig)

type parseConfig struct {
	base         *URL
	encodingName string
	sets         EncodeSets
}

func newParseConfig() (cfg *parseConfig) {
	return &parseConfig{encodingName: "utf-8", sets: DefaultEncodeSets()}
}

// WithBase sets the base URL relative resolution is performed against.
func WithBase(base *URL) Option {
	return func(cfg *parseConfig) {
		cfg.base = base
	}
}

// WithEncoding sets the output encoding label used to percent-encode the
// query component (spec.md §4.6 QUERY, §4.2). Defaults to "utf-8".
func WithEncoding(label string) Option {
	return func(cfg *parseConfig) {
		cfg.encodingName = label
	}
}

// WithEncodeSets overrides the percent-encode sets applied to each
// component. Used internally by SafeURL; exposed for callers that need the
// RFC 3986/2396-safe variants without the rest of the safe-URL facade.
func WithEncodeSets(sets EncodeSets) Option {
	return func(cfg *parseConfig) {
		cfg.sets = sets
	}
}
