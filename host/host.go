package host

import (
	"strings"

	hqgoerrors "github.com/hueristiq/hq-go-errors"
	"github.com/hueristiq/hq-go-url/idna"
	"github.com/hueristiq/hq-go-url/infra"
	"github.com/hueristiq/hq-go-url/ipaddr"
	"github.com/hueristiq/hq-go-url/percentencode"
)

// Kind identifies which of the URL Standard's four host variants a Host
// holds (spec.md §4.5).
type Kind int

const (
	KindDomain Kind = iota
	KindIPv4
	KindIPv6
	KindOpaque
	KindEmpty
)

// Host is the parsed, canonical form of a URL's host component: exactly one
// of its typed fields is meaningful, selected by Kind.
type Host struct {
	Kind Kind

	Domain string
	IPv4   uint32
	IPv6   [8]uint16
	Opaque string
}

// String renders h in its canonical serialized form (spec.md §4.4, §4.5):
// IPv6 addresses are bracketed, everything else is returned as stored.
func (h Host) String() (out string) {
	switch h.Kind {
	case KindIPv6:
		return ipaddr.SerializeIPv6(h.IPv6)
	case KindIPv4:
		return ipaddr.SerializeIPv4(h.IPv4)
	case KindDomain:
		return h.Domain
	case KindOpaque:
		return h.Opaque
	default:
		return ""
	}
}

// forbiddenHostCodePoints is the URL Standard's "forbidden host code point"
// set: NUL, tab, CR, LF, space and the delimiters that would otherwise make
// the authority ambiguous (spec.md §4.5).
var forbiddenHostCodePoints = map[rune]struct{}{
	0x00: {}, '\t': {}, '\n': {}, '\r': {}, ' ': {},
	'#': {}, '/': {}, ':': {}, '<': {}, '>': {}, '?': {}, '@': {},
	'[': {}, '\\': {}, ']': {}, '^': {}, '|': {},
}

// Parse classifies and validates a host string per the URL Standard's host
// parser (spec.md §4.5): a bracketed IPv6 literal, an opaque host (for
// non-special schemes), or (for special schemes) an ASCII domain, which is
// further reinterpreted as an IPv4 address when its last label "ends in a
// number".
func Parse(input string, isSpecial bool) (h Host, err error) {
	if input == "" {
		h = Host{Kind: KindEmpty}

		return
	}

	if strings.HasPrefix(input, "[") {
		if !strings.HasSuffix(input, "]") {
			err = hqgoerrors.New("host: unmatched '[' in host " + input)

			return
		}

		var addr [8]uint16

		addr, err = ipaddr.ParseIPv6(input[1 : len(input)-1])
		if err != nil {
			return
		}

		h = Host{Kind: KindIPv6, IPv6: addr}

		return
	}

	if !isSpecial {
		if err = checkForbidden(input, isForbiddenHostCodePoint); err != nil {
			return
		}

		opaque := percentencode.Encoder{Set: percentencode.C0ControlSet}.Encode(input)

		h = Host{Kind: KindOpaque, Opaque: opaque}

		return
	}

	decoded := percentencode.Decode(input)

	ascii, err := idna.ToASCII(decoded, idna.Flags{
		UseSTD3ASCIIRules: false,
		CheckHyphens:      false,
		CheckBidi:         true,
		CheckJoiners:      true,
		VerifyDNSLength:   false,
	})
	if err != nil {
		return
	}

	if err = checkForbidden(ascii, isForbiddenDomainCodePoint); err != nil {
		return
	}

	if endsInNumber(ascii) {
		var addr uint32

		addr, err = ipaddr.ParseIPv4(ascii)
		if err != nil {
			return
		}

		h = Host{Kind: KindIPv4, IPv4: addr}

		return
	}

	h = Host{Kind: KindDomain, Domain: ascii}

	return
}

func isForbiddenHostCodePoint(c rune) (ok bool) {
	_, ok = forbiddenHostCodePoints[c]

	return
}

// isForbiddenDomainCodePoint is the forbidden-host set plus every C0
// control, '%' and DEL (spec.md §4.5).
func isForbiddenDomainCodePoint(c rune) (ok bool) {
	if isForbiddenHostCodePoint(c) {
		return true
	}

	return infra.IsC0Control(c) || c == '%' || c == 0x7F
}

func checkForbidden(s string, forbidden func(rune) bool) (err error) {
	for _, c := range s {
		if forbidden(c) {
			err = hqgoerrors.New("host: forbidden code point in host " + s)

			return
		}
	}

	return
}

// endsInNumber implements the URL Standard's "ends in a number" checker
// (spec.md §4.5): the domain's last non-empty label, after discarding a
// single trailing empty label, is all ASCII digits, or parses as a legacy
// IPv4 number — hex digits after a "0x"/"0X" prefix, or octal digits after
// a bare leading "0" (matching ipaddr.parseIPv4Number's radix rules; unlike
// the hex case, legacy octal has no "0o" letter).
func endsInNumber(domain string) (ok bool) {
	labels := strings.Split(domain, ".")

	if len(labels) > 0 && labels[len(labels)-1] == "" {
		labels = labels[:len(labels)-1]
	}

	if len(labels) == 0 {
		return false
	}

	last := labels[len(labels)-1]

	if last == "" {
		return false
	}

	switch {
	case allRadix(last, 10):
		return true
	case len(last) >= 2 && last[0] == '0' && (last[1] == 'x' || last[1] == 'X'):
		return allRadix(last[2:], 16)
	default:
		return false
	}
}

func allRadix(s string, radix int) (ok bool) {
	if s == "" {
		return false
	}

	for _, c := range s {
		switch radix {
		case 16:
			if !infra.IsASCIIHexDigit(c) {
				return false
			}
		case 8:
			if c < '0' || c > '7' {
				return false
			}
		default:
			if !infra.IsASCIIDigit(c) {
				return false
			}
		}
	}

	return true
}
