package idna

import (
	"fmt"
	"strings"
	"unicode"

	hqgoerrors "github.com/hueristiq/hq-go-errors"
	"github.com/hueristiq/hq-go-url/idna/punycode"
	"golang.org/x/text/unicode/bidi"
	"golang.org/x/text/unicode/norm"
)

const acePrefix = "xn--"

// ToASCII runs the UTS #46 domain-to-ASCII algorithm over domain and returns
// its ASCII-compatible form (spec.md §4.3).
func ToASCII(domain string, flags Flags) (ascii string, err error) {
	mapped, err := mapCodePoints(domain, flags)
	if err != nil {
		return
	}

	normalized := norm.NFC.String(mapped)

	bidiDomain := domainNeedsBidiCheck(normalized)

	labels := strings.Split(normalized, ".")

	out := make([]string, len(labels))

	for i, label := range labels {
		var converted string

		converted, err = processLabel(label, flags, bidiDomain, i == len(labels)-1)
		if err != nil {
			return
		}

		out[i] = converted
	}

	ascii = strings.Join(out, ".")

	if flags.VerifyDNSLength {
		if err = verifyDNSLength(ascii); err != nil {
			return
		}
	}

	return
}

// mapCodePoints applies step 1 of spec.md §4.3: look up every code point in
// the mapping table and act on its status.
func mapCodePoints(domain string, flags Flags) (out string, err error) {
	var b strings.Builder

	for _, c := range domain {
		entry, ok := Lookup(c)
		if !ok {
			err = hqgoerrors.New(fmt.Sprintf("idna: code point U+%04X is not in the mapping table", c))

			return
		}

		switch entry.Status {
		case StatusDisallowed:
			err = hqgoerrors.New(fmt.Sprintf("idna: disallowed code point U+%04X", c))

			return
		case StatusDisallowedSTD3Valid:
			if flags.UseSTD3ASCIIRules {
				err = hqgoerrors.New(fmt.Sprintf("idna: disallowed (STD3) code point U+%04X", c))

				return
			}

			b.WriteRune(c)
		case StatusDisallowedSTD3Mapped:
			if flags.UseSTD3ASCIIRules {
				err = hqgoerrors.New(fmt.Sprintf("idna: disallowed (STD3) code point U+%04X", c))

				return
			}

			b.WriteString(replacement(entry, c))
		case StatusIgnored:
			// dropped
		case StatusMapped:
			b.WriteString(replacement(entry, c))
		case StatusDeviation:
			if flags.TransitionalProcessing {
				b.WriteString(entry.Mapping)
			} else {
				b.WriteRune(c)
			}
		case StatusValid:
			b.WriteRune(c)
		}
	}

	out = b.String()

	return
}

// replacement resolves a StatusMapped/StatusDisallowedSTD3Mapped entry's
// substitution: either its explicit Mapping, or (if empty) a simple-case-fold
// fallback via unicode.ToLower, per the convention documented in
// tables_data.go.
func replacement(entry mappingEntry, c rune) (out string) {
	if entry.Mapping != "" {
		return entry.Mapping
	}

	return string(unicode.ToLower(c))
}

// domainNeedsBidiCheck reports whether any code point in the (already
// mapped) domain has a bidi class of R, AL or AN, which is what activates
// the per-label bidi rule across the whole domain (spec.md §4.3 step 3).
func domainNeedsBidiCheck(domain string) (ok bool) {
	for _, c := range domain {
		p, _ := bidi.LookupRune(c)

		switch p.Class() {
		case bidi.R, bidi.AL, bidi.AN:
			return true
		}
	}

	return
}

// processLabel implements spec.md §4.3 step 4: decode+validate an "xn--"
// label, or validate-then-encode a plain one.
func processLabel(label string, flags Flags, bidiDomain, isLast bool) (out string, err error) {
	if label == "" {
		if isLast {
			return "", nil
		}

		err = hqgoerrors.New("idna: empty label")

		return
	}

	if strings.HasPrefix(strings.ToLower(label), acePrefix) {
		var decoded string

		decoded, err = punycode.Decode(label[len(acePrefix):])
		if err != nil {
			err = hqgoerrors.Wrap(err, fmt.Sprintf("idna: invalid punycode label %q", label))

			return
		}

		if err = validateLabel(decoded, flags.NonTransitional(), bidiDomain); err != nil {
			return
		}

		out = label

		return
	}

	if err = validateLabel(label, flags, bidiDomain); err != nil {
		return
	}

	if isASCII(label) {
		out = label

		return
	}

	var encoded string

	encoded, err = punycode.Encode(label)
	if err != nil {
		return
	}

	out = acePrefix + encoded

	return
}

func isASCII(s string) (ok bool) {
	for _, c := range s {
		if c > 0x7F {
			return false
		}
	}

	return true
}

// verifyDNSLength enforces the syntactic DNS length limits (spec.md §4.3
// step 5): total length (excluding a trailing dot) 1-253, and each label
// 1-63.
func verifyDNSLength(domain string) (err error) {
	trimmed := strings.TrimSuffix(domain, ".")

	if len(trimmed) < 1 || len(trimmed) > 253 {
		err = hqgoerrors.New("idna: domain name length out of range")

		return
	}

	for _, label := range strings.Split(trimmed, ".") {
		if len(label) < 1 || len(label) > 63 {
			err = hqgoerrors.New("idna: label length out of range")

			return
		}
	}

	return
}
