package idna

import (
	"unicode"

	hqgoerrors "github.com/hueristiq/hq-go-errors"
	"golang.org/x/text/unicode/bidi"
)

// runeBidiClass returns c's bidi character class.
func runeBidiClass(c rune) bidi.Class {
	p, _ := bidi.LookupRune(c)

	return p.Class()
}

const (
	zwnj = '‌'
	zwj  = '‍'
)

// validateLabel applies spec.md §4.3 step 4's per-label validation: the
// length check, the hyphen rule, the "leading combining mark" rule, the
// CONTEXTJ joiner rule and (when the domain is bidi-applicable) the bidi
// rule.
func validateLabel(label string, flags Flags, bidiDomain bool) (err error) {
	runes := []rune(label)

	if len(runes) == 0 {
		err = hqgoerrors.New("idna: empty label")

		return
	}

	if flags.CheckHyphens {
		if err = checkHyphens(runes); err != nil {
			return
		}
	}

	if unicode.Is(unicode.Mn, runes[0]) || unicode.Is(unicode.Me, runes[0]) || unicode.Is(unicode.Mc, runes[0]) {
		err = hqgoerrors.New("idna: label starts with a combining mark")

		return
	}

	for _, c := range runes {
		entry, ok := Lookup(c)
		if !ok || entry.Status == StatusDisallowed {
			err = hqgoerrors.New("idna: label contains a disallowed code point")

			return
		}
	}

	if flags.CheckJoiners {
		if err = checkJoiners(runes); err != nil {
			return
		}
	}

	if flags.CheckBidi && bidiDomain {
		if err = checkBidi(runes); err != nil {
			return
		}
	}

	return
}

// checkHyphens enforces that a label neither starts nor ends with '-', and
// does not have '-' in both the third and fourth positions (the "ACE
// prefix" collision rule), per RFC 5891 §4.2.3.
func checkHyphens(runes []rune) (err error) {
	if runes[0] == '-' || runes[len(runes)-1] == '-' {
		err = hqgoerrors.New("idna: label starts or ends with a hyphen")

		return
	}

	if len(runes) >= 4 && runes[2] == '-' && runes[3] == '-' {
		err = hqgoerrors.New("idna: label has hyphens in positions 3 and 4")

		return
	}

	return
}

// checkJoiners applies a practical approximation of the RFC 5892 CONTEXTJ
// rule for ZWNJ (U+200C) and ZWJ (U+200D): neither joiner may be
// label-initial, and a ZWNJ must directly follow a nonspacing mark (category
// Mn); a ZWJ may follow any code point. Viramas are not distinguished from
// other nonspacing marks, and the joining-type context of the full rule is
// not checked.
func checkJoiners(runes []rune) (err error) {
	for i, c := range runes {
		if c != zwnj && c != zwj {
			continue
		}

		if i == 0 {
			err = hqgoerrors.New("idna: label-initial joiner")

			return
		}

		prev := runes[i-1]

		if unicode.Is(unicode.Mn, prev) {
			continue
		}

		if c == zwj {
			continue
		}

		err = hqgoerrors.New("idna: joiner not preceded by a virama or combining mark")

		return
	}

	return
}

// checkBidi applies a pragmatic subset of RFC 5893's bidi rule: it classifies
// the label as RTL or LTR from its first strong-directional code point, then
// enforces that the label's last character is consistent with that
// direction and that digits are not mixed across the Arabic-Indic / European
// boundary. It does not implement every numbered rule of RFC 5893 in full
// (see DESIGN.md).
func checkBidi(runes []rune) (err error) {
	rtl := false

	for _, c := range runes {
		switch runeBidiClass(c) {
		case bidi.R, bidi.AL:
			rtl = true
		case bidi.L:
			rtl = false
		default:
			continue
		}

		break
	}

	hasArabicIndic := false
	hasEuropean := false

	last := rune(0)

	for _, c := range runes {
		switch runeBidiClass(c) {
		case bidi.AN:
			hasArabicIndic = true
		case bidi.EN:
			hasEuropean = true
		}

		last = c
	}

	if hasArabicIndic && hasEuropean {
		err = hqgoerrors.New("idna: label mixes Arabic-Indic and European digits")

		return
	}

	lastClass := runeBidiClass(last)

	if rtl {
		switch lastClass {
		case bidi.R, bidi.AL, bidi.EN, bidi.AN, bidi.NSM:
		default:
			err = hqgoerrors.New("idna: right-to-left label ends in a disallowed direction")

			return
		}
	} else {
		switch lastClass {
		case bidi.L, bidi.EN, bidi.NSM:
		default:
			err = hqgoerrors.New("idna: left-to-right label ends in a disallowed direction")

			return
		}
	}

	return
}
