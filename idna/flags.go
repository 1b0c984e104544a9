package idna

// Flags controls which of UTS #46's optional checks ToASCII performs
// (spec.md §4.3).
type Flags struct {
	// UseSTD3ASCIIRules rejects disallowed_STD3_* code points that would
	// otherwise be tolerated.
	UseSTD3ASCIIRules bool

	// CheckHyphens enforces the "no '--' at positions 3-4, no leading or
	// trailing '-'" rule.
	CheckHyphens bool

	// CheckBidi enforces RFC 5893 when the overall domain contains any
	// right-to-left code point.
	CheckBidi bool

	// CheckJoiners enforces the RFC 5892 CONTEXTJ rule for ZWJ/ZWNJ.
	CheckJoiners bool

	// TransitionalProcessing substitutes "deviation" code points (ß, ς,
	// ZWJ, ZWNJ) the way IDNA2003 did, instead of leaving them as valid.
	TransitionalProcessing bool

	// VerifyDNSLength enforces the 1-253 total / 1-63 per-label length
	// limits.
	VerifyDNSLength bool
}

// NonTransitional returns a copy of flags with TransitionalProcessing
// cleared, used when re-validating a Punycode-decoded label (spec.md §4.3
// step 4: "decode ... then validate the decoded label with
// transitional_processing=false").
func (f Flags) NonTransitional() (out Flags) {
	out = f
	out.TransitionalProcessing = false

	return
}
