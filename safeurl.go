package url

// SafeURL implements the safe-URL facade (spec.md §4.8): it parses input
// with the "safest" encode sets — unions of the WHATWG set with the RFC
// 3986 and RFC 2396 sets for the same component — then serializes with
// canonicalize=false, so the result is valid under all three standards and
// preserves the caller's syntactic choices where lawful. It never fails on
// a validation-error-class condition; only hard syntax failures (spec.md
// §7) are returned.
func SafeURL(input string, encodingLabel string, opts ...Option) (out string, err error) {
	cfg := append([]Option{WithEncodeSets(SafestEncodeSets())}, opts...)

	if encodingLabel != "" {
		cfg = append(cfg, WithEncoding(encodingLabel))
	}

	u, err := Parse(input, cfg...)
	if err != nil {
		return
	}

	out = Serialize(u, SerializeOptions{Canonicalize: false})

	return
}
