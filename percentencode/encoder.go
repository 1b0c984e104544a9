package percentencode

import (
	"fmt"
	"strings"

	"github.com/hueristiq/hq-go-url/infra"
	"golang.org/x/text/encoding"
)

const upperHex = "0123456789ABCDEF"

// Encoder applies a Set to a string, optionally transcoding through a
// non-UTF-8 encoding first. It is the spec's "percent-encoder" (spec.md §4.2).
type Encoder struct {
	// Encoding is the codec the input is transcoded through before the byte
	// walk. A nil value is treated as UTF-8 (the common case: path and
	// fragment are always percent-encoded as UTF-8; only the query honours a
	// caller-chosen "output encoding").
	Encoding encoding.Encoding

	// Set decides which bytes (interpreted as Latin-1 code points, since
	// percent-encoding always operates byte-wise after transcoding) get
	// escaped.
	Set Set

	// SpaceAsPlus, when true, emits '+' for 0x20 instead of consulting Set.
	// Used by the query string's form-urlencoded-adjacent callers; the core
	// URL parser never sets this.
	SpaceAsPlus bool
}

// Encode runs the encoder over s. Unmappable code points (when Encoding is a
// narrower-than-Unicode codec) are replaced by an XML numeric character
// reference "&#N;" before the byte walk, per spec.md §4.2 and §9.
func (e Encoder) Encode(s string) (out string) {
	transcoded := e.transcode(s)

	var b strings.Builder

	b.Grow(len(transcoded))

	bytes := []byte(transcoded)

	for i := 0; i < len(bytes); i++ {
		c := bytes[i]

		if e.SpaceAsPlus && c == 0x20 {
			b.WriteByte('+')

			continue
		}

		if !e.Set.Contains(rune(c)) {
			b.WriteByte(c)

			continue
		}

		if c == '%' && e.isExistingEscape(bytes, i) {
			b.WriteByte('%')

			continue
		}

		b.WriteByte('%')
		b.WriteByte(upperHex[c>>4])
		b.WriteByte(upperHex[c&0x0F])
	}

	out = b.String()

	return
}

// isExistingEscape implements the idempotency rule (spec.md §4.2): when the
// encode set itself would normally escape '%', look at the next two bytes of
// the input being scanned. If both are ASCII hex digits, the '%' already
// belongs to a well-formed escape sequence and must be passed through
// literally rather than re-encoded to "%25".
func (Encoder) isExistingEscape(bytes []byte, i int) (ok bool) {
	if i+2 >= len(bytes) {
		return false
	}

	ok = infra.IsASCIIHexDigit(rune(bytes[i+1])) && infra.IsASCIIHexDigit(rune(bytes[i+2]))

	return
}

// transcode encodes s through e.Encoding, falling back to UTF-8 passthrough
// when Encoding is nil, and substituting "&#N;" for any code point the
// target encoding cannot represent.
func (e Encoder) transcode(s string) (out string) {
	if e.Encoding == nil {
		return s
	}

	encoder := e.Encoding.NewEncoder()

	var b strings.Builder

	for _, r := range s {
		chunk, err := encoder.String(string(r))
		if err != nil {
			fmt.Fprintf(&b, "&#%d;", r)

			continue
		}

		b.WriteString(chunk)
	}

	out = b.String()

	return
}
