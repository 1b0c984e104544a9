package percentencode

import (
	"strings"

	"github.com/hueristiq/hq-go-url/infra"
)

// Decode runs the URL Standard's "percent-decode" algorithm over s: each
// '%XY' where X and Y are ASCII hex digits is replaced by the byte 0xXY;
// any other '%' is passed through unchanged (spec.md §4.2).
func Decode(s string) (out string) {
	bytes := []byte(s)

	var b strings.Builder

	b.Grow(len(bytes))

	for i := 0; i < len(bytes); i++ {
		c := bytes[i]

		if c != '%' || i+2 >= len(bytes) || !infra.IsASCIIHexDigit(rune(bytes[i+1])) || !infra.IsASCIIHexDigit(rune(bytes[i+2])) {
			b.WriteByte(c)

			continue
		}

		hi := infra.HexValue(rune(bytes[i+1]))
		lo := infra.HexValue(rune(bytes[i+2]))

		b.WriteByte(byte(hi<<4 | lo))

		i += 2
	}

	out = b.String()

	return
}
