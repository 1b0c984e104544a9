package ipaddr

import (
	"fmt"
	"strings"

	"github.com/hueristiq/hq-go-url/infra"
)

// ParseIPv6 parses the interior of a bracketed IPv6 literal (without the
// brackets) into eight 16-bit pieces, accepting a single "::" compression and
// an embedded dotted-quad in the final 32 bits (spec.md §4.4).
func ParseIPv6(input string) (address [8]uint16, err error) {
	r := []rune(input)
	pointer := 0
	pieceIndex := 0
	compress := -1

	if len(r) >= 1 && r[0] == ':' {
		if len(r) < 2 || r[1] != ':' {
			err = fmt.Errorf("IPv6 address starts with a lone ':': %q", input)

			return
		}

		pointer += 2
		pieceIndex++
		compress = pieceIndex
	}

	for pointer < len(r) {
		if pieceIndex == 8 {
			err = fmt.Errorf("IPv6 address has more than 8 pieces: %q", input)

			return
		}

		if r[pointer] == ':' {
			if compress != -1 {
				err = fmt.Errorf("IPv6 address has more than one '::': %q", input)

				return
			}

			pointer++
			pieceIndex++
			compress = pieceIndex

			continue
		}

		value := 0
		length := 0

		for length < 4 && pointer < len(r) && infra.IsASCIIHexDigit(r[pointer]) {
			value = value*16 + infra.HexValue(r[pointer])
			pointer++
			length++
		}

		if pointer < len(r) && r[pointer] == '.' {
			if length == 0 {
				err = fmt.Errorf("IPv6 address has an IPv4 piece with no leading digits: %q", input)

				return
			}

			pointer -= length

			if pieceIndex > 6 {
				err = fmt.Errorf("IPv6 address has an embedded IPv4 piece too late: %q", input)

				return
			}

			numbersSeen := 0

			for pointer < len(r) {
				ipv4Piece := -1

				if numbersSeen > 0 {
					if r[pointer] == '.' && numbersSeen < 4 {
						pointer++
					} else {
						err = fmt.Errorf("malformed embedded IPv4 address: %q", input)

						return
					}
				}

				if pointer >= len(r) || !infra.IsASCIIDigit(r[pointer]) {
					err = fmt.Errorf("malformed embedded IPv4 address: %q", input)

					return
				}

				for pointer < len(r) && infra.IsASCIIDigit(r[pointer]) {
					digit := int(r[pointer] - '0')

					switch {
					case ipv4Piece == -1:
						ipv4Piece = digit
					case ipv4Piece == 0:
						err = fmt.Errorf("embedded IPv4 address has a leading zero: %q", input)

						return
					default:
						ipv4Piece = ipv4Piece*10 + digit
					}

					if ipv4Piece > 255 {
						err = fmt.Errorf("embedded IPv4 address piece out of range: %q", input)

						return
					}

					pointer++
				}

				address[pieceIndex] = address[pieceIndex]*0x100 + uint16(ipv4Piece)
				numbersSeen++

				if numbersSeen == 2 || numbersSeen == 4 {
					pieceIndex++
				}
			}

			if numbersSeen != 4 {
				err = fmt.Errorf("embedded IPv4 address has the wrong number of parts: %q", input)

				return
			}

			break
		}

		if pointer < len(r) && r[pointer] == ':' {
			pointer++

			if pointer >= len(r) {
				err = fmt.Errorf("IPv6 address unexpectedly ends with ':': %q", input)

				return
			}
		} else if pointer < len(r) {
			err = fmt.Errorf("unexpected character %q in IPv6 address: %q", r[pointer], input)

			return
		}

		address[pieceIndex] = uint16(value)
		pieceIndex++
	}

	if compress != -1 {
		swaps := pieceIndex - compress
		pieceIndex = 7

		for pieceIndex != 0 && swaps > 0 {
			address[pieceIndex], address[compress+swaps-1] = address[compress+swaps-1], address[pieceIndex]
			pieceIndex--
			swaps--
		}
	} else if pieceIndex != 8 {
		err = fmt.Errorf("IPv6 address has too few pieces and no '::': %q", input)

		return
	}

	return
}

// SerializeIPv6 renders address in the canonical compressed form: lowercase
// hex pieces joined by ':', with "::" substituted for the longest run of two
// or more zero pieces (the first such run wins a tie), per spec.md §4.4.
func SerializeIPv6(address [8]uint16) (out string) {
	compress, compressLen := longestZeroRun(address)

	var b strings.Builder

	b.WriteByte('[')

	ignoreZero := false

	for i := 0; i < 8; i++ {
		if ignoreZero && address[i] == 0 {
			continue
		} else if ignoreZero {
			ignoreZero = false
		}

		if compressLen >= 2 && i == compress {
			if i == 0 {
				b.WriteString("::")
			} else {
				b.WriteByte(':')
			}

			ignoreZero = true

			continue
		}

		fmt.Fprintf(&b, "%x", address[i])

		if i != 7 {
			b.WriteByte(':')
		}
	}

	b.WriteByte(']')

	out = b.String()

	return
}

// longestZeroRun finds the first (in case of a tie) longest run of two or
// more consecutive zero pieces.
func longestZeroRun(address [8]uint16) (start, length int) {
	bestStart, bestLen := -1, 0
	curStart, curLen := -1, 0

	for i := 0; i < 8; i++ {
		if address[i] == 0 {
			if curStart == -1 {
				curStart = i
			}

			curLen++
		} else {
			if curLen > bestLen {
				bestStart, bestLen = curStart, curLen
			}

			curStart, curLen = -1, 0
		}
	}

	if curLen > bestLen {
		bestStart, bestLen = curStart, curLen
	}

	if bestLen < 2 {
		return -1, 0
	}

	return bestStart, bestLen
}
