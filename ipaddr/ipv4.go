package ipaddr

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hueristiq/hq-go-url/infra"
)

// ParseIPv4 parses a dotted-quad address, accepting the legacy octal
// ("0..") and hexadecimal ("0x..") per-part forms, and packs the result into
// a single 32-bit integer (spec.md §4.4).
//
// Leading zeros and non-decimal radixes are WHATWG "validation errors" that
// do not fail parsing (spec.md §7); only a syntactically invalid number, too
// many parts, or an out-of-range part return an error.
func ParseIPv4(input string) (addr uint32, err error) {
	parts := strings.Split(input, ".")

	if len(parts) > 1 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}

	if len(parts) > 4 {
		err = fmt.Errorf("IPv4 address has more than four parts: %q", input)

		return
	}

	numbers := make([]uint64, 0, len(parts))

	for _, part := range parts {
		if part == "" {
			err = fmt.Errorf("IPv4 address has an empty part: %q", input)

			return
		}

		var n uint64

		n, err = parseIPv4Number(part)
		if err != nil {
			err = fmt.Errorf("invalid IPv4 part %q in %q: %w", part, input, err)

			return
		}

		numbers = append(numbers, n)
	}

	for i, n := range numbers {
		if i == len(numbers)-1 {
			continue
		}

		if n > 255 {
			err = fmt.Errorf("IPv4 part %d out of range in %q", i, input)

			return
		}
	}

	last := numbers[len(numbers)-1]

	maxLast := uint64(1)
	for i := 0; i < 5-len(numbers); i++ {
		maxLast *= 256
	}

	if last >= maxLast {
		err = fmt.Errorf("IPv4 final part out of range in %q", input)

		return
	}

	ipv4 := last

	counter := 0

	for i := 0; i < len(numbers)-1; i++ {
		ipv4 += numbers[i] << (8 * (3 - counter))
		counter++
	}

	addr = uint32(ipv4)

	return
}

// parseIPv4Number parses a single dotted-quad part, switching radix per the
// legacy "0x"/"0X" (hex) and leading-"0" (octal) prefixes.
func parseIPv4Number(input string) (n uint64, err error) {
	radix := 10

	switch {
	case len(input) >= 2 && input[0] == '0' && (input[1] == 'x' || input[1] == 'X'):
		radix = 16
		input = input[2:]
	case len(input) >= 2 && input[0] == '0':
		radix = 8
		input = input[1:]
	case len(input) == 1 && input[0] == '0':
		return 0, nil
	}

	if input == "" {
		return 0, nil
	}

	for _, c := range input {
		switch radix {
		case 16:
			if !infra.IsASCIIHexDigit(c) {
				return 0, fmt.Errorf("invalid hex digit %q", c)
			}
		case 8:
			if c < '0' || c > '7' {
				return 0, fmt.Errorf("invalid octal digit %q", c)
			}
		default:
			if !infra.IsASCIIDigit(c) {
				return 0, fmt.Errorf("invalid decimal digit %q", c)
			}
		}
	}

	n, err = strconv.ParseUint(input, radix, 64)

	return
}

// SerializeIPv4 renders addr in canonical dotted-decimal form.
func SerializeIPv4(addr uint32) (out string) {
	out = fmt.Sprintf("%d.%d.%d.%d",
		(addr>>24)&0xFF,
		(addr>>16)&0xFF,
		(addr>>8)&0xFF,
		addr&0xFF,
	)

	return
}
