// Package punycode implements the Bootstring algorithm (RFC 3492) with the
// parameters IDNA fixes: base 36, tmin 1, tmax 26, skew 38, damp 700,
// initial bias 72, initial n 128, delimiter '-'.
//
// This is hand-rolled rather than pulled from a dependency: it is the same
// choice golang.org/x/net/idna itself makes, since the algorithm is small,
// load-bearing, and has no moving parts that benefit from a shared library.
package punycode

import (
	"fmt"
	"strings"
)

const (
	base        = 36
	tmin        = 1
	tmax        = 26
	skew        = 38
	damp        = 700
	initialBias = 72
	initialN    = 128
	delimiter   = '-'
)

func adapt(delta, numPoints int, firstTime bool) (bias int) {
	if firstTime {
		delta /= damp
	} else {
		delta /= 2
	}

	delta += delta / numPoints

	k := 0

	for delta > ((base-tmin)*tmax)/2 {
		delta /= base - tmin
		k += base
	}

	bias = k + (((base-tmin+1)*delta)/(delta+skew))

	return
}

// Encode converts a Unicode label (without the "xn--" prefix) to its
// Punycode-encoded ASCII form.
func Encode(input string) (output string, err error) {
	var b strings.Builder

	n := initialN
	delta := 0
	bias := initialBias

	runes := []rune(input)

	basicCount := 0

	for _, r := range runes {
		if r < 0x80 {
			b.WriteRune(r)

			basicCount++
		}
	}

	h := basicCount

	if basicCount > 0 {
		b.WriteByte(delimiter)
	}

	for h < len(runes) {
		m := 0x7FFFFFFF

		for _, r := range runes {
			if int(r) >= n && int(r) < m {
				m = int(r)
			}
		}

		delta += (m - n) * (h + 1)
		n = m

		for _, r := range runes {
			if int(r) < n {
				delta++
			}

			if int(r) == n {
				q := delta

				for k := base; ; k += base {
					t := k - bias

					switch {
					case t < tmin:
						t = tmin
					case t > tmax:
						t = tmax
					}

					if q < t {
						break
					}

					digit := t + (q-t)%(base-t)

					b.WriteByte(encodeDigit(digit))

					q = (q - t) / (base - t)
				}

				b.WriteByte(encodeDigit(q))

				bias = adapt(delta, h+1, h == basicCount)
				delta = 0
				h++
			}
		}

		delta++
		n++
	}

	output = b.String()

	return
}

func encodeDigit(d int) byte {
	if d < 26 {
		return byte('a' + d)
	}

	return byte('0' + d - 26)
}

func decodeDigit(c byte) (d int, err error) {
	switch {
	case c >= 'a' && c <= 'z':
		d = int(c - 'a')
	case c >= 'A' && c <= 'Z':
		d = int(c - 'A')
	case c >= '0' && c <= '9':
		d = int(c-'0') + 26
	default:
		err = fmt.Errorf("punycode: invalid digit %q", c)
	}

	return
}

// Decode converts the ASCII remainder of an "xn--" label back to Unicode.
func Decode(input string) (output string, err error) {
	n := initialN
	bias := initialBias

	var out []rune

	pos := strings.LastIndexByte(input, delimiter)

	if pos >= 0 {
		out = []rune(input[:pos])
		input = input[pos+1:]
	}

	i := 0

	for len(input) > 0 {
		oldi := i

		w := 1

		for k := base; ; k += base {
			if len(input) == 0 {
				err = fmt.Errorf("punycode: truncated input")

				return
			}

			c := input[0]
			input = input[1:]

			var digit int

			digit, err = decodeDigit(c)
			if err != nil {
				return
			}

			i += digit * w

			t := k - bias

			switch {
			case t < tmin:
				t = tmin
			case t > tmax:
				t = tmax
			}

			if digit < t {
				break
			}

			w *= base - t
		}

		numPoints := len(out) + 1
		bias = adapt(i-oldi, numPoints, oldi == 0)
		n += i / numPoints
		i %= numPoints

		if n > 0x10FFFF {
			err = fmt.Errorf("punycode: code point out of range")

			return
		}

		out = append(out, 0)
		copy(out[i+1:], out[i:])
		out[i] = rune(n)
		i++
	}

	output = string(out)

	return
}
