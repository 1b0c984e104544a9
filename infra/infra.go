package infra

// IsASCIIAlpha reports whether c is an ASCII upper- or lower-case letter.
func IsASCIIAlpha(c rune) (ok bool) {
	ok = (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')

	return
}

// IsASCIIDigit reports whether c is an ASCII decimal digit.
func IsASCIIDigit(c rune) (ok bool) {
	ok = c >= '0' && c <= '9'

	return
}

// IsASCIIAlphanumeric reports whether c is an ASCII letter or digit.
func IsASCIIAlphanumeric(c rune) (ok bool) {
	ok = IsASCIIAlpha(c) || IsASCIIDigit(c)

	return
}

// IsASCIIHexDigit reports whether c is a hex digit: 0-9, a-f or A-F.
func IsASCIIHexDigit(c rune) (ok bool) {
	ok = IsASCIIDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')

	return
}

// HexValue returns the numeric value of an ASCII hex digit. The caller must
// have already checked IsASCIIHexDigit(c).
func HexValue(c rune) (v int) {
	switch {
	case c >= '0' && c <= '9':
		v = int(c - '0')
	case c >= 'a' && c <= 'f':
		v = int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		v = int(c-'A') + 10
	}

	return
}

// IsC0Control reports whether c is a C0 control code point: U+0000 to U+001F.
func IsC0Control(c rune) (ok bool) {
	ok = c >= 0x0000 && c <= 0x001F

	return
}

// IsC0ControlOrSpace reports whether c is a C0 control or U+0020 SPACE.
func IsC0ControlOrSpace(c rune) (ok bool) {
	ok = IsC0Control(c) || c == 0x0020

	return
}

// IsASCIITabOrNewline reports whether c is U+0009 TAB, U+000A LF or U+000D CR.
func IsASCIITabOrNewline(c rune) (ok bool) {
	ok = c == 0x0009 || c == 0x000A || c == 0x000D

	return
}

// IsASCIIWhitespace reports whether c is one of TAB, LF, FF, CR or SPACE.
func IsASCIIWhitespace(c rune) (ok bool) {
	ok = c == 0x0009 || c == 0x000A || c == 0x000C || c == 0x000D || c == 0x0020

	return
}
