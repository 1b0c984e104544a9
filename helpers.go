package url

import (
	"strings"

	"github.com/hueristiq/hq-go-url/infra"
)

// asciiLower returns c's ASCII lowercase form, leaving every other code
// point (including non-ASCII letters) untouched.
func asciiLower(c rune) (out rune) {
	if c >= 'A' && c <= 'Z' {
		return c + 0x20
	}

	return c
}

// isSchemeCodePoint reports whether c may appear after the first character
// of a scheme: ASCII alphanumeric, '+', '-' or '.'.
func isSchemeCodePoint(c rune) (ok bool) {
	return infra.IsASCIIAlphanumeric(c) || c == '+' || c == '-' || c == '.'
}

// isWindowsDriveLetter reports whether (a, b) is a Windows drive letter pair
// (ASCII alpha followed by ':' or '|'), per the URL Standard's file-URL
// special-casing.
func isWindowsDriveLetter(a, b rune) (ok bool) {
	return infra.IsASCIIAlpha(a) && (b == ':' || b == '|')
}

// isNormalizedWindowsDriveLetter is isWindowsDriveLetter restricted to the
// canonical ':' form.
func isNormalizedWindowsDriveLetter(a, b rune) (ok bool) {
	return infra.IsASCIIAlpha(a) && b == ':'
}

// startsWithWindowsDriveLetter reports whether s begins with a Windows drive
// letter that is not followed by more path content (i.e. is exactly the
// drive letter, or is immediately followed by one of "/\\?#").
func startsWithWindowsDriveLetter(s []rune) (ok bool) {
	if len(s) < 2 || !isWindowsDriveLetter(s[0], s[1]) {
		return false
	}

	if len(s) == 2 {
		return true
	}

	switch s[2] {
	case '/', '\\', '?', '#':
		return true
	default:
		return false
	}
}

// isSingleDotPathSegment reports whether seg is "." or one of its
// percent-encoded spellings.
func isSingleDotPathSegment(seg string) (ok bool) {
	return seg == "." || strings.EqualFold(seg, "%2e")
}

// isDoubleDotPathSegment reports whether seg is ".." or one of its
// percent-encoded spellings.
func isDoubleDotPathSegment(seg string) (ok bool) {
	lower := strings.ToLower(seg)

	return lower == ".." || lower == ".%2e" || lower == "%2e." || lower == "%2e%2e"
}

// shortenPath removes u's last path segment, except it never pops the sole
// remaining segment of a file URL when that segment is a Windows drive
// letter (spec.md §4.6 PATH, "key policies").
func shortenPath(u *URL) {
	if len(u.Segments) == 0 {
		return
	}

	if u.Scheme == "file" && len(u.Segments) == 1 {
		seg := []rune(u.Segments[0])

		if len(seg) == 2 && isNormalizedWindowsDriveLetter(seg[0], seg[1]) {
			return
		}
	}

	u.Segments = u.Segments[:len(u.Segments)-1]
}

// preprocess implements spec.md §4.6 "Preprocessing": strip leading and
// trailing C0-control-or-space, then delete every ASCII tab/CR/LF from the
// interior.
func preprocess(input string) (out string) {
	runes := []rune(input)

	start := 0
	for start < len(runes) && infra.IsC0ControlOrSpace(runes[start]) {
		start++
	}

	end := len(runes)
	for end > start && infra.IsC0ControlOrSpace(runes[end-1]) {
		end--
	}

	runes = runes[start:end]

	filtered := make([]rune, 0, len(runes))

	for _, c := range runes {
		if infra.IsASCIITabOrNewline(c) {
			continue
		}

		filtered = append(filtered, c)
	}

	out = string(filtered)

	return
}
