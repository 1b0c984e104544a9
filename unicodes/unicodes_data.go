// This file holds AllowedUcsChar/AllowedUcsCharMinusPunc as a fixed RFC 3987
// unreserved-code-point approximation (gen/main.go's rfc3987Ranges, minus the
// General Punctuation, CJK Symbols/Punctuation, CJK Compatibility/Small Form
// Variants and Fullwidth-punctuation blocks, as a stand-in for excluding the
// full Unicode Z and Po categories): a representative subset rather than the
// live unicode.Z/unicode.Po-scanned output gen/main.go would produce.
package unicodes

// AllowedUcsChar defines a range of allowed Unicode characters.
//
// This set includes various characters spanning multiple Unicode blocks.
// It supports a wide range of characters, including those from different languages,
// symbols, and select punctuation marks.
const AllowedUcsChar = "\u00a0-\u1fff\u2070-\u2fff\u3040-\ud7ff\uf900-\ufdcf\ufdf0-\uffef\U00010000-\U0001fffd\U00020000-\U0002fffd\U00030000-\U0003fffd\U00040000-\U0004fffd\U00050000-\U0005fffd\U00060000-\U0006fffd\U00070000-\U0007fffd\U00080000-\U0008fffd\U00090000-\U0009fffd\U000a0000-\U000afffd\U000b0000-\U000bfffd\U000c0000-\U000cfffd\U000d0000-\U000dfffd\U000e1000-\U000efffd"

// AllowedUcsCharMinusPunc defines a range of allowed Unicode characters,
// excluding certain punctuation marks.
//
// This set is used in contexts where punctuation is restricted, but other characters
// from AllowedUcsChar are allowed. This is useful for filtering input in usernames,
// identifiers, or text fields that should not contain punctuation.
const AllowedUcsCharMinusPunc = "\u00a0-\u1fff\u2070-\u2fff\u3040-\ud7ff\uf900-\ufdcf\ufdf0-\ufe2f\ufe70-\ufeff\uff10-\uff19\uff21-\uff3a\uff41-\uff5a\uff66-\uffef\U00010000-\U0001fffd\U00020000-\U0002fffd\U00030000-\U0003fffd\U00040000-\U0004fffd\U00050000-\U0005fffd\U00060000-\U0006fffd\U00070000-\U0007fffd\U00080000-\U0008fffd\U00090000-\U0009fffd\U000a0000-\U000afffd\U000b0000-\U000bfffd\U000c0000-\U000cfffd\U000d0000-\U000dfffd\U000e1000-\U000efffd"
