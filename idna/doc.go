// Package idna implements Unicode IDNA processing (UTS #46) domain-to-ASCII
// conversion: code-point mapping against the table in tables_data.go, NFC
// normalisation, per-label validation (hyphen placement, CONTEXTJ joiner
// rules, the bidi rule), Punycode encoding of non-ASCII labels, and the
// syntactic DNS-length check (spec.md §4.3).
package idna
