// Package ipaddr implements the URL Standard's IPv4 and IPv6 parsers and
// serializers (spec.md §4.4): dotted-quad (with legacy octal/hex forms) to a
// 32-bit integer and back, and bracketed IPv6 literals (with "::"
// compression and an embedded trailing IPv4 piece) to eight 16-bit pieces
// and back.
package ipaddr
