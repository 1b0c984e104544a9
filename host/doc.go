// Package host implements the URL Standard's host parser (spec.md §4.5): it
// classifies a host string as an IPv6 address, an IPv4 address, an ASCII
// domain (via idna.ToASCII), or an opaque host, and exposes each variant's
// canonical serialization.
package host
