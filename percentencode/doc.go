// Package percentencode implements the URL Standard's percent-encode set
// algebra, the static encode sets defined by the URL Standard and by
// RFC 2396/3986, the WHATWG encoding-label registry, and the percent-encoder
// itself (including its idempotent mode, which refuses to double-encode an
// already-percent-encoded "%HH" sequence).
package percentencode
