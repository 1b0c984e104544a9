// Package infra provides the small set of named code-point predicates the
// URL Standard calls its "infra" primitives: ASCII alpha, digit, hex digit,
// alphanumeric, C0 control, C0-control-or-space, tab-or-newline and
// whitespace. Every higher-level package (percentencode, host, ipaddr, and
// the root state machine) builds on these instead of re-deriving them.
package infra
