package url

import (
	"fmt"

	hqgoerrors "github.com/hueristiq/hq-go-errors"
)

// URLParseError is the single error kind this module raises for hard parse
// failures (spec.md §7): it carries the failing operation, the input that
// was being parsed, and the underlying cause.
type URLParseError struct {
	Op    string
	Input string
	Err   error
}

func (e *URLParseError) Error() (msg string) {
	return fmt.Sprintf("url: %s %q: %v", e.Op, e.Input, e.Err)
}

func (e *URLParseError) Unwrap() (err error) {
	return e.Err
}

// newParseError wraps err (via hq-go-errors, so the chain stays inspectable
// with errors.Is/As) as a URLParseError naming the failing operation and the
// input string it was given.
func newParseError(op, input string, err error) (e *URLParseError) {
	return &URLParseError{Op: op, Input: input, Err: hqgoerrors.Wrap(err, op)}
}

// newParseErrorf is newParseError for a simple string reason instead of a
// wrapped error.
func newParseErrorf(op, input, reason string) (e *URLParseError) {
	return newParseError(op, input, hqgoerrors.New(reason))
}
