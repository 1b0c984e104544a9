package percentencode

import (
	"fmt"
	"strings"

	hqgoerrors "github.com/hueristiq/hq-go-errors"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
)

// ResolveEncoding maps a WHATWG encoding label to a golang.org/x/text codec,
// the way the Encoding Standard's "get an output encoding" algorithm does:
// the label is lowercased and has leading/trailing whitespace stripped before
// lookup, and an empty label resolves to UTF-8. Unknown labels are a parse
// error (spec.md §7: "unknown encoding label").
//
// htmlindex.Get already implements the WHATWG label table, so no second copy
// of that table is maintained here.
func ResolveEncoding(label string) (enc encoding.Encoding, name string, err error) {
	label = strings.ToLower(strings.TrimSpace(label))

	if label == "" {
		label = "utf-8"
	}

	enc, err = htmlindex.Get(label)
	if err != nil {
		err = hqgoerrors.Wrap(err, fmt.Sprintf("unknown encoding label %q", label))

		return
	}

	name, err = htmlindex.Name(enc)
	if err != nil {
		name = label
		err = nil
	}

	return
}

// OutputEncoding applies the URL Standard's restriction that only UTF-8 is
// ever used as the "output encoding" for a URL's query, except when the URL
// is not special, or its scheme is "ws"/"wss" (spec.md §4.6, QUERY state):
// in that case the caller-supplied encoding is honoured, otherwise UTF-8 is
// forced regardless of what was requested.
func OutputEncoding(requested encoding.Encoding, requestedName string, isSpecial bool, scheme string) (enc encoding.Encoding, name string) {
	if !isSpecial || scheme == "ws" || scheme == "wss" {
		return requested, requestedName
	}

	return encoding.Nop, "utf-8"
}
