// Package parser provides advanced URL parsing capabilities on top of this module's
// core WHATWG URL engine, extending it with domain extraction functionality.
//
// This package decomposes a URL's host component into three primary parts:
//   - Subdomain (e.g., "www" in "www.example.com")
//   - Second-Level Domain (SLD, e.g., "example" in "www.example.com")
//   - Top-Level Domain (TLD, e.g., "com" in "www.example.com")
//
// The custom URL type embeds the core *url.URL record so that every field the state
// machine produces (scheme, host, path, query, fragment) is directly accessible, while
// the additional Domain struct holds the parsed host components. The URLParser type
// offers methods to parse raw URL strings into this extended URL struct. It also
// supports applying a default scheme when missing, and uses a suffix array for
// efficient TLD lookups.
//
// Example Usage:
//
//	package main
//
//	import (
//	    "fmt"
//	    "github.com/hueristiq/hq-go-url/parser"
//	)
//
//	func main() {
//	    // Create a new parser with a default scheme of "https".
//	    p := parser.NewURLParser(parser.URLParserWithDefaultScheme("https"))
//
//	    // Parse a raw URL string without a scheme.
//	    parsedURL, err := p.Parse("www.example.com")
//	    if err != nil {
//	        fmt.Println("Error parsing URL:", err)
//	        return
//	    }
//
//	    // Print the reconstructed domain.
//	    fmt.Println("Domain:", parsedURL.Domain.String())
//	}
package parser
