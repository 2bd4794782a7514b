package codec

import "golang.org/x/net/html"

// HTML escapes the five characters with reserved meaning in markup
// (&, <, >, ", ') to entity references, and resolves the full named and
// numeric entity set on the way back.
type HTML struct{}

// Encode replaces &, <, >, " and ' with entity references.
func (HTML) Encode(text string) string {
	return html.EscapeString(text)
}

// Decode resolves named and numeric entity references. Unrecognized
// entities and bare ampersands pass through unchanged, so entity text
// has no malformed case and decoding never fails.
func (HTML) Decode(encoded string) (string, error) {
	return html.UnescapeString(encoded), nil
}

// Name returns "html".
func (HTML) Name() string { return "html" }

// Description returns the listing description.
func (HTML) Description() string { return "HTML entity encoding" }
