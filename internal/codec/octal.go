package codec

import (
	"strconv"
	"strings"
)

// Octal renders each UTF-8 byte as a 3-digit zero-padded base-8 token,
// tokens separated by single spaces.
type Octal struct{}

// Encode returns the space-separated octal representation.
func (Octal) Encode(text string) string {
	var b strings.Builder
	b.Grow(len(text) * 4)
	for i := 0; i < len(text); i++ {
		if i > 0 {
			b.WriteByte(' ')
		}
		c := text[i]
		b.WriteByte('0' + (c>>6)&3)
		b.WriteByte('0' + (c>>3)&7)
		b.WriteByte('0' + c&7)
	}
	return b.String()
}

// Decode splits on whitespace and parses each token as one byte. Tokens
// are 1 to 3 octal digits; values above 377 (255) are out of byte range.
func (Octal) Decode(encoded string) (string, error) {
	tokens := strings.Fields(encoded)
	raw := make([]byte, 0, len(tokens))
	for _, tok := range tokens {
		if len(tok) > 3 {
			return "", malformed("octal", "token %q has %d digits, want at most 3", tok, len(tok))
		}
		v, err := strconv.ParseUint(tok, 8, 8)
		if err != nil {
			return "", malformed("octal", "token %q is not an octal byte (000-377)", tok)
		}
		raw = append(raw, byte(v))
	}
	return asText("octal", raw)
}

// Name returns "octal".
func (Octal) Name() string { return "octal" }

// Description returns the listing description.
func (Octal) Description() string { return "Octal representation (base 8)" }
