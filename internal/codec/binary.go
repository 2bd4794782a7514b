package codec

import (
	"strconv"
	"strings"
)

// Binary renders each UTF-8 byte as an 8-bit zero-padded base-2 token,
// tokens separated by single spaces.
type Binary struct{}

// Encode returns the space-separated binary representation.
func (Binary) Encode(text string) string {
	var b strings.Builder
	b.Grow(len(text) * 9)
	for i := 0; i < len(text); i++ {
		if i > 0 {
			b.WriteByte(' ')
		}
		c := text[i]
		for bit := 7; bit >= 0; bit-- {
			b.WriteByte('0' + (c>>uint(bit))&1)
		}
	}
	return b.String()
}

// Decode splits on whitespace and parses each token as one byte. Tokens
// must be exactly 8 binary digits.
func (Binary) Decode(encoded string) (string, error) {
	tokens := strings.Fields(encoded)
	raw := make([]byte, 0, len(tokens))
	for _, tok := range tokens {
		if len(tok) != 8 {
			return "", malformed("binary", "token %q has %d digits, want exactly 8", tok, len(tok))
		}
		v, err := strconv.ParseUint(tok, 2, 8)
		if err != nil {
			return "", malformed("binary", "token %q is not a base-2 byte", tok)
		}
		raw = append(raw, byte(v))
	}
	return asText("binary", raw)
}

// Name returns "binary".
func (Binary) Name() string { return "binary" }

// Description returns the listing description.
func (Binary) Description() string { return "Binary representation (base 2)" }
