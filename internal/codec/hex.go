package codec

import "encoding/hex"

// Hex renders each UTF-8 byte as a lowercase hex digit pair with no
// separators.
type Hex struct{}

// Encode returns the contiguous lowercase hex representation.
func (Hex) Encode(text string) string {
	return hex.EncodeToString([]byte(text))
}

// Decode parses a contiguous hex string (either case) back into text.
// Odd-length input and non-hex characters are malformed.
func (Hex) Decode(encoded string) (string, error) {
	raw, err := hex.DecodeString(encoded)
	if err != nil {
		return "", malformed("hex", "%v", err)
	}
	return asText("hex", raw)
}

// Name returns "hex".
func (Hex) Name() string { return "hex" }

// Description returns the listing description.
func (Hex) Description() string { return "Hexadecimal encoding" }
