package codec

import "encoding/base32"

// Base32 implements RFC 4648 Base32 (A-Z, 2-7) with `=` padding.
type Base32 struct{}

// Encode returns the Base32 representation of the text's UTF-8 bytes.
func (Base32) Encode(text string) string {
	return base32.StdEncoding.EncodeToString([]byte(text))
}

// Decode parses a padded Base32 string back into text.
func (Base32) Decode(encoded string) (string, error) {
	raw, err := base32.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", malformed("base32", "%v", err)
	}
	return asText("base32", raw)
}

// Name returns "base32".
func (Base32) Name() string { return "base32" }

// Description returns the listing description.
func (Base32) Description() string { return "Base32 encoding (RFC 4648)" }
