// Copyright (c) 2026 Scott Thornton (https://github.com/scthornton)
//
// base64.go — standard padded Base64 (RFC 4648) over the UTF-8 bytes of
// the input text.

package codec

import "encoding/base64"

// Base64 implements RFC 4648 Base64 with `=` padding.
type Base64 struct{}

// Encode returns the Base64 representation of the text's UTF-8 bytes.
func (Base64) Encode(text string) string {
	return base64.StdEncoding.EncodeToString([]byte(text))
}

// Decode parses a padded Base64 string back into text.
func (Base64) Decode(encoded string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", malformed("base64", "%v", err)
	}
	return asText("base64", raw)
}

// Name returns "base64".
func (Base64) Name() string { return "base64" }

// Description returns the listing description.
func (Base64) Description() string { return "Base64 encoding (RFC 4648)" }
