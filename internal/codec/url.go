// Copyright (c) 2026 Scott Thornton (https://github.com/scthornton)
//
// url.go — RFC 3986 percent-encoding. The stdlib net/url escapers don't
// match: PathEscape leaves sub-delims unescaped and QueryEscape maps
// space to '+', so both directions are implemented here directly.

package codec

import "strings"

const upperhex = "0123456789ABCDEF"

// URL implements RFC 3986 percent-encoding. The unreserved set and '/'
// pass through; every other byte becomes %XX with uppercase hex, so a
// space encodes as %20, never '+'.
type URL struct{}

// urlSafe reports whether c passes through unescaped.
func urlSafe(c byte) bool {
	switch {
	case 'A' <= c && c <= 'Z', 'a' <= c && c <= 'z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '-', '.', '_', '~', '/':
		return true
	}
	return false
}

// Encode percent-encodes the text's UTF-8 bytes.
func (URL) Encode(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(text); i++ {
		c := text[i]
		if urlSafe(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&0x0f])
	}
	return b.String()
}

// Decode replaces each %XX escape (hex in either case) with its byte and
// passes everything else through. A '+' stays a literal '+'.
func (URL) Decode(encoded string) (string, error) {
	raw := make([]byte, 0, len(encoded))
	for i := 0; i < len(encoded); i++ {
		c := encoded[i]
		if c != '%' {
			raw = append(raw, c)
			continue
		}
		if i+2 >= len(encoded) {
			return "", malformed("url", "truncated percent escape %q", encoded[i:])
		}
		hi, okHi := unhex(encoded[i+1])
		lo, okLo := unhex(encoded[i+2])
		if !okHi || !okLo {
			return "", malformed("url", "invalid percent escape %q", encoded[i:i+3])
		}
		raw = append(raw, hi<<4|lo)
		i += 2
	}
	return asText("url", raw)
}

func unhex(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// Name returns "url".
func (URL) Name() string { return "url" }

// Description returns the listing description.
func (URL) Description() string { return "URL/Percent encoding (RFC 3986)" }
