package codec

import "encoding/ascii85"

// ASCII85 implements the Adobe Base85 variant used in PostScript and
// PDF, without the <~ ~> frame. All-zero groups encode to the 'z' short
// form; the decoder skips embedded whitespace.
type ASCII85 struct{}

// Encode returns the Ascii85 representation of the text's UTF-8 bytes.
func (ASCII85) Encode(text string) string {
	src := []byte(text)
	dst := make([]byte, ascii85.MaxEncodedLen(len(src)))
	n := ascii85.Encode(dst, src)
	return string(dst[:n])
}

// Decode parses an Ascii85 string back into text.
func (ASCII85) Decode(encoded string) (string, error) {
	src := []byte(encoded)
	// 'z' expands 1 input byte to 4 output bytes, so size for the worst case.
	dst := make([]byte, 4*len(src))
	ndst, _, err := ascii85.Decode(dst, src, true)
	if err != nil {
		return "", malformed("ascii85", "%v", err)
	}
	return asText("ascii85", dst[:ndst])
}

// Name returns "ascii85".
func (ASCII85) Name() string { return "ascii85" }

// Description returns the listing description.
func (ASCII85) Description() string { return "ASCII85/Base85 encoding" }
