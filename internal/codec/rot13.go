package codec

import "strings"

// ROT13 rotates Latin letters 13 positions within their case and leaves
// everything else untouched. The transform is its own inverse.
type ROT13 struct{}

func rot13(r rune) rune {
	switch {
	case r >= 'a' && r <= 'z':
		return 'a' + (r-'a'+13)%26
	case r >= 'A' && r <= 'Z':
		return 'A' + (r-'A'+13)%26
	}
	return r
}

// Encode applies the rotation.
func (ROT13) Encode(text string) string {
	return strings.Map(rot13, text)
}

// Decode applies the same rotation; it cannot fail.
func (ROT13) Decode(encoded string) (string, error) {
	return strings.Map(rot13, encoded), nil
}

// Name returns "rot13".
func (ROT13) Name() string { return "rot13" }

// Description returns the listing description.
func (ROT13) Description() string { return "ROT13 substitution cipher" }
