// Package codec provides the symmetric encode/decode pair for each
// supported text encoding scheme.
package codec

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// Codec is one stateless encode/decode pair for a single scheme.
// Implementations hold no state and are safe for concurrent use.
type Codec interface {
	// Encode converts text into the scheme's representation. Encoding is
	// total: any text encodes successfully.
	Encode(text string) string
	// Decode converts a representation back into text.
	Decode(encoded string) (string, error)
	// Name returns the scheme identifier used for registry lookup.
	Name() string
	// Description returns a human-readable summary used in listings.
	Description() string
}

// Decode failure sentinels. Wrapped errors carry the scheme name and the
// nature of the malformation; callers branch with errors.Is.
var (
	ErrMalformedInput = errors.New("textcodec: malformed input")
	ErrInvalidUTF8    = errors.New("textcodec: decoded bytes are not valid UTF-8")
)

// malformed wraps ErrMalformedInput with the scheme and a detail message.
func malformed(scheme, format string, args ...any) error {
	return fmt.Errorf("%w for %s: %s", ErrMalformedInput, scheme, fmt.Sprintf(format, args...))
}

// asText converts reassembled bytes to text, rejecting invalid UTF-8.
func asText(scheme string, raw []byte) (string, error) {
	if !utf8.Valid(raw) {
		return "", fmt.Errorf("%w (scheme %s)", ErrInvalidUTF8, scheme)
	}
	return string(raw), nil
}
