// Copyright (c) 2026 Scott Thornton (https://github.com/scthornton)
//
// scheme.go — the closed set of supported encoding schemes and the
// lookup from a scheme name into the enum.

package textcodec

import (
	"fmt"

	"github.com/scthornton/text-encode-decode/internal/codec"
)

// Scheme identifies one supported encoding scheme. The set is closed:
// the nine values below are fixed at compile time and index the codec
// table directly.
type Scheme int

const (
	Base64 Scheme = iota
	Base32
	Hex
	URL
	HTML
	ROT13
	ASCII85
	Binary
	Octal

	numSchemes
)

// codecs is the codec table, indexed by Scheme. Declaration order here
// is the order List reports.
var codecs = [numSchemes]codec.Codec{
	Base64:  codec.Base64{},
	Base32:  codec.Base32{},
	Hex:     codec.Hex{},
	URL:     codec.URL{},
	HTML:    codec.HTML{},
	ROT13:   codec.ROT13{},
	ASCII85: codec.ASCII85{},
	Binary:  codec.Binary{},
	Octal:   codec.Octal{},
}

// byName resolves scheme names to enum values. Built from the codec
// table so the two can never disagree.
var byName = func() map[string]Scheme {
	m := make(map[string]Scheme, len(codecs))
	for i, c := range codecs {
		m[c.Name()] = Scheme(i)
	}
	return m
}()

// ParseScheme resolves a scheme name ("base64", "rot13", ...) into its
// Scheme value. Matching is case-sensitive exact; there are no aliases.
// Unknown names fail with ErrUnsupportedScheme.
func ParseScheme(name string) (Scheme, error) {
	s, ok := byName[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedScheme, name)
	}
	return s, nil
}

// String returns the scheme's registry name.
func (s Scheme) String() string {
	if s < 0 || s >= numSchemes {
		return fmt.Sprintf("Scheme(%d)", int(s))
	}
	return codecs[s].Name()
}

// Description returns the scheme's human-readable description.
func (s Scheme) Description() string {
	if s < 0 || s >= numSchemes {
		return ""
	}
	return codecs[s].Description()
}
