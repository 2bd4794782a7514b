// Copyright (c) 2026 Scott Thornton (https://github.com/scthornton)
//
// errors.go — sentinel error variables returned by the public textcodec
// API, covering scheme lookup failures, malformed encoded input, and
// decoded byte sequences that are not valid UTF-8 text.

// Package textcodec converts text to and from nine encoding schemes
// (base64, base32, hex, url, html, rot13, ascii85, binary, octal)
// behind a single name-keyed registry API.
package textcodec

import (
	"errors"

	"github.com/scthornton/text-encode-decode/internal/codec"
)

// Lookup errors
var (
	// ErrUnsupportedScheme is returned when a scheme name is not in the
	// registry. Matching is case-sensitive and exact.
	ErrUnsupportedScheme = errors.New("textcodec: unsupported scheme")
)

// Decode errors
var (
	// ErrMalformedInput is returned when encoded input breaks the
	// structural rules of its scheme: characters outside the alphabet,
	// invalid length or padding, or a token out of byte range. The
	// wrapped message names the scheme and the malformation.
	ErrMalformedInput = codec.ErrMalformedInput

	// ErrInvalidUTF8 is returned when a decode reassembles a byte
	// sequence that is not valid UTF-8 text.
	ErrInvalidUTF8 = codec.ErrInvalidUTF8
)
