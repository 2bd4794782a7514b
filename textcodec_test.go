package textcodec_test

import (
	"math/rand"
	"testing"
	"time"

	textcodec "github.com/scthornton/text-encode-decode"
	"github.com/scthornton/text-encode-decode/internal/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── Helpers ──────────────────────────────────────────────────────────────────

var allSchemes = []string{
	"base64", "base32", "hex", "url", "html", "rot13", "ascii85", "binary", "octal",
}

func newReg(t *testing.T) *textcodec.Registry {
	t.Helper()
	return textcodec.NewRegistry(textcodec.Config{})
}

// recordingMetrics counts recorder calls for dispatch tests.
type recordingMetrics struct {
	encodes, decodes, errors, latencies int
}

func (m *recordingMetrics) RecordEncode(string)                        { m.encodes++ }
func (m *recordingMetrics) RecordDecode(string)                        { m.decodes++ }
func (m *recordingMetrics) RecordError(_, _ string)                    { m.errors++ }
func (m *recordingMetrics) RecordLatency(_, _ string, _ time.Duration) { m.latencies++ }

// ── Registry dispatch ────────────────────────────────────────────────────────

func TestRegistry_EncodeDecode(t *testing.T) {
	reg := newReg(t)

	enc, err := reg.Encode("Hello, World!", "base64")
	require.NoError(t, err)
	assert.Equal(t, "SGVsbG8sIFdvcmxkIQ==", enc)

	dec, err := reg.Decode(enc, "base64")
	require.NoError(t, err)
	assert.Equal(t, "Hello, World!", dec)
}

func TestRegistry_UnsupportedScheme(t *testing.T) {
	reg := newReg(t)

	_, err := reg.Encode("abc", "made-up-scheme")
	assert.ErrorIs(t, err, textcodec.ErrUnsupportedScheme)

	_, err = reg.Decode("abc", "made-up-scheme")
	assert.ErrorIs(t, err, textcodec.ErrUnsupportedScheme)
}

func TestRegistry_LookupIsCaseSensitive(t *testing.T) {
	reg := newReg(t)

	_, err := reg.Encode("abc", "Base64")
	assert.ErrorIs(t, err, textcodec.ErrUnsupportedScheme)
	_, err = reg.Encode("abc", " base64")
	assert.ErrorIs(t, err, textcodec.ErrUnsupportedScheme)
}

func TestRegistry_List(t *testing.T) {
	reg := newReg(t)

	infos := reg.List()
	require.Len(t, infos, 9)
	for i, info := range infos {
		assert.Equal(t, allSchemes[i], info.Name)
		assert.NotEmpty(t, info.Description)
	}

	// Repeated calls return identical sequences.
	assert.Equal(t, infos, reg.List())
}

func TestRegistry_Metrics(t *testing.T) {
	m := &recordingMetrics{}
	reg := textcodec.NewRegistry(textcodec.Config{
		Metrics: m,
		Clock:   clock.NewMock(time.Time{}),
	})

	_, err := reg.Encode("hi", "hex")
	require.NoError(t, err)
	_, err = reg.Decode("6869", "hex")
	require.NoError(t, err)
	_, err = reg.Decode("zz", "hex")
	require.Error(t, err)

	assert.Equal(t, 1, m.encodes)
	assert.Equal(t, 1, m.decodes)
	assert.Equal(t, 1, m.errors)
	assert.Equal(t, 2, m.latencies)
}

// ── Scheme enum ──────────────────────────────────────────────────────────────

func TestParseScheme(t *testing.T) {
	for _, name := range allSchemes {
		s, err := textcodec.ParseScheme(name)
		require.NoError(t, err)
		assert.Equal(t, name, s.String())
		assert.NotEmpty(t, s.Description())
	}

	_, err := textcodec.ParseScheme("base65")
	assert.ErrorIs(t, err, textcodec.ErrUnsupportedScheme)
	assert.Contains(t, err.Error(), "base65")
}

func TestScheme_TypedDispatch(t *testing.T) {
	reg := newReg(t)

	assert.Equal(t, "616263", reg.EncodeScheme("abc", textcodec.Hex))

	got, err := reg.DecodeScheme("Uryyb", textcodec.ROT13)
	require.NoError(t, err)
	assert.Equal(t, "Hello", got)
}

// ── Package-level free functions ─────────────────────────────────────────────

func TestDefault_FreeFunctions(t *testing.T) {
	enc, err := textcodec.Encode("A B", "url")
	require.NoError(t, err)
	assert.Equal(t, "A%20B", enc)

	dec, err := textcodec.Decode("A%20B", "url")
	require.NoError(t, err)
	assert.Equal(t, "A B", dec)

	assert.Len(t, textcodec.List(), 9)
}

// ── Error taxonomy ───────────────────────────────────────────────────────────

func TestErrorTaxonomy_Distinguishable(t *testing.T) {
	reg := newReg(t)

	_, err := reg.Decode("SGVsbG8", "base64")
	assert.ErrorIs(t, err, textcodec.ErrMalformedInput)
	assert.NotErrorIs(t, err, textcodec.ErrUnsupportedScheme)
	assert.NotErrorIs(t, err, textcodec.ErrInvalidUTF8)

	_, err = reg.Decode("ff", "hex")
	assert.ErrorIs(t, err, textcodec.ErrInvalidUTF8)
	assert.NotErrorIs(t, err, textcodec.ErrMalformedInput)

	_, err = reg.Decode("ff", "base99")
	assert.ErrorIs(t, err, textcodec.ErrUnsupportedScheme)
}

func TestDecode_MalformedPerScheme(t *testing.T) {
	reg := newReg(t)
	tests := []struct {
		scheme, input string
	}{
		{"base64", "SGVsbG8"},
		{"hex", "zz"},
		{"octal", "777 999"},
		{"binary", "1111111 00000000"},
	}
	for _, tt := range tests {
		t.Run(tt.scheme, func(t *testing.T) {
			_, err := reg.Decode(tt.input, tt.scheme)
			assert.ErrorIs(t, err, textcodec.ErrMalformedInput)
		})
	}
}

// ── Round-trip law ───────────────────────────────────────────────────────────

func TestRoundTrip_AllSchemes(t *testing.T) {
	reg := newReg(t)
	inputs := []string{
		"",
		"Hello, World!",
		"The quick brown fox jumps over the lazy dog",
		"&<>\"' %20 + / \\",
		"café naïve 你好 \U0001f680",
	}
	for _, scheme := range allSchemes {
		for _, in := range inputs {
			enc, err := reg.Encode(in, scheme)
			require.NoError(t, err)
			dec, err := reg.Decode(enc, scheme)
			require.NoError(t, err, "%s: decode(encode(%q))", scheme, in)
			assert.Equal(t, in, dec, "%s round trip", scheme)
		}
	}
}

func TestRoundTrip_RandomUnicode(t *testing.T) {
	reg := newReg(t)
	rng := rand.New(rand.NewSource(1))

	// Random valid UTF-8 strings drawn from several scalar ranges.
	randText := func() string {
		n := rng.Intn(64)
		runes := make([]rune, 0, n)
		for i := 0; i < n; i++ {
			var r rune
			switch rng.Intn(4) {
			case 0:
				r = rune(rng.Intn(0x80)) // ASCII
			case 1:
				r = rune(0x80 + rng.Intn(0x700)) // two-byte range
			case 2:
				r = rune(0x800 + rng.Intn(0xD800-0x800)) // three-byte, below surrogates
			default:
				r = rune(0x10000 + rng.Intn(0x10000)) // four-byte
			}
			runes = append(runes, r)
		}
		return string(runes)
	}

	for _, scheme := range allSchemes {
		for i := 0; i < 50; i++ {
			in := randText()
			enc, err := reg.Encode(in, scheme)
			require.NoError(t, err)
			dec, err := reg.Decode(enc, scheme)
			require.NoError(t, err, "%s: decode(encode(%q))", scheme, in)
			require.Equal(t, in, dec, "%s round trip of %q", scheme, in)
		}
	}
}
