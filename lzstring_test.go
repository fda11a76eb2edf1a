package lzstring

import (
	"math/rand"
	"strings"
	"sync"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/lzstring/errs"
)

// ==============================================================================
// Helper Functions
// ==============================================================================

// roundTripper pairs a compressor with its decompressor through a string form.
type roundTripper struct {
	name      string
	roundTrip func(string) (string, error)
}

var formats = []roundTripper{
	{
		name: "raw",
		roundTrip: func(s string) (string, error) {
			return Decompress(Compress(s))
		},
	},
	{
		name: "utf16",
		roundTrip: func(s string) (string, error) {
			return DecompressFromUTF16(CompressToUTF16(s))
		},
	},
	{
		name: "uri",
		roundTrip: func(s string) (string, error) {
			return DecompressFromEncodedURIComponent(CompressToEncodedURIComponent(s))
		},
	},
	{
		name: "base64",
		roundTrip: func(s string) (string, error) {
			return DecompressFromBase64(CompressToBase64(s))
		},
	},
	{
		name: "uint8array",
		roundTrip: func(s string) (string, error) {
			return DecompressFromUint8Array(CompressToUint8Array(s))
		},
	},
}

func sampleTexts() map[string]string {
	return map[string]string{
		"empty":        "",
		"single":       "a",
		"repeated":     "aaaa",
		"hello":        "Hello, World!",
		"sentence":     "Hello, World! This is a test string for LZ-String compression.",
		"spaces":       "test string with spaces",
		"json":         `{"user":"ada","roles":["admin","dev"],"settings":{"theme":"dark","tabs":4}}`,
		"unicode":      "Grüße aus Köln — 東京 ☃ ∑ 😀🚀👍",
		"long":         strings.Repeat("The quick brown fox jumps over the lazy dog. ", 200),
		"control":      "\x00\x01\x02\t\r\n",
		"astral only":  "𝔘𝔫𝔦𝔠𝔬𝔡𝔢",
		"bmp boundary": "\uFFFD\uFFFF\U00010000",
	}
}

// ==============================================================================
// Round Trip
// ==============================================================================

func TestRoundTrip_AllFormats(t *testing.T) {
	for _, f := range formats {
		t.Run(f.name, func(t *testing.T) {
			for name, text := range sampleTexts() {
				got, err := f.roundTrip(text)
				require.NoError(t, err, name)
				require.Equal(t, text, got, name)
			}
		})
	}
}

func TestRoundTrip_Random(t *testing.T) {
	rng := rand.New(rand.NewSource(2024))
	runes := []rune("abcdefghijklmnopqrstuvwxyz ABC0123456789.,;äöü€中文日本語😀🎉")

	for i := range 100 {
		var sb strings.Builder
		n := rng.Intn(300)
		for range n {
			sb.WriteRune(runes[rng.Intn(len(runes))])
		}
		text := sb.String()

		f := formats[i%len(formats)]
		got, err := f.roundTrip(text)
		require.NoError(t, err, "%s: %q", f.name, text)
		require.Equal(t, text, got, f.name)
	}
}

func TestCompress_Empty(t *testing.T) {
	compressed := Compress("")
	require.Equal(t, []uint16{0x4000}, compressed)

	text, err := Decompress(compressed)
	require.NoError(t, err)
	require.Equal(t, "", text)
}

func TestCompress_Repeated(t *testing.T) {
	compressed := Compress("aaaa")
	require.Equal(t, []uint16{0x218E, 0x4000}, compressed)

	text, err := Decompress(compressed)
	require.NoError(t, err)
	require.Equal(t, "aaaa", text)
}

func TestKnownOutput(t *testing.T) {
	require.Equal(t, "Q===", CompressToBase64(""))
	require.Equal(t, "Q", CompressToEncodedURIComponent(""))
	require.Equal(t, "\u2020 ", CompressToUTF16(""))
	require.Equal(t, []byte{0x40, 0x00}, CompressToUint8Array(""))

	require.Equal(t, []uint16{0x2190}, Compress("a"))
	require.Equal(t, "IZA=", CompressToBase64("a"))
	require.Equal(t, "IZA", CompressToEncodedURIComponent("a"))
}

func TestCompressToBase64_HelloWorld(t *testing.T) {
	compressed := CompressToBase64("Hello, World!")
	require.Regexp(t, `^[A-Za-z0-9+/]+=*$`, compressed)
	require.Zero(t, len(compressed)%4)

	text, err := DecompressFromBase64(compressed)
	require.NoError(t, err)
	require.Equal(t, "Hello, World!", text)
}

func TestCompress_ShrinksRepetitiveText(t *testing.T) {
	text := strings.Repeat("lorem ipsum dolor sit amet ", 100)

	assert.Less(t, len(Compress(text)), len(text)/4)
	assert.Less(t, len(CompressToBase64(text)), len(text)/4)
	assert.Less(t, len(CompressToUint8Array(text)), len(text)/4)
}

// ==============================================================================
// Alphabet Closure
// ==============================================================================

func TestAlphabetClosure(t *testing.T) {
	text := sampleTexts()["unicode"] + sampleTexts()["long"]

	base64 := CompressToBase64(text)
	require.Regexp(t, `^[A-Za-z0-9+/]*=*$`, base64)

	uri := CompressToEncodedURIComponent(text)
	require.Regexp(t, `^[A-Za-z0-9+\-$]*$`, uri)

	utf16Text := CompressToUTF16(text)
	require.True(t, utf8.ValidString(utf16Text))
	for _, r := range utf16Text {
		require.GreaterOrEqual(t, r, rune(0x20))
		require.LessOrEqual(t, r, rune(0x801F))
	}
	require.True(t, strings.HasSuffix(utf16Text, " "))
}

// ==============================================================================
// Raw Code Units
// ==============================================================================

func TestCompressUnits_LoneSurrogate(t *testing.T) {
	units := []uint16{'a', 0xD800, 'b'}

	compressed := CompressUnits(units)

	got, err := DecompressUnits(compressed)
	require.NoError(t, err)
	require.Equal(t, units, got)

	_, err = Decompress(compressed)
	require.ErrorIs(t, err, errs.ErrInvalidEncoding)
}

func TestCompressUnits_MatchesCompress(t *testing.T) {
	text := "surrogate pairs 😀 are two units"
	require.Equal(t, Compress(text), CompressUnits(appendUTF16(nil, text)))
}

func TestDecompressUnits_Empty(t *testing.T) {
	got, err := DecompressUnits(Compress(""))
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Empty(t, got)
}

func TestCompress_InvalidUTF8(t *testing.T) {
	text, err := Decompress(Compress("ok\xffok"))
	require.NoError(t, err)
	require.Equal(t, "ok\uFFFDok", text)
}

// ==============================================================================
// Failures
// ==============================================================================

func TestDecompress_ShorterThanOneUnit(t *testing.T) {
	_, err := Decompress(nil)
	require.ErrorIs(t, err, errs.ErrCorruptStream)

	_, err = Decompress([]uint16{})
	require.ErrorIs(t, err, errs.ErrCorruptStream)

	_, err = DecompressUnits(nil)
	require.ErrorIs(t, err, errs.ErrCorruptStream)

	_, err = DecompressFromBase64("")
	require.ErrorIs(t, err, errs.ErrCorruptStream)

	_, err = DecompressFromEncodedURIComponent("")
	require.ErrorIs(t, err, errs.ErrCorruptStream)

	_, err = DecompressFromUTF16("")
	require.ErrorIs(t, err, errs.ErrCorruptStream)

	_, err = DecompressFromUint8Array(nil)
	require.ErrorIs(t, err, errs.ErrCorruptStream)
}

func TestDecompress_Truncated(t *testing.T) {
	compressed := Compress(strings.Repeat("truncate me please ", 10))
	// The last unit carries the end-of-stream code unless it is pure padding,
	// so drop two to be sure the terminator is gone.
	truncated := compressed[:len(compressed)-2]

	text, err := Decompress(truncated)
	require.ErrorIs(t, err, errs.ErrCorruptStream)
	require.Empty(t, text)
}

func TestDecompressFromBase64_InvalidEncoding(t *testing.T) {
	text, err := DecompressFromBase64("not-valid-base64!!")
	require.ErrorIs(t, err, errs.ErrInvalidEncoding)
	require.Empty(t, text)
}

func TestDecompressFromEncodedURIComponent_InvalidEncoding(t *testing.T) {
	_, err := DecompressFromEncodedURIComponent("abc/def")
	require.ErrorIs(t, err, errs.ErrInvalidEncoding)

	_, err = DecompressFromEncodedURIComponent("abc%20def")
	require.ErrorIs(t, err, errs.ErrInvalidEncoding)
}

func TestDecompressFromEncodedURIComponent_FormDecodedInput(t *testing.T) {
	compressed := CompressToEncodedURIComponent("Grüße")
	require.Equal(t, "OIJwPw+wpkA", compressed)

	// Query-string decoding turns '+' into a space.
	text, err := DecompressFromEncodedURIComponent(strings.ReplaceAll(compressed, "+", " "))
	require.NoError(t, err)
	require.Equal(t, "Grüße", text)

	text, err = DecompressFromEncodedURIComponent(compressed)
	require.NoError(t, err)
	require.Equal(t, "Grüße", text)
}

func TestDecompressFromUTF16_InvalidEncoding(t *testing.T) {
	_, err := DecompressFromUTF16("\x01abc")
	require.ErrorIs(t, err, errs.ErrInvalidEncoding)

	_, err = DecompressFromUTF16("\uD7FF ")
	require.ErrorIs(t, err, errs.ErrInvalidEncoding)
}

func TestDecompressFromUint8Array_OddLength(t *testing.T) {
	// "aaaa" compresses to 0x218E 0x4000; the low byte of the last unit is padding.
	full := CompressToUint8Array("aaaa")
	require.Equal(t, []byte{0x21, 0x8E, 0x40, 0x00}, full)

	text, err := DecompressFromUint8Array(full[:3])
	require.NoError(t, err)
	require.Equal(t, "aaaa", text)

	_, err = DecompressFromUint8Array(full[:1])
	require.ErrorIs(t, err, errs.ErrCorruptStream)
}

func TestDecompressFromUint8Array_OddLengthRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(8))
	found := 0

	for range 200 {
		text := strings.Repeat(string(rune('a'+rng.Intn(26))), 1+rng.Intn(50)) + "xyz"
		full := CompressToUint8Array(text)
		if full[len(full)-1] != 0 {
			continue
		}
		found++

		got, err := DecompressFromUint8Array(full[:len(full)-1])
		require.NoError(t, err)
		require.Equal(t, text, got)
	}
	require.Positive(t, found)
}

// ==============================================================================
// Concurrency
// ==============================================================================

func TestConcurrentUse(t *testing.T) {
	texts := sampleTexts()
	var wg sync.WaitGroup

	for range 8 {
		for name, text := range texts {
			for _, f := range formats {
				wg.Add(1)
				go func() {
					defer wg.Done()
					got, err := f.roundTrip(text)
					assert.NoError(t, err, "%s/%s", f.name, name)
					assert.Equal(t, text, got, "%s/%s", f.name, name)
				}()
			}
		}
	}
	wg.Wait()
}
