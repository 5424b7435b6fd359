package psfont

import (
	"golang.org/x/text/encoding/unicode"
)

// decodeWideUnits decodes raw little-endian UTF-16 bytes (the wire form of
// CharsetWide text, matching the original's ps_uchar16* contract) into one
// code point per UTF-16 code unit — including unpaired surrogates, which
// the original treats as plain 16-bit codes rather than rejecting. This
// stays a direct byte-pair read rather than golang.org/x/text/encoding/
// unicode's UTF-16 decoder: that decoder composes surrogate pairs into
// single runes and substitutes utf8.RuneError on invalid sequences, but a
// run must address the glyph cache by the same 16-bit code the backend's
// prepare_glyph/advance tables use, one cache lookup per code unit.
func decodeWideUnits(data []byte) []uint32 {
	units := make([]uint32, 0, len(data)/2)
	for i := 0; i+1 < len(data); i += 2 {
		units = append(units, uint32(data[i])|uint32(data[i+1])<<8)
	}
	return units
}

// EncodeWide is the package's call site for
// golang.org/x/text/encoding/unicode: callers that hold UTF-8 text destined
// for a CharsetWide run use EncodeWide to produce the UTF-16LE wire form
// decodeWideUnits above expects.
func EncodeWide(utf8Text string) ([]byte, error) {
	enc := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewEncoder()
	return enc.Bytes([]byte(utf8Text))
}
