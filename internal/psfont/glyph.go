package psfont

import (
	"encoding/binary"

	"agg_go/internal/basics"
)

// GlyphType distinguishes the two blob layouts a backend may produce.
type GlyphType int

const (
	// GlyphTypeMono is a backend-defined, opaque coverage-span byte stream.
	GlyphTypeMono GlyphType = iota
	// GlyphTypeOutline is a count-prefixed vertex-command byte stream.
	GlyphTypeOutline
)

// outlineHeaderSize is sizeof(uint) in the original C++ layout: the leading
// vertex count prefixing an outline blob's command stream.
const outlineHeaderSize = 4

// GlyphRecord is an immutable cache entry owned by exactly one GlyphCache.
type GlyphRecord struct {
	Code     uint32
	Index    uint32
	Type     GlyphType
	Bounds   basics.Rect[int]
	Height   float64
	AdvanceX float64
	AdvanceY float64
	Data     []byte
}

// Extent returns the (advance, height) pair for this glyph, matching the
// original ps_glyph_get_extent entry point: advance_y is not part of the
// public extent, only advance_x and height are.
func (g *GlyphRecord) Extent() (width, height float64) {
	return g.AdvanceX, g.Height
}

// encodeOutlineHeader builds the leading vertex-count prefix of an outline
// blob using native-endian-agnostic little-endian encoding (the codec picks
// one encoding and both writer and reader must agree; little-endian keeps
// this deterministic across platforms, unlike the native-endian memcpy the
// original C took).
func encodeOutlineHeader(vertexCount uint32) [outlineHeaderSize]byte {
	var buf [outlineHeaderSize]byte
	binary.LittleEndian.PutUint32(buf[:], vertexCount)
	return buf
}

// decodeOutlineHeader reads the vertex count prefixing an outline blob,
// validating that the blob is at least large enough to hold the header.
// This is the typed-reader design.note replacement for the original's
// unchecked memcpy of the leading count out of the blob.
func decodeOutlineHeader(data []byte) (count uint32, body []byte, ok bool) {
	if len(data) < outlineHeaderSize {
		return 0, nil, false
	}
	return binary.LittleEndian.Uint32(data[:outlineHeaderSize]), data[outlineHeaderSize:], true
}
