package psfont

import (
	"agg_go/internal/array"
	"agg_go/internal/basics"
)

// glyphCacheBlockSize matches the host's font_cache block size convention
// (16384-16), sized to hold many small glyph blobs per block.
const glyphCacheBlockSize = 16384 - 16

// GlyphCache maps character codes to glyph records for a single font
// adapter. It owns every record's backing bytes and never evicts an
// individual entry; it is cleared only when the owning adapter is
// destroyed. A two-level [256][256] sparse table mirrors the host's
// agg_go/internal/fonts font_cache layout, giving O(1) expected lookup
// without a map's per-entry overhead on the hot glyph-lookup path.
type GlyphCache struct {
	allocator *array.BlockAllocator
	table     [256]*[256]*GlyphRecord
}

// NewGlyphCache creates an empty glyph cache.
func NewGlyphCache() *GlyphCache {
	return &GlyphCache{
		allocator: array.NewBlockAllocator(glyphCacheBlockSize),
	}
}

// Find returns the cached record for code, or nil if absent. O(1) expected.
func (c *GlyphCache) Find(code uint32) *GlyphRecord {
	msb := (code >> 8) & 0xFF
	if c.table[msb] == nil {
		return nil
	}
	return c.table[msb][code&0xFF]
}

// Insert allocates and stores a new record for code. Calling Insert for a
// code that is already cached is undefined; callers must check Find first.
// The returned record's Data buffer is exactly size bytes, writable by the
// caller (normally the backend, via WriteGlyphTo) immediately after.
func (c *GlyphCache) Insert(
	code, index uint32,
	size uint32,
	typ GlyphType,
	bounds basics.Rect[int],
	height, advX, advY float64,
) *GlyphRecord {
	msb := (code >> 8) & 0xFF
	lsb := code & 0xFF

	if c.table[msb] == nil {
		c.table[msb] = array.AllocateType[[256]*GlyphRecord](c.allocator)
		if c.table[msb] == nil {
			return nil
		}
		*c.table[msb] = [256]*GlyphRecord{}
	}

	rec := array.AllocateType[GlyphRecord](c.allocator)
	if rec == nil {
		return nil
	}

	var data []byte
	if size > 0 {
		data = c.allocator.AllocateBytes(int(size))
		if data == nil {
			return nil
		}
	}

	*rec = GlyphRecord{
		Code:     code,
		Index:    index,
		Type:     typ,
		Bounds:   bounds,
		Height:   height,
		AdvanceX: advX,
		AdvanceY: advY,
		Data:     data,
	}

	c.table[msb][lsb] = rec
	return rec
}

// Clear releases all cached records. Called when the owning adapter is
// evicted or destroyed.
func (c *GlyphCache) Clear() {
	c.allocator.RemoveAll()
	c.table = [256]*[256]*GlyphRecord{}
}
