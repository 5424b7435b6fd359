// Package backend provides concrete psfont.FontBackend implementations.
//
// EmbeddedBitmapBackend adapts the host's internal/glyph raster-bin package
// (a self-contained bitmap font format with no external file dependency)
// into the psfont.FontBackend/FontInstance contract, producing mono glyph
// blobs. It never needs device/file I/O, so it is always available — a
// reasonable default backend for headless tests and for callers who embed
// one of the host's bitmap fonts directly.
package backend

import (
	"agg_go/internal/basics"
	"agg_go/internal/fonts"
	"agg_go/internal/glyph"
	"agg_go/internal/psfont"
	"agg_go/internal/transform"
)

// EmbeddedBitmapBackend resolves a FontDescriptor's family name against a
// small built-in registry of embedded bitmap fonts.
type EmbeddedBitmapBackend struct {
	registry map[string][]byte
}

// NewEmbeddedBitmapBackend creates a backend pre-registered with the host's
// bundled Simple4x6Font under the name "simple4x6". AddFont registers more.
func NewEmbeddedBitmapBackend() *EmbeddedBitmapBackend {
	b := &EmbeddedBitmapBackend{registry: map[string][]byte{}}
	b.AddFont("simple4x6", fonts.GetSimple4x6Font())
	return b
}

// AddFont registers raw embedded bitmap font data under name.
func (b *EmbeddedBitmapBackend) AddFont(name string, data []byte) {
	b.registry[name] = data
}

func (b *EmbeddedBitmapBackend) Init() bool { return true }
func (b *EmbeddedBitmapBackend) Shutdown()  {}

func (b *EmbeddedBitmapBackend) CreateInstance(desc psfont.FontDescriptor, _ transform.TransAffine, _ bool) psfont.FontInstance {
	data, ok := b.registry[desc.Name()]
	if !ok {
		return nil
	}
	return &embeddedInstance{
		raster: glyph.NewGlyphRasterBin(data),
		flip:   desc.FlipY(),
	}
}

type embeddedInstance struct {
	raster *glyph.GlyphRasterBin
	flip   bool

	prepared psfont.PreparedGlyph
	blob     []byte
}

func (e *embeddedInstance) Destroy()    {}
func (e *embeddedInstance) Activate()   {}
func (e *embeddedInstance) Deactivate() {}

// PrepareGlyph renders the glyph's bitmap at the origin and packs it into
// this package's mono blob encoding (one EncodeMonoSpan record per bitmap
// row, including rows with no set bit), so the cached record is ready for
// psfont.MonoAdaptor.SerializeFrom without further backend involvement.
func (e *embeddedInstance) PrepareGlyph(code uint32) bool {
	var rect glyph.GlyphRect
	e.raster.Prepare(&rect, 0, 0, rune(code), e.flip)
	if rect.X2 < rect.X1 {
		return false // invalid rectangle: code not in this font
	}

	width := rect.X2 - rect.X1 + 1
	height := rect.Y2 - rect.Y1 + 1

	var blob []byte
	for row := 0; row < height; row++ {
		covers := e.raster.Span(row)
		if covers == nil {
			continue
		}
		n := width
		if n > len(covers) {
			n = len(covers)
		}
		blob = psfont.EncodeMonoSpan(blob, rect.X1, rect.Y1+row, covers[:n])
	}

	e.blob = blob
	e.prepared = psfont.PreparedGlyph{
		Index:    code,
		DataSize: uint32(len(blob)),
		Type:     psfont.GlyphTypeMono,
		Bounds:   basics.Rect[int]{X1: rect.X1, Y1: rect.Y1, X2: rect.X2, Y2: rect.Y2},
		Height:   e.raster.Height(),
		AdvanceX: rect.DX,
		AdvanceY: rect.DY,
	}
	return true
}

func (e *embeddedInstance) PreparedGlyph() psfont.PreparedGlyph { return e.prepared }

func (e *embeddedInstance) WriteGlyphTo(dst []byte) { copy(dst, e.blob) }

// AddKerning is a no-op: the embedded bitmap format carries no kerning
// table.
func (e *embeddedInstance) AddKerning(prevIndex, currIndex uint32, x, y *float64) bool {
	return false
}

func (e *embeddedInstance) Ascent() float64  { return e.raster.BaseLine() }
func (e *embeddedInstance) Descent() float64 { return e.raster.Height() - e.raster.BaseLine() }
func (e *embeddedInstance) Leading() float64 { return 0 }
func (e *embeddedInstance) UnitsPerEm() int  { return int(e.raster.Height()) }
