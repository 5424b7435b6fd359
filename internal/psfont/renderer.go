package psfont

import "agg_go/internal/basics"

// DrawTextType selects how accumulated path-mode text is painted.
type DrawTextType int

const (
	DrawTextFill DrawTextType = iota
	DrawTextStroke
	DrawTextBoth
)

// HAlign / VAlign select rect-area text alignment (spec §4.5).
type HAlign int

const (
	AlignHCenter HAlign = iota
	AlignLeft
	AlignRight
)

type VAlign int

const (
	AlignVCenter VAlign = iota
	AlignTop
	AlignBottom
)

// Area is the rectangle ps_draw_text lays text out into.
type Area struct {
	X, Y, W, H float64
}

// Renderer is the downstream collaborator the text run feeds coverage or
// path output into (spec §6). It is never implemented by this package.
type Renderer interface {
	// RenderGlyph consumes the adapter's current mono or path adaptor
	// output for one glyph of the given type.
	RenderGlyph(adapter *Adapter, glyphType GlyphType)
	// RenderGlyphsRaster flushes the accumulated raster output of a run.
	RenderGlyphsRaster()

	// RenderFill / RenderStroke / RenderPaint paint an accumulated
	// outline path built from path-mode text.
	RenderFill(vertices []PathVertex)
	RenderStroke(vertices []PathVertex)
	RenderPaint(vertices []PathVertex)

	RenderShadow(vertices []PathVertex, fill, stroke bool)
	RenderBlur()
}

// PathVertex is one emitted command-vertex pair, as accumulated from the
// curve-converted outline replay before being handed to the renderer.
type PathVertex struct {
	X, Y float64
	Cmd  basics.PathCommand
}
