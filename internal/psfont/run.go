package psfont

import (
	"agg_go/internal/basics"
	"agg_go/internal/transform"
)

// Run implements the text run algorithm of spec §4.5: signature reuse,
// kerning, advance accumulation, rect-area alignment, and dispatch between
// raster and outline paths.
type Run struct {
	Engine   *Engine
	Renderer Renderer
	Kerning  bool
}

// NewRun creates a text run engine over the given font engine and renderer.
func NewRun(engine *Engine, renderer Renderer) *Run {
	return &Run{Engine: engine, Renderer: renderer}
}

// ensureFont applies t and antialias to the engine, then calls CreateFont
// unless the fast path applies: stampChange is false, an adapter is
// already current, and its descriptor already equals desc. Returns the
// active adapter, or nil on font-creation-failed.
func (r *Run) ensureFont(desc FontDescriptor, t transform.TransAffine, antialias bool) *Adapter {
	r.Engine.SetTransform(t)
	r.Engine.SetAntialias(antialias)

	if !r.Engine.StampChange() {
		if cur := r.Engine.CurrentFont(); cur != nil && cur.Descriptor().Equal(desc) {
			return cur
		}
	}

	if !r.Engine.CreateFont(desc) {
		return nil
	}
	return r.Engine.CurrentFont()
}

// codeUnits decodes str into charset-dependent code points: one per byte
// for CharsetANSI, one per uint16 for CharsetWide (str is treated as raw
// little-endian UTF-16 bytes, decoded via decodeWideUnits in charset.go).
func codeUnits(charset Charset, text []byte) []uint32 {
	if charset == CharsetWide {
		return decodeWideUnits(text)
	}
	units := make([]uint32, len(text))
	for i, b := range text {
		units[i] = uint32(b)
	}
	return units
}

// DrawAt draws text at the point (x, y), baseline adjusted by the active
// adapter's ascent, feeding each glyph to the renderer as it is produced.
// This matches the original ps_text_out_length entry point: no rect
// alignment, just the straight run loop.
func (r *Run) DrawAt(desc FontDescriptor, t transform.TransAffine, antialias bool, text []byte, x, y float64) bool {
	adapter := r.ensureFont(desc, t, antialias)
	if adapter == nil {
		return false
	}

	y += adapter.Ascent()
	units := codeUnits(desc.Charset(), text)

	for _, c := range units {
		g := adapter.GetGlyph(c)
		if g == nil {
			continue
		}
		if r.Kerning {
			adapter.AddKerning(&x, &y)
		}
		if adapter.GenerateRaster(g, x, y) {
			r.Renderer.RenderGlyph(adapter, g.Type)
		}
		x += g.AdvanceX
		y += g.AdvanceY
	}
	r.Renderer.RenderGlyphsRaster()
	return true
}

// DrawGlyphs draws a slice of already-resolved glyph records at a point,
// matching the original ps_show_glyphs entry point: no code→glyph lookup,
// kerning and advance still apply.
func (r *Run) DrawGlyphs(adapter *Adapter, glyphs []*GlyphRecord, x, y float64) {
	y += adapter.Ascent()
	for _, g := range glyphs {
		if g == nil {
			continue
		}
		if r.Kerning {
			adapter.AddKerning(&x, &y)
		}
		if adapter.GenerateRaster(g, x, y) {
			r.Renderer.RenderGlyph(adapter, g.Type)
		}
		x += g.AdvanceX
		y += g.AdvanceY
	}
	r.Renderer.RenderGlyphsRaster()
}

// Extent returns the exact total advance and the font height for text,
// matching the original ps_get_text_extent entry point. Unlike the
// rect-area layout's width estimate, this sums every glyph's actual
// advance.
func (r *Run) Extent(desc FontDescriptor, t transform.TransAffine, antialias bool, text []byte) (width, height float64, ok bool) {
	adapter := r.ensureFont(desc, t, antialias)
	if adapter == nil {
		return 0, 0, false
	}
	units := codeUnits(desc.Charset(), text)
	for _, c := range units {
		g := adapter.GetGlyph(c)
		if g != nil {
			width += g.AdvanceX
		}
	}
	return width, adapter.Height(), true
}

// DrawInArea lays text out inside area with the given alignment, forcing
// antialias on for the duration (restored on return), and accumulates an
// outline path which is then filled/stroked/painted via typ. This matches
// the original ps_draw_text entry point, including its explicitly
// approximate width estimate (spec §4.5, §9): the first glyph's advance_x
// multiplied by len, not an exact measurement.
func (r *Run) DrawInArea(
	desc FontDescriptor, t transform.TransAffine, antialias bool,
	area Area, text []byte, typ DrawTextType, halign HAlign, valign VAlign,
) bool {
	defer r.Engine.SetAntialias(antialias)
	adapter := r.ensureFont(desc, t, true)
	if adapter == nil {
		return false
	}

	units := codeUnits(desc.Charset(), text)
	if len(units) == 0 {
		return false
	}

	var w, h float64
	if g := adapter.GetGlyph(units[0]); g != nil {
		w, h = g.Extent()
	}
	w *= float64(len(units)) // estimate only, see spec §9.

	var x, y float64
	switch halign {
	case AlignLeft:
		x = area.X
	case AlignRight:
		x = area.X + (area.W - w)
	default:
		x = area.X + (area.W-w)/2
	}

	switch valign {
	case AlignTop:
		y = area.Y + adapter.Ascent()
	case AlignBottom:
		y = area.Y + (area.H - h) - adapter.Descent()
	default:
		y = area.Y + (area.H-h)/2 + (adapter.Ascent()-adapter.Descent())/2
	}

	var path []PathVertex
	for _, c := range units {
		g := adapter.GetGlyph(c)
		if g == nil {
			continue
		}
		if r.Kerning {
			adapter.AddKerning(&x, &y)
		}
		if g.Type == GlyphTypeOutline && adapter.GenerateRaster(g, x, y) {
			path = appendGlyphOutline(path, adapter)
		}
		x += g.AdvanceX
		y += g.AdvanceY
	}

	switch typ {
	case DrawTextFill:
		r.Renderer.RenderShadow(path, true, false)
		r.Renderer.RenderFill(path)
		r.Renderer.RenderBlur()
	case DrawTextStroke:
		r.Renderer.RenderShadow(path, false, true)
		r.Renderer.RenderStroke(path)
		r.Renderer.RenderBlur()
	case DrawTextBoth:
		r.Renderer.RenderShadow(path, true, true)
		r.Renderer.RenderPaint(path)
		r.Renderer.RenderBlur()
	}
	return true
}

// appendGlyphOutline drains the adapter's curve-converted path adaptor,
// appending an "end-poly + close" vertex once the replay hits a stop
// command (spec §4.6).
func appendGlyphOutline(dst []PathVertex, adapter *Adapter) []PathVertex {
	curve := adapter.CurvePath()
	for {
		x, y, cmd := curve.Vertex()
		if basics.IsStop(cmd) {
			dst = append(dst, PathVertex{X: x, Y: y, Cmd: basics.PathCmdEndPoly | basics.PathCommand(basics.PathFlagsClose)})
			break
		}
		dst = append(dst, PathVertex{X: x, Y: y, Cmd: cmd})
	}
	return dst
}

// OutlineOf returns the code's outline path, re-requesting the glyph if the
// cached record is not already an outline variant, matching the original
// ps_get_path_from_glyph entry point. Placement is at (0, ascent).
func (r *Run) OutlineOf(adapter *Adapter, record *GlyphRecord) []PathVertex {
	gl := record
	if gl != nil && gl.Type != GlyphTypeOutline {
		gl = adapter.GetGlyph(gl.Code)
	}
	if gl == nil {
		return nil
	}
	if !adapter.GenerateRaster(gl, 0, adapter.Ascent()) {
		return nil
	}
	return appendGlyphOutline(nil, adapter)
}
