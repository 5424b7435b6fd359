package psfont

import (
	"agg_go/internal/conv"
	"agg_go/internal/transform"
)

// Adapter binds one (descriptor, transform, antialias) tuple to a backend
// instance, owning that instance's glyph cache and replay adaptors. This is
// the per-instance state the font Engine pools and evicts (spec §4.3).
type Adapter struct {
	desc      FontDescriptor
	signature string
	transform transform.TransAffine
	antialias bool

	instance FontInstance
	cache    *GlyphCache

	pathAdaptor PathAdaptor
	monoAdaptor MonoAdaptor

	prevGlyph *GlyphRecord
	lastGlyph *GlyphRecord
}

// newAdapter constructs an adapter by asking the backend for an instance
// matching all four parameters. A nil return means font-creation-failed
// (spec §7); the caller (Engine.CreateFont) does not insert a failed
// adapter into the pool.
func newAdapter(backend FontBackend, desc FontDescriptor, signature string, t transform.TransAffine, aa bool) *Adapter {
	inst := backend.CreateInstance(desc, t, aa)
	if inst == nil {
		return nil
	}
	return &Adapter{
		desc:      desc,
		signature: signature,
		transform: t,
		antialias: aa,
		instance:  inst,
		cache:     NewGlyphCache(),
	}
}

// Signature returns the adapter's canonical signature, used by the Engine
// to find or evict it.
func (a *Adapter) Signature() string { return a.signature }

// Descriptor returns the descriptor the adapter was constructed from.
func (a *Adapter) Descriptor() FontDescriptor { return a.desc }

// destroy releases the backend instance and the glyph cache. Called by the
// Engine on eviction or shutdown.
func (a *Adapter) destroy() {
	a.instance.Destroy()
	a.cache.Clear()
}

// Activate marks the adapter current on the backend and clears kerning
// history.
func (a *Adapter) Activate() {
	a.instance.Activate()
	a.prevGlyph = nil
	a.lastGlyph = nil
}

// Deactivate releases backend-current state and clears kerning history.
func (a *Adapter) Deactivate() {
	a.prevGlyph = nil
	a.lastGlyph = nil
	a.instance.Deactivate()
}

// GetGlyph returns the cached record for code if present; otherwise it asks
// the backend to prepare and write the glyph, caching the result. A nil
// return means the backend could not produce the glyph
// (ErrGlyphNotAvailable); the run skips that code unit. Updates the
// prev/last kerning history either way a non-nil glyph is returned.
func (a *Adapter) GetGlyph(code uint32) *GlyphRecord {
	if gl := a.cache.Find(code); gl != nil {
		a.prevGlyph = a.lastGlyph
		a.lastGlyph = gl
		return gl
	}

	if !a.instance.PrepareGlyph(code) {
		return nil
	}

	prepared := a.instance.PreparedGlyph()
	gl := a.cache.Insert(code, prepared.Index, prepared.DataSize, prepared.Type,
		prepared.Bounds, prepared.Height, prepared.AdvanceX, prepared.AdvanceY)
	if gl == nil {
		return nil
	}
	a.instance.WriteGlyphTo(gl.Data)

	a.prevGlyph = a.lastGlyph
	a.lastGlyph = gl
	return gl
}

// GetGlyphErr is like GetGlyph but distinguishes why a glyph could not be
// produced, for the public-API boundary (spec §7): ErrGlyphNotAvailable
// when the backend itself could not prepare the glyph, ErrOutOfMemory when
// the cache could not allocate storage for a glyph the backend did prepare.
func (a *Adapter) GetGlyphErr(code uint32) (*GlyphRecord, error) {
	if gl := a.cache.Find(code); gl != nil {
		a.prevGlyph = a.lastGlyph
		a.lastGlyph = gl
		return gl, nil
	}

	if !a.instance.PrepareGlyph(code) {
		return nil, ErrGlyphNotAvailable
	}

	prepared := a.instance.PreparedGlyph()
	gl := a.cache.Insert(code, prepared.Index, prepared.DataSize, prepared.Type,
		prepared.Bounds, prepared.Height, prepared.AdvanceX, prepared.AdvanceY)
	if gl == nil {
		return nil, ErrOutOfMemory
	}
	a.instance.WriteGlyphTo(gl.Data)

	a.prevGlyph = a.lastGlyph
	a.lastGlyph = gl
	return gl, nil
}

// AddKerning applies the backend's kerning adjustment between the previous
// and last glyph to (*x, *y). No-op unless both are non-nil, i.e. before
// a second glyph (of any code, repeats included) has been fetched.
func (a *Adapter) AddKerning(x, y *float64) {
	if a.prevGlyph == nil || a.lastGlyph == nil {
		return
	}
	a.instance.AddKerning(a.prevGlyph.Index, a.lastGlyph.Index, x, y)
}

// GenerateRaster dispatches on record.Type: for a mono glyph it attaches the
// blob to the mono adaptor translated by (x, y); for an outline glyph it
// decodes the vertex-count header and attaches the remainder to the path
// adaptor, then translates. Returns false if record is nil.
func (a *Adapter) GenerateRaster(record *GlyphRecord, x, y float64) bool {
	if record == nil {
		return false
	}
	switch record.Type {
	case GlyphTypeMono:
		a.monoAdaptor.SerializeFrom(record.Data, uint32(len(record.Data)), x, y)
	case GlyphTypeOutline:
		count, body, ok := decodeOutlineHeader(record.Data)
		if !ok {
			return false
		}
		a.pathAdaptor.SerializeFrom(count, body, x, y)
	}
	return true
}

// PathAdaptor exposes the outline replay adaptor so a text run can wrap it
// in a curve converter and drain vertices.
func (a *Adapter) PathAdaptor() *PathAdaptor { return &a.pathAdaptor }

// MonoAdaptor exposes the coverage-span replay adaptor.
func (a *Adapter) MonoAdaptor() *MonoAdaptor { return &a.monoAdaptor }

// CurvePath wraps the path adaptor in a curve converter so quadratic/cubic
// control vertices are expanded into line segments, matching spec §4.6.
func (a *Adapter) CurvePath() *conv.ConvCurve {
	return conv.NewConvCurve(&a.pathAdaptor)
}

func (a *Adapter) Ascent() float64     { return a.instance.Ascent() }
func (a *Adapter) Descent() float64    { return a.instance.Descent() }
func (a *Adapter) Leading() float64    { return a.instance.Leading() }
func (a *Adapter) UnitsPerEm() int     { return a.instance.UnitsPerEm() }
func (a *Adapter) Height() float64     { return a.Ascent() - a.Descent() }
