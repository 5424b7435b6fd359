package psfont

import (
	"agg_go/internal/basics"
	"agg_go/internal/transform"
)

// FontBackend is the platform-specific font capability set the core
// consumes. It is an external collaborator (spec §6): face loading,
// hinting, and rasterizing are entirely its responsibility. Two concrete
// backends live under internal/psfont/backend: an embedded bitmap backend
// adapted from the host's glyph-raster-bin package, and a golang.org/x/image
// sfnt-backed outline backend.
type FontBackend interface {
	// Init acquires any process-wide backend state. Shutdown releases it.
	Init() bool
	Shutdown()

	// CreateInstance binds a concrete backend instance to
	// (descriptor, transform, antialias). A nil return means the backend
	// rejected the request (font-creation-failed, spec §7).
	CreateInstance(desc FontDescriptor, t transform.TransAffine, antialias bool) FontInstance
}

// FontInstance is a backend instance bound to one (descriptor, transform,
// antialias) tuple, as constructed by FontBackend.CreateInstance.
type FontInstance interface {
	Destroy()
	Activate()
	Deactivate()

	// PrepareGlyph stages the glyph for code so PreparedGlyph() and
	// WriteGlyphTo are valid until the next PrepareGlyph call. A false
	// return is glyph-not-available (spec §7); the run skips that code.
	PrepareGlyph(code uint32) bool
	PreparedGlyph() PreparedGlyph
	WriteGlyphTo(dst []byte)

	AddKerning(prevIndex, currIndex uint32, x, y *float64) bool

	Ascent() float64
	Descent() float64
	Leading() float64
	UnitsPerEm() int
}

// PreparedGlyph carries the metadata a backend exposes about the glyph last
// staged by PrepareGlyph, valid until the next PrepareGlyph call.
type PreparedGlyph struct {
	Index    uint32
	DataSize uint32
	Type     GlyphType
	Bounds   basics.Rect[int]
	Height   float64
	AdvanceX float64
	AdvanceY float64
}
