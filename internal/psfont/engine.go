package psfont

import "agg_go/internal/transform"

// DefaultMaxFonts is the default pool capacity, matching the original
// implementation's typical call-site value.
const DefaultMaxFonts = 32

// Engine is a bounded pool of active font Adapters keyed by signature over
// (descriptor, transform, antialias), with strict FIFO eviction (spec
// §4.4). This mirrors the structure of the host's
// internal/fonts.FontCachePool, generalized so each pool slot owns its own
// backend instance rather than only a glyph cache.
type Engine struct {
	backend FontBackend

	adapters []*Adapter // insertion order; index 0 is oldest
	maxFonts int

	current *Adapter

	transform   transform.TransAffine
	antialias   bool
	stampChange bool
}

// NewEngine creates a font engine bounded to maxFonts concurrently active
// adapters, backed by the given FontBackend. maxFonts <= 0 defaults to
// DefaultMaxFonts.
func NewEngine(backend FontBackend, maxFonts int) *Engine {
	if maxFonts <= 0 {
		maxFonts = DefaultMaxFonts
	}
	return &Engine{
		backend:   backend,
		adapters:  make([]*Adapter, 0, maxFonts),
		maxFonts:  maxFonts,
		transform: *transform.NewTransAffine(),
	}
}

// SetTransform stores t if it differs from the current transform, marking
// the engine dirty so the next CreateFont recomputes the signature.
func (e *Engine) SetTransform(t transform.TransAffine) {
	if !e.transform.IsEqual(&t, 1e-14) {
		e.transform = t
		e.stampChange = true
	}
}

// SetAntialias stores b if it differs from the current setting.
func (e *Engine) SetAntialias(b bool) {
	if e.antialias != b {
		e.antialias = b
		e.stampChange = true
	}
}

// StampChange reports whether the transform or antialias setting changed
// since the last successful CreateFont.
func (e *Engine) StampChange() bool { return e.stampChange }

// CurrentFont returns the active adapter, or nil if none is active.
func (e *Engine) CurrentFont() *Adapter { return e.current }

// NumFonts returns the number of adapters currently pooled.
func (e *Engine) NumFonts() int { return len(e.adapters) }

// CreateFont computes the signature for (desc, engine transform, engine
// antialias), deactivates the current adapter, and either reuses a pooled
// adapter with a matching signature or constructs a new one — evicting the
// oldest (index 0) adapter first if the pool is full. Returns false
// (font-creation-failed) if the backend rejects construction on a miss; the
// prior current adapter remains deactivated, no adapter is current, and an
// adapter evicted from a full pool to make room stays evicted.
func (e *Engine) CreateFont(desc FontDescriptor) bool {
	sig := Signature(desc, e.transform, e.antialias)

	if e.current != nil {
		e.current.Deactivate()
	}

	if idx := e.find(sig); idx >= 0 {
		e.current = e.adapters[idx]
	} else {
		if len(e.adapters) >= e.maxFonts {
			e.adapters[0].destroy()
			copy(e.adapters, e.adapters[1:])
			e.adapters = e.adapters[:len(e.adapters)-1]
		}

		adapter := newAdapter(e.backend, desc, sig, e.transform, e.antialias)
		if adapter == nil {
			e.current = nil
			return false
		}
		e.adapters = append(e.adapters, adapter)
		e.current = adapter
	}

	e.current.Activate()
	e.stampChange = false
	return true
}

func (e *Engine) find(signature string) int {
	for i, a := range e.adapters {
		if a.signature == signature {
			return i
		}
	}
	return -1
}

// Shutdown destroys every pooled adapter and releases the backend.
func (e *Engine) Shutdown() {
	for _, a := range e.adapters {
		a.destroy()
	}
	e.adapters = e.adapters[:0]
	e.current = nil
	e.backend.Shutdown()
}
