package psfont

import (
	"agg_go/internal/basics"
	"agg_go/internal/transform"
)

// fakeBackend is a minimal in-memory FontBackend for testing the engine and
// adapter without depending on a real rasterizer. Each instance knows five
// "glyphs" (codes 'A'..'E') with a fixed advance and reports kerning of -1
// between any two of them when kern is true.
type fakeBackend struct {
	rejectNames map[string]bool
	instances   int
	kern        bool
}

func newFakeBackend() *fakeBackend { return &fakeBackend{rejectNames: map[string]bool{}} }

func (b *fakeBackend) Init() bool { return true }
func (b *fakeBackend) Shutdown()  {}

func (b *fakeBackend) CreateInstance(desc FontDescriptor, t transform.TransAffine, antialias bool) FontInstance {
	if b.rejectNames[desc.Name()] {
		return nil
	}
	b.instances++
	return &fakeInstance{backend: b, destroyed: new(bool)}
}

type fakeInstance struct {
	backend   *fakeBackend
	destroyed *bool
	prepared  PreparedGlyph
}

func (f *fakeInstance) Destroy()    { *f.destroyed = true }
func (f *fakeInstance) Activate()   {}
func (f *fakeInstance) Deactivate() {}

func (f *fakeInstance) PrepareGlyph(code uint32) bool {
	if code < 'A' || code > 'E' {
		return false
	}
	f.prepared = PreparedGlyph{
		Index:    code - 'A' + 1,
		DataSize: 4,
		Type:     GlyphTypeMono,
		Bounds:   basics.Rect[int]{X1: 0, Y1: 0, X2: 4, Y2: 6},
		Height:   10,
		AdvanceX: 6,
		AdvanceY: 0,
	}
	return true
}

func (f *fakeInstance) PreparedGlyph() PreparedGlyph { return f.prepared }

func (f *fakeInstance) WriteGlyphTo(dst []byte) {
	for i := range dst {
		dst[i] = byte(i)
	}
}

func (f *fakeInstance) AddKerning(prevIndex, currIndex uint32, x, y *float64) bool {
	if !f.backend.kern {
		return false
	}
	*x -= 1
	return true
}

func (f *fakeInstance) Ascent() float64  { return 8 }
func (f *fakeInstance) Descent() float64 { return 2 }
func (f *fakeInstance) Leading() float64 { return 0 }
func (f *fakeInstance) UnitsPerEm() int  { return 1000 }
