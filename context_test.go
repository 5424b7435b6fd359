package agg

import (
	"errors"
	"testing"

	"agg_go/internal/basics"
	"agg_go/internal/psfont"
	"agg_go/internal/transform"
)

// fakeBackend is a minimal in-memory psfont.FontBackend, mirroring
// internal/psfont's own test fake: five known "glyphs" ('A'..'E') with a
// fixed advance, rejecting any other code or any descriptor named "bad".
type fakeBackend struct{ instances int }

func (b *fakeBackend) Init() bool { return true }
func (b *fakeBackend) Shutdown()  {}

func (b *fakeBackend) CreateInstance(desc psfont.FontDescriptor, t transform.TransAffine, antialias bool) psfont.FontInstance {
	if desc.Name() == "bad" {
		return nil
	}
	b.instances++
	return &fakeInstance{}
}

type fakeInstance struct {
	prepared psfont.PreparedGlyph
}

func (f *fakeInstance) Destroy()    {}
func (f *fakeInstance) Activate()   {}
func (f *fakeInstance) Deactivate() {}

func (f *fakeInstance) PrepareGlyph(code uint32) bool {
	if code < 'A' || code > 'E' {
		return false
	}
	f.prepared = psfont.PreparedGlyph{
		Index:    code - 'A' + 1,
		DataSize: 4,
		Type:     psfont.GlyphTypeMono,
		Bounds:   basics.Rect[int]{X1: 0, Y1: 0, X2: 4, Y2: 6},
		Height:   10,
		AdvanceX: 6,
		AdvanceY: 0,
	}
	return true
}

func (f *fakeInstance) PreparedGlyph() psfont.PreparedGlyph { return f.prepared }
func (f *fakeInstance) WriteGlyphTo(dst []byte)             {}
func (f *fakeInstance) AddKerning(prevIndex, currIndex uint32, x, y *float64) bool { return false }

func (f *fakeInstance) Ascent() float64  { return 8 }
func (f *fakeInstance) Descent() float64 { return 2 }
func (f *fakeInstance) Leading() float64 { return 0 }
func (f *fakeInstance) UnitsPerEm() int  { return 1000 }

// fakeRenderer records what it was asked to render, for assertions.
type fakeRenderer struct {
	glyphs  int
	flushed bool
}

func (r *fakeRenderer) RenderGlyph(adapter *psfont.Adapter, glyphType psfont.GlyphType) { r.glyphs++ }
func (r *fakeRenderer) RenderGlyphsRaster()                                             { r.flushed = true }
func (r *fakeRenderer) RenderFill(v []psfont.PathVertex)                                {}
func (r *fakeRenderer) RenderStroke(v []psfont.PathVertex)                              {}
func (r *fakeRenderer) RenderPaint(v []psfont.PathVertex)                               {}
func (r *fakeRenderer) RenderShadow(v []psfont.PathVertex, fill, stroke bool)           {}
func (r *fakeRenderer) RenderBlur()                                                     {}

func newTestContext(t *testing.T) (*Context, *fakeRenderer) {
	t.Helper()
	renderer := &fakeRenderer{}
	ctx, err := NewContext(&fakeBackend{}, renderer, 4)
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}
	t.Cleanup(ctx.Close)
	return ctx, renderer
}

func TestNewContextRejectsNilBackend(t *testing.T) {
	if _, err := NewContext(nil, &fakeRenderer{}, 4); !errors.Is(err, psfont.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestContextDrawTextDrawsAndFlushes(t *testing.T) {
	ctx, renderer := newTestContext(t)
	ctx.Font("test", 12, false, false)

	if err := ctx.DrawText("ABC", 0, 0); err != nil {
		t.Fatalf("DrawText: %v", err)
	}
	if renderer.glyphs != 3 {
		t.Fatalf("expected 3 glyphs rendered, got %d", renderer.glyphs)
	}
	if !renderer.flushed {
		t.Fatal("expected the run to flush accumulated raster output")
	}
}

func TestContextDrawTextRejectsEmptyText(t *testing.T) {
	ctx, _ := newTestContext(t)
	ctx.Font("test", 12, false, false)

	if err := ctx.DrawText("", 0, 0); err == nil {
		t.Fatal("expected an error for empty text")
	}
}

func TestContextFontCreationFailureSurfaces(t *testing.T) {
	ctx, _ := newTestContext(t)
	ctx.Font("bad", 12, false, false)

	if err := ctx.DrawText("A", 0, 0); !errors.Is(err, psfont.ErrFontCreationFailed) {
		t.Fatalf("expected ErrFontCreationFailed, got %v", err)
	}
}

func TestContextMeasureTextMatchesAdvances(t *testing.T) {
	ctx, _ := newTestContext(t)
	ctx.Font("test", 12, false, false)

	width, height, err := ctx.MeasureText("AB")
	if err != nil {
		t.Fatalf("MeasureText: %v", err)
	}
	if width != 12 { // two glyphs, advance 6 each
		t.Fatalf("expected width 12, got %v", width)
	}
	if height != 6 { // ascent 8 - descent 2
		t.Fatalf("expected height 6, got %v", height)
	}
}

func TestContextFontHeightWithoutText(t *testing.T) {
	ctx, _ := newTestContext(t)
	ctx.Font("test", 12, false, false)

	height, err := ctx.FontHeight()
	if err != nil {
		t.Fatalf("FontHeight: %v", err)
	}
	if height != 6 {
		t.Fatalf("expected height 6, got %v", height)
	}
}

func TestContextPushPopTransformRestoresState(t *testing.T) {
	ctx, _ := newTestContext(t)
	ctx.Translate(10, 20)
	before := ctx.transform

	ctx.SetTextRotation(1.0)
	if ctx.transform == before {
		t.Fatal("expected SetTextRotation to change the transform")
	}
	ctx.ResetTextRotation()
	if ctx.transform != before {
		t.Fatal("expected ResetTextRotation to restore the prior transform")
	}
}

func TestContextDrawTextWrappedBreaksOnWidth(t *testing.T) {
	ctx, renderer := newTestContext(t)
	ctx.Font("test", 12, false, false)

	// Each word is 1 code unit wide (advance 6); a maxWidth of 10 forces a
	// break after every single word.
	if err := ctx.DrawTextWrapped("A B C", 0, 0, 10, 14); err != nil {
		t.Fatalf("DrawTextWrapped: %v", err)
	}
	if renderer.glyphs != 3 {
		t.Fatalf("expected 3 glyphs drawn across wrapped lines, got %d", renderer.glyphs)
	}
}
