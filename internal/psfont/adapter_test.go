package psfont

import (
	"testing"

	"agg_go/internal/transform"
)

func TestAdapterGetGlyphCachesResult(t *testing.T) {
	backend := newFakeBackend()
	desc := NewFontDescriptor("test")
	sig := Signature(desc, *transform.NewTransAffine(), true)
	a := newAdapter(backend, desc, sig, *transform.NewTransAffine(), true)
	if a == nil {
		t.Fatal("newAdapter returned nil")
	}

	g1 := a.GetGlyph('A')
	if g1 == nil {
		t.Fatal("expected glyph 'A' to resolve")
	}
	g2 := a.GetGlyph('A')
	if g1 != g2 {
		t.Fatal("expected the second GetGlyph to return the cached record")
	}
}

func TestAdapterGetGlyphUnavailable(t *testing.T) {
	backend := newFakeBackend()
	desc := NewFontDescriptor("test")
	a := newAdapter(backend, desc, "sig", *transform.NewTransAffine(), true)

	if g := a.GetGlyph('Z'); g != nil {
		t.Fatalf("expected nil for unavailable glyph, got %+v", g)
	}
}

func TestAdapterNewAdapterNilOnBackendRejection(t *testing.T) {
	backend := newFakeBackend()
	backend.rejectNames["bad"] = true
	desc := NewFontDescriptor("bad")

	if a := newAdapter(backend, desc, "sig", *transform.NewTransAffine(), true); a != nil {
		t.Fatal("expected nil adapter when the backend rejects CreateInstance")
	}
}

func TestAdapterKerningGatedByHistory(t *testing.T) {
	backend := newFakeBackend()
	backend.kern = true
	desc := NewFontDescriptor("test")
	a := newAdapter(backend, desc, "sig", *transform.NewTransAffine(), true)

	x, y := 100.0, 0.0
	a.AddKerning(&x, &y) // no history yet: no-op
	if x != 100 {
		t.Fatalf("expected no kerning before any glyph fetched, got x=%v", x)
	}

	a.GetGlyph('A')
	a.AddKerning(&x, &y) // only one glyph fetched: still no-op
	if x != 100 {
		t.Fatalf("expected no kerning after only one glyph, got x=%v", x)
	}

	a.GetGlyph('B')
	a.AddKerning(&x, &y) // two distinct glyphs: kerning applies
	if x != 99 {
		t.Fatalf("expected kerning adjustment of -1, got x=%v", x)
	}
}

func TestAdapterActivateClearsKerningHistory(t *testing.T) {
	backend := newFakeBackend()
	backend.kern = true
	desc := NewFontDescriptor("test")
	a := newAdapter(backend, desc, "sig", *transform.NewTransAffine(), true)

	a.GetGlyph('A')
	a.GetGlyph('B')
	a.Activate()

	x, y := 100.0, 0.0
	a.AddKerning(&x, &y)
	if x != 100 {
		t.Fatalf("expected Activate to clear kerning history, got x=%v", x)
	}
}

func TestAdapterGenerateRasterMono(t *testing.T) {
	backend := newFakeBackend()
	desc := NewFontDescriptor("test")
	a := newAdapter(backend, desc, "sig", *transform.NewTransAffine(), true)

	g := a.GetGlyph('A')
	if !a.GenerateRaster(g, 5, 5) {
		t.Fatal("expected GenerateRaster to succeed for a mono glyph")
	}
}

func TestAdapterGenerateRasterNilRecord(t *testing.T) {
	backend := newFakeBackend()
	desc := NewFontDescriptor("test")
	a := newAdapter(backend, desc, "sig", *transform.NewTransAffine(), true)

	if a.GenerateRaster(nil, 0, 0) {
		t.Fatal("expected GenerateRaster to fail for a nil record")
	}
}

func TestAdapterHeightIsAscentMinusDescent(t *testing.T) {
	backend := newFakeBackend()
	desc := NewFontDescriptor("test")
	a := newAdapter(backend, desc, "sig", *transform.NewTransAffine(), true)

	if a.Height() != a.Ascent()-a.Descent() {
		t.Fatalf("Height() = %v, want Ascent()-Descent() = %v", a.Height(), a.Ascent()-a.Descent())
	}
}
