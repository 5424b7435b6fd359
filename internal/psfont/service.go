package psfont

import "agg_go/internal/transform"

// Service is the public-API boundary of spec §6: the system-ready check,
// null/zero-length/weight-range/negative-size validation, and the mapping
// of core failures onto the error taxonomy of spec §7. The core itself
// (Engine, Adapter, Run) never returns these sentinels — it reports success
// or failure as booleans or nil, mirroring the original's separation between
// the core and its public C-style boundary (spec §9, "mutable boundary
// state → explicit result").
type Service struct {
	backend FontBackend
	engine  *Engine
	run     *Run
	ready   bool
}

// NewService acquires the backend's process-wide state (spec §5's
// platform_font_init) and constructs the engine and run over it. A nil
// backend or renderer, or a backend that fails to initialize, is rejected
// before any core object is built.
func NewService(backend FontBackend, renderer Renderer, maxFonts int) (*Service, error) {
	if backend == nil || renderer == nil {
		return nil, ErrInvalidArgument
	}
	if !backend.Init() {
		return nil, ErrDeviceNotReady
	}
	engine := NewEngine(backend, maxFonts)
	return &Service{
		backend: backend,
		engine:  engine,
		run:     NewRun(engine, renderer),
		ready:   true,
	}, nil
}

// Shutdown releases every pooled adapter and the backend's process-wide
// state. After Shutdown every other Service method returns
// ErrDeviceNotReady, matching spec §5's single platform_font_shutdown call.
func (s *Service) Shutdown() {
	if s == nil || !s.ready {
		return
	}
	s.engine.Shutdown()
	s.ready = false
}

// SetKerning enables or disables kerning for subsequent runs.
func (s *Service) SetKerning(enabled bool) {
	if s != nil {
		s.run.Kerning = enabled
	}
}

func (s *Service) checkReady() error {
	if s == nil || !s.ready {
		return ErrDeviceNotReady
	}
	return nil
}

// validateDescriptor enforces the boundary checks spec §6 names explicitly:
// null (here, empty) name, negative size, and out-of-[100,900] weight.
func validateDescriptor(desc FontDescriptor) error {
	if desc.Name() == "" {
		return ErrInvalidArgument
	}
	if desc.Height() < 0 {
		return ErrInvalidArgument
	}
	if desc.Weight() < 100 || desc.Weight() > 900 {
		return ErrInvalidArgument
	}
	return nil
}

// validateText enforces the null/zero-length input check of spec §6.
func validateText(text []byte) error {
	if len(text) == 0 {
		return ErrInvalidArgument
	}
	return nil
}

// ensureFont is the boundary's own font-creation step, translating a nil
// adapter into font-creation-failed (spec §7): backend.CreateInstance
// rejected the request, create_font returns false, and text operations
// become no-ops; the prior current adapter stays deactivated and the engine
// has no current font.
func (s *Service) ensureFont(desc FontDescriptor, t transform.TransAffine, antialias bool) (*Adapter, error) {
	adapter := s.run.ensureFont(desc, t, antialias)
	if adapter == nil {
		return nil, ErrFontCreationFailed
	}
	return adapter, nil
}

// DrawAt validates its inputs and draws text at a point, matching the
// original ps_text_out_length entry point (Run.DrawAt).
func (s *Service) DrawAt(desc FontDescriptor, t transform.TransAffine, antialias bool, text []byte, x, y float64) error {
	if err := s.checkReady(); err != nil {
		return err
	}
	if err := validateDescriptor(desc); err != nil {
		return err
	}
	if err := validateText(text); err != nil {
		return err
	}
	if _, err := s.ensureFont(desc, t, antialias); err != nil {
		return err
	}
	if !s.run.DrawAt(desc, t, antialias, text, x, y) {
		return ErrFontCreationFailed
	}
	return nil
}

// DrawGlyphs validates and draws a pre-resolved slice of glyph records,
// matching the original ps_show_glyphs entry point. A nil adapter is an
// invalid argument: unlike DrawAt, no descriptor is given to construct one
// from.
func (s *Service) DrawGlyphs(adapter *Adapter, glyphs []*GlyphRecord, x, y float64) error {
	if err := s.checkReady(); err != nil {
		return err
	}
	if adapter == nil || len(glyphs) == 0 {
		return ErrInvalidArgument
	}
	s.run.DrawGlyphs(adapter, glyphs, x, y)
	return nil
}

// Extent returns the exact run width and font height, matching the
// original ps_get_text_extent entry point.
func (s *Service) Extent(desc FontDescriptor, t transform.TransAffine, antialias bool, text []byte) (width, height float64, err error) {
	if err = s.checkReady(); err != nil {
		return 0, 0, err
	}
	if err = validateDescriptor(desc); err != nil {
		return 0, 0, err
	}
	if err = validateText(text); err != nil {
		return 0, 0, err
	}
	w, h, ok := s.run.Extent(desc, t, antialias, text)
	if !ok {
		return 0, 0, ErrFontCreationFailed
	}
	return w, h, nil
}

// DrawInArea validates and lays text out inside area, matching the
// original ps_draw_text entry point. Once the font itself is confirmed
// live, a false return from the run means the text decoded to zero usable
// code units (e.g. a one-byte wide-charset input) rather than a font
// failure — spec §7's unknown-error, since no more specific cause applies.
func (s *Service) DrawInArea(
	desc FontDescriptor, t transform.TransAffine, antialias bool,
	area Area, text []byte, typ DrawTextType, halign HAlign, valign VAlign,
) error {
	if err := s.checkReady(); err != nil {
		return err
	}
	if err := validateDescriptor(desc); err != nil {
		return err
	}
	if err := validateText(text); err != nil {
		return err
	}
	if _, err := s.ensureFont(desc, t, true); err != nil {
		return err
	}
	if !s.run.DrawInArea(desc, t, antialias, area, text, typ, halign, valign) {
		return ErrUnknown
	}
	return nil
}

// FontMetrics reports the whole-font measurements of spec §4.3's metrics
// queries: ascent, descent, leading, units-per-em, and the derived height
// (ascent - descent) used by rect-area layout.
type FontMetrics struct {
	Ascent     float64
	Descent    float64
	Leading    float64
	Height     float64
	UnitsPerEm int
}

// Metrics activates the font named by desc and reports its whole-font
// measurements, without requiring any text (unlike Extent, which needs a
// run to measure).
func (s *Service) Metrics(desc FontDescriptor, t transform.TransAffine, antialias bool) (FontMetrics, error) {
	if err := s.checkReady(); err != nil {
		return FontMetrics{}, err
	}
	if err := validateDescriptor(desc); err != nil {
		return FontMetrics{}, err
	}
	adapter, err := s.ensureFont(desc, t, antialias)
	if err != nil {
		return FontMetrics{}, err
	}
	return FontMetrics{
		Ascent:     adapter.Ascent(),
		Descent:    adapter.Descent(),
		Leading:    adapter.Leading(),
		Height:     adapter.Height(),
		UnitsPerEm: adapter.UnitsPerEm(),
	}, nil
}

// Glyph resolves a single code against the font named by desc, distinguishing
// why a glyph could not be produced: ErrGlyphNotAvailable when the backend
// itself rejected the code, ErrOutOfMemory when the cache could not
// allocate storage for it.
func (s *Service) Glyph(desc FontDescriptor, t transform.TransAffine, antialias bool, code uint32) (*GlyphRecord, error) {
	if err := s.checkReady(); err != nil {
		return nil, err
	}
	if err := validateDescriptor(desc); err != nil {
		return nil, err
	}
	adapter, err := s.ensureFont(desc, t, antialias)
	if err != nil {
		return nil, err
	}
	return adapter.GetGlyphErr(code)
}
