package backend

import (
	"os"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"agg_go/internal/basics"
	"agg_go/internal/psfont"
	"agg_go/internal/transform"
)

// SfntBackend loads TrueType/OpenType files via golang.org/x/image/font/sfnt
// and produces outline glyph blobs. This is the backend a real desktop
// renderer would plug in; the embedded bitmap backend above covers the
// dependency-free default case. Grounded on the same sfnt.Font call
// sequence gioui.org/text/shape uses: GlyphIndex → LoadGlyph/GlyphAdvance/
// Kern/Metrics, all driven through a shared sfnt.Buffer.
type SfntBackend struct {
	// FileResolver maps a descriptor's family name to a font file path.
	// Defaults to treating the name itself as a path.
	FileResolver func(name string) string
}

// NewSfntBackend creates a backend that resolves family names as file
// paths directly.
func NewSfntBackend() *SfntBackend {
	return &SfntBackend{FileResolver: func(name string) string { return name }}
}

func (b *SfntBackend) Init() bool { return true }
func (b *SfntBackend) Shutdown()  {}

func (b *SfntBackend) CreateInstance(desc psfont.FontDescriptor, t transform.TransAffine, antialias bool) psfont.FontInstance {
	path := desc.Name()
	if b.FileResolver != nil {
		path = b.FileResolver(desc.Name())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	f, err := sfnt.Parse(data)
	if err != nil {
		return nil
	}

	ppem := fixed.Int26_6(desc.Height() * 64)
	hinting := xfont.HintingNone
	if desc.Hint() {
		hinting = xfont.HintingFull
	}

	return &sfntInstance{
		font:    f,
		buf:     &sfnt.Buffer{},
		ppem:    ppem,
		hinting: hinting,
		flip:    desc.FlipY(),
	}
}

type sfntInstance struct {
	font    *sfnt.Font
	buf     *sfnt.Buffer
	ppem    fixed.Int26_6
	hinting xfont.Hinting
	flip    bool

	prepared psfont.PreparedGlyph
	blob     []byte
}

func (s *sfntInstance) Destroy()    {}
func (s *sfntInstance) Activate()   {}
func (s *sfntInstance) Deactivate() {}

// PrepareGlyph looks up the glyph index for code, loads its outline
// segments, and packs them into this package's count-prefixed outline blob
// layout (see psfont.decodeOutlineHeader / EncodeOutlineVertex).
func (s *sfntInstance) PrepareGlyph(code uint32) bool {
	gi, err := s.font.GlyphIndex(s.buf, rune(code))
	if err != nil || gi == 0 {
		return false
	}

	segs, err := s.font.LoadGlyph(s.buf, gi, s.ppem, nil)
	if err != nil {
		return false
	}

	adv, err := s.font.GlyphAdvance(s.buf, gi, s.ppem, s.hinting)
	if err != nil {
		return false
	}

	sign := 1.0
	if s.flip {
		sign = -1.0
	}

	var body []byte
	count := uint32(0)
	for _, seg := range segs {
		cmd, n := sfntSegmentCommand(seg.Op)
		body = psfont.EncodeOutlineVertex(body, cmd, fixedToFloat(seg.Args[0].X), sign*fixedToFloat(seg.Args[0].Y))
		count++
		for i := 1; i < n; i++ {
			body = psfont.EncodeOutlineVertex(body, basics.PathCmdLineTo, fixedToFloat(seg.Args[i].X), sign*fixedToFloat(seg.Args[i].Y))
			count++
		}
	}

	header := make([]byte, 0, 4+len(body))
	header = append(header, encodeUint32LE(count)...)
	header = append(header, body...)

	bounds, err := s.font.Bounds(s.buf, s.ppem, s.hinting)
	br := basics.Rect[int]{}
	if err == nil {
		br = basics.Rect[int]{
			X1: int(bounds.Min.X >> 6), Y1: int(bounds.Min.Y >> 6),
			X2: int(bounds.Max.X >> 6), Y2: int(bounds.Max.Y >> 6),
		}
	}

	s.blob = header
	s.prepared = psfont.PreparedGlyph{
		Index:    uint32(gi),
		DataSize: uint32(len(header)),
		Type:     psfont.GlyphTypeOutline,
		Bounds:   br,
		Height:   fixedToFloat(s.ppem),
		AdvanceX: fixedToFloat(adv),
		AdvanceY: 0,
	}
	return true
}

func (s *sfntInstance) PreparedGlyph() psfont.PreparedGlyph { return s.prepared }
func (s *sfntInstance) WriteGlyphTo(dst []byte)             { copy(dst, s.blob) }

func (s *sfntInstance) AddKerning(prevIndex, currIndex uint32, x, y *float64) bool {
	k, err := s.font.Kern(s.buf, sfnt.GlyphIndex(prevIndex), sfnt.GlyphIndex(currIndex), s.ppem, s.hinting)
	if err != nil || k == 0 {
		return false
	}
	*x += fixedToFloat(k)
	return true
}

func (s *sfntInstance) Ascent() float64 {
	m, err := s.font.Metrics(s.buf, s.ppem, s.hinting)
	if err != nil {
		return 0
	}
	return fixedToFloat(m.Ascent)
}

func (s *sfntInstance) Descent() float64 {
	m, err := s.font.Metrics(s.buf, s.ppem, s.hinting)
	if err != nil {
		return 0
	}
	return -fixedToFloat(m.Descent)
}

func (s *sfntInstance) Leading() float64 {
	m, err := s.font.Metrics(s.buf, s.ppem, s.hinting)
	if err != nil {
		return 0
	}
	return fixedToFloat(m.Height - m.Ascent - m.Descent)
}

func (s *sfntInstance) UnitsPerEm() int {
	u := s.font.UnitsPerEm()
	return int(u)
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}

func sfntSegmentCommand(op sfnt.SegmentOp) (cmd basics.PathCommand, pointCount int) {
	switch op {
	case sfnt.SegmentOpMoveTo:
		return basics.PathCmdMoveTo, 1
	case sfnt.SegmentOpLineTo:
		return basics.PathCmdLineTo, 1
	case sfnt.SegmentOpQuadTo:
		return basics.PathCmdCurve3, 2
	case sfnt.SegmentOpCubeTo:
		return basics.PathCmdCurve4, 3
	default:
		return basics.PathCmdLineTo, 1
	}
}

func encodeUint32LE(v uint32) []byte {
	return []byte{byte(v), byte(v >> 8), byte(v >> 16), byte(v >> 24)}
}
