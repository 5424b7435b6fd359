package psfont

// Charset selects how code units in a text run are interpreted.
type Charset int

const (
	// CharsetANSI interprets text as a sequence of 8-bit bytes.
	CharsetANSI Charset = iota
	// CharsetWide interprets text as a sequence of 16-bit code units.
	CharsetWide
)

// MaxFontNameLength is the family-name length of the original
// implementation's fixed-size signature buffer. Descriptors do not enforce
// it: NewFontDescriptor and SetName store names of any length.
const MaxFontNameLength = 256

// FontDescriptor is a value type describing a font independent of any
// backend instance: family, charset, size, weight, style and hinting.
// Two descriptors compare field-wise; equal descriptors under the same
// transform and antialias setting must yield identical signatures.
type FontDescriptor struct {
	name    string
	charset Charset
	height  float64
	weight  int
	italic  bool
	hint    bool
	flipY   bool
}

// NewFontDescriptor creates a descriptor with the given family name and
// sensible defaults (ANSI charset, height 12, weight 400, hinting on).
func NewFontDescriptor(name string) FontDescriptor {
	return FontDescriptor{
		name:    name,
		charset: CharsetANSI,
		height:  12,
		weight:  400,
		hint:    true,
	}
}

func (d FontDescriptor) Name() string     { return d.name }
func (d FontDescriptor) Charset() Charset { return d.charset }
func (d FontDescriptor) Height() float64  { return d.height }
func (d FontDescriptor) Weight() int      { return d.weight }
func (d FontDescriptor) Italic() bool     { return d.italic }
func (d FontDescriptor) Hint() bool       { return d.hint }
func (d FontDescriptor) FlipY() bool      { return d.flipY }

func (d *FontDescriptor) SetName(name string) { d.name = name }
func (d *FontDescriptor) SetCharset(c Charset) { d.charset = c }
func (d *FontDescriptor) SetHeight(h float64) { d.height = h }

// SetWeight stores w unchecked and unclamped; Service rejects weights
// outside [100, 900] with ErrInvalidArgument (validateDescriptor in
// service.go).
func (d *FontDescriptor) SetWeight(w int) { d.weight = w }
func (d *FontDescriptor) SetItalic(v bool) { d.italic = v }
func (d *FontDescriptor) SetHint(v bool)   { d.hint = v }

// SetFlipY inverts its argument before storing it. This mirrors a FIXME in
// the original implementation ("this will change next time") whose intent
// is unclear; the inversion is preserved rather than guessed away.
func (d *FontDescriptor) SetFlipY(flip bool) { d.flipY = !flip }

// Equal reports whether two descriptors have identical fields.
func (d FontDescriptor) Equal(o FontDescriptor) bool {
	return d.name == o.name &&
		d.charset == o.charset &&
		d.height == o.height &&
		d.weight == o.weight &&
		d.italic == o.italic &&
		d.hint == o.hint &&
		d.flipY == o.flipY
}
