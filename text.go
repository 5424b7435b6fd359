// Package agg provides text rendering functionality for 2D graphics.
// This file wires public text APIs to internal/psfont's font engine, text
// run and public-API boundary.
package agg

import (
	"errors"

	"agg_go/internal/psfont"
)

// TextAlignment selects how DrawTextAligned positions text relative to a
// single point, independent of internal/psfont's rect-area HAlign/VAlign.
type TextAlignment int

const (
	AlignLeft TextAlignment = iota
	AlignCenter
	AlignRight
)

// Re-exported rect-area alignment and draw-mode types, so callers of
// DrawTextInArea never need to import internal/psfont directly.
type (
	DrawTextType = psfont.DrawTextType
	HAlign       = psfont.HAlign
	VAlign       = psfont.VAlign
	TextArea     = psfont.Area
)

const (
	DrawTextFill   = psfont.DrawTextFill
	DrawTextStroke = psfont.DrawTextStroke
	DrawTextBoth   = psfont.DrawTextBoth

	AlignHCenter   = psfont.AlignHCenter
	AlignRectLeft  = psfont.AlignLeft
	AlignRectRight = psfont.AlignRight

	AlignVCenter = psfont.AlignVCenter
	AlignTop     = psfont.AlignTop
	AlignBottom  = psfont.AlignBottom
)

// Font selects the active font family, height and weight/style for
// subsequent text operations. bold maps onto the [100,900] weight scale
// (400 regular, 700 bold), matching the original's two-state bold flag.
func (ctx *Context) Font(fileName string, height float64, bold, italic bool) error {
	ctx.desc.SetName(fileName)
	ctx.desc.SetHeight(height)
	ctx.desc.SetItalic(italic)
	if bold {
		ctx.desc.SetWeight(700)
	} else {
		ctx.desc.SetWeight(400)
	}
	return nil
}

// LoadFont loads a font from a file with default settings.
func (ctx *Context) LoadFont(fontFile string) error {
	return ctx.Font(fontFile, 12.0, false, false)
}

// FontHeight returns the active font's ascent-minus-descent height, without
// drawing or measuring any text.
func (ctx *Context) FontHeight() (float64, error) {
	m, err := ctx.svc.Metrics(ctx.desc, ctx.transform, ctx.antialias)
	if err != nil {
		return 0, err
	}
	return m.Height, nil
}

// SetHinting enables or disables font hinting.
func (ctx *Context) SetHinting(hint bool) { ctx.desc.SetHint(hint) }

// GetHinting returns the current hinting state.
func (ctx *Context) GetHinting() bool { return ctx.desc.Hint() }

// FlipText sets the descriptor's flip-Y flag through SetFlipY, which stores
// the inverse of flip: FlipText(true) leaves the flag false (the default)
// and FlipText(false) sets it.
func (ctx *Context) FlipText(flip bool) { ctx.desc.SetFlipY(flip) }

// DrawText renders text at the specified position, baseline adjusted by
// the active font's ascent, matching the original ps_text_out_length entry
// point.
func (ctx *Context) DrawText(text string, x, y float64) error {
	if len(text) == 0 {
		return errors.New("text is empty")
	}
	return ctx.svc.DrawAt(ctx.desc, ctx.transform, ctx.antialias, []byte(text), x, y)
}

// DrawTextAligned renders text aligned relative to (x,y): AlignLeft leaves x
// untouched, AlignCenter and AlignRight shift it left by half or all of the
// measured text width.
func (ctx *Context) DrawTextAligned(text string, x, y float64, alignment TextAlignment) error {
	if len(text) == 0 {
		return errors.New("text is empty")
	}

	width, _, err := ctx.MeasureText(text)
	if err != nil {
		return err
	}
	ax := x
	switch alignment {
	case AlignCenter:
		ax = x - width/2
	case AlignRight:
		ax = x - width
	}
	return ctx.svc.DrawAt(ctx.desc, ctx.transform, ctx.antialias, []byte(text), ax, y)
}

// FillText renders filled text (DrawText always fills under the raster
// path; kept for parity with StrokeText).
func (ctx *Context) FillText(text string, x, y float64) error { return ctx.DrawText(text, x, y) }

// StrokeText renders text via the outline path in DrawTextStroke mode,
// using an area the measured width and height of the text whose bottom
// edge is at y.
func (ctx *Context) StrokeText(text string, x, y float64) error {
	if len(text) == 0 {
		return errors.New("text is empty")
	}
	w, h, err := ctx.MeasureText(text)
	if err != nil {
		return err
	}
	area := TextArea{X: x, Y: y - h, W: w, H: h}
	return ctx.svc.DrawInArea(ctx.desc, ctx.transform, ctx.antialias, area, []byte(text), DrawTextStroke, AlignRectLeft, AlignTop)
}

// MeasureText returns the exact advance width and font height of text under
// the active font, without drawing it.
func (ctx *Context) MeasureText(text string) (width, height float64, err error) {
	return ctx.svc.Extent(ctx.desc, ctx.transform, ctx.antialias, []byte(text))
}

// GetTextWidth returns the width of the text.
func (ctx *Context) GetTextWidth(text string) (float64, error) {
	w, _, err := ctx.MeasureText(text)
	return w, err
}

// GetTextHeight returns the nominal text height.
func (ctx *Context) GetTextHeight(text string) (float64, error) {
	_, h, err := ctx.MeasureText(text)
	return h, err
}

// GetTextBounds returns a simple bounds box for the text.
func (ctx *Context) GetTextBounds(text string) (x, y, width, height float64, err error) {
	w, h, err := ctx.MeasureText(text)
	if err != nil {
		return 0, 0, 0, 0, err
	}
	return 0, 0, w, h, nil
}

// DrawTextInArea lays text out inside area with the given alignment and
// paint mode, matching the original ps_draw_text entry point.
func (ctx *Context) DrawTextInArea(area TextArea, text string, typ DrawTextType, halign HAlign, valign VAlign) error {
	return ctx.svc.DrawInArea(ctx.desc, ctx.transform, ctx.antialias, area, []byte(text), typ, halign, valign)
}

// DrawTextOnPath placeholder until path integration is implemented.
func (ctx *Context) DrawTextOnPath(text string, curved bool) error {
	if len(text) == 0 {
		return errors.New("text is empty")
	}
	return errors.New("text on path not yet implemented - requires path integration")
}

// SetTextRotation pushes the current transform and rotates subsequent text
// by angle radians. Use ResetTextRotation to restore.
func (ctx *Context) SetTextRotation(angle float64) { ctx.PushTransform(); ctx.Rotate(angle) }

// ResetTextRotation restores the transform saved by SetTextRotation.
func (ctx *Context) ResetTextRotation() { ctx.PopTransform() }

// SetBold and SetItalic adjust the active descriptor's weight and slant.
func (ctx *Context) SetBold(bold bool) {
	if bold {
		ctx.desc.SetWeight(700)
	} else {
		ctx.desc.SetWeight(400)
	}
}

func (ctx *Context) SetItalic(italic bool) { ctx.desc.SetItalic(italic) }

// SetUnderline is a no-op placeholder: the font engine has no underline
// primitive, and the original implementation never synthesized one either.
func (ctx *Context) SetUnderline(u bool) {}

// DrawTextCentered, DrawTextRight and DrawTextLeft are DrawTextAligned
// conveniences fixing the alignment.
func (ctx *Context) DrawTextCentered(text string, x, y float64) error {
	return ctx.DrawTextAligned(text, x, y, AlignCenter)
}

func (ctx *Context) DrawTextRight(text string, x, y float64) error {
	return ctx.DrawTextAligned(text, x, y, AlignRight)
}

func (ctx *Context) DrawTextLeft(text string, x, y float64) error {
	return ctx.DrawTextAligned(text, x, y, AlignLeft)
}

// DrawTextLines draws each of lines at x, starting at y and advancing by
// lineHeight per line.
func (ctx *Context) DrawTextLines(lines []string, x, y, lineHeight float64) error {
	if len(lines) == 0 {
		return errors.New("no lines provided")
	}
	cy := y
	for _, line := range lines {
		if err := ctx.DrawText(line, x, cy); err != nil {
			return err
		}
		cy += lineHeight
	}
	return nil
}

// DrawTextWrapped word-wraps text to maxWidth under the active font and
// draws the resulting lines starting at (x, y), advancing by lineHeight.
func (ctx *Context) DrawTextWrapped(text string, x, y, maxWidth, lineHeight float64) error {
	if len(text) == 0 {
		return errors.New("text is empty")
	}
	words := splitWords(text)
	lines, err := wrapWords(ctx, words, maxWidth)
	if err != nil {
		return err
	}
	return ctx.DrawTextLines(lines, x, y, lineHeight)
}

// splitWords splits text on space, newline and tab runs.
func splitWords(text string) []string {
	words := make([]string, 0)
	cur := ""
	for _, ch := range text {
		if ch == ' ' || ch == '\n' || ch == '\t' {
			if len(cur) > 0 {
				words = append(words, cur)
				cur = ""
			}
		} else {
			cur += string(ch)
		}
	}
	if len(cur) > 0 {
		words = append(words, cur)
	}
	return words
}

// wrapWords greedily packs words into lines no wider than maxWidth under
// the active font, measuring each candidate line exactly via GetTextWidth.
func wrapWords(ctx *Context, words []string, maxWidth float64) ([]string, error) {
	if len(words) == 0 {
		return []string{}, nil
	}
	lines := make([]string, 0)
	line := ""
	for _, w := range words {
		test := line
		if len(test) > 0 {
			test += " "
		}
		test += w
		width, err := ctx.GetTextWidth(test)
		if err != nil {
			return nil, err
		}
		if width <= maxWidth {
			line = test
		} else {
			if len(line) > 0 {
				lines = append(lines, line)
			}
			line = w
		}
	}
	if len(line) > 0 {
		lines = append(lines, line)
	}
	return lines, nil
}
