// Package agg is the public surface of the font-and-text subsystem: a
// Context binds one font descriptor, transform, and antialias setting to a
// pooled internal/psfont.Service and exposes the text-drawing entry points
// layered on top of it.
package agg

import (
	"agg_go/internal/psfont"
	"agg_go/internal/transform"
)

// Context is a single drawing context's font-and-text state: the active
// font descriptor, the text transform, antialiasing and kerning settings,
// and the psfont.Service backing them. Per spec §5, a Context is not safe
// for concurrent use — all operations on it happen in issue order on one
// thread.
type Context struct {
	svc *psfont.Service

	desc      psfont.FontDescriptor
	transform transform.TransAffine
	antialias bool

	savedTransforms []transform.TransAffine
}

// NewContext creates a drawing context over the given font backend and
// renderer, bounding the number of concurrently pooled font adapters to
// maxFonts (psfont.DefaultMaxFonts if <= 0). The backend's process-wide
// state is acquired immediately (spec §5's platform_font_init); call
// Close to release it.
func NewContext(backend psfont.FontBackend, renderer psfont.Renderer, maxFonts int) (*Context, error) {
	svc, err := psfont.NewService(backend, renderer, maxFonts)
	if err != nil {
		return nil, err
	}
	return &Context{
		svc:       svc,
		desc:      psfont.NewFontDescriptor(""),
		transform: *transform.NewTransAffine(),
		antialias: true,
	}, nil
}

// Close releases the context's font engine and backend.
func (ctx *Context) Close() { ctx.svc.Shutdown() }

// SetAntialias toggles antialiasing for subsequent text operations.
func (ctx *Context) SetAntialias(b bool) { ctx.antialias = b }

// SetKerning enables or disables kerning for subsequent text operations.
func (ctx *Context) SetKerning(enabled bool) { ctx.svc.SetKerning(enabled) }

// Translate, Scale and Rotate compose onto the context's text transform.
func (ctx *Context) Translate(dx, dy float64) { ctx.transform.Translate(dx, dy) }
func (ctx *Context) Scale(sx, sy float64)     { ctx.transform.Multiply(transform.NewTransAffineScalingXY(sx, sy)) }
func (ctx *Context) Rotate(angle float64)     { ctx.transform.Rotate(angle) }
func (ctx *Context) Skew(sx, sy float64)      { ctx.transform.Multiply(transform.NewTransAffineSkewing(sx, sy)) }

// ResetTransform restores the identity transform.
func (ctx *Context) ResetTransform() { ctx.transform = *transform.NewTransAffine() }

// PushTransform saves the current text transform; PopTransform restores the
// most recently saved one. Used to bracket a temporary transform change
// (e.g. SetTextRotation/ResetTextRotation) without disturbing the caller's
// own transform stack.
func (ctx *Context) PushTransform() {
	ctx.savedTransforms = append(ctx.savedTransforms, ctx.transform)
}

// PopTransform restores the transform saved by the most recent PushTransform.
// A no-op if nothing has been pushed.
func (ctx *Context) PopTransform() {
	n := len(ctx.savedTransforms)
	if n == 0 {
		return
	}
	ctx.transform = ctx.savedTransforms[n-1]
	ctx.savedTransforms = ctx.savedTransforms[:n-1]
}
