// Package psfont implements the font-and-text core of a 2D vector graphics
// library: a bounded pool of font adapters keyed by a signature over
// (descriptor, transform, antialias), per-adapter glyph caching, and a text
// run algorithm that lays out code units with optional kerning and feeds
// either rasterized coverage or a vector outline path to a renderer.
//
// The platform-specific font backend (face loading, hinting, rasterizing)
// and the final renderer are external collaborators, consumed only through
// the FontBackend and Renderer interfaces.
package psfont
