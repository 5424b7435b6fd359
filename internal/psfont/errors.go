package psfont

import "errors"

// Sentinel errors implementing the error taxonomy of spec §7. The core
// itself (Engine, Adapter, Run) never panics or throws: internal failures
// return booleans or nil, and Service — this package's public-API
// boundary, mirroring the original's global_status — translates them into
// one of these.
var (
	// ErrDeviceNotReady means the process-wide backend is uninitialized.
	ErrDeviceNotReady = errors.New("psfont: device not ready")
	// ErrInvalidArgument means a null/zero-length/out-of-range input was
	// passed at the boundary.
	ErrInvalidArgument = errors.New("psfont: invalid argument")
	// ErrOutOfMemory means an internal buffer or instance allocation
	// failed.
	ErrOutOfMemory = errors.New("psfont: out of memory")
	// ErrGlyphNotAvailable means the backend could not prepare a glyph;
	// handled locally by skipping that code unit.
	ErrGlyphNotAvailable = errors.New("psfont: glyph not available")
	// ErrFontCreationFailed means the backend rejected CreateInstance;
	// CreateFont returns false and text operations become no-ops.
	ErrFontCreationFailed = errors.New("psfont: font creation failed")
	// ErrUnknown is returned when a text operation could not activate a
	// font and no more specific cause is identified.
	ErrUnknown = errors.New("psfont: unknown error")
)
