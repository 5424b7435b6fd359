package psfont

import (
	"fmt"
	"strconv"

	"agg_go/internal/transform"
)

// fixedFrac is the number of fractional bits used to encode each affine
// component as a 32-bit signed fixed-point value in a signature. This
// matches the original implementation's fxmath::dbl_to_fixed convention.
const fixedFrac = 16

func dblToFixed(v float64) int32 {
	return int32(v * float64(int64(1)<<fixedFrac))
}

// Signature computes the canonical, deterministic byte string identifying
// the tuple (descriptor, transform, antialias). Two tuples that are equal
// field-for-field (affine components compared at 16-bit fixed-point
// precision) always produce the same signature; any two that differ in any
// field produce different signatures. See spec §6 for the exact format:
//
//	<name>,<charset>,<h>,<w>,<italic>,<hint>,<flipY>,<aa>-<SX><SY><SHX><SHY><TX><TY>
func Signature(desc FontDescriptor, t transform.TransAffine, antialias bool) string {
	head := fmt.Sprintf(
		"%s,%d,%g,%d,%d,%d,%d,%d-",
		desc.name,
		int(desc.charset),
		desc.height,
		desc.weight,
		boolToInt(desc.italic),
		boolToInt(desc.hint),
		boolToInt(desc.flipY),
		boolToInt(antialias),
	)

	return head + fmt.Sprintf(
		"%08X%08X%08X%08X%08X%08X",
		uint32(dblToFixed(t.SX)),
		uint32(dblToFixed(t.SY)),
		uint32(dblToFixed(t.SHX)),
		uint32(dblToFixed(t.SHY)),
		uint32(dblToFixed(t.TX)),
		uint32(dblToFixed(t.TY)),
	)
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// ParseFixedHex is exposed mainly for tests that want to verify the
// round-trip precision of the affine encoding.
func ParseFixedHex(hex string) (int32, error) {
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, err
	}
	return int32(v), nil
}
