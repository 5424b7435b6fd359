package psfont

import (
	"errors"
	"testing"
)

func TestSentinelErrorsAreDistinct(t *testing.T) {
	all := []error{
		ErrDeviceNotReady, ErrInvalidArgument, ErrOutOfMemory,
		ErrGlyphNotAvailable, ErrFontCreationFailed, ErrUnknown,
	}
	for i, a := range all {
		for j, b := range all {
			if i != j && errors.Is(a, b) {
				t.Fatalf("expected sentinel errors %d and %d to be distinct", i, j)
			}
		}
	}
}
