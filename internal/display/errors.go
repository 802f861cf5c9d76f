package display

import (
	"errors"
	"fmt"

	"github.com/nerrad567/thermoparam/internal/parameter"
)

// Domain errors for the display package.
var (
	// ErrUnknownDisplayType is returned when a config names a display type
	// this package cannot build.
	ErrUnknownDisplayType = errors.New("display: unknown display type")

	// ErrDelimiterOutOfRange is returned when a delimiter point position is
	// negative or beyond the widest supported indicator.
	ErrDelimiterOutOfRange = errors.New("display: delimiter point out of range")
)

// errNilDisplay is returned by methods called on a nil display pointer.
func errNilDisplay(capability parameter.Capability) error {
	return fmt.Errorf("%w: %s on nil display", parameter.ErrUnsupportedDisplayCapability, capability)
}
