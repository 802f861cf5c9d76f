package parameter

import "errors"

// Domain errors for the parameter package.
var (
	// ErrUnsupportedValueKind is returned when a raw value is not an integer,
	// a float, or an ordered set of options.
	ErrUnsupportedValueKind = errors.New("parameter: unsupported value kind")

	// ErrUnsupportedDisplayCapability is returned when a view needs a print
	// method the display does not provide.
	ErrUnsupportedDisplayCapability = errors.New("parameter: unsupported display capability")

	// ErrInvalidName is returned when a parameter is created without a name.
	ErrInvalidName = errors.New("parameter: invalid name")
)
