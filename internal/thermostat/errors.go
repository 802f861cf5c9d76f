package thermostat

import "errors"

// Domain errors for the thermostat package.
var (
	// ErrDuplicateParameter is returned when a parameter name is already
	// used on the device.
	ErrDuplicateParameter = errors.New("thermostat: duplicate parameter")

	// ErrParameterNotFound is returned when no parameter has the requested name.
	ErrParameterNotFound = errors.New("thermostat: parameter not found")
)
