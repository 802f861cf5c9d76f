package parameter

import "fmt"

// Parameter is a named, immutable thermostat parameter.
type Parameter struct {
	name  string
	value TypeValue
}

// New creates a Parameter, building its value eagerly.
//
// Parameters:
//   - name: Parameter name as shown on the device (e.g. "AL1")
//   - raw: Integer, float, Options or []string value
//
// Returns:
//   - *Parameter: The new parameter
//   - error: ErrInvalidName for an empty name, ErrUnsupportedValueKind for
//     an unrecognised raw value
func New(name string, raw any) (*Parameter, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: name is empty", ErrInvalidName)
	}

	value, err := NewValue(raw)
	if err != nil {
		return nil, fmt.Errorf("parameter %q: %w", name, err)
	}

	return &Parameter{name: name, value: value}, nil
}

// Name returns the parameter name.
func (p *Parameter) Name() string { return p.name }

// Value returns the parameter's value. The same instance is returned on
// every call.
func (p *Parameter) Value() TypeValue { return p.value }

// Render renders the parameter's value to display.
func (p *Parameter) Render(display Display) error {
	return p.value.Render(display)
}
