package thermostat

import (
	"fmt"

	"github.com/nerrad567/thermoparam/internal/infrastructure/config"
	"github.com/nerrad567/thermoparam/internal/infrastructure/logging"
	"github.com/nerrad567/thermoparam/internal/parameter"
)

// Device is a thermostat controller holding named parameters.
type Device struct {
	name   string
	params []*parameter.Parameter
	byName map[string]*parameter.Parameter
	logger *logging.Logger
}

// NewDevice creates an empty Device. A nil logger discards all entries.
func NewDevice(name string, logger *logging.Logger) *Device {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Device{
		name:   name,
		byName: make(map[string]*parameter.Parameter),
		logger: logger.With("device", name),
	}
}

// FromConfig builds a Device from its configuration, adding parameters in
// file order.
//
// Parameters:
//   - cfg: Device section of config.yaml
//   - logger: Logger for the device (nil discards)
//
// Returns:
//   - *Device: Device with every configured parameter
//   - error: First parameter that could not be created
func FromConfig(cfg config.DeviceConfig, logger *logging.Logger) (*Device, error) {
	dev := NewDevice(cfg.Name, logger)
	for _, pc := range cfg.Parameters {
		if err := dev.Add(pc.Name, pc.Value.Raw); err != nil {
			return nil, err
		}
	}
	return dev, nil
}

// Name returns the device name.
func (d *Device) Name() string { return d.name }

// Add creates a parameter and appends it to the device.
//
// Returns:
//   - error: ErrDuplicateParameter if name is taken, or any error from
//     parameter.New (ErrInvalidName, ErrUnsupportedValueKind)
func (d *Device) Add(name string, raw any) error {
	if _, exists := d.byName[name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateParameter, name)
	}

	p, err := parameter.New(name, raw)
	if err != nil {
		return err
	}

	d.params = append(d.params, p)
	d.byName[name] = p

	d.logger.Debug("parameter added", "parameter", name, "kind", p.Value().Kind().String())
	return nil
}

// Parameter returns the parameter with the given name.
func (d *Device) Parameter(name string) (*parameter.Parameter, error) {
	p, ok := d.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrParameterNotFound, name)
	}
	return p, nil
}

// Parameters returns the device's parameters in the order they were added.
func (d *Device) Parameters() []*parameter.Parameter {
	cpy := make([]*parameter.Parameter, len(d.params))
	copy(cpy, d.params)
	return cpy
}

// Render renders every parameter to display in order, stopping at the
// first failure.
func (d *Device) Render(display parameter.Display) error {
	for _, p := range d.params {
		if err := p.Render(display); err != nil {
			d.logger.Error("render failed", "parameter", p.Name(), "error", err)
			return fmt.Errorf("rendering %s/%s: %w", d.name, p.Name(), err)
		}
		d.logger.Debug("parameter rendered", "parameter", p.Name())
	}
	return nil
}

// RenderAll renders the device to each display in turn, stopping at the
// first failure.
func (d *Device) RenderAll(displays ...parameter.Display) error {
	for i, display := range displays {
		if err := d.Render(display); err != nil {
			return fmt.Errorf("display %d: %w", i, err)
		}
	}
	return nil
}
