package display

import (
	"fmt"
	"io"

	"github.com/nerrad567/thermoparam/internal/infrastructure/config"
	"github.com/nerrad567/thermoparam/internal/parameter"
)

// New builds the display described by cfg, writing to w.
//
// When cfg lists capabilities the display is wrapped with Restrict.
//
// Parameters:
//   - cfg: Display configuration (type, capabilities, panel settings)
//   - w: Output destination
//
// Returns:
//   - parameter.Display: The display
//   - error: ErrUnknownDisplayType for an unrecognised cfg.Type
func New(cfg config.DisplayConfig, w io.Writer) (parameter.Display, error) {
	var d parameter.Display
	switch cfg.Type {
	case config.DisplayTypeConsole:
		d = NewConsole(w)
	case config.DisplayTypeChars:
		d = NewChars(w)
	case config.DisplayTypePanel:
		d = NewPanel(w, cfg.Panel)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDisplayType, cfg.Type)
	}

	if len(cfg.Capabilities) == 0 {
		return d, nil
	}

	caps := make([]parameter.Capability, 0, len(cfg.Capabilities))
	for _, c := range cfg.Capabilities {
		caps = append(caps, parameter.Capability(c))
	}
	return Restrict(d, caps...), nil
}
