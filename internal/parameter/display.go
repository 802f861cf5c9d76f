package parameter

import "fmt"

// Display is a rendering target for parameter views.
//
// Each method receives text already formatted by the view. The numeric
// methods take strings too: the view decides the wording, the display
// decides how to present it.
//
// A nil interface fails the capability check. Implementations backed by
// pointers should return ErrUnsupportedDisplayCapability from methods
// called on a nil receiver rather than dereferencing it.
type Display interface {
	PrintFloat(value string) error
	PrintInt(value string) error
	PrintString(value string) error
}

// SegmentDisplay is a Display driving 7-segment indicators with physical
// decimal point segments.
type SegmentDisplay interface {
	Display

	// PrintDelimiterPoint lights the decimal point at the given digit
	// position. Implementations without point segments may ignore it.
	PrintDelimiterPoint(position int) error
}

// Capability names a print method a view may call.
type Capability string

// Display capabilities.
const (
	CapPrintFloat          Capability = "print_float"
	CapPrintInt            Capability = "print_int"
	CapPrintString         Capability = "print_string"
	CapPrintDelimiterPoint Capability = "print_delimiter_point"
)

// CapabilityReporter is implemented by displays whose hardware supports
// only part of the Display interface. Views consult it before calling and
// fail with ErrUnsupportedDisplayCapability instead of printing.
type CapabilityReporter interface {
	Supports(capability Capability) bool
}

// checkCapability verifies that d can serve the given capability.
func checkCapability(d Display, capability Capability) error {
	if d == nil {
		return fmt.Errorf("%w: %s on nil display", ErrUnsupportedDisplayCapability, capability)
	}
	if r, ok := d.(CapabilityReporter); ok && !r.Supports(capability) {
		return fmt.Errorf("%w: %s", ErrUnsupportedDisplayCapability, capability)
	}
	return nil
}
