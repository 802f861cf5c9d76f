package display

import (
	"fmt"

	"github.com/nerrad567/thermoparam/internal/parameter"
)

var (
	_ parameter.SegmentDisplay     = (*Restricted)(nil)
	_ parameter.CapabilityReporter = (*Restricted)(nil)
)

// Restricted forwards to another display but reports only a subset of
// capabilities.
type Restricted struct {
	inner parameter.Display
	caps  map[parameter.Capability]bool
}

// Restrict wraps d so that it supports only caps.
//
// The delimiter point capability is reported only when d is a
// parameter.SegmentDisplay.
func Restrict(d parameter.Display, caps ...parameter.Capability) *Restricted {
	r := &Restricted{
		inner: d,
		caps:  make(map[parameter.Capability]bool, len(caps)),
	}
	for _, c := range caps {
		r.caps[c] = true
	}
	return r
}

// Supports implements parameter.CapabilityReporter.
func (r *Restricted) Supports(capability parameter.Capability) bool {
	if r == nil || r.inner == nil {
		return false
	}
	if !r.caps[capability] {
		return false
	}
	if inner, ok := r.inner.(parameter.CapabilityReporter); ok && !inner.Supports(capability) {
		return false
	}
	if capability == parameter.CapPrintDelimiterPoint {
		_, ok := r.inner.(parameter.SegmentDisplay)
		return ok
	}
	return true
}

// PrintFloat forwards to the wrapped display.
func (r *Restricted) PrintFloat(value string) error {
	if err := r.require(parameter.CapPrintFloat); err != nil {
		return err
	}
	return r.inner.PrintFloat(value)
}

// PrintInt forwards to the wrapped display.
func (r *Restricted) PrintInt(value string) error {
	if err := r.require(parameter.CapPrintInt); err != nil {
		return err
	}
	return r.inner.PrintInt(value)
}

// PrintString forwards to the wrapped display.
func (r *Restricted) PrintString(value string) error {
	if err := r.require(parameter.CapPrintString); err != nil {
		return err
	}
	return r.inner.PrintString(value)
}

// PrintDelimiterPoint forwards to the wrapped segment display.
func (r *Restricted) PrintDelimiterPoint(position int) error {
	if err := r.require(parameter.CapPrintDelimiterPoint); err != nil {
		return err
	}
	return r.inner.(parameter.SegmentDisplay).PrintDelimiterPoint(position)
}

func (r *Restricted) require(capability parameter.Capability) error {
	if !r.Supports(capability) {
		return fmt.Errorf("%w: %s", parameter.ErrUnsupportedDisplayCapability, capability)
	}
	return nil
}
