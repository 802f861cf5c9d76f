package display

import "github.com/nerrad567/thermoparam/internal/parameter"

var (
	_ parameter.SegmentDisplay     = (*Recorder)(nil)
	_ parameter.CapabilityReporter = (*Recorder)(nil)
)

// Recorded method names.
const (
	MethodPrintFloat          = "PrintFloat"
	MethodPrintInt            = "PrintInt"
	MethodPrintString         = "PrintString"
	MethodPrintDelimiterPoint = "PrintDelimiterPoint"
)

// Call is one recorded display invocation.
type Call struct {
	Method string
	Value  string

	// Position is set for PrintDelimiterPoint calls only.
	Position int
}

// Recorder keeps every call it receives.
//
// A nil *Recorder supports no capabilities, so views fail with
// parameter.ErrUnsupportedDisplayCapability before calling it.
type Recorder struct {
	calls []Call
	caps  map[parameter.Capability]bool
}

// NewRecorder creates a Recorder. With no capabilities given it supports
// all of them; otherwise only those listed.
func NewRecorder(caps ...parameter.Capability) *Recorder {
	r := &Recorder{}
	if len(caps) > 0 {
		r.caps = make(map[parameter.Capability]bool, len(caps))
		for _, c := range caps {
			r.caps[c] = true
		}
	}
	return r
}

// Supports implements parameter.CapabilityReporter.
func (r *Recorder) Supports(capability parameter.Capability) bool {
	if r == nil {
		return false
	}
	return r.caps == nil || r.caps[capability]
}

// PrintFloat records the call.
func (r *Recorder) PrintFloat(value string) error {
	if r == nil {
		return errNilDisplay(parameter.CapPrintFloat)
	}
	r.calls = append(r.calls, Call{Method: MethodPrintFloat, Value: value})
	return nil
}

// PrintInt records the call.
func (r *Recorder) PrintInt(value string) error {
	if r == nil {
		return errNilDisplay(parameter.CapPrintInt)
	}
	r.calls = append(r.calls, Call{Method: MethodPrintInt, Value: value})
	return nil
}

// PrintString records the call.
func (r *Recorder) PrintString(value string) error {
	if r == nil {
		return errNilDisplay(parameter.CapPrintString)
	}
	r.calls = append(r.calls, Call{Method: MethodPrintString, Value: value})
	return nil
}

// PrintDelimiterPoint records the call.
func (r *Recorder) PrintDelimiterPoint(position int) error {
	if r == nil {
		return errNilDisplay(parameter.CapPrintDelimiterPoint)
	}
	r.calls = append(r.calls, Call{Method: MethodPrintDelimiterPoint, Position: position})
	return nil
}

// Calls returns a copy of the recorded calls in order.
func (r *Recorder) Calls() []Call {
	cpy := make([]Call, len(r.calls))
	copy(cpy, r.calls)
	return cpy
}

// Reset forgets all recorded calls.
func (r *Recorder) Reset() {
	r.calls = nil
}
