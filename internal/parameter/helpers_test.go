package parameter

import "errors"

// call is a single recorded display invocation.
type call struct {
	method string
	value  string
}

// fakeDisplay records every print call. A non-nil caps restricts the
// capabilities it reports.
type fakeDisplay struct {
	calls []call
	caps  map[Capability]bool
	err   error
}

func (d *fakeDisplay) record(method, value string) error {
	d.calls = append(d.calls, call{method: method, value: value})
	return d.err
}

func (d *fakeDisplay) PrintFloat(value string) error  { return d.record("PrintFloat", value) }
func (d *fakeDisplay) PrintInt(value string) error    { return d.record("PrintInt", value) }
func (d *fakeDisplay) PrintString(value string) error { return d.record("PrintString", value) }

// limitedDisplay reports only the capabilities in caps.
type limitedDisplay struct {
	fakeDisplay
}

func (d *limitedDisplay) Supports(c Capability) bool { return d.caps[c] }

var errPanelOffline = errors.New("panel offline")
