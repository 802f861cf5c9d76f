// Package parameter models a single configurable parameter of a thermostat
// controller and the pipeline that turns its raw value into display calls.
//
// A parameter value is one of three kinds:
//
//   - Integer: any Go integer type (alarm thresholds, hysteresis steps)
//   - Float: float32 or float64 (setpoints, correction factors)
//   - Select: a fixed ordered set of options (operating modes)
//
// # Architecture
//
//	raw value ──▶ Classify ──▶ NewValue ──▶ TypeValue ──▶ Render(display)
//	                              │
//	                              ├── ValueHolder (immutable storage)
//	                              └── View        (formats into a Display call)
//
// The factory in value.go is the only place that pairs a holder with a
// view, so a TypeValue always renders through the view matching its kind.
//
// # Usage
//
//	p, err := parameter.New("AL1", 140)
//	if err != nil {
//	    return err
//	}
//	if err := p.Value().Render(display); err != nil {
//	    return err
//	}
//	// display.PrintInt("IntView vprint 140")
//
// # Displays
//
// Views talk to the Display interface. The numeric print methods receive
// pre-formatted text rather than numbers; rendering granularity is decided
// by the display implementation (see internal/display).
//
// # Thread Safety
//
// Parameters, values and views are immutable after construction and may be
// shared freely. Rendering is synchronous and touches only the display.
package parameter
