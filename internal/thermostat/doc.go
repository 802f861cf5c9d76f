// Package thermostat groups named parameters into a thermostat controller
// and renders them to displays.
//
// A Device keeps its parameters in declaration order, the order a front
// panel menu would list them:
//
//	dev := thermostat.NewDevice("TRM-1", log)
//	_ = dev.Add("AL1", 140)
//	_ = dev.Add("AS", 0.25)
//	_ = dev.Add("MODE", parameter.Options{"heat", "cool", "auto"})
//
//	if err := dev.RenderAll(console, panel); err != nil {
//	    return err
//	}
//
// Devices are built once and then only read; they are not safe for
// concurrent Add calls.
package thermostat
