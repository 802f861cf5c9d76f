// Package display provides rendering targets for thermostat parameters.
//
// Every type here implements parameter.Display; the segment-capable ones
// also implement parameter.SegmentDisplay.
//
//   - Console: one line per value, for plain terminals and logs
//   - Chars: explodes each value into its characters
//   - Panel: framed, styled box emulating a front-panel indicator
//   - Recorder: keeps every call for inspection (tests, dry runs)
//
// Restrict narrows any display to a subset of print capabilities so that
// views fail with parameter.ErrUnsupportedDisplayCapability instead of
// printing, which models front panels that can only show some value kinds.
//
// New builds a display from a config.DisplayConfig.
package display
