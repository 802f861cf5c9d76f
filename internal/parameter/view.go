package parameter

import (
	"fmt"
	"strings"
)

// Rendered text prefixes and the Select option separator.
const (
	intViewPrefix    = "IntView vprint "
	floatViewPrefix  = "FloatView vprint "
	selectViewPrefix = "SelectView vprint "

	// OptionSeparator joins Select options in rendered text.
	OptionSeparator = "--"
)

// View formats a held value into exactly one Display call.
//
// Views keep their own copy of the value and hold no display reference;
// the display is passed on every call.
type View interface {
	Render(display Display) error
}

// Compile-time interface checks.
var (
	_ View = (*IntegerView)(nil)
	_ View = (*FloatView)(nil)
	_ View = (*SelectView)(nil)
)

// IntegerView renders whole numbers through Display.PrintInt.
type IntegerView struct {
	text string
}

// NewIntegerView creates a view for an integer value.
func NewIntegerView(raw any) *IntegerView {
	return &IntegerView{text: formatInteger(raw)}
}

// Render calls display.PrintInt("IntView vprint <value>").
func (v *IntegerView) Render(display Display) error {
	if err := checkCapability(display, CapPrintInt); err != nil {
		return err
	}
	if err := display.PrintInt(intViewPrefix + v.text); err != nil {
		return fmt.Errorf("printing integer: %w", err)
	}
	return nil
}

// FloatView renders decimal numbers through Display.PrintFloat.
type FloatView struct {
	value float64
}

// NewFloatView creates a view for a float value.
func NewFloatView(raw any) *FloatView {
	return &FloatView{value: toFloat64(raw)}
}

// Render calls display.PrintFloat("FloatView vprint <value>").
func (v *FloatView) Render(display Display) error {
	if err := checkCapability(display, CapPrintFloat); err != nil {
		return err
	}
	if err := display.PrintFloat(floatViewPrefix + formatFloat(v.value)); err != nil {
		return fmt.Errorf("printing float: %w", err)
	}
	return nil
}

// SelectView renders an option set through Display.PrintString.
type SelectView struct {
	options Options
}

// NewSelectView creates a view over its own copy of the options.
func NewSelectView(raw any) *SelectView {
	return &SelectView{options: toOptions(raw)}
}

// Render calls display.PrintString with the options joined by "--".
func (v *SelectView) Render(display Display) error {
	if err := checkCapability(display, CapPrintString); err != nil {
		return err
	}
	if err := display.PrintString(selectViewPrefix + strings.Join(v.options, OptionSeparator)); err != nil {
		return fmt.Errorf("printing options: %w", err)
	}
	return nil
}
