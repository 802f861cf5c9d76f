package display

import (
	"fmt"
	"io"

	"github.com/nerrad567/thermoparam/internal/parameter"
)

var _ parameter.SegmentDisplay = (*Console)(nil)

// Console writes each value on its own line.
//
// Methods called on a nil *Console return
// parameter.ErrUnsupportedDisplayCapability.
type Console struct {
	w io.Writer
}

// NewConsole creates a Console writing to w.
func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

// PrintFloat writes value followed by a newline.
func (c *Console) PrintFloat(value string) error { return c.println(parameter.CapPrintFloat, value) }

// PrintInt writes value followed by a newline.
func (c *Console) PrintInt(value string) error { return c.println(parameter.CapPrintInt, value) }

// PrintString writes value followed by a newline.
func (c *Console) PrintString(value string) error { return c.println(parameter.CapPrintString, value) }

// PrintDelimiterPoint is a no-op; a console has no point segments.
func (c *Console) PrintDelimiterPoint(int) error {
	if c == nil {
		return errNilDisplay(parameter.CapPrintDelimiterPoint)
	}
	return nil
}

func (c *Console) println(capability parameter.Capability, value string) error {
	if c == nil {
		return errNilDisplay(capability)
	}
	_, err := fmt.Fprintln(c.w, value)
	return err
}
