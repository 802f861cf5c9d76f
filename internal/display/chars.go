package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/nerrad567/thermoparam/internal/parameter"
)

var _ parameter.Display = (*Chars)(nil)

// Chars explodes every value into its characters and writes them as a
// bracketed list, one list per line:
//
//	['1', '4', '0']
//
// It shows that rendering granularity belongs to the display, not the
// value.
type Chars struct {
	w io.Writer
}

// NewChars creates a Chars display writing to w.
func NewChars(w io.Writer) *Chars {
	return &Chars{w: w}
}

// PrintFloat writes the characters of value.
func (c *Chars) PrintFloat(value string) error { return c.explode(parameter.CapPrintFloat, value) }

// PrintInt writes the characters of value.
func (c *Chars) PrintInt(value string) error { return c.explode(parameter.CapPrintInt, value) }

// PrintString writes the characters of value.
func (c *Chars) PrintString(value string) error { return c.explode(parameter.CapPrintString, value) }

func (c *Chars) explode(capability parameter.Capability, value string) error {
	if c == nil {
		return errNilDisplay(capability)
	}
	_, err := fmt.Fprintln(c.w, Explode(value))
	return err
}

// Explode formats value as a bracketed list of quoted characters.
func Explode(value string) string {
	parts := make([]string, 0, len(value))
	for _, r := range value {
		parts = append(parts, "'"+string(r)+"'")
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
