package display

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nerrad567/thermoparam/internal/infrastructure/config"
	"github.com/nerrad567/thermoparam/internal/parameter"
)

var _ parameter.SegmentDisplay = (*Panel)(nil)

// Panel emulates a front-panel indicator in the terminal: each value is
// drawn inside a rounded frame.
//
// Delimiter points requested through PrintDelimiterPoint are marked with
// a '.' under the matching character of the next value printed, then
// cleared. Points past the end of that value are dropped. Marks are
// skipped entirely when the value is wider than the frame, because the
// wrapped text no longer lines up with a single marker line.
type Panel struct {
	w      io.Writer
	style  lipgloss.Style
	width  int
	points map[int]bool
}

// maxDelimiterPosition bounds delimiter point positions. It is far wider
// than any segment indicator.
const maxDelimiterPosition = 255

// panelPadding is the horizontal padding inside the frame (both sides).
const panelPadding = 2

// NewPanel creates a Panel writing to w.
//
// Parameters:
//   - w: Destination for the rendered frames
//   - cfg: Frame width and border colour
//
// Returns:
//   - *Panel: Panel ready for use
func NewPanel(w io.Writer, cfg config.PanelConfig) *Panel {
	renderer := lipgloss.NewRenderer(w)

	style := renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)

	if cfg.Colour != "" {
		style = style.BorderForeground(lipgloss.Color(cfg.Colour))
	}
	if cfg.Width > 0 {
		style = style.Width(cfg.Width)
	}

	return &Panel{
		w:      w,
		style:  style,
		width:  cfg.Width,
		points: make(map[int]bool),
	}
}

// PrintFloat draws value in a frame.
func (p *Panel) PrintFloat(value string) error { return p.draw(parameter.CapPrintFloat, value) }

// PrintInt draws value in a frame.
func (p *Panel) PrintInt(value string) error { return p.draw(parameter.CapPrintInt, value) }

// PrintString draws value in a frame.
func (p *Panel) PrintString(value string) error { return p.draw(parameter.CapPrintString, value) }

// PrintDelimiterPoint marks the character at position (0-based) of the
// next value with a decimal point.
//
// Returns:
//   - error: ErrDelimiterOutOfRange if position is negative or above
//     maxDelimiterPosition
func (p *Panel) PrintDelimiterPoint(position int) error {
	if p == nil {
		return errNilDisplay(parameter.CapPrintDelimiterPoint)
	}
	if position < 0 || position > maxDelimiterPosition {
		return fmt.Errorf("%w: %d (valid: 0 to %d)", ErrDelimiterOutOfRange, position, maxDelimiterPosition)
	}
	p.points[position] = true
	return nil
}

func (p *Panel) draw(capability parameter.Capability, value string) error {
	if p == nil {
		return errNilDisplay(capability)
	}

	content := value
	if marks := p.pointLine(value); marks != "" {
		content += "\n" + marks
	}
	clear(p.points)

	_, err := fmt.Fprintln(p.w, p.style.Render(content))
	return err
}

// pointLine builds the marker line for pending delimiter points that fall
// inside value. It returns "" when value would wrap inside the frame.
func (p *Panel) pointLine(value string) string {
	if len(p.points) == 0 {
		return ""
	}
	if p.width > 0 && lipgloss.Width(value) > p.width-panelPadding {
		return ""
	}

	length := len([]rune(value))
	positions := make([]int, 0, len(p.points))
	for pos := range p.points {
		if pos < length {
			positions = append(positions, pos)
		}
	}
	if len(positions) == 0 {
		return ""
	}
	sort.Ints(positions)

	line := []rune(strings.Repeat(" ", positions[len(positions)-1]+1))
	for _, pos := range positions {
		line[pos] = '.'
	}
	return strings.TrimRight(string(line), " ")
}
