package ui

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Matrix color palette
var (
	ColorMatrixGreen = lipgloss.Color("#00FF41")
	ColorGreen       = lipgloss.Color("#00CC33")
	ColorBorderNorm  = lipgloss.Color("#00AA22")
	ColorError       = lipgloss.Color("#FF3300")
)

// Styles holds the styles bound to one output. Colors are dropped
// automatically when the output is not a terminal.
type Styles struct {
	Header   lipgloss.Style
	Cell     lipgloss.Style
	Bar      lipgloss.Style
	Border   lipgloss.Style
	Error    lipgloss.Style
	Scanning lipgloss.Style
}

// NewStyles builds Styles for w.
func NewStyles(w io.Writer) Styles {
	r := lipgloss.NewRenderer(w)
	return Styles{
		Header: r.NewStyle().
			Foreground(ColorMatrixGreen).
			Bold(true).
			Padding(0, 1),

		Cell: r.NewStyle().
			Padding(0, 1),

		Bar: r.NewStyle().
			Foreground(ColorGreen),

		Border: r.NewStyle().
			Foreground(ColorBorderNorm),

		Error: r.NewStyle().
			Foreground(ColorError),

		Scanning: r.NewStyle().
			Foreground(ColorMatrixGreen).
			Bold(true),
	}
}
