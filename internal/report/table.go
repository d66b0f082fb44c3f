package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"widar.klederson.com/internal/ui"
)

// TableWriter renders rows as a bordered terminal table. Header and bars
// are colored only when output is a terminal.
type TableWriter struct {
	output io.Writer
	styles ui.Styles
}

// NewTableWriter creates a TableWriter for output.
func NewTableWriter(output io.Writer) *TableWriter {
	return &TableWriter{output: output, styles: ui.NewStyles(output)}
}

// Write renders the table. An empty rows slice renders the header only.
func (w *TableWriter) Write(rows []Row) error {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(w.styles.Border).
		Headers(Headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return w.styles.Header
			}
			return w.styles.Cell
		})

	for _, r := range rows {
		t.Row(
			r.MAC,
			r.SSID,
			strconv.Itoa(r.Channel),
			fmt.Sprintf("%d %s", r.Signal, w.styles.Bar.Render(r.Indicator.String())),
			r.Security,
			r.DistanceCell(),
		)
	}

	_, err := fmt.Fprintln(w.output, t.Render())
	return err
}
