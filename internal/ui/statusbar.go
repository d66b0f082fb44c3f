package ui

import "fmt"

// RenderStatusLine renders the one-line scan summary shown after the table.
func RenderStatusLine(s Styles, networks int, iface, backend string) string {
	status := s.Scanning.Render("[SCANNED]")
	info := fmt.Sprintf(" Networks: %d  Interface: %s  Backend: %s", networks, iface, backend)
	return status + s.Cell.UnsetPadding().Render(info)
}
