package app

import (
	"context"
	"fmt"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"widar.klederson.com/internal/wifi"
)

const spinnerInterval = 100 * time.Millisecond

var spinnerFrames = []string{"|", "/", "-", "\\"}

// scanModel shows a spinner while a single scan runs, then quits.
// Bubble Tea copies the model on every update; ctx and scanner are only read.
type scanModel struct {
	ctx     context.Context
	scanner wifi.Scanner
	iface   string
	style   lipgloss.Style

	frame    int
	done     bool
	networks []wifi.Network
	err      error
}

func newScanModel(ctx context.Context, scanner wifi.Scanner, iface string, style lipgloss.Style) scanModel {
	return scanModel{
		ctx:     ctx,
		scanner: scanner,
		iface:   iface,
		style:   style,
	}
}

func (m scanModel) Init() tea.Cmd {
	return tea.Batch(
		m.scanCmd(),
		tickCmd(),
	)
}

func (m scanModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ScanResultMsg:
		m.done = true
		m.networks = msg.Networks
		m.err = msg.Err
		return m, tea.Quit

	case TickMsg:
		if m.done {
			return m, nil
		}
		m.frame++
		return m, tickCmd()
	}

	return m, nil
}

func (m scanModel) View() string {
	if m.done {
		return ""
	}
	frame := spinnerFrames[m.frame%len(spinnerFrames)]
	return m.style.Render(fmt.Sprintf("%s Scanning for WiFi networks on %s...", frame, m.iface))
}

func (m scanModel) scanCmd() tea.Cmd {
	return func() tea.Msg {
		networks, err := m.scanner.Scan(m.ctx)
		return ScanResultMsg{Networks: networks, Err: err}
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(spinnerInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// scanWithProgress runs the scan inside a Bubble Tea program drawing to out.
func scanWithProgress(ctx context.Context, scanner wifi.Scanner, iface string, out io.Writer, style lipgloss.Style) ([]wifi.Network, error) {
	p := tea.NewProgram(
		newScanModel(ctx, scanner, iface, style),
		tea.WithContext(ctx),
		tea.WithInput(nil),
		tea.WithOutput(out),
	)

	final, err := p.Run()
	if err != nil {
		return nil, err
	}
	m, ok := final.(scanModel)
	if !ok {
		return nil, fmt.Errorf("unexpected model type %T", final)
	}
	return m.networks, m.err
}
