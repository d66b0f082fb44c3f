// Package app runs one scan-and-report cycle.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"widar.klederson.com/internal/report"
	"widar.klederson.com/internal/ui"
	"widar.klederson.com/internal/wifi"
)

// ScanError reports a failure of the scanning backend.
type ScanError struct {
	Err error
}

func (e *ScanError) Error() string {
	return e.Err.Error()
}

func (e *ScanError) Unwrap() error {
	return e.Err
}

// Options configures Run.
type Options struct {
	Scanner   wifi.Scanner
	Interface string
	Backend   wifi.Backend
	Format    report.Format
	Report    report.Options

	Stdout io.Writer
	Stderr io.Writer

	// Progress shows a spinner on Stderr while scanning and a summary line
	// after the report. Only meaningful when Stderr is a terminal.
	Progress bool

	Logger logrus.FieldLogger
}

// Run scans once, then writes one row per network to Stdout in scan order.
// A scan failure is returned as *ScanError.
func Run(ctx context.Context, opts Options) error {
	if opts.Scanner == nil {
		return errors.New("no scanner configured")
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}
	log := opts.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}
	if opts.Report.Logger == nil {
		opts.Report.Logger = log
	}

	w, err := report.NewWriter(opts.Format, opts.Stdout)
	if err != nil {
		return err
	}

	styles := ui.NewStyles(opts.Stderr)

	var networks []wifi.Network
	if opts.Progress {
		networks, err = scanWithProgress(ctx, opts.Scanner, opts.Interface, opts.Stderr, styles.Scanning)
	} else {
		networks, err = opts.Scanner.Scan(ctx)
	}
	if err != nil {
		return &ScanError{Err: err}
	}
	log.WithField("networks", len(networks)).Debug("scan complete")

	if err := w.Write(report.Build(networks, opts.Report)); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	if opts.Progress {
		fmt.Fprintln(opts.Stderr, ui.RenderStatusLine(styles, len(networks), opts.Interface, string(opts.Backend)))
	}
	return nil
}
