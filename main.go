package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"widar.klederson.com/internal/app"
	"widar.klederson.com/internal/config"
	"widar.klederson.com/internal/report"
	sig "widar.klederson.com/internal/signal"
	"widar.klederson.com/internal/ui"
	"widar.klederson.com/internal/wifi"
)

type rootOptions struct {
	iface      string
	backend    string
	output     string
	bars       int
	demo       bool
	configPath string
	verbose    bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		printError(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	o := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   config.AppName,
		Short: config.AppTitle,
		Long: `WiDar scans nearby WiFi access points once and prints a table of their
MAC, SSID, channel, signal level with a bar indicator, security and an
estimated distance derived from the signal strength.

Scanning uses nmcli, iw, iwlist or wpa_supplicant, whichever is available.
iw and iwlist need sudo or CAP_NET_ADMIN to trigger a fresh scan.
Use --demo for demonstration mode without wireless hardware.`,
		Version:       config.AppVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, o)
		},
	}

	rootCmd.Flags().StringVarP(&o.iface, "interface", "i", config.DefaultInterface, "Specifies the network interface to use")
	rootCmd.Flags().StringVarP(&o.backend, "backend", "b", config.DefaultBackend, "Scan backend: auto, nmcli, iw, iwlist or wpa")
	rootCmd.Flags().StringVarP(&o.output, "output", "o", config.DefaultFormat, "Output format: table, markdown or json")
	rootCmd.Flags().IntVar(&o.bars, "bars", config.DefaultBars, "Number of positions in the signal indicator (minimum 3)")
	rootCmd.Flags().BoolVar(&o.demo, "demo", false, "Run in demo mode with fake networks (no WiFi required)")
	rootCmd.Flags().StringVar(&o.configPath, "config", "", "Config file (default $XDG_CONFIG_HOME/widar/config.yaml)")
	rootCmd.Flags().BoolVarP(&o.verbose, "verbose", "v", false, "Enable verbose logging")

	return rootCmd
}

func run(cmd *cobra.Command, o *rootOptions) error {
	stderr := cmd.ErrOrStderr()
	logger := newLogger(stderr, o.verbose)

	settings, err := config.Resolve(o.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("interface") {
		settings.Interface = o.iface
	}
	if flags.Changed("backend") {
		settings.Backend = o.backend
	}
	if flags.Changed("output") {
		settings.Format = o.output
	}
	if flags.Changed("bars") {
		settings.Bars = o.bars
	}
	if o.demo {
		settings.Backend = string(wifi.BackendDemo)
	}

	backend, err := wifi.ParseBackend(settings.Backend)
	if err != nil {
		return err
	}
	format, err := report.ParseFormat(settings.Format)
	if err != nil {
		return err
	}

	iface := settings.Interface
	if backend != wifi.BackendDemo {
		explicit := flags.Changed("interface") || settings.Interface != config.DefaultInterface
		iface, err = wifi.ResolveInterface(cmd.Context(), logger, settings.Interface, explicit)
		if err != nil {
			return &app.ScanError{Err: err}
		}
	}

	scanner, backend, err := wifi.NewScanner(wifi.Options{
		Interface: iface,
		Backend:   backend,
		Logger:    logger,
	})
	if err != nil {
		return &app.ScanError{Err: err}
	}

	return app.Run(cmd.Context(), app.Options{
		Scanner:   scanner,
		Interface: iface,
		Backend:   backend,
		Format:    format,
		Report: report.Options{
			Bars:           sig.NewBarCount(settings.Bars),
			Range:          sig.Range{Min: settings.MinStrength, Max: settings.MaxStrength},
			ReferencePower: settings.ReferencePower,
			Logger:         logger,
		},
		Stdout:   cmd.OutOrStdout(),
		Stderr:   stderr,
		Progress: isTerminal(stderr),
		Logger:   logger,
	})
}

func newLogger(w io.Writer, verbose bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	logger.SetLevel(logrus.WarnLevel)
	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	}
	return logger
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// printError writes err to w. Scan failures get the historical prefix.
func printError(w io.Writer, err error) {
	styles := ui.NewStyles(w)
	var scanErr *app.ScanError
	if errors.As(err, &scanErr) {
		fmt.Fprintf(w, "Failed to scan WiFi networks: %s\n", styles.Error.Render(scanErr.Error()))
		return
	}
	fmt.Fprintf(w, "Error: %s\n", styles.Error.Render(err.Error()))
}
