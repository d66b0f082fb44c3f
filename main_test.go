package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"widar.klederson.com/internal/app"
	"widar.klederson.com/internal/config"
	"widar.klederson.com/internal/report"
)

func emptyConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, nil, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestNewRootCmdFlags(t *testing.T) {
	t.Parallel()

	cmd := newRootCmd()
	flag := cmd.Flags().Lookup("interface")
	if flag == nil {
		t.Fatal("interface flag not registered")
	}
	if flag.Shorthand != "i" {
		t.Errorf("interface shorthand = %q, want i", flag.Shorthand)
	}
	if flag.DefValue != "wlan0" {
		t.Errorf("interface default = %q, want wlan0", flag.DefValue)
	}

	for name, short := range map[string]string{"backend": "b", "output": "o", "verbose": "v"} {
		f := cmd.Flags().Lookup(name)
		if f == nil {
			t.Errorf("flag %q not registered", name)
			continue
		}
		if f.Shorthand != short {
			t.Errorf("flag %q shorthand = %q, want %q", name, f.Shorthand, short)
		}
	}
	for _, name := range []string{"bars", "demo", "config"} {
		if cmd.Flags().Lookup(name) == nil {
			t.Errorf("flag %q not registered", name)
		}
	}
}

func TestVersion(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"--version"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), config.AppVersion) {
		t.Errorf("version output = %q, want %s", buf.String(), config.AppVersion)
	}
}

func TestDemoRun(t *testing.T) {
	t.Parallel()

	t.Run("table", func(t *testing.T) {
		t.Parallel()
		var stdout, stderr bytes.Buffer
		cmd := newRootCmd()
		cmd.SetOut(&stdout)
		cmd.SetErr(&stderr)
		cmd.SetArgs([]string{"--demo", "--config", emptyConfig(t), "-i", "wlan7"})
		if err := cmd.Execute(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		out := stdout.String()
		for _, h := range report.Headers {
			if !strings.Contains(out, h) {
				t.Errorf("output missing header %q:\n%s", h, out)
			}
		}
		if !strings.Contains(out, " meters") {
			t.Errorf("output has no distance column values:\n%s", out)
		}
	})

	t.Run("json with custom bars", func(t *testing.T) {
		t.Parallel()
		var stdout bytes.Buffer
		cmd := newRootCmd()
		cmd.SetOut(&stdout)
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs([]string{"--demo", "--config", emptyConfig(t), "-o", "json", "--bars", "8"})
		if err := cmd.Execute(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		var rows []struct {
			TotalBars int    `json:"total_bars"`
			Distance  string `json:"distance"`
		}
		if err := json.Unmarshal(stdout.Bytes(), &rows); err != nil {
			t.Fatalf("invalid JSON: %v\n%s", err, stdout.String())
		}
		if len(rows) < config.DemoNetworkMin || len(rows) > config.DemoNetworkMax {
			t.Errorf("got %d rows, want %d-%d", len(rows), config.DemoNetworkMin, config.DemoNetworkMax)
		}
		for _, r := range rows {
			if r.TotalBars != 8 {
				t.Errorf("total_bars = %d, want 8", r.TotalBars)
			}
			if !strings.HasSuffix(r.Distance, " meters") {
				t.Errorf("distance = %q, want meters suffix", r.Distance)
			}
		}
	})

	t.Run("config file is applied", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "config.yaml")
		if err := os.WriteFile(path, []byte("format: json\nbars: 1\n"), 0o600); err != nil {
			t.Fatalf("write config: %v", err)
		}
		var stdout bytes.Buffer
		cmd := newRootCmd()
		cmd.SetOut(&stdout)
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs([]string{"--demo", "--config", path})
		if err := cmd.Execute(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(stdout.String(), `"total_bars": 3`) {
			t.Errorf("expected bar floor of 3 in JSON output:\n%s", stdout.String())
		}
	})
}

func TestRunErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		args    func(t *testing.T) []string
		wantErr error
	}{
		{
			name:    "unknown output",
			args:    func(t *testing.T) []string { return []string{"--demo", "--config", emptyConfig(t), "-o", "csv"} },
			wantErr: report.ErrUnknownFormat,
		},
		{
			name: "missing explicit config",
			args: func(t *testing.T) []string {
				return []string{"--demo", "--config", filepath.Join(t.TempDir(), "missing.yaml")}
			},
			wantErr: config.ErrConfigNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cmd := newRootCmd()
			cmd.SetOut(&bytes.Buffer{})
			cmd.SetErr(&bytes.Buffer{})
			cmd.SetArgs(tt.args(t))
			if err := cmd.Execute(); !errors.Is(err, tt.wantErr) {
				t.Errorf("Execute() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestPrintError(t *testing.T) {
	t.Parallel()

	t.Run("scan failure", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		printError(&buf, &app.ScanError{Err: errors.New("permission denied")})
		if got := buf.String(); got != "Failed to scan WiFi networks: permission denied\n" {
			t.Errorf("printError() = %q", got)
		}
	})

	t.Run("other error", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		printError(&buf, errors.New("bad flag"))
		if got := buf.String(); got != "Error: bad flag\n" {
			t.Errorf("printError() = %q", got)
		}
	})
}

func TestIsTerminal(t *testing.T) {
	t.Parallel()

	if isTerminal(&bytes.Buffer{}) {
		t.Error("a buffer is not a terminal")
	}
}
