package wifi

import (
	"context"
	"errors"
	"math/rand"
	"testing"
)

func TestParseBackend(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    Backend
		wantErr bool
	}{
		{"", BackendAuto, false},
		{"auto", BackendAuto, false},
		{" NMCLI ", BackendNmcli, false},
		{"iw", BackendIW, false},
		{"iwlist", BackendIWList, false},
		{"wpa", BackendWPA, false},
		{"demo", BackendDemo, false},
		{"airport", "", true},
	}
	for _, tt := range tests {
		tt := tt
		got, err := ParseBackend(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrUnknownBackend) {
				t.Errorf("ParseBackend(%q) error = %v, want ErrUnknownBackend", tt.in, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseBackend(%q) = %q, %v, want %q", tt.in, got, err, tt.want)
		}
	}
}

func fakeProbe(commands []string, wpa bool) probe {
	have := make(map[string]bool, len(commands))
	for _, c := range commands {
		have[c] = true
	}
	return probe{
		command: func(name string) bool { return have[name] },
		wpa:     func(string) bool { return wpa },
	}
}

func TestSelectBackend(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		probe   probe
		backend Backend
		want    Backend
		wantErr error
	}{
		{"nmcli preferred", fakeProbe([]string{"iw", "nmcli", "iwlist"}, true), BackendAuto, BackendNmcli, nil},
		{"iw next", fakeProbe([]string{"iwlist", "iw"}, true), BackendAuto, BackendIW, nil},
		{"iwlist next", fakeProbe([]string{"iwlist"}, true), BackendAuto, BackendIWList, nil},
		{"wpa last", fakeProbe(nil, true), BackendAuto, BackendWPA, nil},
		{"nothing available", fakeProbe(nil, false), BackendAuto, "", ErrNoBackend},
		{"explicit choice kept", fakeProbe(nil, false), BackendIW, BackendIW, nil},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := selectBackend(tt.probe, tt.backend, "wlan0")
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("selectBackend() error = %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("selectBackend() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNewScannerDemo(t *testing.T) {
	t.Parallel()

	s, backend, err := NewScanner(Options{Interface: "wlan0", Backend: BackendDemo})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if backend != BackendDemo {
		t.Errorf("backend = %q, want demo", backend)
	}
	if _, ok := s.(*MockScanner); !ok {
		t.Errorf("scanner = %T, want *MockScanner", s)
	}
}

func TestPickInterface(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		requested string
		explicit  bool
		names     []string
		want      string
		wantErr   bool
	}{
		{"nothing listed", "wlan0", true, nil, "wlan0", false},
		{"requested present", "wlan1", true, []string{"wlan0", "wlan1"}, "wlan1", false},
		{"default missing falls back", "wlan0", false, []string{"wlp3s0"}, "wlp3s0", false},
		{"explicit missing fails", "wlan9", true, []string{"wlp3s0"}, "", true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := pickInterface(tt.requested, tt.explicit, tt.names)
			if tt.wantErr {
				if !errors.Is(err, ErrInterfaceNotFound) {
					t.Fatalf("pickInterface() error = %v, want ErrInterfaceNotFound", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("pickInterface() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMockScanner(t *testing.T) {
	t.Parallel()

	s := NewMockScanner(rand.New(rand.NewSource(42)))
	for i := 0; i < 20; i++ {
		networks, err := s.Scan(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(networks) < 8 || len(networks) > 12 {
			t.Fatalf("got %d networks, want 8-12", len(networks))
		}
		for _, n := range networks {
			if !isValidMAC(n.MAC) {
				t.Errorf("invalid MAC %q", n.MAC)
			}
			if n.Channel <= 0 {
				t.Errorf("network %q has channel %d", n.SSID, n.Channel)
			}
			if n.SignalLevel == "" || n.Security == "" {
				t.Errorf("network %+v is missing signal or security", n)
			}
		}
	}
}

func TestMockScannerCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewMockScanner(nil).Scan(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Scan() error = %v, want context.Canceled", err)
	}
}

func TestScanFunc(t *testing.T) {
	t.Parallel()

	want := []Network{{MAC: "00:11:22:33:44:55"}}
	var s Scanner = ScanFunc(func(context.Context) ([]Network, error) { return want, nil })
	got, err := s.Scan(context.Background())
	if err != nil || len(got) != 1 || got[0] != want[0] {
		t.Errorf("ScanFunc.Scan() = %v, %v", got, err)
	}
}
