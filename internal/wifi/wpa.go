package wifi

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/taigrr/go-wireless"
)

// WPAScanner asks a running wpa_supplicant for its scan results over the
// control socket.
type WPAScanner struct {
	iface string
}

// NewWPAScanner creates a wpa_supplicant backend for iface.
func NewWPAScanner(iface string) *WPAScanner {
	return &WPAScanner{iface: iface}
}

// WPAAvailable reports whether wpa_supplicant exposes a control socket for iface.
func WPAAvailable(iface string) bool {
	for _, name := range wireless.Interfaces() {
		if name == iface {
			return true
		}
	}
	return false
}

type wpaResult struct {
	networks []Network
	err      error
}

// Scan dials the control socket and waits for the scan to finish or ctx to end.
func (s *WPAScanner) Scan(ctx context.Context) ([]Network, error) {
	conn, err := wireless.Dial(s.iface)
	if err != nil {
		return nil, fmt.Errorf("dial wpa_supplicant on %s: %w", s.iface, err)
	}
	wc := wireless.NewClientFromConn(conn)

	done := make(chan wpaResult, 1)
	go func() {
		defer wc.Close()
		aps, err := wc.Scan()
		if err != nil {
			done <- wpaResult{err: fmt.Errorf("wpa_supplicant scan: %w", err)}
			return
		}
		networks := make([]Network, 0, len(aps))
		for _, ap := range aps {
			networks = append(networks, fromAP(fmt.Sprint(ap.BSSID), ap.SSID, ap.Frequency, ap.Signal, ap.Flags))
		}
		done <- wpaResult{networks: networks}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case r := <-done:
		return r.networks, r.err
	}
}

// fromAP builds a Network from the fields wpa_supplicant reports.
func fromAP(bssid, ssid string, freq, signal int, flags []string) Network {
	mac, _ := normalizeMAC(bssid)
	return Network{
		MAC:         mac,
		SSID:        ssid,
		Channel:     ChannelFromFrequency(freq),
		SignalLevel: strconv.Itoa(signal),
		Security:    wpaSecurity(flags),
	}
}

// wpaSecurity reads flags such as "WPA2-PSK-CCMP", "RSN-SAE-CCMP" or "WEP".
func wpaSecurity(flags []string) string {
	var sec security
	for _, f := range flags {
		f = strings.Trim(strings.ToUpper(f), "[]")
		switch {
		case strings.Contains(f, "SAE"):
			sec.wpa3 = true
			// Transition mode advertises PSK alongside SAE.
			if strings.Contains(f, "PSK") {
				sec.wpa2 = true
			}
		case strings.HasPrefix(f, "WPA2") || strings.HasPrefix(f, "RSN"):
			sec.wpa2 = true
		case strings.HasPrefix(f, "WPA"):
			sec.wpa = true
		case strings.HasPrefix(f, "WEP"):
			sec.wep = true
		}
	}
	return sec.String()
}
