// Package wifi enumerates nearby access points through the operating
// system's wireless tooling and normalises the results into Network records.
package wifi

import (
	"context"
	"math"
	"strconv"
	"strings"
)

// Network is a single access point reported by a scan.
type Network struct {
	MAC         string
	SSID        string
	Channel     int
	SignalLevel string // dBm as reported; may be unparseable
	Security    string
}

// Scanner performs one blocking scan of nearby access points.
type Scanner interface {
	Scan(ctx context.Context) ([]Network, error)
}

// ScanFunc adapts a function to the Scanner interface.
type ScanFunc func(ctx context.Context) ([]Network, error)

// Scan calls f(ctx).
func (f ScanFunc) Scan(ctx context.Context) ([]Network, error) {
	return f(ctx)
}

// ChannelFromFrequency maps a center frequency in MHz to its channel number.
// Returns 0 for frequencies outside the 2.4, 5 and 6 GHz bands.
func ChannelFromFrequency(freq int) int {
	switch {
	case freq == 2484:
		return 14
	case freq >= 2412 && freq < 2484:
		return (freq - 2407) / 5
	case freq >= 5955 && freq <= 7115:
		return (freq - 5950) / 5
	case freq >= 5000 && freq <= 5900:
		return (freq - 5000) / 5
	default:
		return 0
	}
}

// normalizeDBm rewrites decimal readings such as "-60.00" as whole dBm.
// Values that do not parse are returned untouched.
func normalizeDBm(s string) string {
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "dBm"))
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return s
	}
	return strconv.Itoa(int(math.Round(v)))
}

// security collects the protection schemes advertised by an access point.
type security struct {
	wep  bool
	wpa  bool
	wpa2 bool
	wpa3 bool
}

// String returns e.g. "WPA WPA2", "WEP" or "Open".
func (s security) String() string {
	var parts []string
	if s.wpa {
		parts = append(parts, "WPA")
	}
	if s.wpa2 {
		parts = append(parts, "WPA2")
	}
	if s.wpa3 {
		parts = append(parts, "WPA3")
	}
	if len(parts) > 0 {
		return strings.Join(parts, " ")
	}
	if s.wep {
		return "WEP"
	}
	return "Open"
}
