package wifi

import (
	"bufio"
	"context"
	"math"
	"strconv"
	"strings"
)

// IWScanner triggers a fresh scan with iw. Requires root or CAP_NET_ADMIN.
type IWScanner struct {
	iface string
	run   runner
}

// NewIWScanner creates an iw backend for iface.
func NewIWScanner(iface string) *IWScanner {
	return &IWScanner{iface: iface, run: runCommand}
}

// Scan runs `iw dev <iface> scan`.
func (s *IWScanner) Scan(ctx context.Context) ([]Network, error) {
	out, err := s.run(ctx, "iw", "dev", s.iface, "scan")
	if err != nil {
		return nil, err
	}
	return parseIWScan(string(out)), nil
}

type iwBSS struct {
	net  Network
	freq int
	sec  security
}

func (b *iwBSS) finish() Network {
	n := b.net
	if n.Channel == 0 {
		n.Channel = ChannelFromFrequency(b.freq)
	}
	n.Security = b.sec.String()
	return n
}

// parseIWScan parses the output of `iw dev <iface> scan`.
func parseIWScan(output string) []Network {
	var results []Network

	scanner := bufio.NewScanner(strings.NewReader(output))

	var current *iwBSS
	inRSN := false
	flush := func() {
		if current != nil && isValidMAC(current.net.MAC) {
			results = append(results, current.finish())
		}
	}

	for scanner.Scan() {
		line := scanner.Text()

		// New BSS block: "BSS aa:bb:cc:dd:ee:ff(on wlan0)"
		if strings.HasPrefix(line, "BSS ") {
			flush()
			mac := strings.TrimPrefix(line, "BSS ")
			if idx := strings.IndexByte(mac, '('); idx >= 0 {
				mac = mac[:idx]
			}
			mac, _ = normalizeMAC(mac)
			current = &iwBSS{net: Network{MAC: mac}}
			inRSN = false
			continue
		}

		if current == nil {
			continue
		}

		trimmed := strings.TrimSpace(line)

		// Element headers sit one tab deep; their details are nested further.
		if strings.HasPrefix(line, "\t") && !strings.HasPrefix(line, "\t\t") {
			inRSN = strings.HasPrefix(trimmed, "RSN:")
		}

		switch {
		case strings.HasPrefix(trimmed, "SSID: "):
			current.net.SSID = strings.TrimPrefix(trimmed, "SSID: ")
		case trimmed == "SSID:":
			current.net.SSID = ""
		case strings.HasPrefix(trimmed, "freq: "):
			if v, err := strconv.ParseFloat(strings.TrimPrefix(trimmed, "freq: "), 64); err == nil {
				current.freq = int(math.Round(v))
			}
		case strings.HasPrefix(trimmed, "signal: "):
			current.net.SignalLevel = normalizeDBm(strings.TrimPrefix(trimmed, "signal: "))
		case strings.HasPrefix(trimmed, "DS Parameter set: channel "):
			chStr := strings.TrimPrefix(trimmed, "DS Parameter set: channel ")
			if v, err := strconv.Atoi(chStr); err == nil {
				current.net.Channel = v
			}
		case strings.HasPrefix(trimmed, "* primary channel: ") && current.net.Channel == 0:
			chStr := strings.TrimPrefix(trimmed, "* primary channel: ")
			if v, err := strconv.Atoi(chStr); err == nil {
				current.net.Channel = v
			}
		case strings.HasPrefix(trimmed, "capability:"):
			if strings.Contains(trimmed, "Privacy") {
				current.sec.wep = true
			}
		case strings.HasPrefix(trimmed, "RSN:"):
			current.sec.wpa2 = true
		case strings.HasPrefix(trimmed, "WPA:"):
			current.sec.wpa = true
		case inRSN && strings.Contains(trimmed, "Authentication suites:"):
			if strings.Contains(trimmed, "SAE") {
				current.sec.wpa3 = true
				if !strings.Contains(trimmed, "PSK") && !strings.Contains(trimmed, "IEEE 802.1X") {
					current.sec.wpa2 = false
				}
			}
		}
	}
	flush()

	return results
}

// parseIWDev returns the interface names listed by `iw dev`.
func parseIWDev(output string) []string {
	var names []string
	scanner := bufio.NewScanner(strings.NewReader(output))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, "Interface ") {
			names = append(names, strings.TrimPrefix(line, "Interface "))
		}
	}
	return names
}
