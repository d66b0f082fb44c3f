package wifi

import (
	"bufio"
	"context"
	"strconv"
	"strings"
)

// NmcliScanner lists access points through NetworkManager. Works without root.
type NmcliScanner struct {
	iface string
	run   runner
}

// NewNmcliScanner creates an nmcli backend. An empty iface lets
// NetworkManager pick the device.
func NewNmcliScanner(iface string) *NmcliScanner {
	return &NmcliScanner{iface: iface, run: runCommand}
}

// Scan runs `nmcli dev wifi list` and parses the terse output.
func (s *NmcliScanner) Scan(ctx context.Context) ([]Network, error) {
	// Use cached results from NetworkManager (it rescans automatically).
	args := []string{"-t", "-f", "BSSID,SSID,CHAN,SIGNAL,SECURITY", "dev", "wifi", "list"}
	if s.iface != "" {
		args = append(args, "ifname", s.iface)
	}
	out, err := s.run(ctx, "nmcli", args...)
	if err != nil {
		return nil, err
	}
	return parseNmcliScan(string(out)), nil
}

// parseNmcliScan parses nmcli terse output.
// Format per line: BSSID:SSID:CHAN:SIGNAL:SECURITY
// In terse mode, literal colons and backslashes in values are escaped as \: and \\
func parseNmcliScan(output string) []Network {
	var results []Network

	scanner := bufio.NewScanner(strings.NewReader(output))
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}

		// Split on unescaped colons: replace escapes with placeholders, split, restore
		const (
			colon     = "\x00"
			backslash = "\x01"
		)
		escaped := strings.NewReplacer(`\\`, backslash, `\:`, colon).Replace(line)
		parts := strings.Split(escaped, ":")
		restore := strings.NewReplacer(colon, ":", backslash, `\`)
		for i := range parts {
			parts[i] = restore.Replace(parts[i])
		}

		if len(parts) < 5 {
			continue
		}

		mac, ok := normalizeMAC(parts[0])
		if !ok {
			continue
		}

		channel, _ := strconv.Atoi(strings.TrimSpace(parts[2]))

		results = append(results, Network{
			MAC:         mac,
			SSID:        parts[1],
			Channel:     channel,
			SignalLevel: percentToDBm(strings.TrimSpace(parts[3])),
			Security:    nmcliSecurity(parts[4]),
		})
	}

	return results
}

// percentToDBm converts nmcli's 0-100 SIGNAL to approximate dBm:
// 100% ~ -30dBm, 0% ~ -100dBm. Unparseable values pass through.
func percentToDBm(s string) string {
	pct, err := strconv.Atoi(s)
	if err != nil {
		return s
	}
	return strconv.Itoa(-100 + pct*70/100)
}

func nmcliSecurity(s string) string {
	s = strings.TrimSpace(s)
	if s == "" || s == "--" {
		return "Open"
	}
	return s
}
