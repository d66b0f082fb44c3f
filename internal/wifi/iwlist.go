package wifi

import (
	"context"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// IWListScanner uses the legacy wireless-tools `iwlist` command.
type IWListScanner struct {
	iface string
	run   runner
}

// NewIWListScanner creates an iwlist backend for iface.
func NewIWListScanner(iface string) *IWListScanner {
	return &IWListScanner{iface: iface, run: runCommand}
}

// Scan runs `iwlist <iface> scan`.
func (s *IWListScanner) Scan(ctx context.Context) ([]Network, error) {
	out, err := s.run(ctx, "iwlist", s.iface, "scan")
	if err != nil {
		return nil, err
	}
	return parseIWListOutput(string(out)), nil
}

var (
	iwlistAddressRegex    = regexp.MustCompile(`Address: ([0-9A-Fa-f:]{17})`)
	iwlistSSIDRegex       = regexp.MustCompile(`ESSID:"(.*?)"`)
	iwlistChannelRegex    = regexp.MustCompile(`Channel[:\s](\d+)`)
	iwlistFrequencyRegex  = regexp.MustCompile(`Frequency:(\d+(?:\.\d+)?) GHz`)
	iwlistSignalRegex     = regexp.MustCompile(`Signal level[=:](\S+)`)
	iwlistEncryptionRegex = regexp.MustCompile(`Encryption key:(on|off)`)
	iwlistWPA2Regex       = regexp.MustCompile(`IE: IEEE 802.11i/WPA2 Version`)
	iwlistWPARegex        = regexp.MustCompile(`IE: WPA Version 1`)
	iwlistSAERegex        = regexp.MustCompile(`Authentication Suites \(\d+\) : .*SAE`)
)

func parseIWListOutput(output string) []Network {
	var networks []Network

	for _, cell := range strings.Split(output, "Cell ") {
		address := iwlistAddressRegex.FindStringSubmatch(cell)
		if len(address) < 2 {
			continue
		}
		mac, ok := normalizeMAC(address[1])
		if !ok {
			continue
		}

		n := Network{MAC: mac}
		if m := iwlistSSIDRegex.FindStringSubmatch(cell); len(m) > 1 {
			n.SSID = m[1]
		}
		if m := iwlistChannelRegex.FindStringSubmatch(cell); len(m) > 1 {
			n.Channel, _ = strconv.Atoi(m[1])
		}
		if n.Channel == 0 {
			if m := iwlistFrequencyRegex.FindStringSubmatch(cell); len(m) > 1 {
				if ghz, err := strconv.ParseFloat(m[1], 64); err == nil {
					n.Channel = ChannelFromFrequency(int(math.Round(ghz * 1000)))
				}
			}
		}
		if m := iwlistSignalRegex.FindStringSubmatch(cell); len(m) > 1 {
			n.SignalLevel = normalizeDBm(m[1])
		}

		var sec security
		if m := iwlistEncryptionRegex.FindStringSubmatch(cell); len(m) > 1 && m[1] == "on" {
			sec.wep = true
		}
		sec.wpa2 = iwlistWPA2Regex.MatchString(cell)
		sec.wpa = iwlistWPARegex.MatchString(cell)
		sec.wpa3 = iwlistSAERegex.MatchString(cell)
		n.Security = sec.String()

		networks = append(networks, n)
	}

	return networks
}
