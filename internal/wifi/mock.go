package wifi

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"

	"widar.klederson.com/internal/config"
)

var mockNetworkNames = []string{
	"HomeNetwork_2G",
	"HomeNetwork_5G",
	"XFINITY-7A3F",
	"TP-Link_5GHz",
	"AndroidAP",
	"Starlink_WiFi",
	"NETGEAR42",
	"Linksys00417",
	"CoffeeShop Guest",
	"eduroam",
	"DIRECT-8B-HP OfficeJet",
	"FRITZ!Box 7590",
	"Vodafone-A1B2",
	"ATT5xQ3kZ",
}

var mockSecurity = []string{"WPA2", "WPA2", "WPA WPA2", "WPA3", "WPA2 WPA3", "Open", "WEP"}

// 5 GHz channel options for mock access points.
var wifi5GChannels = []int{36, 40, 44, 48, 149, 153, 157, 161}

// MockScanner returns fake access points for demo mode.
type MockScanner struct {
	rng *rand.Rand
}

// NewMockScanner creates a demo scanner drawing from rng. A nil rng is
// seeded from the global source.
func NewMockScanner(rng *rand.Rand) *MockScanner {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return &MockScanner{rng: rng}
}

// Scan returns between config.DemoNetworkMin and config.DemoNetworkMax networks.
func (s *MockScanner) Scan(ctx context.Context) ([]Network, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	total := config.DemoNetworkMin + s.rng.Intn(config.DemoNetworkMax-config.DemoNetworkMin+1)
	perm := s.rng.Perm(len(mockNetworkNames))

	networks := make([]Network, 0, total)
	for i := 0; i < total; i++ {
		n := Network{
			MAC:         s.randomMAC(),
			SSID:        mockNetworkNames[perm[i%len(perm)]],
			SignalLevel: strconv.Itoa(-35 - s.rng.Intn(60)), // -35 to -94 dBm
			Security:    mockSecurity[s.rng.Intn(len(mockSecurity))],
		}
		if s.rng.Intn(2) == 0 {
			// 2.4 GHz
			n.Channel = ChannelFromFrequency(2412 + s.rng.Intn(11)*5)
		} else {
			n.Channel = wifi5GChannels[s.rng.Intn(len(wifi5GChannels))]
		}
		// Hidden networks broadcast an empty name
		if s.rng.Float64() < 0.05 {
			n.SSID = ""
		}
		networks = append(networks, n)
	}
	return networks, nil
}

func (s *MockScanner) randomMAC() string {
	b := make([]byte, 6)
	for i := range b {
		b[i] = byte(s.rng.Intn(256))
	}
	return fmt.Sprintf("%02X:%02X:%02X:%02X:%02X:%02X", b[0], b[1], b[2], b[3], b[4], b[5])
}
