// Package report turns scanned networks into display rows and writes them
// as a terminal table, Markdown or JSON.
package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"widar.klederson.com/internal/config"
	"widar.klederson.com/internal/signal"
	"widar.klederson.com/internal/wifi"
)

// Headers are the column titles, in output order.
var Headers = []string{"MAC", "SSID", "Channel", "Signal Level", "Security", "Distance"}

// Options controls how readings are converted.
type Options struct {
	Bars           signal.BarCount
	Range          signal.Range
	ReferencePower int
	Logger         logrus.FieldLogger
}

// DefaultOptions returns 5 bars over [-100, -30] dBm with a -30 dBm reference.
func DefaultOptions() Options {
	return Options{
		Bars:           signal.NewBarCount(config.DefaultBars),
		Range:          signal.DefaultRange(),
		ReferencePower: config.ReferencePower,
	}
}

// Row is one formatted network.
type Row struct {
	MAC       string
	SSID      string
	Channel   int
	Signal    int
	Indicator signal.Indicator
	Security  string
	Distance  float64
}

// SignalCell renders the reading followed by its bar, e.g. "-60 ▃▃▃▁▁".
func (r Row) SignalCell() string {
	return fmt.Sprintf("%d %s", r.Signal, r.Indicator)
}

// DistanceCell renders the distance, e.g. "31.62 meters".
func (r Row) DistanceCell() string {
	return fmt.Sprintf("%.2f meters", r.Distance)
}

// Cells returns the row in Headers order.
func (r Row) Cells() []string {
	return []string{r.MAC, r.SSID, strconv.Itoa(r.Channel), r.SignalCell(), r.Security, r.DistanceCell()}
}

// ParseSignalLevel parses a reported signal level in dBm. Unparseable input
// yields config.FallbackStrength and ok=false.
func ParseSignalLevel(s string) (strength int, ok bool) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return config.FallbackStrength, false
	}
	return v, true
}

// Build converts networks into rows, preserving scan order. A malformed
// signal level degrades to the weakest reading instead of dropping the row.
func Build(networks []wifi.Network, opts Options) []Row {
	log := opts.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}

	rows := make([]Row, 0, len(networks))
	for _, n := range networks {
		strength, ok := ParseSignalLevel(n.SignalLevel)
		if !ok {
			log.WithFields(logrus.Fields{
				"mac":    n.MAC,
				"signal": n.SignalLevel,
			}).Debug("unparseable signal level, using fallback")
		}

		rows = append(rows, Row{
			MAC:       n.MAC,
			SSID:      n.SSID,
			Channel:   n.Channel,
			Signal:    strength,
			Indicator: signal.NewIndicator(strength, opts.Bars, opts.Range),
			Security:  n.Security,
			Distance:  signal.Distance(strength, opts.ReferencePower),
		})
	}
	return rows
}
