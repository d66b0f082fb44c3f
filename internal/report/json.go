package report

import (
	"encoding/json"
	"io"
)

// JSONWriter outputs rows as an indented JSON array.
type JSONWriter struct {
	output io.Writer
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer) *JSONWriter {
	return &JSONWriter{output: output}
}

type jsonRow struct {
	MAC            string  `json:"mac"`
	SSID           string  `json:"ssid"`
	Channel        int     `json:"channel"`
	SignalLevel    int     `json:"signal_level"`
	Bars           string  `json:"bars"`
	FilledBars     int     `json:"filled_bars"`
	TotalBars      int     `json:"total_bars"`
	Security       string  `json:"security"`
	DistanceMeters float64 `json:"distance_meters"`
	Distance       string  `json:"distance"`
}

// Write encodes rows. An empty scan encodes as [].
func (w *JSONWriter) Write(rows []Row) error {
	out := make([]jsonRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, jsonRow{
			MAC:            r.MAC,
			SSID:           r.SSID,
			Channel:        r.Channel,
			SignalLevel:    r.Signal,
			Bars:           r.Indicator.String(),
			FilledBars:     r.Indicator.Filled,
			TotalBars:      r.Indicator.Total,
			Security:       r.Security,
			DistanceMeters: r.Distance,
			Distance:       r.DistanceCell(),
		})
	}

	enc := json.NewEncoder(w.output)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
