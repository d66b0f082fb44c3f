// Package signal turns received signal strength into the two derived values
// widar displays: an estimated distance and a bar indicator.
package signal

import (
	"math"

	"widar.klederson.com/internal/config"
)

// EstimateDistance estimates distance in meters from a reading in dBm using
// the log-distance path loss model with the default reference power.
func EstimateDistance(strength int) float64 {
	return Distance(strength, config.ReferencePower)
}

// Distance estimates distance in meters from strength relative to the power
// received at one meter.
// Formula: d = 10^((referencePower - strength) / 20)
//
// Readings stronger than referencePower yield distances below 1 meter.
func Distance(strength, referencePower int) float64 {
	return math.Pow(10, float64(referencePower-strength)/20)
}
