package app

import (
	"time"

	"widar.klederson.com/internal/wifi"
)

// TickMsg advances the scanning spinner.
type TickMsg time.Time

// ScanResultMsg carries the outcome of the scan.
type ScanResultMsg struct {
	Networks []wifi.Network
	Err      error
}
