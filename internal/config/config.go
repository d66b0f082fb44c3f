package config

const (
	// RSSI to distance estimation
	ReferencePower = -30 // Transmit power at 1 meter (dBm)

	// Signal bar indicator
	DefaultBars = 5    // Glyph positions for the full range
	MinBars     = 3    // Bar count floor
	MinStrength = -100 // Weakest calibrated reading (dBm)
	MaxStrength = -30  // Strongest calibrated reading (dBm)

	// Reading used when a scan reports an unparseable signal level
	FallbackStrength = MinStrength

	// Scanner
	DefaultInterface = "wlan0"
	DefaultBackend   = "auto"
	DefaultFormat    = "table"

	// Demo mode
	DemoNetworkMin = 8  // Minimum fake access points
	DemoNetworkMax = 12 // Maximum fake access points

	// App
	AppName    = "widar"
	AppTitle   = "WiDar: WiFi Distance Estimator"
	AppVersion = "0.1.1"
)
