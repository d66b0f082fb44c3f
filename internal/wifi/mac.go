package wifi

import "strings"

func isValidMAC(mac string) bool {
	if len(mac) != 17 {
		return false
	}
	for i, c := range mac {
		if (i+1)%3 == 0 {
			if c != ':' {
				return false
			}
		} else {
			if !((c >= '0' && c <= '9') || (c >= 'A' && c <= 'F') || (c >= 'a' && c <= 'f')) {
				return false
			}
		}
	}
	return true
}

// normalizeMAC upper-cases a BSSID and reports whether it is well formed.
func normalizeMAC(mac string) (string, bool) {
	mac = strings.ToUpper(strings.TrimSpace(mac))
	return mac, isValidMAC(mac)
}
