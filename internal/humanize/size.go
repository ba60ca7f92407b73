// Package humanize formats and parses byte counts for display.
package humanize

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const step = 1024

var units = []string{"Bytes", "KB", "MB", "GB"}

// FormatFileSize renders a byte count using 1024 steps, e.g. "1.5 KB".
// The value is rounded to two decimals with trailing zeros dropped.
// Counts past the GB range stay in GB.
func FormatFileSize(bytes int64) string {
	if bytes <= 0 {
		return "0 Bytes"
	}

	value := float64(bytes)
	i := 0
	for value >= step && i < len(units)-1 {
		value /= step
		i++
	}

	rounded := math.Round(value*100) / 100
	return strconv.FormatFloat(rounded, 'f', -1, 64) + " " + units[i]
}

// ParseFileSize parses strings like "10MB", "1.5 kb" or "2048" into bytes.
// A bare number is taken as bytes.
func ParseFileSize(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty size")
	}

	split := len(s)
	for i, r := range s {
		if (r < '0' || r > '9') && r != '.' {
			split = i
			break
		}
	}

	num, unit := s[:split], strings.ToUpper(strings.TrimSpace(s[split:]))
	value, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid size %q", s)
	}

	var mult float64
	switch unit {
	case "", "B", "BYTE", "BYTES":
		mult = 1
	case "K", "KB", "KIB":
		mult = step
	case "M", "MB", "MIB":
		mult = step * step
	case "G", "GB", "GIB":
		mult = step * step * step
	default:
		return 0, fmt.Errorf("invalid size unit %q", unit)
	}

	return int64(value * mult), nil
}
