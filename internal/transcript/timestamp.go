package transcript

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatTimestamp converts seconds to HH:MM:SS, truncating fractions.
func FormatTimestamp(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	total := int(seconds)
	hours := total / 3600
	minutes := (total % 3600) / 60
	secs := total % 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, secs)
}

// ParseTimestamp converts a colon-delimited timestamp to seconds. It accepts
// HH:MM:SS, MM:SS, and bare seconds; the last field may carry a fraction.
func ParseTimestamp(ts string) (float64, error) {
	parts := strings.Split(strings.TrimSpace(ts), ":")

	switch len(parts) {
	case 3:
		h, err := strconv.Atoi(parts[0])
		if err != nil {
			return 0, fmt.Errorf("parse timestamp %q: %w", ts, err)
		}
		m, err := strconv.Atoi(parts[1])
		if err != nil {
			return 0, fmt.Errorf("parse timestamp %q: %w", ts, err)
		}
		s, err := strconv.ParseFloat(parts[2], 64)
		if err != nil {
			return 0, fmt.Errorf("parse timestamp %q: %w", ts, err)
		}
		return float64(h)*3600 + float64(m)*60 + s, nil
	case 2:
		m, err := strconv.Atoi(parts[0])
		if err != nil {
			return 0, fmt.Errorf("parse timestamp %q: %w", ts, err)
		}
		s, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return 0, fmt.Errorf("parse timestamp %q: %w", ts, err)
		}
		return float64(m)*60 + s, nil
	case 1:
		s, err := strconv.ParseFloat(parts[0], 64)
		if err != nil {
			return 0, fmt.Errorf("parse timestamp %q: %w", ts, err)
		}
		return s, nil
	default:
		return 0, fmt.Errorf("parse timestamp %q: too many fields", ts)
	}
}
