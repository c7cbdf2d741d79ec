// Package timeutil parses human-friendly chart windows.
package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	windowPattern = regexp.MustCompile(`^\s*(\d+)\s*([a-z]+)`)
	unitMap       = map[string]time.Duration{
		"d":      24 * time.Hour,
		"day":    24 * time.Hour,
		"days":   24 * time.Hour,
		"w":      7 * 24 * time.Hour,
		"wk":     7 * 24 * time.Hour,
		"week":   7 * 24 * time.Hour,
		"weeks":  7 * 24 * time.Hour,
		"m":      30 * 24 * time.Hour,
		"month":  30 * 24 * time.Hour,
		"months": 30 * 24 * time.Hour,
		"y":      365 * 24 * time.Hour,
		"year":   365 * 24 * time.Hour,
		"years":  365 * 24 * time.Hour,
	}
)

// ParseWindow parses a duration string like "2w" or "1m2w" into a duration.
// Months and years are fixed 30- and 365-day spans; a chart window does not
// need calendar arithmetic.
func ParseWindow(input string) (time.Duration, error) {
	remaining := strings.ToLower(strings.TrimSpace(input))
	if remaining == "" {
		return 0, fmt.Errorf("timeutil: empty window")
	}
	total := time.Duration(0)
	for len(remaining) > 0 {
		matches := windowPattern.FindStringSubmatch(remaining)
		if len(matches) != 3 {
			return 0, fmt.Errorf("timeutil: invalid window segment %q", strings.TrimSpace(remaining))
		}
		n, err := strconv.Atoi(matches[1])
		if err != nil {
			return 0, fmt.Errorf("timeutil: invalid count %q", matches[1])
		}
		unit, ok := unitMap[matches[2]]
		if !ok {
			return 0, fmt.Errorf("timeutil: unknown unit %q", matches[2])
		}
		total += time.Duration(n) * unit
		remaining = strings.TrimSpace(remaining[len(matches[0]):])
	}
	return total, nil
}

// Cutoff returns the earliest ISO date still inside the window ending at now.
func Cutoff(now time.Time, window string) (string, error) {
	d, err := ParseWindow(window)
	if err != nil {
		return "", err
	}
	return now.Add(-d).Format("2006-01-02"), nil
}
