package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Swim times are stored as integer centiseconds. "1:05.79" -> 6579.

// ParseClockTime parses "MM:SS.cc" or "SS.cc" into centiseconds.
func ParseClockTime(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty time")
	}

	var totalSeconds float64
	if i := strings.IndexByte(s, ':'); i >= 0 {
		minutes, err := strconv.Atoi(s[:i])
		if err != nil || minutes < 0 {
			return 0, fmt.Errorf("invalid minutes in %q", s)
		}
		seconds, err := strconv.ParseFloat(s[i+1:], 64)
		if err != nil || seconds < 0 || seconds >= 60 {
			return 0, fmt.Errorf("invalid seconds in %q", s)
		}
		totalSeconds = float64(minutes)*60 + seconds
	} else {
		seconds, err := strconv.ParseFloat(s, 64)
		if err != nil || seconds < 0 {
			return 0, fmt.Errorf("invalid time %q", s)
		}
		totalSeconds = seconds
	}

	return int(math.Round(totalSeconds * 100)), nil
}

// FormatCentiseconds renders centiseconds as "M:SS.cc", or "SS.cc" under a minute.
func FormatCentiseconds(cs int) string {
	minutes := cs / 6000
	rem := cs % 6000
	seconds := rem / 100
	hundredths := rem % 100
	if minutes > 0 {
		return fmt.Sprintf("%d:%02d.%02d", minutes, seconds, hundredths)
	}
	return fmt.Sprintf("%d.%02d", seconds, hundredths)
}
