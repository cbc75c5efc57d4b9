package osmread

import (
	"strconv"
	"strings"
)

const mphToMs = 0.44704

// ParseLanes parses a lanes tag value. Returns -1 when the tag is empty
// or not a usable integer, which defers to the profile defaults.
func ParseLanes(v string) int {
	lanes, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return -1
	}
	return lanes
}

// ParseMaxSpeed parses a maxspeed tag value to m/s. Plain numbers are
// km/h; a "mph" suffix switches to miles per hour. Returns -1 when the
// tag is empty or not numeric, which defers to the profile defaults.
// Handles formats: "50", "50 km/h", "30 mph".
func ParseMaxSpeed(v string) float64 {
	v = strings.TrimSpace(v)
	if v == "" {
		return -1
	}

	value, ok := leadingFloat(v)
	if !ok {
		return -1
	}

	if strings.Contains(v, "mph") {
		return value * mphToMs
	}
	return value / 3.6
}

// leadingFloat parses the numeric prefix of s, so "50 km/h" yields 50
func leadingFloat(s string) (float64, bool) {
	end := 0
	for end < len(s) && (s[end] >= '0' && s[end] <= '9' || s[end] == '.') {
		end++
	}
	if end == 0 {
		return 0, false
	}
	value, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return 0, false
	}
	return value, true
}
