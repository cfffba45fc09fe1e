package utils

import "strconv"

// ParseFloatQuery parses a query string value as float64, returning a default
// for empty or malformed input. A zero value also falls back to the default,
// matching the upstream services' treatment of unset coordinates.
func ParseFloatQuery(value string, defaultValue float64) float64 {
	if value == "" {
		return defaultValue
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil || f == 0 {
		return defaultValue
	}
	return f
}

// ParseIntQuery parses a query string value as int with a default.
func ParseIntQuery(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

// ClampInt clamps n into the inclusive range [min, max].
func ClampInt(n, min, max int) int {
	if n < min {
		return min
	}
	if n > max {
		return max
	}
	return n
}

// TruncateString truncates s to at most n bytes.
func TruncateString(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
