package protocol

import (
	"math"
	"strconv"
	"strings"
)

// ParseParams converts key=value pairs into an effect parameter map.
// Values are typed: true/false become booleans, base-10 integers become
// int64, finite floats become float64, and anything else stays a string.
// A key given twice keeps its last value.
func ParseParams(pairs []string) (map[string]any, error) {
	params := make(map[string]any, len(pairs))
	for _, raw := range pairs {
		key, value, ok := strings.Cut(raw, "=")
		if !ok {
			return nil, invalidParam(raw, "expected key=value")
		}
		key = strings.TrimSpace(key)
		if key == "" {
			return nil, invalidParam(raw, "key must not be empty")
		}
		params[key] = ParseValue(value)
	}
	return params, nil
}

// ParseValue infers the JSON type of a single parameter value.
func ParseValue(value string) any {
	switch {
	case strings.EqualFold(value, "true"):
		return true
	case strings.EqualFold(value, "false"):
		return false
	}

	if n, err := strconv.ParseInt(value, 10, 64); err == nil {
		return n
	}

	// ParseFloat accepts "inf" and "nan", which JSON cannot carry.
	if f, err := strconv.ParseFloat(value, 64); err == nil && !math.IsInf(f, 0) && !math.IsNaN(f) {
		return f
	}

	return value
}
