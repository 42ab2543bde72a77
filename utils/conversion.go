package utils

import (
	"math"
	"strconv"
	"strings"
)

// NormalizeCount coerces a traveller count arriving from the search form
// into an int. The previous page may submit the value as a string, a number,
// or a one-element sequence of either; absence or a parse failure yields 0.
func NormalizeCount(raw interface{}) int {
	switch v := raw.(type) {
	case nil:
		return 0
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case string:
		return parseCount(v)
	case []string:
		if len(v) == 0 {
			return 0
		}
		return parseCount(v[0])
	case []interface{}:
		if len(v) == 0 {
			return 0
		}
		return NormalizeCount(v[0])
	default:
		return 0
	}
}

func parseCount(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// RoundFare rounds a fare amount to two decimal places.
func RoundFare(amount float64) float64 {
	return math.Round(amount*100) / 100
}
