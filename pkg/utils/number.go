package utils

import (
	"math"
	"strconv"
	"strings"
)

// ParseFloatOrZero converte valores numéricos enviados como texto; ausentes ou inválidos viram zero
func ParseFloatOrZero(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}

	return f
}

// ParseIntOrZero converte contadores enviados como texto; ausentes ou inválidos viram zero
func ParseIntOrZero(s string) int64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	i, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return int64(ParseFloatOrZero(s))
	}

	return i
}
