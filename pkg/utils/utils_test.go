package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseFloatOrZero(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
	}{
		{"12.345", 12.345},
		{" 3 ", 3},
		{"", 0},
		{"abc", 0},
		{"NaN", 0},
		{"+Inf", 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseFloatOrZero(tt.input))
		})
	}
}

func TestParseIntOrZero(t *testing.T) {
	assert.Equal(t, int64(1500), ParseIntOrZero("1500"))
	assert.Equal(t, int64(12), ParseIntOrZero("12.7"))
	assert.Equal(t, int64(0), ParseIntOrZero("n/a"))
}

func TestDaysAgo(t *testing.T) {
	now := time.Date(2024, 3, 10, 15, 30, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC), DaysAgo(now, 1))
	assert.Equal(t, time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC), DaysAgo(now, 6))
}

func TestGenerateID(t *testing.T) {
	id, err := GenerateID()

	assert.NoError(t, err)
	assert.Len(t, id, 8)
	assert.Regexp(t, `^[a-z0-9]+$`, id)
}
