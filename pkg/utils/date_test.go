package utils

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestExpandShortYear(t *testing.T) {
	assert.Equal(t, 2025, ExpandShortYear(25))
	assert.Equal(t, 2000, ExpandShortYear(0))
	assert.Equal(t, 2099, ExpandShortYear(99))

	// Todo ano curto cai no século 2000.
	for yy := 0; yy <= 99; yy++ {
		assert.Equal(t, 2000+yy, ExpandShortYear(yy))
	}
}

func TestStartOfMonth(t *testing.T) {
	assert.Equal(t,
		time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		StartOfMonth(2025, time.January),
	)
	assert.Equal(t,
		time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC),
		StartOfMonth(2024, time.December),
	)
}

func TestEndOfMonth(t *testing.T) {
	tests := []struct {
		name     string
		year     int
		month    time.Month
		expected time.Time
	}{
		{
			name:     "Janeiro tem 31 dias",
			year:     2025,
			month:    time.January,
			expected: time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "Fevereiro em ano comum tem 28 dias",
			year:     2025,
			month:    time.February,
			expected: time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "Fevereiro em ano bissexto tem 29 dias",
			year:     2024,
			month:    time.February,
			expected: time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "Abril tem 30 dias",
			year:     2025,
			month:    time.April,
			expected: time.Date(2025, 4, 30, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "Dezembro não vaza para o ano seguinte",
			year:     2025,
			month:    time.December,
			expected: time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, EndOfMonth(tt.year, tt.month))
		})
	}
}

func TestEndOfMonth_AlwaysAfterStart(t *testing.T) {
	for year := 2020; year <= 2030; year++ {
		for month := time.January; month <= time.December; month++ {
			start := StartOfMonth(year, month)
			end := EndOfMonth(year, month)

			label := fmt.Sprintf("%04d-%02d", year, month)
			assert.True(t, end.After(start), label)
			assert.Equal(t, start.Month(), end.Month(), label)
			assert.Equal(t, start.Year(), end.Year(), label)
		}
	}
}
