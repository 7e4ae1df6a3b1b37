package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvert(t *testing.T) {
	tests := []struct {
		name     string
		rates    map[string]float64
		base     string
		amount   float64
		targets  []string
		expected map[string]float64
	}{
		{
			name:     "base converts to itself",
			rates:    map[string]float64{"USD": 80.0, "RUB": 1.0},
			base:     "USD",
			amount:   42.5,
			targets:  []string{"USD"},
			expected: map[string]float64{"USD": 42.5},
		},
		{
			name:     "multiple targets",
			rates:    map[string]float64{"USD": 1, "EUR": 0.9, "RUB": 90},
			base:     "USD",
			amount:   10,
			targets:  []string{"USD", "EUR", "RUB"},
			expected: map[string]float64{"USD": 10, "EUR": 9, "RUB": 900},
		},
		{
			name:     "missing target skipped",
			rates:    map[string]float64{"USD": 1, "RUB": 90},
			base:     "USD",
			amount:   1,
			targets:  []string{"USD", "EUR", "RUB"},
			expected: map[string]float64{"USD": 1, "RUB": 90},
		},
		{
			name:     "missing base yields empty result",
			rates:    map[string]float64{"RUB": 1.0},
			base:     "USD",
			amount:   1,
			targets:  []string{"RUB"},
			expected: map[string]float64{},
		},
		{
			name:     "no targets",
			rates:    map[string]float64{"USD": 1},
			base:     "USD",
			amount:   1,
			targets:  nil,
			expected: map[string]float64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Convert(tt.rates, tt.base, tt.amount, tt.targets)

			assert.Len(t, result, len(tt.expected))
			for code, expected := range tt.expected {
				assert.InDelta(t, expected, result[code], 1e-9, "currency %s", code)
			}
		})
	}
}

func TestConvert_PairRatio(t *testing.T) {
	rates := map[string]float64{"USD": 84.2, "EUR": 91.7, "RUB": 1.0}

	result := Convert(rates, "USD", 1.0, []string{"EUR"})
	assert.InDelta(t, rates["USD"]/rates["EUR"], result["EUR"], 1e-9)
}

func TestConvert_RoundTrip(t *testing.T) {
	rates := map[string]float64{"USD": 84.2, "EUR": 91.7, "RUB": 1.0}
	amount := 1234.56

	forward := Convert(rates, "USD", amount, []string{"EUR"})
	back := Convert(rates, "EUR", forward["EUR"], []string{"USD"})

	assert.InDelta(t, amount, back["USD"], 1e-6)
}

func TestConvert_ZeroRatePropagatesInf(t *testing.T) {
	rates := map[string]float64{"USD": 1.0, "BAD": 0.0}

	result := Convert(rates, "USD", 5, []string{"BAD"})

	// Non-finite values are handled by the formatter, not here
	assert.Contains(t, result, "BAD")
	assert.True(t, result["BAD"] > 1e308 || result["BAD"] != result["BAD"])
}
