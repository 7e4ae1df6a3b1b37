package service

import (
	"fmt"
	"strconv"
	"strings"
)

// ApplyAmountInput interprets a user text message as an amount operation and
// returns the new amount. Supported forms: "+N" adds, "×N" or "*N"
// multiplies, "/N" or "÷N" divides, "reset" restores 1.0, anything else is
// parsed as an absolute amount (comma accepted as decimal separator).
func ApplyAmountInput(current float64, text string) (float64, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, fmt.Errorf("empty amount input")
	}

	if strings.EqualFold(text, "reset") {
		return 1.0, nil
	}

	switch {
	case strings.HasPrefix(text, "+"):
		delta, err := parseNumber(text[1:])
		if err != nil {
			return 0, err
		}
		return current + delta, nil

	case strings.HasPrefix(text, "×"), strings.HasPrefix(text, "*"):
		factor, err := parseNumber(strings.TrimPrefix(strings.TrimPrefix(text, "×"), "*"))
		if err != nil {
			return 0, err
		}
		return current * factor, nil

	case strings.HasPrefix(text, "/"), strings.HasPrefix(text, "÷"):
		divisor, err := parseNumber(strings.TrimPrefix(strings.TrimPrefix(text, "/"), "÷"))
		if err != nil {
			return 0, err
		}
		return current / divisor, nil
	}

	return parseNumber(text)
}

func parseNumber(s string) (float64, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q: %w", s, err)
	}
	return v, nil
}
