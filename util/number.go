package util

import (
	"strconv"
	"strings"
	"unicode"
)

// IsNumber returns true for plain decimal numbers like "12", "-3" or "0.5". Values with units or other text ("12 ft",
// "approx. 5") are not considered numbers.
func IsNumber(s string) bool {
	containsDecimalPoint := false
	containsDigit := false

	if len(s) == 0 {
		return false
	}

	for i, c := range s {
		if c == '-' && i != 0 {
			// A dash is only allowed at the beginning
			return false
		} else if c == '.' {
			if containsDecimalPoint {
				return false
			}
			containsDecimalPoint = true
		} else if unicode.IsDigit(c) {
			containsDigit = true
		} else if c != '-' {
			return false
		}
	}

	return containsDigit
}

// ParseNumber returns the numerical value of s and true when s is a plain number according to IsNumber. Surrounding
// whitespace is ignored.
func ParseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if !IsNumber(s) {
		return 0, false
	}

	number, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return number, true
}
