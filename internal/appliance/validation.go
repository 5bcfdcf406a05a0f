package appliance

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// MaxDailyHours is the upper bound for daily usage.
const MaxDailyHours = 24

// Messages printed when a registration prompt rejects its input.
const (
	PowerPromptError = "Invalid input! Power rating must be a positive number."
	HoursPromptError = "Invalid input! Hours must be between 0 and 24."
)

// ValidatePowerRating validates a power rating in watts.
// Valid ratings are finite and strictly positive.
func ValidatePowerRating(p float64) error {
	if !(p > 0) || math.IsInf(p, 1) {
		return NewOutOfRangeError(FieldPowerRating, fmt.Sprintf("power rating must be greater than 0, got %v", p))
	}
	return nil
}

// ValidateDailyHours validates daily usage hours.
// Valid range is 0-24 inclusive; NaN is rejected.
func ValidateDailyHours(h float64) error {
	if !(h >= 0 && h <= MaxDailyHours) {
		return NewOutOfRangeError(FieldDailyHours, fmt.Sprintf("daily hours must be between 0 and %d, got %v", MaxDailyHours, h))
	}
	return nil
}

// ParsePowerRating reads a power rating from the start of input and returns
// it with the unread rest of input. Leading whitespace is skipped and only the
// longest numeric prefix is consumed, so "100W" yields 100 with "W" left over.
// Both parse and range failures carry PowerPromptError as their message.
func ParsePowerRating(input string) (float64, string, error) {
	p, rest, err := parseNumber(FieldPowerRating, PowerPromptError, input)
	if err != nil {
		return 0, input, err
	}
	if ValidatePowerRating(p) != nil {
		return 0, input, NewOutOfRangeError(FieldPowerRating, PowerPromptError)
	}
	return p, rest, nil
}

// ParseDailyHours reads daily hours from the start of input the same way as
// ParsePowerRating. Failures carry HoursPromptError as their message.
func ParseDailyHours(input string) (float64, string, error) {
	h, rest, err := parseNumber(FieldDailyHours, HoursPromptError, input)
	if err != nil {
		return 0, input, err
	}
	if ValidateDailyHours(h) != nil {
		return 0, input, NewOutOfRangeError(FieldDailyHours, HoursPromptError)
	}
	return h, rest, nil
}

func parseNumber(field, message, input string) (float64, string, error) {
	v, rest, err := ScanNumber(strings.TrimLeftFunc(input, unicode.IsSpace))
	if err != nil {
		return 0, input, NewInvalidInputError(field, message, err)
	}
	return v, rest, nil
}

// ScanNumber parses the longest decimal number at the start of s: an optional
// sign, digits with an optional fraction, and an optional exponent. It returns
// the value and the unread rest of s. Overflow is an error.
func ScanNumber(s string) (float64, string, error) {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return 0, s, strconv.ErrSyntax
	}

	// An exponent counts only when at least one digit follows it.
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		k := j
		for k < len(s) && isDigit(s[k]) {
			k++
		}
		if k > j {
			i = k
		}
	}

	v, err := strconv.ParseFloat(s[:i], 64)
	if err != nil {
		return 0, s, err
	}
	return v, s[i:], nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
