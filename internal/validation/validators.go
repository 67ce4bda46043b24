package validation

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"
)

var (
	ErrEmptyField      = errors.New("field can not be empty")
	ErrNonLatinName    = errors.New("name should contain only latin letters")
	ErrWrongLength     = errors.New("license number must contain 7 digits")
	ErrInvalidChecksum = errors.New("invalid checksum")
	ErrInvalidFormat   = errors.New("invalid format")
	ErrDateInPast      = errors.New("date must not be in the past")
)

// peselWeights is the fixed PESEL digit weight table.
var peselWeights = [11]int{1, 3, 7, 9, 1, 3, 7, 9, 1, 3, 1}

var phonePattern = regexp.MustCompile(`^\+?1?\d{9,11}$`)

// ValidatePersonName accepts a single latin-alphabet word. Whitespace inside
// the name is rejected as well, so multi-word names do not pass; the legacy
// registration form behaves the same way and the rule is kept as is.
func ValidatePersonName(name string) (string, error) {
	if len(strings.TrimSpace(name)) == 0 {
		return "", ErrEmptyField
	}
	for _, r := range name {
		if unicode.IsSpace(r) || !isLatinLetter(r) {
			return "", ErrNonLatinName
		}
	}
	return name, nil
}

func isLatinLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// ValidateLicenseNumber validates a PWZ doctor license number: 7 decimal
// digits, no leading zero, with the check digit in front. The checksum is
// sum(i * digit_i) mod 11 over digits 1..6 with weights 1..6, which must
// equal digit 0.
func ValidateLicenseNumber(raw string) (int, error) {
	if len(raw) == 0 || strings.HasPrefix(raw, "0") {
		return 0, ErrWrongLength
	}
	digits, err := digitsOf(raw)
	if err != nil || len(digits) != 7 {
		return 0, ErrWrongLength
	}

	sum := 0
	for i, d := range digits[1:] {
		sum += (i + 1) * d
	}
	if sum%11 != digits[0] {
		return 0, ErrInvalidChecksum
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, ErrWrongLength
	}
	return value, nil
}

// ValidateNationalID validates a PESEL national identification number:
// exactly 11 decimal digits whose weighted digit sum is divisible by 10.
func ValidateNationalID(raw string) (string, error) {
	digits, err := digitsOf(raw)
	if err != nil || len(digits) != 11 {
		return "", ErrInvalidFormat
	}

	sum := 0
	for i, d := range digits {
		sum += d * peselWeights[i]
	}
	if sum%10 != 0 {
		return "", ErrInvalidChecksum
	}
	return raw, nil
}

// ValidatePhoneNumber accepts an optional leading "+", an optional literal
// "1", then 9 to 11 digits.
func ValidatePhoneNumber(raw string) (string, error) {
	if !phonePattern.MatchString(raw) {
		return "", ErrInvalidFormat
	}
	return raw, nil
}

// ValidateFutureDate rejects calendar dates strictly before today. Today
// itself is allowed; the hour is not considered here.
func ValidateFutureDate(d, now time.Time) (time.Time, error) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	day := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, now.Location())
	if day.Before(today) {
		return time.Time{}, ErrDateInPast
	}
	return d, nil
}

func digitsOf(s string) ([]int, error) {
	digits := make([]int, 0, len(s))
	for _, r := range s {
		if r < '0' || r > '9' {
			return nil, ErrInvalidFormat
		}
		digits = append(digits, int(r-'0'))
	}
	return digits, nil
}
