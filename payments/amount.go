package payments

import (
	"errors"
	"strconv"
	"strings"
)

// ErrInvalidAmount is returned when the submitted amount is missing,
// non-numeric or negative.
var ErrInvalidAmount = errors.New("invalid amount")

// ParseAmountPaise converts a JSON amount (string or number) in rupees to
// paise using fixed-point string arithmetic. Digits beyond two decimal
// places are truncated.
func ParseAmountPaise(v interface{}) (int64, error) {
	var s string
	switch amt := v.(type) {
	case string:
		s = strings.TrimSpace(amt)
	case float64:
		s = strconv.FormatFloat(amt, 'f', -1, 64)
	case int:
		s = strconv.Itoa(amt)
	case int64:
		s = strconv.FormatInt(amt, 10)
	default:
		return 0, ErrInvalidAmount
	}
	if s == "" || strings.HasPrefix(s, "-") {
		return 0, ErrInvalidAmount
	}

	whole, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		whole, frac = s[:i], s[i+1:]
	}
	if whole == "" && frac == "" {
		return 0, ErrInvalidAmount
	}
	// both parts must be plain digit runs; ParseInt alone would let a
	// stray sign inside the fraction through
	if !isDigits(whole) || !isDigits(frac) {
		return 0, ErrInvalidAmount
	}
	if whole == "" {
		whole = "0"
	}

	rupees, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}

	// truncate to two decimal places, pad if shorter
	if len(frac) > 2 {
		frac = frac[:2]
	}
	for len(frac) < 2 {
		frac += "0"
	}
	paise, err := strconv.ParseInt(frac, 10, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}

	return rupees*100 + paise, nil
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
