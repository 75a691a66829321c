package validate

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
)

var (
	ErrBudgetNotNumeric  = errors.New("budget must be a number")
	ErrBudgetNotPositive = errors.New("budget must be greater than zero")
)

// Accepts "12", "12.5", "12,50". At most two fractional digits.
var budgetRe = regexp.MustCompile(`^\d+([.,]\d{1,2})?$`)

// ParseBudgetCents converts a user-typed currency amount to integer cents.
func ParseBudgetCents(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if !budgetRe.MatchString(s) {
		return 0, ErrBudgetNotNumeric
	}
	s = strings.Replace(s, ",", ".", 1)

	whole, frac, _ := strings.Cut(s, ".")
	for len(frac) < 2 {
		frac += "0"
	}
	cents, err := strconv.ParseInt(whole+frac, 10, 64)
	if err != nil {
		return 0, ErrBudgetNotNumeric
	}
	if cents <= 0 {
		return 0, ErrBudgetNotPositive
	}
	return cents, nil
}
