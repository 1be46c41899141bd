package services

import (
	"regexp"
	"strings"
	"time"

	"github.com/dmitrijs2005/ngoreports/internal/common"
)

var monthPattern = regexp.MustCompile(`^\d{4}-\d{2}$`)

// NormalizeMonth trims raw, removes any whitespace inside it, and checks the
// YYYY-MM shape. The month number itself is not range-checked; the server
// does that.
func NormalizeMonth(raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", common.NewValidationError(common.ErrEmptyMonth, "please enter a month")
	}

	cleaned := strings.Join(strings.Fields(raw), "")
	if !monthPattern.MatchString(cleaned) {
		return "", common.NewValidationError(common.ErrInvalidMonth,
			"invalid format, please use YYYY-MM (e.g. 2024-01), you entered: %q", raw)
	}
	return cleaned, nil
}

// CurrentMonth formats the clock's current month as YYYY-MM.
func CurrentMonth(now func() time.Time) string {
	return now().Format(common.MonthLayout)
}
