package services

import (
	"fmt"
	"time"

	"github.com/vytor/lotto/internal/errors"
	"github.com/vytor/lotto/internal/recurrence"
)

// WeekNumber returns the ISO 8601 week of the calendar date.
func WeekNumber(t time.Time) int {
	_, week := recurrence.Day(t).ISOWeek()
	return week
}

func validateNumbers(field string, numbers []int) error {
	for i, n := range numbers {
		if !recurrence.InRange(n) {
			return errors.NewValidationError(
				fmt.Sprintf("%s[%d]", field, i+1),
				fmt.Sprintf("must be between %d and %d, got %d", recurrence.MinNumber, recurrence.MaxNumber, n),
			)
		}
	}
	return nil
}

func validateDate(field string, t time.Time) error {
	if t.IsZero() {
		return errors.NewValidationError(field, "date is required")
	}
	return nil
}
