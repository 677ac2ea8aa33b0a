package recurrence

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/vytor/lotto/internal/models"
)

var (
	// ErrNegativeGap means appearance dates were not in chronological order.
	ErrNegativeGap = errors.New("negative gap between appearances")
	// ErrMissingDate means a draw carries the zero time instead of a date.
	ErrMissingDate = errors.New("draw has no date")
)

// Appearances indexes the calendar days on which each in-range number was
// drawn. Each slice is sorted ascending and keeps duplicate days.
func Appearances(draws []models.Draw) (map[int][]time.Time, error) {
	index := make(map[int][]time.Time)
	for i, d := range draws {
		if d.DrawDate.IsZero() {
			return nil, fmt.Errorf("draw %d (id=%d): %w", i, d.ID, ErrMissingDate)
		}
		date := Day(d.DrawDate)
		for _, n := range d.Numbers {
			if InRange(n) {
				index[n] = append(index[n], date)
			}
		}
	}
	for _, dates := range index {
		sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	}
	return index, nil
}

// Gaps returns the day differences between consecutive dates. The input must
// already be sorted; a date earlier than its predecessor is rejected.
func Gaps(dates []time.Time) ([]float64, error) {
	if len(dates) < 2 {
		return nil, nil
	}
	gaps := make([]float64, 0, len(dates)-1)
	for i := 1; i < len(dates); i++ {
		days := DaysBetween(dates[i-1], dates[i])
		if days < 0 {
			return nil, fmt.Errorf("%s after %s: %w",
				dates[i].Format(time.DateOnly), dates[i-1].Format(time.DateOnly), ErrNegativeGap)
		}
		gaps = append(gaps, float64(days))
	}
	return gaps, nil
}
