package recurrence

import (
	"errors"
	"math"
	"time"
)

// ErrInvalidTolerance is returned for a negative or NaN tolerance.
var ErrInvalidTolerance = errors.New("tolerance must be a non-negative number of days")

// WithinTolerance returns, in ascending order, the numbers whose predicted
// date lies at most toleranceDays whole days from target. The bound is
// inclusive.
func WithinTolerance(predictions map[int]time.Time, target time.Time, toleranceDays float64) ([]int, error) {
	if math.IsNaN(toleranceDays) || toleranceDays < 0 {
		return nil, ErrInvalidTolerance
	}
	matches := []int{}
	for _, n := range SortedNumbers(predictions) {
		diff := math.Abs(float64(DaysBetween(predictions[n], target)))
		if diff <= toleranceDays {
			matches = append(matches, n)
		}
	}
	return matches, nil
}
