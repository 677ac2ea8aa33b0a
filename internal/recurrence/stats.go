package recurrence

import (
	"fmt"
	"time"

	"github.com/vytor/lotto/internal/models"
)

// Compute derives the statistics for every in-range number drawn at least
// once. Numbers seen once get a count and a last-seen date only.
func Compute(draws []models.Draw) (map[int]models.NumberStat, error) {
	counts := Frequencies(draws)
	index, err := Appearances(draws)
	if err != nil {
		return nil, err
	}

	stats := make(map[int]models.NumberStat, len(index))
	for _, n := range SortedNumbers(index) {
		dates := index[n]
		last := dates[len(dates)-1]
		stat := models.NumberStat{
			Number:   n,
			Count:    counts[n],
			LastSeen: &last,
		}

		gaps, err := Gaps(dates)
		if err != nil {
			return nil, fmt.Errorf("number %d: %w", n, err)
		}
		if len(gaps) > 0 {
			avg, err := RobustAverage(gaps)
			if err != nil {
				return nil, fmt.Errorf("number %d: %w", n, err)
			}
			next := nextDate(last, avg)
			stat.GapsDays = gaps
			stat.AverageGapDays = &avg
			stat.PredictedNext = &next
		}
		stats[n] = stat
	}
	return stats, nil
}

// Predict maps each number that has both an average gap and a last-seen date
// to lastSeen + round(average) days. Other numbers are left out.
func Predict(stats map[int]models.NumberStat) map[int]time.Time {
	predictions := make(map[int]time.Time, len(stats))
	for n, s := range stats {
		if !InRange(n) || s.AverageGapDays == nil || s.LastSeen == nil {
			continue
		}
		predictions[n] = nextDate(*s.LastSeen, *s.AverageGapDays)
	}
	return predictions
}

func nextDate(last time.Time, avgGapDays float64) time.Time {
	return AddDays(last, RoundDays(avgGapDays))
}
