package recurrence

import (
	"sort"

	"github.com/vytor/lotto/internal/models"
)

// Valid number range. Anything outside it is ignored by every stage.
const (
	MinNumber = 1
	MaxNumber = 34
)

// InRange reports whether n is a countable lottery number.
func InRange(n int) bool {
	return n >= MinNumber && n <= MaxNumber
}

// Frequencies counts how often each in-range number appears across all draws.
// All eight slots count, the extra number included.
func Frequencies(draws []models.Draw) map[int]int {
	counts := make(map[int]int)
	for _, d := range draws {
		for _, n := range d.Numbers {
			if InRange(n) {
				counts[n]++
			}
		}
	}
	return counts
}

// RankByFrequency orders a frequency map by count descending, then by number.
func RankByFrequency(counts map[int]int) []models.FrequencyStat {
	ranked := make([]models.FrequencyStat, 0, len(counts))
	for n, c := range counts {
		ranked = append(ranked, models.FrequencyStat{Number: n, Count: c})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count == ranked[j].Count {
			return ranked[i].Number < ranked[j].Number
		}
		return ranked[i].Count > ranked[j].Count
	})
	return ranked
}

// SortedNumbers returns the keys of a number-keyed map in ascending order.
func SortedNumbers[V any](m map[int]V) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
