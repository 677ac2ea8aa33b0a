package matching

import (
	"sort"

	"github.com/vytor/lotto/internal/models"
)

// Compare checks every row against the winning draw. Main numbers are matched
// against slots 1-7; the extra number counts separately when the row holds it.
// Results are ordered by match count, best first, keeping row order on ties.
func Compare(rows []models.Row, draw models.Draw) []models.RowComparison {
	winning := make(map[int]bool, models.RowSize)
	for _, n := range draw.MainNumbers() {
		winning[n] = true
	}
	extra := draw.ExtraNumber()

	out := make([]models.RowComparison, 0, len(rows))
	for _, row := range rows {
		matched := []int{}
		seen := make(map[int]bool, models.RowSize)
		var matchedExtra *int
		for _, n := range row.Numbers {
			if seen[n] {
				continue
			}
			seen[n] = true
			if winning[n] {
				matched = append(matched, n)
			}
			if n == extra && matchedExtra == nil {
				e := extra
				matchedExtra = &e
			}
		}
		sort.Ints(matched)
		out = append(out, models.RowComparison{
			Row:                row,
			Draw:               draw,
			MatchedNumbers:     matched,
			MatchedExtraNumber: matchedExtra,
			MatchCount:         len(matched),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].MatchCount > out[j].MatchCount
	})
	return out
}
