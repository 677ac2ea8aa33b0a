package recurrence

import (
	"errors"
	"sort"
)

// ErrEmptySample is returned when there is nothing to average.
var ErrEmptySample = errors.New("empty sample")

const (
	// Below this many values quartiles are meaningless and the trimmed mean
	// is used instead.
	minIQRSample = 4
	fenceFactor  = 1.5
	trimDivisor  = 5
)

// RobustAverage returns a typical value for a gap sample that tolerates a
// stray outlier. Samples under four values use TrimmedMean. Larger samples
// drop values outside the 1.5*IQR fences and average the rest, falling back to
// the plain mean when the IQR collapses and to TrimmedMean when the fences
// reject everything.
func RobustAverage(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, ErrEmptySample
	}
	sorted := sortedCopy(values)
	if len(sorted) < minIQRSample {
		return trimmedMeanSorted(sorted), nil
	}

	q1, q3 := quartiles(sorted)
	iqr := q3 - q1
	if iqr <= 0 {
		return mean(sorted), nil
	}

	lower := q1 - fenceFactor*iqr
	upper := q3 + fenceFactor*iqr
	kept := make([]float64, 0, len(sorted))
	for _, v := range sorted {
		if v >= lower && v <= upper {
			kept = append(kept, v)
		}
	}
	if len(kept) == 0 {
		return trimmedMeanSorted(sorted), nil
	}
	return mean(kept), nil
}

// TrimmedMean drops max(1, n/5) values from each end of the sorted sample and
// averages what is left. At least one value always survives the trim.
func TrimmedMean(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, ErrEmptySample
	}
	return trimmedMeanSorted(sortedCopy(values)), nil
}

func trimmedMeanSorted(sorted []float64) float64 {
	n := len(sorted)
	trim := max(1, n/trimDivisor)
	start := min(trim, max(0, n-1))
	end := max(start+1, n-trim)
	return mean(sorted[start:end])
}

// quartiles returns the medians of the lower and upper halves. For an odd
// count the middle value belongs to neither half.
func quartiles(sorted []float64) (q1, q3 float64) {
	n := len(sorted)
	mid := n / 2
	lowerHalf := sorted[:mid]
	upperHalf := sorted[mid:]
	if n%2 == 1 {
		upperHalf = sorted[mid+1:]
	}
	return median(lowerHalf), median(upperHalf)
}

func median(sorted []float64) float64 {
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

func mean(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func sortedCopy(values []float64) []float64 {
	out := make([]float64, len(values))
	copy(out, values)
	sort.Float64s(out)
	return out
}
