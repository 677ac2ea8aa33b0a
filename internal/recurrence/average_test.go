package recurrence_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/lotto/internal/recurrence"
)

func TestTrimmedMean_IgnoresSingleOutlier(t *testing.T) {
	avg, err := recurrence.TrimmedMean([]float64{1, 1, 1, 1, 100})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, avg, 1e-9, "outlier should be trimmed, plain mean would be 20.8")
}

func TestTrimmedMean_SmallSamples(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		expected float64
	}{
		{name: "single value survives the trim", values: []float64{9}, expected: 9},
		{name: "two values keep the upper one", values: []float64{14, 7}, expected: 14},
		{name: "three values keep the middle one", values: []float64{21, 7, 8}, expected: 8},
		{name: "ten values trim two from each end", values: []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 100}, expected: 5.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			avg, err := recurrence.TrimmedMean(tt.values)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, avg, 1e-9)
		})
	}
}

func TestTrimmedMean_DoesNotMutateInput(t *testing.T) {
	values := []float64{5, 1, 3}
	_, err := recurrence.TrimmedMean(values)
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 1, 3}, values)
}

func TestRobustAverage_IdenticalValuesUsePlainMean(t *testing.T) {
	avg, err := recurrence.RobustAverage([]float64{7, 7, 7, 7, 7})
	require.NoError(t, err)
	assert.Equal(t, 7.0, avg)
}

func TestRobustAverage_ZeroGapsAreValid(t *testing.T) {
	avg, err := recurrence.RobustAverage([]float64{0, 0, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, 0.0, avg)
}

func TestRobustAverage_IQRDropsOutlier(t *testing.T) {
	// Q1=7, Q3=8, fences [5.5, 9.5]: 60 is dropped.
	avg, err := recurrence.RobustAverage([]float64{7, 8, 7, 60, 8, 7, 8, 7})
	require.NoError(t, err)
	assert.InDelta(t, 52.0/7.0, avg, 1e-9)
}

func TestRobustAverage_IQRKeepsValuesInsideFences(t *testing.T) {
	// Odd count: median 7 is excluded from both halves. Q1=6.5, Q3=7.5.
	avg, err := recurrence.RobustAverage([]float64{6, 7, 7, 8, 7})
	require.NoError(t, err)
	assert.InDelta(t, 7.0, avg, 1e-9)
}

func TestRobustAverage_WideSpreadStillAveragesWithinFences(t *testing.T) {
	// With five points the fences are wide enough to keep 100.
	avg, err := recurrence.RobustAverage([]float64{1, 1, 1, 1, 100})
	require.NoError(t, err)
	assert.InDelta(t, 20.8, avg, 1e-9)
}

func TestRobustAverage_SmallSampleUsesTrim(t *testing.T) {
	avg, err := recurrence.RobustAverage([]float64{7, 70, 8})
	require.NoError(t, err)
	assert.Equal(t, 8.0, avg)
}

func TestRobustAverage_EmptySample(t *testing.T) {
	_, err := recurrence.RobustAverage(nil)
	assert.ErrorIs(t, err, recurrence.ErrEmptySample)

	_, err = recurrence.TrimmedMean([]float64{})
	assert.ErrorIs(t, err, recurrence.ErrEmptySample)
}

func TestRobustAverage_NeverNegativeForNonNegativeGaps(t *testing.T) {
	samples := [][]float64{
		{0},
		{0, 35},
		{7, 7, 14, 0, 21},
		{3, 4, 5, 6, 7, 8, 90, 0, 1},
	}
	for _, s := range samples {
		avg, err := recurrence.RobustAverage(s)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, avg, 0.0)
	}
}
