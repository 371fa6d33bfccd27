package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsForSequence(t *testing.T) {
	samples := []float64{5, 1, 4, 2, 3}
	aggStats := StatsForSequence(samples, []float64{50, 0.8})

	assert.Equal(t, 5, aggStats.Count)
	assert.InDelta(t, 3.0, aggStats.Mean, 1e-9)
	assert.InDelta(t, math.Sqrt(2.5), aggStats.StdDev, 1e-9)
	assert.Equal(t, 3.0, aggStats.Median)
	assert.Equal(t, 1.0, aggStats.Min)
	assert.Equal(t, 5.0, aggStats.Max)
	require.Len(t, aggStats.Percentiles, 2)
	assert.Equal(t, 50.0, aggStats.Percentiles[0].P)
	assert.Equal(t, 3.0, aggStats.Percentiles[0].Val)
	assert.Equal(t, 4.0, aggStats.Percentiles[1].Val)

	// The input is left unsorted.
	assert.Equal(t, []float64{5, 1, 4, 2, 3}, samples)
}

func TestStatsForEmptySequence(t *testing.T) {
	aggStats := StatsForSequence(nil, []float64{99})
	assert.Equal(t, 0, aggStats.Count)
	assert.Equal(t, 0.0, aggStats.Mean)
	require.Len(t, aggStats.Percentiles, 1)
	assert.Equal(t, 99.0, aggStats.Percentiles[0].P)
}

func TestStatsForKeys(t *testing.T) {
	aggStats := StatsForKeys([]int32{-2, 0, 2}, nil)
	assert.Equal(t, 0.0, aggStats.Mean)
	assert.Equal(t, -2.0, aggStats.Min)
	assert.Equal(t, 2.0, aggStats.Max)
}

func TestFractionOutside(t *testing.T) {
	assert.Equal(t, 0.0, FractionOutside([]int64{}, 0, 10))
	assert.Equal(t, 0.5, FractionOutside([]int64{-1, 3, 9, 10}, 0, 10))
	assert.Equal(t, 0.25, FractionOutside([]uint64{math.MaxUint64, 1, 2, 3}, 0, 10))
	assert.Equal(t, 1.0, FractionOutside([]uint8{1, 2}, 5, 10))
}

func TestDistinctCount(t *testing.T) {
	assert.Equal(t, 0, DistinctCount([]int64{}))
	assert.Equal(t, 3, DistinctCount([]int64{1, 1, 2, 3, 3, 3}))
}
