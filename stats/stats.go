package stats

import (
	"sort"

	"golang.org/x/exp/constraints"
	gonumstat "gonum.org/v1/gonum/stat"
)

type Percentile struct {
	P   float64
	Val float64
}

type AggregatedStatistics struct {
	Count       int
	Mean        float64
	Median      float64
	StdDev      float64
	Min         float64
	Max         float64
	Percentiles []Percentile
}

// StatsForSequence summarizes samples. Percentiles above 1 are treated as
// percentages, so 99 and 0.99 are equivalent.
func StatsForSequence(unsortedSamples []float64, percentiles []float64) *AggregatedStatistics {
	aggStats := &AggregatedStatistics{
		Count:       len(unsortedSamples),
		Percentiles: make([]Percentile, len(percentiles)),
	}
	for eachPercentileIndex := range percentiles {
		aggStats.Percentiles[eachPercentileIndex].P = percentiles[eachPercentileIndex]
	}
	if len(unsortedSamples) == 0 {
		return aggStats
	}
	sortedSamples := make([]float64, len(unsortedSamples))
	copy(sortedSamples, unsortedSamples)
	sort.Float64s(sortedSamples)

	// Compute aggregates...
	aggStats.Mean, aggStats.StdDev = gonumstat.MeanStdDev(sortedSamples, nil)
	aggStats.Median = gonumstat.Quantile(0.5, gonumstat.Empirical, sortedSamples, nil)
	aggStats.Min = sortedSamples[0]
	aggStats.Max = sortedSamples[len(sortedSamples)-1]

	for eachPercentileIndex := range percentiles {
		percentileValue := percentiles[eachPercentileIndex]
		if percentileValue > 1.00 {
			percentileValue = percentileValue / 100
		}
		aggStats.Percentiles[eachPercentileIndex].Val = gonumstat.Quantile(percentileValue,
			gonumstat.Empirical,
			sortedSamples,
			nil)
	}
	return aggStats
}

// KeysAsFloats converts keys to the float64 samples gonum works on.
func KeysAsFloats[K constraints.Integer](keys []K) []float64 {
	samples := make([]float64, len(keys))
	for i, eachKey := range keys {
		samples[i] = float64(eachKey)
	}
	return samples
}

func StatsForKeys[K constraints.Integer](keys []K, percentiles []float64) *AggregatedStatistics {
	return StatsForSequence(KeysAsFloats(keys), percentiles)
}

// FractionOutside returns the share of keys outside [lo, hi). For a probe set
// built over N positive keys this is its miss rate.
func FractionOutside[K constraints.Integer](keys []K, lo int64, hi int64) float64 {
	if len(keys) == 0 {
		return 0
	}
	outside := 0
	for _, eachKey := range keys {
		if !inRange(eachKey, lo, hi) {
			outside++
		}
	}
	return float64(outside) / float64(len(keys))
}

func inRange[K constraints.Integer](key K, lo int64, hi int64) bool {
	if key < 0 {
		return int64(key) >= lo && int64(key) < hi
	}
	// Non-negative keys may exceed MaxInt64 when K is uint64.
	value := uint64(key)
	return (lo < 0 || value >= uint64(lo)) && hi > 0 && value < uint64(hi)
}

func DistinctCount[K constraints.Integer](keys []K) int {
	seen := make(map[K]struct{}, len(keys))
	for _, eachKey := range keys {
		seen[eachKey] = struct{}{}
	}
	return len(seen)
}
