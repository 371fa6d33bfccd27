package generator

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func positiveKeys(t *testing.T, numKeys int) []int64 {
	t.Helper()
	keys := make([]int64, numKeys)
	require.NoError(t, GenerateKeys(Unique, keys, WithSeed(testSeed)))
	return keys
}

func missFraction(keys []int64) float64 {
	misses := 0
	for _, eachKey := range keys {
		if eachKey >= int64(len(keys))+2 {
			misses++
		}
	}
	return float64(misses) / float64(len(keys))
}

func TestProbeMatchingRate(t *testing.T) {
	const numKeys = 100000
	for _, eachRate := range []float64{0.0, 0.25, 0.5, 0.9, 1.0} {
		keys := positiveKeys(t, numKeys)
		require.NoError(t, GenerateProbeKeys(eachRate, keys, WithSeed(testSeed+1)))
		require.Len(t, keys, numKeys)
		assert.InDelta(t, 1-eachRate, missFraction(keys), 0.01, "rate %.2f", eachRate)
	}
}

func TestProbeKeepsMatchesAndReplacesOutsideRange(t *testing.T) {
	const numKeys = 10000
	original := positiveKeys(t, numKeys)
	keys := slices.Clone(original)
	require.NoError(t, GenerateProbeKeys(0.5, keys, WithSeed(testSeed+2)))

	seen := make(map[int64]bool, numKeys)
	for _, eachKey := range keys {
		if eachKey < int64(numKeys)+2 {
			// A kept key comes from the original set exactly once.
			require.GreaterOrEqual(t, eachKey, int64(2))
			require.False(t, seen[eachKey], "duplicate kept key %d", eachKey)
			seen[eachKey] = true
			continue
		}
		require.LessOrEqual(t, eachKey, maxKey[int64]()-2)
	}
}

func TestProbeFullRateIsShuffle(t *testing.T) {
	original := positiveKeys(t, 5000)
	keys := slices.Clone(original)
	require.NoError(t, GenerateProbeKeys(1.0, keys, WithSeed(testSeed+3)))
	assert.NotEqual(t, original, keys)

	slices.Sort(original)
	slices.Sort(keys)
	assert.Equal(t, original, keys)
}

func TestProbeNegativeRateReplacesEverything(t *testing.T) {
	keys := make([]uint32, 2000)
	require.NoError(t, GenerateProbeKeys(-1, keys, WithSeed(testSeed)))
	for _, eachKey := range keys {
		require.GreaterOrEqual(t, eachKey, uint32(2002))
		require.LessOrEqual(t, eachKey, maxKey[uint32]()-2)
	}
}

func TestProbeKeySpaceExhausted(t *testing.T) {
	keys := make([]int8, 200)
	for i := range keys {
		keys[i] = 5
	}
	err := GenerateProbeKeys(0.5, keys)
	require.ErrorIs(t, err, ErrKeySpaceExhausted)
	for _, eachKey := range keys {
		require.Equal(t, int8(5), eachKey)
	}
}

func TestProbeEmptyNoOp(t *testing.T) {
	require.NoError(t, GenerateProbeKeys[int64](0.5, nil))
	require.NoError(t, GenerateProbeKeys(0.5, []int8{}))
}
