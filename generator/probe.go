package generator

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// /////////////////////////////////////////////////////////////////////////////
//  ___         _
// | _ \_ _ ___| |__  ___
// |  _/ '_/ _ \ '_ \/ -_)
// |_| |_| \___/_.__/\___|
//
// /////////////////////////////////////////////////////////////////////////////

// GenerateProbeKeys turns a slice of matching keys into a probe set that hits
// with roughly matchingRate. Each position is kept when a uniform draw in
// [0, 1] is at most matchingRate. Otherwise it is replaced with a key from
// [N+2, max-2], a range disjoint from the positive keys [0, N+1]. The whole
// slice is shuffled afterwards.
//
// Entries expected to match must already hold positive keys, typically from
// an earlier GenerateKeys call.
func GenerateProbeKeys[K Key](matchingRate float64, keys []K, opts ...Option) error {
	numKeys := len(keys)
	if numKeys == 0 {
		return nil
	}
	lowerBound := uint64(numKeys) + 2
	upperBound := uint64(maxKey[K]()) - 2
	if lowerBound > upperBound {
		return fmt.Errorf("%w: %d keys leave no room below %d",
			ErrKeySpaceExhausted,
			numKeys,
			upperBound)
	}
	o := newGeneratorOptions(opts)
	o.log.Debug("Generating probe keys",
		"matchingRate", matchingRate,
		"count", numKeys,
		"keyType", fmt.Sprintf("%T", K(0)))

	rng := rand.New(o.src)
	rateGenerator := distuv.Uniform{
		Min: 0,
		Max: 1,
		Src: o.src,
	}
	span := upperBound - lowerBound + 1
	for i := range keys {
		if rateGenerator.Rand() > matchingRate {
			keys[i] = K(lowerBound + rng.Uint64n(span))
		}
	}
	shuffleKeys(keys, rng)
	return nil
}
