package generator

import (
	"golang.org/x/exp/rand"
)

// /////////////////////////////////////////////////////////////////////////////
//  _   _      _  __
// | | | |_ _ (_)/ _|___ _ _ _ __
// | |_| | ' \| |  _/ _ \ '_| '  \
//  \___/|_||_|_|_| \___/_| |_|_|_|
//
// /////////////////////////////////////////////////////////////////////////////

// fillUniform draws from the integers in [1, N/multiplicity]. A bound below
// 1 (N < multiplicity) is clamped to 1, and a bound above the maximum of K
// is clamped to that maximum.
func fillUniform[K Key](keys []K, multiplicity int, rng *rand.Rand) {
	upperBound := uint64(len(keys) / multiplicity)
	if upperBound < 1 {
		upperBound = 1
	}
	if keyCeiling := uint64(maxKey[K]()); upperBound > keyCeiling {
		upperBound = keyCeiling
	}
	for i := range keys {
		keys[i] = K(1 + rng.Uint64n(upperBound))
	}
}
