package generator

import (
	"golang.org/x/exp/rand"
)

// /////////////////////////////////////////////////////////////////////////////
//  _   _      _
// | | | |_ _ (_)__ _ _  _ ___
// | |_| | ' \| / _` | || / -_)
//  \___/|_||_|_\__, |\_,_\___|
//                 |_|
// /////////////////////////////////////////////////////////////////////////////

// uniqueKeyBase is the first key written. Some tables reserve 0 and 1 as
// empty and tombstone sentinels.
const uniqueKeyBase = 2

// fillUnique writes a random permutation of [2, N+1].
func fillUnique[K Key](keys []K, rng *rand.Rand) {
	for i := range keys {
		keys[i] = K(i + uniqueKeyBase)
	}
	shuffleKeys(keys, rng)
}
