// Package digest fingerprints generated key sequences so that two runs can be
// compared without shipping the keys around.
package digest

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/exp/constraints"
)

// Sum64 hashes the little-endian 8-byte encoding of every key, in order.
// Equal sequences give equal digests regardless of the key type width.
func Sum64[K constraints.Integer](keys []K) uint64 {
	digest := xxhash.New()
	var buf [8]byte
	for _, eachKey := range keys {
		binary.LittleEndian.PutUint64(buf[:], uint64(eachKey))
		_, _ = digest.Write(buf[:])
	}
	return digest.Sum64()
}
