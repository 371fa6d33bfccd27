package digest

import (
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/assert"
)

func TestSum64(t *testing.T) {
	assert.Equal(t, xxhash.Sum64(nil), Sum64([]int64{}))
	assert.Equal(t,
		xxhash.Sum64([]byte{42, 0, 0, 0, 0, 0, 0, 0}),
		Sum64([]int64{42}))
}

func TestSum64IgnoresKeyWidth(t *testing.T) {
	assert.Equal(t, Sum64([]int64{2, 3, 4}), Sum64([]uint32{2, 3, 4}))
	assert.Equal(t, Sum64([]int64{-1}), Sum64([]int32{-1}))
}

func TestSum64IsOrderSensitive(t *testing.T) {
	assert.NotEqual(t, Sum64([]int64{1, 2}), Sum64([]int64{2, 1}))
}
