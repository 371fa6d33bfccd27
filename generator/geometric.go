package generator

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// geometricP is the per-trial success probability. Its mean of ~1e9 failures
// sits inside [0, INT32_MAX], which is what the N/INT32_MAX scale assumes.
const geometricP = 1e-9

// fillGeometric draws failure counts from Geometric(p) and compresses them
// into roughly [0, N) with a N/INT32_MAX scale. The scale is approximate and
// large draws still land above N.
//
// A geometric count is the floor of an exponential variate with rate
// -ln(1-p). Each count saturates at the maximum of K before scaling.
func fillGeometric[K Key](keys []K, src rand.Source) {
	coeff := float64(len(keys)) / float64(math.MaxInt32)
	generator := distuv.Exponential{
		Rate: -math.Log1p(-geometricP),
		Src:  src,
	}
	drawCeiling := float64(maxKey[K]())

	filterGenerate(keys, generator, func(sample float64) (K, bool) {
		draw := math.Min(math.Floor(sample), drawCeiling)
		return keyFromFloat[K](draw * coeff), true
	})
}
