package generator

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// /////////////////////////////////////////////////////////////////////////////
// _  _                    _
// | \| |___ _ _ _ __  __ _| |
// | .` / _ \ '_| '  \/ _` | |
// |_|\_\___/_| |_|_|_\__,_|_|
//
// /////////////////////////////////////////////////////////////////////////////

// fillGaussian draws from Normal(μ=N/2, σ=N/5) using integer division for
// both parameters. Draws >= N are resampled. Nothing bounds the lower tail,
// so signed key types can receive negative keys; unsigned types resample
// negative draws since they cannot hold them.
func fillGaussian[K Key](keys []K, src rand.Source) {
	numKeys := len(keys)
	generator := distuv.Normal{
		Mu:    float64(numKeys / 2),
		Sigma: float64(numKeys / 5),
		Src:   src,
	}
	upperBound := float64(numKeys)
	unsigned := !isSigned[K]()

	filterGenerate(keys, generator, func(sample float64) (K, bool) {
		if sample >= upperBound || (unsigned && sample < 0) {
			return 0, false
		}
		return keyFromFloat[K](sample), true
	})
}
