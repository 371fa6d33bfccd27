package generator

import (
	"testing"
)

const benchmarkKeys = 1 << 20

func BenchmarkGenerateKeys(b *testing.B) {
	for _, eachDist := range Distributions() {
		b.Run(eachDist.String(), func(b *testing.B) {
			keys := make([]int64, benchmarkKeys)
			b.SetBytes(benchmarkKeys * 8)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := GenerateKeys(eachDist, keys, WithSeed(uint64(i))); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkGenerateProbeKeys(b *testing.B) {
	keys := make([]int64, benchmarkKeys)
	b.SetBytes(benchmarkKeys * 8)
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		if err := GenerateKeys(Unique, keys, WithSeed(uint64(i))); err != nil {
			b.Fatal(err)
		}
		b.StartTimer()
		if err := GenerateProbeKeys(0.5, keys, WithSeed(uint64(i))); err != nil {
			b.Fatal(err)
		}
	}
}
