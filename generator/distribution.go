package generator

import (
	"fmt"
	"sort"
)

// Distribution selects the sampling strategy used by GenerateKeys.
type Distribution int

const (
	Gaussian Distribution = iota
	Geometric
	Uniform
	Unique
	Same
)

type distributionInfo struct {
	name        string
	description string
}

var distributionInfos = map[Distribution]distributionInfo{
	Gaussian: {
		name:        "GAUSSIAN",
		description: "Normal around N/2 with σ=N/5, resampled when >= N",
	},
	Geometric: {
		name:        "GEOMETRIC",
		description: "Geometric(p=1e-9) scaled by N/INT32_MAX",
	},
	Uniform: {
		name:        "UNIFORM",
		description: "Uniform over [1, N/multiplicity]",
	},
	Unique: {
		name:        "UNIQUE",
		description: "Shuffled permutation of [2, N+1]",
	},
	Same: {
		name:        "SAME",
		description: "Every key is 42",
	},
}

var distributionNames map[string]Distribution

func init() {
	distributionNames = make(map[string]Distribution, len(distributionInfos))
	for eachDist, eachInfo := range distributionInfos {
		distributionNames[eachInfo.name] = eachDist
	}
}

func (d Distribution) valid() bool {
	_, exists := distributionInfos[d]
	return exists
}

// String returns the label used in benchmark tables, or "ERROR" for a value
// outside the enumeration.
func (d Distribution) String() string {
	info, exists := distributionInfos[d]
	if !exists {
		return "ERROR"
	}
	return info.name
}

func (d Distribution) Description() string {
	return distributionInfos[d].description
}

// Distributions returns every supported distribution in declaration order.
func Distributions() []Distribution {
	return []Distribution{Gaussian, Geometric, Uniform, Unique, Same}
}

// ParseDistribution maps a case-sensitive display name to its Distribution.
func ParseDistribution(name string) (Distribution, error) {
	dist, exists := distributionNames[name]
	if !exists {
		supported := make([]string, 0, len(distributionNames))
		for eachName := range distributionNames {
			supported = append(supported, eachName)
		}
		sort.Strings(supported)
		return 0, fmt.Errorf("%w: %q. Supported types: %v", ErrUnknownDistribution, name, supported)
	}
	return dist, nil
}
