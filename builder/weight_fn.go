package builder

import (
	"fmt"
	"math/rand"
)

// DefaultEdgeWeight is the weight produced by DefaultWeightFn.
const DefaultEdgeWeight int64 = 1

// WeightFn produces the weight of the next edge. rng may be nil.
type WeightFn func(rng *rand.Rand) int64

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) int64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn always returns value. Panics if value < 0.
func ConstantWeightFn(value int64) WeightFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantWeightFn: value must be ≥ 0, got %d", value))
	}

	return func(_ *rand.Rand) int64 {
		return value
	}
}

// UniformWeightFn draws from [min, max] inclusive. Panics unless 0 ≤ min ≤ max.
// With a nil rng it returns min.
func UniformWeightFn(min, max int64) WeightFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformWeightFn: require 0 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}

	return func(rng *rand.Rand) int64 {
		if rng == nil || max == min {
			return min
		}

		return min + rng.Int63n(max-min+1)
	}
}
