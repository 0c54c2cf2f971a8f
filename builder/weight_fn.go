// SPDX-License-Identifier: MIT
// Package: builder
//
// weight_fn.go - edge weight generators.
//
// Contract:
//   - A WeightFn never returns NaN or ±Inf (core rejects those).
//   - With a nil RNG the stochastic generators fall back to DefaultEdgeWeight.

package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// DefaultEdgeWeight is the weight of every edge unless a WeightFn is set.
const DefaultEdgeWeight float64 = 1

// WeightFn draws one edge weight.
type WeightFn func(rng *rand.Rand) float64

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) float64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn always returns value. Negative weights are allowed by the
// store, so only non-finite values panic.
func ConstantWeightFn(value float64) WeightFn {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		panic(fmt.Sprintf("ConstantWeightFn: value must be finite, got %g", value))
	}

	return func(_ *rand.Rand) float64 {
		return value
	}
}

// UniformWeightFn draws from [min, max).
func UniformWeightFn(min, max float64) WeightFn {
	if max < min || math.IsNaN(min) || math.IsInf(max-min, 0) {
		panic(fmt.Sprintf("UniformWeightFn: require finite min ≤ max, got min=%g, max=%g", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}
		if max == min {
			return min
		}

		return min + rng.Float64()*(max-min)
	}
}

// NormalWeightFn draws N(mean, stddev²) clamped at 0.
func NormalWeightFn(mean, stddev float64) WeightFn {
	if stddev < 0 {
		panic(fmt.Sprintf("NormalWeightFn: stddev must be ≥ 0, got %f", stddev))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}

		return math.Max(0, rng.NormFloat64()*stddev+mean)
	}
}

// WithConstantWeight gives every edge weight w.
func WithConstantWeight(w float64) BuilderOption {
	return WithWeightFn(ConstantWeightFn(w))
}

// WithUniformWeight draws weights from [min, max); pair it with WithSeed.
func WithUniformWeight(min, max float64) BuilderOption {
	return WithWeightFn(UniformWeightFn(min, max))
}
