// SPDX-License-Identifier: MIT
// Package: builder
//
// errors.go - sentinel errors returned by constructors.
//
// Policy:
//   - Constructors never panic on bad parameters; they return one of these,
//     wrapped with the method tag ("Cycle: n=2 < min=3: ...").
//   - Core errors (duplicate names, loops) pass through wrapped with %w.

package builder

import "errors"

var (
	// ErrTooFewVertices indicates a size parameter below the topology minimum.
	ErrTooFewVertices = errors.New("builder: parameter too small")

	// ErrInvalidProbability indicates p outside [0,1].
	ErrInvalidProbability = errors.New("builder: probability out of range")

	// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed/WithRand.
	ErrNeedRandSource = errors.New("builder: rng is required")

	// ErrConstructFailed indicates a structural problem in the constructor list.
	ErrConstructFailed = errors.New("builder: construction failed")
)
