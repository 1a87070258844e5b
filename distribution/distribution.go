// Copyright 2025 Sonic Labs
// This file is part of the Sonic probability library
//
// The probability library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The probability library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the probability library. If not, see <http://www.gnu.org/licenses/>.

// Package distribution defines the contract shared by all parametric
// probability distributions of this module. The variants live in sub
// packages; each owns its parameters, keeps them valid at all times and
// draws its samples from an rng.Source held by reference.
//
// A distribution is not safe for concurrent sampling unless its source is;
// wrap a shared source with rng.NewLocked or use one source per goroutine.
package distribution

import (
	"iter"

	"github.com/0xsoniclabs/probability/rng"
)

// Distribution is the part of the contract common to discrete and
// continuous variants.
type Distribution interface {
	// RandomSource returns the source used by Sample and Samples.
	RandomSource() rng.Source
	// SetRandomSource replaces the source; nil selects rng.Default.
	SetRandomSource(src rng.Source)

	Mean() float64
	Variance() float64
	StdDev() float64
	Skewness() float64
	// Entropy in nats. Returns ErrUnsupported if the variant has no
	// closed form.
	Entropy() (float64, error)
}

// Discrete is a distribution over the integers.
type Discrete interface {
	Distribution

	Mode() int
	// Median returns ErrUnsupported if the variant has no closed form.
	Median() (int, error)
	Minimum() int
	Maximum() int

	// Probability is the mass at k; zero outside the support.
	Probability(k int) float64
	// ProbabilityLn is the log mass at k; -Inf outside the support.
	ProbabilityLn(k int) float64
	// CumulativeDistribution is P(X <= x). It is exactly 0 below Minimum
	// and exactly 1 at or above Maximum.
	CumulativeDistribution(x float64) float64

	Sample() int
	// Samples is an infinite lazy sequence of independent draws.
	Samples() iter.Seq[int]
	// Fill overwrites dst with independent draws.
	Fill(dst []int)
}

// Continuous is a distribution over the reals.
type Continuous interface {
	Distribution

	Mode() float64
	// Median returns ErrUnsupported if the variant has no closed form.
	Median() (float64, error)
	Minimum() float64
	Maximum() float64

	Density(x float64) float64
	DensityLn(x float64) float64
	// CumulativeDistribution is P(X <= x). It is exactly 0 below Minimum.
	CumulativeDistribution(x float64) float64
	// InverseCumulativeDistribution is the quantile function for p in [0,1].
	InverseCumulativeDistribution(p float64) float64

	Sample() float64
	// Samples is an infinite lazy sequence of independent draws.
	Samples() iter.Seq[float64]
	// Fill overwrites dst with independent draws.
	Fill(dst []float64)
}

// SourceOrDefault returns src, or the process-wide default if src is nil.
func SourceOrDefault(src rng.Source) rng.Source {
	if src == nil {
		return rng.Default()
	}
	return src
}
