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

// Package hypergeometric implements the distribution of the number of
// successes in draws without replacement from a finite population.
package hypergeometric

import (
	"iter"
	"math"
	"math/bits"

	"github.com/0xsoniclabs/probability/distribution"
	"github.com/0xsoniclabs/probability/rng"
	"github.com/0xsoniclabs/probability/special"
)

const (
	name   = "hypergeometric"
	domain = "parameters must satisfy 0 <= success <= population and 0 <= draws <= population"
)

// Hypergeometric counts the successes when drawing without replacement
// from a population containing a fixed number of successes.
type Hypergeometric struct {
	population int // N
	success    int // K, successes in the population
	draws      int // n
	src        rng.Source
}

var _ distribution.Discrete = (*Hypergeometric)(nil)

// IsValidParameterSet reports whether the tuple lies in the domain of the
// distribution.
func IsValidParameterSet(population, success, draws int) bool {
	return population >= 0 && success >= 0 && draws >= 0 &&
		success <= population && draws <= population
}

func validate(population, success, draws int) error {
	if !IsValidParameterSet(population, success, draws) {
		return distribution.Invalid(domain, "%s: population=%d success=%d draws=%d", name, population, success, draws)
	}
	return nil
}

// New creates a hypergeometric distribution. A nil src binds the
// process-wide default source.
func New(population, success, draws int, src rng.Source) (*Hypergeometric, error) {
	if err := validate(population, success, draws); err != nil {
		return nil, err
	}
	return &Hypergeometric{
		population: population,
		success:    success,
		draws:      draws,
		src:        distribution.SourceOrDefault(src),
	}, nil
}

// Population returns the population size N.
func (h *Hypergeometric) Population() int { return h.population }

// Success returns the number of successes K in the population.
func (h *Hypergeometric) Success() int { return h.success }

// Draws returns the number of draws n.
func (h *Hypergeometric) Draws() int { return h.draws }

// SetParameters replaces all parameters at once. On error the previous
// parameters are kept.
func (h *Hypergeometric) SetParameters(population, success, draws int) error {
	if err := validate(population, success, draws); err != nil {
		return err
	}
	h.population, h.success, h.draws = population, success, draws
	return nil
}

// SetPopulation replaces N, keeping K and n. On error nothing changes.
func (h *Hypergeometric) SetPopulation(population int) error {
	return h.SetParameters(population, h.success, h.draws)
}

// SetSuccess replaces K, keeping N and n. On error nothing changes.
func (h *Hypergeometric) SetSuccess(success int) error {
	return h.SetParameters(h.population, success, h.draws)
}

// SetDraws replaces n, keeping N and K. On error nothing changes.
func (h *Hypergeometric) SetDraws(draws int) error {
	return h.SetParameters(h.population, h.success, draws)
}

// RandomSource returns the source used by Sample.
func (h *Hypergeometric) RandomSource() rng.Source {
	return h.src
}

// SetRandomSource binds src, or the default source if src is nil.
func (h *Hypergeometric) SetRandomSource(src rng.Source) {
	h.src = distribution.SourceOrDefault(src)
}

// Mean is K*n/N.
func (h *Hypergeometric) Mean() float64 {
	return float64(h.success) * float64(h.draws) / float64(h.population)
}

// Variance is n*K*(N-K)*(N-n) / (N^2*(N-1)). For N <= 1 the division by
// zero yields NaN, which is returned as is.
func (h *Hypergeometric) Variance() float64 {
	n, k, p := float64(h.draws), float64(h.success), float64(h.population)
	return n * k * (p - k) * (p - n) / (p * p * (p - 1))
}

// StdDev is the square root of the variance.
func (h *Hypergeometric) StdDev() float64 {
	return math.Sqrt(h.Variance())
}

// Skewness is non-finite for degenerate tuples (N <= 2, K or n at a bound).
func (h *Hypergeometric) Skewness() float64 {
	n, k, p := float64(h.draws), float64(h.success), float64(h.population)
	return (p - 2*k) * math.Sqrt(p-1) * (p - 2*n) /
		(math.Sqrt(n*k*(p-k)*(p-n)) * (p - 2))
}

// Entropy has no closed form for this distribution.
func (h *Hypergeometric) Entropy() (float64, error) {
	return 0, distribution.Unsupported(name, "entropy")
}

// Mode is floor((n+1)(K+1)/(N+2)). The product is formed in 128 bits; it
// never exceeds (N+2)^2, so the quotient fits back into an int.
func (h *Hypergeometric) Mode() int {
	hi, lo := bits.Mul64(uint64(h.draws)+1, uint64(h.success)+1)
	q, _ := bits.Div64(hi, lo, uint64(h.population)+2)
	return int(q)
}

// Median has no closed form for this distribution.
func (h *Hypergeometric) Median() (int, error) {
	return 0, distribution.Unsupported(name, "median")
}

// Minimum is the smallest outcome with non-zero mass, max(0, n+K-N).
func (h *Hypergeometric) Minimum() int {
	return minimum(h.population, h.success, h.draws)
}

// Maximum is the largest outcome with non-zero mass, min(K, n).
func (h *Hypergeometric) Maximum() int {
	return maximum(h.success, h.draws)
}

// Probability is the mass at k, zero outside [Minimum, Maximum].
func (h *Hypergeometric) Probability(k int) float64 {
	return math.Exp(pmfLn(h.population, h.success, h.draws, k))
}

// ProbabilityLn is the log mass at k, -Inf outside the support.
func (h *Hypergeometric) ProbabilityLn(k int) float64 {
	return pmfLn(h.population, h.success, h.draws, k)
}

// CumulativeDistribution is the probability of floor(x) or fewer
// successes. It is 0 below Minimum and 1 from Maximum on.
func (h *Hypergeometric) CumulativeDistribution(x float64) float64 {
	return cdf(h.population, h.success, h.draws, x)
}

// Sample draws a value by simulating the urn with the bound source.
func (h *Hypergeometric) Sample() int {
	return sample(h.src, h.population, h.success, h.draws)
}

// Samples draws lazily from the distribution's current parameters and
// source.
func (h *Hypergeometric) Samples() iter.Seq[int] {
	return distribution.Stream(h.Sample)
}

// Fill overwrites dst with independent draws.
func (h *Hypergeometric) Fill(dst []int) {
	for i := range dst {
		dst[i] = h.Sample()
	}
}

// PMF is the probability of exactly k successes.
func PMF(population, success, draws, k int) (float64, error) {
	if err := validate(population, success, draws); err != nil {
		return 0, err
	}
	return math.Exp(pmfLn(population, success, draws, k)), nil
}

// PMFLn is the log probability of exactly k successes.
func PMFLn(population, success, draws, k int) (float64, error) {
	if err := validate(population, success, draws); err != nil {
		return 0, err
	}
	return pmfLn(population, success, draws, k), nil
}

// CDF is the probability of floor(x) or fewer successes.
func CDF(population, success, draws int, x float64) (float64, error) {
	if err := validate(population, success, draws); err != nil {
		return 0, err
	}
	return cdf(population, success, draws, x), nil
}

// Sample draws one value without constructing a distribution. A nil src
// uses the process-wide default source.
func Sample(src rng.Source, population, success, draws int) (int, error) {
	if err := validate(population, success, draws); err != nil {
		return 0, err
	}
	return sample(distribution.SourceOrDefault(src), population, success, draws), nil
}

// Samples validates the parameters once and returns a lazy infinite
// sequence of draws.
func Samples(src rng.Source, population, success, draws int) (iter.Seq[int], error) {
	if err := validate(population, success, draws); err != nil {
		return nil, err
	}
	src = distribution.SourceOrDefault(src)
	return distribution.Stream(func() int {
		return sample(src, population, success, draws)
	}), nil
}

func minimum(population, success, draws int) int {
	return max(0, draws+success-population)
}

func maximum(success, draws int) int {
	return min(success, draws)
}

// pmfLn is ln(C(K,k) * C(N-K,n-k) / C(N,n)). Outside the support one of
// the numerator terms is -Inf.
func pmfLn(population, success, draws, k int) float64 {
	return special.BinomialLn(success, k) +
		special.BinomialLn(population-success, draws-k) -
		special.BinomialLn(population, draws)
}

// cdf sums the mass up to floor(x). Every term is evaluated in log space
// since the binomial coefficients overflow long before their ratio does.
func cdf(population, success, draws int, x float64) float64 {
	if math.IsNaN(x) {
		return math.NaN()
	}
	lo, hi := minimum(population, success, draws), maximum(success, draws)
	if x < float64(lo) {
		return 0
	}
	if x >= float64(hi) {
		return 1
	}
	k := int(math.Floor(x))
	denominatorLn := special.BinomialLn(population, draws)
	var sum special.Kahan
	// terms below lo are zero
	for i := lo; i <= k; i++ {
		sum.Add(math.Exp(special.BinomialLn(success, i) +
			special.BinomialLn(population-success, draws-i) -
			denominatorLn))
	}
	// rounding in the log coefficients may push large sums past one
	return min(sum.Sum(), 1)
}

// sample simulates the draws one ball at a time from a shrinking urn.
func sample(src rng.Source, population, success, draws int) int {
	x := 0
	for draws > 0 {
		p := float64(success) / float64(population)
		if src.Float64() < p {
			x++
			success--
		}
		population--
		draws--
	}
	return x
}
