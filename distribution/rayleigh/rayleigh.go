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

// Package rayleigh implements the Rayleigh distribution, the magnitude of
// a two dimensional vector whose components are independent zero-mean
// Gaussians with a common standard deviation (the scale).
package rayleigh

import (
	"iter"
	"math"

	"github.com/0xsoniclabs/probability/distribution"
	"github.com/0xsoniclabs/probability/rng"
)

const (
	name   = "rayleigh"
	domain = "scale must be a positive finite real number"

	eulerMascheroni = 0.57721566490153286060651209008240243104215933593992
)

// skewness does not depend on the scale: 2*sqrt(pi)*(pi-3) / (4-pi)^(3/2).
var skewness = 2 * math.Sqrt(math.Pi) * (math.Pi - 3) / math.Pow(4-math.Pi, 1.5)

// Rayleigh is the distribution with density (x/s^2)*exp(-x^2/(2s^2)) on
// [0, +Inf) for scale s.
type Rayleigh struct {
	scale float64
	src   rng.Source
}

var _ distribution.Continuous = (*Rayleigh)(nil)

// IsValidParameterSet reports whether scale is a valid parameter; NaN and
// +Inf are not.
func IsValidParameterSet(scale float64) bool {
	return scale > 0 && !math.IsInf(scale, 1)
}

func validate(scale float64) error {
	if !IsValidParameterSet(scale) {
		return distribution.Invalid(domain, "%s: scale=%v", name, scale)
	}
	return nil
}

// New creates a Rayleigh distribution. A nil src binds the process-wide
// default source.
func New(scale float64, src rng.Source) (*Rayleigh, error) {
	if err := validate(scale); err != nil {
		return nil, err
	}
	return &Rayleigh{
		scale: scale,
		src:   distribution.SourceOrDefault(src),
	}, nil
}

// Scale returns the scale parameter.
func (r *Rayleigh) Scale() float64 {
	return r.scale
}

// SetScale replaces the scale. On error the previous scale is kept.
func (r *Rayleigh) SetScale(scale float64) error {
	if err := validate(scale); err != nil {
		return err
	}
	r.scale = scale
	return nil
}

// RandomSource returns the source used by Sample.
func (r *Rayleigh) RandomSource() rng.Source {
	return r.src
}

// SetRandomSource binds src, or the default source if src is nil.
func (r *Rayleigh) SetRandomSource(src rng.Source) {
	r.src = distribution.SourceOrDefault(src)
}

// Mean is scale*sqrt(pi/2).
func (r *Rayleigh) Mean() float64 {
	return r.scale * math.Sqrt(math.Pi/2)
}

// Variance is (2-pi/2)*scale^2.
func (r *Rayleigh) Variance() float64 {
	return (2 - math.Pi/2) * r.scale * r.scale
}

// StdDev is the square root of the variance.
func (r *Rayleigh) StdDev() float64 {
	return math.Sqrt(2-math.Pi/2) * r.scale
}

// Skewness is approximately 0.6311 for every scale.
func (r *Rayleigh) Skewness() float64 {
	return skewness
}

// Entropy is 1 + ln(scale/sqrt(2)) + gamma/2 with gamma the
// Euler-Mascheroni constant.
func (r *Rayleigh) Entropy() (float64, error) {
	return 1 + math.Log(r.scale/math.Sqrt2) + eulerMascheroni/2, nil
}

// Mode equals the scale.
func (r *Rayleigh) Mode() float64 {
	return r.scale
}

// Median is scale*sqrt(ln 4).
func (r *Rayleigh) Median() (float64, error) {
	return r.scale * math.Sqrt(math.Log(4)), nil
}

// Minimum is the lower end of the support.
func (r *Rayleigh) Minimum() float64 {
	return 0
}

// Maximum is +Inf; the support is unbounded.
func (r *Rayleigh) Maximum() float64 {
	return math.Inf(1)
}

// Density is zero for negative x.
func (r *Rayleigh) Density(x float64) float64 {
	return pdf(r.scale, x)
}

// DensityLn is -Inf for x <= 0.
func (r *Rayleigh) DensityLn(x float64) float64 {
	return pdfLn(r.scale, x)
}

// CumulativeDistribution is P(X <= x), 0 for x <= 0.
func (r *Rayleigh) CumulativeDistribution(x float64) float64 {
	return cdf(r.scale, x)
}

// InverseCumulativeDistribution returns NaN for p outside [0,1] and +Inf
// for p = 1.
func (r *Rayleigh) InverseCumulativeDistribution(p float64) float64 {
	return invCDF(r.scale, p)
}

// Sample draws a value by inverting the CDF at a uniform from the bound
// source.
func (r *Rayleigh) Sample() float64 {
	return sample(r.src, r.scale)
}

// Samples draws lazily from the distribution's current scale and source.
func (r *Rayleigh) Samples() iter.Seq[float64] {
	return distribution.Stream(r.Sample)
}

// Fill overwrites dst with independent draws.
func (r *Rayleigh) Fill(dst []float64) {
	for i := range dst {
		dst[i] = r.Sample()
	}
}

// PDF is the density at x for the given scale.
func PDF(scale, x float64) (float64, error) {
	if err := validate(scale); err != nil {
		return 0, err
	}
	return pdf(scale, x), nil
}

// PDFLn is the log density at x for the given scale.
func PDFLn(scale, x float64) (float64, error) {
	if err := validate(scale); err != nil {
		return 0, err
	}
	return pdfLn(scale, x), nil
}

// CDF is P(X <= x) for the given scale.
func CDF(scale, x float64) (float64, error) {
	if err := validate(scale); err != nil {
		return 0, err
	}
	return cdf(scale, x), nil
}

// InvCDF is the quantile function for the given scale.
func InvCDF(scale, p float64) (float64, error) {
	if err := validate(scale); err != nil {
		return 0, err
	}
	return invCDF(scale, p), nil
}

// Sample draws one value without constructing a distribution. A nil src
// uses the process-wide default source.
func Sample(src rng.Source, scale float64) (float64, error) {
	if err := validate(scale); err != nil {
		return 0, err
	}
	return sample(distribution.SourceOrDefault(src), scale), nil
}

// Samples validates the scale once and returns a lazy infinite sequence
// of draws.
func Samples(src rng.Source, scale float64) (iter.Seq[float64], error) {
	if err := validate(scale); err != nil {
		return nil, err
	}
	src = distribution.SourceOrDefault(src)
	return distribution.Stream(func() float64 {
		return sample(src, scale)
	}), nil
}

// The closed forms are evaluated in z = x/scale so that squaring never
// touches the scale itself.

func pdf(scale, x float64) float64 {
	if x < 0 || math.IsInf(x, 1) {
		return 0
	}
	z := x / scale
	return z * math.Exp(-z*z/2) / scale
}

// pdfLn is evaluated directly rather than as log(pdf) so that densities
// far in the tail do not underflow to zero.
func pdfLn(scale, x float64) float64 {
	if x < 0 || math.IsInf(x, 1) {
		return math.Inf(-1)
	}
	z := x / scale
	return math.Log(z) - math.Log(scale) - z*z/2
}

func cdf(scale, x float64) float64 {
	if x <= 0 {
		return 0
	}
	z := x / scale
	// 1-exp(-t) loses all digits for small t
	return -math.Expm1(-z * z / 2)
}

func invCDF(scale, p float64) float64 {
	if p < 0 || p > 1 || math.IsNaN(p) {
		return math.NaN()
	}
	return scale * math.Sqrt(-2*math.Log1p(-p))
}

// sample evaluates the quantile function at 1-u, which is uniform as well,
// giving scale*sqrt(-2 ln u). u = 0 is redrawn.
func sample(src rng.Source, scale float64) float64 {
	u := rng.Positive(src)
	return scale * math.Sqrt(-2*math.Log(u))
}
