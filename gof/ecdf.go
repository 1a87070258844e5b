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

// Package gof checks samplers against the distributions they claim to
// draw from.
package gof

import (
	"math"
	"slices"

	"github.com/0xsoniclabs/probability/special"
	"github.com/cockroachdb/errors"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/simplify"
)

// NumECDFPoints sets the number of points kept in an empirical cumulative
// distribution function.
const NumECDFPoints = 300

// Empirical is a piecewise linear empirical cumulative distribution
// function given as a list of points (x_i, y_i). The first point has y = 0,
// the last y = 1, and no point is smaller than its predecessor in both
// coordinates.
type Empirical [][2]float64

// NewEmpirical builds the empirical CDF of the samples. Each sorted sample
// raises the CDF by 1/n; the resulting line is compressed with the
// Visvalingam-Whyatt algorithm to at most NumECDFPoints points, see
// https://en.wikipedia.org/wiki/Visvalingam-Whyatt_algorithm
func NewEmpirical(samples []float64) (Empirical, error) {
	n := len(samples)
	if n == 0 {
		return nil, errors.New("cannot build ECDF without samples")
	}
	xs := slices.Clone(samples)
	slices.Sort(xs)

	step := 1.0 / float64(n)
	ls := orb.LineString{{xs[0], 0.0}}
	// probabilities are accumulated with Kahan's summation since the
	// step gets tiny for large sample sets
	var sum special.Kahan
	for _, x := range xs {
		sum.Add(step)
		ls = append(ls, orb.Point{x, sum.Sum()})
	}
	// pin the end point to exactly one
	ls[len(ls)-1][1] = 1.0

	compressed := simplify.VisvalingamKeep(NumECDFPoints).Simplify(ls).(orb.LineString)
	ecdf := make(Empirical, len(compressed))
	for i := range compressed {
		ecdf[i] = [2]float64(compressed[i])
	}
	if err := ecdf.Check(); err != nil {
		return nil, errors.Wrap(err, "cannot create valid ECDF from samples")
	}
	return ecdf, nil
}

// CDF evaluates the empirical CDF at x by linear interpolation.
func (f Empirical) CDF(x float64) float64 {
	if len(f) == 0 || x < f[0][0] {
		return 0.0
	}
	for i := range len(f) - 1 {
		if f[i+1][0] >= x {
			dx := f[i+1][0] - f[i][0]
			if dx == 0 {
				return f[i+1][1]
			}
			scale := (x - f[i][0]) / dx
			return f[i][1] + scale*(f[i+1][1]-f[i][1])
		}
	}
	return 1.0 // x is beyond the largest sample
}

// MaxDeviation is the largest absolute difference between the empirical
// CDF and cdf over the points of the empirical CDF.
func (f Empirical) MaxDeviation(cdf func(float64) float64) float64 {
	d := 0.0
	for _, p := range f {
		d = max(d, math.Abs(p[1]-cdf(p[0])))
	}
	return d
}

// Check whether the piecewise linear function is valid as an empirical CDF.
func (f Empirical) Check() error {
	if len(f) < 2 {
		return errors.New("ECDF must have at least start and end point")
	}
	if f[0][1] != 0.0 {
		return errors.Newf("ECDF must start at probability 0, but starts at (%v,%v)", f[0][0], f[0][1])
	}
	last := len(f) - 1
	if f[last][1] != 1.0 {
		return errors.Newf("ECDF must end at probability 1, but ends at (%v,%v)", f[last][0], f[last][1])
	}
	for i := range len(f) - 1 {
		if f[i][0] > f[i+1][0] || f[i][1] > f[i+1][1] {
			return errors.Newf("ECDF points must be monotonically increasing, but point %v (%v,%v) is above point %v (%v,%v)", i, f[i][0], f[i][1], i+1, f[i+1][0], f[i+1][1])
		}
	}
	return nil
}
