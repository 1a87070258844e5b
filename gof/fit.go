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

package gof

import (
	"math"
	"slices"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/stat/distuv"
)

// ChiSquared computes Pearson's chi-squared statistic of observed counts
// against expected counts, together with the degrees of freedom. Bins
// without expectation are skipped unless something was observed in them.
func ChiSquared(observed []int64, expected []float64) (chi2 float64, df int, err error) {
	if len(observed) != len(expected) {
		return 0, 0, errors.Newf("mismatching number of bins: %d observed, %d expected", len(observed), len(expected))
	}
	bins := 0
	for i, e := range expected {
		o := float64(observed[i])
		if e <= 0 {
			if o > 0 {
				return math.Inf(1), 0, nil
			}
			continue
		}
		d := o - e
		chi2 += d * d / e
		bins++
	}
	if bins < 2 {
		return 0, 0, errors.Newf("at least two bins with positive expectation required, got %d", bins)
	}
	return chi2, bins - 1, nil
}

// ChiSquaredCritical is the critical value of the chi-squared test with
// df degrees of freedom at significance level alpha.
func ChiSquaredCritical(df int, alpha float64) float64 {
	return distuv.ChiSquared{K: float64(df), Src: nil}.Quantile(1.0 - alpha)
}

// ChiSquaredTest reports whether the observed counts are consistent with
// the expected counts at significance level alpha.
func ChiSquaredTest(observed []int64, expected []float64, alpha float64) (bool, error) {
	chi2, df, err := ChiSquared(observed, expected)
	if err != nil {
		return false, err
	}
	return chi2 <= ChiSquaredCritical(df, alpha), nil
}

// KolmogorovSmirnov is the largest distance between the empirical CDF of
// the samples and cdf.
func KolmogorovSmirnov(samples []float64, cdf func(float64) float64) float64 {
	xs := slices.Clone(samples)
	slices.Sort(xs)
	n := float64(len(xs))
	d := 0.0
	for i, x := range xs {
		y := cdf(x)
		d = max(d, float64(i+1)/n-y, y-float64(i)/n)
	}
	return d
}

// KolmogorovSmirnovCritical is the asymptotic critical value of the
// Kolmogorov-Smirnov statistic for n samples at significance level alpha.
func KolmogorovSmirnovCritical(n int, alpha float64) float64 {
	return math.Sqrt(-math.Log(alpha/2)/2) / math.Sqrt(float64(n))
}
