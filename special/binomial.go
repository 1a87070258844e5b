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

// Package special provides the numerical functions the distributions are
// built on.
package special

import (
	"math"

	"gonum.org/v1/gonum/stat/combin"
)

// exactBinomialLimit is the largest n for which the binomial coefficient is
// computed in integer arithmetic without overflowing int64.
const exactBinomialLimit = 60

// Binomial returns the binomial coefficient C(n,k), or 0 if k is outside
// the range [0,n].
func Binomial(n, k int) float64 {
	if n < 0 || k < 0 || k > n {
		return 0
	}
	if n <= exactBinomialLimit {
		return float64(combin.Binomial(n, k))
	}
	return math.Floor(0.5 + math.Exp(BinomialLn(n, k)))
}

// BinomialLn returns the natural logarithm of C(n,k), or -Inf if k is
// outside the range [0,n]. It remains finite where C(n,k) itself overflows.
func BinomialLn(n, k int) float64 {
	if n < 0 || k < 0 || k > n {
		return math.Inf(-1)
	}
	if k == 0 || k == n {
		return 0
	}
	return combin.LogGeneralizedBinomial(float64(n), float64(k))
}
