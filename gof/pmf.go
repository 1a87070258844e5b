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

	"github.com/0xsoniclabs/probability/special"
	"github.com/cockroachdb/errors"
)

// pmfTolerance bounds the deviation of the total mass from one.
const pmfTolerance = 1e-9

// CheckPMF checks if the given probability mass function of a discrete
// finite random variable is valid. A valid pmf has all probabilities in
// the range [0,1] and they add up to one.
func CheckPMF(f []float64) error {
	var total special.Kahan
	for i, x := range f {
		if x < 0.0 || x > 1.0 || math.IsNaN(x) {
			return errors.Newf("invalid probability (%v) at position %d of the pmf", x, i)
		}
		total.Add(x)
	}
	if math.Abs(total.Sum()-1.0) > pmfTolerance {
		return errors.Newf("total is not one (%v)", total.Sum())
	}
	return nil
}

// Quantile returns the smallest index i such that the cumulative
// probability up to and including i is at least u. If u exceeds the total
// because of rounding, the last index with positive probability is
// returned; if there is none, 0.
func Quantile(f []float64, u float64) int {
	var sum special.Kahan
	lastPositive := -1
	for i, p := range f {
		sum.Add(p)
		if u <= sum.Sum() {
			return i
		}
		if p > 0.0 {
			lastPositive = i
		}
	}
	if lastPositive != -1 {
		return lastPositive
	}
	return 0
}
