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

package special

// Kahan accumulates a sum of floating point values with Kahan's
// compensation, see https://en.wikipedia.org/wiki/Kahan_summation_algorithm
// The zero value is an empty sum.
type Kahan struct {
	sum float64
	c   float64 // compensation term
}

// Add adds x to the sum.
func (k *Kahan) Add(x float64) {
	y := x - k.c
	t := k.sum + y
	k.c = (t - k.sum) - y
	k.sum = t
}

// Sum returns the accumulated sum.
func (k *Kahan) Sum() float64 {
	return k.sum
}
