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

package distribution

import "iter"

// Stream turns a single-draw function into an infinite lazy sequence.
// Every element pulled invokes draw once; the sequence ends only when the
// consumer stops iterating.
func Stream[T any](draw func() T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			if !yield(draw()) {
				return
			}
		}
	}
}

// Take collects the first n elements of seq.
func Take[T any](seq iter.Seq[T], n int) []T {
	res := make([]T, 0, n)
	if n <= 0 {
		return res
	}
	for v := range seq {
		res = append(res, v)
		if len(res) == n {
			break
		}
	}
	return res
}
