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
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func almostEqual(a, b float64) bool {
	const eps = 1e-12
	return math.Abs(a-b) <= eps
}

func TestEmpirical_CDFInterpolationAndBoundaries(t *testing.T) {
	f := Empirical{
		{0.0, 0.0},
		{0.25, 0.1},
		{0.6, 0.7},
		{1.0, 1.0},
	}
	if v := f.CDF(-0.5); !almostEqual(v, 0.0) {
		t.Fatalf("CDF at x=-0.5: want 0.0, got %g", v)
	}
	if v := f.CDF(0.125); !almostEqual(v, 0.05) {
		t.Fatalf("CDF at x=0.125: want 0.05, got %g", v)
	}
	if v := f.CDF(0.25); !almostEqual(v, 0.1) {
		t.Fatalf("CDF at x=0.25 (boundary): want 0.1, got %g", v)
	}
	if v := f.CDF(0.40); !almostEqual(v, 0.35714285714285715) {
		t.Fatalf("CDF at x=0.40: want ~0.3571428571, got %g", v)
	}
	if v := f.CDF(1.2); !almostEqual(v, 1.0) {
		t.Fatalf("CDF at x=1.2 (>1): want 1.0, got %g", v)
	}
}

func TestEmpirical_CDFVerticalSegment(t *testing.T) {
	f := Empirical{{2.0, 0.0}, {2.0, 0.5}, {3.0, 1.0}}
	assert.Equal(t, 0.5, f.CDF(2.0))
	assert.InDelta(t, 0.75, f.CDF(2.5), 1e-12)
}

func TestEmpirical_Check(t *testing.T) {
	valid := Empirical{{-1.0, 0.0}, {0.2, 0.1}, {0.8, 0.9}, {5.0, 1.0}}
	assert.NoError(t, valid.Check())

	assert.Error(t, Empirical{{0.0, 0.0}}.Check(), "too short")
	assert.Error(t, Empirical{{0.0, 0.1}, {1.0, 1.0}}.Check(), "bad start")
	assert.Error(t, Empirical{{0.0, 0.0}, {1.0, 0.999}}.Check(), "bad end")
	assert.Error(t, Empirical{{0.0, 0.0}, {0.5, 0.6}, {0.4, 0.7}, {1.0, 1.0}}.Check(), "decreasing x")
	assert.Error(t, Empirical{{0.0, 0.0}, {0.5, 0.6}, {0.6, 0.5}, {1.0, 1.0}}.Check(), "decreasing y")
}

func TestEmpirical_NewRejectsEmpty(t *testing.T) {
	_, err := NewEmpirical(nil)
	assert.Error(t, err)
}

func TestEmpirical_NewUniformSamples(t *testing.T) {
	rg := rand.New(rand.NewSource(999))
	samples := make([]float64, 100000)
	for i := range samples {
		samples[i] = rg.Float64()
	}
	ecdf, err := NewEmpirical(samples)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(ecdf), NumECDFPoints)
	require.NoError(t, ecdf.Check())

	uniform := func(x float64) float64 { return min(max(x, 0), 1) }
	assert.Less(t, ecdf.MaxDeviation(uniform), 0.01)
	for _, x := range []float64{0.1, 0.25, 0.5, 0.75, 0.9} {
		assert.InDelta(t, x, ecdf.CDF(x), 0.01, "ECDF at %v", x)
	}
}

func TestEmpirical_NewSmallSampleKeepsAllPoints(t *testing.T) {
	ecdf, err := NewEmpirical([]float64{3, 1, 2})
	require.NoError(t, err)
	assert.Equal(t, [2]float64{1, 0}, ecdf[0])
	assert.Equal(t, 1.0, ecdf[len(ecdf)-1][1])
	assert.Equal(t, 3.0, ecdf[len(ecdf)-1][0])
}
