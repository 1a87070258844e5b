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

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
)

func TestErrors_InvalidWrapsSentinel(t *testing.T) {
	err := Invalid("scale > 0", "rayleigh: scale=%v", -1.0)
	assert.ErrorIs(t, err, ErrInvalidParameters)
	assert.NotErrorIs(t, err, ErrUnsupported)
	assert.Contains(t, err.Error(), "scale=-1")
	assert.Equal(t, []string{"scale > 0"}, errors.GetAllHints(err))
}

func TestErrors_UnsupportedWrapsSentinel(t *testing.T) {
	err := Unsupported("hypergeometric", "median")
	assert.ErrorIs(t, err, ErrUnsupported)
	assert.NotErrorIs(t, err, ErrInvalidParameters)
	assert.Contains(t, err.Error(), "hypergeometric: median")
}

func TestSourceOrDefault(t *testing.T) {
	assert.NotNil(t, SourceOrDefault(nil))
}
