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

import "github.com/cockroachdb/errors"

var (
	// ErrInvalidParameters is returned when a parameter tuple violates the
	// domain of a distribution.
	ErrInvalidParameters = errors.New("invalid distribution parameters")
	// ErrUnsupported is returned by queries a variant cannot answer in
	// closed form.
	ErrUnsupported = errors.New("unsupported by distribution")
)

// Invalid builds an ErrInvalidParameters error. The message describes the
// rejected tuple, the hint states the domain that was violated.
func Invalid(hint string, format string, args ...any) error {
	return errors.WithHint(errors.Wrapf(ErrInvalidParameters, format, args...), hint)
}

// Unsupported builds an ErrUnsupported error for the named query.
func Unsupported(variant, query string) error {
	return errors.Wrapf(ErrUnsupported, "%s: %s", variant, query)
}
