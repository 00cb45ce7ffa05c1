// ./errors.go
package jyotish

/*
Package jyotish provides the error kinds reported by chart computation.

This program is free software; you can redistribute it and/or
modify it under the terms of the GNU General Public License
as published by the Free Software Foundation; either version 2
of the License, or (at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program; if not, write to the Free Software
Foundation, Inc., 51 Franklin Street, Fifth Floor, Boston, MA
02110-1301, USA.

Authorship:
Mohammad Shafiee authored this Go code.
*/

import (
	"errors"
	"fmt"

	"github.com/mshafiee/jyotish/ecliptic"
)

var (
	// ErrInvalidInput is returned when the instant or location is missing or
	// malformed. Nothing is computed.
	ErrInvalidInput = errors.New("invalid input")

	// ErrPolarLatitude is returned when the ascendant is undefined at the
	// requested latitude.
	ErrPolarLatitude = ecliptic.ErrPolarLatitude

	// ErrEphemerisUnavailable is returned when the precise ayanamsa source or
	// the body position source failed or timed out.
	ErrEphemerisUnavailable = errors.New("ephemeris unavailable")

	// ErrComputationInvariant is returned when an internal range check fails.
	// It always indicates a defect.
	ErrComputationInvariant = errors.New("computation invariant violated")
)

// InputError names the offending input field.
type InputError struct {
	Field  string
	Value  any
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid %s (%v): %s", e.Field, e.Value, e.Reason)
}

func (e *InputError) Unwrap() error {
	return ErrInvalidInput
}

// InvariantError describes a failed internal range check.
type InvariantError struct {
	What  string
	Value any
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("%s out of range: %v", e.What, e.Value)
}

func (e *InvariantError) Unwrap() error {
	return ErrComputationInvariant
}

// IsClientError reports whether err was caused by the caller's input.
func IsClientError(err error) bool {
	return errors.Is(err, ErrInvalidInput) || errors.Is(err, ErrPolarLatitude)
}

// IsRetryable reports whether the request may succeed if repeated.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrEphemerisUnavailable)
}
