// ./ayanamsa/ayanamsa.go

// Package ayanamsa supplies the tropical-to-sidereal offset through interchangeable providers.
package ayanamsa

/*
Package ayanamsa provides the Provider interface and calculation modes.

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
	"context"
	"errors"
	"strings"
)

// ErrUnavailable is returned when the precise source failed or timed out.
// It is the only ayanamsa error a caller may recover from by switching modes.
var ErrUnavailable = errors.New("precise ayanamsa source unavailable")

// ErrUnknownStandard is returned by sources that do not implement a sidereal standard.
var ErrUnknownStandard = errors.New("unknown sidereal standard")

// Provider returns the ayanamsa in degrees for a UT Julian day.
type Provider interface {
	Ayanamsa(ctx context.Context, jd float64) (float64, error)
	Mode() Mode
}

// Mode selects how the ayanamsa is computed.
type Mode int

const (
	Precise     Mode = iota // Delegate to an external ephemeris source
	Approximate             // Closed-form linear model
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case Precise:
		return "precise"
	case Approximate:
		return "approximate"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// ParseMode parses a mode string. Unknown strings yield false.
func ParseMode(s string) (Mode, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "precise", "":
		return Precise, true
	case "approximate", "approx":
		return Approximate, true
	default:
		return Precise, false
	}
}

// Standard names a sidereal zodiac definition.
type Standard string

// Lahiri is the Indian national standard (Chitrapaksha), the reference used throughout.
const Lahiri Standard = "lahiri"

// Source is an external high-precision ayanamsa calculator.
type Source interface {
	Ayanamsa(ctx context.Context, jd float64, std Standard) (float64, error)
}

// SourceFunc adapts a function to the Source interface.
type SourceFunc func(ctx context.Context, jd float64, std Standard) (float64, error)

// Ayanamsa calls f.
func (f SourceFunc) Ayanamsa(ctx context.Context, jd float64, std Standard) (float64, error) {
	return f(ctx, jd, std)
}
