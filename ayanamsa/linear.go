// ./ayanamsa/linear.go
package ayanamsa

/*
Package ayanamsa provides the linear approximate model.

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

import "context"

// Lahiri reference epoch: 1956-03-21 00:00 UT, when the standard was fixed by the
// Indian Calendar Reform Committee.
const (
	LahiriEpochJD    = 2435553.5
	LahiriEpochValue = 23.245524743
)

// RateArcsecPerYear is the general precession in longitude at J2000 per Julian year.
const RateArcsecPerYear = 50.290966

// Linear is the closed-form approximate model: RefValue + (jd - RefJD) * RatePerDay.
// It performs no I/O and never fails.
type Linear struct {
	RefJD      float64
	RefValue   float64
	RatePerDay float64
}

// DefaultLinear returns the approximate model anchored at the Lahiri epoch.
func DefaultLinear() Linear {
	return Linear{
		RefJD:      LahiriEpochJD,
		RefValue:   LahiriEpochValue,
		RatePerDay: RateArcsecPerYear / 3600 / 365.25,
	}
}

// Ayanamsa implements Provider.
func (l Linear) Ayanamsa(_ context.Context, jd float64) (float64, error) {
	return l.At(jd), nil
}

// At evaluates the model.
func (l Linear) At(jd float64) float64 {
	return l.RefValue + (jd-l.RefJD)*l.RatePerDay
}

// Mode implements Provider.
func (Linear) Mode() Mode { return Approximate }
