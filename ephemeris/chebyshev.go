// ./ephemeris/chebyshev.go
package ephemeris

/*
Package ephemeris provides Chebyshev interpolation of record coefficients.

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
Mohammad Shafiee authored this Go code as a translation of the original C code.
The C version was a translation of Fortran-77 code originally written by
Piotr A. Dybczynski and later revised by Bill J Gray.
*/

import "math"

// interpolate evaluates one quantity from the coefficients of a record.
//
// Parameters:
//   - coef: coefficients of the quantity, starting at its ipt offset.
//   - t: fractional time within the record, 0 <= t <= 1.
//   - span: record length in days.
//   - ncf: coefficients per component.
//   - ncm: components (3 for x, y, z).
//   - na: sub-intervals the record is split into.
//   - pos, vel: output, ncm values each. vel may be nil; it is in units per day.
func interpolate(coef []float64, t, span float64, ncf, ncm, na int, pos, vel []float64) {
	dna := float64(na)
	whole, frac := math.Modf(dna * t)
	l := int(whole)      // sub-interval index
	tc := 2.0*frac - 1.0 // normalized time within the sub-interval

	if l == na { // t is exactly 1
		l--
		tc = 1.0
	}

	var pc, vc [maxCheby]float64
	pc[0], pc[1] = 1.0, tc
	twot := tc + tc
	for i := 2; i < ncf; i++ {
		pc[i] = twot*pc[i-1] - pc[i-2] // T_{n+1} = 2tc*T_n - T_{n-1}
	}

	for i := 0; i < ncm; i++ {
		c := coef[ncf*(i+l*ncm):]
		sum := 0.0
		for j := 0; j < ncf; j++ {
			sum += pc[j] * c[j]
		}
		pos[i] = sum
	}
	if vel == nil {
		return
	}

	vc[0], vc[1] = 0.0, 1.0
	for i := 2; i < ncf; i++ {
		vc[i] = twot*vc[i-1] + 2*pc[i-1] - vc[i-2] // T'_{n+1} = 2tc*T'_n + 2T_n - T'_{n-1}
	}
	vfac := (dna + dna) / span
	for i := 0; i < ncm; i++ {
		c := coef[ncf*(i+l*ncm):]
		sum := 0.0
		for j := 1; j < ncf; j++ {
			sum += vc[j] * c[j]
		}
		vel[i] = sum * vfac
	}
}
