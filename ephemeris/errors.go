// ./ephemeris/errors.go
package ephemeris

/*
Package ephemeris provides the errors returned by ephemeris sources.

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

import "errors"

var (
	// ErrOutsideRange is returned when the requested epoch is outside the time span of the file.
	ErrOutsideRange = errors.New("ephemeris: epoch outside ephemeris range")

	// ErrQuantityNotInEphemeris is returned for nutations, librations, mantle
	// rates or TT-TDB when the file does not carry them.
	ErrQuantityNotInEphemeris = errors.New("ephemeris: quantity not in ephemeris")

	// ErrInvalidIndex is returned for an unknown target or center.
	ErrInvalidIndex = errors.New("ephemeris: invalid target or center")

	// ErrFileRead is returned when a record could not be read.
	ErrFileRead = errors.New("ephemeris: read error")

	// ErrCorrupt is returned when the header fails a sanity check.
	ErrCorrupt = errors.New("ephemeris: file corrupt")

	// ErrConstantNotFound is returned by Constant for an unknown name.
	ErrConstantNotFound = errors.New("ephemeris: constant not found")

	// ErrUnsupportedBody is returned for bodies that are not read from an ephemeris (the lunar nodes).
	ErrUnsupportedBody = errors.New("ephemeris: body not modeled")

	// ErrClosed is returned by any call on a closed handle.
	ErrClosed = errors.New("ephemeris: closed")
)
