// ./angle/signs.go
package angle

/*
Package angle provides the static zodiac sign tables.

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

var signNames = [12]string{
	"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
	"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

// Traditional rulers, indexed by sign.
var signLords = [12]string{
	"Mars", "Venus", "Mercury", "Moon", "Sun", "Mercury",
	"Venus", "Mars", "Jupiter", "Saturn", "Saturn", "Jupiter",
}

// Modality groups used by the navamsa start rule.
const (
	Movable = iota
	Fixed
	Dual
)

// SignName returns the English name of a sign index. Indices outside 0-11 wrap.
func SignName(sign int) string {
	return signNames[wrapSign(sign)]
}

// SignLord returns the name of the traditional ruler of a sign.
func SignLord(sign int) string {
	return signLords[wrapSign(sign)]
}

// Modality returns Movable, Fixed or Dual for a sign index.
func Modality(sign int) int {
	return wrapSign(sign) % 3
}

// IsOdd reports whether a sign is odd-numbered counting Aries as the first sign.
func IsOdd(sign int) bool {
	return wrapSign(sign)%2 == 0
}

func wrapSign(s int) int {
	return ((s % 12) + 12) % 12
}
