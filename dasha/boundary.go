// ./dasha/boundary.go
package dasha

/*
Package dasha provides JSON encoding of period boundaries across the full
supported year range.

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
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FormatBoundary renders t in UTC as RFC 3339. Years outside 0000-9999 use
// the ISO 8601 expanded form with a sign and six year digits, for example
// "-000500-06-01T00:00:00Z".
func FormatBoundary(t time.Time) string {
	t = t.UTC()
	y := t.Year()
	if y >= 0 && y <= 9999 {
		return t.Format(time.RFC3339Nano)
	}
	sign := "+"
	if y < 0 {
		sign, y = "-", -y
	}
	// 2000 is a leap year, so 29 February survives the substitution.
	rest := time.Date(2000, t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(),
		t.Nanosecond(), time.UTC).Format(time.RFC3339Nano)
	return fmt.Sprintf("%s%06d%s", sign, y, rest[4:])
}

// ParseBoundary reverses FormatBoundary and also accepts plain RFC 3339.
func ParseBoundary(s string) (time.Time, error) {
	if s == "" || (s[0] != '+' && s[0] != '-') {
		return time.Parse(time.RFC3339Nano, s)
	}
	i := strings.IndexByte(s[1:], '-')
	if i < 1 {
		return time.Time{}, fmt.Errorf("malformed boundary %q", s)
	}
	y, err := strconv.Atoi(s[1 : i+1])
	if err != nil {
		return time.Time{}, fmt.Errorf("malformed boundary year %q: %w", s, err)
	}
	if s[0] == '-' {
		y = -y
	}
	t, err := time.Parse(time.RFC3339Nano, "2000"+s[i+1:])
	if err != nil {
		return time.Time{}, fmt.Errorf("malformed boundary %q: %w", s, err)
	}
	return time.Date(y, t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(),
		t.Nanosecond(), t.Location()), nil
}

type periodJSON struct {
	Lord    Lord    `json:"lord"`
	Start   string  `json:"start"`
	End     string  `json:"end"`
	Years   float64 `json:"years"`
	Partial bool    `json:"partial"`
}

// MarshalJSON implements json.Marshaler. time.Time alone cannot encode
// years outside 0000-9999.
func (p Period) MarshalJSON() ([]byte, error) {
	return json.Marshal(periodJSON{
		Lord:    p.Lord,
		Start:   FormatBoundary(p.Start),
		End:     FormatBoundary(p.End),
		Years:   p.Years,
		Partial: p.Partial,
	})
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *Period) UnmarshalJSON(data []byte) error {
	var raw periodJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	start, err := ParseBoundary(raw.Start)
	if err != nil {
		return fmt.Errorf("start: %w", err)
	}
	end, err := ParseBoundary(raw.End)
	if err != nil {
		return fmt.Errorf("end: %w", err)
	}
	*p = Period{Lord: raw.Lord, Start: start, End: end, Years: raw.Years, Partial: raw.Partial}
	return nil
}
