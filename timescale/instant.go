// ./timescale/instant.go
package timescale

/*
Package timescale provides the civil Instant value type.

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
	"math"
	"strconv"
	"strings"
	"time"
)

// Supported civil year range. The lower bound keeps the day count positive.
const (
	MinYear = -4712
	MaxYear = 9999
)

// MaxOffsetMinutes bounds UTC offsets to the range used by real time zones.
const MaxOffsetMinutes = 14 * 60

// ErrInvalidInstant is returned when a civil instant has a malformed field.
var ErrInvalidInstant = errors.New("invalid civil instant")

// FieldError names the offending field of an Instant.
type FieldError struct {
	Field  string
	Value  any
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("invalid %s %v: %s", e.Field, e.Value, e.Reason)
}

func (e *FieldError) Unwrap() error {
	return ErrInvalidInstant
}

// Instant is a civil date and time observed at a fixed UTC offset.
// OffsetMinutes is east positive: India Standard Time is +330.
type Instant struct {
	Year          int     `json:"year"`
	Month         int     `json:"month"`
	Day           int     `json:"day"`
	Hour          int     `json:"hour"`
	Minute        int     `json:"minute"`
	Second        float64 `json:"second"`
	OffsetMinutes int     `json:"utcOffsetMinutes"`
}

// Validate checks every field against the Gregorian calendar.
func (i Instant) Validate() error {
	switch {
	case i.Year < MinYear || i.Year > MaxYear:
		return &FieldError{Field: "year", Value: i.Year, Reason: fmt.Sprintf("outside [%d, %d]", MinYear, MaxYear)}
	case i.Month < 1 || i.Month > 12:
		return &FieldError{Field: "month", Value: i.Month, Reason: "must be 1-12"}
	case i.Day < 1 || i.Day > DaysIn(i.Year, i.Month):
		return &FieldError{Field: "day", Value: i.Day, Reason: fmt.Sprintf("must be 1-%d", DaysIn(i.Year, i.Month))}
	case i.Hour < 0 || i.Hour > 23:
		return &FieldError{Field: "hour", Value: i.Hour, Reason: "must be 0-23"}
	case i.Minute < 0 || i.Minute > 59:
		return &FieldError{Field: "minute", Value: i.Minute, Reason: "must be 0-59"}
	case math.IsNaN(i.Second) || i.Second < 0 || i.Second >= 60:
		return &FieldError{Field: "second", Value: i.Second, Reason: "must be in [0, 60)"}
	case i.OffsetMinutes < -MaxOffsetMinutes || i.OffsetMinutes > MaxOffsetMinutes:
		return &FieldError{Field: "utcOffset", Value: i.OffsetMinutes, Reason: "must be within ±14h"}
	}
	return nil
}

// JulianDay returns the UT Julian day of the instant.
func (i Instant) JulianDay() float64 {
	return JulianDay(i.Year, i.Month, i.Day, i.Hour, i.Minute, i.Second, i.OffsetMinutes)
}

// Time returns the instant as a time.Time in a fixed zone carrying the offset.
func (i Instant) Time() time.Time {
	whole, frac := math.Modf(i.Second)
	zone := time.FixedZone(FormatOffset(i.OffsetMinutes), i.OffsetMinutes*60)
	return time.Date(i.Year, time.Month(i.Month), i.Day, i.Hour, i.Minute,
		int(whole), int(math.Round(frac*1e9)), zone)
}

// String renders the instant as ISO 8601 with a numeric offset.
func (i Instant) String() string {
	return i.Time().Format("2006-01-02T15:04:05-07:00")
}

// WithZone returns i with OffsetMinutes taken from the IANA zone name at
// that civil time, so historical and daylight-saving offsets apply.
func (i Instant) WithZone(name string) (Instant, error) {
	zone, err := time.LoadLocation(name)
	if err != nil {
		return i, &FieldError{Field: "timezone", Value: name, Reason: err.Error()}
	}
	whole, frac := math.Modf(i.Second)
	t := time.Date(i.Year, time.Month(i.Month), i.Day, i.Hour, i.Minute,
		int(whole), int(math.Round(frac*1e9)), zone)
	_, off := t.Zone()
	i.OffsetMinutes = off / 60
	return i, i.Validate()
}

// FromTime builds an Instant from a time.Time, keeping its zone offset.
func FromTime(t time.Time) Instant {
	_, off := t.Zone()
	return Instant{
		Year:          t.Year(),
		Month:         int(t.Month()),
		Day:           t.Day(),
		Hour:          t.Hour(),
		Minute:        t.Minute(),
		Second:        float64(t.Second()) + float64(t.Nanosecond())/1e9,
		OffsetMinutes: off / 60,
	}
}

// DaysIn returns the number of days in a Gregorian month.
func DaysIn(year, month int) int {
	switch month {
	case 2:
		if IsLeap(year) {
			return 29
		}
		return 28
	case 4, 6, 9, 11:
		return 30
	default:
		return 31
	}
}

// IsLeap reports whether a proleptic Gregorian year is a leap year.
func IsLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// Parse builds an Instant from "YYYY-MM-DD", "HH:MM[:SS]" and an offset such as
// "+05:30", "-0800", "Z" or "UTC". An empty offset means UTC.
func Parse(date, clock, offset string) (Instant, error) {
	var inst Instant
	dparts := strings.Split(strings.TrimSpace(date), "-")
	neg := false
	if len(dparts) == 4 && dparts[0] == "" { // leading minus on the year
		neg = true
		dparts = dparts[1:]
	}
	if len(dparts) != 3 {
		return inst, &FieldError{Field: "date", Value: date, Reason: "expected YYYY-MM-DD"}
	}
	nums := make([]int, 3)
	for k, p := range dparts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return inst, &FieldError{Field: "date", Value: date, Reason: "non-numeric component"}
		}
		nums[k] = n
	}
	if neg {
		nums[0] = -nums[0]
	}
	inst.Year, inst.Month, inst.Day = nums[0], nums[1], nums[2]

	cparts := strings.Split(strings.TrimSpace(clock), ":")
	if len(cparts) < 2 || len(cparts) > 3 {
		return inst, &FieldError{Field: "time", Value: clock, Reason: "expected HH:MM or HH:MM:SS"}
	}
	h, err := strconv.Atoi(cparts[0])
	if err != nil {
		return inst, &FieldError{Field: "time", Value: clock, Reason: "non-numeric hour"}
	}
	m, err := strconv.Atoi(cparts[1])
	if err != nil {
		return inst, &FieldError{Field: "time", Value: clock, Reason: "non-numeric minute"}
	}
	inst.Hour, inst.Minute = h, m
	if len(cparts) == 3 {
		s, err := strconv.ParseFloat(cparts[2], 64)
		if err != nil {
			return inst, &FieldError{Field: "time", Value: clock, Reason: "non-numeric second"}
		}
		inst.Second = s
	}

	off, err := ParseOffset(offset)
	if err != nil {
		return inst, err
	}
	inst.OffsetMinutes = off
	return inst, inst.Validate()
}

// ParseOffset parses "+05:30", "+0530", "-8", "Z" or "UTC" into minutes east of UTC.
func ParseOffset(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "Z") || strings.EqualFold(s, "UTC") {
		return 0, nil
	}
	sign := 1
	switch s[0] {
	case '+':
		s = s[1:]
	case '-':
		sign = -1
		s = s[1:]
	}
	var hh, mm string
	switch {
	case strings.Contains(s, ":"):
		parts := strings.SplitN(s, ":", 2)
		hh, mm = parts[0], parts[1]
	case len(s) == 4:
		hh, mm = s[:2], s[2:]
	default:
		hh, mm = s, "0"
	}
	h, err1 := strconv.Atoi(hh)
	m, err2 := strconv.Atoi(mm)
	if err1 != nil || err2 != nil || m < 0 || m > 59 || h < 0 {
		return 0, &FieldError{Field: "utcOffset", Value: s, Reason: "expected ±HH:MM"}
	}
	off := sign * (h*60 + m)
	if off < -MaxOffsetMinutes || off > MaxOffsetMinutes {
		return 0, &FieldError{Field: "utcOffset", Value: off, Reason: "must be within ±14h"}
	}
	return off, nil
}

// FormatOffset renders minutes east of UTC as "+05:30".
func FormatOffset(minutes int) string {
	sign := '+'
	if minutes < 0 {
		sign = '-'
		minutes = -minutes
	}
	return fmt.Sprintf("%c%02d:%02d", sign, minutes/60, minutes%60)
}
