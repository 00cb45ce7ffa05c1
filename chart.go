// ./chart.go
package jyotish

/*
Package jyotish provides the chart input and output types.

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
	"math"

	"github.com/mshafiee/jyotish/angle"
	"github.com/mshafiee/jyotish/ayanamsa"
	"github.com/mshafiee/jyotish/dasha"
	"github.com/mshafiee/jyotish/houses"
	"github.com/mshafiee/jyotish/timescale"
	"github.com/mshafiee/jyotish/varga"
)

// Location is a geographic position in degrees, longitude east-positive.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Validate checks ranges. Polar latitudes, the poles included, pass here and
// are rejected by the ascendant step with ErrPolarLatitude.
func (l Location) Validate() error {
	if math.IsNaN(l.Latitude) || math.IsInf(l.Latitude, 0) || l.Latitude < -90 || l.Latitude > 90 {
		return &InputError{Field: "latitude", Value: l.Latitude, Reason: "must be inside [-90, 90]"}
	}
	if math.IsNaN(l.Longitude) || math.IsInf(l.Longitude, 0) || l.Longitude < -180 || l.Longitude > 180 {
		return &InputError{Field: "longitude", Value: l.Longitude, Reason: "must be inside [-180, 180]"}
	}
	return nil
}

// Position is a tropical ecliptic longitude and its rate in degrees per day,
// as delivered by a BodySource.
type Position struct {
	Longitude float64 `json:"longitude"`
	Speed     float64 `json:"speed"`
}

// Retrograde reports apparent backward motion.
func (p Position) Retrograde() bool {
	return p.Speed < 0
}

// Point is a sidereal longitude with its decomposition.
type Point struct {
	Longitude float64   `json:"longitude"`
	Sign      int       `json:"sign"`
	SignName  string    `json:"signName"`
	Degree    float64   `json:"degree"`
	DMS       angle.DMS `json:"dms"`
	Formatted string    `json:"formatted"`
}

func newPoint(long float64) Point {
	l := angle.Normalize(long)
	s := angle.Sign(l)
	return Point{
		Longitude: l,
		Sign:      s,
		SignName:  angle.SignName(s),
		Degree:    angle.DegreeInSign(l),
		DMS:       angle.Split(l),
		Formatted: angle.Format(l),
	}
}

// Placement is a body's sidereal position in the birth chart.
type Placement struct {
	Point
	Body       Body    `json:"body"`
	Speed      float64 `json:"speed"`
	Retrograde bool    `json:"retrograde"`
	House      int     `json:"house"`
	Nature     Nature  `json:"nature"`
	Lord       string  `json:"signLord"`
}

// HouseInfo is a whole-sign house with its occupants.
type HouseInfo struct {
	houses.House
	Occupants []Body `json:"occupants"`
}

// VargaChart is one divisional chart.
type VargaChart struct {
	N         int                      `json:"n"`
	Name      string                   `json:"name"`
	Ascendant varga.Placement          `json:"ascendant"`
	Positions map[Body]varga.Placement `json:"positions"`
}

// Chart is a complete sidereal chart. A Chart is only ever returned whole.
type Chart struct {
	Instant           timescale.Instant `json:"instant"`
	Location          Location          `json:"location"`
	JulianDay         float64           `json:"julianDay"`
	Mode              ayanamsa.Mode     `json:"mode"`
	Degraded          bool              `json:"degraded"`
	Ayanamsa          float64           `json:"ayanamsa"`
	Obliquity         float64           `json:"obliquity"`
	LocalSiderealTime float64           `json:"localSiderealTime"`
	Ascendant         Point             `json:"ascendant"`
	Bodies            []Placement       `json:"bodies"`
	Houses            [12]HouseInfo     `json:"houses"`
	Vargas            []VargaChart      `json:"vargas"`
	Nakshatra         dasha.Placement   `json:"nakshatra"`
	Dasha             dasha.Timeline    `json:"dasha"`
}

// Body returns the placement of b.
func (c *Chart) Body(b Body) (Placement, bool) {
	for _, p := range c.Bodies {
		if p.Body == b {
			return p, true
		}
	}
	return Placement{}, false
}

// Varga returns the divisional chart with fold count n.
func (c *Chart) Varga(n int) (VargaChart, bool) {
	for _, v := range c.Vargas {
		if v.N == n {
			return v, true
		}
	}
	return VargaChart{}, false
}
