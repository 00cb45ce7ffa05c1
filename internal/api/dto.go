// ./internal/api/dto.go
package api

/*
Package api provides the request and response bodies.

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
	"github.com/mshafiee/jyotish"
	"github.com/mshafiee/jyotish/ayanamsa"
)

// ChartRequest is the body of POST /api/chart. Either utcOffset or timezone
// may be given; both empty means UTC.
type ChartRequest struct {
	Date      string   `json:"date"`
	Time      string   `json:"time"`
	UTCOffset string   `json:"utcOffset,omitempty"`
	Timezone  string   `json:"timezone,omitempty"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Mode      string   `json:"mode,omitempty"`
}

// Meta describes how a chart was computed.
type Meta struct {
	JulianDay     float64       `json:"jd"`
	OffsetMinutes int           `json:"offset"`
	Mode          ayanamsa.Mode `json:"mode"`
	Degraded      bool          `json:"degraded"`
	CalcTimeMS    float64       `json:"calcTime"`
}

// ChartResponse wraps a chart with its metadata.
type ChartResponse struct {
	Chart *jyotish.Chart `json:"chart"`
	Meta  Meta           `json:"meta"`
}

// AyanamsaResponse is the body of GET /api/ayanamsa.
type AyanamsaResponse struct {
	JulianDay float64           `json:"jd"`
	Standard  ayanamsa.Standard `json:"standard"`
	Ayanamsa  float64           `json:"ayanamsa"`
}

// HealthResponse is the body of GET /api/health.
type HealthResponse struct {
	Status   string `json:"status"`
	Precise  bool   `json:"precise"`
	Fallback bool   `json:"fallback"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
