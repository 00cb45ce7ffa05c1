// ./internal/api/handlers.go
package api

/*
Package api provides the HTTP handlers.

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
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"

	"github.com/mshafiee/jyotish"
	"github.com/mshafiee/jyotish/ayanamsa"
	"github.com/mshafiee/jyotish/ephemeris"
	"github.com/mshafiee/jyotish/timescale"
)

// maxBodyBytes bounds request bodies.
const maxBodyBytes = 1 << 20

// Handler serves the API.
type Handler struct {
	Engine *jyotish.Engine

	// Source answers GET /api/ayanamsa. Nil disables the endpoint.
	Source ayanamsa.Source

	// Info is reported by GET /api/ephemeris when a DE file is loaded.
	Info *ephemeris.Info

	// DefaultMode applies when a chart request names no mode.
	DefaultMode ayanamsa.Mode

	Log logrus.FieldLogger

	// Metrics is optional; when set the router also serves /metrics.
	Metrics *Metrics
}

// NewHandler creates a handler around e.
func NewHandler(e *jyotish.Engine, log logrus.FieldLogger) *Handler {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &Handler{Engine: e, DefaultMode: ayanamsa.Precise, Log: log}
}

// Health reports liveness and whether a precise source is wired.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:   "ok",
		Precise:  h.Engine.Precise != nil,
		Fallback: h.Engine.Fallback,
	})
}

// Chart computes a chart from a ChartRequest.
func (h *Handler) Chart(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req ChartRequest
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	in, loc, mode, err := h.parseChartRequest(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, jyotish.ErrInvalidInput.Error(), err)
		return
	}

	c, err := h.Engine.ComputeChart(r.Context(), in, loc, mode)
	if err != nil {
		h.Metrics.observeChart(mode.String(), "error", false, 0)
		h.fail(w, r, err)
		return
	}
	h.Metrics.observeChart(c.Mode.String(), "ok", c.Degraded, time.Since(start).Seconds())

	writeJSON(w, http.StatusOK, ChartResponse{
		Chart: c,
		Meta: Meta{
			JulianDay:     c.JulianDay,
			OffsetMinutes: in.OffsetMinutes,
			Mode:          c.Mode,
			Degraded:      c.Degraded,
			CalcTimeMS:    float64(time.Since(start).Microseconds()) / 1000,
		},
	})
}

func (h *Handler) parseChartRequest(req ChartRequest) (timescale.Instant, jyotish.Location, ayanamsa.Mode, error) {
	var (
		loc  jyotish.Location
		mode = h.DefaultMode
	)
	switch {
	case req.Date == "" || req.Time == "":
		return timescale.Instant{}, loc, mode, &jyotish.InputError{Field: "date/time", Value: "", Reason: "both are required"}
	case req.Latitude == nil || req.Longitude == nil:
		return timescale.Instant{}, loc, mode, &jyotish.InputError{Field: "latitude/longitude", Value: nil, Reason: "both are required"}
	case req.UTCOffset != "" && req.Timezone != "":
		return timescale.Instant{}, loc, mode, &jyotish.InputError{Field: "timezone", Value: req.Timezone, Reason: "give either utcOffset or timezone"}
	}
	loc = jyotish.Location{Latitude: *req.Latitude, Longitude: *req.Longitude}

	if req.Mode != "" {
		m, ok := ayanamsa.ParseMode(req.Mode)
		if !ok {
			return timescale.Instant{}, loc, mode, &jyotish.InputError{Field: "mode", Value: req.Mode, Reason: "must be precise or approximate"}
		}
		mode = m
	}

	in, err := timescale.Parse(req.Date, req.Time, req.UTCOffset)
	if err != nil {
		return in, loc, mode, err
	}
	if req.Timezone != "" {
		in, err = in.WithZone(req.Timezone)
	}
	return in, loc, mode, err
}

// Ayanamsa returns the precise ayanamsa for ?jd= and optional ?standard=.
func (h *Handler) Ayanamsa(w http.ResponseWriter, r *http.Request) {
	if h.Source == nil {
		writeError(w, http.StatusServiceUnavailable, jyotish.ErrEphemerisUnavailable.Error(),
			errors.New("no precise source configured"))
		return
	}
	q := r.URL.Query()
	jd, err := strconv.ParseFloat(q.Get("jd"), 64)
	if err != nil || math.IsNaN(jd) || math.IsInf(jd, 0) {
		writeError(w, http.StatusBadRequest, jyotish.ErrInvalidInput.Error(), fmt.Errorf("jd: %q is not a number", q.Get("jd")))
		return
	}
	std := ayanamsa.Standard(strings.ToLower(q.Get("standard")))
	if std == "" {
		std = ayanamsa.Lahiri
	}

	v, err := h.Source.Ayanamsa(r.Context(), jd, std)
	switch {
	case errors.Is(err, ayanamsa.ErrUnknownStandard), errors.Is(err, ephemeris.ErrOutsideRange):
		h.Metrics.observeAyanamsa(string(std), "rejected")
		writeError(w, http.StatusBadRequest, jyotish.ErrInvalidInput.Error(), err)
		return
	case err != nil:
		h.Metrics.observeAyanamsa(string(std), "error")
		h.fail(w, r, fmt.Errorf("%w: %w", jyotish.ErrEphemerisUnavailable, err))
		return
	}
	h.Metrics.observeAyanamsa(string(std), "ok")
	writeJSON(w, http.StatusOK, AyanamsaResponse{JulianDay: jd, Standard: std, Ayanamsa: v})
}

// Ephemeris describes the loaded DE file.
func (h *Handler) Ephemeris(w http.ResponseWriter, r *http.Request) {
	if h.Info == nil {
		writeError(w, http.StatusNotFound, "no ephemeris file loaded", nil)
		return
	}
	writeJSON(w, http.StatusOK, h.Info)
}

// fail maps a computation error onto a status code.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	entry := h.Log.WithError(err).WithFields(logrus.Fields{
		"path":       r.URL.Path,
		"status":     status,
		"request_id": middleware.GetReqID(r.Context()),
	})
	if status >= http.StatusInternalServerError {
		entry.Error("request failed")
	} else {
		entry.Debug("request rejected")
	}

	msg := "internal error"
	switch {
	case errors.Is(err, jyotish.ErrInvalidInput):
		msg = jyotish.ErrInvalidInput.Error()
	case errors.Is(err, jyotish.ErrPolarLatitude):
		msg = jyotish.ErrPolarLatitude.Error()
	case errors.Is(err, jyotish.ErrEphemerisUnavailable):
		msg = jyotish.ErrEphemerisUnavailable.Error()
	case errors.Is(err, jyotish.ErrComputationInvariant):
		msg = jyotish.ErrComputationInvariant.Error()
	}
	writeError(w, status, msg, err)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, jyotish.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, jyotish.ErrPolarLatitude):
		return http.StatusUnprocessableEntity
	case errors.Is(err, jyotish.ErrEphemerisUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// requestLogger logs one line per request through the handler's logger.
func (h *Handler) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		defer func() {
			var route string
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				route = rctx.RoutePattern()
			}
			h.Metrics.observeRequest(r.Method, route, ww.Status(), time.Since(start).Seconds())
			h.Log.WithFields(logrus.Fields{
				"method":     r.Method,
				"path":       r.URL.Path,
				"status":     ww.Status(),
				"bytes":      ww.BytesWritten(),
				"duration":   time.Since(start).String(),
				"request_id": middleware.GetReqID(r.Context()),
			}).Info("http request")
		}()
		next.ServeHTTP(ww, r)
	})
}

// writeJSON encodes data before committing the status, so an encoding
// failure becomes a 500 instead of a truncated 200.
func writeJSON(w http.ResponseWriter, status int, data any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(data); err != nil {
		buf.Reset()
		status = http.StatusInternalServerError
		json.NewEncoder(&buf).Encode(ErrorResponse{
			Error:   "encoding response",
			Details: err.Error(),
		})
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
