// ./engine.go
package jyotish

/*
Package jyotish provides the chart engine tying every step together.

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
	"fmt"
	"io"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/mshafiee/jyotish/angle"
	"github.com/mshafiee/jyotish/ayanamsa"
	"github.com/mshafiee/jyotish/dasha"
	"github.com/mshafiee/jyotish/ecliptic"
	"github.com/mshafiee/jyotish/houses"
	"github.com/mshafiee/jyotish/timescale"
	"github.com/mshafiee/jyotish/varga"
)

// BodySource supplies tropical geocentric positions of the modeled bodies for
// a UT Julian day. Rahu and Ketu are never requested.
type BodySource interface {
	Position(ctx context.Context, jd float64, b Body) (Position, error)
}

// Engine computes charts. The zero value is not usable; see New.
type Engine struct {
	Bodies      BodySource
	Precise     ayanamsa.Provider // may be nil
	Approximate ayanamsa.Provider

	// Fallback lets a precise request continue on the approximate model when
	// the precise source is unavailable. The chart is then marked Degraded.
	Fallback bool

	Horizon float64      // dasha horizon in years
	Vargas  []varga.Rule // divisional charts to compute
	Logger  logrus.FieldLogger
}

// New returns an engine with the approximate model, fallback enabled, the
// default dasha horizon and the built-in divisional charts.
func New(bodies BodySource, precise ayanamsa.Provider) *Engine {
	return &Engine{
		Bodies:      bodies,
		Precise:     precise,
		Approximate: ayanamsa.DefaultLinear(),
		Fallback:    true,
		Horizon:     dasha.DefaultHorizon,
		Vargas:      varga.Builtin(),
	}
}

func (e *Engine) logger() logrus.FieldLogger {
	if e.Logger != nil {
		return e.Logger
	}
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// ComputeChart computes the chart for a civil instant and location.
// Either the whole chart or an error is returned.
func (e *Engine) ComputeChart(ctx context.Context, in timescale.Instant, loc Location, mode ayanamsa.Mode) (*Chart, error) {
	if err := in.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if err := loc.Validate(); err != nil {
		return nil, err
	}
	if e.Bodies == nil {
		return nil, fmt.Errorf("%w: no body source configured", ErrEphemerisUnavailable)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	jd := in.JulianDay()
	log := e.logger().WithFields(logrus.Fields{"jd": jd, "mode": mode.String()})

	ayan, used, degraded, err := e.ayanamsa(ctx, jd, mode, log)
	if err != nil {
		return nil, err
	}

	eps := ecliptic.Obliquity(jd, used)
	lst := ecliptic.LocalSiderealTime(jd, loc.Longitude)
	tropAsc, err := ecliptic.Ascendant(lst, loc.Latitude, eps)
	if err != nil {
		return nil, fmt.Errorf("ascendant: %w", err)
	}
	asc := ecliptic.Sidereal(tropAsc, ayan)

	tropical, err := e.positions(ctx, jd)
	if err != nil {
		return nil, err
	}

	c := &Chart{
		Instant:           in,
		Location:          loc,
		JulianDay:         jd,
		Mode:              used,
		Degraded:          degraded,
		Ayanamsa:          ayan,
		Obliquity:         eps,
		LocalSiderealTime: lst,
		Ascendant:         newPoint(asc),
	}

	sidereal := make(map[Body]float64, len(Bodies))
	for _, b := range Bodies {
		p := tropical[b]
		long := ecliptic.Sidereal(p.Longitude, ayan)
		sidereal[b] = long
		pl := Placement{
			Point:      newPoint(long),
			Body:       b,
			Speed:      p.Speed,
			Retrograde: p.Retrograde(),
			House:      houses.Of(long, asc),
			Nature:     b.Nature(),
		}
		pl.Lord = angle.SignLord(pl.Sign)
		if err := checkPlacement(pl); err != nil {
			return nil, err
		}
		c.Bodies = append(c.Bodies, pl)
	}

	occ := houses.Occupants(Bodies[:], sidereal, asc)
	for i, h := range houses.Layout(asc) {
		c.Houses[i] = HouseInfo{House: h, Occupants: occ[i]}
	}

	for _, r := range e.vargas() {
		vc := VargaChart{
			N:         r.N,
			Name:      r.Name,
			Ascendant: r.Place(asc),
			Positions: varga.Compute(r, sidereal),
		}
		if err := checkVarga(vc); err != nil {
			return nil, err
		}
		c.Vargas = append(c.Vargas, vc)
	}

	moon := sidereal[Moon]
	c.Nakshatra = dasha.Locate(moon)
	c.Dasha = dasha.Generate(moon, in.Time().UTC(), e.Horizon)

	log.WithFields(logrus.Fields{
		"ayanamsa":  ayan,
		"ascendant": asc,
		"degraded":  degraded,
	}).Debug("chart computed")
	return c, nil
}

// ayanamsa resolves the offset and the mode actually used. Fallback to the
// approximate model happens only on an unavailable precise source and is
// always logged.
func (e *Engine) ayanamsa(ctx context.Context, jd float64, mode ayanamsa.Mode, log logrus.FieldLogger) (float64, ayanamsa.Mode, bool, error) {
	approx := e.Approximate
	if approx == nil {
		approx = ayanamsa.DefaultLinear()
	}

	var (
		v   float64
		err error
	)
	switch mode {
	case ayanamsa.Approximate:
		v, err = approx.Ayanamsa(ctx, jd)
		if err != nil {
			return 0, mode, false, fmt.Errorf("approximate ayanamsa: %w", err)
		}
		return v, ayanamsa.Approximate, false, checkFinite("ayanamsa", v)
	case ayanamsa.Precise:
	default:
		return 0, mode, false, &InputError{Field: "mode", Value: mode, Reason: "unknown ayanamsa mode"}
	}

	if e.Precise == nil {
		err = fmt.Errorf("%w: no precise source configured", ayanamsa.ErrUnavailable)
	} else {
		v, err = e.Precise.Ayanamsa(ctx, jd)
	}
	if err == nil {
		return v, ayanamsa.Precise, false, checkFinite("ayanamsa", v)
	}
	if !errors.Is(err, ayanamsa.ErrUnavailable) || !e.Fallback {
		return 0, mode, false, fmt.Errorf("%w: %w", ErrEphemerisUnavailable, err)
	}

	log.WithError(err).Warn("precise ayanamsa unavailable, falling back to approximate model")
	v, aerr := approx.Ayanamsa(ctx, jd)
	if aerr != nil {
		return 0, mode, false, fmt.Errorf("%w: %w", ErrEphemerisUnavailable, aerr)
	}
	return v, ayanamsa.Approximate, true, checkFinite("ayanamsa", v)
}

// positions returns tropical positions for all nine bodies.
func (e *Engine) positions(ctx context.Context, jd float64) (map[Body]Position, error) {
	out := make(map[Body]Position, len(Bodies))
	for _, b := range Modeled {
		p, err := e.Bodies.Position(ctx, jd, b)
		if err != nil {
			if errors.Is(err, ErrEphemerisUnavailable) {
				return nil, fmt.Errorf("%s: %w", b, err)
			}
			return nil, fmt.Errorf("%w: %s: %w", ErrEphemerisUnavailable, b, err)
		}
		if err := checkFinite(b.String()+" longitude", p.Longitude); err != nil {
			return nil, err
		}
		if err := checkFinite(b.String()+" speed", p.Speed); err != nil {
			return nil, err
		}
		p.Longitude = angle.Normalize(p.Longitude)
		out[b] = p
	}

	node, speed := ecliptic.MeanNode(jd)
	out[Rahu] = Position{Longitude: node, Speed: speed}
	out[Ketu] = Position{Longitude: angle.Normalize(node + 180), Speed: speed}
	return out, nil
}

func (e *Engine) vargas() []varga.Rule {
	if len(e.Vargas) == 0 {
		return varga.Builtin()
	}
	return e.Vargas
}

func checkFinite(what string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &InvariantError{What: what, Value: v}
	}
	return nil
}

func checkPlacement(p Placement) error {
	switch {
	case p.Longitude < 0 || p.Longitude >= 360:
		return &InvariantError{What: p.Body.String() + " longitude", Value: p.Longitude}
	case p.Sign < 0 || p.Sign > 11:
		return &InvariantError{What: p.Body.String() + " sign", Value: p.Sign}
	case p.House < 1 || p.House > 12:
		return &InvariantError{What: p.Body.String() + " house", Value: p.House}
	}
	return nil
}

func checkVarga(vc VargaChart) error {
	if s := vc.Ascendant.Sign; s < 0 || s > 11 {
		return &InvariantError{What: fmt.Sprintf("D%d ascendant sign", vc.N), Value: s}
	}
	for b, p := range vc.Positions {
		if p.Sign < 0 || p.Sign > 11 || p.Longitude < 0 || p.Longitude >= 360 {
			return &InvariantError{What: fmt.Sprintf("D%d %s", vc.N, b), Value: p.Longitude}
		}
	}
	return nil
}
