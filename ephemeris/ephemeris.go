// ./ephemeris/ephemeris.go

// Package ephemeris reads JPL DE binary ephemerides and turns them into
// geocentric ecliptic longitudes for chart computation. An analytic source
// is provided for use without a data file.
package ephemeris

/*
Package ephemeris provides functions for accessing JPL planetary and lunar ephemerides.

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

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

// Info describes an open ephemeris.
type Info struct {
	Name         string  `json:"name"`
	Version      int     `json:"version"`
	Start        float64 `json:"start"` // JED
	End          float64 `json:"end"`   // JED
	Step         float64 `json:"step"`  // days per record
	AU           float64 `json:"au"`    // km
	EMRAT        float64 `json:"emrat"`
	Constants    int     `json:"constants"`
	KernelSize   int     `json:"kernelSize"`
	RecordSize   int     `json:"recordSize"`
	Coefficients int     `json:"coefficients"`
	Swapped      bool    `json:"swapped"`
	Nutations    bool    `json:"nutations"`
	Librations   bool    `json:"librations"`
	TTMinusTDB   bool    `json:"ttMinusTdb"`
}

// Constant is a named header constant.
type Constant struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// Ephemeris is an open DE file. It is safe for concurrent use; reads of the
// single cached record are serialized.
type Ephemeris struct {
	br     binaryReader
	h      *header
	closer io.Closer
	log    logrus.FieldLogger

	consts []Constant
	byName map[string]int

	mu      sync.Mutex
	closed  bool
	cache   []float64
	cacheNr int64
}

// Option configures Open.
type Option func(*Ephemeris)

// WithLogger sets the logger used for debug output. Nil discards.
func WithLogger(l logrus.FieldLogger) Option {
	return func(e *Ephemeris) {
		if l != nil {
			e.log = l
		}
	}
}

func discard() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// Open opens the ephemeris file at path. The caller owns the handle and must
// Close it.
func Open(path string, opts ...Option) (*Ephemeris, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open ephemeris file: %w", err)
	}
	e, err := open(f, f, opts)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	e.log.WithFields(logrus.Fields{"path": path, "name": e.h.name, "version": e.h.version}).Debug("ephemeris opened")
	return e, nil
}

// OpenReader opens an ephemeris from r. Close does not close r.
func OpenReader(r io.ReaderAt, opts ...Option) (*Ephemeris, error) {
	return open(r, nil, opts)
}

func open(r io.ReaderAt, c io.Closer, opts []Option) (*Ephemeris, error) {
	e := &Ephemeris{br: binaryReader{r: r}, closer: c, log: discard(), cacheNr: -1}
	for _, o := range opts {
		o(e)
	}
	h, err := readHeader(&e.br)
	if err != nil {
		return nil, err
	}
	e.h = h
	if err := e.loadConstants(); err != nil {
		return nil, err
	}
	e.log.WithFields(logrus.Fields{
		"start":   h.start,
		"end":     h.end,
		"ncoeff":  h.ncoeff,
		"swapped": h.swapped,
	}).Debug("ephemeris header parsed")
	return e, nil
}

// loadConstants reads all constant names and values. Names 400 and up are
// stored after the numeric header.
func (e *Ephemeris) loadConstants() error {
	n := e.h.ncon
	if n == 0 {
		return nil
	}
	names := make([]byte, constNameLen)
	vals, err := e.br.float64s(nil, n, int64(e.h.recsize))
	if err != nil {
		return fmt.Errorf("read constant values: %w", err)
	}
	e.consts = make([]Constant, n)
	e.byName = make(map[string]int, n)
	for i := 0; i < n; i++ {
		off := int64(constNamesStart + i*constNameLen)
		if i >= 400 {
			off = int64(extraNamesStart + (i-400)*constNameLen)
		}
		if err := e.br.readAt(names, off); err != nil {
			return fmt.Errorf("read constant name %d: %w", i, err)
		}
		name := strings.TrimSpace(strings.TrimRight(string(names), "\x00"))
		e.consts[i] = Constant{Name: name, Value: vals[i]}
		if _, dup := e.byName[name]; !dup {
			e.byName[name] = i
		}
	}
	return nil
}

// Close releases the file. Further calls return ErrClosed.
func (e *Ephemeris) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return nil
	}
	e.closed = true
	e.cache = nil
	if e.closer != nil {
		return e.closer.Close()
	}
	return nil
}

// Info returns the header metadata.
func (e *Ephemeris) Info() Info {
	h := e.h
	return Info{
		Name:         h.name,
		Version:      h.version,
		Start:        h.start,
		End:          h.end,
		Step:         h.step,
		AU:           h.au,
		EMRAT:        h.emrat,
		Constants:    h.ncon,
		KernelSize:   h.kernel,
		RecordSize:   h.recsize,
		Coefficients: h.ncoeff,
		Swapped:      h.swapped,
		Nutations:    h.ipt[iptNutations][1] > 0,
		Librations:   h.ipt[iptLibrations][1] > 0,
		TTMinusTDB:   h.ipt[iptTTMinusTDB][1] > 0,
	}
}

// Covers reports whether et lies inside the file span.
func (e *Ephemeris) Covers(et float64) bool {
	return et >= e.h.start && et <= e.h.end
}

// Constants returns the header constants in file order.
func (e *Ephemeris) Constants() []Constant {
	return append([]Constant(nil), e.consts...)
}

// Constant returns the value of a named constant such as "AU" or "EMRAT".
func (e *Ephemeris) Constant(name string) (float64, error) {
	i, ok := e.byName[strings.ToUpper(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrConstantNotFound, name)
	}
	return e.consts[i].Value, nil
}

// State returns the position (AU) and velocity (AU/day) of target relative
// to center at Julian Ephemeris Date et.
//
// For the special targets Nutations, Librations, LunarMantleOmega and
// TTMinusTDB the center is ignored and the raw quantity is returned
// (radians, radians/day; seconds for TT-TDB), or ErrQuantityNotInEphemeris
// when the file does not carry it.
func (e *Ephemeris) State(et float64, target, center Target) (pos, vel Vector, err error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return Vector{}, Vector{}, ErrClosed
	}
	if target.Special() {
		return e.special(et, target)
	}
	if target < Mercury || target > EarthMoonBarycenter || center < Mercury || center > EarthMoonBarycenter {
		return Vector{}, Vector{}, fmt.Errorf("%w: %s relative to %s", ErrInvalidIndex, target, center)
	}
	if target == center {
		return Vector{}, Vector{}, nil
	}
	r, err := e.record(et)
	if err != nil {
		return Vector{}, Vector{}, err
	}

	// The Earth-Moon vector comes straight from the file.
	if (target == Moon && center == Earth) || (target == Earth && center == Moon) {
		p, v := r.quantity(iptMoon)
		if target == Earth {
			p, v = p.Scale(-1), v.Scale(-1)
		}
		return p, v, nil
	}

	tp, tv := r.barycentric(target)
	cp, cv := r.barycentric(center)
	return tp.Sub(cp), tv.Sub(cv), nil
}

func (e *Ephemeris) special(et float64, target Target) (Vector, Vector, error) {
	idx := int(target) - 3 // 14..17 -> 11..14
	if e.h.ipt[idx][1] == 0 {
		return Vector{}, Vector{}, fmt.Errorf("%w: %s", ErrQuantityNotInEphemeris, target)
	}
	r, err := e.record(et)
	if err != nil {
		return Vector{}, Vector{}, err
	}
	p, v := r.raw(idx)
	return p, v, nil
}

// recordView evaluates quantities from the cached record at a fraction of its span.
type recordView struct {
	e    *Ephemeris
	coef []float64
	t    float64
}

// record loads the record covering et into the cache.
func (e *Ephemeris) record(et float64) (recordView, error) {
	h := e.h
	if et < h.start || et > h.end {
		return recordView{}, fmt.Errorf("%w: JED %.4f not in [%.1f, %.1f]", ErrOutsideRange, et, h.start, h.end)
	}
	blockLoc := (et - h.start) / h.step
	nr := int64(blockLoc)
	t := blockLoc - float64(nr)
	if t == 0 && nr != 0 { // the end of a record belongs to that record
		t = 1.0
		nr--
	}
	if nr != e.cacheNr {
		buf, err := e.br.float64s(e.cache, h.ncoeff, (nr+2)*int64(h.recsize))
		if err != nil {
			e.cacheNr = -1
			return recordView{}, err
		}
		e.cache, e.cacheNr = buf, nr
		e.log.WithFields(logrus.Fields{"record": nr, "et": et}).Debug("ephemeris record loaded")
	}
	return recordView{e: e, coef: e.cache, t: t}, nil
}

// raw interpolates quantity idx without unit conversion.
func (r recordView) raw(idx int) (Vector, Vector) {
	ipt := r.e.h.ipt[idx]
	dim := dimension(idx)
	var p, v [3]float64
	interpolate(r.coef[ipt[0]-1:], r.t, r.e.h.step, int(ipt[1]), dim, int(ipt[2]), p[:dim], v[:dim])
	return Vector{p[0], p[1], p[2]}, Vector{v[0], v[1], v[2]}
}

// quantity interpolates a body and converts km to AU.
func (r recordView) quantity(idx int) (Vector, Vector) {
	p, v := r.raw(idx)
	aufac := 1.0 / r.e.h.au
	return p.Scale(aufac), v.Scale(aufac)
}

// barycentric returns the solar-system barycentric state of t.
func (r recordView) barycentric(t Target) (Vector, Vector) {
	switch t {
	case SolarSystemBarycenter:
		return Vector{}, Vector{}
	case Sun:
		return r.quantity(iptSun)
	case EarthMoonBarycenter:
		return r.quantity(iptEMB)
	case Earth, Moon:
		bp, bv := r.quantity(iptEMB)
		mp, mv := r.quantity(iptMoon)
		f := 1.0 / (1.0 + r.e.h.emrat)
		ep, ev := bp.Sub(mp.Scale(f)), bv.Sub(mv.Scale(f)) // Earth = EMB - Moon/(1+emrat)
		if t == Earth {
			return ep, ev
		}
		return ep.Add(mp), ev.Add(mv)
	default:
		return r.quantity(int(t) - 1) // Mercury..Pluto except Earth share the numbering
	}
}
