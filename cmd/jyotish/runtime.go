// ./cmd/jyotish/runtime.go
package main

/*
Package main provides the wiring of sources, caches and the engine.

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

	"github.com/sirupsen/logrus"

	"github.com/mshafiee/jyotish"
	"github.com/mshafiee/jyotish/ayanamsa"
	"github.com/mshafiee/jyotish/ephemeris"
	"github.com/mshafiee/jyotish/internal/config"
	"github.com/mshafiee/jyotish/internal/logging"
	"github.com/mshafiee/jyotish/internal/remote"
	"github.com/mshafiee/jyotish/internal/store"
)

// runtime holds everything a command needs to compute charts.
type runtime struct {
	engine  *jyotish.Engine
	source  ayanamsa.Source // raw precise source, before timeout and cache
	precise *ayanamsa.External
	eph     *ephemeris.Ephemeris // nil when running on the analytic theory
	cache   *store.DB            // nil without a cache path
}

// openRuntime builds the engine described by c. The caller must Close it.
func openRuntime(c config.Config) (*runtime, error) {
	log := logging.Log.WithField("component", "runtime")
	rt := &runtime{}

	var bodies jyotish.BodySource = ephemeris.Analytic{}
	rt.source = ephemeris.Analytic{}
	if c.Ephemeris.Path != "" {
		eph, err := ephemeris.Open(c.Ephemeris.Path, ephemeris.WithLogger(logging.Log))
		if err != nil {
			return nil, err
		}
		info := eph.Info()
		log.WithFields(logrus.Fields{
			"file":  c.Ephemeris.Path,
			"name":  info.Name,
			"start": info.Start,
			"end":   info.End,
		}).Debug("ephemeris opened")
		rt.eph = eph
		bodies = eph
		rt.source = eph
	}

	if c.Ayanamsa.RemoteURL != "" {
		rc, err := remote.New(c.Ayanamsa.RemoteURL)
		if err != nil {
			rt.Close()
			return nil, err
		}
		rt.source = rc
		log.WithField("url", c.Ayanamsa.RemoteURL).Debug("remote ayanamsa source")
	}

	rt.precise = ayanamsa.NewExternal(rt.source)
	rt.precise.Standard = c.Standard()
	rt.precise.Timeout = c.Ayanamsa.Timeout
	if c.Ayanamsa.CachePath != "" {
		db, err := store.Open(c.Ayanamsa.CachePath, logging.Log)
		if err != nil {
			rt.Close()
			return nil, err
		}
		rt.cache = db
		rt.precise.Cache = db
	}

	rt.engine = jyotish.New(bodies, rt.precise)
	rt.engine.Fallback = c.Ayanamsa.Fallback
	rt.engine.Horizon = c.Dasha.HorizonYears
	rt.engine.Logger = logging.Log
	return rt, nil
}

// info returns the DE file description, nil on the analytic theory.
func (rt *runtime) info() *ephemeris.Info {
	if rt.eph == nil {
		return nil
	}
	i := rt.eph.Info()
	return &i
}

func (rt *runtime) Close() error {
	var errs []error
	if rt.eph != nil {
		errs = append(errs, rt.eph.Close())
	}
	if rt.cache != nil {
		errs = append(errs, rt.cache.Close())
	}
	return errors.Join(errs...)
}
