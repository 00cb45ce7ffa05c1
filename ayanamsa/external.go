// ./ayanamsa/external.go
package ayanamsa

/*
Package ayanamsa provides the precise provider wrapping an external source.

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
	"fmt"
	"math"
	"time"
)

// DefaultTimeout bounds a single call to the precise source.
const DefaultTimeout = 2 * time.Second

// Cache stores precise results keyed by Julian day. Implementations must be
// safe for concurrent use.
type Cache interface {
	Get(ctx context.Context, std Standard, jd float64) (float64, bool)
	Put(ctx context.Context, std Standard, jd, value float64)
}

// External delegates to an external Source, bounding each call with Timeout.
// Any failure is reported as ErrUnavailable.
type External struct {
	Source   Source
	Standard Standard
	Timeout  time.Duration
	Cache    Cache // optional
}

// NewExternal returns a Lahiri provider over src with the default timeout and an
// in-memory cache.
func NewExternal(src Source) *External {
	return &External{
		Source:   src,
		Standard: Lahiri,
		Timeout:  DefaultTimeout,
		Cache:    NewMemoryCache(4096),
	}
}

// Mode implements Provider.
func (*External) Mode() Mode { return Precise }

// Ayanamsa implements Provider.
func (p *External) Ayanamsa(ctx context.Context, jd float64) (float64, error) {
	if p.Source == nil {
		return 0, fmt.Errorf("%w: no source configured", ErrUnavailable)
	}
	std := p.Standard
	if std == "" {
		std = Lahiri
	}
	if p.Cache != nil {
		if v, ok := p.Cache.Get(ctx, std, jd); ok {
			return v, nil
		}
	}

	timeout := p.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	cctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	type result struct {
		v   float64
		err error
	}
	ch := make(chan result, 1) // buffered so a late source never blocks
	go func() {
		v, err := p.Source.Ayanamsa(cctx, jd, std)
		ch <- result{v, err}
	}()

	select {
	case <-cctx.Done():
		return 0, fmt.Errorf("%w: %v", ErrUnavailable, cctx.Err())
	case r := <-ch:
		if r.err != nil {
			return 0, fmt.Errorf("%w: %v", ErrUnavailable, r.err)
		}
		if math.IsNaN(r.v) || math.IsInf(r.v, 0) {
			return 0, fmt.Errorf("%w: source returned %v", ErrUnavailable, r.v)
		}
		if p.Cache != nil {
			p.Cache.Put(ctx, std, jd, r.v)
		}
		return r.v, nil
	}
}
