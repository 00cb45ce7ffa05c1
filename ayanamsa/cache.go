// ./ayanamsa/cache.go
package ayanamsa

/*
Package ayanamsa provides an in-process result cache.

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
	"sync"
)

type cacheKey struct {
	std Standard
	jd  float64
}

// MemoryCache is a bounded in-process Cache. When full, it is cleared
// wholesale; entries are cheap to recompute.
type MemoryCache struct {
	mu      sync.RWMutex
	max     int
	entries map[cacheKey]float64
}

// NewMemoryCache returns a cache holding at most max entries.
func NewMemoryCache(max int) *MemoryCache {
	if max <= 0 {
		max = 1
	}
	return &MemoryCache{max: max, entries: make(map[cacheKey]float64)}
}

// Get implements Cache.
func (c *MemoryCache) Get(_ context.Context, std Standard, jd float64) (float64, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.entries[cacheKey{std, jd}]
	return v, ok
}

// Put implements Cache.
func (c *MemoryCache) Put(_ context.Context, std Standard, jd, value float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.entries) >= c.max {
		c.entries = make(map[cacheKey]float64)
	}
	c.entries[cacheKey{std, jd}] = value
}

// Len returns the number of cached entries.
func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
