// Copyright (C) 2025 Chatforge, Inc
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, version 3.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program. If not, see <http://www.gnu.org/licenses/>.

package extdb

import (
	"time"
)

type Option interface {
	apply(s *Store)
}

type cacheTTLOption struct {
	d time.Duration
}

func (o *cacheTTLOption) apply(s *Store) {
	if o.d <= 0 {
		return
	}
	s.ttl = o.d
}

// WithCacheTTL sets how long a room's cached forms stay valid. Without this
// option, the default is 30 minutes. Non-positive durations are ignored.
func WithCacheTTL(d time.Duration) Option {
	return &cacheTTLOption{d: d}
}

type cacheCapacityOption struct {
	n uint64
}

func (o *cacheCapacityOption) apply(s *Store) {
	if o.n == 0 {
		return
	}
	s.capacity = o.n
}

// WithCacheCapacity caps the number of rooms held in the cache. Without this
// option, the default is 10000. Zero is ignored.
func WithCacheCapacity(n uint64) Option {
	return &cacheCapacityOption{n: n}
}

type lockStripesOption struct {
	n int
}

func (o *lockStripesOption) apply(s *Store) {
	if o.n <= 0 {
		return
	}
	s.lockStripes = o.n
}

// WithLockStripes sets the number of stripes in the per-room key lock.
// Without this option, the default is 64. Non-positive counts are ignored.
func WithLockStripes(n int) Option {
	return &lockStripesOption{n: n}
}
