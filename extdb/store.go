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

// Package extdb persists extension data forms per chat room and serves
// lookups through a read-through cache.
package extdb

import (
	"context"
	"log"
	"time"

	"github.com/jellydator/ttlcache/v3"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"

	"github.com/chatforge/mucext/extinfo"
	"github.com/chatforge/mucext/internal/keylock"
)

const (
	defaultCacheTTL      = 30 * time.Minute
	defaultCacheCapacity uint64 = 10_000
	defaultLockStripes   = 64
)

var (
	cacheHits   metric.Int64Counter
	cacheMisses metric.Int64Counter
	cachePurges metric.Int64Counter
)

func init() {
	meter := otel.Meter("github.com/chatforge/mucext/extdb")

	var err error

	cacheHits, err = meter.Int64Counter(
		"mucext.cache.hits",
		metric.WithDescription("Number of room form cache hits"),
	)
	if err != nil {
		log.Fatalf("failed to create cache.hits counter: %v", err)
	}

	cacheMisses, err = meter.Int64Counter(
		"mucext.cache.misses",
		metric.WithDescription("Number of room form cache misses"),
	)
	if err != nil {
		log.Fatalf("failed to create cache.misses counter: %v", err)
	}

	cachePurges, err = meter.Int64Counter(
		"mucext.cache.purges",
		metric.WithDescription("Number of room form cache invalidations"),
	)
	if err != nil {
		log.Fatalf("failed to create cache.purges counter: %v", err)
	}
}

// Store provides durable CRUD for per-room extension forms plus a coherent
// read-through cache keyed by normalized room address.
//
// The cache entry for a room is an explicit variant: a missing entry means
// the room has not been loaded, while a present entry with a nil form slice
// means the room is known to have no stored forms. Reads and writes for the
// same room are serialized by a per-key lock; different rooms proceed in
// parallel.
type Store struct {
	backend Backend
	cache   *ttlcache.Cache[string, []extinfo.ExtDataForm]
	locks   *keylock.KeyLock

	ttl         time.Duration
	capacity    uint64
	lockStripes int
}

// NewStore creates a Store over the given backend.
func NewStore(backend Backend, opts ...Option) *Store {
	store := &Store{
		backend:     backend,
		ttl:         defaultCacheTTL,
		capacity:    defaultCacheCapacity,
		lockStripes: defaultLockStripes,
	}
	for _, opt := range opts {
		opt.apply(store)
	}

	store.cache = ttlcache.New(
		ttlcache.WithTTL[string, []extinfo.ExtDataForm](store.ttl),
		ttlcache.WithDisableTouchOnHit[string, []extinfo.ExtDataForm](),
		ttlcache.WithCapacity[string, []extinfo.ExtDataForm](store.capacity),
	)
	store.locks = keylock.New(store.lockStripes)

	go store.cache.Start()

	return store
}

// Close stops the cache's expiry processing.
func (s *Store) Close() {
	s.cache.Stop()
}

// purgeCache removes the cached entry for a room. The caller must hold the
// room's key lock.
func (s *Store) purgeCache(ctx context.Context, room string) {
	s.cache.Delete(room)
	cachePurges.Add(ctx, 1)
}
