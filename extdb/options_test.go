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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStoreOptions(t *testing.T) {
	store := NewStore(newFakeBackend(),
		WithCacheTTL(5*time.Minute),
		WithCacheCapacity(100),
		WithLockStripes(16),
	)
	defer store.Close()

	assert.Equal(t, 5*time.Minute, store.ttl)
	assert.Equal(t, uint64(100), store.capacity)
	assert.Equal(t, 16, store.lockStripes)
}

func TestStoreOptionDefaults(t *testing.T) {
	store := NewStore(newFakeBackend())
	defer store.Close()

	assert.Equal(t, defaultCacheTTL, store.ttl)
	assert.Equal(t, defaultCacheCapacity, store.capacity)
	assert.Equal(t, defaultLockStripes, store.lockStripes)
}

func TestStoreOptionInvalidValuesIgnored(t *testing.T) {
	store := NewStore(newFakeBackend(),
		WithCacheTTL(-time.Second),
		WithCacheCapacity(0),
		WithLockStripes(-1),
	)
	defer store.Close()

	assert.Equal(t, defaultCacheTTL, store.ttl)
	assert.Equal(t, defaultCacheCapacity, store.capacity)
	assert.Equal(t, defaultLockStripes, store.lockStripes)
}
