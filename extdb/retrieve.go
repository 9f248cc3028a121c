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
	"context"

	"github.com/jellydator/ttlcache/v3"

	"github.com/chatforge/mucext/extinfo"
	"github.com/chatforge/mucext/internal/logctx"
)

// RetrieveFormsForRoom returns the stored extension forms for a room, nil
// when the room has none.
//
// The lookup is cache-first: a cached entry, including the known-empty one,
// is returned without touching the backing store. On a miss, all rows for
// the room are read and grouped, and the result is cached; the key lock is
// held across check, read, and populate, so concurrent lookups for the same
// room trigger at most one backing-store read. A read failure is logged and
// degrades to "no forms": discovery responses stay available, merely
// unenriched.
func (s *Store) RetrieveFormsForRoom(ctx context.Context, room string) []extinfo.ExtDataForm {
	room = extinfo.BareRoom(room)
	ll := logctx.FromContext(ctx)

	s.locks.Lock(room)
	defer s.locks.Unlock(room)

	if item := s.cache.Get(room); item != nil {
		cacheHits.Add(ctx, 1)
		return item.Value()
	}
	cacheMisses.Add(ctx, 1)

	rows, err := s.backend.FetchRows(ctx, room)
	if err != nil {
		ll.Error("failed to retrieve extension forms", "room", room, "error", err)
		rows = nil
	}

	forms := extinfo.GroupRows(rows)

	// The absent result is cached too: a room without forms, or a room
	// whose read just failed, does not hit the database again until the
	// entry expires or a mutation purges it.
	s.cache.Set(room, forms, ttlcache.DefaultTTL)

	return forms
}
