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

package cmd

import (
	"context"
	"fmt"

	"github.com/chatforge/mucext/config"
	"github.com/chatforge/mucext/extdb"
)

// connectStore opens the extension form store with the configured cache
// settings.
func connectStore(ctx context.Context) (*extdb.Store, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return extdb.ConnectStore(ctx,
		extdb.WithCacheTTL(cfg.Cache.TTL),
		extdb.WithCacheCapacity(cfg.Cache.Capacity),
	)
}
