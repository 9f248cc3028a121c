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
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/chatforge/mucext/extdb/migrations"
	"github.com/chatforge/mucext/internal/dbopen"
)

// EnvPrefix is the environment variable prefix for the extension database
// connection (MUCEXTDB_URL, MUCEXTDB_HOST, and so on).
const EnvPrefix = "MUCEXTDB"

// Connect opens a connection pool to the extension database and verifies
// that the schema is at the expected migration version.
func Connect(ctx context.Context) (*pgxpool.Pool, error) {
	pool, err := dbopen.Open(ctx, EnvPrefix)
	if err != nil {
		return nil, err
	}

	if err := migrations.CheckVersion(ctx, pool); err != nil {
		pool.Close()
		return nil, fmt.Errorf("extension database migration version check failed: %w", err)
	}

	return pool, nil
}

// ConnectStore opens the extension database and returns a Store over it.
func ConnectStore(ctx context.Context, opts ...Option) (*Store, error) {
	pool, err := Connect(ctx)
	if err != nil {
		return nil, err
	}
	return NewStore(NewPGBackend(pool), opts...), nil
}
