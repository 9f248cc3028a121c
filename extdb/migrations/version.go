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

package migrations

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CheckVersion verifies that the database schema is at the version of the
// latest embedded migration. Set MUCEXTDB_MIGRATION_CHECK_ENABLED=false to
// skip the check.
func CheckVersion(_ context.Context, pool *pgxpool.Pool) error {
	if val := os.Getenv("MUCEXTDB_MIGRATION_CHECK_ENABLED"); strings.EqualFold(val, "false") {
		slog.Debug("migration version checking disabled")
		return nil
	}

	expected, err := extractLatestMigrationVersion(migrationFiles)
	if err != nil {
		return fmt.Errorf("failed to extract expected migration version: %w", err)
	}

	m, closer, err := newMigrator(pool)
	if err != nil {
		return err
	}
	defer closer()

	current, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("database has no migrations applied, expected version %d - run 'mucext migrate'", expected)
	}
	if err != nil {
		return fmt.Errorf("failed to get current migration version: %w", err)
	}
	if dirty {
		return errors.New("database migration is in dirty state, please fix before proceeding")
	}
	if current < expected {
		return fmt.Errorf("database version %d is behind expected version %d - run 'mucext migrate'", current, expected)
	}
	if current > expected {
		return fmt.Errorf("database version %d is newer than expected version %d - you may need to update the application", current, expected)
	}

	slog.Debug("migration version check passed", slog.Uint64("version", uint64(current)))
	return nil
}

// extractLatestMigrationVersion returns the highest version among the
// embedded up migration files, named like "000001_create_table.up.sql".
func extractLatestMigrationVersion(files embed.FS) (uint, error) {
	entries, err := files.ReadDir(".")
	if err != nil {
		return 0, fmt.Errorf("failed to read migration directory: %w", err)
	}

	var maxVersion uint
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(name, ".up.sql") {
			continue
		}
		parts := strings.SplitN(name, "_", 2)
		version, err := strconv.ParseUint(parts[0], 10, 64)
		if err != nil {
			continue
		}
		if uint(version) > maxVersion {
			maxVersion = uint(version)
		}
	}

	if maxVersion == 0 {
		return 0, errors.New("no valid migration files found")
	}
	return maxVersion, nil
}
