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
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/chatforge/mucext/extdb"
	"github.com/chatforge/mucext/extdb/migrations"
	"github.com/chatforge/mucext/internal/dbopen"
)

func init() {
	rootCmd.AddCommand(MigrateCmd)
}

var MigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations",
	Long:  "Bring the extension form database schema up to the current version",
	RunE:  migrate,
}

func migrate(_ *cobra.Command, _ []string) error {
	setupLogging("mucext-migrate")

	ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(5*time.Minute))
	defer cancel()

	pool, err := dbopen.Open(ctx, extdb.EnvPrefix)
	if err != nil {
		return err
	}
	defer pool.Close()

	slog.Info("Running database migrations")
	if err := migrations.RunMigrationsUp(ctx, pool); err != nil {
		return err
	}
	slog.Info("Migrations completed successfully")
	return nil
}
