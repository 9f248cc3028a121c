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

	"github.com/spf13/cobra"
)

func init() {
	formCmd.AddCommand(formAddCmd)
	formCmd.AddCommand(formRemoveCmd)
	rootCmd.AddCommand(formCmd)
}

var formCmd = &cobra.Command{
	Use:   "form",
	Short: "Manage extension data forms for a room",
}

var formAddCmd = &cobra.Command{
	Use:   "add <room> <form-type>",
	Short: "Add an empty extension form to a room",
	Args:  cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		setupLogging("mucext")

		ctx, cancel := handleSignals(context.Background())
		defer cancel()

		store, err := connectStore(ctx)
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.AddForm(ctx, args[0], args[1]); err != nil {
			return err
		}
		slog.Info("Form added", slog.String("room", args[0]), slog.String("formType", args[1]))
		return nil
	},
}

var formRemoveCmd = &cobra.Command{
	Use:   "remove <room> <form-type>",
	Short: "Remove an extension form and all its fields from a room",
	Args:  cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		setupLogging("mucext")

		ctx, cancel := handleSignals(context.Background())
		defer cancel()

		store, err := connectStore(ctx)
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.RemoveForm(ctx, args[0], args[1]); err != nil {
			return err
		}
		slog.Info("Form removed", slog.String("room", args[0]), slog.String("formType", args[1]))
		return nil
	},
}
