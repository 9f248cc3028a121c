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

var (
	fieldLabel string
	fieldValue string
)

func init() {
	fieldAddCmd.Flags().StringVar(&fieldLabel, "label", "", "Human-readable label for the field")
	fieldAddCmd.Flags().StringVar(&fieldValue, "value", "", "Value for the field; repeat the command to add more values")

	fieldCmd.AddCommand(fieldAddCmd)
	fieldCmd.AddCommand(fieldRemoveCmd)
	rootCmd.AddCommand(fieldCmd)
}

var fieldCmd = &cobra.Command{
	Use:   "field",
	Short: "Manage fields within a room's extension forms",
}

var fieldAddCmd = &cobra.Command{
	Use:   "add <room> <form-type> <var>",
	Short: "Add a field to an extension form",
	Args:  cobra.ExactArgs(3),
	RunE: func(_ *cobra.Command, args []string) error {
		setupLogging("mucext")

		ctx, cancel := handleSignals(context.Background())
		defer cancel()

		store, err := connectStore(ctx)
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.AddField(ctx, args[0], args[1], args[2], fieldLabel, fieldValue); err != nil {
			return err
		}
		slog.Info("Field added",
			slog.String("room", args[0]),
			slog.String("formType", args[1]),
			slog.String("var", args[2]))
		return nil
	},
}

var fieldRemoveCmd = &cobra.Command{
	Use:   "remove <room> <form-type> <var>",
	Short: "Remove a field and all its values from an extension form",
	Args:  cobra.ExactArgs(3),
	RunE: func(_ *cobra.Command, args []string) error {
		setupLogging("mucext")

		ctx, cancel := handleSignals(context.Background())
		defer cancel()

		store, err := connectStore(ctx)
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.RemoveField(ctx, args[0], args[1], args[2]); err != nil {
			return err
		}
		slog.Info("Field removed",
			slog.String("room", args[0]),
			slog.String("formType", args[1]),
			slog.String("var", args[2]))
		return nil
	},
}
