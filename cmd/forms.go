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
	"strings"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(formsCmd)
}

var formsCmd = &cobra.Command{
	Use:   "forms <room>",
	Short: "List the extension forms stored for a room",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		setupLogging("mucext")

		ctx, cancel := handleSignals(context.Background())
		defer cancel()

		store, err := connectStore(ctx)
		if err != nil {
			return err
		}
		defer store.Close()

		forms := store.RetrieveFormsForRoom(ctx, args[0])
		if len(forms) == 0 {
			cmd.Println("no extension forms stored")
			return nil
		}

		for _, form := range forms {
			cmd.Println(form.FormTypeName)
			for _, field := range form.Fields {
				line := fmt.Sprintf("  %s", field.VarName)
				if field.Label != "" {
					line += fmt.Sprintf(" (%s)", field.Label)
				}
				if len(field.Values) > 0 {
					line += ": " + strings.Join(field.Values, ", ")
				}
				cmd.Println(line)
			}
		}
		return nil
	},
}
