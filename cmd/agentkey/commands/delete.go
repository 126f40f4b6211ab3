package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"agentkey/internal/app"
)

func deleteCmd(wire func() *app.Wire) *cobra.Command {
	return &cobra.Command{
		Use:   "delete",
		Short: "Remove the key file; the next init generates a new key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := wire()
			existed, err := w.KeyFile.Exists()
			if err != nil {
				return err
			}
			if err := w.Keys.Delete(); err != nil {
				return err
			}
			if !existed {
				fmt.Fprintf(cmd.OutOrStdout(), "No key file at %s\n", w.KeyFile.Path())
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", w.KeyFile.Path())
			return nil
		},
	}
}
