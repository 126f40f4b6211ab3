package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"agentkey/internal/app"
	"agentkey/internal/crypto"
)

func showCmd(wire func() *app.Wire) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the key file path, fingerprint and key size",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := wire()
			kp, err := w.Keys.Load()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Path: %s\n", w.KeyFile.Path())
			fmt.Fprintf(out, "Protection: %s\n", w.Protector.Scheme())
			fmt.Fprintf(out, "Size: %d bits\n", kp.Material.BitLen())
			fmt.Fprintf(out, "Fingerprint: %s\n", crypto.Fingerprint(kp.Public()))
			return nil
		},
	}
}
