package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"agentkey/internal/app"
	"agentkey/internal/crypto"
)

func initCmd(wire func() *app.Wire) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the RSA key pair, or load the existing one",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			kp, err := wire().Keys.CreateOrLoad()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Key ready (%d-bit).\nFingerprint: %s\n",
				kp.Material.BitLen(), crypto.Fingerprint(kp.Public()))
			return nil
		},
	}
}
