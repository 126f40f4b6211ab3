package commands

import (
	"github.com/spf13/cobra"

	"agentkey/internal/app"
	"agentkey/internal/crypto"
)

func publicKeyCmd(wire func() *app.Wire) *cobra.Command {
	return &cobra.Command{
		Use:   "public-key",
		Short: "Write the public key as PEM to stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			kp, err := wire().Keys.Load()
			if err != nil {
				return err
			}
			pemBytes, err := crypto.PublicKeyPEM(kp.Public())
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(pemBytes)
			return err
		},
	}
}
