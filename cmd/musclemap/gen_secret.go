package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/terraincognita07/musclemap/internal/security"
)

func newGenSecretCmd() *cobra.Command {
	var length int

	cmd := &cobra.Command{
		Use:   "gen-secret",
		Short: "Print a random value for SECRET_KEY",
		Args:  cobra.NoArgs,
		// No config is needed to generate a key.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			secret, err := security.SecretKey(length)
			if err != nil {
				return fmt.Errorf("generate secret: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), secret)
			return nil
		},
	}
	cmd.Flags().IntVar(&length, "length", security.MinSecretKeyLength*2, "key length (minimum 32)")
	return cmd
}
