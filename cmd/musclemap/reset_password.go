package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/terraincognita07/musclemap/internal/cli"
	"github.com/terraincognita07/musclemap/internal/db"
)

func newResetPasswordCmd(options *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "reset-password <email>",
		Short: "Set a temporary password for an account",
		Long: `Generates a temporary password for the account and prints it. The user is
asked to choose a new password after signing in with it.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			database, err := db.OpenSQLite(options.cfg.Database.Path, options.logger)
			if err != nil {
				return fmt.Errorf("database init failed: %w", err)
			}
			sqlDB, err := database.DB()
			if err != nil {
				return fmt.Errorf("database init failed: %w", err)
			}
			defer sqlDB.Close()

			return cli.RunResetPasswordCommand(database, cmd.OutOrStdout(), args[0])
		},
	}
}
