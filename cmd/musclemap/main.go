package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/terraincognita07/musclemap/internal/config"
	"github.com/terraincognita07/musclemap/internal/logging"
	"go.uber.org/zap"
)

type rootOptions struct {
	configPath string
	envFile    string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	options := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "musclemap",
		Short: "MuscleMap adaptive coaching service",
		Long: `MuscleMap turns a fitness profile into a nutrition and training plan and
adapts it every week from a short check-in.

Run without a subcommand to start the HTTP server.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return options.load()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if options.logger != nil {
				_ = options.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, options)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&options.configPath, "config", "c", "", "YAML config file (optional)")
	rootCmd.PersistentFlags().StringVar(&options.envFile, "env-file", ".env", "dotenv file loaded before the environment is read")
	rootCmd.PersistentFlags().BoolVarP(&options.verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(newServeCmd(options))
	rootCmd.AddCommand(newResetPasswordCmd(options))
	rootCmd.AddCommand(newPreviewPlanCmd(options))
	rootCmd.AddCommand(newGenSecretCmd())
	return rootCmd
}

func (options *rootOptions) load() error {
	if options.envFile != "" {
		if err := config.LoadDotEnv(options.envFile); err != nil {
			return err
		}
	}

	cfg, err := config.Load(options.configPath)
	if err != nil {
		return err
	}
	logger, err := logging.New(cfg.Logging.Level, cfg.Logging.Development, options.verbose)
	if err != nil {
		return err
	}

	options.cfg = cfg
	options.logger = logger
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
