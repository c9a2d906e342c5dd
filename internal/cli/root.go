// Package cli defines the logix command tree.
package cli

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"logix-research/internal/config"
	"logix-research/internal/di"
	"logix-research/internal/training"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// SetVersionInfo records build metadata for the version command.
func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the command tree bound to ctx.
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

// NewRootCmd builds the logix command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "logix",
		Short:         "Logix research assistant backend",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newServeCmd(), newTrainCmd(), newVersionCmd())
	return root
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the research API and frontend",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				log.Printf("failed to load config: %v", err)
				return err
			}
			application, err := di.InitializeApp(cfg)
			if err != nil {
				log.Printf("failed to initialize application: %v", err)
				return err
			}
			if err := application.Run(cmd.Context()); err != nil {
				log.Printf("application runtime error: %v", err)
				return err
			}
			return nil
		},
	}
}

func newTrainCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "train",
		Short: "Train the object-detection model with the fixed run settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				training.ReportFailure(cmd.ErrOrStderr(), err)
				return err
			}
			trainer, err := di.InitializeTrainer(cfg)
			if err != nil {
				training.ReportFailure(cmd.ErrOrStderr(), err)
				return err
			}
			if err := trainer.Train(cmd.Context(), training.DefaultSpec()); err != nil {
				training.ReportFailure(cmd.ErrOrStderr(), err)
				return err
			}
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "logix %s (commit: %s, built: %s)\n", version, commit, date)
		},
	}
}
