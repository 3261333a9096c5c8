package main

import (
	"context"
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/vheusov/stoker-setup/internal/bootstrap"
	"github.com/vheusov/stoker-setup/internal/logging"
)

// createNewRootCommand creates the main root command. Running it bare
// provisions the current directory, so the tool stays a single-entry-point
// helper for operators who just double-click or type the binary name.
func createNewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "stoker-setup",
		Short: "Provision a workstation for the stoker temperature controller",
		RunE:  runSetup,
	}

	rootCmd.PersistentFlags().StringP("dir", "C", ".", "Project directory to provision")
	rootCmd.PersistentFlags().Bool("no-pause", false, "Do not wait for Enter before exiting")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log child-process commands at debug level")

	rootCmd.AddCommand(
		createSetupCommand(),
		createStatusCommand(),
	)

	return rootCmd
}

// createAppFromCommand extracts flags and creates a bootstrap app plus a
// context carrying the tool's own logger.
func createAppFromCommand(cmd *cobra.Command) (context.Context, *bootstrap.App, error) {
	workDir, err := cmd.Flags().GetString("dir")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get dir flag: %w", err)
	}
	noPause, err := cmd.Flags().GetBool("no-pause")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get no-pause flag: %w", err)
	}
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get verbose flag: %w", err)
	}

	ctx := loggingContext(cmd.Context(), workDir, verbose)
	app := bootstrap.New(workDir, bootstrap.WithPause(!noPause))
	return ctx, app, nil
}

// loggingContext attaches the file logger when possible; provisioning works
// fine without it, so failures fall back to the bare context.
func loggingContext(ctx context.Context, workDir string, verbose bool) context.Context {
	level := logging.InfoLevel
	if verbose {
		level = logging.DebugLevel
	}

	logCtx, err := logging.New(ctx, afero.NewOsFs(), logging.Config{
		Workspace: workDir,
		Level:     level,
	})
	if err != nil {
		return ctx
	}
	return logCtx
}
