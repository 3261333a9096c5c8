package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// createSetupCommand creates the setup command, an explicit alias for the
// root behavior.
func createSetupCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "setup",
		Short: "Run the full provisioning procedure",
		Long:  "Verify the Python runtime, create venv/, install requirements.txt, lay out the directory scaffold and seed config.yaml from its example",
		RunE:  runSetup,
	}
}

func runSetup(cmd *cobra.Command, _ []string) error {
	ctx, app, err := createAppFromCommand(cmd)
	if err != nil {
		return err
	}

	if err := app.Run(ctx); err != nil {
		return fmt.Errorf("setup failed: %w", err)
	}
	return nil
}
