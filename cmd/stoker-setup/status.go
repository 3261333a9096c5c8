package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// createStatusCommand creates the status command.
func createStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Report what is already provisioned without changing anything",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, app, err := createAppFromCommand(cmd)
			if err != nil {
				return err
			}

			status, err := app.Status(ctx)
			if err != nil {
				return fmt.Errorf("failed to get status: %w", err)
			}

			_, err = fmt.Print(status)
			if err != nil {
				return fmt.Errorf("failed to print status: %w", err)
			}
			return nil
		},
	}
}
