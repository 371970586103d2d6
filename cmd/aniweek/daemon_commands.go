package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"aniweek/internal/ipc"
)

func newStatusCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show daemon status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *ipc.Client) error {
				resp, err := client.Status()
				if err != nil {
					return err
				}
				stdout := cmd.OutOrStdout()
				fmt.Fprintf(stdout, "Running: %s\n", yesNo(resp.Running))
				fmt.Fprintf(stdout, "PID: %d\n", resp.PID)
				fmt.Fprintf(stdout, "Entries: %d\n", resp.Entries)
				fmt.Fprintf(stdout, "Database: %s\n", resp.DatabasePath)
				fmt.Fprintf(stdout, "Lock: %s\n", resp.LockPath)
				return nil
			})
		},
	}
}

func newStopCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "stop",
		Short: "Stop the aniweek daemon",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *ipc.Client) error {
				if _, err := client.Stop(); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Daemon stopped")
				return nil
			})
		},
	}
}
