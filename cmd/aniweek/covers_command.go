package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"aniweek/internal/ipc"
)

func newCoversCommand(ctx *commandContext) *cobra.Command {
	coversCmd := &cobra.Command{
		Use:   "covers",
		Short: "Cover image maintenance",
	}

	coversCmd.AddCommand(&cobra.Command{
		Use:   "upgrade",
		Short: "Fetch high resolution covers for every active entry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *ipc.Client) error {
				resp, err := client.UpgradeCovers()
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Upgraded %d, skipped %d, failed %d\n",
					resp.Upgraded, resp.Skipped, resp.Failed)
				return nil
			})
		},
	})

	return coversCmd
}
