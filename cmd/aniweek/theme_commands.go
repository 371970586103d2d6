package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"aniweek/internal/ipc"
)

func newThemeCommand(ctx *commandContext) *cobra.Command {
	themeCmd := &cobra.Command{
		Use:   "theme",
		Short: "Color theme selection",
	}
	themeCmd.AddCommand(newThemeListCommand(ctx))
	themeCmd.AddCommand(newThemeSetCommand(ctx))
	return themeCmd
}

func newThemeListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available themes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *ipc.Client) error {
				resp, err := client.Themes()
				if err != nil {
					return err
				}
				rows := make([][]string, 0, len(resp.Themes))
				for _, t := range resp.Themes {
					active := ""
					if t.ID == resp.Active {
						active = "*"
					}
					rows = append(rows, []string{active, t.ID, t.Name, t.Primary, t.Description})
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(
					[]string{"", "ID", "Name", "Primary", "Description"},
					rows,
					[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignLeft},
				))
				return nil
			})
		},
	}
}

func newThemeSetCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "set <id>",
		Short: "Change the active theme",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *ipc.Client) error {
				resp, err := client.SetTheme(args[0])
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Theme set to %s\n", resp.Theme.Name)
				return nil
			})
		},
	}
}
