package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"aniweek/internal/ipc"
)

func newSeasonCommand(ctx *commandContext) *cobra.Command {
	seasonCmd := &cobra.Command{
		Use:   "season",
		Short: "Preview or import the current broadcast season",
	}
	seasonCmd.AddCommand(newSeasonPreviewCommand(ctx))
	seasonCmd.AddCommand(newSeasonImportCommand(ctx))
	return seasonCmd
}

func newSeasonPreviewCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "preview",
		Short: "Show which seasonal shows an import would add",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *ipc.Client) error {
				resp, err := client.SeasonPreview()
				if err != nil {
					return err
				}
				stdout := cmd.OutOrStdout()
				fmt.Fprintf(stdout, "%s %d\n", seasonLabel(resp.Season), resp.Year)
				if len(resp.Entries) == 0 {
					fmt.Fprintln(stdout, "Nothing new to import")
					return nil
				}
				fmt.Fprintln(stdout, entriesTable(resp.Entries))
				fmt.Fprintf(stdout, "%d shows would be added\n", len(resp.Entries))
				return nil
			})
		},
	}
}

func newSeasonImportCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "import",
		Short: "Add the current season's shows to the schedule",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *ipc.Client) error {
				resp, err := client.SeasonImport()
				if err != nil {
					return err
				}
				stdout := cmd.OutOrStdout()
				fmt.Fprintf(stdout, "%s %d: imported %d shows\n",
					seasonLabel(resp.Season), resp.Year, len(resp.Entries))
				return nil
			})
		},
	}
}

// seasonLabel turns the upstream season constant into display form,
// "FALL" becoming "Fall".
func seasonLabel(season string) string {
	return cases.Title(language.English).String(strings.ToLower(season))
}
