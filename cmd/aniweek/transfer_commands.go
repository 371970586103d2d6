package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"aniweek/internal/ipc"
)

func newExportCommand(ctx *commandContext) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the collection to a portable JSON document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *ipc.Client) error {
				resp, err := client.Export()
				if err != nil {
					return err
				}
				target := strings.TrimSpace(outPath)
				if target == "" {
					target = resp.Filename
				} else if info, statErr := os.Stat(target); statErr == nil && info.IsDir() {
					target = filepath.Join(target, resp.Filename)
				}
				if err := os.WriteFile(target, []byte(resp.Document), 0o644); err != nil {
					return fmt.Errorf("write export: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Exported collection to %s\n", target)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Output file or directory (defaults to the dated filename)")
	return cmd
}

func newImportCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the collection with an exported document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read import file: %w", err)
			}
			return ctx.withClient(func(client *ipc.Client) error {
				resp, err := client.Import(string(data))
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Imported %d entries\n", resp.Imported)
				return nil
			})
		},
	}
}

func newBackupCommand(ctx *commandContext) *cobra.Command {
	backupCmd := &cobra.Command{
		Use:   "backup",
		Short: "Backup snapshot utilities",
	}

	backupCmd.AddCommand(&cobra.Command{
		Use:   "restore",
		Short: "Replace the collection with the automatic backup",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *ipc.Client) error {
				resp, err := client.RestoreBackup()
				if err != nil {
					return err
				}
				stdout := cmd.OutOrStdout()
				if !resp.Found {
					fmt.Fprintln(stdout, "No backup snapshot available")
					return nil
				}
				fmt.Fprintf(stdout, "Restored %d entries from backup\n", resp.Restored)
				return nil
			})
		},
	})

	return backupCmd
}

func newClearCommand(ctx *commandContext) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove every entry (the backup snapshot is kept)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("refusing to clear without --yes")
			}
			return ctx.withClient(func(client *ipc.Client) error {
				if _, err := client.Clear(); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Collection cleared; run `aniweek backup restore` to undo")
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm the destructive wipe")
	return cmd
}

func newStatsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show collection aggregates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *ipc.Client) error {
				resp, err := client.Stats()
				if err != nil {
					return err
				}
				stdout := cmd.OutOrStdout()
				fmt.Fprintf(stdout, "Total: %d\nFavorites: %d\n", resp.Total, resp.Favorites)
				if len(resp.ByDay) == 0 {
					return nil
				}
				days := make([]string, 0, len(resp.ByDay))
				for day := range resp.ByDay {
					days = append(days, day)
				}
				sort.Strings(days)
				rows := make([][]string, 0, len(days))
				for _, day := range days {
					rows = append(rows, []string{day, fmt.Sprintf("%d", resp.ByDay[day])})
				}
				fmt.Fprintln(stdout, renderTable(
					[]string{"Day", "Entries"},
					rows,
					[]columnAlignment{alignLeft, alignRight},
				))
				return nil
			})
		},
	}
}
