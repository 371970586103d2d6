package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"aniweek/internal/anime"
	"aniweek/internal/ipc"
)

func newAddCommand(ctx *commandContext) *cobra.Command {
	var day string
	var airTime string
	var tags []string
	var cover string
	var favorite bool

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a show to the weekly schedule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *ipc.Client) error {
				resp, err := client.Add(ipc.AddRequest{Entry: anime.Entry{
					Title:      strings.TrimSpace(args[0]),
					Day:        day,
					Time:       airTime,
					Tags:       tags,
					CoverImage: cover,
					Favorite:   favorite,
				}})
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Added %q on %s at %s (%s)\n",
					resp.Entry.Title, resp.Entry.Day, resp.Entry.Time, resp.Entry.ID)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&day, "day", "d", "Monday", "Broadcast day (Monday through Sunday)")
	cmd.Flags().StringVarP(&airTime, "time", "t", "00:00", "Broadcast time in 24h HH:MM form")
	cmd.Flags().StringSliceVar(&tags, "tag", nil, "Genre tag, repeatable")
	cmd.Flags().StringVar(&cover, "cover", "", "Cover image URL")
	cmd.Flags().BoolVar(&favorite, "favorite", false, "Mark as favorite")
	return cmd
}

func newListCommand(ctx *commandContext) *cobra.Command {
	var day string
	var favorites bool
	var archived bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show the weekly schedule",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *ipc.Client) error {
				resp, err := client.List(ipc.ListRequest{Day: day, Favorites: favorites, Archived: archived})
				if err != nil {
					return err
				}
				stdout := cmd.OutOrStdout()
				if len(resp.Entries) == 0 {
					fmt.Fprintln(stdout, "No entries")
					return nil
				}
				if day == "" && !favorites && !archived {
					printWeek(stdout, resp.Entries)
					return nil
				}
				fmt.Fprintln(stdout, entriesTable(resp.Entries))
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&day, "day", "d", "", "Limit to one weekday")
	cmd.Flags().BoolVar(&favorites, "favorites", false, "Only favorites")
	cmd.Flags().BoolVar(&archived, "archived", false, "Only archived entries")
	return cmd
}

func printWeek(stdout io.Writer, entries []anime.Entry) {
	byDay := make(map[string][]anime.Entry)
	var archived []anime.Entry
	for _, entry := range entries {
		if entry.Status == anime.StatusArchived {
			archived = append(archived, entry)
			continue
		}
		byDay[entry.Day] = append(byDay[entry.Day], entry)
	}
	for _, day := range anime.Weekdays {
		if len(byDay[day]) == 0 {
			continue
		}
		fmt.Fprintf(stdout, "%s\n%s\n", day, entriesTable(byDay[day]))
	}
	if len(archived) > 0 {
		fmt.Fprintf(stdout, "Archived: %d (use --archived to list)\n", len(archived))
	}
}

func entriesTable(entries []anime.Entry) string {
	rows := make([][]string, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, []string{
			entry.ID,
			entry.Title,
			entry.Time,
			strings.Join(entry.Tags, ", "),
			yesNo(entry.Favorite),
		})
	}
	return renderTable(
		[]string{"ID", "Title", "Time", "Tags", "Favorite"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignRight, alignLeft, alignLeft},
	)
}

func newEditCommand(ctx *commandContext) *cobra.Command {
	var title string
	var day string
	var airTime string
	var tags []string
	var cover string

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit an entry's fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *ipc.Client) error {
				listResp, err := client.List(ipc.ListRequest{})
				if err != nil {
					return err
				}
				var current *anime.Entry
				for i := range listResp.Entries {
					if listResp.Entries[i].ID == args[0] {
						current = &listResp.Entries[i]
						break
					}
				}
				if current == nil {
					return fmt.Errorf("entry %s not found", args[0])
				}

				next := *current
				flags := cmd.Flags()
				if flags.Changed("title") {
					next.Title = title
				}
				if flags.Changed("day") {
					next.Day = day
				}
				if flags.Changed("time") {
					next.Time = airTime
				}
				if flags.Changed("tag") {
					next.Tags = tags
				}
				if flags.Changed("cover") {
					next.CoverImage = cover
				}

				resp, err := client.Update(ipc.UpdateRequest{ID: args[0], Entry: next})
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Updated %q (%s at %s)\n",
					resp.Entry.Title, resp.Entry.Day, resp.Entry.Time)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().StringVarP(&day, "day", "d", "", "New broadcast day")
	cmd.Flags().StringVarP(&airTime, "time", "t", "", "New broadcast time (HH:MM)")
	cmd.Flags().StringSliceVar(&tags, "tag", nil, "Replacement genre tags, repeatable")
	cmd.Flags().StringVar(&cover, "cover", "", "New cover image URL")
	return cmd
}

func newFavoriteCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "favorite <id>",
		Short: "Toggle an entry's favorite flag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *ipc.Client) error {
				resp, err := client.ToggleFavorite(args[0])
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%q favorite: %s\n", resp.Entry.Title, yesNo(resp.Entry.Favorite))
				return nil
			})
		},
	}
}

func newArchiveCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "archive <id>",
		Short: "Archive an entry without deleting it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *ipc.Client) error {
				resp, err := client.Archive(args[0])
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Archived %q\n", resp.Entry.Title)
				return nil
			})
		},
	}
}

func newRestoreCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "restore <id>",
		Short: "Return an archived entry to the schedule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *ipc.Client) error {
				resp, err := client.Restore(args[0])
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Restored %q to %s\n", resp.Entry.Title, resp.Entry.Day)
				return nil
			})
		},
	}
}

func newDeleteCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an entry permanently",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *ipc.Client) error {
				if err := client.Delete(args[0]); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Deleted")
				return nil
			})
		},
	}
}

func newSetCoverCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "set-cover <id> <url>",
		Short: "Replace an entry's cover image",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *ipc.Client) error {
				resp, err := client.SetCover(args[0], args[1])
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Updated cover for %q\n", resp.Entry.Title)
				return nil
			})
		},
	}
}
