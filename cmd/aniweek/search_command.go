package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"aniweek/internal/anilist"
	"aniweek/internal/config"
	"aniweek/internal/ipc"
	"aniweek/internal/search"
)

func newSearchCommand(ctx *commandContext) *cobra.Command {
	var interactive bool
	cmd := &cobra.Command{
		Use:   "search [title]",
		Short: "Search the metadata catalog by title",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if interactive {
				return ctx.withClient(func(client *ipc.Client) error {
					return runInteractiveSearch(cmd, ctx.configValue(), client)
				})
			}
			if len(args) == 0 {
				return errors.New("a title is required unless --interactive is set")
			}
			query := strings.Join(args, " ")
			return ctx.withClient(func(client *ipc.Client) error {
				resp, err := client.Search(query)
				if err != nil {
					return err
				}
				stdout := cmd.OutOrStdout()
				if len(resp.Results) == 0 {
					fmt.Fprintln(stdout, "No matches")
					return nil
				}
				printSearchTable(stdout, resp.Results)
				return nil
			})
		},
	}
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false,
		"read queries line by line from stdin, debounced while typing")
	return cmd
}

// clientSearcher adapts the IPC client to the debouncer's lookup
// interface. Lookup failures surface as an empty result set; the daemon
// already logs the cause.
type clientSearcher struct {
	client *ipc.Client
}

func (s clientSearcher) Search(_ context.Context, query string) []anilist.Media {
	resp, err := s.client.Search(query)
	if err != nil {
		return nil
	}
	return resp.Results
}

// runInteractiveSearch reads queries from stdin and debounces them with
// the configured delay, so holding down a key does not hammer the daemon.
func runInteractiveSearch(cmd *cobra.Command, cfg *config.Config, client *ipc.Client) error {
	stdout := cmd.OutOrStdout()
	deliver := func(query string, results []anilist.Media) {
		if strings.TrimSpace(query) == "" {
			return
		}
		if len(results) == 0 {
			fmt.Fprintf(stdout, "No matches for %q\n", query)
			return
		}
		fmt.Fprintf(stdout, "Results for %q:\n", query)
		printSearchTable(stdout, results)
	}

	d := search.NewDebouncer(cfg, clientSearcher{client: client}, deliver, nil)
	defer d.Close()

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for scanner.Scan() {
		d.Query(cmd.Context(), strings.TrimSpace(scanner.Text()))
	}
	// Resolve the last typed query before the session ends.
	d.Flush()
	return scanner.Err()
}

func printSearchTable(w io.Writer, results []anilist.Media) {
	rows := make([][]string, 0, len(results))
	for _, media := range results {
		rows = append(rows, []string{
			fmt.Sprintf("%d", media.ID),
			anilist.PreferredTitle(media),
			strings.Join(media.Genres, ", "),
			anilist.CleanDescription(media.Description),
		})
	}
	fmt.Fprintln(w, renderTable(
		[]string{"ID", "Title", "Genres", "Description"},
		rows,
		[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft},
	))
}
