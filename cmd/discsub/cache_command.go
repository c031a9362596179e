package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

type cacheEntryJSON struct {
	Query     string `json:"query"`
	IDs       []int  `json:"ids"`
	FetchedAt string `json:"fetched_at"`
	Stale     bool   `json:"stale"`
}

func newCacheCommand(ctx *commandContext) *cobra.Command {
	cacheCmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect or clear the search result cache",
	}
	cacheCmd.AddCommand(newCacheListCommand(ctx))
	cacheCmd.AddCommand(newCacheClearCommand(ctx))
	return cacheCmd
}

func newCacheListCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List cached search results",
		RunE: func(cmd *cobra.Command, args []string) error {
			cache, err := ctx.openCache()
			if err != nil {
				return err
			}
			defer cache.Close()

			entries, err := cache.List(cmd.Context())
			if err != nil {
				return err
			}

			if jsonOutput {
				items := make([]cacheEntryJSON, 0, len(entries))
				for _, e := range entries {
					items = append(items, cacheEntryJSON{
						Query:     e.Query,
						IDs:       e.IDs,
						FetchedAt: e.FetchedAt.UTC().Format(time.RFC3339),
						Stale:     e.Stale,
					})
				}
				return writeJSON(cmd, items)
			}

			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintf(out, "Cache is empty (%s)\n", cache.Path())
				return nil
			}
			rows := make([][]string, 0, len(entries))
			for _, e := range entries {
				state := "fresh"
				if e.Stale {
					state = "stale"
				}
				rows = append(rows, []string{
					e.Query,
					joinIDs(e.IDs, ","),
					e.FetchedAt.Local().Format("2006-01-02 15:04"),
					state,
				})
			}
			writeRows(out,
				[]string{"Query", "Disc IDs", "Fetched", "State"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft},
			)
			return nil
		},
	}
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}

func newCacheClearCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every cached search result",
		RunE: func(cmd *cobra.Command, args []string) error {
			cache, err := ctx.openCache()
			if err != nil {
				return err
			}
			defer cache.Close()

			removed, err := cache.Clear(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %d cached entries\n", removed)
			return nil
		},
	}
}
