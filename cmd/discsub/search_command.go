package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"discsub/internal/redump"
)

type searchRow struct {
	Query string `json:"query"`
	IDs   []int  `json:"ids"`
}

func newSearchCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "search <sha1>...",
		Short: "List catalog discs containing each track hash",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			client, err := ctx.catalog()
			if err != nil {
				return err
			}
			login, err := client.Login(cmd.Context(), cfg.Redump.Username, cfg.Redump.Password)
			if err != nil {
				return fmt.Errorf("catalog login: %w", err)
			}
			if login != redump.LoginSuccess {
				return fmt.Errorf("catalog login %s: set [redump] username and password", login)
			}
			searcher, closeSearcher, err := ctx.searcher(client)
			if err != nil {
				return err
			}
			defer closeSearcher()

			results := make([]searchRow, 0, len(args))
			for _, query := range args {
				ids, err := searcher.Search(cmd.Context(), query)
				if err != nil {
					return fmt.Errorf("search %s: %w", query, err)
				}
				results = append(results, searchRow{Query: query, IDs: ids})
			}

			if jsonOutput {
				return writeJSON(cmd, results)
			}

			rows := make([][]string, 0, len(results))
			for _, r := range results {
				rows = append(rows, []string{r.Query, strconv.Itoa(len(r.IDs)), joinIDs(r.IDs, ",")})
			}
			writeRows(cmd.OutOrStdout(),
				[]string{"SHA1", "Matches", "Disc IDs"},
				rows,
				[]columnAlignment{alignLeft, alignRight, alignLeft},
			)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}

func joinIDs(ids []int, sep string) string {
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, strconv.Itoa(id))
	}
	return strings.Join(parts, sep)
}
