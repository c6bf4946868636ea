package main

import (
	"blk2json/internal/history/report"

	"github.com/spf13/cobra"
)

// NewHistoryCmd creates the history subcommand.
func NewHistoryCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recorded conversions as a Markdown table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			repo, closeDB, err := openHistory(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer closeDB()

			records, err := repo.List(cmd.Context(), limit)
			if err != nil {
				return err
			}
			return report.WriteMarkdown(cmd.OutOrStdout(), records)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "number of conversions to show")

	return cmd
}
