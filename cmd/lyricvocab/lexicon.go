package main

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/japaniel/lyricvocab/pkg/db"
	"github.com/japaniel/lyricvocab/pkg/lexicon"
)

func newLexiconCommand(env *runtimeEnv) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lexicon",
		Short: "Manage the SQLite frequency lexicon",
	}
	cmd.AddCommand(newLexiconImportCommand(env))
	cmd.AddCommand(newLexiconStatsCommand(env))
	return cmd
}

func newLexiconImportCommand(env *runtimeEnv) *cobra.Command {
	var dbPath, list, url string

	cmd := &cobra.Command{
		Use:   "import [csv]",
		Short: "Import a ranked word list (rank,word CSV)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := env.cfg.Lexicon
			if !cmd.Flags().Changed("db") {
				dbPath = cfg.DBPath
			}
			if !cmd.Flags().Changed("list") {
				list = cfg.List
			}
			if !cmd.Flags().Changed("url") {
				url = cfg.URL
			}
			if dbPath == "" {
				return errors.New("no lexicon database: pass --db or set LYRICVOCAB_LEXICON_DB")
			}
			csvPath := cfg.CSVPath
			if len(args) == 1 {
				csvPath = args[0]
			}

			ctx := cmd.Context()
			if err := lexicon.EnsureList(ctx, csvPath, url); err != nil {
				return err
			}

			conn, err := db.Open(dbPath)
			if err != nil {
				return err
			}
			defer conn.Close()

			im := lexicon.NewImporter(conn)
			im.Logger = env.logger
			im.OnProgress = func(current, total int) {
				env.logger.Debug("import progress", slog.Int("current", current), slog.Int("total", total))
			}
			n, err := im.ImportFile(ctx, csvPath, list)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d words from %s into %s (list %s)\n", n, csvPath, dbPath, list)
			return nil
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite lexicon path")
	cmd.Flags().StringVar(&list, "list", "", "Name recorded for the imported list")
	cmd.Flags().StringVar(&url, "url", "", "Download the list from here when the CSV is missing")
	return cmd
}

func newLexiconStatsCommand(env *runtimeEnv) *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show lexicon size per tier and import history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("db") {
				dbPath = env.cfg.Lexicon.DBPath
			}
			if dbPath == "" {
				return errors.New("no lexicon database: pass --db or set LYRICVOCAB_LEXICON_DB")
			}
			conn, err := openLexicon(dbPath)
			if err != nil {
				return err
			}
			defer conn.Close()

			counts, err := db.CountByTier(conn)
			if err != nil {
				return err
			}
			imports, err := db.ListImports(conn)
			if err != nil {
				return err
			}

			tiers := make([]int, 0, len(counts))
			for t := range counts {
				tiers = append(tiers, t)
			}
			sort.Ints(tiers)

			out := cmd.OutOrStdout()
			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "TIER\tWORDS")
			total := 0
			for _, t := range tiers {
				fmt.Fprintf(tw, "%d\t%d\n", t, counts[t])
				total += counts[t]
			}
			fmt.Fprintf(tw, "total\t%d\n", total)
			if err := tw.Flush(); err != nil {
				return err
			}

			if len(imports) > 0 {
				fmt.Fprintln(out)
				tw = tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "ID\tLIST\tROWS\tPATH\tIMPORTED")
				for _, im := range imports {
					fmt.Fprintf(tw, "%d\t%s\t%d\t%s\t%s\n", im.ID, im.List, im.Rows, im.Path, im.ImportedAt.Format("2006-01-02 15:04"))
				}
				return tw.Flush()
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite lexicon path")
	return cmd
}
