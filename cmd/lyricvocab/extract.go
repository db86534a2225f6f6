package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/japaniel/lyricvocab/pkg/config"
	"github.com/japaniel/lyricvocab/pkg/db"
	"github.com/japaniel/lyricvocab/pkg/difficulty"
	"github.com/japaniel/lyricvocab/pkg/export"
	"github.com/japaniel/lyricvocab/pkg/extract"
	"github.com/japaniel/lyricvocab/pkg/frequency"
	"github.com/japaniel/lyricvocab/pkg/llm"
	"github.com/japaniel/lyricvocab/pkg/lyrics"
	"github.com/japaniel/lyricvocab/pkg/translate"
	"github.com/japaniel/lyricvocab/pkg/vocab"
)

type extractOptions struct {
	url       string
	level     string
	source    string
	target    string
	format    string
	lexiconDB string
	maxItems  int
	stem      bool
	trace     bool
}

func newExtractCommand(env *runtimeEnv) *cobra.Command {
	var opts extractOptions

	cmd := &cobra.Command{
		Use:   "extract [file]",
		Short: "Extract vocabulary from lyrics",
		Long: `Reads lyrics from a file, from --url, or from stdin when no file is given
(or the file is "-"), and prints the words above the learner level.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			applyConfigDefaults(cmd, &opts, env.cfg)
			return runExtract(cmd.Context(), cmd, env, opts, args)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.url, "url", "", "Fetch lyrics from a web page")
	f.StringVarP(&opts.level, "level", "l", "", "Learner level: A1, A2, B1, B2, C1, C2")
	f.StringVar(&opts.source, "source", "", "Extraction source: heuristic, llm, combined")
	f.StringVarP(&opts.target, "target", "t", "", "Translate items into this language")
	f.StringVarP(&opts.format, "output", "o", "table", "Output format: table, json, tsv")
	f.StringVar(&opts.lexiconDB, "lexicon-db", "", "SQLite lexicon used to refine frequency tiers")
	f.IntVar(&opts.maxItems, "max", 0, "Keep at most this many items (0 = all)")
	f.BoolVar(&opts.stem, "stem", false, "Look up inflected forms through their stem")
	f.BoolVar(&opts.trace, "trace", false, "Log every token decision at debug level")

	return cmd
}

// applyConfigDefaults fills options the user did not set on the command line.
func applyConfigDefaults(cmd *cobra.Command, opts *extractOptions, cfg *config.Config) {
	f := cmd.Flags()
	if !f.Changed("level") {
		opts.level = cfg.Extract.Level
	}
	if !f.Changed("source") {
		opts.source = cfg.Extract.Source
	}
	if !f.Changed("target") {
		opts.target = cfg.Translate.Target
	}
	if !f.Changed("lexicon-db") {
		opts.lexiconDB = cfg.Lexicon.DBPath
	}
	if !f.Changed("max") {
		opts.maxItems = cfg.Extract.MaxItems
	}
	if !f.Changed("stem") {
		opts.stem = cfg.Extract.Stemming
	}
	if !f.Changed("trace") {
		opts.trace = cfg.Extract.Trace
	}
}

func runExtract(ctx context.Context, cmd *cobra.Command, env *runtimeEnv, opts extractOptions, args []string) error {
	logger := env.logger

	text, err := readLyrics(ctx, cmd.InOrStdin(), opts.url, args)
	if err != nil {
		return err
	}

	level, err := vocab.ParseLevel(opts.level)
	if err != nil {
		return err
	}
	req := vocab.Request{
		Lyrics:     text,
		Level:      level,
		Target:     opts.target,
		NeedTarget: opts.target != "",
	}
	if err := req.Validate(); err != nil {
		return err
	}

	classifier, err := buildClassifier(opts, logger)
	if err != nil {
		return err
	}
	pipeline := extract.NewPipeline(difficulty.NewScorer(classifier))
	if opts.trace {
		pipeline.Tracer = extract.SlogTracer(logger)
	}
	heuristic := extract.HeuristicSource{Pipeline: pipeline, Logger: logger}

	var completer llm.Completer
	if opts.source == config.SourceLLM || opts.source == config.SourceCombined {
		completer, err = llm.New(env.cfg.LLM)
		if err != nil {
			return err
		}
	} else if opts.target != "" {
		if completer, err = llm.New(env.cfg.LLM); err != nil {
			logger.Warn("no translation backend configured; items will be marked untranslated",
				slog.String("error", err.Error()))
			completer = nil
		}
	}

	var source extract.Source
	switch opts.source {
	case config.SourceHeuristic:
		source = heuristic
	case config.SourceLLM, config.SourceCombined:
		lang, err := llm.DetectLanguage(ctx, completer, text)
		if err != nil {
			logger.Warn("language detection failed", slog.String("error", err.Error()))
		}
		req.SourceLanguage = lang
		collab := extract.CollaboratorSource{Generator: &llm.Extractor{Completer: completer, Logger: logger}}
		if opts.source == config.SourceLLM {
			source = collab
		} else {
			source = extract.CombinedSource{Primary: heuristic, Secondary: collab}
		}
	default:
		return fmt.Errorf("unknown source %q", opts.source)
	}

	items, err := source.Extract(ctx, req)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		fmt.Fprintf(cmd.ErrOrStderr(), "No words above level %s: this song is too simple for the level.\n", level)
		return nil
	}
	if opts.maxItems > 0 && len(items) > opts.maxItems {
		items = items[:opts.maxItems]
	}

	if opts.target != "" {
		var tr translate.Translator = translate.Stub{}
		if completer != nil {
			tr = llm.NewTranslator(completer)
		}
		svc := &translate.Service{
			Translator: tr,
			BatchSize:  env.cfg.Translate.BatchSize,
			Workers:    env.cfg.Translate.Workers,
			Logger:     logger,
		}
		items, err = svc.Apply(ctx, items, opts.target)
		if err != nil {
			return err
		}
	}

	logger.Info("extraction complete",
		slog.String("level", level.String()),
		slog.String("source", opts.source),
		slog.Int("items", len(items)),
	)
	return writeItems(cmd.OutOrStdout(), opts.format, items)
}

func readLyrics(ctx context.Context, stdin io.Reader, rawURL string, args []string) (string, error) {
	if rawURL != "" {
		if len(args) > 0 {
			return "", errors.New("give either a file or --url, not both")
		}
		doc, err := fetchLyrics(ctx, rawURL)
		if err != nil {
			return "", err
		}
		slog.Info("fetched lyrics", slog.String("title", doc.Title), slog.Int("chars", len(doc.Text)))
		return doc.Text, nil
	}

	var raw []byte
	var err error
	if len(args) == 0 || args[0] == "-" {
		raw, err = io.ReadAll(stdin)
	} else {
		raw, err = os.ReadFile(args[0])
	}
	if err != nil {
		return "", fmt.Errorf("read lyrics: %w", err)
	}
	return lyrics.FromPlain(string(raw)).Text, nil
}

// buildClassifier layers the optional lexicon and stemming over the built-in table.
func buildClassifier(opts extractOptions, logger *slog.Logger) (frequency.Classifier, error) {
	table := frequency.Default()

	if opts.lexiconDB != "" {
		conn, err := openLexicon(opts.lexiconDB)
		if err != nil {
			return nil, err
		}
		defer conn.Close()

		loaded, err := frequency.LoadTable(conn)
		if err != nil {
			return nil, err
		}
		logger.Debug("lexicon loaded", slog.String("path", opts.lexiconDB), slog.Int("words", loaded.Len()))
		table = frequency.Merge(table, loaded)
	}

	if opts.stem {
		return frequency.NewStemmed(table), nil
	}
	return table, nil
}

func openLexicon(path string) (*sql.DB, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("lexicon %s: %w", path, err)
	}
	return db.Open(path)
}

func writeItems(w io.Writer, format string, items []vocab.LearningItem) error {
	switch strings.ToLower(format) {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(items)
	case "tsv":
		return export.WriteTSV(w, items)
	case "table":
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "WORD\tSCORE\tBAND\tCOUNT\tTRANSLATION\tEXAMPLE")
		for _, it := range items {
			back := it.Translation
			if back == "" && it.TranslationError != "" {
				back = "(" + it.TranslationError + ")"
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\t%s\n",
				it.Word, strconv.FormatFloat(it.Score, 'f', 1, 64), it.Band(), it.Count, back, it.Example)
		}
		return tw.Flush()
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
