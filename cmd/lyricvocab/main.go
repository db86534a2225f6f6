package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/japaniel/lyricvocab/pkg/app"
	"github.com/japaniel/lyricvocab/pkg/config"
	"github.com/japaniel/lyricvocab/pkg/lyrics"
)

// runtimeEnv is filled in by the root command before any subcommand runs.
type runtimeEnv struct {
	cfg    *config.Config
	logger *slog.Logger
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	env := &runtimeEnv{}
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "lyricvocab",
		Short: "Pick vocabulary worth learning out of song lyrics",
		Long: `lyricvocab scores every word of a song against a learner level and lists
the ones above it, ranked by difficulty and frequency in the song.

Configuration is read from .env, from the YAML file named by LYRICVOCAB_CONFIG
(default ./lyricvocab.yaml) and from LYRICVOCAB_* environment variables.`,
		Version:       app.Version,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if configPath != "" {
				if err := os.Setenv("LYRICVOCAB_CONFIG", configPath); err != nil {
					return err
				}
			}
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			env.cfg = cfg
			env.logger = app.NewLoggerTo(cmd.ErrOrStderr(), cfg.Log)
			slog.SetDefault(env.logger)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a YAML config file")

	rootCmd.AddCommand(newExtractCommand(env))
	rootCmd.AddCommand(newLexiconCommand(env))
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		// Skip config loading.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "lyricvocab %s\nanalyzer %s\n", app.BuildVersion(), lyrics.Version())
		},
	}
}
