package main

import (
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"yomiage/config"
	"yomiage/logger"
	"yomiage/output"
	"yomiage/version"
)

var (
	cfgFile      string
	envFile      string
	outputFormat string

	cfg    *config.Config
	format output.Format
)

var rootCmd = &cobra.Command{
	Use:   "yomiage",
	Short: "Normalize Japanese book text into readings for speech synthesis",
	Long: `yomiage turns Japanese technical prose into text a speech synthesizer
can read aloud without mispronouncing it.

Every segment passes through a fixed chain of stages:
  - markup, URL, ISBN and reference cleanup
  - reading pauses after long phrases
  - numbers, dates, times and counters spelled out in kana
  - built-in and per-document reading dictionaries
  - kanji converted to readings by a morphological analyzer`,
	Version:       version.GitRelease,
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if format, err = output.Parse(outputFormat); err != nil {
			return err
		}
		if cfg, err = config.Load(cfgFile, envFile); err != nil {
			return err
		}
		base, err := logger.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)
		if err != nil {
			return err
		}
		slog.SetDefault(base.With("run", uuid.NewString()))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default: ./yomiage.yaml or ~/.yomiage/yomiage.yaml)",
	)
	rootCmd.PersistentFlags().StringVar(
		&envFile, "env", ".env", "dotenv file with YOMIAGE_* overrides",
	)
	rootCmd.PersistentFlags().StringVarP(
		&outputFormat, "output", "o", "text", "output format: text, yaml or json",
	)

	rootCmd.AddCommand(normalizeCmd, tokensCmd, numberCmd, dictCmd, configCmd, watchCmd, versionCmd)
}
