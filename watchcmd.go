package main

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"yomiage/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch <file>",
	Short: "Normalize a document again whenever it or its dictionaries change",
	Long: `Normalize a document, then keep watching it and the dictionary
directory, printing a fresh reading after every save. Use --out to keep
the latest reading in a file instead of stdout. Stop with Ctrl+C.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := newPipeline(cfg)
		if err != nil {
			return err
		}
		paths := []string{args[0]}
		if cfg.Dictionary.Dir != "" && isDir(cfg.Dictionary.Dir) {
			paths = append(paths, cfg.Dictionary.Dir)
		}
		w := watch.New(paths, watch.DefaultDebounce, slog.Default())
		return w.Run(cmd.Context(), func(ctx context.Context) error {
			return normalizeFile(ctx, p, args[0])
		})
	},
}

func init() {
	watchCmd.Flags().BoolVar(&normalizeStripMarkers, "strip-markers", false, "remove heading markers from text output")
	watchCmd.Flags().StringVar(&normalizeOut, "out", "", "write to this file instead of stdout")
}
