package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"yomiage/config"
	"yomiage/dictionary"
	"yomiage/kanji"
	"yomiage/logger"
	"yomiage/pipeline"
	"yomiage/punct"
	"yomiage/tokenize"
)

// newAnalyzer builds the kagome analyzer; loading its dictionary is the slow
// part of startup.
func newAnalyzer(c *config.Config) (*tokenize.Kagome, error) {
	return tokenize.NewKagome(tokenize.Options{Dict: c.Analyzer.Dict, Mode: c.Analyzer.Mode})
}

func newPipeline(c *config.Config) (*pipeline.Pipeline, error) {
	log := slog.Default()
	analyzer, err := newAnalyzer(c)
	if err != nil {
		return nil, err
	}
	var fallback *kanji.Table
	if c.Analyzer.Kanjidic != "" {
		if fallback, err = kanji.LoadKanjidic2File(c.Analyzer.Kanjidic); err != nil {
			return nil, err
		}
		log.Info("loaded kanjidic2", "path", c.Analyzer.Kanjidic, "kanji", fallback.Count())
	}
	tracer, err := logger.NewTracer(c.Log.TraceDir)
	if err != nil {
		return nil, fmt.Errorf("trace dir: %w", err)
	}
	return pipeline.New(pipeline.Config{
		Analyzer: analyzer,
		Reader:   tokenize.NewReader(analyzer, fallback),
		Punctuation: punct.Options{
			MinPhraseRun: c.Punctuation.MinPhraseRun,
			MinTopicRun:  c.Punctuation.MinTopicRun,
		},
		Static:  dictionary.Static(),
		Store:   dictionary.NewStore(c.Dictionary.Dir, log),
		Workers: c.Pipeline.Workers,
		Tracer:  tracer,
		Logger:  log,
	})
}

// readInput reads the named file, or stdin for "" and "-".
func readInput(name string) (string, error) {
	if name == "" || name == "-" {
		b, err := io.ReadAll(os.Stdin)
		return string(b), err
	}
	b, err := os.ReadFile(name)
	return string(b), err
}

func argOrEmpty(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

func isDir(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.IsDir()
}
