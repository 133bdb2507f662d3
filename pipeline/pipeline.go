// Package pipeline chains the normalization stages that turn book text into
// a reading a speech synthesizer can pronounce.
//
// Stage order is fixed: clean, punctuation, numerals, static dictionary,
// dynamic dictionary, lexical analyzer. Numerals run before any dictionary
// so counters are read with their numbers; the analyzer runs last so
// dictionary readings are never re-analyzed.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"yomiage/clean"
	"yomiage/dictionary"
	"yomiage/logger"
	"yomiage/model"
	"yomiage/numeral"
	"yomiage/punct"
	"yomiage/tokenize"
)

// Stage names, as they appear in traces.
const (
	StageClean       = "clean"
	StagePunctuation = "punctuation"
	StageNumeral     = "numeral"
	StageStatic      = "static_dictionary"
	StageDynamic     = "dynamic_dictionary"
	StageAnalyzer    = "analyzer"
)

// ErrAnalyzer wraps every failure of the lexical analyzer.
var ErrAnalyzer = errors.New("lexical analyzer failed")

// Config wires the pipeline's collaborators. Only Analyzer is required.
type Config struct {
	Analyzer    tokenize.Analyzer
	Reader      *tokenize.Reader // built from Analyzer when nil
	Punctuation punct.Options
	Numerals    *numeral.Engine        // numeral.New(numeral.DefaultCounters) when nil
	Static      *dictionary.Dictionary // dictionary.Static() when nil
	Store       *dictionary.Store      // no dynamic dictionaries when nil
	Workers     int
	Tracer      *logger.Tracer
	Logger      *slog.Logger
}

// Pipeline is safe for concurrent use once built.
type Pipeline struct {
	reader   *tokenize.Reader
	punct    *punct.Normalizer
	numerals *numeral.Engine
	static   *dictionary.Dictionary
	store    *dictionary.Store
	workers  int
	tracer   *logger.Tracer
	logger   *slog.Logger
	stages   []stage
}

type stage struct {
	name string
	run  func(ctx context.Context, text string, dynamic *dictionary.Dictionary) (string, error)
}

// New builds a Pipeline.
func New(cfg Config) (*Pipeline, error) {
	if cfg.Analyzer == nil && cfg.Reader == nil {
		return nil, errors.New("pipeline: an analyzer is required")
	}
	p := &Pipeline{
		reader:   cfg.Reader,
		punct:    punct.New(cfg.Punctuation),
		numerals: cfg.Numerals,
		static:   cfg.Static,
		store:    cfg.Store,
		workers:  cfg.Workers,
		tracer:   cfg.Tracer,
		logger:   cfg.Logger,
	}
	if p.reader == nil {
		p.reader = tokenize.NewReader(cfg.Analyzer, nil)
	}
	if p.numerals == nil {
		p.numerals = numeral.New(numeral.DefaultCounters)
	}
	if p.static == nil {
		p.static = dictionary.Static()
	}
	if p.workers <= 0 {
		p.workers = 1
	}
	if p.logger == nil {
		p.logger = slog.Default()
	}
	p.stages = []stage{
		{StageClean, plain(clean.Clean)},
		{StagePunctuation, plain(p.punct.Normalize)},
		{StageNumeral, plain(p.numerals.Normalize)},
		{StageStatic, plain(p.static.Apply)},
		{StageDynamic, func(_ context.Context, text string, dynamic *dictionary.Dictionary) (string, error) {
			return dynamic.Apply(text), nil
		}},
		{StageAnalyzer, p.analyze},
	}
	return p, nil
}

func plain(f func(string) string) func(context.Context, string, *dictionary.Dictionary) (string, error) {
	return func(_ context.Context, text string, _ *dictionary.Dictionary) (string, error) {
		return f(text), nil
	}
}

func (p *Pipeline) analyze(ctx context.Context, text string, _ *dictionary.Dictionary) (string, error) {
	out, err := p.reader.ToReading(ctx, text)
	if err == nil {
		return out, nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
		return "", err
	}
	return "", fmt.Errorf("%w: %w", ErrAnalyzer, err)
}

// Normalize runs every stage over text. dynamic may be nil.
func (p *Pipeline) Normalize(ctx context.Context, text string, dynamic *dictionary.Dictionary) (string, error) {
	return p.run(ctx, text, dynamic, nil)
}

func (p *Pipeline) run(ctx context.Context, text string, dynamic *dictionary.Dictionary, tr *logger.Trace) (string, error) {
	for _, s := range p.stages {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		out, err := s.run(ctx, text, dynamic)
		if err != nil {
			return "", fmt.Errorf("%s: %w", s.name, err)
		}
		text = out
		if tr != nil {
			tr.Add(s.name, text)
		}
	}
	return strings.TrimSpace(text), nil
}

// NormalizeSegment normalizes one segment, recording a trace when a tracer
// is configured.
func (p *Pipeline) NormalizeSegment(ctx context.Context, seg model.Segment, dynamic *dictionary.Dictionary) (model.Result, error) {
	var tr *logger.Trace
	if p.tracer != nil {
		tr = &logger.Trace{ID: seg.ID, Index: seg.Index, Input: seg.Text}
	}
	reading, err := p.run(ctx, seg.Text, dynamic, tr)
	if tr != nil {
		if err != nil {
			tr.Error = err.Error()
		}
		if werr := p.tracer.Write(tr); werr != nil {
			p.logger.Warn("failed to write trace", "segment", seg.ID, "error", werr)
		}
	}
	if err != nil {
		return model.Result{}, fmt.Errorf("segment %d: %w", seg.Index, err)
	}
	return model.Result{Segment: seg, Reading: reading}, nil
}

// LoadDictionary returns the dynamic dictionary for a document's text.
func (p *Pipeline) LoadDictionary(text string) (*dictionary.Dictionary, error) {
	return p.store.Load(dictionary.ContentHash(text))
}

// NormalizeDocument normalizes every segment of doc on the configured number
// of workers. The dynamic dictionary is loaded once, keyed by the content
// hash of doc.Text. Results come back in segment order. The first failure
// cancels the remaining segments.
func (p *Pipeline) NormalizeDocument(ctx context.Context, doc model.Document) ([]model.Result, error) {
	start := time.Now()
	dynamic, err := p.LoadDictionary(doc.Text)
	if err != nil {
		return nil, err
	}

	results := make([]model.Result, len(doc.Segments))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers)
	for i, seg := range doc.Segments {
		g.Go(func() error {
			res, err := p.NormalizeSegment(gctx, seg, dynamic)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	p.logger.Info("document normalized",
		"document", doc.ID,
		"segments", len(doc.Segments),
		"dynamic_terms", dynamic.Len(),
		"elapsed", time.Since(start))
	return results, nil
}
