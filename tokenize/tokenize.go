// Package tokenize is the boundary to the morphological analyzer. It turns
// the kanji left in a line into readings and leaves everything else alone.
package tokenize

import (
	"context"
	"fmt"
	"strings"

	"github.com/ikawaha/kagome-dict/dict"
	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome-dict/uni"
	"github.com/ikawaha/kagome/v2/tokenizer"

	"yomiage/kanji"
	"yomiage/model"
)

// Analyzer splits a line into tokens, each with an optional reading.
type Analyzer interface {
	Analyze(ctx context.Context, line string) ([]model.Token, error)
}

// Options selects the kagome dictionary and segmentation mode.
type Options struct {
	// Dict is "ipa" (default) or "uni".
	Dict string
	// Mode is "normal" (default), "search" or "extended".
	Mode string
}

// Kagome is an Analyzer backed by an in-process kagome tokenizer.
// A kagome tokenizer is read-only after construction, so one Kagome can be
// shared by every worker.
type Kagome struct {
	t    *tokenizer.Tokenizer
	mode tokenizer.TokenizeMode
}

// NewKagome builds the tokenizer. Loading the dictionary takes a moment, so
// build one per process.
func NewKagome(opts Options) (*Kagome, error) {
	d, err := selectDict(opts.Dict)
	if err != nil {
		return nil, err
	}
	mode, err := selectMode(opts.Mode)
	if err != nil {
		return nil, err
	}
	t, err := tokenizer.New(d, tokenizer.OmitBosEos())
	if err != nil {
		return nil, fmt.Errorf("kagome: %w", err)
	}
	return &Kagome{t: t, mode: mode}, nil
}

func selectDict(name string) (*dict.Dict, error) {
	switch strings.ToLower(name) {
	case "", "ipa":
		return ipa.Dict(), nil
	case "uni":
		return uni.Dict(), nil
	}
	return nil, fmt.Errorf("unknown analyzer dictionary %q", name)
}

func selectMode(name string) (tokenizer.TokenizeMode, error) {
	switch strings.ToLower(name) {
	case "", "normal":
		return tokenizer.Normal, nil
	case "search":
		return tokenizer.Search, nil
	case "extended":
		return tokenizer.Extended, nil
	}
	return tokenizer.Normal, fmt.Errorf("unknown analyzer mode %q", name)
}

// Analyze tokenizes line.
func (k *Kagome) Analyze(ctx context.Context, line string) ([]model.Token, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if line == "" {
		return nil, nil
	}
	return convertKagomeTokens(k.t.Analyze(line, k.mode)), nil
}

func convertKagomeTokens(ktoks []tokenizer.Token) []model.Token {
	out := make([]model.Token, 0, len(ktoks))
	for _, kt := range ktoks {
		if kt.Class == tokenizer.DUMMY {
			continue
		}
		reading, ok := kt.Reading()
		if !ok || reading == "*" {
			reading = ""
		}
		out = append(out, model.Token{
			Surface: kt.Surface,
			Reading: reading,
			POS:     strings.Join(kt.POS(), ","),
		})
	}
	return out
}

// Reader substitutes analyzer readings for kanji-bearing tokens.
type Reader struct {
	analyzer Analyzer
	fallback *kanji.Table
}

// NewReader returns a Reader. fallback may be nil.
func NewReader(a Analyzer, fallback *kanji.Table) *Reader {
	return &Reader{analyzer: a, fallback: fallback}
}

// ToReading converts every kanji-bearing token in text to its reading, line
// by line. Lines without kanji are not sent to the analyzer. Heading markers
// never reach the analyzer. Analyzer errors are returned as they are.
func (r *Reader) ToReading(ctx context.Context, text string) (string, error) {
	if !kanji.ContainsKanji(text) {
		return text, nil
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		if !kanji.ContainsKanji(line) {
			continue
		}
		parts := strings.Split(line, model.HeadingMarkerString)
		for j, part := range parts {
			out, err := r.readPart(ctx, part)
			if err != nil {
				return "", err
			}
			parts[j] = out
		}
		lines[i] = strings.Join(parts, model.HeadingMarkerString)
	}
	return strings.Join(lines, "\n"), nil
}

func (r *Reader) readPart(ctx context.Context, part string) (string, error) {
	if !kanji.ContainsKanji(part) {
		return part, nil
	}
	tokens, err := r.analyzer.Analyze(ctx, part)
	if err != nil {
		return "", err
	}
	// Text between token surfaces is copied through, so an analyzer that
	// drops characters cannot lose them.
	var b strings.Builder
	b.Grow(len(part) * 2)
	pos := 0
	for _, t := range tokens {
		if t.Surface == "" {
			continue
		}
		idx := strings.Index(part[pos:], t.Surface)
		if idx < 0 {
			continue
		}
		b.WriteString(part[pos : pos+idx])
		b.WriteString(r.tokenReading(t))
		pos += idx + len(t.Surface)
	}
	b.WriteString(part[pos:])
	return b.String(), nil
}

func (r *Reader) tokenReading(t model.Token) string {
	if !kanji.ContainsKanji(t.Surface) {
		return t.Surface
	}
	if t.Reading != "" {
		return t.Reading
	}
	return r.fallback.Resolve(t.Surface)
}
