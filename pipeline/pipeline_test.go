package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yomiage/dictionary"
	"yomiage/ingest"
	"yomiage/logger"
	"yomiage/model"
)

// wordAnalyzer segments a line greedily on the longest known word and emits
// every other rune as its own token without a reading.
type wordAnalyzer struct {
	readings map[string]string
	err      error

	mu    sync.Mutex
	calls []string
}

func (w *wordAnalyzer) Analyze(ctx context.Context, line string) ([]model.Token, error) {
	w.mu.Lock()
	w.calls = append(w.calls, line)
	w.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if w.err != nil {
		return nil, w.err
	}
	var out []model.Token
	rs := []rune(line)
	for i := 0; i < len(rs); {
		n := 1
		reading := ""
		for j := len(rs); j > i; j-- {
			if r, ok := w.readings[string(rs[i:j])]; ok {
				n, reading = j-i, r
				break
			}
		}
		out = append(out, model.Token{Surface: string(rs[i : i+n]), Reading: reading})
		i += n
	}
	return out, nil
}

func (w *wordAnalyzer) seen(s string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, c := range w.calls {
		if strings.Contains(c, s) {
			return true
		}
	}
	return false
}

var testReadings = map[string]string{
	"参照":  "サンショウ",
	"技術":  "ギジュツ",
	"関":   "カン",
	"基本的": "キホンテキ",
	"説明":  "セツメイ",
	"公開":  "コウカイ",
	"概要":  "ガイヨウ",
	"本文":  "ホンブン",
	"年":   "ネン",
	"月":   "ガツ",
	"日":   "ニチ",
	"冗長":  "ジョウチョウ",
	"化":   "カ",
	"世界":  "セカイ",
	"広":   "ヒロ",
}

func newTestPipeline(t *testing.T, cfg Config) (*Pipeline, *wordAnalyzer) {
	t.Helper()
	a := &wordAnalyzer{readings: testReadings}
	if cfg.Analyzer == nil {
		cfg.Analyzer = a
	}
	p, err := New(cfg)
	require.NoError(t, err)
	return p, a
}

var digits = regexp.MustCompile(`[0-9０-９]`)

func TestNormalizeEndToEnd(t *testing.T) {
	p, _ := newTestPipeline(t, Config{})
	out, err := p.Normalize(context.Background(), "Chapter 5 の図2.1ではISBN978-4-87311-865-8を参照（Reference）", nil)
	require.NoError(t, err)

	assert.NotRegexp(t, digits, out)
	assert.NotContains(t, out, "ISBN")
	assert.NotContains(t, out, "Reference")
	assert.NotContains(t, out, "図2.1")
	assert.Contains(t, out, "チャプター")
	assert.Contains(t, out, "サンショウ")
	assert.NotContains(t, out, "参照")
}

func TestNormalizeStages(t *testing.T) {
	p, _ := newTestPipeline(t, Config{})
	cases := []struct {
		name, in, want string
	}{
		{"counter before dictionary", "APIを3回呼ぶ", "エーピーアイをさんかい呼ぶ"},
		{"pause then reading", "クラウドネイティブ技術に関する基本的な説明", "クラウドネイティブギジュツにカンする、キホンテキなセツメイ"},
		{"trimmed", "  本文  ", "ホンブン"},
		{"markdown", "**概要**", "ガイヨウ"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := p.Normalize(context.Background(), tc.in, nil)
			require.NoError(t, err)
			assert.Equal(t, tc.want, out)
		})
	}
}

func TestHeadingMarkerPassesThrough(t *testing.T) {
	p, a := newTestPipeline(t, Config{})
	out, err := p.Normalize(context.Background(), model.HeadingMarkerString+"概要", nil)
	require.NoError(t, err)
	assert.Equal(t, model.HeadingMarkerString+"ガイヨウ", out)
	assert.False(t, a.seen(model.HeadingMarkerString))
}

func TestNormalizeIdempotent(t *testing.T) {
	p, _ := newTestPipeline(t, Config{})
	corpus := []string{
		"Chapter 5 の図2.1ではISBN978-4-87311-865-8を参照（Reference）",
		"クラウドネイティブ技術に関する基本的な説明",
		"2024年3月15日にAPIを公開した",
		"クラウドネイティブの世界は広い",
		model.HeadingMarkerString + "概要",
	}
	ctx := context.Background()
	for _, in := range corpus {
		once, err := p.Normalize(ctx, in, nil)
		require.NoError(t, err)
		twice, err := p.Normalize(ctx, once, nil)
		require.NoError(t, err)
		assert.Equal(t, once, twice, in)
	}
}

func TestDynamicDictionary(t *testing.T) {
	dir := t.TempDir()
	store := dictionary.NewStore(dir, nil)
	p, a := newTestPipeline(t, Config{Store: store, Workers: 2})

	doc, err := ingest.Split("# 概要\n\n冗長化構成の説明\n\nAPIの冗長化")
	require.NoError(t, err)
	require.NoError(t, store.Save(dictionary.ContentHash(doc.Text), map[string]string{"冗長化": "じょうちょうか"}))

	results, err := p.NormalizeDocument(context.Background(), doc)
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, model.HeadingMarkerString+"ガイヨウ", results[0].Reading)
	assert.Equal(t, "じょうちょうか構成のセツメイ", results[1].Reading)
	assert.Equal(t, "エーピーアイのじょうちょうか", results[2].Reading)
	assert.False(t, a.seen("冗長化"))
}

func TestStaticBeforeDynamic(t *testing.T) {
	p, _ := newTestPipeline(t, Config{})
	dynamic := dictionary.New(map[string]string{"API": "あぴ", "エーピーアイ": "えーぴーあい"})
	out, err := p.Normalize(context.Background(), "APIの話", dynamic)
	require.NoError(t, err)
	// the static reading wins and is then rewritten by the dynamic table
	assert.Equal(t, "えーぴーあいの話", out)
}

func TestNormalizeDocumentKeepsOrder(t *testing.T) {
	p, _ := newTestPipeline(t, Config{Workers: 3})
	var parts []string
	for i := 1; i <= 20; i++ {
		parts = append(parts, fmt.Sprintf("第%d章", i))
	}
	doc, err := ingest.Split(strings.Join(parts, "\n\n"))
	require.NoError(t, err)

	results, err := p.NormalizeDocument(context.Background(), doc)
	require.NoError(t, err)
	require.Len(t, results, 20)
	for i, res := range results {
		assert.Equal(t, i, res.Segment.Index)
		assert.Equal(t, doc.Segments[i].ID, res.Segment.ID)
		assert.NotRegexp(t, digits, res.Reading)
	}
}

func TestAnalyzerErrors(t *testing.T) {
	boom := errors.New("boom")
	p, _ := newTestPipeline(t, Config{Analyzer: &wordAnalyzer{err: boom}})

	_, err := p.Normalize(context.Background(), "本文", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAnalyzer)
	assert.ErrorIs(t, err, boom)

	// no kanji, no analyzer call
	out, err := p.Normalize(context.Background(), "ひらがな", nil)
	require.NoError(t, err)
	assert.Equal(t, "ひらがな", out)

	doc, err := ingest.Split("本文\n\nもう一つ")
	require.NoError(t, err)
	_, err = p.NormalizeDocument(context.Background(), doc)
	assert.ErrorIs(t, err, ErrAnalyzer)
}

func TestCancelledContext(t *testing.T) {
	p, _ := newTestPipeline(t, Config{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := p.Normalize(ctx, "本文", nil)
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, ErrAnalyzer)
}

func TestTraces(t *testing.T) {
	dir := t.TempDir()
	tracer, err := logger.NewTracer(dir)
	require.NoError(t, err)
	p, _ := newTestPipeline(t, Config{Tracer: tracer})

	doc, err := ingest.Split("APIの説明")
	require.NoError(t, err)
	_, err = p.NormalizeDocument(context.Background(), doc)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, doc.Segments[0].ID+".json"))
	require.NoError(t, err)
	var tr logger.Trace
	require.NoError(t, json.Unmarshal(data, &tr))
	assert.Equal(t, "APIの説明", tr.Input)
	var names []string
	for _, s := range tr.Stages {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{StageClean, StagePunctuation, StageNumeral, StageStatic, StageDynamic, StageAnalyzer}, names)
	assert.Equal(t, "エーピーアイのセツメイ", tr.Stages[len(tr.Stages)-1].Text)
}

func TestNewRequiresAnalyzer(t *testing.T) {
	_, err := New(Config{})
	assert.Error(t, err)
}
