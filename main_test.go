package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yomiage/model"
	"yomiage/output"
	"yomiage/pipeline"
)

// kanaAnalyzer reads 本 and leaves every other rune unread.
type kanaAnalyzer struct{}

func (kanaAnalyzer) Analyze(_ context.Context, line string) ([]model.Token, error) {
	var out []model.Token
	for _, r := range line {
		tok := model.Token{Surface: string(r)}
		if r == '本' {
			tok.Reading = "ホン"
		}
		out = append(out, tok)
	}
	return out, nil
}

func testPipeline(t *testing.T) *pipeline.Pipeline {
	t.Helper()
	p, err := pipeline.New(pipeline.Config{Analyzer: kanaAnalyzer{}})
	require.NoError(t, err)
	return p
}

func TestReadNumber(t *testing.T) {
	cases := []struct {
		in, counter, want string
	}{
		{"1234", "", "せんにひゃくさんじゅうよん"},
		{"1.5", "", "いちてんご"},
		{"3", "本", "さんぼん"},
		{"-2", "", "マイナスに"},
	}
	for _, tc := range cases {
		got, err := readNumber(tc.in, tc.counter)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, tc.in)
	}
	_, err := readNumber("12a", "")
	assert.Error(t, err)
	_, err = readNumber("1.2.3", "")
	assert.Error(t, err)
}

func TestNormalizeText(t *testing.T) {
	p := testPipeline(t)
	res, err := normalizeText(context.Background(), p, "# 本\n\nAPIの本を3冊")
	require.NoError(t, err)
	require.Len(t, res.Results, 2)
	assert.NotEmpty(t, res.Document)
	assert.Len(t, res.Hash, 64)
	assert.Equal(t, model.HeadingMarkerString+"ホン\nエーピーアイのホンをさんさつ", res.Text())

	res.stripMarkers = true
	assert.Equal(t, "ホン\nエーピーアイのホンをさんさつ", res.Text())
}

func TestNormalizeTextRaw(t *testing.T) {
	normalizeRaw = true
	t.Cleanup(func() { normalizeRaw = false })

	p := testPipeline(t)
	res, err := normalizeText(context.Background(), p, "本\n\n本")
	require.NoError(t, err)
	require.Len(t, res.Results, 1)
	assert.Empty(t, res.Document)
	assert.Equal(t, 2, strings.Count(res.Text(), "ホン"))
	assert.NotContains(t, res.Text(), "本")
}

func TestNormalizeFileOut(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.md")
	require.NoError(t, os.WriteFile(in, []byte("本を3冊"), 0o644))
	normalizeOut = filepath.Join(dir, "out.txt")
	format = output.Text
	t.Cleanup(func() {
		normalizeOut = ""
		format = ""
	})

	require.NoError(t, normalizeFile(context.Background(), testPipeline(t), in))
	got, err := os.ReadFile(normalizeOut)
	require.NoError(t, err)
	assert.Equal(t, "ホンをさんさつ", strings.TrimSpace(string(got)))

	normalizeOut = filepath.Join(dir, "missing", "out.txt")
	assert.Error(t, normalizeFile(context.Background(), testPipeline(t), in))
}

func TestTokenListText(t *testing.T) {
	l := tokenList{{Surface: "本", Reading: "ホン", POS: "名詞"}, {Surface: "を", POS: "助詞"}}
	assert.Equal(t, "本\tホン\t名詞\nを\t\t助詞", l.Text())
}

func TestCommandsRegistered(t *testing.T) {
	for _, name := range []string{"normalize", "tokens", "number", "dict", "config", "watch", "version"} {
		cmd, _, err := rootCmd.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, cmd.Name())
	}
}
