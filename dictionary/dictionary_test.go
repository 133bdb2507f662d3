package dictionary

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLongestMatchFirst(t *testing.T) {
	d := New(map[string]string{
		"CI":    "シーアイ",
		"CD":    "シーディー",
		"CI/CD": "シーアイシーディー",
	})
	assert.Equal(t, "シーアイシーディーパイプライン", d.Apply("CI/CDパイプライン"))
	assert.Equal(t, "シーアイとシーディー", d.Apply("CIとCD"))
	assert.Equal(t, []string{"CI/CD", "CD", "CI"}, d.Terms())
}

func TestBoundaries(t *testing.T) {
	d := New(map[string]string{"API": "エーピーアイ", "Go": "ゴー"})
	cases := []struct {
		name, in, want string
	}{
		{"inside word", "RAPID開発", "RAPID開発"},
		{"standalone", "APIを呼ぶ", "エーピーアイを呼ぶ"},
		{"between kana", "このAPIは", "このエーピーアイは"},
		{"space bounded", "Web API design", "Web エーピーアイ design"},
		{"prefix of word", "Googleの", "Googleの"},
		{"followed by kanji", "Go言語", "ゴー言語"},
		{"case sensitive", "api", "api"},
		{"repeated", "API API", "エーピーアイ エーピーアイ"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, d.Apply(tc.in))
		})
	}
}

func TestSubstitutedTextIsNotRematched(t *testing.T) {
	// the reading of A contains the term B; it must not be rewritten
	d := New(map[string]string{"AB": "X", "X": "Y"})
	assert.Equal(t, "X", d.Apply("AB"))
	assert.Equal(t, "Y", d.Apply("X"))
}

func TestNilAndEmpty(t *testing.T) {
	var d *Dictionary
	assert.Equal(t, "API", d.Apply("API"))
	assert.Equal(t, 0, d.Len())
	_, ok := d.Lookup("API")
	assert.False(t, ok)
	assert.Equal(t, "API", New(nil).Apply("API"))
}

func TestStatic(t *testing.T) {
	s := Static()
	assert.Greater(t, s.Len(), 150)
	cases := []struct {
		name, in, want string
	}{
		{"ci cd", "CI/CDパイプライン", "シーアイシーディーパイプライン"},
		{"sre", "SREの役割", "エスアールイーの役割"},
		{"kubernetes", "Kubernetesクラスタ", "クバネティスクラスタ"},
		{"ampersand", "R&D", "RアンドD"},
		{"comparison", "a>=b", "aだいなりイコールb"},
		{"arrow", "入力→出力", "入力出力"},
		{"ascii arrow", "入力->出力", "入力出力"},
		{"quotes", "“信頼性”", "信頼性"},
		{"brackets", "【重要】", "重要"},
		{"tilde", "いち〜さん", "いちからさん"},
		{"brackets around term", "[API]s", "エーピーアイs"},
		{"chapter", "Chapter ご", "チャプター ご"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, s.Apply(tc.in))
		})
	}
}

func TestStaticIdempotent(t *testing.T) {
	s := Static()
	corpus := []string{
		"CI/CDとDevOpsとSREのKPI",
		"R&D -> API設計 “重要” 【注意】",
		"a>=b, c<=d, e!=f, g==h",
		"[API]sとGoogleのGo",
	}
	for _, in := range corpus {
		once := s.Apply(in)
		assert.Equal(t, once, s.Apply(once), in)
	}
}

func TestContentHash(t *testing.T) {
	h := ContentHash("本文")
	assert.Len(t, h, 64)
	assert.Equal(t, h, ContentHash("本文"))
	assert.NotEqual(t, h, ContentHash("本文。"))
}

func TestStoreLoad(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir, nil)
	hash := ContentHash("document")

	t.Run("missing file is empty", func(t *testing.T) {
		d, err := store.Load(hash)
		require.NoError(t, err)
		assert.Equal(t, 0, d.Len())
	})

	t.Run("round trip", func(t *testing.T) {
		require.NoError(t, store.Save(hash, map[string]string{"Toil": "トイル", "SRE": "エスアールイー"}))
		d, err := store.Load(hash)
		require.NoError(t, err)
		assert.Equal(t, 2, d.Len())
		r, ok := d.Lookup("Toil")
		assert.True(t, ok)
		assert.Equal(t, "トイル", r)
	})

	t.Run("malformed", func(t *testing.T) {
		bad := ContentHash("bad")
		require.NoError(t, os.WriteFile(filepath.Join(dir, bad+".json"), []byte(`{"API": 3}`), 0o644))
		_, err := store.Load(bad)
		assert.ErrorIs(t, err, ErrInvalidDictionary)
	})

	t.Run("not json", func(t *testing.T) {
		bad := ContentHash("not json")
		require.NoError(t, os.WriteFile(filepath.Join(dir, bad+".json"), []byte(`[`), 0o644))
		_, err := store.Load(bad)
		assert.ErrorIs(t, err, ErrInvalidDictionary)
	})

	t.Run("bad key", func(t *testing.T) {
		_, err := store.Load("../escape")
		assert.Error(t, err)
	})

	t.Run("no directory", func(t *testing.T) {
		d, err := NewStore("", nil).Load(hash)
		require.NoError(t, err)
		assert.Equal(t, 0, d.Len())
	})
}

func TestParseSkipsNonKana(t *testing.T) {
	d, err := Parse([]byte(`{"SRE": "エスアールイー", "Toil": "toil", "": "カラ", "LLM": "", "ML": "えむえる"}`), nil)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"SRE", "ML"}, d.Terms())
}
