package punct

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeConnectors(t *testing.T) {
	cases := []struct {
		name, in, want string
	}{
		{"long phrase", "クラウドネイティブ技術に関する基本的な説明", "クラウドネイティブ技術に関する、基本的な説明"},
		{"short phrase", "技術に関する本", "技術に関する本"},
		{"line end", "クラウドネイティブ技術に関する", "クラウドネイティブ技術に関する"},
		{"before punctuation", "クラウドネイティブ技術に関する。", "クラウドネイティブ技術に関する。"},
		{"before space", "クラウドネイティブ技術に関する 説明", "クラウドネイティブ技術に関する 説明"},
		{"run restarts after comma", "まず、ネイティブ技術に関する説明", "まず、ネイティブ技術に関する説明"},
		{"other connector", "大規模な分散システムにおける障害対応", "大規模な分散システムにおける、障害対応"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Normalize(tc.in))
		})
	}
}

func TestNormalizeTopic(t *testing.T) {
	cases := []struct {
		name, in, want string
	}{
		{"after kanji", "クラウドネイティブの世界は広い", "クラウドネイティブの世界は、広い"},
		{"short topic", "私は学生です", "私は学生です"},
		{"word internal", "ソフトウェアをつかいはじめる", "ソフトウェアをつかいはじめる"},
		{"long topic then negative", "この説明で述べている内容は決して問題ではありません", "この説明で述べている内容は、決して問題ではありません"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Normalize(tc.in))
		})
	}
}

func TestExclusions(t *testing.T) {
	inputs := []string{
		"これは問題ではありません",
		"長い長い長い長い説明ではありません",
		"長い長い長い長い説明ではない",
		"長い長い長い長い説明ではなかった",
		"長い長い長い長い説明ではなくて別の話",
		"長い長い長い長い説明ではありますが",
		"長い長い長い長い説明ではある",
	}
	for _, in := range inputs {
		out := Normalize(in)
		assert.NotContains(t, out, "では、", in)
		assert.Equal(t, in, out)
	}
	assert.NotContains(t, Normalize("長い長い長い長い説明とは言えない"), "とは、")
	assert.NotContains(t, Normalize("長い長い長い長い説明とは限らない"), "とは、")
	assert.NotContains(t, Normalize("長い長い長い長い説明には至らない"), "には、")
	assert.NotContains(t, Normalize("長い長い長い長い説明にはならない"), "には、")
}

func TestOptions(t *testing.T) {
	n := New(Options{MinTopicRun: 2})
	assert.Equal(t, "今日は、晴れ", n.Normalize("今日は晴れ"))
	assert.Equal(t, "今日は晴れ", Normalize("今日は晴れ"))
}

func TestReadingsAreNotRepunctuated(t *testing.T) {
	// the reading of a phrase is longer than its source; it must not gain a
	// pause the source did not get
	in := "モンダイノセツメイニカンスルジョウホウは、ながいはなし"
	assert.Equal(t, in, Normalize(in))
	assert.Equal(t, "せんきゅうひゃくきゅうじゅうねんによるへんか", Normalize("せんきゅうひゃくきゅうじゅうねんによるへんか"))
}

func TestLinesAndMarker(t *testing.T) {
	in := "\uE000クラウドネイティブの世界は広い\n短い"
	want := "\uE000クラウドネイティブの世界は、広い\n短い"
	assert.Equal(t, want, Normalize(in))
	assert.Equal(t, 1, strings.Count(Normalize(in), "\n"))
}

func TestNormalizeIdempotent(t *testing.T) {
	corpus := []string{
		"クラウドネイティブ技術に関する基本的な説明",
		"大規模な分散システムにおける障害対応についての長い長い説明文は重要です",
		"この説明で述べている内容は決して問題ではありません",
		"\uE000見出し\n本文の中の長い長いテキストはここまで",
	}
	for _, in := range corpus {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), in)
	}
}
