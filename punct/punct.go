// Package punct inserts reading pauses (、) after long modifying phrases and
// topic particles, except inside a closed set of negative or hedging idioms.
package punct

import (
	"strings"
	"unicode"

	"yomiage/kanji"
	"yomiage/model"
)

// Comma is the pause inserted by the normalizer.
const Comma = '、'

// DefaultMinRun is the default minimum length of the unpunctuated run that
// must precede a connector or topic particle.
const DefaultMinRun = 8

// Connectors are the long modifying phrase endings a pause may follow,
// checked in this order.
var Connectors = []string{
	"に関する",
	"における",
	"による",
	"のための",
	"についての",
	"に対する",
	"からの",
	"への",
	"としての",
}

// Exclusions are idioms inside which no pause may be inserted.
var Exclusions = []string{
	"ではありません",
	"ではありますが",
	"ではございません",
	"ではなかった",
	"ではなくて",
	"ではなく",
	"ではない",
	"ではある",
	"にはならない",
	"には至らない",
	"にはいかない",
	"には及ばない",
	"とは言えない",
	"とは限らない",
	"とは思えない",
	"とはいえ",
}

// punctuation resets the run counter and blocks insertion before it.
var punctuation = map[rune]bool{
	'、': true, '。': true, '，': true, '．': true, ',': true, '.': true,
	'！': true, '？': true, '!': true, '?': true, '：': true, '；': true,
	':': true, ';': true, '・': true, '…': true, '‥': true, '―': true,
	'—': true, '「': true, '」': true, '『': true, '』': true, '（': true,
	'）': true, '(': true, ')': true, '【': true, '】': true, '〈': true,
	'〉': true, '《': true, '》': true, '〔': true, '〕': true, '［': true,
	'］': true, '[': true, ']': true, '“': true, '”': true, '"': true,
	'\'': true, '‘': true, '’': true, '〜': true, '～': true,
	model.HeadingMarker: true,
}

// topicPrecursors are the hiragana that may end the phrase before a topic
// は (では, には, これは ...). Any other hiragana before は is taken as part
// of a word.
const topicPrecursors = "でにとてらのれこり"

// IsPunctuation reports whether r ends a run. Whitespace counts.
func IsPunctuation(r rune) bool {
	return punctuation[r] || unicode.IsSpace(r)
}

// Options tunes the normalizer.
type Options struct {
	// MinPhraseRun is the run length required before a connector.
	MinPhraseRun int
	// MinTopicRun is the run length required before a topic は.
	MinTopicRun int
}

// Normalizer inserts pauses. It holds no mutable state.
type Normalizer struct {
	opts       Options
	connectors [][]rune
	exclusions [][]rune
}

var defaultNormalizer = New(Options{})

// Normalize inserts pauses using the default run lengths.
func Normalize(text string) string {
	return defaultNormalizer.Normalize(text)
}

// New returns a Normalizer. Zero option fields take DefaultMinRun.
func New(opts Options) *Normalizer {
	if opts.MinPhraseRun <= 0 {
		opts.MinPhraseRun = DefaultMinRun
	}
	if opts.MinTopicRun <= 0 {
		opts.MinTopicRun = DefaultMinRun
	}
	n := &Normalizer{opts: opts}
	for _, c := range Connectors {
		n.connectors = append(n.connectors, []rune(c))
	}
	for _, e := range Exclusions {
		n.exclusions = append(n.exclusions, []rune(e))
	}
	return n
}

// Normalize processes text line by line; newlines are kept as they are.
func (n *Normalizer) Normalize(text string) string {
	if !strings.ContainsRune(text, 'は') && !n.mayContainConnector(text) {
		return text
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = n.normalizeLine(line)
	}
	return strings.Join(lines, "\n")
}

func (n *Normalizer) mayContainConnector(text string) bool {
	for _, c := range Connectors {
		if strings.Contains(text, c) {
			return true
		}
	}
	return false
}

func (n *Normalizer) normalizeLine(line string) string {
	rs := []rune(line)
	if len(rs) == 0 {
		return line
	}
	excluded := n.excludedGaps(rs)

	var b strings.Builder
	b.Grow(len(line) + 16)
	run := 0
	// written is set once the run holds kanji or digits. A run that is
	// already a phonetic reading never gets a pause.
	written := false
	for i, r := range rs {
		b.WriteRune(r)
		if IsPunctuation(r) {
			run, written = 0, false
			continue
		}
		run++
		if kanji.IsKanji(r) || (r >= '0' && r <= '9') {
			written = true
		}
		if !written || i+1 >= len(rs) || IsPunctuation(rs[i+1]) || excluded[i] {
			continue
		}
		if n.pauseAfter(rs, i, run) {
			b.WriteRune(Comma)
			run, written = 0, false
		}
	}
	return b.String()
}

// pauseAfter reports whether a pause belongs right after rs[i], where run is
// the unpunctuated run length ending at i.
func (n *Normalizer) pauseAfter(rs []rune, i, run int) bool {
	for _, c := range n.connectors {
		if endsWith(rs, i, c) {
			return run-len(c) >= n.opts.MinPhraseRun
		}
	}
	if rs[i] == 'は' && isTopicParticle(rs, i) {
		return run-1 >= n.opts.MinTopicRun
	}
	return false
}

func isTopicParticle(rs []rune, i int) bool {
	if i == 0 {
		return false
	}
	prev := rs[i-1]
	if !kanji.IsHiragana(prev) {
		return !IsPunctuation(prev)
	}
	return strings.ContainsRune(topicPrecursors, prev)
}

// excludedGaps marks every index i such that the gap between rs[i] and
// rs[i+1] lies inside an exclusion idiom.
func (n *Normalizer) excludedGaps(rs []rune) []bool {
	gaps := make([]bool, len(rs))
	for _, e := range n.exclusions {
		for start := 0; start+len(e) <= len(rs); start++ {
			if !hasPrefixAt(rs, start, e) {
				continue
			}
			for j := start; j < start+len(e)-1; j++ {
				gaps[j] = true
			}
		}
	}
	return gaps
}

func endsWith(rs []rune, i int, suffix []rune) bool {
	start := i - len(suffix) + 1
	return start >= 0 && hasPrefixAt(rs, start, suffix)
}

func hasPrefixAt(rs []rune, start int, prefix []rune) bool {
	if start+len(prefix) > len(rs) {
		return false
	}
	for k, p := range prefix {
		if rs[start+k] != p {
			return false
		}
	}
	return true
}
