// Package clean strips markdown and bibliographic artifacts that cannot be
// read aloud and rewrites cross-references into readable form.
//
// Every function here is pure and idempotent; Clean iterates the whole chain
// to a fixed point so that one stage's output never leaves work for another.
package clean

import (
	"regexp"
	"strings"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/width"
)

// WebsiteReading replaces URLs.
const WebsiteReading = "ウェブサイト"

// maxPasses bounds the fixed-point loop in Clean.
const maxPasses = 4

// Clean runs every cleaning step in order: width folding, markdown, URLs,
// ISBNs, parenthetical English glosses, then cross-references.
func Clean(text string) string {
	for i := 0; i < maxPasses; i++ {
		next := cleanOnce(text)
		if next == text {
			break
		}
		text = next
	}
	return text
}

func cleanOnce(text string) string {
	text = FoldWidth(text)
	text = StripMarkdown(text)
	text = CleanURLs(text)
	text = CleanISBN(text)
	text = CleanParentheticalEnglish(text)
	return NormalizeReferences(text)
}

// foldable is the set of full-width characters the numeral engine needs in
// ASCII form. Full-width brackets and letters are left alone.
var foldable = runes.Predicate(func(r rune) bool {
	return (r >= '０' && r <= '９') || r == '％'
})

// FoldWidth folds full-width digits and the percent sign to ASCII.
func FoldWidth(text string) string {
	// runes.If carries state, so build one per call.
	t := runes.If(foldable, width.Fold, nil)
	out, _, err := transform.String(t, text)
	if err != nil {
		return text
	}
	return out
}

// replaceFunc is ReplaceAllStringFunc with access to the text around each
// match. fn returns ok=false to leave a match untouched.
func replaceFunc(re *regexp.Regexp, text string, fn func(m []string, before, after string) (string, bool)) string {
	matches := re.FindAllStringSubmatchIndex(text, -1)
	if matches == nil {
		return text
	}
	var b strings.Builder
	last := 0
	for _, loc := range matches {
		m := make([]string, len(loc)/2)
		for i := range m {
			if loc[2*i] >= 0 {
				m[i] = text[loc[2*i]:loc[2*i+1]]
			}
		}
		out, ok := fn(m, text[:loc[0]], text[loc[1]:])
		if !ok {
			continue
		}
		b.WriteString(text[last:loc[0]])
		b.WriteString(out)
		last = loc[1]
	}
	b.WriteString(text[last:])
	return b.String()
}
