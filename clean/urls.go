package clean

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"yomiage/kanji"
	"yomiage/model"
)

var (
	markdownLink = regexp.MustCompile(`\[([^\]\n]*)\]\(([^)\s]+)(?:\s+"[^"\n]*")?\)`)
	autolink     = regexp.MustCompile(`<(?:https?|ftp)://[^>\s]+>`)
	bareURL      = regexp.MustCompile(`(?:https?|ftp)://[A-Za-z0-9\-._~:/?#\[\]@!$&'*+,;=%]+|www\.[A-Za-z0-9\-]+\.[A-Za-z0-9\-._~:/?#\[\]@!$&'*+,;=%]+`)
	isbn         = regexp.MustCompile(`(?i)ISBN(?:-?1[03])?[:：]?[ \t]*([0-9][0-9\-‐]*[0-9X])`)
	parenthesis  = regexp.MustCompile(`[（(]([^（）()\n]*)[）)]`)
	reference    = regexp.MustCompile(`([図表注])[ \t]?(\d+)(?:[.．](\d+))?`)
)

// urlTrailing is punctuation that ends a sentence rather than a URL.
const urlTrailing = ".,;:!?'"

// CleanURLs reduces markdown links to their text and replaces raw URLs with
// ウェブサイト. A link whose text is itself a URL is replaced as a URL.
func CleanURLs(text string) string {
	text = markdownLink.ReplaceAllStringFunc(text, func(s string) string {
		m := markdownLink.FindStringSubmatch(s)
		label := strings.TrimSpace(m[1])
		if label == m[2] || isURL(label) {
			return WebsiteReading
		}
		return label
	})
	text = autolink.ReplaceAllString(text, WebsiteReading)
	return bareURL.ReplaceAllStringFunc(text, func(s string) string {
		trimmed := strings.TrimRight(s, urlTrailing)
		return WebsiteReading + s[len(trimmed):]
	})
}

func isURL(s string) bool {
	loc := bareURL.FindStringIndex(s)
	return loc != nil && loc[0] == 0 && loc[1] >= len(strings.TrimRight(s, urlTrailing))
}

// CleanISBN deletes ISBN markers together with their number. A match whose
// digit count is neither 10 nor 13 is left alone.
func CleanISBN(text string) string {
	return replaceFunc(isbn, text, func(m []string, _, _ string) (string, bool) {
		digits := 0
		for _, r := range m[1] {
			if unicode.IsDigit(r) || r == 'X' || r == 'x' {
				digits++
			}
		}
		return "", digits == 10 || digits == 13
	})
}

// CleanParentheticalEnglish removes parentheses whose content is purely
// Latin script, such as the English gloss in トイル（Toil）. Parentheses
// holding any kana or kanji, no letters at all, or nothing, are kept.
func CleanParentheticalEnglish(text string) string {
	return replaceFunc(parenthesis, text, func(m []string, _, _ string) (string, bool) {
		return "", isLatinGloss(m[1])
	})
}

func isLatinGloss(s string) bool {
	letters := 0
	for _, r := range s {
		switch {
		case r == model.HeadingMarker, kanji.IsJapanese(r):
			return false
		case unicode.IsLetter(r):
			if !unicode.Is(unicode.Latin, r) {
				return false
			}
			letters++
		}
	}
	return letters > 0
}

var referencePrefixes = map[string]string{
	"図": "ず",
	"表": "ひょう",
	"注": "ちゅう",
}

// NormalizeReferences rewrites figure, table, and note references:
// 図2.1 -> ず2の1, 表3 -> ひょう3. The kanji is left alone when it ends a
// compound (代表1位).
func NormalizeReferences(text string) string {
	return replaceFunc(reference, text, func(m []string, before, _ string) (string, bool) {
		if prev := lastRune(before); kanji.IsKanji(prev) {
			return "", false
		}
		out := referencePrefixes[m[1]] + m[2]
		if m[3] != "" {
			out += "の" + m[3]
		}
		return out, true
	})
}

func lastRune(s string) rune {
	r, _ := utf8.DecodeLastRuneInString(s)
	return r
}
