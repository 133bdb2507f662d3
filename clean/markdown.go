package clean

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Line-anchored patterns allow an optional heading marker (U+E000) before the
// markdown syntax and keep it.
var (
	htmlComment   = regexp.MustCompile(`(?s)<!--.*?-->`)
	fencedCode    = regexp.MustCompile("(?ms)^[ \\t]*```.*?^[ \\t]*```[ \\t]*$\\n?")
	imageLine     = regexp.MustCompile(`(?m)^[ \t]*!\[[^\]\n]*\]\([^)\n]*\)[ \t]*$\n?`)
	inlineImage   = regexp.MustCompile(`!\[[^\]\n]*\]\([^)\n]*\)`)
	captionLine   = regexp.MustCompile(`(?m)^[ \t]*(?:図|表|Figure|Fig\.|Table)[ \t]?\d+(?:[.．\-]\d+)*[ \t]*[:：　 \t][^\n]*$\n?`)
	pageFooter    = regexp.MustCompile(`(?m)^[ \t]*(?:[-–—][ \t]*\d{1,4}[ \t]*[-–—]|[pP]\.?[ \t]*\d{1,4}|\d{1,4}[ \t]*(?:ページ|頁))[ \t]*$\n?`)
	headingSyntax = regexp.MustCompile(`(?m)^([ \t]*\x{E000}?)[ \t]*#{1,6}[ \t]+`)
	horizontal    = regexp.MustCompile(`(?m)^[ \t]*(?:(?:-[ \t]*){3,}|(?:\*[ \t]*){3,}|(?:_[ \t]*){3,})$\n?`)
	blockquote    = regexp.MustCompile(`(?m)^(\x{E000}?)[ \t]*>[ \t]?`)
	bullet        = regexp.MustCompile(`(?m)^(\x{E000}?)[ \t]*[-*+•][ \t]+`)
	bold          = regexp.MustCompile(`\*\*([^\n]+?)\*\*|__([^_\n]+?)__`)
	italic        = regexp.MustCompile(`\*([^*\s][^*\n]*?)\*`)
	inlineCode    = regexp.MustCompile("`([^`\\n]+)`")
)

// StripMarkdown removes comments, code blocks, figure captions, page-number
// footers, and markdown syntax. Emphasis and inline code keep their text.
func StripMarkdown(text string) string {
	text = htmlComment.ReplaceAllString(text, "")
	text = fencedCode.ReplaceAllString(text, "")
	text = imageLine.ReplaceAllString(text, "")
	text = inlineImage.ReplaceAllString(text, "")
	text = captionLine.ReplaceAllString(text, "")
	text = pageFooter.ReplaceAllString(text, "")
	text = horizontal.ReplaceAllString(text, "")
	text = headingSyntax.ReplaceAllString(text, "$1")
	text = blockquote.ReplaceAllString(text, "$1")
	text = bullet.ReplaceAllString(text, "$1")
	text = bold.ReplaceAllString(text, "$1$2")
	text = stripItalic(text)
	return inlineCode.ReplaceAllString(text, "$1")
}

// stripItalic unwraps *text* unless an asterisk touches an ASCII letter or
// digit outside the span, as in 2*3*4.
func stripItalic(text string) string {
	var b strings.Builder
	last := 0
	for _, loc := range italic.FindAllStringSubmatchIndex(text, -1) {
		prev, _ := utf8.DecodeLastRuneInString(text[:loc[0]])
		next, _ := utf8.DecodeRuneInString(text[loc[1]:])
		if isASCIIAlnum(prev) || isASCIIAlnum(next) {
			continue
		}
		b.WriteString(text[last:loc[0]])
		b.WriteString(text[loc[2]:loc[3]])
		last = loc[1]
	}
	b.WriteString(text[last:])
	return b.String()
}

func isASCIIAlnum(r rune) bool {
	return r >= '0' && r <= '9' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z'
}
