package numeral

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// rule is one entry of the ordered rewrite table. skip, when set, vetoes a
// match by looking at the text around it, standing in for the lookaround
// RE2 does not have. A signed rule's first group is an optional minus sign;
// it is read as マイナス and removed from the groups replace sees.
type rule struct {
	name    string
	re      *regexp.Regexp
	signed  bool
	skip    func(before, after string) bool
	replace func(m []string) (string, bool)
}

// sign matches the minus signs a number may carry.
const sign = `([-−－]?)`

// Engine rewrites every digit run in a text into its reading.
// An Engine is immutable and safe for concurrent use.
type Engine struct {
	counters CounterTable
	rules    []rule
}

var defaultEngine = New(DefaultCounters)

// Normalize rewrites text with the default counter table.
func Normalize(text string) string {
	return defaultEngine.Normalize(text)
}

// ordinalSuffixes may follow 第N.
var ordinalSuffixes = []string{"章", "節", "回", "部", "編", "条", "項", "話", "巻", "版"}

// New builds an Engine over counters. The rule order is fixed: dates, times,
// percentages, counters, ordinals, then plain numbers.
func New(counters CounterTable) *Engine {
	e := &Engine{counters: counters}
	alt := alternation(counters.Suffixes())
	ords := alternation(ordinalSuffixes)

	e.rules = []rule{
		{
			name:    "thousands-separator",
			re:      regexp.MustCompile(`\d{1,3}(?:,\d{3})+`),
			skip:    either(endsWithDigitOr(",."), startsWithDigit),
			replace: func(m []string) (string, bool) { return strings.ReplaceAll(m[0], ",", ""), true },
		},
		{
			name: "date",
			re:   regexp.MustCompile(`(\d{4})年(\d{1,2})月(\d{1,2})日`),
			skip: endsWithDigitOr(""),
			replace: func(m []string) (string, bool) {
				return readDate(m[1], m[2], m[3])
			},
		},
		{
			name: "date-numeric",
			re:   regexp.MustCompile(`(\d{4})[/\-](\d{1,2})[/\-](\d{1,2})`),
			skip: either(endsWithDigitOr("/-"), startsWithDigitOr("/-")),
			replace: func(m []string) (string, bool) {
				return readDate(m[1], m[2], m[3])
			},
		},
		{
			name: "year-month",
			re:   regexp.MustCompile(`(\d{4})年(\d{1,2})月`),
			skip: either(endsWithDigitOr(""), startsWithDigitOr("日")),
			replace: func(m []string) (string, bool) {
				month := atoi(m[2])
				if month < 1 || month > 12 {
					return "", false
				}
				return YearReading(atoi(m[1])) + MonthReading(month), true
			},
		},
		{
			name: "month-day",
			re:   regexp.MustCompile(`(\d{1,2})月(\d{1,2})日`),
			skip: endsWithDigitOr(""),
			replace: func(m []string) (string, bool) {
				month, day := atoi(m[1]), atoi(m[2])
				if month < 1 || month > 12 || day < 1 || day > 31 {
					return "", false
				}
				return MonthReading(month) + DayReading(day), true
			},
		},
		{
			name: "year",
			re:   regexp.MustCompile(`(\d{4})年`),
			skip: endsWithDigitOr(""),
			replace: func(m []string) (string, bool) {
				return YearReading(atoi(m[1])), true
			},
		},
		{
			name: "time-colon",
			re:   regexp.MustCompile(`(\d{1,2}):(\d{2})`),
			skip: either(endsWithDigitOr(":"), startsWithDigitOr(":")),
			replace: func(m []string) (string, bool) {
				return readTime(m[1], m[2])
			},
		},
		{
			name: "time",
			re:   regexp.MustCompile(`(\d{1,2})時(\d{1,2})分`),
			skip: endsWithDigitOr(""),
			replace: func(m []string) (string, bool) {
				return readTime(m[1], m[2])
			},
		},
		{
			name: "hour",
			re:   regexp.MustCompile(`(\d{1,2})時`),
			skip: either(endsWithDigitOr(".,"), startsWithDigitOr("間")),
			replace: func(m []string) (string, bool) {
				return HourReading(atoi(m[1])), true
			},
		},
		{
			name:   "percent",
			re:     regexp.MustCompile(sign + `(\d+(?:\.\d+)?)[%％]`),
			signed: true,
			skip:   endsWithDigitOr("."),
			replace: func(m []string) (string, bool) {
				return readNumber(m[1]) + counters.suffixReading("%"), true
			},
		},
		{
			name:   "decimal-counter",
			re:     regexp.MustCompile(sign + `(\d+\.\d+)(` + alt + `)`),
			signed: true,
			skip:   endsWithDigitOr("."),
			replace: func(m []string) (string, bool) {
				return ReadDecimal(m[1]) + counters.suffixReading(m[2]), true
			},
		},
	}
	// decimal placeholders are inserted here and restored after the plain rule
	e.rules = append(e.rules,
		rule{
			name:   "counter",
			re:     regexp.MustCompile(sign + `(\d+)(` + alt + `)`),
			signed: true,
			skip:   endsWithDigitOr(".第"),
			replace: func(m []string) (string, bool) {
				n, err := strconv.ParseInt(m[1], 10, 64)
				if err != nil {
					return "", false
				}
				return counters.Read(n, m[2]), true
			},
		},
		rule{
			name: "ordinal",
			re:   regexp.MustCompile(`第(\d+)(` + ords + `)?`),
			replace: func(m []string) (string, bool) {
				n, err := strconv.ParseInt(m[1], 10, 64)
				if err != nil {
					return "", false
				}
				if m[2] == "" {
					return "だい" + Reading(n), true
				}
				return "だい" + counters.Read(n, m[2]), true
			},
		},
		rule{
			name:   "number",
			re:     regexp.MustCompile(sign + `(\d+)`),
			signed: true,
			replace: func(m []string) (string, bool) {
				return ReadDigits(m[1]), true
			},
		},
	)
	return e
}

// Normalize applies every rule in order; each rule finishes over the whole
// text before the next one starts.
func (e *Engine) Normalize(text string) string {
	if !containsDigit(text) {
		return text
	}
	var decimals []string
	for _, r := range e.rules {
		if r.name == "counter" {
			text, decimals = protectDecimals(text)
		}
		text = apply(r, text)
	}
	return restoreDecimals(text, decimals)
}

func apply(r rule, text string) string {
	matches := r.re.FindAllStringSubmatchIndex(text, -1)
	if matches == nil {
		return text
	}
	var b strings.Builder
	last := 0
	for _, loc := range matches {
		start, end := loc[0], loc[1]
		m := submatches(text, loc)
		prefix := ""
		if r.signed {
			if m[1] != "" {
				if literalSign(text[:start]) {
					start = loc[3]
				} else {
					prefix = minusReading
				}
			}
			m = append(m[:1:1], m[2:]...)
		}
		if r.skip != nil && r.skip(text[:start], text[end:]) {
			continue
		}
		out, ok := r.replace(m)
		if !ok {
			continue
		}
		b.WriteString(text[last:start])
		b.WriteString(prefix)
		b.WriteString(out)
		last = end
	}
	b.WriteString(text[last:])
	return b.String()
}

// literalSign reports whether a minus right after before is a hyphen rather
// than a sign: after an ASCII letter or digit it is a range (1-2) or a label
// (A-2).
func literalSign(before string) bool {
	prev, size := utf8.DecodeLastRuneInString(before)
	return size > 0 && isASCIIAlnum(prev)
}

func isSign(r rune) bool {
	return r == '-' || r == '−' || r == '－'
}

func submatches(text string, loc []int) []string {
	m := make([]string, len(loc)/2)
	for i := range m {
		if loc[2*i] >= 0 {
			m[i] = text[loc[2*i]:loc[2*i+1]]
		}
	}
	return m
}

var decimalPattern = regexp.MustCompile(`\d+\.\d+`)

// placeholderBase is the first Private Use rune used to park decimals while
// the integer-only rules run. It stays clear of the heading marker.
const (
	placeholderBase = 0xE200
	placeholderMax  = 0xE7FF
)

// protectDecimals swaps standalone decimals for single placeholder runes so
// the counter and ordinal rules cannot split them.
func protectDecimals(text string) (string, []string) {
	for _, r := range text {
		if r >= placeholderBase && r <= placeholderMax {
			return text, nil
		}
	}
	var decimals []string
	var b strings.Builder
	last := 0
	for _, loc := range decimalPattern.FindAllStringIndex(text, -1) {
		before, after := text[:loc[0]], text[loc[1]:]
		if endsWithDigitOr(".")(before, after) || dottedContinuation(after) {
			continue
		}
		if placeholderBase+len(decimals) > placeholderMax {
			break
		}
		start, decimal := loc[0], text[loc[0]:loc[1]]
		if r, size := utf8.DecodeLastRuneInString(before); size > 0 && isSign(r) && !literalSign(before[:len(before)-size]) {
			start -= size
			decimal = "-" + decimal
		}
		b.WriteString(text[last:start])
		b.WriteRune(rune(placeholderBase + len(decimals)))
		decimals = append(decimals, decimal)
		last = loc[1]
	}
	b.WriteString(text[last:])
	return b.String(), decimals
}

func restoreDecimals(text string, decimals []string) string {
	if len(decimals) == 0 {
		return text
	}
	var b strings.Builder
	for _, r := range text {
		if i := int(r) - placeholderBase; i >= 0 && i < len(decimals) {
			if d, ok := strings.CutPrefix(decimals[i], "-"); ok {
				b.WriteString(minusReading)
				b.WriteString(ReadDecimal(d))
				continue
			}
			b.WriteString(ReadDecimal(decimals[i]))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// dottedContinuation reports a following ".<digit>", as in version numbers.
func dottedContinuation(after string) bool {
	return len(after) >= 2 && after[0] == '.' && after[1] >= '0' && after[1] <= '9'
}

func readNumber(s string) string {
	if strings.Contains(s, ".") {
		return ReadDecimal(s)
	}
	return ReadDigits(s)
}

func readTime(hour, minute string) (string, bool) {
	m := atoi(minute)
	if m > 59 {
		return "", false
	}
	return HourReading(atoi(hour)) + MinuteReading(m), true
}

func readDate(year, month, day string) (string, bool) {
	m, d := atoi(month), atoi(day)
	if m < 1 || m > 12 || d < 1 || d > 31 {
		return "", false
	}
	return YearReading(atoi(year)) + MonthReading(m) + DayReading(d), true
}

// suffixReading is the default reading of a counter used after a decimal,
// where no euphonic change applies.
func (t CounterTable) suffixReading(counter string) string {
	if c, ok := t[counter]; ok && c.Default != "" {
		return c.Default
	}
	if counter == "％" {
		return t.suffixReading("%")
	}
	return counter
}

func atoi(s string) int64 {
	n, _ := strconv.ParseInt(s, 10, 64)
	return n
}

func alternation(words []string) string {
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = regexp.QuoteMeta(w)
	}
	return strings.Join(quoted, "|")
}

func isASCIIAlnum(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func containsDigit(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			return true
		}
	}
	return false
}

func endsWithDigitOr(chars string) func(before, after string) bool {
	return func(before, _ string) bool {
		r, size := utf8.DecodeLastRuneInString(before)
		if size == 0 {
			return false
		}
		return (r >= '0' && r <= '9') || strings.ContainsRune(chars, r)
	}
}

func startsWithDigitOr(chars string) func(before, after string) bool {
	return func(_, after string) bool {
		r, size := utf8.DecodeRuneInString(after)
		if size == 0 {
			return false
		}
		return (r >= '0' && r <= '9') || strings.ContainsRune(chars, r)
	}
}

var startsWithDigit = startsWithDigitOr("")

func either(fs ...func(before, after string) bool) func(before, after string) bool {
	return func(before, after string) bool {
		for _, f := range fs {
			if f(before, after) {
				return true
			}
		}
		return false
	}
}
