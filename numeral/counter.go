package numeral

import (
	"sort"
	"strings"
)

// Counter describes how a counter suffix is read after a numeral.
type Counter struct {
	// Default is appended to the plain numeral reading. An empty Default
	// means the counter's own characters are appended unread.
	Default string
	// Irregular holds whole-number readings that replace numeral+Default.
	Irregular map[int64]string
	// Tail holds readings for the last digit of a larger number
	// (11個 -> じゅう + いっこ). Key 10 applies to round tens (20本 -> に + じゅっぽん).
	Tail map[int64]string
	// Sokuon and AfterN are the counter forms used after a round hundred
	// (ひゃく -> ひゃっ + ぽん) and after a place ending in ん (せん + ぼん).
	Sokuon, AfterN string
}

// CounterTable maps counter suffixes to their readings.
type CounterTable map[string]Counter

// gem builds the usual sokuon table for counters starting with k/s/t/p/h.
func gem(stem string, extra map[int64]string) map[int64]string {
	m := map[int64]string{
		1:  "いっ" + stem,
		8:  "はっ" + stem,
		10: "じゅっ" + stem,
	}
	for k, v := range extra {
		m[k] = v
	}
	return m
}

// DefaultCounters is the built-in counter table.
var DefaultCounters = CounterTable{
	"個": {Default: "こ", Irregular: gem("こ", map[int64]string{6: "ろっこ"})},
	"本": {Default: "ほん", Irregular: gem("ぽん", map[int64]string{3: "さんぼん", 6: "ろっぽん"})},
	"匹": {Default: "ひき", Irregular: gem("ぴき", map[int64]string{3: "さんびき", 6: "ろっぴき"})},
	"杯": {Default: "はい", Irregular: gem("ぱい", map[int64]string{3: "さんばい", 6: "ろっぱい"})},
	"分": {Default: "ふん", Irregular: gem("ぷん", map[int64]string{
		0: "", 3: "さんぷん", 4: "よんぷん", 6: "ろっぷん",
	})},
	"回":  {Default: "かい", Irregular: gem("かい", map[int64]string{6: "ろっかい"})},
	"階":  {Default: "かい", Irregular: gem("かい", map[int64]string{3: "さんがい", 6: "ろっかい"})},
	"冊":  {Default: "さつ", Irregular: gem("さつ", nil)},
	"歳":  {Default: "さい", Irregular: gem("さい", map[int64]string{20: "はたち"})},
	"件":  {Default: "けん", Irregular: gem("けん", map[int64]string{6: "ろっけん"})},
	"軒":  {Default: "けん", Irregular: gem("けん", map[int64]string{3: "さんげん", 6: "ろっけん"})},
	"週":  {Default: "しゅう", Irregular: gem("しゅう", nil)},
	"点":  {Default: "てん", Irregular: gem("てん", map[int64]string{6: "ろってん"})},
	"社":  {Default: "しゃ", Irregular: gem("しゃ", nil)},
	"章":  {Default: "しょう", Irregular: gem("しょう", nil)},
	"節":  {Default: "せつ", Irregular: gem("せつ", nil)},
	"巻":  {Default: "かん", Irregular: gem("かん", map[int64]string{6: "ろっかん"})},
	"版":  {Default: "はん", Irregular: gem("ぱん", map[int64]string{3: "さんぱん", 6: "ろっぱん"})},
	"ヶ月": {Default: "かげつ", Irregular: gem("かげつ", map[int64]string{6: "ろっかげつ"})},
	"か月": {Default: "かげつ", Irregular: gem("かげつ", map[int64]string{6: "ろっかげつ"})},
	"カ月": {Default: "かげつ", Irregular: gem("かげつ", map[int64]string{6: "ろっかげつ"})},
	"ヵ月": {Default: "かげつ", Irregular: gem("かげつ", map[int64]string{6: "ろっかげつ"})},
	"人":  {Default: "にん", Irregular: map[int64]string{1: "ひとり", 2: "ふたり", 4: "よにん", 7: "しちにん"}},
	"日":  {Default: "にち", Irregular: dayCounts(false)},
	"月":  {Default: "がつ", Irregular: monthNames},
	"時":  {Default: "じ", Irregular: map[int64]string{4: "よじ", 7: "しちじ", 9: "くじ"}},
	"時間": {Default: "じかん", Irregular: map[int64]string{4: "よじかん", 7: "しちじかん", 9: "くじかん"}},
	"年":  {Default: "ねん", Irregular: map[int64]string{4: "よねん"}},
	"円":  {Default: "えん", Irregular: map[int64]string{4: "よえん"}},
	"枚":  {Default: "まい"},
	"台":  {Default: "だい"},
	"倍":  {Default: "ばい"},
	"番":  {Default: "ばん"},
	"秒":  {Default: "びょう"},
	"度":  {Default: "ど"},
	"名":  {Default: "めい"},
	"部":  {Default: "ぶ"},
	"編":  {Default: "へん"},
	"条":  {Default: "じょう"},
	"項":  {Default: "こう"},
	"行":  {Default: "ぎょう"},
	"位":  {Default: "い"},
	"代":  {Default: "だい"},
	"号":  {Default: "ごう"},
	"話":  {Default: "わ"},
	"%":  {Default: "パーセント"},
}

// dayCounts returns the native day readings. asDate selects ついたち for the
// first of the month instead of the duration いちにち.
func dayCounts(asDate bool) map[int64]string {
	m := map[int64]string{
		1: "いちにち", 2: "ふつか", 3: "みっか", 4: "よっか", 5: "いつか",
		6: "むいか", 7: "なのか", 8: "ようか", 9: "ここのか", 10: "とおか",
		14: "じゅうよっか", 17: "じゅうしちにち", 19: "じゅうくにち",
		20: "はつか", 24: "にじゅうよっか", 27: "にじゅうしちにち", 29: "にじゅうくにち",
	}
	if asDate {
		m[1] = "ついたち"
	}
	return m
}

var monthNames = map[int64]string{
	1: "いちがつ", 2: "にがつ", 3: "さんがつ", 4: "しがつ", 5: "ごがつ", 6: "ろくがつ",
	7: "しちがつ", 8: "はちがつ", 9: "くがつ", 10: "じゅうがつ", 11: "じゅういちがつ", 12: "じゅうにがつ",
}

var dayOfMonth = Counter{Default: "にち", Irregular: dayCounts(true)}

func init() {
	// Counters whose euphonic change depends on the last digit also apply it
	// inside larger numbers.
	for _, suffix := range []string{"個", "本", "匹", "杯", "分", "回", "階", "冊", "件", "軒", "週", "点", "社", "章", "節", "巻", "版", "ヶ月", "か月", "カ月", "ヵ月"} {
		c := DefaultCounters[suffix]
		c.Tail = make(map[int64]string)
		for k, v := range c.Irregular {
			if k >= 1 && k <= 10 {
				c.Tail[k] = v
			}
		}
		DefaultCounters[suffix] = c
	}
	for _, suffix := range []string{"時", "時間", "年", "円"} {
		c := DefaultCounters[suffix]
		c.Tail = map[int64]string{}
		for k, v := range c.Irregular {
			c.Tail[k] = v
		}
		DefaultCounters[suffix] = c
	}
	c := DefaultCounters["人"]
	c.Tail = map[int64]string{4: "よにん", 7: "しちにん"}
	DefaultCounters["人"] = c
	for _, suffix := range []string{"個", "本", "匹", "杯", "分", "回", "件", "点"} {
		c := DefaultCounters[suffix]
		c.Sokuon = strings.TrimPrefix(c.Irregular[1], "いっ")
		c.AfterN = strings.TrimPrefix(c.Irregular[3], "さん")
		DefaultCounters[suffix] = c
	}
}

// Suffixes returns the table's counters, longest first, so that an
// alternation built from them prefers 時間 over 時.
func (t CounterTable) Suffixes() []string {
	out := make([]string, 0, len(t))
	for k := range t {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool {
		li, lj := len([]rune(out[i])), len([]rune(out[j]))
		if li != lj {
			return li > lj
		}
		return out[i] < out[j]
	})
	return out
}

// Read returns the reading of n followed by counter.
func (t CounterTable) Read(n int64, counter string) string {
	c, ok := t[counter]
	if !ok {
		return Reading(n) + counter
	}
	return c.read(n, counter)
}

func (c Counter) read(n int64, literal string) string {
	if r, ok := c.Irregular[n]; ok {
		return r
	}
	if n > 10 && len(c.Tail) > 0 {
		if r, ok := c.tail(n); ok {
			return r
		}
	}
	if n >= 100 && n%100 == 0 {
		if r, ok := c.round(n); ok {
			return r
		}
	}
	suffix := c.Default
	if suffix == "" {
		suffix = literal
	}
	return Reading(n) + suffix
}

func (c Counter) tail(n int64) (string, bool) {
	last := n % 10
	if last != 0 {
		r, ok := c.Tail[last]
		if !ok {
			return "", false
		}
		return Reading(n-last) + r, true
	}
	if n%100 == 0 {
		return "", false
	}
	r, ok := c.Tail[10]
	if !ok {
		return "", false
	}
	// 20 -> に + じゅっぽん; Reading always ends the tens with じゅう here.
	return strings.TrimSuffix(Reading(n), "じゅう") + r, true
}

// round reads multiples of a hundred: 100本 -> ひゃっぽん, 1000本 -> せんぼん.
func (c Counter) round(n int64) (string, bool) {
	r := Reading(n)
	switch {
	case c.Sokuon != "" && strings.HasSuffix(r, "ゃく"):
		return strings.TrimSuffix(r, "く") + "っ" + c.Sokuon, true
	case c.AfterN != "" && strings.HasSuffix(r, "ん"):
		return r + c.AfterN, true
	}
	return "", false
}

// ReadCounter reads n with counter using DefaultCounters.
func ReadCounter(n int64, counter string) string {
	return DefaultCounters.Read(n, counter)
}

// MonthReading reads a month number; out-of-range months read as number+がつ.
func MonthReading(n int64) string {
	return DefaultCounters.Read(n, "月")
}

// DayReading reads a day of the month (1 -> ついたち).
func DayReading(n int64) string {
	return dayOfMonth.read(n, "日")
}

// HourReading reads an hour of the day.
func HourReading(n int64) string {
	return DefaultCounters.Read(n, "時")
}

// MinuteReading reads a minute count. Zero minutes read as nothing.
func MinuteReading(n int64) string {
	if n == 0 {
		return ""
	}
	return DefaultCounters.Read(n, "分")
}

// YearReading reads a year. Years ending in 4 use よねん.
func YearReading(n int64) string {
	if n%10 == 4 {
		head := ""
		if n >= 10 {
			head = Reading(n - 4)
		}
		return head + "よねん"
	}
	return Reading(n) + "ねん"
}
