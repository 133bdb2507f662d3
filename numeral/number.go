// Package numeral turns digit runs into Japanese phonetic readings.
//
// Reading is hiragana throughout except for the loanwords ゼロ, マイナス and
// パーセント, which are conventionally written in katakana.
package numeral

import (
	"strconv"
	"strings"
)

const (
	zeroReading  = "ゼロ"
	minusReading = "マイナス"
	pointReading = "てん"
)

var digitReadings = [10]string{"", "いち", "に", "さん", "よん", "ご", "ろく", "なな", "はち", "きゅう"}

// digitNames is used when a digit is read on its own: decimal places and
// runs read digit by digit.
var digitNames = [10]string{"ゼロ", "いち", "に", "さん", "よん", "ご", "ろく", "なな", "はち", "きゅう"}

// placeIrregulars holds the combined readings that are not simply digit+place.
var placeIrregulars = map[int]map[int]string{
	10:   {1: "じゅう"},
	100:  {1: "ひゃく", 3: "さんびゃく", 6: "ろっぴゃく", 8: "はっぴゃく"},
	1000: {1: "せん", 3: "さんぜん", 8: "はっせん"},
}

var placeNames = map[int]string{10: "じゅう", 100: "ひゃく", 1000: "せん"}

type tier struct {
	value int64
	name  string
	// geminate marks tiers whose name starts with a voiceless consonant that
	// doubles the preceding いち/はち/じゅう (いっちょう, はっけい, じゅっちょう).
	geminate bool
}

var tiers = []tier{
	{value: 1e16, name: "けい", geminate: true},
	{value: 1e12, name: "ちょう", geminate: true},
	{value: 1e8, name: "おく"},
	{value: 1e4, name: "まん"},
}

// Reading returns the reading of n. Zero reads as ゼロ and negative numbers are
// prefixed with マイナス.
func Reading(n int64) string {
	if n == 0 {
		return zeroReading
	}
	if n < 0 {
		if n == -n {
			// math.MinInt64 has no positive counterpart
			return minusReading + ReadDigits(strconv.FormatInt(n, 10)[1:])
		}
		return minusReading + Reading(-n)
	}
	return readPositive(n)
}

func readPositive(n int64) string {
	var b strings.Builder
	for _, t := range tiers {
		group := n / t.value
		n %= t.value
		if group == 0 {
			continue
		}
		head := readUnderTenThousand(int(group))
		if t.geminate {
			head = geminate(head)
		}
		b.WriteString(head)
		b.WriteString(t.name)
	}
	b.WriteString(readUnderTenThousand(int(n)))
	return b.String()
}

// readUnderTenThousand reads 0..9999; zero contributes nothing.
func readUnderTenThousand(n int) string {
	var b strings.Builder
	for _, place := range []int{1000, 100, 10} {
		d := n / place
		n %= place
		if d == 0 {
			continue
		}
		if r, ok := placeIrregulars[place][d]; ok {
			b.WriteString(r)
			continue
		}
		b.WriteString(digitReadings[d])
		b.WriteString(placeNames[place])
	}
	b.WriteString(digitReadings[n])
	return b.String()
}

// geminate applies the sokuon before a voiceless tier name.
func geminate(s string) string {
	for _, suffix := range []struct{ from, to string }{
		{"いち", "いっ"},
		{"はち", "はっ"},
		{"じゅう", "じゅっ"},
	} {
		if strings.HasSuffix(s, suffix.from) {
			return strings.TrimSuffix(s, suffix.from) + suffix.to
		}
	}
	return s
}

// ReadDigits reads a run of ASCII digits. Runs with a leading zero or too
// long for int64 are read one digit at a time.
func ReadDigits(s string) string {
	if s == "" {
		return ""
	}
	if len(s) > 1 && s[0] == '0' {
		return spellDigits(s)
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return spellDigits(s)
	}
	return Reading(n)
}

// ReadDecimal reads "12.05" as the integer part, てん, then each decimal
// digit on its own. The integer part is read as is (1.5 -> いちてんご).
func ReadDecimal(s string) string {
	intPart, frac, ok := strings.Cut(s, ".")
	if !ok {
		return ReadDigits(s)
	}
	integer := zeroReading
	if intPart != "" {
		integer = ReadDigits(strings.TrimLeft(intPart, "0"))
		if integer == "" {
			integer = zeroReading
		}
	}
	return integer + pointReading + spellDigits(frac)
}

func spellDigits(s string) string {
	var b strings.Builder
	for _, c := range s {
		if c >= '0' && c <= '9' {
			b.WriteString(digitNames[c-'0'])
		}
	}
	return b.String()
}
