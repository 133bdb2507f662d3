package kanji

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

// Kanjidic2Kanji is a single <character> element of kanjidic2.xml.
type Kanjidic2Kanji struct {
	Literal        string `xml:"literal"`
	ReadingMeaning struct {
		RMGroup []struct {
			Reading []struct {
				Value string `xml:",chardata"`
				Type  string `xml:"r_type,attr"`
			} `xml:"reading"`
		} `xml:"rmgroup"`
	} `xml:"reading_meaning"`
}

// Table maps single kanji to a katakana fallback reading.
// A Table is read-only after loading and safe for concurrent use.
type Table struct {
	readings map[rune]string
}

// LoadKanjidic2File opens path and parses it with LoadKanjidic2.
func LoadKanjidic2File(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open kanjidic2: %w", err)
	}
	defer f.Close()
	return LoadKanjidic2(f)
}

// LoadKanjidic2 parses kanjidic2 XML and keeps one reading per kanji: the first
// on-reading, or the first kun-reading when the kanji has no on-reading.
func LoadKanjidic2(r io.Reader) (*Table, error) {
	t := &Table{readings: make(map[rune]string)}

	// Use xml.Decoder to find <character> elements directly, skipping any wrapper
	d := xml.NewDecoder(r)
	for {
		tok, err := d.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse kanjidic2: %w", err)
		}
		se, ok := tok.(xml.StartElement)
		if !ok || se.Name.Local != "character" {
			continue
		}
		var k Kanjidic2Kanji
		if err := d.DecodeElement(&k, &se); err != nil {
			return nil, fmt.Errorf("decode kanjidic2 character: %w", err)
		}
		if utf8.RuneCountInString(k.Literal) != 1 {
			continue
		}
		var on, kun string
		for _, group := range k.ReadingMeaning.RMGroup {
			for _, rd := range group.Reading {
				switch {
				case rd.Type == "ja_on" && on == "":
					on = NormalizeReading(rd.Value)
				case rd.Type == "ja_kun" && kun == "":
					kun = NormalizeReading(rd.Value)
				}
			}
		}
		reading := on
		if reading == "" {
			reading = kun
		}
		if reading == "" {
			continue
		}
		kr, _ := utf8.DecodeRuneInString(k.Literal)
		t.readings[kr] = reading
	}
	return t, nil
}

// Reading returns the fallback reading for a single kanji.
func (t *Table) Reading(r rune) (string, bool) {
	if t == nil {
		return "", false
	}
	reading, ok := t.readings[r]
	return reading, ok
}

// Count returns the number of kanji entries loaded.
func (t *Table) Count() int {
	if t == nil {
		return 0
	}
	return len(t.readings)
}

// Resolve replaces every kanji in s that has a table entry with its reading.
// Kanji without an entry are left in place.
func (t *Table) Resolve(s string) string {
	if t.Count() == 0 {
		return s
	}
	var b strings.Builder
	for _, r := range s {
		if IsKanji(r) {
			if reading, ok := t.readings[r]; ok {
				b.WriteString(reading)
				continue
			}
		}
		b.WriteRune(r)
	}
	return b.String()
}

// NormalizeReading turns a kanjidic reading such as "い.り" or "-かわ" into
// katakana with the okurigana separator and affix dashes removed.
func NormalizeReading(s string) string {
	if i := strings.IndexRune(s, '.'); i >= 0 {
		s = s[:i]
	}
	s = strings.Trim(s, "-")
	return HiraganaToKatakana(s)
}
