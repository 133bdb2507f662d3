// Package dictionary replaces ASCII technical terms with katakana readings.
//
// Two dictionaries are applied in turn by the pipeline: the built-in static
// table (Static) and a per-document table loaded from a Store. Terms are
// matched longest first, only at ASCII-letter boundaries, and text produced
// by one substitution is never matched again.
package dictionary

import (
	"sort"
	"strings"
	"unicode/utf8"

	"yomiage/kanji"
)

type entry struct {
	term    string
	reading string
}

// Dictionary is an immutable term -> reading table. A nil *Dictionary is
// valid and empty.
type Dictionary struct {
	entries []entry
	index   map[string]string
	symbols *strings.Replacer
}

// New builds a Dictionary from entries. Empty terms are ignored.
func New(entries map[string]string) *Dictionary {
	d := &Dictionary{index: make(map[string]string, len(entries))}
	for term, reading := range entries {
		if term == "" {
			continue
		}
		d.index[term] = reading
		d.entries = append(d.entries, entry{term: term, reading: reading})
	}
	sort.Slice(d.entries, func(i, j int) bool {
		a, b := d.entries[i].term, d.entries[j].term
		if la, lb := utf8.RuneCountInString(a), utf8.RuneCountInString(b); la != lb {
			return la > lb
		}
		return a < b
	})
	return d
}

// Len returns the number of terms.
func (d *Dictionary) Len() int {
	if d == nil {
		return 0
	}
	return len(d.entries)
}

// Lookup returns the reading registered for term.
func (d *Dictionary) Lookup(term string) (string, bool) {
	if d == nil {
		return "", false
	}
	r, ok := d.index[term]
	return r, ok
}

// Terms returns the terms in application order (longest first).
func (d *Dictionary) Terms() []string {
	if d == nil {
		return nil
	}
	out := make([]string, len(d.entries))
	for i, e := range d.entries {
		out[i] = e.term
	}
	return out
}

// Apply substitutes every term in text, then applies the symbol rules, if
// the dictionary has any.
func (d *Dictionary) Apply(text string) string {
	if d == nil {
		return text
	}
	out := d.substitute(text)
	if d.symbols == nil {
		return out
	}
	replaced := d.symbols.Replace(out)
	if replaced != out {
		// symbol removal can expose a bounded term ("[API]s")
		replaced = d.substitute(replaced)
	}
	return replaced
}

// piece is a span of the text being rewritten. Fixed pieces hold readings
// and are never searched again.
type piece struct {
	text  string
	fixed bool
}

func (d *Dictionary) substitute(text string) string {
	if len(d.entries) == 0 {
		return text
	}
	pieces := []piece{{text: text}}
	for _, e := range d.entries {
		// open pieces are substrings of text
		if !strings.Contains(text, e.term) {
			continue
		}
		next := make([]piece, 0, len(pieces)+2)
		for _, p := range pieces {
			if p.fixed {
				next = append(next, p)
				continue
			}
			next = split(next, p.text, e)
		}
		pieces = next
	}
	var b strings.Builder
	b.Grow(len(text))
	for _, p := range pieces {
		b.WriteString(p.text)
	}
	return b.String()
}

func split(out []piece, s string, e entry) []piece {
	for {
		i := indexBounded(s, e.term)
		if i < 0 {
			break
		}
		if i > 0 {
			out = append(out, piece{text: s[:i]})
		}
		out = append(out, piece{text: e.reading, fixed: true})
		s = s[i+len(e.term):]
	}
	if s != "" {
		out = append(out, piece{text: s})
	}
	return out
}

// indexBounded finds term in s where it is neither preceded nor followed by
// an ASCII letter.
func indexBounded(s, term string) int {
	from := 0
	for from <= len(s)-len(term) {
		i := strings.Index(s[from:], term)
		if i < 0 {
			return -1
		}
		i += from
		if bounded(s, i, i+len(term)) {
			return i
		}
		from = i + 1
	}
	return -1
}

func bounded(s string, start, end int) bool {
	if start > 0 {
		if r, _ := utf8.DecodeLastRuneInString(s[:start]); kanji.IsASCIILetter(r) {
			return false
		}
	}
	if end < len(s) {
		if r, _ := utf8.DecodeRuneInString(s[end:]); kanji.IsASCIILetter(r) {
			return false
		}
	}
	return true
}
