package kanji

import "unicode"

// IsKanji reports whether r is a CJK ideograph or the iteration mark 々.
func IsKanji(r rune) bool {
	return unicode.Is(unicode.Han, r) || r == '々' || r == '〆'
}

// IsHiragana reports whether r is in the hiragana block.
func IsHiragana(r rune) bool {
	return r >= 0x3040 && r <= 0x309F
}

// IsKatakana reports whether r is in the katakana block, including the
// prolonged sound mark.
func IsKatakana(r rune) bool {
	return (r >= 0x30A0 && r <= 0x30FF) || (r >= 0x31F0 && r <= 0x31FF)
}

// IsKana returns true if rune is Hiragana or Katakana
func IsKana(r rune) bool {
	return IsHiragana(r) || IsKatakana(r)
}

// IsJapanese reports whether r is kana or kanji.
func IsJapanese(r rune) bool {
	return IsKana(r) || IsKanji(r)
}

// ContainsKanji reports whether s has at least one kanji.
func ContainsKanji(s string) bool {
	for _, r := range s {
		if IsKanji(r) {
			return true
		}
	}
	return false
}

// ContainsJapanese reports whether s has at least one kana or kanji.
func ContainsJapanese(s string) bool {
	for _, r := range s {
		if IsJapanese(r) {
			return true
		}
	}
	return false
}

// KatakanaToHiragana converts katakana to hiragana, leaving everything else.
func KatakanaToHiragana(s string) string {
	runes := []rune(s)
	for i, r := range runes {
		if r >= 0x30A1 && r <= 0x30F6 {
			runes[i] = r - 0x60
		}
	}
	return string(runes)
}

// HiraganaToKatakana converts hiragana to katakana, leaving everything else.
func HiraganaToKatakana(s string) string {
	runes := []rune(s)
	for i, r := range runes {
		if r >= 0x3041 && r <= 0x3096 {
			runes[i] = r + 0x60
		}
	}
	return string(runes)
}

// IsASCIILetter reports whether r is A-Z or a-z.
func IsASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
