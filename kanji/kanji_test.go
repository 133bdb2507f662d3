package kanji

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleKanjidic = `<?xml version="1.0" encoding="UTF-8"?>
<kanjidic2>
<character>
<literal>川</literal>
<reading_meaning><rmgroup>
<reading r_type="pinyin">chuan1</reading>
<reading r_type="ja_on">セン</reading>
<reading r_type="ja_kun">かわ</reading>
</rmgroup></reading_meaning>
</character>
<character>
<literal>入</literal>
<reading_meaning><rmgroup>
<reading r_type="ja_on">ニュウ</reading>
<reading r_type="ja_kun">い.る</reading>
</rmgroup></reading_meaning>
</character>
<character>
<literal>込</literal>
<reading_meaning><rmgroup>
<reading r_type="ja_kun">-こ.む</reading>
</rmgroup></reading_meaning>
</character>
</kanjidic2>`

func TestLoadKanjidic2(t *testing.T) {
	table, err := LoadKanjidic2(strings.NewReader(sampleKanjidic))
	require.NoError(t, err)
	assert.Equal(t, 3, table.Count())

	reading, ok := table.Reading('川')
	assert.True(t, ok)
	assert.Equal(t, "セン", reading)

	// kun-only kanji fall back to the kun reading, normalized
	reading, ok = table.Reading('込')
	assert.True(t, ok)
	assert.Equal(t, "コ", reading)

	_, ok = table.Reading('山')
	assert.False(t, ok)
}

func TestLoadKanjidic2Malformed(t *testing.T) {
	_, err := LoadKanjidic2(strings.NewReader("<kanjidic2><character>"))
	assert.Error(t, err)
}

func TestResolve(t *testing.T) {
	table, err := LoadKanjidic2(strings.NewReader(sampleKanjidic))
	require.NoError(t, err)

	assert.Equal(t, "ニュウ見セン", table.Resolve("入見川"))
	assert.Equal(t, "かな", table.Resolve("かな"))

	var empty *Table
	assert.Equal(t, "入見川", empty.Resolve("入見川"))
}

func TestNormalizeReading(t *testing.T) {
	assert.Equal(t, "イ", NormalizeReading("い.り"))
	assert.Equal(t, "カワ", NormalizeReading("-かわ"))
	assert.Equal(t, "セン", NormalizeReading("セン"))
}

func TestRuneClasses(t *testing.T) {
	assert.True(t, IsKanji('漢'))
	assert.True(t, IsKanji('々'))
	assert.False(t, IsKanji('か'))
	assert.True(t, IsKana('ー'))
	assert.True(t, ContainsKanji("ひらがな漢字"))
	assert.False(t, ContainsKanji("ひらがなカタカナ"))
	assert.False(t, ContainsJapanese("Toil"))
	assert.Equal(t, "かたかな", KatakanaToHiragana("カタカナ"))
	assert.Equal(t, "ヒラガナ", HiraganaToKatakana("ひらがな"))
}
