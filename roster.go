package gridfont

// A roster is the fixed, ordered list of code points that an atlas
// supports, one atlas cell per entry. Cell index 0 is the space and
// doubles as the "no glyph" slot for anything unmapped.
//
// Two rosters exist:
//  - The basic roster covers printable ASCII plus dedicated opening
//    quote glyphs. Sheet fonts always use this roster.
//  - The extended roster appends Cyrillic and a few extra punctuation
//    marks, and is used when rasterizing a .ttf for languages that
//    need it.
//
// Downstream tables (the advance table in particular) are sized to
// the roster length, so the lengths are fixed constants.

const (
	// GlyphsBasic is the cell count of the basic (latin) roster.
	GlyphsBasic = 98

	// GlyphsExtended is the cell count of the extended roster.
	GlyphsExtended = 167
)

// Reserved slots shared by both rosters. The ASCII range maps to
// cells 0..94, so these take the top three slots of the basic roster.
const (
	questionGlyph        = 95 // '?', used when rasterization has nothing better
	openSingleQuoteGlyph = 96 // U+2018, also "'" right after a space
	openDoubleQuoteGlyph = 97 // U+201C, also '"' right after a space
)

// First slots of the extended roster blocks.
const (
	cyrUpperFirstGlyph  = 98  // А..Я
	cyrUpperYoGlyph     = 130 // Ё
	cyrLowerFirstGlyph  = 131 // а..я
	cyrLowerYoGlyph     = 163 // ё
	emDashGlyph         = 164 // —
	leftGuillemetGlyph  = 165 // «
	rightGuillemetGlyph = 166 // »
)

// extendedRoster returns the ordered code point list for the extended
// roster. Index i of the result is rasterized into atlas cell i.
func extendedRoster() []rune {
	codePoints := make([]rune, 0, GlyphsExtended)
	for cp := rune(0x20); cp <= 0x7E; cp++ {
		codePoints = append(codePoints, cp)
	}
	codePoints = append(codePoints, '?', '‘', '“')
	for cp := rune(0x0410); cp <= 0x042F; cp++ { // А..Я
		codePoints = append(codePoints, cp)
	}
	codePoints = append(codePoints, 'Ё')
	for cp := rune(0x0430); cp <= 0x044F; cp++ { // а..я
		codePoints = append(codePoints, cp)
	}
	codePoints = append(codePoints, 'ё')
	codePoints = append(codePoints, '—', '«', '»')
	return codePoints
}
