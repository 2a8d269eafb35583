package gridfont

import "testing"

import "github.com/stretchr/testify/require"

func TestWidthExactSum(t *testing.T) {
	fnt := newSolidFont(12, 12)
	table := fnt.Advances()

	glyphA := fnt.GlyphForRune('A', false)
	glyphV := fnt.GlyphForRune('V', false)

	// no kerning context before the first glyph, then the pair
	// advance, then the end-of-line advance
	expected := table.At(0, glyphA) + table.At(glyphA, glyphV) + table.At(glyphV, 0)
	require.Equal(t, expected, fnt.Width("AV"))
}

func TestWidthSpacesAndBlanks(t *testing.T) {
	fnt := newSolidFont(12, 12)
	advance := 6 // cellWidth/2 for solid glyphs

	require.Zero(t, fnt.Width(""))
	require.Equal(t, fnt.Space()*2, fnt.Width("  "))
	// unmapped code points measure as spaces too
	require.Equal(t, fnt.Width(" "), fnt.Width("日"))
	// underline markers never consume width
	require.Equal(t, fnt.Width("ab"), fnt.Width("_a_b"))
	require.Equal(t, 2*advance, fnt.Width("ab"))
}

func TestWidthTrailingContext(t *testing.T) {
	fnt := newSolidFont(12, 12)

	// a trailing space resolves to glyph 0, same as end of line
	require.Equal(t, fnt.Width("AV"), fnt.WidthWithNext("AV", ' '))
	// out-of-range trailing context behaves like end of line
	require.Equal(t, fnt.Width("AV"), fnt.WidthWithNext("AV", 'Ж'))
	require.Equal(t, fnt.Width("AV"), fnt.WidthWithNext("AV", 0))
}

func TestWidthScalePercent(t *testing.T) {
	fnt := newSolidFont(12, 12)
	base := fnt.Width("scaling")
	baseHeight := fnt.Height()
	baseSpace := fnt.Space()

	fnt.SetScalePercent(150)
	require.Equal(t, base*150/100, fnt.Width("scaling"))
	require.Equal(t, baseHeight*150/100, fnt.Height())
	require.Equal(t, baseSpace*150/100, fnt.Space())

	fnt.SetScalePercent(100)
	require.Equal(t, base, fnt.Width("scaling"))
}

func TestWidthLetterSpacing(t *testing.T) {
	fnt := newSolidFont(12, 12)
	base := fnt.Width("abc")

	fnt.SetLetterSpacing(2)
	// one kern per drawn glyph
	require.Equal(t, base+3*2, fnt.Width("abc"))

	fnt.SetLetterSpacing(0)
	require.Equal(t, base, fnt.Width("abc"))
}

func TestFormattedWidth(t *testing.T) {
	fnt := newSolidFont(12, 12)
	advance := 6

	// unconstrained layouts measure the raw string
	text := DisplayText{Text: "abcd", Layout: Layout{Width: -1}}
	require.Equal(t, 4*advance, fnt.FormattedWidth(text))

	// constrained layouts measure the truncated result
	text = DisplayText{Text: "abcdefgh", Layout: Layout{Width: 5 * advance, Truncate: TruncateBack}}
	width := fnt.FormattedWidth(text)
	require.LessOrEqual(t, width, 5*advance)
	require.Greater(t, width, 0)
}
