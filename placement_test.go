package gridfont

import "testing"

import "github.com/stretchr/testify/require"

func TestGlyphVerticalPlacementClasses(t *testing.T) {
	bottoms := []rune{'a', 'Z', '0', '.', ',', '_', '(', 'д', 'Ж'}
	middles := []rune{'+', '=', '-', '*', '/', '|', '<', '>', '~', '«', '»', 0x2014, 0x00B7, 0x2022}
	tops := []rune{'\'', '"', '`', '^', 0x2018, 0x2019, 0x201C, 0x201D, 0x2032, 0x02BC}

	for _, codePoint := range bottoms {
		require.Equal(t, placementBottom, glyphVerticalPlacement(codePoint), "U+%04X", codePoint)
	}
	for _, codePoint := range middles {
		require.Equal(t, placementMiddle, glyphVerticalPlacement(codePoint), "U+%04X", codePoint)
	}
	for _, codePoint := range tops {
		require.Equal(t, placementTop, glyphVerticalPlacement(codePoint), "U+%04X", codePoint)
	}
}

func TestGlyphCellOffsetY(t *testing.T) {
	const cellHeight = 28 // 14px font, cells at 2x

	// bottom: flush against the cell bottom, then lifted half a cell
	require.Equal(t, cellHeight-8-14, glyphCellOffsetY(placementBottom, cellHeight, 8))
	// middle: centered on the midline; the lift pushes it above the
	// cell and the clamp catches it at the top
	require.Equal(t, 0, glyphCellOffsetY(placementMiddle, cellHeight, 8))
	// top: anchored at the cell top; the lift clamps to 0 as well
	require.Equal(t, 0, glyphCellOffsetY(placementTop, cellHeight, 8))

	// clamping keeps tall glyphs inside the cell
	require.Equal(t, 0, glyphCellOffsetY(placementBottom, cellHeight, cellHeight))
	require.Equal(t, 2, glyphCellOffsetY(placementBottom, cellHeight, cellHeight-2))
}
