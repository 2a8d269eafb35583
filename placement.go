package gridfont

import "math"

// When rasterizing a .ttf we have no baseline information per cell,
// only the cell box itself, so each glyph is snapped to one of three
// vertical anchors depending on what kind of mark it is.
type verticalPlacement uint8

const (
	placementBottom verticalPlacement = iota // letters, digits, most punctuation
	placementMiddle                          // operators, dashes, guillemets, interpuncts
	placementTop                             // quote marks, accents, primes
)

// glyphVerticalPlacement classifies a code point into its vertical
// placement bucket. The default is bottom placement.
func glyphVerticalPlacement(codePoint rune) verticalPlacement {
	switch codePoint {
	// Midline punctuation, operators and dashes.
	case '+', '=', '*', '/', '\\', '|', '<', '>', '~', '-',
		0x2010, 0x2011, 0x2012, 0x2013, 0x2014, // hyphen..em dash
		0x00AB, 0x00BB, 0x2039, 0x203A, // guillemets
		0x00B7, 0x2022, 0x2219: // interpuncts and bullets
		return placementMiddle

	// Top punctuation, quote-like marks and accents.
	case '\'', '"', '`', '^',
		0x00B4, 0x00A8, 0x00AF, // ´ ¨ ¯
		0x02BC, 0x02C7, 0x02CA, 0x02CB, 0x02DC, // modifier letters
		0x2018, 0x2019, 0x201A, 0x201B, // single quotes
		0x201C, 0x201D, 0x201E, 0x201F, // double quotes
		0x2032, 0x2033: // primes
		return placementTop

	// Baseline/bottom-aligned glyphs (letters, digits, '.', ',', '_'...).
	default:
		return placementBottom
	}
}

// glyphCellOffsetY returns the vertical pixel offset of a rasterized
// glyph of the given height within its atlas cell. Bottom glyphs sit
// flush against the bottom of the cell, middle glyphs are centered on
// the cell midline and top glyphs hang from the top anchor. The whole
// scheme is then lifted by half a cell; the shipped fonts render too
// low without it, so keep the lift as is. The result is clamped so
// the glyph never leaves the cell.
func glyphCellOffsetY(placement verticalPlacement, cellHeight, glyphHeight int) int {
	bottomAnchor := cellHeight
	middleAnchor := bottomAnchor - cellHeight/2

	var offsetY int
	switch placement {
	case placementBottom:
		offsetY = bottomAnchor - glyphHeight
	case placementMiddle:
		offsetY = int(math.Round(float64(middleAnchor) - float64(glyphHeight)/2))
	case placementTop:
		offsetY = bottomAnchor - cellHeight
	}
	offsetY -= cellHeight / 2

	if offsetY > cellHeight-glyphHeight { offsetY = cellHeight - glyphHeight }
	if offsetY < 0 { offsetY = 0 }
	return offsetY
}
