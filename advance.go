package gridfont

// The advance table is where the "no font metrics" trick happens:
// kerning is inferred by scanning the finished atlas pixels, so sheet
// fonts and rasterized fonts get identical treatment. For every
// ordered glyph pair we find, row by row, the advance that would make
// the pair touch with zero gap, and keep the worst row so no row ever
// overlaps.

// inkThreshold is the minimum coverage for a pixel to count as inked
// (roughly 75% of full alpha).
const inkThreshold = 0xC0

// An AdvanceTable maps (previous glyph, next glyph) pairs to the
// horizontal pixel advance between them, in final render pixels (the
// atlas is at 2x scale; the table is already halved). Column 0 holds
// the full tight width of the previous glyph, used at the end of a
// line. Row 0 is all zeros: the first glyph of a line advances from
// nothing. Advances are not symmetric; At(a, b) and At(b, a) are
// measured independently.
//
// The table is built once per atlas and read-only afterwards.
type AdvanceTable struct {
	glyphs int
	values []int
	space  int
}

// At returns the advance between the previous and next glyph cells.
func (self *AdvanceTable) At(previous, next int) int {
	return self.values[previous*self.glyphs+next]
}

// Space returns the default inter-word space width, derived from the
// average cell width.
func (self *AdvanceTable) Space() int { return self.space }

// GlyphCount returns the roster size the table was built for.
func (self *AdvanceTable) GlyphCount() int { return self.glyphs }

// ComputeAdvances scans an atlas pixel buffer and derives the advance
// table for it. Pure function of the atlas contents; it must be rerun
// from scratch whenever the atlas changes.
func ComputeAdvances(atlas *Atlas) *AdvanceTable {
	glyphCount := atlas.glyphCount
	width := atlas.cellWidth
	height := atlas.cellHeight

	table := &AdvanceTable{
		glyphs: glyphCount,
		values: make([]int, glyphCount*glyphCount),
	}
	for previous := 1; previous < glyphCount; previous++ {
		for next := 0; next < glyphCount; next++ {
			maxDistance := 0
			glyphWidth := 0
			for y := 0; y < height; y++ {
				// find the last inked pixel in the previous glyph's cell;
				// distance is its offset from the cell start, plus one
				distance := 1
				for x := width - 1; x >= 1; x-- {
					if atlas.alphaAt(previous*width+x, y) >= inkThreshold {
						distance = x + 1
						break
					}
				}
				if distance > glyphWidth { glyphWidth = distance }

				// Special case: if "next" is zero (i.e. end of line of text),
				// keep the full width of this character. Otherwise:
				if next != 0 {
					// Find the first inked pixel in the next glyph's cell.
					first := width
					for x := 0; x < width; x++ {
						if atlas.alphaAt(next*width+x, y) >= inkThreshold {
							first = x + 1
							break
						}
					}
					// At an advance of "width" there would be width-distance
					// empty pixels after the previous glyph and first-1 empty
					// pixels before the next one, so for the glyphs to touch
					// with zero gap on this row:
					distance += 1 - first
				}
				if distance > maxDistance { maxDistance = distance }
			}
			// Fudge factor to avoid over-kerning, especially for the
			// underscore and for glyph combinations like AV. The division
			// halves the 2x atlas scale down to render pixels.
			advance := glyphWidth - 4
			if maxDistance > advance { advance = maxDistance }
			table.values[previous*glyphCount+next] = advance / 2
		}
	}

	// Space size based on the character width, at render scale.
	table.space = (width/2+3)/6 + 1
	return table
}
