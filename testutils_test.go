package gridfont

import "image"

// Test fonts are built from synthetic atlases so no font files or
// image fixtures are required. The texture is left nil on purpose:
// measuring and truncation never touch it, and tests don't draw.

// newTestFont builds a font from the given atlas, skipping the
// texture upload.
func newTestFont(atlas *Atlas) *Font {
	fnt := &Font{
		atlas:        atlas,
		advances:     ComputeAdvances(atlas),
		glyphCount:   atlas.glyphCount,
		height:       atlas.cellHeight / 2,
		scalePercent: 100,
	}
	fnt.widthEllipsis = fnt.widthRaw(ellipsis, 0)
	return fnt
}

// newSyntheticAtlas builds an atlas of glyphCount cells where inked
// pixels are set through the paint function (returning coverage for
// cell-local coordinates).
func newSyntheticAtlas(glyphCount, cellWidth, cellHeight int, paint func(glyph, x, y int) uint8) *Atlas {
	pixels := image.NewRGBA(image.Rect(0, 0, glyphCount*cellWidth, cellHeight))
	for glyph := 0; glyph < glyphCount; glyph++ {
		for y := 0; y < cellHeight; y++ {
			for x := 0; x < cellWidth; x++ {
				alpha := paint(glyph, x, y)
				index := y*pixels.Stride + (glyph*cellWidth+x)*4
				pixels.Pix[index+0] = alpha
				pixels.Pix[index+1] = alpha
				pixels.Pix[index+2] = alpha
				pixels.Pix[index+3] = alpha
			}
		}
	}
	return &Atlas{
		pixels:     pixels,
		glyphCount: glyphCount,
		cellWidth:  cellWidth,
		cellHeight: cellHeight,
	}
}

// newSolidFont builds a basic-roster font where every cell except
// cell 0 is fully inked. With fully inked cells every pair advance
// (and every end-of-line advance) collapses to cellWidth/2, which
// makes widths trivial to predict: a string of n non-space ASCII
// characters measures exactly n*cellWidth/2.
func newSolidFont(cellWidth, cellHeight int) *Font {
	atlas := newSyntheticAtlas(GlyphsBasic, cellWidth, cellHeight, func(glyph, x, y int) uint8 {
		if glyph == 0 { return 0 }
		return 0xFF
	})
	return newTestFont(atlas)
}
