package gridfont

import "os"
import "fmt"
import "image"
import "image/draw"
import _ "image/png"

// An Atlas is a single pixel buffer holding every glyph of a roster
// as equal-size cells laid out in one horizontal row. Cell pixels are
// coverage masks: the alpha value replicated into R, G and B, so the
// buffer can be uploaded directly as a white-with-alpha texture.
//
// Cell dimensions are stored at twice the final render scale; the
// renderer draws each cell at half size. Atlases are immutable once
// built and safe for concurrent reads.
type Atlas struct {
	pixels     *image.RGBA
	glyphCount int
	cellWidth  int
	cellHeight int
}

// GlyphCount returns the number of cells in the atlas.
func (self *Atlas) GlyphCount() int { return self.glyphCount }

// CellSize returns the cell dimensions in atlas pixels (2x the
// render scale).
func (self *Atlas) CellSize() (width, height int) {
	return self.cellWidth, self.cellHeight
}

// Image exposes the atlas pixel buffer. The buffer must be treated
// as read-only; it's shared with the advance table computation and
// with any textures uploaded from it.
func (self *Atlas) Image() *image.RGBA { return self.pixels }

// Cell returns the subimage of the given glyph cell. Mostly useful
// for debugging and for renderers that draw cells individually.
func (self *Atlas) Cell(glyph int) *image.RGBA {
	rect := image.Rect(glyph*self.cellWidth, 0, (glyph+1)*self.cellWidth, self.cellHeight)
	return self.pixels.SubImage(rect.Add(self.pixels.Rect.Min)).(*image.RGBA)
}

// alphaAt returns the coverage of the atlas pixel at (x, y).
func (self *Atlas) alphaAt(x, y int) uint8 {
	return self.pixels.Pix[y*self.pixels.Stride+x*4+3]
}

// NewAtlasFromSheet builds an atlas from an externally rasterized
// glyph sheet already divided into glyphCount equal cells, left to
// right. The image width must be an exact multiple of glyphCount.
// No placement logic is applied; the sheet is used as is.
func NewAtlasFromSheet(sheet image.Image, glyphCount int) (*Atlas, error) {
	if glyphCount <= 0 {
		return nil, fmt.Errorf("invalid glyph count %d", glyphCount)
	}
	bounds := sheet.Bounds()
	if bounds.Dx()%glyphCount != 0 {
		return nil, fmt.Errorf("sheet width %d not divisible by %d glyphs", bounds.Dx(), glyphCount)
	}

	pixels := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(pixels, pixels.Rect, sheet, bounds.Min, draw.Src)
	return &Atlas{
		pixels:     pixels,
		glyphCount: glyphCount,
		cellWidth:  bounds.Dx() / glyphCount,
		cellHeight: bounds.Dy(),
	}, nil
}

// NewAtlasFromSheetFile is like [NewAtlasFromSheet], reading the
// sheet from a .png file.
func NewAtlasFromSheetFile(path string, glyphCount int) (*Atlas, error) {
	file, err := os.Open(path)
	if err != nil { return nil, err }
	sheet, _, err := image.Decode(file)
	if err != nil {
		_ = file.Close()
		return nil, err
	}
	err = file.Close()
	if err != nil { return nil, err }
	return NewAtlasFromSheet(sheet, glyphCount)
}
