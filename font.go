package gridfont

import "image"

import "golang.org/x/image/font/sfnt"

import "github.com/tlekan/gridfont/font"

// A Font bundles a glyph [Atlas], the [AdvanceTable] derived from it
// and the texture the renderer blits cells from. Fonts are built once
// per (source, pixel size) and immutable afterwards, except for the
// layout preferences (scale percent, letter spacing, underline
// display), which are meant to be set right after construction or
// from a single goroutine.
//
// A font whose construction returned an error is not usable; there
// are no implicit placeholder glyphs for a failed load.
type Font struct {
	atlas    *Atlas
	advances *AdvanceTable
	texture  atlasTexture

	glyphCount    int
	height        int // cell height at render scale
	widthEllipsis int // cached Width("..."), see truncate.go

	scalePercent   int
	letterSpacing  int
	showUnderlines bool
}

// NewFromSheet builds a font from a pre-rendered glyph sheet holding
// the basic roster ([GlyphsBasic] cells).
func NewFromSheet(sheet image.Image) (*Font, error) {
	atlas, err := NewAtlasFromSheet(sheet, GlyphsBasic)
	if err != nil { return nil, err }
	return newFont(atlas), nil
}

// NewFromSheetFile is like [NewFromSheet], reading the sheet from
// a .png file.
func NewFromSheetFile(path string) (*Font, error) {
	atlas, err := NewAtlasFromSheetFile(path, GlyphsBasic)
	if err != nil { return nil, err }
	return newFont(atlas), nil
}

// NewFromTTF builds a font by rasterizing the extended roster
// ([GlyphsExtended] cells) from a parsed font at the given pixel
// height.
func NewFromTTF(ttf *sfnt.Font, pixelHeight int) (*Font, error) {
	atlas, err := NewAtlasFromFont(ttf, pixelHeight, extendedRoster())
	if err != nil { return nil, err }
	return newFont(atlas), nil
}

// NewFromTTFFile is like [NewFromTTF], parsing the font from a .ttf
// or .otf file.
func NewFromTTFFile(path string, pixelHeight int) (*Font, error) {
	ttf, err := font.ParseFromPath(path)
	if err != nil { return nil, err }
	return NewFromTTF(ttf, pixelHeight)
}

func newFont(atlas *Atlas) *Font {
	fnt := &Font{
		atlas:        atlas,
		advances:     ComputeAdvances(atlas),
		texture:      newAtlasTexture(atlas),
		glyphCount:   atlas.glyphCount,
		height:       atlas.cellHeight / 2,
		scalePercent: 100,
	}
	fnt.widthEllipsis = fnt.widthRaw(ellipsis, 0)
	return fnt
}

// Atlas returns the font's glyph atlas.
func (self *Font) Atlas() *Atlas { return self.atlas }

// Advances returns the font's advance table.
func (self *Font) Advances() *AdvanceTable { return self.advances }

// GlyphCount returns the roster size of the font's atlas.
func (self *Font) GlyphCount() int { return self.glyphCount }

// Height returns the line height in pixels, scaled by the font scale
// percentage.
func (self *Font) Height() int {
	return self.height * self.scalePercent / 100
}

// Space returns the inter-word space width in pixels, scaled by the
// font scale percentage.
func (self *Font) Space() int {
	return self.advances.space * self.scalePercent / 100
}

// SetScalePercent adjusts the font scale as a percentage of the
// built size (100 by default). All widths, heights and draw sizes
// are scaled by it.
func (self *Font) SetScalePercent(percent int) {
	self.scalePercent = percent
	self.widthEllipsis = self.widthRaw(ellipsis, 0)
}

// SetLetterSpacing adds a constant per-glyph advance, in pixels.
// Zero by default; negative values tighten the text.
func (self *Font) SetLetterSpacing(pixels int) {
	self.letterSpacing = pixels
	self.widthEllipsis = self.widthRaw(ellipsis, 0)
}

// SetShowUnderlines controls whether the '_' underline marker draws
// an underline below the character that follows it. The marker is
// skipped either way and never consumes width.
func (self *Font) SetShowUnderlines(show bool) {
	self.showUnderlines = show
}

func (self *Font) scaleFactor() float64 {
	return float64(self.scalePercent) / 100
}
