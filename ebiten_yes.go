//go:build !gtxt

package gridfont

import "image"
import "image/color"

import "github.com/hajimehoshi/ebiten/v2"

// Alias to allow compiling the package without Ebitengine (gtxt version).
//
// Without Ebitengine, TargetImage defaults to [image/draw.Image].
type TargetImage = *ebiten.Image

// With Ebitengine, the atlas texture is an *ebiten.Image uploaded
// once at font construction time.
type atlasTexture = *ebiten.Image

func newAtlasTexture(atlas *Atlas) atlasTexture {
	return ebiten.NewImageFromImageWithOptions(atlas.Image(),
		&ebiten.NewImageFromImageOptions{PreserveBounds: true})
}

// drawGlyph blits one atlas cell at the given position. The cell is
// drawn at half the atlas scale times the font scale factor; aspect
// additionally stretches the width (used for underlines).
func (self *Font) drawGlyph(target TargetImage, glyph int, x, y float64, aspect float64, clr color.Color) {
	cellWidth, cellHeight := self.atlas.CellSize()
	srcRect := image.Rect(glyph*cellWidth, 0, (glyph+1)*cellWidth, cellHeight)
	cell := self.texture.SubImage(srcRect).(*ebiten.Image)

	scale := self.scaleFactor()
	opts := ebiten.DrawImageOptions{}
	opts.GeoM.Scale(0.5*scale*aspect, 0.5*scale)
	opts.GeoM.Translate(x, y)
	opts.ColorM.Scale(colorToFloat64(clr))
	target.DrawImage(cell, &opts)
}

// Convert a color to its float64 [0, 1.0] components.
func colorToFloat64(subject color.Color) (float64, float64, float64, float64) {
	rgbaColor, isRGBA := subject.(color.RGBA)
	if isRGBA {
		r, g, b, a := rgbaColor.R, rgbaColor.G, rgbaColor.B, rgbaColor.A
		return float64(r)/255, float64(g)/255, float64(b)/255, float64(a)/255
	} else {
		r, g, b, a := subject.RGBA()
		return float64(r)/65535, float64(g)/65535, float64(b)/65535, float64(a)/65535
	}
}
