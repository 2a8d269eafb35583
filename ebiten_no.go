//go:build gtxt

package gridfont

import "math"
import "image"
import "image/draw"
import "image/color"

import xdraw "golang.org/x/image/draw"

// Without Ebitengine (gtxt version), text is composited on the CPU
// onto any [image/draw.Image].
type TargetImage = draw.Image

// The gtxt atlas texture is the atlas coverage extracted into an
// alpha mask, built once at font construction time.
type atlasTexture = *image.Alpha

func newAtlasTexture(atlas *Atlas) atlasTexture {
	rgba := atlas.Image()
	alpha := image.NewAlpha(rgba.Rect)
	for i := range alpha.Pix {
		alpha.Pix[i] = rgba.Pix[i*4+3]
	}
	return alpha
}

// drawGlyph blits one atlas cell at the given position. The cell mask
// is downscaled to half the atlas scale times the font scale factor
// (aspect additionally stretches the width, used for underlines) and
// the drawing color is applied through it.
func (self *Font) drawGlyph(target TargetImage, glyph int, x, y float64, aspect float64, clr color.Color) {
	cellWidth, cellHeight := self.atlas.CellSize()
	scale := self.scaleFactor()
	destWidth := int(math.Round(float64(cellWidth) * 0.5 * scale * aspect))
	destHeight := int(math.Round(float64(cellHeight) * 0.5 * scale))
	if destWidth <= 0 || destHeight <= 0 { return }

	srcRect := image.Rect(glyph*cellWidth, 0, (glyph+1)*cellWidth, cellHeight)
	scaled := image.NewAlpha(image.Rect(0, 0, destWidth, destHeight))
	xdraw.ApproxBiLinear.Scale(scaled, scaled.Rect, self.texture, srcRect, draw.Src, nil)

	destRect := scaled.Rect.Add(image.Pt(int(math.Round(x)), int(math.Round(y))))
	draw.DrawMask(target, destRect, image.NewUniform(clr), image.Point{},
		scaled, image.Point{}, draw.Over)
}
