package gridfont

import "math"
import "image/color"

// This file contains the target-independent drawing traversal. The
// actual per-glyph blit lives in ebiten_yes.go / ebiten_no.go,
// depending on the build tags.

// Draw draws a display text at the given position, rounded to whole
// pixels, applying its layout (truncation and alignment).
func (self *Font) Draw(target TargetImage, text DisplayText, x, y float64, clr color.Color) {
	self.DrawAliased(target, text, math.Round(x), math.Round(y), clr)
}

// DrawAliased is like [Font.Draw], without rounding the position.
func (self *Font) DrawAliased(target TargetImage, text DisplayText, x, y float64, clr color.Color) {
	truncated, width := self.truncateText(text)
	if width >= 0 {
		switch text.Layout.Align {
		case AlignCenter:
			x += float64(text.Layout.Width-width) / 2
		case AlignRight:
			x += float64(text.Layout.Width - width)
		}
	}
	self.DrawStringAliased(target, truncated, x, y, clr)
}

// DrawString draws a raw string at the given position, rounded to
// whole pixels, with no truncation or alignment.
func (self *Font) DrawString(target TargetImage, text string, x, y float64, clr color.Color) {
	self.DrawStringAliased(target, text, math.Round(x), math.Round(y), clr)
}

// DrawStringAliased draws a raw string, advancing the pen through the
// advance table exactly like measuring does. Code points resolving to
// cell 0 only move the pen. When underline display is enabled, a '_'
// marker underlines the following character by drawing the underscore
// glyph at the same pen position, stretched horizontally to the
// underlined glyph's advance.
func (self *Font) DrawStringAliased(target TargetImage, text string, x, y float64, clr color.Color) {
	scale := self.scaleFactor()
	kern := self.letterSpacing
	underscoreGlyph := int(underlineMark - 0x20)
	if underscoreGlyph > self.glyphCount-1 { underscoreGlyph = self.glyphCount - 1 }

	penX := x - 1
	previous := 0
	isAfterSpace := true
	underlineNext := false

	var iter ltrStringIterator
	for {
		codePoint := iter.Next(text)
		if codePoint == -1 { break }

		if codePoint == underlineMark {
			underlineNext = self.showUnderlines
			continue
		}

		glyph := self.GlyphForRune(codePoint, isAfterSpace)
		if codePoint != '"' && codePoint != '\'' {
			isAfterSpace = glyph == 0
		}
		if glyph == 0 {
			penX += float64(self.advances.space) * scale
			continue
		}

		penX += float64(self.advances.At(previous, glyph)+kern) * scale
		self.drawGlyph(target, glyph, penX, y, 1.0, clr)

		if underlineNext {
			aspect := float64(self.advances.At(glyph, 0)+kern) /
				float64(self.advances.At(underscoreGlyph, 0)+kern)
			self.drawGlyph(target, underscoreGlyph, penX, y, aspect, clr)
			underlineNext = false
		}
		previous = glyph
	}
}
