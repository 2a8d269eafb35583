package gridfont

// underlineMark flags the next character for underlining when drawn.
// It's always skipped during measuring and never consumes width.
const underlineMark = '_'

// Width returns the pixel width of the given text, scaled by the
// font scale percentage.
func (self *Font) Width(text string) int {
	return self.widthRaw(text, 0)
}

// WidthWithNext is like [Font.Width], but accounts for the given code
// point following the text (e.g. when concatenating differently
// styled fragments): the trailing advance is looked up against it
// instead of against end-of-line.
func (self *Font) WidthWithNext(text string, next rune) int {
	return self.widthRaw(text, next)
}

// FormattedWidth returns the width of the text after applying its
// layout (truncation included).
func (self *Font) FormattedWidth(text DisplayText) int {
	truncated, width := self.truncateText(text)
	if width < 0 { return self.widthRaw(truncated, 0) }
	return width
}

// widthRaw measures text by resolving each code point to a glyph and
// summing pair advances, plus letter spacing per drawn glyph and a
// final advance against the next code point (0 for end of line).
// Glyphs that resolve to cell 0 add the space width instead.
func (self *Font) widthRaw(text string, next rune) int {
	width := 0
	previous := 0
	isAfterSpace := true
	kern := self.letterSpacing

	var iter ltrStringIterator
	for {
		codePoint := iter.Next(text)
		if codePoint == -1 { break }
		if codePoint == underlineMark { continue }

		glyph := self.GlyphForRune(codePoint, isAfterSpace)
		if codePoint != '"' && codePoint != '\'' {
			isAfterSpace = glyph == 0
		}
		if glyph == 0 {
			width += self.advances.space
		} else {
			width += self.advances.At(previous, glyph) + kern
			previous = glyph
		}
	}

	nextGlyph := 0
	if next >= 0x20 && next <= 0x7E {
		nextGlyph = int(next - 0x20)
	}
	if nextGlyph > self.glyphCount-1 { nextGlyph = self.glyphCount - 1 }
	width += self.advances.At(previous, nextGlyph)

	return width * self.scalePercent / 100
}
