package gridfont

// substituteUnsupported returns a supported stand-in code point for
// special characters outside the roster, or -1 if none preserves the
// meaning. Entries deliberately absent here (ellipsis, primes...)
// end up rendered as a blank space.
func substituteUnsupported(codePoint rune) rune {
	switch codePoint {
	case 0x00A0, 0x2009: // non-breaking space, thin space
		return ' '
	case 0x2010, 0x2011, 0x2012, 0x2013, 0x2014: // hyphens and dashes
		return '-'
	case 0x2019, 0x201A, 0x201B: // apostrophe-like single quotes
		return '\''
	case 0x201D, 0x201E, 0x201F: // closing/other double quotes
		return '"'
	default:
		return -1
	}
}

// GlyphForRune resolves a code point to its atlas cell index.
// isAfterSpace selects the opening curly quote glyphs for quote
// characters that immediately follow a space, so the same input
// character renders as an opening or a generic mark depending on
// context. Code points with no cell and no safe substitute resolve
// to 0 and render as a blank space; a misleading placeholder glyph
// would be worse than missing text.
//
// Callers maintain isAfterSpace themselves: true initially and after
// any character that resolved to glyph 0, unchanged by quote
// characters (so consecutive quotes see the same context).
func (self *Font) GlyphForRune(codePoint rune, isAfterSpace bool) int {
	// Curly quotes (ASCII and unicode opening quotes).
	if (codePoint == '\'' || codePoint == '‘') && isAfterSpace {
		return openSingleQuoteGlyph
	}
	if (codePoint == '"' || codePoint == '“') && isAfterSpace {
		return openDoubleQuoteGlyph
	}
	// Printable ASCII maps linearly, reserving the two curly quote
	// slots at the top of the roster.
	if codePoint >= 0x20 && codePoint <= 0x7E {
		glyph := int(codePoint - 0x20)
		if glyph > self.glyphCount-3 { glyph = self.glyphCount - 3 }
		if glyph < 0 { glyph = 0 }
		return glyph
	}
	if self.glyphCount == GlyphsExtended {
		if codePoint >= 0x0410 && codePoint <= 0x042F { // А..Я
			return cyrUpperFirstGlyph + int(codePoint-0x0410)
		}
		if codePoint == 'Ё' { return cyrUpperYoGlyph }
		if codePoint >= 0x0430 && codePoint <= 0x044F { // а..я
			return cyrLowerFirstGlyph + int(codePoint-0x0430)
		}
		if codePoint == 'ё' { return cyrLowerYoGlyph }
		if codePoint == '—' { return emDashGlyph }
		if codePoint == '«' { return leftGuillemetGlyph }
		if codePoint == '»' { return rightGuillemetGlyph }
	}
	// Fall back to a substitute for other unsupported characters.
	if codePoint >= 0 {
		substitute := substituteUnsupported(codePoint)
		if substitute != -1 {
			return self.GlyphForRune(substitute, isAfterSpace)
		}
		Logger().Debug("unsupported code point rendered as space", "codepoint", int(codePoint))
	}
	return 0
}
