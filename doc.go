// gridfont is a package for fixed-grid bitmap font construction and
// width-aware text layout, designed for games that render text as
// rows of equal-size glyph cells from a single atlas texture.
//
// Fonts can be built from a pre-rendered glyph sheet or rasterized
// from a .ttf file at a target pixel height:
//   fnt, err := gridfont.NewFromSheetFile("font/ubuntu14r.png")
//   if err != nil { ... }
//
// Kerning is not read from font metrics; instead, the finished atlas
// is scanned pixel by pixel to derive an advance for every ordered
// glyph pair. That makes sheet fonts and rasterized fonts behave
// identically downstream.
//
// Once built, a font measures and truncates text:
//   width := fnt.Width("Merchant's Luck")
//   label, w := fnt.Truncate(shipName, 120, gridfont.TruncateBack)
//
// ...and draws it onto a target:
//   fnt.Draw(target, text, x, y, color.White)
//
// Fonts are immutable after construction (aside from a few layout
// preferences), so they can be shared freely across goroutines. Use
// a [FontSet] to keep fonts organized by pixel size and language.
package gridfont
