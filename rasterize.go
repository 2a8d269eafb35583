package gridfont

import "image"
import "image/draw"

import "golang.org/x/image/vector"
import "golang.org/x/image/math/fixed"
import "golang.org/x/image/font"
import "golang.org/x/image/font/sfnt"

// NewAtlasFromFont builds an atlas by rasterizing every code point of
// the given roster from a parsed font, at the given pixel height. Each
// glyph lands in a square cell of side 2*pixelHeight (atlas pixels are
// at 2x the render scale) and is positioned vertically according to
// its placement class. Glyphs missing from the font leave their cell
// blank; glyphs larger than the cell are clipped to cell bounds.
func NewAtlasFromFont(fnt *sfnt.Font, pixelHeight int, roster []rune) (*Atlas, error) {
	cellWidth := pixelHeight * 2
	cellHeight := pixelHeight * 2
	pixels := image.NewRGBA(image.Rect(0, 0, len(roster)*cellWidth, cellHeight))

	var buffer sfnt.Buffer
	size := rasterScale(fnt, &buffer, pixelHeight)
	for i, codePoint := range roster {
		index, err := fnt.GlyphIndex(&buffer, codePoint)
		if err != nil || index == 0 { continue }
		segments, err := fnt.LoadGlyph(&buffer, index, size, nil)
		if err != nil { continue }
		mask := rasterizeOutline(segments)
		if mask == nil { continue }
		placeGlyph(pixels, mask, i, cellWidth, cellHeight, glyphVerticalPlacement(codePoint))
	}

	return &Atlas{
		pixels:     pixels,
		glyphCount: len(roster),
		cellWidth:  cellWidth,
		cellHeight: cellHeight,
	}, nil
}

// rasterScale returns the sfnt size (in 26.6 fixed point) at which
// ascent plus descent approximates the requested pixel height. Fonts
// commonly have ascent+descent larger than the em square, so loading
// glyphs at fixed.I(pixelHeight) directly would overshoot the cell.
func rasterScale(fnt *sfnt.Font, buffer *sfnt.Buffer, pixelHeight int) fixed.Int26_6 {
	size := fixed.I(pixelHeight)
	metrics, err := fnt.Metrics(buffer, size, font.HintingNone)
	if err != nil { return size }
	total := metrics.Ascent + metrics.Descent
	if total <= 0 { return size }
	return fixed.Int26_6(int64(size) * int64(size) / int64(total))
}

// rasterizeOutline renders glyph outline segments into an alpha mask
// of the outline's integer bounding box. Returns nil for outlines
// with no lines or curves (e.g. the space glyph).
func rasterizeOutline(segments sfnt.Segments) *image.Alpha {
	somethingToDraw := false
	for _, segment := range segments {
		if segment.Op != sfnt.SegmentOpMoveTo {
			somethingToDraw = true
			break
		}
	}
	if !somethingToDraw { return nil }

	// normalize coords to the positive quadrant, as expected
	// by the x/image/vector rasterizer
	bounds := segments.Bounds()
	minX := floorFract(bounds.Min.X)
	minY := floorFract(bounds.Min.Y)
	width := (bounds.Max.X - minX).Ceil()
	height := (bounds.Max.Y - minY).Ceil()
	if width <= 0 || height <= 0 { return nil }

	rasterizer := vector.NewRasterizer(width, height)
	rasterizer.DrawOp = draw.Src
	coords := func(point fixed.Point26_6) (float32, float32) {
		return fractToFloat32(point.X - minX), fractToFloat32(point.Y - minY)
	}
	for _, segment := range segments {
		switch segment.Op {
		case sfnt.SegmentOpMoveTo:
			x, y := coords(segment.Args[0])
			rasterizer.MoveTo(x, y)
		case sfnt.SegmentOpLineTo:
			x, y := coords(segment.Args[0])
			rasterizer.LineTo(x, y)
		case sfnt.SegmentOpQuadTo:
			cx, cy := coords(segment.Args[0])
			x, y := coords(segment.Args[1])
			rasterizer.QuadTo(cx, cy, x, y)
		case sfnt.SegmentOpCubeTo:
			cax, cay := coords(segment.Args[0])
			cbx, cby := coords(segment.Args[1])
			x, y := coords(segment.Args[2])
			rasterizer.CubeTo(cax, cay, cbx, cby, x, y)
		default:
			panic("unexpected segment.Op case")
		}
	}

	mask := image.NewAlpha(rasterizer.Bounds())
	rasterizer.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	return mask
}

// placeGlyph copies a rasterized mask into atlas cell i, centered
// horizontally and anchored vertically per its placement class. The
// mask alpha is replicated into all four channels so the atlas stays
// a white coverage texture.
func placeGlyph(pixels *image.RGBA, mask *image.Alpha, i, cellWidth, cellHeight int, placement verticalPlacement) {
	width := mask.Rect.Dx()
	height := mask.Rect.Dy()
	if width > cellWidth { width = cellWidth }
	if height > cellHeight { height = cellHeight }

	offsetX := i*cellWidth + (cellWidth-width)/2
	offsetY := glyphCellOffsetY(placement, cellHeight, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			alpha := mask.Pix[y*mask.Stride+x]
			pixelIndex := (offsetY+y)*pixels.Stride + (offsetX+x)*4
			pixels.Pix[pixelIndex+0] = alpha
			pixels.Pix[pixelIndex+1] = alpha
			pixels.Pix[pixelIndex+2] = alpha
			pixels.Pix[pixelIndex+3] = alpha
		}
	}
}

// ---- 26.6 fixed point helpers ----

func floorFract(value fixed.Int26_6) fixed.Int26_6 {
	return value &^ 0x3F
}

func fractToFloat32(value fixed.Int26_6) float32 {
	return float32(value) / 64.0
}
