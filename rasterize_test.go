package gridfont

import "testing"

import "golang.org/x/image/math/fixed"
import "golang.org/x/image/font/sfnt"

import "github.com/stretchr/testify/require"

func moveTo(x, y int) sfnt.Segment {
	return sfnt.Segment{Op: sfnt.SegmentOpMoveTo,
		Args: [3]fixed.Point26_6{{X: fixed.I(x), Y: fixed.I(y)}}}
}

func lineTo(x, y int) sfnt.Segment {
	return sfnt.Segment{Op: sfnt.SegmentOpLineTo,
		Args: [3]fixed.Point26_6{{X: fixed.I(x), Y: fixed.I(y)}}}
}

func TestRasterizeOutlineSquare(t *testing.T) {
	square := sfnt.Segments{
		moveTo(0, 0), lineTo(4, 0), lineTo(4, 4), lineTo(0, 4), lineTo(0, 0),
	}
	mask := rasterizeOutline(square)
	require.NotNil(t, mask)
	require.Equal(t, 4, mask.Rect.Dx())
	require.Equal(t, 4, mask.Rect.Dy())
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			require.Equal(t, uint8(0xFF), mask.Pix[y*mask.Stride+x], "x=%d y=%d", x, y)
		}
	}
}

func TestRasterizeOutlineNormalizesNegativeBounds(t *testing.T) {
	// glyph outlines commonly live above the baseline (negative y)
	square := sfnt.Segments{
		moveTo(-2, -6), lineTo(2, -6), lineTo(2, -2), lineTo(-2, -2), lineTo(-2, -6),
	}
	mask := rasterizeOutline(square)
	require.NotNil(t, mask)
	require.Equal(t, 4, mask.Rect.Dx())
	require.Equal(t, 4, mask.Rect.Dy())
	require.Equal(t, uint8(0xFF), mask.Pix[1*mask.Stride+1])
}

func TestRasterizeOutlineEmpty(t *testing.T) {
	// space-like glyphs have no lines or curves and produce no mask
	require.Nil(t, rasterizeOutline(nil))
	require.Nil(t, rasterizeOutline(sfnt.Segments{moveTo(3, 3)}))
}
