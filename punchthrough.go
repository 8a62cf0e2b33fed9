package s3tconv

import "github.com/Triang3l/s3tconv/internal/dxt"

// DXT1BlockHasPunchthrough reports whether a DXT1 block uses its
// punch-through mode (color0 <= color1, unsigned) and at least one live
// pixel — one with x < remainingWidth and y < remainingHeight — selects
// index 3 (transparent black).
//
// remainingWidth and remainingHeight bound which of the block's 16
// pixels are live; pass 4 (or any value >= 4) for a full, unclipped
// block. This lets a caller choosing a destination format decide
// whether punch-through transparency actually needs converting, since
// ATITC has no punch-through analogue in its colour block.
func DXT1BlockHasPunchthrough(rgbBlock DXTBlock, remainingWidth, remainingHeight int) bool {
	return dxt.HasPunchthrough(rgbBlock.Color0(), rgbBlock.Color1(), rgbBlock.Indices(), remainingWidth, remainingHeight)
}

// DXT1PunchthroughToExplicitAlpha extracts punch-through transparency
// from a DXT1 block into a DXT3-style explicit alpha block: nibble 0x0
// for a pixel whose DXT index is 3 (transparent), 0xF otherwise.
//
// If rgbBlock is not in punch-through mode (color0 > color1), the
// result is all-zero bytes — which reads as fully *transparent* under
// the explicit alpha convention used here, not opaque. This matches the
// S3TConv reference implementation byte-for-byte; callers that want an
// "all opaque" fallback for non-punch-through blocks should check
// [DXT1BlockHasPunchthrough] first and skip the conversion entirely.
func DXT1PunchthroughToExplicitAlpha(rgbBlock DXTBlock) ExplicitAlphaBlock {
	return ExplicitAlphaBlock(dxt.ToExplicitAlpha(rgbBlock.Color0(), rgbBlock.Color1(), rgbBlock.Indices()))
}

// DXT1PunchthroughToInterpolatedAlpha extracts punch-through
// transparency from a DXT1 block into a DXT5-style interpolated alpha
// block: endpoints {0xFF, 0x00}, 3-bit index 0 (shade 0 = 0xFF, opaque)
// for a pixel whose DXT index is not 3, index 1 (shade 1 = 0x00,
// transparent) for a pixel whose DXT index is 3.
//
// If rgbBlock is not in punch-through mode, the result is the "all
// opaque" block: endpoints 0xFF, 0x00 with every index 0.
func DXT1PunchthroughToInterpolatedAlpha(rgbBlock DXTBlock) InterpolatedAlphaBlock {
	return InterpolatedAlphaBlock(dxt.ToInterpolatedAlpha(rgbBlock.Color0(), rgbBlock.Color1(), rgbBlock.Indices()))
}
