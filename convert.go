package s3tconv

import "github.com/Triang3l/s3tconv/internal/atitc"

// ATITCRGBFromDXT converts a DXT RGB block to an ATITC RGB block.
//
// asDXT1 selects whether dxtBlock's mode bit should be honoured: pass
// true for DXT1, and also for DXT3/DXT5 targeting hardware (older NV4x
// GeForces) that applies the same color0<=color1 punch-through
// interpretation to those formats; pass false for
// specification-conforming DXT3/DXT5, where the colour block is always
// in 4-shade mode regardless of how color0 and color1 compare.
//
// remainingWidth and remainingHeight bound which of the block's 16
// pixels are live, the same as [DXT1BlockHasPunchthrough]; they only
// affect the punch-through-mode branch, since 4-shade mode converts
// losslessly regardless of which pixels are actually used.
//
// Alpha is not carried by this function. DXT3 and DXT5 alpha blocks can
// be copied to the ATITC texture unchanged; DXT1 punch-through alpha
// should be converted separately with
// [DXT1PunchthroughToExplicitAlpha] or
// [DXT1PunchthroughToInterpolatedAlpha].
func ATITCRGBFromDXT(dxtBlock DXTBlock, asDXT1 bool, remainingWidth, remainingHeight int) ATITCBlock {
	lo, hi, indices := atitc.RGBFromDXT(dxtBlock.Color0(), dxtBlock.Color1(), dxtBlock.Indices(), asDXT1, remainingWidth, remainingHeight)
	return newATITCBlock(lo, hi, indices)
}
