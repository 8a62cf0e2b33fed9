// Package atitc implements the DXT->ATITC RGB block converter: the
// algorithmic core of this module. It maps DXT endpoints and 2-bit
// indices onto ATITC's {lo, hi} endpoint pair (lo optionally flagged as
// "black-trick" mode) and a re-encoded 2-bit index table, choosing among
// several strategies to minimise error when DXT's punch-through palette
// has no exact ATITC equivalent.
package atitc

import "github.com/Triang3l/s3tconv/internal/colorutil"

// effectiveWindow clamps a remaining-pixel count to the [0,4] window the
// spec defines: values already in [0,3] are partial-row/column counts,
// anything else (including negative) means "full block".
func effectiveWindow(n int) int {
	if n < 0 || n > 4 {
		return 4
	}
	return n
}

// live reports whether pixel (x, y) of a 4x4 block lies inside the
// caller's remaining-pixel window.
func live(x, y, remainingWidth, remainingHeight int) bool {
	return x < effectiveWindow(remainingWidth) && y < effectiveWindow(remainingHeight)
}

// RGBFromDXT converts one 8-byte DXT RGB block to one 8-byte ATITC RGB
// block. asDXT1 selects whether the block's mode bit (color0 <= color1
// meaning punch-through/3-shade) is honoured; remainingWidth and
// remainingHeight bound which of the 16 pixels are live, per spec.md §3.
//
// Returns the ATITC lo word (top bit = black-trick mode flag, low 15
// bits = RGB555), the hi word (RGB565, no mode bit), and the 32-bit
// index table, in the same bit layout as the DXT input.
func RGBFromDXT(color0, color1 uint16, dxtIndices uint32, asDXT1 bool, remainingWidth, remainingHeight int) (lo, hi uint16, indices uint32) {
	r0, g0, b0 := colorutil.Color565To888(color0)
	luma0 := colorutil.Luminance(r0, g0, b0)
	r1, g1, b1 := colorutil.Color565To888(color1)
	luma1 := colorutil.Luminance(r1, g1, b1)

	if !asDXT1 || color0 > color1 {
		return fourShade(color0, color1, luma0, luma1, dxtIndices)
	}
	return punchThrough(color0, color1, luma0, luma1, dxtIndices, remainingWidth, remainingHeight)
}

// fourShade handles DXT's {c0, c1, (2c0+c1)/3, (c0+2c1)/3} mode, which
// ATITC's non-black-trick {lo, 5lo+3hi/8, 3lo+5hi/8, hi} palette matches
// exactly once the index order is permuted and the endpoints are
// assigned so the brighter one is hi.
func fourShade(color0, color1 uint16, luma0, luma1 uint32, dxtIndices uint32) (lo, hi uint16, indices uint32) {
	// DXT->ATITC shade position remap: 0,1,2,3 -> 0,3,1,2.
	indices = dxtIndices ^ ((dxtIndices & 0xAAAAAAAA) >> 1)
	indices ^= (indices & 0x55555555) << 1

	if luma0 >= luma1 {
		lo = colorutil.Color565To555(color1)
		hi = color0
		indices = ^indices
	} else {
		lo = colorutil.Color565To555(color0)
		hi = color1
	}
	return lo, hi, indices
}

// punchThrough handles DXT1's {c0, c1, (c0+c1)/2, BLACK} mode, which in
// general has no exact ATITC equivalent. It picks the best of five
// strategies in priority order, see spec.md §4.4.b.
func punchThrough(color0, color1 uint16, luma0, luma1 uint32, dxtSourceIndices uint32, remainingWidth, remainingHeight int) (lo, hi uint16, indices uint32) {
	var colorLow, colorHigh uint16
	var lumaLow, lumaHigh uint32
	dxtIndices := dxtSourceIndices

	// Sort by luminance so index 0 always refers to the darker endpoint,
	// matching the order ATITC's own shades are compared in.
	if luma0 <= luma1 {
		colorLow, colorHigh = color0, color1
		lumaLow, lumaHigh = luma0, luma1
	} else {
		colorLow, colorHigh = color1, color0
		lumaLow, lumaHigh = luma1, luma0
		dxtIndices ^= (^dxtIndices & 0xAAAAAAAA) >> 1 // swap color0/color1 in the index table
	}

	var indexCount [4]uint32
	var cornerCount [4][2]uint32
	for p := 0; p < 16; p++ {
		x, y := p&3, p>>2
		if !live(x, y, remainingWidth, remainingHeight) {
			continue
		}
		idx := (dxtIndices >> uint(p<<1)) & 3
		indexCount[idx]++
		if idx&2 == 0 { // idx is 0 (low) or 1 (high)
			corner := (p >> 2) ^ (((p >> 1) ^ (p >> 2)) & 1)
			cornerCount[corner][idx]++
		}
	}

	switch {
	case indexCount[2] == 0:
		// Medium shade unused: {low, high, black} maps exactly.
		lo = 0x8000 | colorutil.Color565To555(colorLow)
		hi = colorHigh
		// 0 1 3 -> 2 3 0.
		indices = (dxtIndices ^ 0xAAAAAAAA) &^ ((dxtIndices & 0xAAAAAAAA) >> 1)

	case indexCount[0] == 0 || indexCount[1] == 0:
		lo, hi, indices = discardLowOrHigh(colorLow, colorHigh, lumaLow, lumaHigh, dxtIndices, indexCount[0], indexCount[1])

	case indexCount[3] == 0:
		lo, hi, indices = approximateMedium(colorLow, colorHigh, dxtIndices, indexCount, cornerCount)

	default:
		if l, h, idx, ok := blackTrickThreeShades(colorLow, colorHigh, dxtIndices, indexCount); ok {
			lo, hi, indices = l, h, idx
		} else if indexCount[2] <= indexCount[0] && indexCount[2] <= indexCount[1] {
			lo, hi, indices = discardMedium(colorLow, colorHigh, dxtIndices, indexCount[0], indexCount[1])
		} else {
			lo, hi, indices = discardLowOrHigh(colorLow, colorHigh, lumaLow, lumaHigh, dxtIndices, indexCount[0], indexCount[1])
		}
	}
	return lo, hi, indices
}

// approximateMedium handles case (iii): black is unused, so all 16
// pixels use {low, high, mid}. mid is approximated per 2x2 corner by
// whichever of the 3/8 or 5/8 ATITC interpolation is closer, based on
// which endpoint is more common in that corner (globally-more-common
// breaking corner ties, since that endpoint is the safer default).
func approximateMedium(colorLow, colorHigh uint16, dxtIndices uint32, indexCount [4]uint32, cornerCount [4][2]uint32) (lo, hi uint16, indices uint32) {
	lo = colorutil.Color565To555(colorLow)
	hi = colorHigh

	// Not >= because high has one more green bit than low.
	lowIsMoreCommon := indexCount[0] > indexCount[1]

	// 0 1 2 -> 0 3 2 (3/8 approximation of mid by default).
	indices = dxtIndices | ((dxtIndices & 0x55555555) << 1)
	medIndexMask := dxtIndices & 0xAAAAAAAA
	medIndexMask |= medIndexMask >> 1

	for corner := 0; corner < 4; corner++ {
		countLow, countHigh := cornerCount[corner][0], cornerCount[corner][1]
		if countLow > countHigh || (lowIsMoreCommon && countLow == countHigh) {
			// Flip this corner's medium-pixel indices from the 3/8 to the
			// 5/8 approximation (closer to low).
			indices ^= (uint32(0x00000F0F) << uint(((corner&2)<<3)|((corner&1)<<2))) & medIndexMask
		}
	}
	return lo, hi, indices
}

// blackTrickThreeShades attempts case (iv): represent all three
// non-black DXT shades {low, high, mid} using ATITC's black-trick
// palette {black, lo - hi/4, lo, hi}. The candidate lo colour is
// cLo_888 + (cHi_888 >> 2) per component; ok is false when that falls
// outside the scaled-endpoint bounding box the reference uses to gate
// this approximation (which doubles as an overflow guard).
func blackTrickThreeShades(colorLow, colorHigh uint16, dxtIndices uint32, indexCount [4]uint32) (lo, hi uint16, indices uint32, ok bool) {
	rLow, gLow, bLow := colorutil.Color565To888(colorLow)
	rHigh, gHigh, bHigh := colorutil.Color565To888(colorHigh)

	medHigh := [3]uint32{
		uint32(rLow) + uint32(rHigh>>2),
		uint32(gLow) + uint32(gHigh>>2),
		uint32(bLow) + uint32(bHigh>>2),
	}

	// Medium is the most common shade: narrow the bounding box to the
	// middle of [low, high] (5/8 low + 3/8 high at one end, the reverse at
	// the other).
	// Otherwise use the wider 0/8..8/8 box (i.e. [low, high] itself).
	scaleLow := uint32(0)
	if indexCount[2] >= indexCount[0] && indexCount[2] >= indexCount[1] {
		scaleLow = 3
	}
	scaleHigh := 8 - scaleLow

	low888 := [3]uint32{uint32(rLow), uint32(gLow), uint32(bLow)}
	high888 := [3]uint32{uint32(rHigh), uint32(gHigh), uint32(bHigh)}
	for c := 0; c < 3; c++ {
		boundLow := (scaleHigh*low888[c] + scaleLow*high888[c]) >> 3
		boundHigh := (scaleLow*low888[c] + scaleHigh*high888[c]) >> 3
		if medHigh[c] < boundLow || medHigh[c] > boundHigh {
			return 0, 0, 0, false
		}
	}

	lo = 0x8000 | uint16((medHigh[0]>>3)<<10) | uint16((medHigh[1]>>3)<<5) | uint16(medHigh[2]>>3)
	hi = colorHigh
	// 0 1 2 3 -> 1 3 2 0.
	indices = ^dxtIndices
	indices ^= (indices & 0x55555555) << 1
	indices ^= (indices & 0xAAAAAAAA) >> 1
	return lo, hi, indices, true
}

// discardMedium handles the first half of case (v): medium is the least
// common shade, so it is discarded and its pixels take whichever of low
// or high is more common; index-3 (black) pixels keep ATITC shade 0.
func discardMedium(colorLow, colorHigh uint16, dxtIndices uint32, countLow, countHigh uint32) (lo, hi uint16, indices uint32) {
	lo = 0x8000 | colorutil.Color565To555(colorLow)
	hi = colorHigh

	colorIndexMask := dxtIndices & 0x55555555 & ((dxtIndices & 0xAAAAAAAA) >> 1)
	colorIndexMask = ^(colorIndexMask | (colorIndexMask << 1))

	if countLow > countHigh { // Not >= because low gets fewer green bits than high.
		// 0 1 2 3 -> 2 3 2 0.
		indices = (0xAAAAAAAA | dxtIndices) & colorIndexMask
	} else {
		// 0 1 2 3 -> 2 3 3 0.
		indices = (dxtIndices | 0xAAAAAAAA | ((dxtIndices & 0xAAAAAAAA) >> 1)) & colorIndexMask
	}
	return lo, hi, indices
}

// discardLowOrHigh handles case (ii) and the second half of case (v):
// one of low/high is either unused (case ii) or, together with black,
// is being discarded in favour of a two-shade approximation (case v).
// The endpoint with the higher live pixel count survives (high on a
// tie), the other is replaced by the mean of low and high, and whichever
// of {mean, surviving endpoint} is brighter becomes hi.
func discardLowOrHigh(colorLow, colorHigh uint16, lumaLow, lumaHigh uint32, dxtIndices uint32, countLow, countHigh uint32) (lo, hi uint16, indices uint32) {
	colorMed := ((colorLow&0x001F)+(colorHigh&0x001F))>>1 |
		((((colorLow & 0x07E0) + (colorHigh & 0x07E0)) >> 1) & 0x07E0) |
		((((colorLow & 0xF800) + (colorHigh & 0xF800)) >> 1) & 0xF800)
	rMed, gMed, bMed := colorutil.Color565To888(colorMed)
	lumaMed := colorutil.Luminance(rMed, gMed, bMed)

	colorIndexMask := dxtIndices & 0x55555555 & ((dxtIndices & 0xAAAAAAAA) >> 1)
	colorIndexMask = ^(colorIndexMask | (colorIndexMask << 1))

	if countLow > countHigh { // Not >= because low gets fewer green bits than high.
		if lumaMed >= lumaLow {
			lo = 0x8000 | colorutil.Color565To555(colorLow)
			hi = colorMed
			// 0 1 2 3 -> 2 3 3 0.
			indices = (dxtIndices | 0xAAAAAAAA | ((dxtIndices & 0xAAAAAAAA) >> 1)) & colorIndexMask
		} else {
			// Generally shouldn't happen without hue variation.
			lo = 0x8000 | colorutil.Color565To555(colorMed)
			hi = colorLow
			// 0 1 2 3 -> 3 2 2 0.
			indices = ((dxtIndices | 0xAAAAAAAA) ^ ((^dxtIndices & 0xAAAAAAAA) >> 1)) & colorIndexMask
		}
	} else {
		if lumaMed <= lumaHigh {
			lo = 0x8000 | colorutil.Color565To555(colorMed)
			hi = colorHigh
			// 0 1 2 3 -> 2 3 2 0.
			indices = (0xAAAAAAAA | dxtIndices) & colorIndexMask
		} else {
			// Generally shouldn't happen without hue variation.
			lo = 0x8000 | colorutil.Color565To555(colorHigh)
			hi = colorMed
			// 0 1 2 3 -> 3 2 3 0.
			indices = ((dxtIndices | 0xAAAAAAAA) ^ 0x55555555) & colorIndexMask
		}
	}
	return lo, hi, indices
}
