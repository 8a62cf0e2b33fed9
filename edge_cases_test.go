package s3tconv

import "testing"

func makeDXTBlock(color0, color1 uint16, indices uint32) DXTBlock {
	var b DXTBlock
	b[0] = byte(color0)
	b[1] = byte(color0 >> 8)
	b[2] = byte(color1)
	b[3] = byte(color1 >> 8)
	b[4] = byte(indices)
	b[5] = byte(indices >> 8)
	b[6] = byte(indices >> 16)
	b[7] = byte(indices >> 24)
	return b
}

// S1: four-shade block whose every pixel selects the high endpoint must
// round-trip to an ATITC block whose every pixel selects the high shade.
func TestATITCRGBFromDXT_S1(t *testing.T) {
	dxtBlock := makeDXTBlock(0xFFFF, 0x0000, 0x00000000)
	got := ATITCRGBFromDXT(dxtBlock, false, 4, 4)
	if got.Lo() != 0x0000 || got.Hi() != 0xFFFF || got.Indices() != 0xFFFFFFFF {
		t.Errorf("S1: lo=%#04x hi=%#04x indices=%#08x", got.Lo(), got.Hi(), got.Indices())
	}
}

// S2: four-shade block whose every pixel selects the low endpoint.
func TestATITCRGBFromDXT_S2(t *testing.T) {
	dxtBlock := makeDXTBlock(0x0000, 0xFFFF, 0x00000000)
	got := ATITCRGBFromDXT(dxtBlock, false, 4, 4)
	if got.Lo() != 0x0000 || got.Hi() != 0xFFFF || got.Indices() != 0x00000000 {
		t.Errorf("S2: lo=%#04x hi=%#04x indices=%#08x", got.Lo(), got.Hi(), got.Indices())
	}
}

// S3: DXT3-style explicit alpha, top half opaque, bottom half transparent.
func TestDXT1PunchthroughToExplicitAlpha_S3(t *testing.T) {
	dxtBlock := makeDXTBlock(0x0000, 0xFFFF, 0xFFFF0000)
	got := DXT1PunchthroughToExplicitAlpha(dxtBlock)
	want := ExplicitAlphaBlock{0xFF, 0xFF, 0xFF, 0xFF, 0x00, 0x00, 0x00, 0x00}
	if got != want {
		t.Errorf("S3: got %#v, want %#v", got, want)
	}
}

// S4: every pixel transparent under DXT5-style interpolated alpha.
func TestDXT1PunchthroughToInterpolatedAlpha_S4(t *testing.T) {
	dxtBlock := makeDXTBlock(0x0000, 0xFFFF, 0xFFFFFFFF)
	got := DXT1PunchthroughToInterpolatedAlpha(dxtBlock)
	if got[0] != 0xFF || got[1] != 0x00 {
		t.Fatalf("S4: endpoints = (%#02x,%#02x), want (0xff,0x00)", got[0], got[1])
	}
	// Every 3-bit index selects shade 1 (transparent): 0b001 repeated 16
	// times packs to 0x49 0x92 0x24 0x49 0x92 0x24.
	want := [6]byte{0x49, 0x92, 0x24, 0x49, 0x92, 0x24}
	for i, b := range want {
		if got[2+i] != b {
			t.Errorf("S4: byte %d = %#02x, want %#02x", 2+i, got[2+i], b)
		}
	}
}

// S5: non-punch-through DXT1 block (color0 > color1) reports no
// punch-through, even though every pixel selects index 3.
func TestDXT1BlockHasPunchthrough_S5(t *testing.T) {
	dxtBlock := makeDXTBlock(0xFFFF, 0x0000, 0xFFFFFFFF)
	if DXT1BlockHasPunchthrough(dxtBlock, 4, 4) {
		t.Error("S5: four-shade block must never report punch-through")
	}
}

// S6: degenerate punch-through block with equal endpoints must still
// produce a valid (non-panicking) ATITC block that decodes to a single
// flat colour.
func TestATITCRGBFromDXT_S6(t *testing.T) {
	dxtBlock := makeDXTBlock(0x0000, 0x0000, 0xAAAAAAAA)
	got := ATITCRGBFromDXT(dxtBlock, true, 4, 4)
	if !got.BlackTrick() {
		t.Fatalf("S6: expected black-trick mode, lo=%#04x", got.Lo())
	}
	if got.Lo()&0x7FFF != 0 || got.Hi() != 0x0000 {
		t.Errorf("S6: got lo=%#04x hi=%#04x, want both black", got.Lo(), got.Hi())
	}
}

// P1: a DXT1 block is in punch-through mode iff color0 <= color1
// (unsigned), independent of which indices are actually used.
func TestDXT1BlockHasPunchthrough_ModeBoundary(t *testing.T) {
	fourShade := makeDXTBlock(0x0001, 0x0000, 0xFFFFFFFF)
	if DXT1BlockHasPunchthrough(fourShade, 4, 4) {
		t.Error("color0 > color1 must never be punch-through")
	}
	punchThrough := makeDXTBlock(0x0000, 0x0001, 0xFFFFFFFF)
	if !DXT1BlockHasPunchthrough(punchThrough, 4, 4) {
		t.Error("color0 < color1 with an index-3 pixel must be punch-through")
	}
}

// P4: ATITCRGBFromDXT never panics across the full span of possible
// index tables for a fixed punch-through endpoint pair, and always
// produces a deterministic result.
func TestATITCRGBFromDXT_NoPanicAcrossIndices(t *testing.T) {
	for _, indices := range []uint32{
		0x00000000, 0xFFFFFFFF, 0x55555555, 0xAAAAAAAA,
		0x00FF00FF, 0x0123456789ABCDEF & 0xFFFFFFFF,
		0x11111111, 0x1B1B1B1B,
	} {
		dxtBlock := makeDXTBlock(0x0010, 0xF800, indices)
		got1 := ATITCRGBFromDXT(dxtBlock, true, 4, 4)
		got2 := ATITCRGBFromDXT(dxtBlock, true, 4, 4)
		if got1 != got2 {
			t.Errorf("indices=%#08x: not deterministic: %#v vs %#v", indices, got1, got2)
		}
	}
}

// P5: padding rows/columns beyond remainingWidth/remainingHeight must
// not influence DXT1BlockHasPunchthrough's verdict.
func TestDXT1BlockHasPunchthrough_PaddingInvariant(t *testing.T) {
	live := makeDXTBlock(0x0000, 0xFFFF, 0x00000000) // no index-3 pixels in the live window
	// Set index 3 only on pixel (x=3, y=3), outside a 2x2 live window.
	padded := makeDXTBlock(0x0000, 0xFFFF, 0x00000000)
	padded[7] = 0xC0 // top two bits of the 32-bit index word -> pixel 15 (x=3,y=3) = index 3
	if DXT1BlockHasPunchthrough(live, 2, 2) != DXT1BlockHasPunchthrough(padded, 2, 2) {
		t.Error("padding-only index-3 pixel must not affect a clipped verdict")
	}
}

// Out-of-range remainingWidth/remainingHeight (negative or >4) must be
// treated as a full, unclipped 4x4 window rather than panicking or
// silently treating every pixel as padding.
func TestDXT1BlockHasPunchthrough_OutOfRangeWindow(t *testing.T) {
	dxtBlock := makeDXTBlock(0x0000, 0xFFFF, 0x00000003) // pixel 0 = index 3
	full := DXT1BlockHasPunchthrough(dxtBlock, 4, 4)
	if got := DXT1BlockHasPunchthrough(dxtBlock, 9, 9); got != full {
		t.Errorf("remainingWidth/Height=9: got %v, want %v (same as full window)", got, full)
	}
	if got := DXT1BlockHasPunchthrough(dxtBlock, -1, -1); got != full {
		t.Errorf("negative remainingWidth/Height: got %v, want %v (same as full window)", got, full)
	}
}
