package s3tconv

import "encoding/binary"

// DXTBlock is one 8-byte DXT1/DXT3/DXT5 colour block.
//
// Byte layout, little-endian within each field:
//
//	bytes 0-1: color0, the first endpoint, packed RGB565.
//	bytes 2-3: color1, the second endpoint, packed RGB565.
//	bytes 4-7: indices, 16 two-bit fields, one per pixel; pixel (x, y)
//	           occupies bits 2*(4*y+x) and 2*(4*y+x)+1.
//
// If color0 > color1 (unsigned), the block is in 4-shade mode: shade 0 =
// color0, shade 1 = color1, shade 2 = (2*color0+color1)/3, shade 3 =
// (color0+2*color1)/3. Otherwise, for DXT1 only, it is in
// punch-through/3-shade mode: shade 0 = color0, shade 1 = color1, shade
// 2 = (color0+color1)/2, shade 3 = transparent black. DXT3/DXT5 colour
// blocks are in 4-shade mode whichever way color0 and color1 compare.
type DXTBlock [8]byte

// Color0 returns the first RGB565 endpoint.
func (b DXTBlock) Color0() uint16 { return binary.LittleEndian.Uint16(b[0:2]) }

// Color1 returns the second RGB565 endpoint.
func (b DXTBlock) Color1() uint16 { return binary.LittleEndian.Uint16(b[2:4]) }

// Indices returns the 32-bit table of 2-bit per-pixel palette indices.
func (b DXTBlock) Indices() uint32 { return binary.LittleEndian.Uint32(b[4:8]) }

// ATITCBlock is one 8-byte ATITC colour block.
//
// Byte layout, little-endian within each field:
//
//	bytes 0-1: lo, whose top bit (0x8000) is the black-trick mode flag
//	           and whose low 15 bits are an RGB555 colour.
//	bytes 2-3: hi, an RGB565 colour (no mode bit).
//	bytes 4-7: indices, same per-pixel layout as DXTBlock.
//
// If the mode flag is clear ("interpolated" mode): shade 0 = lo (565
// with the implicit low green bit 0), shade 1 = (5*lo+3*hi)/8, shade 2 =
// (3*lo+5*hi)/8, shade 3 = hi. If set ("black-trick" mode): shade 0 =
// black, shade 1 = lo - hi/4, shade 2 = lo, shade 3 = hi.
type ATITCBlock [8]byte

// Lo returns the lo word: bit 0x8000 is the black-trick mode flag, the
// low 15 bits are an RGB555 colour.
func (b ATITCBlock) Lo() uint16 { return binary.LittleEndian.Uint16(b[0:2]) }

// Hi returns the hi RGB565 colour.
func (b ATITCBlock) Hi() uint16 { return binary.LittleEndian.Uint16(b[2:4]) }

// Indices returns the 32-bit table of 2-bit per-pixel palette indices.
func (b ATITCBlock) Indices() uint32 { return binary.LittleEndian.Uint32(b[4:8]) }

// BlackTrick reports whether the block's mode flag (Lo()&0x8000) is set.
func (b ATITCBlock) BlackTrick() bool { return b.Lo()&0x8000 != 0 }

func newATITCBlock(lo, hi uint16, indices uint32) ATITCBlock {
	var b ATITCBlock
	binary.LittleEndian.PutUint16(b[0:2], lo)
	binary.LittleEndian.PutUint16(b[2:4], hi)
	binary.LittleEndian.PutUint32(b[4:8], indices)
	return b
}

// ExplicitAlphaBlock is one 8-byte DXT3-style explicit alpha block: 16
// four-bit alpha values, pixel i in nibble i (low nibble of byte i/2 for
// even i, high nibble for odd i).
type ExplicitAlphaBlock [8]byte

// InterpolatedAlphaBlock is one 8-byte DXT5-style interpolated alpha
// block: bytes 0-1 are the two alpha endpoints, bytes 2-7 are 16
// three-bit indices selecting a shade from the endpoints' 8-entry
// interpolated palette.
type InterpolatedAlphaBlock [8]byte
