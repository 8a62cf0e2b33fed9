// Package s3tconv converts 4x4 compressed-texture colour blocks between
// the DXT family (DXT1/BC1, DXT3/BC2, DXT5/BC3) and ATITC (ATI/Qualcomm
// Adreno ATC) block formats.
//
// Both formats pack a 4x4 RGB tile into 8 bytes: two endpoint colours
// plus a 32-bit table of 2-bit indices, one per pixel, selecting one of
// four shades derived from those endpoints. The families agree on this
// overall shape but differ in endpoint encoding and, critically, in
// what the four shades mean when the first endpoint compares lower than
// the second ("punch-through" in DXT1 versus a distinct black-trick mode
// in ATITC).
//
// This package implements the lossy translation of a DXT RGB block into
// an ATITC RGB block ([ATITCRGBFromDXT]), plus the auxiliary extraction
// of DXT1 punch-through transparency into a DXT3-style explicit or
// DXT5-style interpolated alpha block ([DXT1PunchthroughToExplicitAlpha],
// [DXT1PunchthroughToInterpolatedAlpha], gated by
// [DXT1BlockHasPunchthrough]).
//
// Every function here is total, allocation-free, and stateless: it
// operates on exactly one 8-byte block per call and is safe to call from
// any number of goroutines concurrently. The package does not parse any
// texture container format (DDS, KTX, ...) and does not perform the
// reverse (ATITC->DXT) conversion; callers are expected to walk a
// texture's blocks themselves and feed them through one block at a time.
package s3tconv
