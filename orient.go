// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gfxview

// Orientation flags. The three bits compose into the eight possible
// axis-aligned orientations of a raster.
const (
	// FlipX mirrors horizontally.
	FlipX uint8 = 0x01

	// FlipY mirrors vertically.
	FlipY uint8 = 0x02

	// SwapXY exchanges the axes. When set, the flips are measured against
	// the pre-swap axis lengths; see orientXY.
	SwapXY uint8 = 0x04
)

// Named rotations expressed from the three flags.
const (
	Rot0   uint8 = 0
	Rot90  uint8 = SwapXY | FlipX
	Rot180 uint8 = FlipX | FlipY
	Rot270 uint8 = SwapXY | FlipY
)

// orientSwapFlips exchanges the FlipX and FlipY bits, leaving SwapXY alone.
func orientSwapFlips(o uint8) uint8 {
	s := o & SwapXY
	if o&FlipX != 0 {
		s |= FlipY
	}
	if o&FlipY != 0 {
		s |= FlipX
	}
	return s
}

// orientAdd composes two orientations: the result of applying a, then b.
// Applying Rot90 four times over returns any starting orientation to
// itself.
func orientAdd(a, b uint8) uint8 {
	// if b doesn't swap axes, the flags simply accumulate
	if b&SwapXY == 0 {
		return a ^ b
	}
	// otherwise b's swap exchanges which axis a's flips act on
	return orientSwapFlips(a) ^ b
}

// orientXY maps a destination coordinate back to the source pixel to
// sample. w and h are the source cell's native width and height; x ranges
// over the post-swap width and y over the post-swap height.
//
// The flip amounts depend on the swap state: with SwapXY clear, FlipX
// reflects across w-1 and FlipY across h-1; with SwapXY set, FlipX
// reflects across h-1 and FlipY across w-1 (the pre-swap axis lengths),
// and the axes are exchanged afterwards. This ordering is what makes
// 90°/270° (swap plus one flip) and 180° (both flips, no swap) compose
// correctly from the raw flags, and it must match between the live
// rasterizer, the export rasterizer, and hover hit-testing.
func orientXY(x, y, w, h int, flags uint8) (sx, sy int) {
	if flags&SwapXY == 0 {
		if flags&FlipX != 0 {
			x = w - 1 - x
		}
		if flags&FlipY != 0 {
			y = h - 1 - y
		}
		return x, y
	}
	if flags&FlipX != 0 {
		x = h - 1 - x
	}
	if flags&FlipY != 0 {
		y = w - 1 - y
	}
	return y, x
}

// orientSize returns the post-swap cell dimensions.
func orientSize(w, h int, flags uint8) (int, int) {
	if flags&SwapXY != 0 {
		return h, w
	}
	return w, h
}
