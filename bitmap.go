// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gfxview

import (
	"image"
	"image/color"
)

// Bitmap is a rectangular pixel buffer of packed 0xAARRGGBB pens, the
// native format of palette entries and composited output. A zero alpha
// pixel is fully transparent; rasterizers force 0xFF alpha on every pen
// they resolve.
type Bitmap struct {
	width  int
	height int
	pix    []uint32
}

// NewBitmap creates a bitmap with the given dimensions, all pixels
// transparent.
func NewBitmap(width, height int) *Bitmap {
	return &Bitmap{
		width:  width,
		height: height,
		pix:    make([]uint32, width*height),
	}
}

// Width returns the width of the bitmap in pixels.
func (b *Bitmap) Width() int {
	return b.width
}

// Height returns the height of the bitmap in pixels.
func (b *Bitmap) Height() int {
	return b.height
}

// Pix returns the raw packed-pen data, row-major.
func (b *Bitmap) Pix() []uint32 {
	return b.pix
}

// Row returns the pixels of one row. Mutating the slice mutates the
// bitmap.
func (b *Bitmap) Row(y int) []uint32 {
	return b.pix[y*b.width : (y+1)*b.width]
}

// SetPixel sets a single pixel. Out-of-bounds coordinates are ignored.
func (b *Bitmap) SetPixel(x, y int, argb uint32) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	b.pix[y*b.width+x] = argb
}

// Pixel returns a single pixel, or 0 for out-of-bounds coordinates.
func (b *Bitmap) Pixel(x, y int) uint32 {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return 0
	}
	return b.pix[y*b.width+x]
}

// Fill sets every pixel to argb.
func (b *Bitmap) Fill(argb uint32) {
	for i := range b.pix {
		b.pix[i] = argb
	}
}

// FillRect fills the half-open region [x0,x1)×[y0,y1) with argb,
// clipped to the bitmap bounds.
func (b *Bitmap) FillRect(x0, y0, x1, y1 int, argb uint32) {
	x0 = max(x0, 0)
	y0 = max(y0, 0)
	x1 = min(x1, b.width)
	y1 = min(y1, b.height)
	for y := y0; y < y1; y++ {
		row := b.Row(y)
		for x := x0; x < x1; x++ {
			row[x] = argb
		}
	}
}

// ToImage converts the bitmap to an image.RGBA.
func (b *Bitmap) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, b.width, b.height))
	for i, p := range b.pix {
		img.Pix[i*4+0] = uint8(p >> 16)
		img.Pix[i*4+1] = uint8(p >> 8)
		img.Pix[i*4+2] = uint8(p)
		img.Pix[i*4+3] = uint8(p >> 24)
	}
	return img
}

// At implements the image.Image interface.
func (b *Bitmap) At(x, y int) color.Color {
	p := b.Pixel(x, y)
	return color.RGBA{
		R: uint8(p >> 16),
		G: uint8(p >> 8),
		B: uint8(p),
		A: uint8(p >> 24),
	}
}

// Bounds implements the image.Image interface.
func (b *Bitmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.width, b.height)
}

// ColorModel implements the image.Image interface.
func (b *Bitmap) ColorModel() color.Model {
	return color.RGBAModel
}
