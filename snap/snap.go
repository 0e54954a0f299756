// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package snap encodes graphics viewer exports and names their output
// files.
package snap

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
)

// EncodePNG writes img as a PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

// EncodePalettedPNG writes an indexed pixmap through its palette. With
// 256 or fewer palette entries the output is a paletted PNG; larger
// palettes are expanded to truecolor. Pixel rows start at multiples of
// stride; pen values index pal and are masked into range.
func EncodePalettedPNG(w io.Writer, pix []uint16, stride, width, height int, pal []uint32) error {
	if len(pal) <= 256 {
		cp := make(color.Palette, len(pal))
		for i, argb := range pal {
			cp[i] = color.RGBA{
				R: uint8(argb >> 16),
				G: uint8(argb >> 8),
				B: uint8(argb),
				A: 0xff,
			}
		}
		img := image.NewPaletted(image.Rect(0, 0, width, height), cp)
		for y := 0; y < height; y++ {
			row := pix[y*stride : y*stride+width]
			for x, pen := range row {
				img.Pix[y*img.Stride+x] = uint8(int(pen) % len(pal))
			}
		}
		return png.Encode(w, img)
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		row := pix[y*stride : y*stride+width]
		for x, pen := range row {
			argb := pal[int(pen)%len(pal)]
			off := y*img.Stride + x*4
			img.Pix[off+0] = uint8(argb >> 16)
			img.Pix[off+1] = uint8(argb >> 8)
			img.Pix[off+2] = uint8(argb)
			img.Pix[off+3] = 0xff
		}
	}
	return png.Encode(w, img)
}

// WritePaletteText dumps palette entries as one r,g,b,a line per color,
// preceded by a small header describing the grid.
func WritePaletteText(w io.Writer, colors []uint32, columns int) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d\t\t# total colors\n", len(colors))
	fmt.Fprintf(bw, "%d\t\t# column width\n", columns)
	fmt.Fprintf(bw, "# palette data r,g,b,a\n")
	for _, pen := range colors {
		a := pen >> 24 & 0xff
		r := pen >> 16 & 0xff
		g := pen >> 8 & 0xff
		b := pen & 0xff
		fmt.Fprintf(bw, "%d,%d,%d,%d\n", r, g, b, a)
	}
	return bw.Flush()
}
