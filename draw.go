// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gfxview

// DefaultBackground is the panel background used when no WithBackground
// option is given (translucent dark blue).
const DefaultBackground uint32 = 0xef101030

// colorWhite is the chrome foreground.
const colorWhite uint32 = 0xffffffff

// lineWidth is the normalized thickness of header indicator points.
const lineWidth float32 = 1.0 / 500.0

// DrawSink receives the viewer's immediate-mode draw primitives. All
// coordinates are normalized panel coordinates; colors are packed
// 0xAARRGGBB.
//
// The sink also reports the pixel dimensions of the render target, which
// the graphics-set and tilemap viewers need to pick integer pixel scales.
type DrawSink interface {
	// TargetSize returns the render target dimensions in pixels.
	TargetSize() (width, height int)

	// OutlinedBox fills a rectangle with the background color and strokes
	// its border.
	OutlinedBox(x0, y0, x1, y1 float32, argb uint32)

	// Rect fills a rectangle.
	Rect(x0, y0, x1, y1 float32, argb uint32)

	// Char draws a single glyph with its top-left at (x, y) and the given
	// normalized line height.
	Char(x, y, height float32, r rune, argb uint32)

	// Point draws a small marker centered at (x, y).
	Point(x, y, size float32, argb uint32)

	// Quad draws the texture's bitmap into the rectangle, applying the
	// orientation flags at sampling time.
	Quad(x0, y0, x1, y1 float32, tex *Texture, orientation uint8)
}

// FontMetrics measures the panel font in normalized panel coordinates.
type FontMetrics interface {
	// LineHeight is the normalized height of one text line.
	LineHeight() float32

	// CharWidth is the normalized advance of one glyph at LineHeight.
	CharWidth(r rune) float32

	// StringWidth is the normalized width of s at LineHeight.
	StringWidth(s string) float32
}

// nopSink is the default sink: primitives vanish, the target reports a
// conventional size so layout math stays meaningful for headless use.
type nopSink struct{}

func (nopSink) TargetSize() (int, int)                           { return 1280, 1024 }
func (nopSink) OutlinedBox(x0, y0, x1, y1 float32, argb uint32)  {}
func (nopSink) Rect(x0, y0, x1, y1 float32, argb uint32)         {}
func (nopSink) Char(x, y, height float32, r rune, argb uint32)   {}
func (nopSink) Point(x, y, size float32, argb uint32)            {}
func (nopSink) Quad(x0, y0, x1, y1 float32, t *Texture, o uint8) {}

// nopFont approximates a monospace font filling 1/25th of the panel
// height, enough for layout to proceed headless.
type nopFont struct{}

func (nopFont) LineHeight() float32    { return 0.04 }
func (nopFont) CharWidth(rune) float32 { return 0.02 }
func (nopFont) StringWidth(s string) float32 {
	return 0.02 * float32(len([]rune(s)))
}

// drawString draws s glyph by glyph, advancing by each glyph's width, and
// returns the x coordinate past the last glyph.
func drawString(sink DrawSink, font FontMetrics, x, y float32, s string, argb uint32) float32 {
	h := font.LineHeight()
	for _, r := range s {
		sink.Char(x, y, h, r, argb)
		x += font.CharWidth(r)
	}
	return x
}

const hexDigits = "0123456789ABCDEF"
