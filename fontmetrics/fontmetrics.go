// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package fontmetrics adapts an x/image font face to the normalized
// character metrics the graphics viewer lays panels out with.
package fontmetrics

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Metrics measures a font face in coordinates normalized to a panel
// size, so a line height of 0.05 means one twentieth of the panel.
type Metrics struct {
	face   font.Face
	scaleX float32
	scaleY float32
}

// New wraps face, normalizing against a panel of panelW by panelH
// pixels.
func New(face font.Face, panelW, panelH int) *Metrics {
	if panelW < 1 {
		panelW = 1
	}
	if panelH < 1 {
		panelH = 1
	}
	return &Metrics{
		face:   face,
		scaleX: 1 / float32(panelW),
		scaleY: 1 / float32(panelH),
	}
}

// Default returns metrics for the built-in 7x13 face.
func Default(panelW, panelH int) *Metrics {
	return New(basicfont.Face7x13, panelW, panelH)
}

// LineHeight returns the normalized height of one text line.
func (m *Metrics) LineHeight() float32 {
	return fixedToFloat(m.face.Metrics().Height) * m.scaleY
}

// CharWidth returns the normalized advance of r. Runes the face cannot
// shape use the replacement glyph's advance.
func (m *Metrics) CharWidth(r rune) float32 {
	adv, ok := m.face.GlyphAdvance(r)
	if !ok {
		adv, _ = m.face.GlyphAdvance('�')
	}
	return fixedToFloat(adv) * m.scaleX
}

// StringWidth returns the normalized advance of the whole string.
func (m *Metrics) StringWidth(s string) float32 {
	return fixedToFloat(font.MeasureString(m.face, s)) * m.scaleX
}

func fixedToFloat(v fixed.Int26_6) float32 {
	return float32(v) / 64
}
