// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gfxview

import (
	"fmt"
	"strings"
)

// paletteHandler lays out and draws the palette grid, then applies
// navigation input. Swatches go straight to the sink; this mode does not
// touch the bitmap cache.
func (v *Viewer) paletteHandler() {
	pal := v.palettes[v.pal.dev]

	total := pal.Entries()
	if v.pal.which != 0 {
		total = pal.IndirectEntries()
	}

	box, chW, chH := v.panelChrome()

	// the cell box starts a half character in from the box, with room on
	// the left for five characters of row header plus padding, and on top
	// for a title, a header row, and padding
	cell := box
	cell.x0 += 0.5*chW + 5.5*chW
	cell.x1 -= 0.5 * chW
	cell.y0 += 0.5*chH + 3.0*chH
	cell.y1 -= 0.5 * chH

	cellW := (cell.x1 - cell.x0) / float32(v.pal.columns)
	cellH := (cell.y1 - cell.y0) / float32(v.pal.columns)

	var title strings.Builder
	fmt.Fprintf(&title, "'%s'", pal.Name())
	if pal.IndirectEntries() > 0 {
		if v.pal.which != 0 {
			title.WriteString(" COLORS")
		} else {
			title.WriteString(" PENS")
		}
	}

	// pointer over a swatch: inspect the corresponding entry
	if mx, my, ok := v.input.Pointer(); ok &&
		cell.x0 <= mx && mx < cell.x1 && cell.y0 <= my && my < cell.y1 {
		index := v.pal.offset + int((mx-cell.x0)/cellW) +
			int((my-cell.y0)/cellH)*v.pal.columns
		if index < total {
			fmt.Fprintf(&title, " #%X", index)
			if pal.IndirectEntries() > 0 && v.pal.which == 0 {
				fmt.Fprintf(&title, " => %X", pal.PenIndirect(index))
			} else if raw, ok := pal.RawEntry(index); ok {
				fmt.Fprintf(&title, " = %X", raw)
			}
			var col uint32
			if v.pal.which != 0 {
				col = pal.IndirectColor(index)
			} else {
				col = pal.Entry(index)
			}
			fmt.Fprintf(&title, " (A:%X R:%X G:%X B:%X)",
				col>>24&0xff, col>>16&0xff, col>>8&0xff, col&0xff)
		}
	}

	v.drawBoxWithTitle(box, title.String(), chW, chH)
	v.drawColumnHeaders(box, cell.y0, v.pal.columns, cellW, chW, chH)
	v.drawRowHeaders(box, v.pal.columns, v.pal.columns, v.pal.offset, total, cellH, chW, chH)

	// the swatches themselves
	for y := 0; y < v.pal.columns; y++ {
		for x := 0; x < v.pal.columns; x++ {
			index := v.pal.offset + y*v.pal.columns + x
			if index >= total {
				continue
			}
			var pen uint32
			if v.pal.which != 0 {
				pen = pal.IndirectColor(index)
			} else {
				pen = pal.Entry(index)
			}
			v.sink.Rect(
				cell.x0+float32(x)*cellW, cell.y0+float32(y)*cellH,
				cell.x0+float32(x+1)*cellW, cell.y0+float32(y+1)*cellH,
				0xff000000|pen)
		}
	}

	v.paletteHandleKeys()
}

// paletteHandleKeys applies one frame of palette navigation. Every
// mutation is re-clamped before the frame ends so the cursor is never
// inconsistent across a frame boundary.
func (v *Viewer) paletteHandleKeys() {
	pal := v.palettes[v.pal.dev]
	in := v.input

	// zoom scales the grid by powers of two
	if in.Pressed(ActionZoomOut) {
		v.pal.columns /= 2
	}
	if in.Pressed(ActionZoomIn) {
		v.pal.columns *= 2
	}
	if v.pal.columns < 4 {
		v.pal.columns = 4
	}
	if v.pal.columns > 64 {
		v.pal.columns = 64
	}

	// the subset cycles before the provider advances; entering a provider
	// from below lands on its indirect subset when it has one
	if in.Pressed(ActionPrevGroup) {
		switch {
		case v.pal.which != 0:
			v.pal.which = 0
		case v.pal.dev > 0:
			v.pal.dev--
			pal = v.palettes[v.pal.dev]
			v.pal.which = 0
			if pal.IndirectEntries() > 0 {
				v.pal.which = 1
			}
		}
	}
	if in.Pressed(ActionNextGroup) {
		switch {
		case v.pal.which == 0 && pal.IndirectEntries() > 0:
			v.pal.which = 1
		case v.pal.dev < len(v.palettes)-1:
			v.pal.dev++
			pal = v.palettes[v.pal.dev]
			v.pal.which = 0
		}
	}

	total := pal.Entries()
	if v.pal.which != 0 {
		total = pal.IndirectEntries()
	}
	rowcount := v.pal.columns
	screencount := rowcount * rowcount

	if in.PressedRepeat(ActionUp, 4) {
		v.pal.offset -= rowcount
	}
	if in.PressedRepeat(ActionDown, 4) {
		v.pal.offset += rowcount
	}
	if in.PressedRepeat(ActionPageUp, 6) {
		v.pal.offset -= screencount
	}
	if in.PressedRepeat(ActionPageDown, 6) {
		v.pal.offset += screencount
	}
	if in.PressedRepeat(ActionHome, 4) {
		v.pal.offset = 0
	}
	if in.PressedRepeat(ActionEnd, 4) {
		v.pal.offset = total // the range clamp below wins
	}

	// keep the visible page inside the padded grid
	if v.pal.offset+screencount > ((total+rowcount-1)/rowcount)*rowcount {
		v.pal.offset = ((total+rowcount-1)/rowcount)*rowcount - screencount
	}
	if v.pal.offset < 0 {
		v.pal.offset = 0
	}

	if in.Pressed(ActionSnapshot) {
		v.save = true
	}
}
