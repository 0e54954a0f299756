// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gfxview

import (
	"fmt"

	"github.com/gogpu/gputypes"
)

// gfxsetHandler lays out and draws the graphics-set grid, composing the
// visible cells into the bitmap cache, then applies navigation input.
func (v *Viewer) gfxsetHandler() {
	info := &v.devs[v.curDev]
	sc := &info.sets[v.curSet]
	gfx := info.decoder.Set(v.curSet)

	targW, targH := v.sink.TargetSize()

	box, chW, chH := v.panelChrome()
	cell := box
	cell.x0 += 0.5*chW + 5.5*chW
	cell.x1 -= 0.5 * chW
	cell.y0 += 0.5*chH + 3.0*chH
	cell.y1 -= 0.5 * chH

	cellBoxW := int((cell.x1 - cell.x0) * float32(targW))
	cellBoxH := int((cell.y1 - cell.y0) * float32(targH))

	// one cell's pixel footprint under the current rotation, plus a one
	// pixel gutter
	postW, postH := orientSize(gfx.Width(), gfx.Height(), sc.rotate)
	cellXPix := 1 + postW
	cellYPix := 1 + postH

	// shrink the requested column count until a non-zero integer pixel
	// scale fits the panel width
	xcells := sc.columns
	pixelscale := 0
	for xcells > 1 {
		pixelscale = (cellBoxW / xcells) / cellXPix
		if pixelscale != 0 {
			break
		}
		xcells--
	}
	sc.columns = xcells

	// worst case, draw at 1:1
	if pixelscale < 1 {
		pixelscale = 1
	}

	// vertically, show however many whole rows fit
	ycells := cellBoxH / (pixelscale * cellYPix)
	if ycells < 1 {
		ycells = 1
	}

	// shrink the cell box to the fitted grid
	cellBoxW = min(cellBoxW, xcells*pixelscale*cellXPix)
	cellBoxH = min(cellBoxH, ycells*pixelscale*cellYPix)

	cellW := (float32(cellBoxW) / float32(xcells)) / float32(targW)
	cellH := (float32(cellBoxH) / float32(ycells)) / float32(targH)

	// recenter the outer box around the fitted grid
	fullW := float32(cellBoxW)/float32(targW) + 6.5*chW
	fullH := float32(cellBoxH)/float32(targH) + 4.0*chH
	box.x0 = (1 - fullW) * 0.5
	box.x1 = box.x0 + fullW
	box.y0 = (1 - fullH) * 0.5
	box.y1 = box.y0 + fullH

	cell.x0 = box.x0 + 6.0*chW
	cell.x1 = cell.x0 + float32(cellBoxW)/float32(targW)
	cell.y0 = box.y0 + 3.5*chH
	cell.y1 = cell.y0 + float32(cellBoxH)/float32(targH)

	title := fmt.Sprintf("'%s' %d/%d", info.decoder.Name(), v.curSet, len(info.sets)-1)

	// pointer over a pixel in a cell: inspect the cell and source pixel
	found := false
	if mx, my, ok := v.input.Pointer(); ok &&
		cell.x0 <= mx && mx < cell.x1 && cell.y0 <= my && my < cell.y1 {
		code := sc.offset + int((mx-cell.x0)/cellW) + int((my-cell.y0)/cellH)*xcells
		xpixel := int((mx-cell.x0)/(cellW/float32(cellXPix))) % cellXPix
		ypixel := int((my-cell.y0)/(cellH/float32(cellYPix))) % cellYPix
		if code < gfx.Elements() && xpixel < cellXPix-1 && ypixel < cellYPix-1 {
			found = true
			sx, sy := orientXY(xpixel, ypixel, gfx.Width(), gfx.Height(), sc.rotate)
			pix := gfx.PixelData(code)[sx+sy*gfx.RowBytes()]
			title += fmt.Sprintf(" #%X:%X @ %d,%d = %X",
				code, sc.color, sx, sy,
				gfx.ColorBase()+sc.color*gfx.Granularity()+int(pix))
		}
	}
	if !found {
		title += fmt.Sprintf(" %dx%d COLOR %X/%X",
			gfx.Width(), gfx.Height(), sc.color, sc.colorCount)
	}

	v.drawBoxWithTitle(box, title, chW, chH)
	v.drawColumnHeaders(box, box.y0+3.5*chH, xcells, cellW, chW, chH)
	v.drawRowHeaders(box, ycells, xcells, sc.offset, gfx.Elements(), cellH, chW, chH)

	v.gfxsetUpdateBitmap(xcells, ycells, gfx, sc)

	v.sink.Quad(cell.x0, cell.y0, cell.x1, cell.y1, v.cache.texture, Rot0)

	v.gfxsetHandleKeys(xcells, ycells)
}

// gfxsetUpdateBitmap repaints the cache when dirty, including the
// transparent gutters and any cells past the end of the set.
func (v *Viewer) gfxsetUpdateBitmap(xcells, ycells int, gfx GfxSet, sc *gfxSetCursor) {
	postW, postH := orientSize(gfx.Width(), gfx.Height(), sc.rotate)
	cellXPix := 1 + postW
	cellYPix := 1 + postH

	v.cache.ensure(cellXPix*xcells, cellYPix*ycells)
	if !v.cache.dirty {
		return
	}

	bmp := v.cache.bitmap
	for y := 0; y < ycells; y++ {
		// transparent background first: covers gutters and short rows
		bmp.FillRect(0, y*cellYPix, bmp.Width(), (y+1)*cellYPix, 0)
		if sc.offset+y*xcells >= gfx.Elements() {
			continue
		}
		for x := 0; x < xcells; x++ {
			index := sc.offset + y*xcells + x
			if index < gfx.Elements() {
				drawGfxItem(bmp, gfx, index, x*cellXPix, y*cellYPix, sc.color, sc.rotate, sc.palette)
			}
		}
	}

	v.cache.clean(gputypes.TextureFormatRGBA8Unorm)
}

// drawGfxItem composes one decoded element into dst at (dstx, dsty),
// applying the orientation transform and resolving every pixel through
// the set's associated palette. Shared verbatim by the live view and the
// export rasterizer so the two can never disagree.
func drawGfxItem(dst *Bitmap, gfx GfxSet, index, dstx, dsty, color int, rotate uint8, pal PaletteProvider) {
	if pal == nil {
		return
	}
	w, h := orientSize(gfx.Width(), gfx.Height(), rotate)
	base := gfx.ColorBase() + color*gfx.Granularity()
	src := gfx.PixelData(index)
	rowbytes := gfx.RowBytes()

	for y := 0; y < h; y++ {
		row := dst.Row(dsty + y)[dstx:]
		for x := 0; x < w; x++ {
			sx, sy := orientXY(x, y, gfx.Width(), gfx.Height(), rotate)
			row[x] = 0xff000000 | pal.Entry(base+int(src[sy*rowbytes+sx]))
		}
	}
}

// gfxsetHandleKeys applies one frame of graphics-set navigation against
// the fitted grid size. Every mutation marks the cache dirty.
func (v *Viewer) gfxsetHandleKeys(xcells, ycells int) {
	in := v.input

	// set selection walks sets within a device, then devices
	if in.Pressed(ActionPrevGroup) {
		if v.curSet > 0 {
			v.curSet--
		} else if v.curDev > 0 {
			v.curDev--
			v.curSet = len(v.devs[v.curDev].sets) - 1
		}
		v.resolveCurrent()
		v.cache.markDirty()
	}
	if in.Pressed(ActionNextGroup) {
		if v.curSet < len(v.devs[v.curDev].sets)-1 {
			v.curSet++
		} else if v.curDev < len(v.devs)-1 {
			v.curDev++
			v.curSet = 0
		}
		v.resolveCurrent()
		v.cache.markDirty()
	}

	info := &v.devs[v.curDev]
	sc := &info.sets[v.curSet]
	gfx := info.decoder.Set(v.curSet)

	// cells per line
	if in.Pressed(ActionZoomOut) {
		sc.columns = xcells - 1
		v.cache.markDirty()
	}
	if in.Pressed(ActionZoomIn) {
		sc.columns = xcells + 1
		v.cache.markDirty()
	}
	if sc.columns < 2 {
		sc.columns = 2
		v.cache.markDirty()
	}
	if sc.columns > 128 {
		sc.columns = 128
		v.cache.markDirty()
	}

	if in.Pressed(ActionRotate) {
		sc.rotate = orientAdd(Rot90, sc.rotate)
		v.cache.markDirty()
	}

	// navigation within the cells
	if in.PressedRepeat(ActionUp, 4) {
		sc.offset -= xcells
		v.cache.markDirty()
	}
	if in.PressedRepeat(ActionDown, 4) {
		sc.offset += xcells
		v.cache.markDirty()
	}
	if in.PressedRepeat(ActionPageUp, 6) {
		sc.offset -= xcells * ycells
		v.cache.markDirty()
	}
	if in.PressedRepeat(ActionPageDown, 6) {
		sc.offset += xcells * ycells
		v.cache.markDirty()
	}
	if in.PressedRepeat(ActionHome, 4) {
		sc.offset = 0
		v.cache.markDirty()
	}
	if in.PressedRepeat(ActionEnd, 4) {
		sc.offset = gfx.Elements()
		v.cache.markDirty()
	}

	// keep the visible page inside the padded grid
	if sc.offset+xcells*ycells > ((gfx.Elements()+xcells-1)/xcells)*xcells {
		sc.offset = ((gfx.Elements()+xcells-1)/xcells)*xcells - xcells*ycells
		v.cache.markDirty()
	}
	if sc.offset < 0 {
		sc.offset = 0
		v.cache.markDirty()
	}

	// color selection
	if in.PressedRepeat(ActionLeft, 4) {
		sc.color--
		v.cache.markDirty()
	}
	if in.PressedRepeat(ActionRight, 4) {
		sc.color++
		v.cache.markDirty()
	}
	if sc.color >= sc.colorCount {
		sc.color = sc.colorCount - 1
		v.cache.markDirty()
	}
	if sc.color < 0 {
		sc.color = 0
		v.cache.markDirty()
	}

	if in.Pressed(ActionSnapshot) {
		v.save = true
	}
}

// resolveCurrent refreshes the active set's resolved palette reference
// after a selection change.
func (v *Viewer) resolveCurrent() {
	info := &v.devs[v.curDev]
	v.resolveSet(&info.sets[v.curSet], info.decoder.Set(v.curSet))
}
