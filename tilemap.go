// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gfxview

import (
	"fmt"

	"github.com/gogpu/gputypes"
)

// Category filter bounds. CategoryAll renders every tile category; the
// filter cycles through [0, CategoryMask] with CategoryAll as the
// sentinel state at both ends.
const (
	CategoryAll  = -1
	CategoryMask = 0x0f
)

// tilemapHandler lays out and draws one composited tilemap layer, then
// applies navigation input.
func (v *Viewer) tilemapHandler() {
	layers := v.machine.Tilemaps()
	layer := layers[v.tile.index]

	targW, targH := v.sink.TargetSize()

	// layer size as the viewer sees it, after rotation
	mapW, mapH := orientSize(layer.Width(), layer.Height(), v.tile.rotate)

	box, chW, chH := v.panelChrome()
	mapbox := box
	mapbox.x0 += 0.5 * chW
	mapbox.x1 -= 0.5 * chW
	mapbox.y0 += 0.5*chH + 1.5*chH
	mapbox.y1 -= 0.5 * chH

	mapboxW := int((mapbox.x1 - mapbox.x0) * float32(targW))
	mapboxH := int((mapbox.y1 - mapbox.y0) * float32(targH))

	// auto-fit picks the largest integer scale that fits both axes;
	// explicit zoom overrides it
	pixelscale := v.tile.zoom
	if pixelscale == 0 {
		maxX, maxY := 1, 1
		for mapW*(maxX+1) < mapboxW {
			maxX++
		}
		for mapH*(maxY+1) < mapboxH {
			maxY++
		}
		pixelscale = min(maxX, maxY)
	}

	mapboxW = min(mapboxW, mapW*pixelscale)
	mapboxH = min(mapboxH, mapH*pixelscale)

	// recenter the map box within the panel
	mapbox.x0 += 0.5 * ((mapbox.x1 - mapbox.x0) - float32(mapboxW)/float32(targW))
	mapbox.x1 = mapbox.x0 + float32(mapboxW)/float32(targW)
	mapbox.y0 += 0.5 * ((mapbox.y1 - mapbox.y0) - float32(mapboxH)/float32(targH))
	mapbox.y1 = mapbox.y0 + float32(mapboxH)/float32(targH)

	box.x0 = mapbox.x0 - 0.5*chW
	box.x1 = mapbox.x1 + 0.5*chW
	box.y0 = mapbox.y0 - 2.0*chH
	box.y1 = mapbox.y1 + 0.5*chH

	title := fmt.Sprintf("TILEMAP %d/%d", v.tile.index+1, len(layers))

	// pointer over a tile: map the screen pixel back through orientation,
	// zoom and pan to a cell and report its debug metadata
	if mx, my, ok := v.input.Pointer(); ok &&
		mapbox.x0 <= mx && mx < mapbox.x1 && mapbox.y0 <= my && my < mapbox.y1 {
		xpixel := int((mx - mapbox.x0) * float32(targW))
		ypixel := int((my - mapbox.y0) * float32(targH))
		if v.tile.rotate&FlipX != 0 {
			xpixel = (mapboxW - 1) - xpixel
		}
		if v.tile.rotate&FlipY != 0 {
			ypixel = (mapboxH - 1) - ypixel
		}
		if v.tile.rotate&SwapXY != 0 {
			xpixel, ypixel = ypixel, xpixel
		}
		col := ((xpixel/pixelscale + v.tile.xoffs) / layer.TileWidth()) % layer.Cols()
		row := ((ypixel/pixelscale + v.tile.yoffs) / layer.TileHeight()) % layer.Rows()
		setID, code, color := layer.CellInfo(col, row)
		title += fmt.Sprintf(" @ %d,%d = GFX%d #%X:%X",
			col*layer.TileWidth(), row*layer.TileHeight(), setID, code, color)
	} else {
		title += fmt.Sprintf(" %dx%d OFFS %d,%d",
			layer.Width(), layer.Height(), v.tile.xoffs, v.tile.yoffs)
	}

	v.drawBoxWithTitle(box, title, chW, chH)

	v.tilemapUpdateBitmap(layer, mapboxW/pixelscale, mapboxH/pixelscale)

	// the quad applies the orientation at sampling time
	v.sink.Quad(mapbox.x0, mapbox.y0, mapbox.x1, mapbox.y1, v.cache.texture, v.tile.rotate)

	v.tilemapHandleKeys()
}

// tilemapUpdateBitmap repaints the visible region of the layer into the
// cache when dirty. width and height are the visible source pixels, still
// in rotated space.
func (v *Viewer) tilemapUpdateBitmap(layer TilemapLayer, width, height int) {
	// the bitmap lives in the layer's own space; undo the rotation swap
	if v.tile.rotate&SwapXY != 0 {
		width, height = height, width
	}

	v.cache.ensure(width, height)
	if !v.cache.dirty {
		return
	}

	v.cache.bitmap.Fill(0)
	layer.RenderDebug(v.cache.bitmap, v.tile.xoffs, v.tile.yoffs, v.tile.category)

	v.cache.clean(gputypes.TextureFormatRGBA8Unorm)
}

// tilemapHandleKeys applies one frame of tilemap navigation. Pan offsets
// wrap modulo the layer's pixel dimensions; they are never clamped.
func (v *Viewer) tilemapHandleKeys() {
	in := v.input
	layers := v.machine.Tilemaps()

	// layer selection
	if in.Pressed(ActionPrevGroup) && v.tile.index > 0 {
		v.tile.index--
		v.cache.markDirty()
	}
	if in.Pressed(ActionNextGroup) && v.tile.index < len(layers)-1 {
		v.tile.index++
		v.cache.markDirty()
	}

	layer := layers[v.tile.index]
	mapW := layer.Width()
	mapH := layer.Height()

	// zoom, with a transient status report
	if in.Pressed(ActionZoomOut) && v.tile.zoom > 0 {
		v.tile.zoom--
		v.cache.markDirty()
		if v.tile.zoom != 0 {
			v.machine.Popmessage("Zoom = %d", v.tile.zoom)
		} else {
			v.machine.Popmessage("Zoom Auto")
		}
	}
	if in.Pressed(ActionZoomIn) && v.tile.zoom < 8 {
		v.tile.zoom++
		v.cache.markDirty()
		v.machine.Popmessage("Zoom = %d", v.tile.zoom)
	}

	if in.Pressed(ActionRotate) {
		v.tile.rotate = orientAdd(Rot90, v.tile.rotate)
		v.cache.markDirty()
	}

	// return to the origin
	if in.Pressed(ActionHome) {
		v.tile.xoffs = 0
		v.tile.yoffs = 0
		v.cache.markDirty()
	}

	// category filter, cycling through the sentinel at both ends
	if in.Pressed(ActionPageUp) && v.tile.category != CategoryAll {
		if v.tile.category > 0 {
			v.tile.category--
			v.machine.Popmessage("Category = %d", v.tile.category)
		} else {
			v.tile.category = CategoryAll
			v.machine.Popmessage("Category All")
		}
		v.cache.markDirty()
	}
	if in.Pressed(ActionPageDown) && v.tile.category < CategoryMask {
		if v.tile.category == CategoryAll {
			v.tile.category = 0
		} else {
			v.tile.category++
		}
		v.cache.markDirty()
		v.machine.Popmessage("Category = %d", v.tile.category)
	}

	// directional pan, taking orientation into account; each held
	// direction applies its own step
	step := 8
	if in.FineStep() {
		step = 1
	}
	if in.CoarseStep() {
		step = 64
	}
	if in.PressedRepeat(ActionUp, 4) {
		v.panBy(0, -step)
	}
	if in.PressedRepeat(ActionDown, 4) {
		v.panBy(0, step)
	}
	if in.PressedRepeat(ActionLeft, 6) {
		v.panBy(-step, 0)
	}
	if in.PressedRepeat(ActionRight, 6) {
		v.panBy(step, 0)
	}

	// wrap into the layer
	for v.tile.xoffs < 0 {
		v.tile.xoffs += mapW
	}
	for v.tile.xoffs >= mapW {
		v.tile.xoffs -= mapW
	}
	for v.tile.yoffs < 0 {
		v.tile.yoffs += mapH
	}
	for v.tile.yoffs >= mapH {
		v.tile.yoffs -= mapH
	}

	if in.Pressed(ActionSnapshot) {
		v.save = true
	}
}

// panBy applies a screen-space pan delta to the layer-space offsets:
// flips negate the delta and a swap routes it to the other axis.
func (v *Viewer) panBy(dx, dy int) {
	if v.tile.rotate&FlipX != 0 {
		dx = -dx
	}
	if v.tile.rotate&FlipY != 0 {
		dy = -dy
	}
	if v.tile.rotate&SwapXY != 0 {
		dx, dy = dy, dx
	}
	v.tile.xoffs += dx
	v.tile.yoffs += dy
	v.cache.markDirty()
}
