// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gfxview

import "testing"

func tilemapOnlyViewer(maps ...TilemapLayer) (*Viewer, *scriptInput, *fakeMachine, *recordSink) {
	m := &fakeMachine{name: "mapmach", paused: true, maps: maps}
	in := newScriptInput()
	sink := &recordSink{}
	v := NewViewer(m, WithSink(sink), WithFont(fixedFont{}), WithInput(in))
	v.mode = ModeTilemap
	return v, in, m, sink
}

// TestTilemapAutoZoom verifies the auto scale is the largest integer
// scale that fits both axes: a 300x100 layer in the 1228x880 pixel map
// box of the test layout scales min(4, 8) = 4.
func TestTilemapAutoZoom(t *testing.T) {
	pal := newFakePalette("p", 16)
	tm := newFakeTilemap("bg", 300, 100, 10, pal)
	v, _, _, sink := tilemapOnlyViewer(tm)
	defer v.Shutdown()

	v.Frame()
	if len(tm.renders) != 1 {
		t.Fatalf("RenderDebug called %d times, want 1", len(tm.renders))
	}
	// at scale 4 the whole layer is visible: the source region is the
	// full 300x100
	r := tm.renders[0]
	if r.width != 300 || r.height != 100 {
		t.Errorf("rendered region %dx%d, want 300x100", r.width, r.height)
	}

	// the on-screen quad covers 1200 of 1280 target pixels
	if len(sink.quads) != 1 {
		t.Fatalf("drew %d quads, want 1", len(sink.quads))
	}
	q := sink.quads[0]
	if got, want := q.x1-q.x0, float32(1200)/1280; !close32(got, want) {
		t.Errorf("quad width = %v, want %v", got, want)
	}
	if got, want := q.y1-q.y0, float32(400)/1024; !close32(got, want) {
		t.Errorf("quad height = %v, want %v", got, want)
	}
}

func close32(a, b float32) bool {
	d := a - b
	return d < 1e-4 && d > -1e-4
}

// TestTilemapExplicitZoom verifies a fixed zoom crops the visible region
// to the map box.
func TestTilemapExplicitZoom(t *testing.T) {
	pal := newFakePalette("p", 16)
	tm := newFakeTilemap("bg", 512, 256, 8, pal)
	v, _, _, _ := tilemapOnlyViewer(tm)
	defer v.Shutdown()

	v.Relevant()
	v.tile.zoom = 8

	v.Frame()
	// map box is 1228x880 pixels; at 8x only 153x110 source pixels show
	r := tm.renders[len(tm.renders)-1]
	if r.width != 153 || r.height != 110 {
		t.Errorf("rendered region %dx%d, want 153x110", r.width, r.height)
	}
}

// TestTilemapZoomKeys verifies the zoom range, and the transient zoom
// messages including the auto sentinel.
func TestTilemapZoomKeys(t *testing.T) {
	pal := newFakePalette("p", 16)
	v, in, m, _ := tilemapOnlyViewer(newFakeTilemap("bg", 64, 64, 8, pal))
	defer v.Shutdown()

	in.press(ActionZoomIn)
	v.Frame()
	in.reset()
	if v.tile.zoom != 1 {
		t.Fatalf("zoom = %d, want 1", v.tile.zoom)
	}
	if len(m.msgs) == 0 || m.msgs[len(m.msgs)-1] != "Zoom = 1" {
		t.Errorf("messages = %v, want trailing \"Zoom = 1\"", m.msgs)
	}

	in.press(ActionZoomOut)
	v.Frame()
	in.reset()
	if v.tile.zoom != 0 {
		t.Fatalf("zoom = %d, want 0", v.tile.zoom)
	}
	if m.msgs[len(m.msgs)-1] != "Zoom Auto" {
		t.Errorf("messages = %v, want trailing \"Zoom Auto\"", m.msgs)
	}

	// zooming out of auto is a no-op
	n := len(m.msgs)
	in.press(ActionZoomOut)
	v.Frame()
	in.reset()
	if v.tile.zoom != 0 || len(m.msgs) != n {
		t.Error("zoom out below auto had an effect")
	}
}

// TestTilemapCategoryCycle verifies the category filter cycles through
// the all-categories sentinel at both ends and reaches the renderer.
func TestTilemapCategoryCycle(t *testing.T) {
	pal := newFakePalette("p", 16)
	tm := newFakeTilemap("bg", 64, 64, 8, pal)
	v, in, m, _ := tilemapOnlyViewer(tm)
	defer v.Shutdown()

	v.Frame()
	if got := tm.renders[len(tm.renders)-1].category; got != CategoryAll {
		t.Fatalf("initial category = %d, want CategoryAll", got)
	}

	in.press(ActionPageDown)
	v.Frame()
	in.reset()
	if v.tile.category != 0 {
		t.Fatalf("category = %d, want 0", v.tile.category)
	}
	if m.msgs[len(m.msgs)-1] != "Category = 0" {
		t.Errorf("messages = %v", m.msgs)
	}

	v.Frame()
	if got := tm.renders[len(tm.renders)-1].category; got != 0 {
		t.Errorf("renderer saw category %d, want 0", got)
	}

	in.press(ActionPageUp)
	v.Frame()
	in.reset()
	if v.tile.category != CategoryAll {
		t.Fatalf("category = %d, want CategoryAll", v.tile.category)
	}
	if m.msgs[len(m.msgs)-1] != "Category All" {
		t.Errorf("messages = %v", m.msgs)
	}

	// page up at the sentinel is a no-op
	in.press(ActionPageUp)
	v.Frame()
	in.reset()
	if v.tile.category != CategoryAll {
		t.Error("page up moved past the sentinel")
	}

	// the top category pins
	v.tile.category = CategoryMask
	in.press(ActionPageDown)
	v.Frame()
	in.reset()
	if v.tile.category != CategoryMask {
		t.Errorf("category = %d, want %d", v.tile.category, CategoryMask)
	}
}

// TestTilemapPanWrap verifies offsets wrap toroidally instead of
// clamping.
func TestTilemapPanWrap(t *testing.T) {
	pal := newFakePalette("p", 16)
	v, in, _, _ := tilemapOnlyViewer(newFakeTilemap("bg", 512, 256, 8, pal))
	defer v.Shutdown()

	in.press(ActionLeft)
	v.Frame()
	in.reset()
	if v.tile.xoffs != 504 {
		t.Errorf("xoffs = %d, want 504 (wrapped -8)", v.tile.xoffs)
	}

	in.press(ActionRight)
	in.coarse = true
	v.Frame()
	in.reset()
	if v.tile.xoffs != (504+64)%512 {
		t.Errorf("xoffs = %d, want %d", v.tile.xoffs, (504+64)%512)
	}

	in.press(ActionUp)
	in.fine = true
	v.Frame()
	in.reset()
	if v.tile.yoffs != 255 {
		t.Errorf("yoffs = %d, want 255 (wrapped -1)", v.tile.yoffs)
	}
}

// TestTilemapPanOrientation verifies a quarter turn reroutes screen pans
// to the other layer axis with the flip's sign.
func TestTilemapPanOrientation(t *testing.T) {
	pal := newFakePalette("p", 16)
	v, in, _, _ := tilemapOnlyViewer(newFakeTilemap("bg", 512, 256, 8, pal))
	defer v.Shutdown()

	in.press(ActionRotate)
	v.Frame()
	in.reset()
	if v.tile.rotate != Rot90 {
		t.Fatalf("rotate = %#02x, want Rot90", v.tile.rotate)
	}

	// Rot90 = SwapXY|FlipX: a leftward screen pan becomes a positive
	// y-axis pan of the layer
	in.press(ActionLeft)
	v.Frame()
	in.reset()
	if v.tile.xoffs != 0 || v.tile.yoffs != 8 {
		t.Errorf("offsets = %d,%d, want 0,8", v.tile.xoffs, v.tile.yoffs)
	}
}

// TestTilemapHome verifies home returns to the origin.
func TestTilemapHome(t *testing.T) {
	pal := newFakePalette("p", 16)
	v, in, _, _ := tilemapOnlyViewer(newFakeTilemap("bg", 64, 64, 8, pal))
	defer v.Shutdown()

	v.Relevant()
	v.tile.xoffs = 24
	v.tile.yoffs = 16

	in.press(ActionHome)
	v.Frame()
	in.reset()
	if v.tile.xoffs != 0 || v.tile.yoffs != 0 {
		t.Errorf("offsets = %d,%d, want 0,0", v.tile.xoffs, v.tile.yoffs)
	}
}

// TestTilemapLayerSwitch verifies prev/next group moves between layers
// and pins at the ends.
func TestTilemapLayerSwitch(t *testing.T) {
	pal := newFakePalette("p", 16)
	v, in, _, _ := tilemapOnlyViewer(
		newFakeTilemap("bg", 64, 64, 8, pal),
		newFakeTilemap("fg", 64, 64, 8, pal),
	)
	defer v.Shutdown()

	in.press(ActionNextGroup)
	v.Frame()
	in.reset()
	if v.tile.index != 1 {
		t.Fatalf("index = %d, want 1", v.tile.index)
	}

	in.press(ActionNextGroup)
	v.Frame()
	in.reset()
	if v.tile.index != 1 {
		t.Errorf("index walked past the last layer: %d", v.tile.index)
	}

	in.press(ActionPrevGroup)
	v.Frame()
	in.reset()
	if v.tile.index != 0 {
		t.Errorf("index = %d, want 0", v.tile.index)
	}
}

// TestTilemapSwapBitmapDims verifies the cache bitmap stays in layer
// space when the view is rotated: a swapped 128x64 layer still renders
// into a 128-wide bitmap.
func TestTilemapSwapBitmapDims(t *testing.T) {
	pal := newFakePalette("p", 16)
	tm := newFakeTilemap("bg", 128, 64, 8, pal)
	v, in, _, _ := tilemapOnlyViewer(tm)
	defer v.Shutdown()

	in.press(ActionRotate)
	v.Frame()
	in.reset()

	v.Frame()
	r := tm.renders[len(tm.renders)-1]
	if r.width != 128 || r.height != 64 {
		t.Errorf("rendered region %dx%d, want 128x64", r.width, r.height)
	}
}
