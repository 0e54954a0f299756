// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gfxview

import "fmt"

// Mode selects which viewer is active.
type Mode uint8

const (
	ModePalette Mode = iota
	ModeGfxSet
	ModeTilemap

	modeCount = 3
)

// Result is the tri-state outcome of one Frame call.
type Result uint8

const (
	// Continue means the overlay stays up; the host should suppress its
	// own rendering and call Frame again next frame.
	Continue Result = iota

	// Cancel means the overlay is done; the host resumes normal
	// rendering.
	Cancel
)

// paletteCursor is the palette viewer's navigation state.
type paletteCursor struct {
	dev     int // which palette provider is visible
	which   int // 0 = direct pens, 1 = indirect colors
	columns int // grid is columns × columns
	offset  int // index of the top-left visible entry
}

// gfxSetCursor is the per-set navigation state of the graphics-set
// viewer. palette and colorCount are resolved references, recomputed
// whenever the active selection changes.
type gfxSetCursor struct {
	rotate     uint8
	columns    int
	offset     int
	color      int
	colorCount int
	palette    PaletteProvider
}

// gfxDeviceCursor carries one decoder and the cursors of its sets.
type gfxDeviceCursor struct {
	decoder GfxDecoder
	sets    []gfxSetCursor
}

// tilemapCursor is the tilemap viewer's navigation state. Offsets wrap
// modulo the layer's pixel dimensions; zoom 0 means auto-fit.
type tilemapCursor struct {
	index    int
	xoffs    int
	yoffs    int
	zoom     int
	rotate   uint8
	category int
}

// bounds is an axis-aligned rectangle in normalized panel coordinates.
type bounds struct {
	x0, y0, x1, y1 float32
}

// Viewer is the graphics viewer: mode controller, navigation state, and
// the shared bitmap cache. Construct one with NewViewer, drive it with
// Frame once per rendered frame, and release it with Shutdown.
//
// Viewer is not safe for concurrent use; everything happens synchronously
// inside Frame.
type Viewer struct {
	machine Machine
	sink    DrawSink
	font    FontMetrics
	input   InputSource
	snap    Snapshotter

	mode          Mode
	save          bool
	started       bool
	pausedHere    bool
	background    uint32
	defaultRotate uint8

	cache bitmapCache

	palettes []PaletteProvider
	pal      paletteCursor

	devs   []gfxDeviceCursor
	curDev int
	curSet int

	tile tilemapCursor
}

// NewViewer creates a viewer over the given machine. All cursors start at
// their defaults, with every rotation seeded from the WithOrientation
// option.
func NewViewer(m Machine, opts ...Option) *Viewer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	v := &Viewer{
		machine:    m,
		sink:       o.sink,
		font:       o.font,
		input:      o.input,
		snap:       o.snap,
		background: o.background,
		pal: paletteCursor{
			columns: 16,
		},
		tile: tilemapCursor{
			zoom:     0,
			rotate:   o.orientation,
			category: CategoryAll,
		},
	}
	v.cache.provider = o.device
	v.defaultRotate = o.orientation
	return v
}

// Relevant reports whether there is anything to show: at least one
// palette, one decoded graphics set, or one tilemap layer. The device
// lists are counted lazily on first call, since hosts may create or
// modify graphics sets during their own startup.
func (v *Viewer) Relevant() bool {
	if !v.started {
		v.resolve()
	}
	return len(v.palettes) > 0 || len(v.devs) > 0 || len(v.machine.Tilemaps()) > 0
}

// Frame handles input and draws the active view. It returns Continue
// while the overlay should stay up and Cancel when it is done (including
// the degenerate case of a machine with nothing to show).
func (v *Viewer) Frame() Result {
	if !v.Relevant() {
		return v.cancel()
	}

	// unpaused content is assumed to change every frame
	if !v.machine.Paused() {
		v.cache.markDirty()
	}

	// pick the first mode, starting at the current one, that has content
dispatch:
	for {
		switch v.mode {
		case ModePalette:
			if len(v.palettes) > 0 {
				if v.save {
					v.save = false
					if err := v.ExportPalettes(); err != nil {
						Logger().Error("gfxview: palette export failed", "err", err)
					}
				}
				v.paletteHandler()
				break dispatch
			}
			v.mode = ModeGfxSet
		case ModeGfxSet:
			if len(v.devs) > 0 {
				if v.save {
					v.save = false
					if err := v.ExportGfxSets(); err != nil {
						Logger().Error("gfxview: gfxset export failed", "err", err)
					}
				}
				v.gfxsetHandler()
				break dispatch
			}
			v.mode = ModeTilemap
		case ModeTilemap:
			if len(v.machine.Tilemaps()) > 0 {
				if v.save {
					v.save = false
					if err := v.ExportTilemaps(); err != nil {
						Logger().Error("gfxview: tilemap export failed", "err", err)
					}
				}
				v.tilemapHandler()
				break dispatch
			}
			v.mode = ModePalette
		}
	}

	if v.input.Pressed(ActionSelect) {
		v.mode = (v.mode + 1) % modeCount
		v.cache.markDirty()
	}

	if v.input.Pressed(ActionPause) {
		if v.machine.Paused() {
			v.machine.Resume()
			v.pausedHere = false
		} else {
			v.machine.Pause()
			v.pausedHere = true
		}
	}

	if v.input.Pressed(ActionCancel) || v.input.Pressed(ActionToggle) {
		return v.cancel()
	}

	return Continue
}

// Shutdown releases the cached bitmap/texture pair. The viewer must not
// be used afterwards.
func (v *Viewer) Shutdown() {
	v.cache.release()
}

// cancel closes the overlay, resuming the host if the pause was initiated
// from inside the viewer.
func (v *Viewer) cancel() Result {
	if v.pausedHere && v.machine.Paused() {
		v.machine.Resume()
	}
	v.pausedHere = false
	v.cache.markDirty()
	return Cancel
}

// resolve counts the machine's palette, graphics and tilemap resources
// and builds the per-device cursors. Sets default to 16 columns and the
// display orientation.
func (v *Viewer) resolve() {
	v.palettes = v.machine.Palettes()

	v.devs = v.devs[:0]
	for _, dec := range v.machine.GfxDecoders() {
		n := dec.SetCount()
		if n == 0 {
			continue
		}
		dc := gfxDeviceCursor{
			decoder: dec,
			sets:    make([]gfxSetCursor, n),
		}
		for i := range dc.sets {
			dc.sets[i] = gfxSetCursor{
				rotate:  v.defaultRotate,
				columns: 16,
			}
			v.resolveSet(&dc.sets[i], dec.Set(i))
		}
		v.devs = append(v.devs, dc)
	}

	v.started = true
}

// resolveSet recomputes a set cursor's associated palette and color range.
// Called at startup and again whenever the active device/set changes, so
// the non-owning reference never survives a provider-list mutation.
func (v *Viewer) resolveSet(sc *gfxSetCursor, set GfxSet) {
	if p := set.Palette(); p != nil {
		sc.palette = p
		sc.colorCount = set.Colors()
	} else if len(v.palettes) > 0 {
		sc.palette = v.palettes[0]
		sc.colorCount = 0
		if g := set.Granularity(); g > 0 {
			sc.colorCount = sc.palette.Entries() / g
		}
	}
	if sc.colorCount < 1 {
		sc.colorCount = 1
	}
	if sc.color >= sc.colorCount {
		sc.color = sc.colorCount - 1
	}
}

// panelChrome computes the outer box bounds: the full panel inset by half
// a character on every side.
func (v *Viewer) panelChrome() (box bounds, chW, chH float32) {
	chH = v.font.LineHeight()
	chW = v.font.CharWidth('0')
	box = bounds{
		x0: 0.5 * chW,
		y0: 0.5 * chH,
		x1: 1 - 0.5*chW,
		y1: 1 - 0.5*chH,
	}
	return box, chW, chH
}

// drawBoxWithTitle draws the outer panel box, widened when the title
// would overflow it, and the centered title text.
func (v *Viewer) drawBoxWithTitle(box bounds, title string, chW, chH float32) {
	titleWidth := v.font.StringWidth(title)
	var adjust float32
	if box.x1-box.x0 < titleWidth+chW {
		adjust = box.x0 - (0.5 - 0.5*(titleWidth+chW))
	}
	v.sink.OutlinedBox(box.x0-adjust, box.y0, box.x1+adjust, box.y1, v.background)
	drawString(v.sink, v.font, 0.5-0.5*titleWidth, box.y0+0.5*chH, title, colorWhite)
}

// drawColumnHeaders draws the hexadecimal column header row above the
// cell box. When cells are narrower than a glyph, headers are thinned and
// a point marks which column each one refers to.
func (v *Viewer) drawColumnHeaders(box bounds, cellTop float32, columns int, cellW, chW, chH float32) {
	skip := int(chW / cellW)
	for x := 0; x < columns; x += 1 + skip {
		x0 := box.x0 + 6.0*chW + float32(x)*cellW
		y0 := box.y0 + 2.0*chH
		v.sink.Char(x0+0.5*(cellW-chW), y0, chH, rune(hexDigits[x&0xf]), colorWhite)
		if skip != 0 {
			v.sink.Point(x0+0.5*cellW, 0.5*(y0+chH+cellTop), lineWidth, colorWhite)
		}
	}
}

// drawRowHeaders draws the hexadecimal row header column, skipping rows
// with no data and thinning like the column headers when cells are
// shorter than a line.
func (v *Viewer) drawRowHeaders(box bounds, rows, columns, offset, total int, cellH, chW, chH float32) {
	skip := int(chH / cellH)
	for y := 0; y < rows; y += 1 + skip {
		if offset+y*columns >= total {
			continue
		}
		x0 := box.x0 + 5.5*chW
		y0 := box.y0 + 3.5*chH + float32(y)*cellH
		if skip != 0 {
			v.sink.Point(0.5*(x0+box.x0+6.0*chW), y0+0.5*cellH, lineWidth, colorWhite)
		}
		buf := fmt.Sprintf("%5X", offset+y*columns)
		for i := len(buf) - 1; i >= 0; i-- {
			x0 -= v.font.CharWidth(rune(buf[i]))
			v.sink.Char(x0, y0+0.5*(cellH-chH), chH, rune(buf[i]), colorWhite)
		}
	}
}
