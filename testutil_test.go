// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gfxview

import (
	"bytes"
	"fmt"
	"io"
)

// fakePalette is an in-memory PaletteProvider.
type fakePalette struct {
	name     string
	colors   []uint32
	indirect []uint32
	penmap   []int
	raw      []uint32
}

func newFakePalette(name string, n int) *fakePalette {
	p := &fakePalette{name: name, colors: make([]uint32, n)}
	for i := range p.colors {
		p.colors[i] = uint32(i) * 0x010101
	}
	return p
}

func (p *fakePalette) Name() string         { return p.name }
func (p *fakePalette) Entries() int         { return len(p.colors) }
func (p *fakePalette) Entry(i int) uint32   { return p.colors[i] }
func (p *fakePalette) IndirectEntries() int { return len(p.indirect) }
func (p *fakePalette) IndirectColor(i int) uint32 {
	return p.indirect[i]
}
func (p *fakePalette) PenIndirect(i int) int {
	if p.penmap == nil {
		return 0
	}
	return p.penmap[i]
}
func (p *fakePalette) RawEntry(i int) (uint32, bool) {
	if p.raw == nil {
		return 0, false
	}
	return p.raw[i], true
}

// fakeGfxSet decodes nothing; the pixel data is handed in up front.
type fakeGfxSet struct {
	w, h        int
	data        [][]uint8
	colorBase   int
	granularity int
	colors      int
	palette     PaletteProvider
}

// newFakeGfxSet builds a set whose element pixels are pen (e+x+y) modulo
// granularity, so every element is distinguishable.
func newFakeGfxSet(w, h, elements, granularity int) *fakeGfxSet {
	s := &fakeGfxSet{w: w, h: h, granularity: granularity}
	s.data = make([][]uint8, elements)
	for e := range s.data {
		d := make([]uint8, w*h)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				d[y*w+x] = uint8((e + x + y) % granularity)
			}
		}
		s.data[e] = d
	}
	return s
}

func (s *fakeGfxSet) Width() int               { return s.w }
func (s *fakeGfxSet) Height() int              { return s.h }
func (s *fakeGfxSet) Elements() int            { return len(s.data) }
func (s *fakeGfxSet) RowBytes() int            { return s.w }
func (s *fakeGfxSet) PixelData(e int) []uint8  { return s.data[e] }
func (s *fakeGfxSet) ColorBase() int           { return s.colorBase }
func (s *fakeGfxSet) Granularity() int         { return s.granularity }
func (s *fakeGfxSet) Colors() int              { return s.colors }
func (s *fakeGfxSet) Palette() PaletteProvider { return s.palette }

type fakeDecoder struct {
	name string
	sets []GfxSet
}

func (d *fakeDecoder) Name() string     { return d.name }
func (d *fakeDecoder) SetCount() int    { return len(d.sets) }
func (d *fakeDecoder) Set(i int) GfxSet { return d.sets[i] }

// fakeTilemap composes its fixed pixmap with toroidal wrap and records
// every RenderDebug call.
type fakeTilemap struct {
	name    string
	w, h    int
	tw, th  int
	pix     []uint16
	pal     PaletteProvider
	cellSet int
	renders []renderCall
}

type renderCall struct {
	width, height          int
	xoffs, yoffs, category int
}

func newFakeTilemap(name string, w, h, tile int, pal PaletteProvider) *fakeTilemap {
	t := &fakeTilemap{name: name, w: w, h: h, tw: tile, th: tile, pal: pal}
	t.pix = make([]uint16, w*h)
	for i := range t.pix {
		t.pix[i] = uint16(i % pal.Entries())
	}
	return t
}

func (t *fakeTilemap) Name() string    { return t.name }
func (t *fakeTilemap) Width() int      { return t.w }
func (t *fakeTilemap) Height() int     { return t.h }
func (t *fakeTilemap) TileWidth() int  { return t.tw }
func (t *fakeTilemap) TileHeight() int { return t.th }
func (t *fakeTilemap) Cols() int       { return t.w / t.tw }
func (t *fakeTilemap) Rows() int       { return t.h / t.th }

func (t *fakeTilemap) CellInfo(col, row int) (int, int, int) {
	return t.cellSet, row*t.Cols() + col, 0
}

func (t *fakeTilemap) Pixmap() ([]uint16, int) { return t.pix, t.w }

func (t *fakeTilemap) Palette() PaletteProvider { return t.pal }

func (t *fakeTilemap) RenderDebug(dst *Bitmap, xoffs, yoffs, category int) {
	t.renders = append(t.renders, renderCall{
		width: dst.Width(), height: dst.Height(),
		xoffs: xoffs, yoffs: yoffs, category: category,
	})
	for y := 0; y < dst.Height(); y++ {
		row := dst.Row(y)
		sy := ((y+yoffs)%t.h + t.h) % t.h
		for x := range row {
			sx := ((x+xoffs)%t.w + t.w) % t.w
			row[x] = 0xff000000 | t.pal.Entry(int(t.pix[sy*t.w+sx]))
		}
	}
}

// fakeMachine wires the fakes together and records popmessages.
type fakeMachine struct {
	name   string
	pals   []PaletteProvider
	decs   []GfxDecoder
	maps   []TilemapLayer
	paused bool
	msgs   []string
}

func (m *fakeMachine) Name() string                { return m.name }
func (m *fakeMachine) Palettes() []PaletteProvider { return m.pals }
func (m *fakeMachine) GfxDecoders() []GfxDecoder   { return m.decs }
func (m *fakeMachine) Tilemaps() []TilemapLayer    { return m.maps }
func (m *fakeMachine) Paused() bool                { return m.paused }
func (m *fakeMachine) Pause()                      { m.paused = true }
func (m *fakeMachine) Resume()                     { m.paused = false }
func (m *fakeMachine) Popmessage(format string, args ...any) {
	m.msgs = append(m.msgs, fmt.Sprintf(format, args...))
}

// scriptInput reports exactly the actions armed for the current frame.
// Edge-triggered and repeat queries share the same state.
type scriptInput struct {
	keys         map[Action]bool
	fine, coarse bool
	px, py       float32
	pin          bool
}

func newScriptInput() *scriptInput {
	return &scriptInput{keys: make(map[Action]bool)}
}

func (s *scriptInput) press(actions ...Action) {
	for _, a := range actions {
		s.keys[a] = true
	}
}

func (s *scriptInput) reset() {
	clear(s.keys)
	s.fine = false
	s.coarse = false
	s.pin = false
}

func (s *scriptInput) Pressed(a Action) bool              { return s.keys[a] }
func (s *scriptInput) PressedRepeat(a Action, _ int) bool { return s.keys[a] }
func (s *scriptInput) FineStep() bool                     { return s.fine }
func (s *scriptInput) CoarseStep() bool                   { return s.coarse }
func (s *scriptInput) Pointer() (float32, float32, bool) {
	return s.px, s.py, s.pin
}

// recordSink keeps the quads drawn through it for geometry assertions.
type recordSink struct {
	w, h  int
	quads []quadCall
}

type quadCall struct {
	x0, y0, x1, y1 float32
	tex            *Texture
	orientation    uint8
}

func (s *recordSink) TargetSize() (int, int) {
	if s.w == 0 {
		return 1280, 1024
	}
	return s.w, s.h
}
func (s *recordSink) OutlinedBox(x0, y0, x1, y1 float32, argb uint32) {}
func (s *recordSink) Rect(x0, y0, x1, y1 float32, argb uint32)        {}
func (s *recordSink) Char(x, y, h float32, r rune, argb uint32)       {}
func (s *recordSink) Point(x, y, sz float32, argb uint32)             {}
func (s *recordSink) Quad(x0, y0, x1, y1 float32, tex *Texture, o uint8) {
	s.quads = append(s.quads, quadCall{x0, y0, x1, y1, tex, o})
}

// fixedFont mirrors the built-in headless metrics so layout math in
// tests stays hand-computable.
type fixedFont struct{}

func (fixedFont) LineHeight() float32    { return 0.04 }
func (fixedFont) CharWidth(rune) float32 { return 0.02 }
func (fixedFont) StringWidth(s string) float32 {
	return 0.02 * float32(len([]rune(s)))
}

// memSnapshotter collects exports in memory and can be told to fail
// specific base names.
type memSnapshotter struct {
	files map[string]*bytes.Buffer
	fail  map[string]bool
}

func newMemSnapshotter() *memSnapshotter {
	return &memSnapshotter{files: make(map[string]*bytes.Buffer)}
}

func (s *memSnapshotter) Create(base, ext string) (io.WriteCloser, error) {
	name := base + "." + ext
	if s.fail[name] {
		return nil, fmt.Errorf("refused to create %s", name)
	}
	buf := &bytes.Buffer{}
	s.files[name] = buf
	return nopCloser{buf}, nil
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }
