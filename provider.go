// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gfxview

// PaletteProvider exposes one color table of the host. Colors are packed
// 0xAARRGGBB. A provider may additionally carry an indirect table mapping
// logical pen indices to resolved colors; providers without one report
// zero indirect entries.
type PaletteProvider interface {
	// Name identifies the provider in titles and export file names.
	Name() string

	// Entries returns the number of direct color entries.
	Entries() int

	// Entry returns the raw color table entry at index i.
	Entry(i int) uint32

	// IndirectEntries returns the size of the indirect table, 0 if none.
	IndirectEntries() int

	// IndirectColor resolves indirect entry i to a color.
	IndirectColor(i int) uint32

	// PenIndirect returns the indirect index a direct pen maps through.
	PenIndirect(i int) int

	// RawEntry returns the backing register value for entry i when the
	// provider exposes its storage, for hover inspection. ok is false when
	// no register view exists.
	RawEntry(i int) (value uint32, ok bool)
}

// GfxSet is one decoded tile/sprite sheet: a run of equally sized indexed
// elements.
type GfxSet interface {
	// Width and Height are the dimensions of one element in pixels.
	Width() int
	Height() int

	// Elements is the number of decoded elements in the set.
	Elements() int

	// RowBytes is the stride of the decoded pixel data in bytes.
	RowBytes() int

	// PixelData returns the decoded indexed pixels of one element,
	// RowBytes apart per row. The slice is read-only and only valid until
	// the next host frame.
	PixelData(element int) []uint8

	// ColorBase is the first palette entry the set's pens start at.
	ColorBase() int

	// Granularity is the number of palette entries consumed per unit
	// color index.
	Granularity() int

	// Colors is the number of color combinations the set defines.
	Colors() int

	// Palette returns the set's embedded palette, or nil when the set
	// resolves through the machine's global palette.
	Palette() PaletteProvider
}

// GfxDecoder exposes the decoded graphics sets of one device.
type GfxDecoder interface {
	Name() string
	SetCount() int
	Set(i int) GfxSet
}

// TilemapLayer is one composited tilemap of the host.
type TilemapLayer interface {
	Name() string

	// Width and Height are the layer dimensions in pixels.
	Width() int
	Height() int

	// TileWidth, TileHeight, Cols and Rows describe the tile grid.
	TileWidth() int
	TileHeight() int
	Cols() int
	Rows() int

	// CellInfo reports the debug metadata of one cell: the decoder set it
	// samples, its tile code and its color index.
	CellInfo(col, row int) (setID, code, color int)

	// Pixmap returns the layer's composited color-indexed pixel buffer
	// and its stride in pixels.
	Pixmap() (pix []uint16, stride int)

	// Palette resolves the layer's indexed pixels to colors.
	Palette() PaletteProvider

	// RenderDebug composites the visible region into dst with the given
	// scroll offsets, drawing only tiles matching category (CategoryAll
	// renders everything).
	RenderDebug(dst *Bitmap, xoffs, yoffs, category int)
}

// Machine is the host system under inspection. All lookups are re-resolved
// through it whenever the active selection changes; the viewer never holds
// a provider reference across a selection change.
type Machine interface {
	// Name is the host's short name, used for export path templating.
	Name() string

	Palettes() []PaletteProvider
	GfxDecoders() []GfxDecoder
	Tilemaps() []TilemapLayer

	// Paused reports whether the simulation is halted. While unpaused the
	// viewer assumes content changes continuously and repaints each frame.
	Paused() bool
	Pause()
	Resume()

	// Popmessage shows a transient status message (zoom level, category
	// changes) outside the persistent panel title.
	Popmessage(format string, args ...any)
}
