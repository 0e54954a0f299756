// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Command gfxview-export slices an ordinary image into a synthetic
// tile machine and runs the graphics viewer's export engine over it,
// producing palette, tile sheet and tilemap dumps.
package main

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/ericpauley/go-quantize/quantize"
	"github.com/urfave/cli/v2"

	"github.com/gogpu/gfxview"
	"github.com/gogpu/gfxview/snap"
)

func main() {
	app := cli.NewApp()

	app.Name = "gfxview-export"
	app.Usage = "export palette, tile and tilemap views of an image"
	app.Version = "1.0.0"

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:     "in",
			Usage:    "input image (png, gif or jpeg)",
			Required: true,
		},
		&cli.StringFlag{
			Name:  "out",
			Value: ".",
			Usage: "output directory",
		},
		&cli.IntFlag{
			Name:  "tile",
			Value: 8,
			Usage: "tile size in pixels",
		},
		&cli.BoolFlag{
			Name:  "verbose",
			Usage: "increase verbosity",
		},
	}

	app.Action = func(c *cli.Context) error {
		if c.Bool("verbose") {
			gfxview.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
		}

		m, err := loadMachine(c.String("in"), c.Int("tile"))
		if err != nil {
			return cli.NewExitError(err, 1)
		}

		v := gfxview.NewViewer(m, gfxview.WithSnapshotter(&snap.Writer{
			Root:    c.String("out"),
			Machine: m.Name(),
		}))
		defer v.Shutdown()

		if err := v.ExportAll(); err != nil {
			return cli.NewExitError(err, 1)
		}
		return nil
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// loadMachine decodes and quantizes the input image, slicing it into a
// tile grid the viewer can inspect.
func loadMachine(path string, tile int) (*imageMachine, error) {
	if tile < 1 || tile > 64 {
		return nil, fmt.Errorf("tile size %d out of range", tile)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	// quantize to an indexed image
	q := quantize.MedianCutQuantizer{}
	pm := image.NewPaletted(src.Bounds(), q.Quantize(make(color.Palette, 0, 256), src))
	draw.Draw(pm, pm.Rect, src, pm.Rect.Min, draw.Src)

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return newImageMachine(name, pm, tile), nil
}

// imageMachine is a synthetic host built from a single indexed image:
// one palette, one decoder with one tile set, one tilemap laying the
// tiles back out in their original positions.
type imageMachine struct {
	name    string
	palette *imagePalette
	set     *imageGfxSet
	tilemap *imageTilemap
	paused  bool
}

func newImageMachine(name string, pm *image.Paletted, tile int) *imageMachine {
	colors := make([]uint32, len(pm.Palette))
	for i, c := range pm.Palette {
		r, g, b, a := c.RGBA()
		colors[i] = (a>>8)<<24 | (r>>8)<<16 | (g>>8)<<8 | b>>8
	}
	pal := &imagePalette{name: name, colors: colors}

	cols := (pm.Rect.Dx() + tile - 1) / tile
	rows := (pm.Rect.Dy() + tile - 1) / tile

	// slice the image into cols*rows tiles, top-left to bottom-right;
	// edge tiles pad with pen 0
	tiles := make([][]uint8, cols*rows)
	for ty := 0; ty < rows; ty++ {
		for tx := 0; tx < cols; tx++ {
			data := make([]uint8, tile*tile)
			for y := 0; y < tile; y++ {
				for x := 0; x < tile; x++ {
					px := pm.Rect.Min.X + tx*tile + x
					py := pm.Rect.Min.Y + ty*tile + y
					if px < pm.Rect.Max.X && py < pm.Rect.Max.Y {
						data[y*tile+x] = pm.ColorIndexAt(px, py)
					}
				}
			}
			tiles[ty*cols+tx] = data
		}
	}
	set := &imageGfxSet{name: name, tile: tile, tiles: tiles, palette: pal}

	// the tilemap's pixmap is the whole padded grid re-read from the tiles
	mapW := cols * tile
	mapH := rows * tile
	pix := make([]uint16, mapW*mapH)
	for ty := 0; ty < rows; ty++ {
		for tx := 0; tx < cols; tx++ {
			data := tiles[ty*cols+tx]
			for y := 0; y < tile; y++ {
				for x := 0; x < tile; x++ {
					pix[(ty*tile+y)*mapW+tx*tile+x] = uint16(data[y*tile+x])
				}
			}
		}
	}
	tm := &imageTilemap{
		name: name, tile: tile, cols: cols, rows: rows,
		pix: pix, palette: pal,
	}

	return &imageMachine{name: name, palette: pal, set: set, tilemap: tm, paused: true}
}

func (m *imageMachine) Name() string { return m.name }
func (m *imageMachine) Palettes() []gfxview.PaletteProvider {
	return []gfxview.PaletteProvider{m.palette}
}
func (m *imageMachine) GfxDecoders() []gfxview.GfxDecoder     { return []gfxview.GfxDecoder{m.set} }
func (m *imageMachine) Tilemaps() []gfxview.TilemapLayer      { return []gfxview.TilemapLayer{m.tilemap} }
func (m *imageMachine) Paused() bool                          { return m.paused }
func (m *imageMachine) Pause()                                { m.paused = true }
func (m *imageMachine) Resume()                               { m.paused = false }
func (m *imageMachine) Popmessage(format string, args ...any) { log.Printf(format, args...) }

type imagePalette struct {
	name   string
	colors []uint32
}

func (p *imagePalette) Name() string                { return p.name }
func (p *imagePalette) Entries() int                { return len(p.colors) }
func (p *imagePalette) Entry(i int) uint32          { return p.colors[i] }
func (p *imagePalette) IndirectEntries() int        { return 0 }
func (p *imagePalette) IndirectColor(int) uint32    { return 0 }
func (p *imagePalette) PenIndirect(int) int         { return 0 }
func (p *imagePalette) RawEntry(int) (uint32, bool) { return 0, false }

// imageGfxSet is its own single-set decoder.
type imageGfxSet struct {
	name    string
	tile    int
	tiles   [][]uint8
	palette *imagePalette
}

func (s *imageGfxSet) Name() string           { return s.name }
func (s *imageGfxSet) SetCount() int          { return 1 }
func (s *imageGfxSet) Set(int) gfxview.GfxSet { return s }

func (s *imageGfxSet) Width() int  { return s.tile }
func (s *imageGfxSet) Height() int { return s.tile }
func (s *imageGfxSet) Elements() int {
	return len(s.tiles)
}
func (s *imageGfxSet) RowBytes() int                 { return s.tile }
func (s *imageGfxSet) PixelData(element int) []uint8 { return s.tiles[element] }
func (s *imageGfxSet) ColorBase() int                { return 0 }
func (s *imageGfxSet) Granularity() int              { return len(s.palette.colors) }
func (s *imageGfxSet) Colors() int                   { return 0 }
func (s *imageGfxSet) Palette() gfxview.PaletteProvider {
	return nil
}

type imageTilemap struct {
	name       string
	tile       int
	cols, rows int
	pix        []uint16
	palette    *imagePalette
}

func (t *imageTilemap) Name() string    { return t.name }
func (t *imageTilemap) Width() int      { return t.cols * t.tile }
func (t *imageTilemap) Height() int     { return t.rows * t.tile }
func (t *imageTilemap) TileWidth() int  { return t.tile }
func (t *imageTilemap) TileHeight() int { return t.tile }
func (t *imageTilemap) Cols() int       { return t.cols }
func (t *imageTilemap) Rows() int       { return t.rows }

func (t *imageTilemap) CellInfo(col, row int) (setID, code, color int) {
	return 0, row*t.cols + col, 0
}

func (t *imageTilemap) Pixmap() ([]uint16, int) {
	return t.pix, t.Width()
}

func (t *imageTilemap) Palette() gfxview.PaletteProvider { return t.palette }

func (t *imageTilemap) RenderDebug(dst *gfxview.Bitmap, xoffs, yoffs, category int) {
	mapW := t.Width()
	mapH := t.Height()
	for y := 0; y < dst.Height(); y++ {
		sy := (y + yoffs) % mapH
		row := dst.Row(y)
		for x := range row {
			sx := (x + xoffs) % mapW
			row[x] = 0xff000000 | t.palette.colors[t.pix[sy*mapW+sx]]
		}
	}
}
