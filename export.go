// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gfxview

import (
	"errors"
	"fmt"
	"io"

	"github.com/gogpu/gfxview/snap"
)

// ErrNoSnapshotter is returned by the export operations when the viewer
// was built without a Snapshotter.
var ErrNoSnapshotter = errors.New("gfxview: no snapshotter configured")

// Snapshotter opens uniquely named output files for exported images and
// dumps. snap.Writer is the standard implementation.
type Snapshotter interface {
	Create(base, ext string) (io.WriteCloser, error)
}

// ExportPalettes writes every palette provider, once per subset, as a
// text dump and an 8x8-swatch PNG. Failures on individual files are
// logged and the batch continues.
func (v *Viewer) ExportPalettes() error {
	if v.snap == nil {
		return ErrNoSnapshotter
	}
	if !v.started {
		v.Relevant()
	}

	log := Logger()
	for which := 0; which < 2; which++ {
		for i, pal := range v.palettes {
			if which == 1 && pal.IndirectEntries() == 0 {
				continue
			}

			total := pal.Entries()
			if which == 1 {
				total = pal.IndirectEntries()
			}

			paltype := ""
			if pal.IndirectEntries() > 0 {
				if which == 1 {
					paltype = "colors "
				} else {
					paltype = "pens "
				}
			}
			base := fmt.Sprintf("palette%d %s%d", i, paltype, total)

			colors := make([]uint32, total)
			for idx := range colors {
				if which == 1 {
					colors[idx] = pal.IndirectColor(idx)
				} else {
					colors[idx] = pal.Entry(idx)
				}
			}

			if err := v.exportPaletteText(base, colors); err != nil {
				log.Error("palette text export failed", "base", base, "error", err)
				continue
			}
			if err := v.exportPaletteImage(base, colors); err != nil {
				log.Error("palette image export failed", "base", base, "error", err)
				continue
			}
			log.Info("saved palette", "subset", paltype, "index", i+1, "of", len(v.palettes))
		}
	}
	return nil
}

func (v *Viewer) exportPaletteText(base string, colors []uint32) error {
	w, err := v.snap.Create(base, "txt")
	if err != nil {
		return err
	}
	err = snap.WritePaletteText(w, colors, v.pal.columns)
	if cerr := w.Close(); err == nil {
		err = cerr
	}
	return err
}

func (v *Viewer) exportPaletteImage(base string, colors []uint32) error {
	columns := v.pal.columns
	rows := (len(colors) + columns - 1) / columns

	// 8x8 pixels per swatch
	bmp := NewBitmap(columns*8, rows*8)
	for idx, pen := range colors {
		x0 := (idx % columns) * 8
		y0 := (idx / columns) * 8
		bmp.FillRect(x0, y0, x0+8, y0+8, 0xff000000|pen)
	}

	w, err := v.snap.Create(base, "png")
	if err != nil {
		return err
	}
	err = snap.EncodePNG(w, bmp.ToImage())
	if cerr := w.Close(); err == nil {
		err = cerr
	}
	return err
}

// ExportGfxSets writes every set of every decoder as one PNG per color,
// a 32-column grid of all elements. The number of colors written is
// capped at 32.
func (v *Viewer) ExportGfxSets() error {
	if v.snap == nil {
		return ErrNoSnapshotter
	}
	if !v.started {
		v.Relevant()
	}

	log := Logger()
	for d := range v.devs {
		dc := &v.devs[d]
		for s := 0; s < dc.decoder.SetCount(); s++ {
			gfx := dc.decoder.Set(s)
			sc := &dc.sets[s]
			if sc.palette == nil {
				continue
			}

			const xcells = 32
			ycells := (gfx.Elements() + xcells - 1) / xcells

			maxcolors := min(sc.colorCount, 32)

			for color := 0; color < maxcolors; color++ {
				bmp := v.gfxsetExportBitmap(gfx, sc, xcells, ycells, color)

				base := fmt.Sprintf("gfxset%d tiles %dx%d colors %d set %X",
					s, gfx.Width(), gfx.Height(), sc.colorCount, color)
				if err := v.exportBitmapPNG(base, bmp); err != nil {
					log.Error("gfxset export failed", "base", base, "error", err)
					continue
				}
				log.Info("saved gfxset", "device", d, "set", s+1,
					"of", dc.decoder.SetCount(), "color", color,
					"tiles", fmt.Sprintf("%dx%d", gfx.Width(), gfx.Height()),
					"elements", gfx.Elements())
			}
		}
	}
	return nil
}

// gfxsetExportBitmap rasterizes every element of a set at one color,
// packed with no gutters. Exports always start at element 0 regardless of
// the live scroll offset.
func (v *Viewer) gfxsetExportBitmap(gfx GfxSet, sc *gfxSetCursor, xcells, ycells, color int) *Bitmap {
	cellXPix, cellYPix := orientSize(gfx.Width(), gfx.Height(), sc.rotate)

	bmp := NewBitmap(cellXPix*xcells, cellYPix*ycells)
	for y := 0; y < ycells; y++ {
		for x := 0; x < xcells; x++ {
			index := y*xcells + x
			if index < gfx.Elements() {
				drawGfxItem(bmp, gfx, index, x*cellXPix, y*cellYPix, color, sc.rotate, sc.palette)
			}
		}
	}
	return bmp
}

func (v *Viewer) exportBitmapPNG(base string, bmp *Bitmap) error {
	w, err := v.snap.Create(base, "png")
	if err != nil {
		return err
	}
	err = snap.EncodePNG(w, bmp.ToImage())
	if cerr := w.Close(); err == nil {
		err = cerr
	}
	return err
}

// ExportTilemaps writes every tilemap layer's native indexed pixmap as a
// paletted PNG.
func (v *Viewer) ExportTilemaps() error {
	if v.snap == nil {
		return ErrNoSnapshotter
	}

	log := Logger()
	layers := v.machine.Tilemaps()
	for i, layer := range layers {
		mapW, mapH := orientSize(layer.Width(), layer.Height(), v.tile.rotate)

		base := fmt.Sprintf("tilemap_%d_of_%d_size_%dx%d", i, len(layers)-1, mapW, mapH)

		pal := layer.Palette()
		colors := make([]uint32, pal.Entries())
		for idx := range colors {
			colors[idx] = pal.Entry(idx)
		}
		pix, stride := layer.Pixmap()

		w, err := v.snap.Create(base, "png")
		if err != nil {
			log.Error("tilemap export failed", "base", base, "error", err)
			continue
		}
		err = snap.EncodePalettedPNG(w, pix, stride, layer.Width(), layer.Height(), colors)
		if cerr := w.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			log.Error("tilemap export failed", "base", base, "error", err)
			continue
		}
		log.Info("saved tilemap", "layer", i+1, "of", len(layers),
			"size", fmt.Sprintf("%dx%d", mapW, mapH))
	}
	return nil
}

// ExportAll runs all three export batches.
func (v *Viewer) ExportAll() error {
	if v.snap == nil {
		return ErrNoSnapshotter
	}
	return errors.Join(v.ExportPalettes(), v.ExportGfxSets(), v.ExportTilemaps())
}
