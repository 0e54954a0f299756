// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package gfxview provides an in-process, frame-driven graphics debugging
// viewer for systems that own raw tile/sprite data, color palettes, and
// composited tilemaps.
//
// # Overview
//
// gfxview presents three cyclable views over the host's decoded visual
// resources: a palette viewer (grid of color swatches), a graphics-set
// viewer (auto-fitted grid of decoded tile/sprite cells), and a tilemap
// viewer (zoomable, pannable, toroidal view of one composited layer). All
// three share one dirty-tracked intermediate bitmap and its GPU texture so
// pixels are only recomposed when the visible region actually changes.
//
// The viewer is strictly read-only: it inspects and exports the host's
// resources but never modifies them.
//
// # Quick Start
//
//	v := gfxview.NewViewer(machine,
//	    gfxview.WithSink(sink),
//	    gfxview.WithFont(fontmetrics.Default(1280, 1024)),
//	    gfxview.WithInput(input),
//	)
//	defer v.Shutdown()
//
//	if !v.Relevant() {
//	    return // nothing to show
//	}
//	for v.Frame() == gfxview.Continue {
//	    // host presents the frame, polls input, loops
//	}
//
// # Collaborators
//
// The host supplies the data and the I/O surface through small interfaces:
//   - Machine: enumerates PaletteProvider, GfxDecoder, and TilemapLayer
//     resources and exposes pause/resume hooks
//   - DrawSink: immediate-mode panel primitives (box, rect, glyph, point,
//     textured quad) in normalized [0,1] panel coordinates
//   - FontMetrics: normalized character and string measurements
//   - InputSource: per-frame action polling with key-repeat support
//   - Snapshotter: numbered output files for batch export
//
// GPU texture upload goes through the gpucontext interfaces when a device
// provider is configured; without one the cached texture stays CPU-side and
// the sink draws from its bitmap directly.
//
// # Coordinate System
//
// Panel-space coordinates are normalized: (0,0) top-left, (1,1)
// bottom-right. Bitmap-space coordinates are integer pixels, origin
// top-left, Y down.
package gfxview
