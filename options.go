// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gfxview

import "github.com/gogpu/gpucontext"

// Option configures a Viewer during creation.
// Use functional options to customize Viewer behavior.
//
// Example:
//
//	// Headless viewer, export only
//	v := gfxview.NewViewer(machine, gfxview.WithSnapshotter(w))
//
//	// Interactive viewer with GPU textures
//	v := gfxview.NewViewer(machine,
//	    gfxview.WithSink(sink),
//	    gfxview.WithInput(input),
//	    gfxview.WithDevice(provider),
//	)
type Option func(*viewerOptions)

// viewerOptions holds optional configuration for Viewer creation.
type viewerOptions struct {
	sink        DrawSink
	font        FontMetrics
	input       InputSource
	snap        Snapshotter
	device      gpucontext.DeviceProvider
	orientation uint8
	background  uint32
}

// defaultOptions returns the default viewer options.
func defaultOptions() viewerOptions {
	return viewerOptions{
		sink:       nopSink{},
		font:       nopFont{},
		input:      nopInput{},
		background: DefaultBackground,
	}
}

// WithSink sets the draw-primitive sink the viewer renders through.
// Without a sink the viewer is headless: Frame still runs navigation and
// cache logic, but nothing is presented.
func WithSink(s DrawSink) Option {
	return func(o *viewerOptions) {
		if s != nil {
			o.sink = s
		}
	}
}

// WithFont sets the font metric service used for panel layout.
func WithFont(f FontMetrics) Option {
	return func(o *viewerOptions) {
		if f != nil {
			o.font = f
		}
	}
}

// WithInput sets the per-frame input source. Without one, no action is
// ever reported pressed and the viewer only reacts to host state.
func WithInput(in InputSource) Option {
	return func(o *viewerOptions) {
		if in != nil {
			o.input = in
		}
	}
}

// WithSnapshotter sets the output-file factory used by batch export.
// Without one, export requests are ignored.
func WithSnapshotter(s Snapshotter) Option {
	return func(o *viewerOptions) {
		o.snap = s
	}
}

// WithDevice sets the GPU device provider used to back the cached texture.
// The viewer receives the device from the host, it does not create one.
// Without a provider the texture stays CPU-side (null-device behavior).
func WithDevice(p gpucontext.DeviceProvider) Option {
	return func(o *viewerOptions) {
		o.device = p
	}
}

// WithOrientation seeds every rotation cursor with the host display's
// native orientation so views start out upright on rotated displays.
func WithOrientation(flags uint8) Option {
	return func(o *viewerOptions) {
		o.orientation = flags & (FlipX | FlipY | SwapXY)
	}
}

// WithBackground sets the panel background color (packed 0xAARRGGBB).
func WithBackground(argb uint32) Option {
	return func(o *viewerOptions) {
		o.background = argb
	}
}
