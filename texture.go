// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gfxview

import (
	"errors"
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

// Texture errors.
var (
	// ErrNoBitmap is returned when uploading a texture with no bound bitmap.
	ErrNoBitmap = errors.New("gfxview: texture has no bound bitmap")

	// ErrNoCreator is returned when no gpucontext.TextureCreator is
	// available to upload through.
	ErrNoCreator = errors.New("gfxview: device provider does not implement gpucontext.TextureCreator")
)

// textureDestroyer is the interface for destroying GPU textures.
type textureDestroyer interface {
	Destroy()
}

// Texture pairs the cached bitmap with an optional GPU-side texture.
//
// The viewer receives the GPU device from the host through a
// gpucontext.DeviceProvider; it never creates one. With a nil provider the
// texture stays CPU-side and the draw sink reads its Bitmap directly.
//
// A Texture and its bitmap have a 1:1 lifetime: the cache rebinds both
// together on every reallocation so the GPU copy can never outlive the
// pixels it was uploaded from.
type Texture struct {
	bitmap   *Bitmap
	format   gputypes.TextureFormat
	provider gpucontext.DeviceProvider
	gpu      any  // lazily created host texture
	pending  bool // GPU copy is stale relative to the bitmap
}

// newTexture creates an unbound texture. provider may be nil for CPU-only
// operation.
func newTexture(provider gpucontext.DeviceProvider) *Texture {
	return &Texture{
		provider: provider,
		format:   gputypes.TextureFormatRGBA8Unorm,
	}
}

// SetBitmap rebinds the texture to a bitmap and marks the GPU copy stale.
// Rebinding after every cache repaint is what forces the next Upload to
// push fresh pixels.
func (t *Texture) SetBitmap(b *Bitmap, format gputypes.TextureFormat) {
	t.bitmap = b
	t.format = format
	t.pending = true
}

// Bitmap returns the bound bitmap, or nil.
func (t *Texture) Bitmap() *Bitmap {
	return t.bitmap
}

// Format returns the pixel format the texture was bound with.
func (t *Texture) Format() gputypes.TextureFormat {
	return t.format
}

// Upload pushes the bound bitmap to the GPU through the given creator if
// the GPU copy is stale, returning the host texture object. With a nil
// creator the texture's own DeviceProvider is used when it implements
// gpucontext.TextureCreator; the cache drives this path after every
// repaint. Software sinks ignore the GPU copy and read Bitmap instead.
func (t *Texture) Upload(creator gpucontext.TextureCreator) (any, error) {
	if t.bitmap == nil {
		return nil, ErrNoBitmap
	}
	if creator == nil {
		c, ok := t.provider.(gpucontext.TextureCreator)
		if !ok {
			return nil, ErrNoCreator
		}
		creator = c
	}
	if !t.pending && t.gpu != nil {
		return t.gpu, nil
	}

	data := t.bitmap.ToImage().Pix
	if t.gpu == nil {
		tex, err := creator.NewTextureFromRGBA(t.bitmap.Width(), t.bitmap.Height(), data)
		if err != nil {
			return nil, fmt.Errorf("gfxview: texture creation failed: %w", err)
		}
		t.gpu = tex
		t.pending = false
		return t.gpu, nil
	}

	if updater, ok := t.gpu.(gpucontext.TextureUpdater); ok {
		if err := updater.UpdateData(data); err != nil {
			return nil, fmt.Errorf("gfxview: texture update failed: %w", err)
		}
		t.pending = false
		return t.gpu, nil
	}

	// host texture cannot be updated in place; recreate it
	t.destroyGPU()
	return t.Upload(creator)
}

// Destroy releases the GPU-side texture, if any. The bitmap is left to the
// owner.
func (t *Texture) Destroy() {
	t.destroyGPU()
	t.bitmap = nil
}

func (t *Texture) destroyGPU() {
	if t.gpu != nil {
		if d, ok := t.gpu.(textureDestroyer); ok {
			d.Destroy()
		}
		t.gpu = nil
	}
	t.pending = true
}
