// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gfxview

import (
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

// bitmapCache owns the one intermediate bitmap the active viewer composes
// into, together with its texture. The cache is either clean or dirty;
// viewers repaint the whole buffer only on the dirty transition, then
// rebind the texture so stale GPU pixels can never be sampled.
//
// Bitmap and texture are freed and reallocated together, never
// independently.
type bitmapCache struct {
	bitmap   *Bitmap
	texture  *Texture
	dirty    bool
	provider gpucontext.DeviceProvider
}

// ensure reallocates the bitmap/texture pair when the required dimensions
// differ from the current buffer's (each axis checked on its own), forcing
// a repaint. Returns true if a reallocation happened.
func (c *bitmapCache) ensure(width, height int) bool {
	if c.bitmap != nil && c.texture != nil &&
		c.bitmap.Width() == width && c.bitmap.Height() == height {
		return false
	}

	// free the old pair
	if c.texture != nil {
		c.texture.Destroy()
	}

	// allocate the new pair
	c.bitmap = NewBitmap(width, height)
	c.texture = newTexture(c.provider)
	c.texture.SetBitmap(c.bitmap, gputypes.TextureFormatRGBA8Unorm)
	c.dirty = true

	Logger().Debug("gfxview: cache reallocated", "width", width, "height", height)
	return true
}

// markDirty schedules a repaint on the next frame.
func (c *bitmapCache) markDirty() {
	c.dirty = true
}

// clean rebinds the refreshed bitmap to the texture and transitions the
// cache back to clean. Called after a viewer finished repainting. When a
// device provider is configured the fresh pixels are pushed to the GPU
// here, so the draw sink always samples a current texture.
func (c *bitmapCache) clean(format gputypes.TextureFormat) {
	c.texture.SetBitmap(c.bitmap, format)
	if c.provider != nil {
		if _, err := c.texture.Upload(nil); err != nil {
			Logger().Error("gfxview: texture upload failed", "error", err)
		}
	}
	c.dirty = false
}

// release frees the bitmap/texture pair.
func (c *bitmapCache) release() {
	if c.texture != nil {
		c.texture.Destroy()
		c.texture = nil
	}
	c.bitmap = nil
	c.dirty = true
}
