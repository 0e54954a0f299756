// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package snap

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func create(t *testing.T, w *Writer, base, ext string) string {
	t.Helper()
	f, err := w.Create(base, ext)
	assert.NoError(t, err)
	_, err = io.WriteString(f, "x")
	assert.NoError(t, err)
	assert.NoError(t, f.Close())
	return ""
}

// TestWriterSequence verifies the default template creates numbered
// files under the machine directory without overwriting.
func TestWriterSequence(t *testing.T) {
	dir := t.TempDir()
	w := &Writer{Root: dir, Machine: "mach"}

	create(t, w, "shot", "png")
	create(t, w, "shot", "png")

	assert.FileExists(t, filepath.Join(dir, "mach", "shot_0000.png"))
	assert.FileExists(t, filepath.Join(dir, "mach", "shot_0001.png"))
}

// TestWriterSeparateBases verifies different base names number
// independently.
func TestWriterSeparateBases(t *testing.T) {
	dir := t.TempDir()
	w := &Writer{Root: dir, Machine: "mach"}

	create(t, w, "palette0 16", "txt")
	create(t, w, "tilemap_0_of_0_size_8x8", "png")

	assert.FileExists(t, filepath.Join(dir, "mach", "palette0 16_0000.txt"))
	assert.FileExists(t, filepath.Join(dir, "mach", "tilemap_0_of_0_size_8x8_0000.png"))
}

// TestWriterNoIndex verifies a template without %i resolves to a fixed
// name that gets overwritten.
func TestWriterNoIndex(t *testing.T) {
	dir := t.TempDir()
	w := &Writer{Root: dir, Machine: "mach", Template: "fixed"}

	f, err := w.Create("shot", "png")
	assert.NoError(t, err)
	_, err = io.WriteString(f, "first")
	assert.NoError(t, err)
	assert.NoError(t, f.Close())

	f, err = w.Create("shot", "png")
	assert.NoError(t, err)
	_, err = io.WriteString(f, "second")
	assert.NoError(t, err)
	assert.NoError(t, f.Close())

	data, err := os.ReadFile(filepath.Join(dir, "fixed.png"))
	assert.NoError(t, err)
	assert.Equal(t, "second", string(data))
}

// TestWriterTemplateExtensionStripped verifies an extension in the
// template is replaced by the requested one.
func TestWriterTemplateExtensionStripped(t *testing.T) {
	dir := t.TempDir()
	w := &Writer{Root: dir, Machine: "mach", Template: "out.bmp"}

	create(t, w, "shot", "png")
	assert.FileExists(t, filepath.Join(dir, "out.png"))
}

// TestWriterDeviceTemplate verifies %d_ substitution from the mounted
// image map, including the fallbacks for malformed templates.
func TestWriterDeviceTemplate(t *testing.T) {
	dir := t.TempDir()
	w := &Writer{
		Root:     dir,
		Machine:  "mach",
		Template: "%d_cart/%i",
		Images:   map[string]string{"cart": "game.rom"},
	}

	create(t, w, "shot", "png")
	assert.FileExists(t, filepath.Join(dir, "game", "shot_0000.png"))

	// unknown device falls back to the default template
	w = &Writer{Root: dir, Machine: "mach", Template: "%d_cdrom/%i"}
	create(t, w, "shot", "png")
	assert.FileExists(t, filepath.Join(dir, "mach", "shot_0000.png"))

	// more than one %d_ falls back too
	w = &Writer{
		Root:     dir,
		Machine:  "mach2",
		Template: "%d_cart/%d_cart/%i",
		Images:   map[string]string{"cart": "game.rom"},
	}
	create(t, w, "shot", "png")
	assert.FileExists(t, filepath.Join(dir, "mach2", "shot_0000.png"))
}
