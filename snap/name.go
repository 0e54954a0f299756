// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package snap

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// defaultTemplate is used when no template is configured or when a
// configured template cannot be resolved.
const defaultTemplate = "%g/%i"

// Writer creates output files under a root directory following a naming
// template. The template understands three placeholders:
//
//	%g   the machine name (becomes a subdirectory with the default template)
//	%i   the item base name plus a _%04d sequence number, scanned so the
//	     created file never overwrites an existing one
//	%d_<device>   the base name of the media image mounted in <device>
//
// A template with no %i always resolves to the same name and will
// overwrite. Malformed %d_ usage falls back to the default template.
type Writer struct {
	// Root is the directory all files are created under.
	Root string

	// Machine substitutes %g. Empty is allowed; the path segment is
	// simply empty.
	Machine string

	// Template is the naming template. Empty means "%g/%i".
	Template string

	// Images maps device names to the base name of the image mounted in
	// them, for %d_ substitution.
	Images map[string]string
}

// Create opens a new file for the given base name and extension,
// resolving the template and scanning for the first unused sequence
// number. Parent directories are created as needed.
func (w *Writer) Create(base, ext string) (io.WriteCloser, error) {
	tmpl := w.Template
	if tmpl == "" {
		tmpl = defaultTemplate
	}

	// strip any extension the template carries; ours is appended below
	if idx := strings.LastIndexByte(tmpl, '.'); idx >= 0 {
		tmpl = tmpl[:idx]
	}

	tmpl = w.resolveDevice(tmpl)
	tmpl = tmpl + "." + ext
	tmpl = strings.ReplaceAll(tmpl, "%g", w.Machine)

	var name string
	if !strings.Contains(tmpl, "%i") {
		// no index: always the same name
		name = tmpl
	} else {
		// scan for the first sequence number not already on disk
		for seq := 0; ; seq++ {
			name = strings.ReplaceAll(tmpl, "%i", fmt.Sprintf("%s_%04d", base, seq))
			if _, err := os.Stat(filepath.Join(w.Root, filepath.FromSlash(name))); err != nil {
				break
			}
		}
	}

	path := filepath.Join(w.Root, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return os.Create(path)
}

// resolveDevice substitutes a single %d_<device> placeholder with the
// mounted image's base name. More than one %d_, an unknown device, or a
// device with nothing mounted all revert to the default template.
func (w *Writer) resolveDevice(tmpl string) string {
	pos := strings.Index(tmpl, "%d_")
	if pos < 0 {
		return tmpl
	}
	if strings.Contains(tmpl[pos+3:], "%d_") {
		return defaultTemplate
	}

	// the device name runs to the next '/' or '%'
	end := len(tmpl)
	if idx := strings.IndexAny(tmpl[pos+3:], "/%"); idx >= 0 {
		end = pos + 3 + idx
	}
	device := tmpl[pos+3 : end]
	if device == "" {
		return defaultTemplate
	}

	image, ok := w.Images[device]
	if !ok || image == "" {
		return defaultTemplate
	}

	// strip the image's extension
	if idx := strings.LastIndexByte(image, '.'); idx >= 0 {
		image = image[:idx]
	}

	return tmpl[:pos] + image + tmpl[end:]
}
