// Package asset keeps the images a game draws, addressed by id, plus a few
// helpers to derive new images from existing ones.
package asset

import (
	"fmt"
	"image"
	"image/color"
	_ "image/png" // register the PNG decoder for LoadFile
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"
	"sync"

	"golang.org/x/image/draw"
)

// Library maps ids to images. It is safe for concurrent use so loaders can
// fill it from another goroutine while a scene is built.
type Library struct {
	mu     sync.RWMutex
	images map[string]image.Image
}

// NewLibrary creates an empty library.
func NewLibrary() *Library {
	return &Library{images: make(map[string]image.Image)}
}

// Add stores img under id, replacing any previous image.
func (l *Library) Add(id string, img image.Image) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.images[id] = img
}

// Image returns the image stored under id, or nil.
func (l *Library) Image(id string) image.Image {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.images[id]
}

// Has reports whether id is present.
func (l *Library) Has(id string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	_, ok := l.images[id]
	return ok
}

// IDs returns every id in sorted order.
func (l *Library) IDs() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	ids := make([]string, 0, len(l.images))
	for id := range l.images {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// LoadFile decodes an image file and stores it under id.
func (l *Library) LoadFile(id, file string) error {
	f, err := os.Open(file)
	if err != nil {
		return fmt.Errorf("asset: cannot open %s: %w", file, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return fmt.Errorf("asset: cannot decode %s: %w", file, err)
	}
	l.Add(id, img)
	return nil
}

// LoadFS decodes every PNG in dir of fsys, using the base name without
// extension as id.
func (l *Library) LoadFS(fsys fs.FS, dir string) error {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return fmt.Errorf("asset: cannot read %s: %w", dir, err)
	}
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(path.Ext(e.Name()), ".png") {
			continue
		}
		f, err := fsys.Open(path.Join(dir, e.Name()))
		if err != nil {
			return fmt.Errorf("asset: cannot open %s: %w", e.Name(), err)
		}
		img, _, err := image.Decode(f)
		f.Close()
		if err != nil {
			return fmt.Errorf("asset: cannot decode %s: %w", e.Name(), err)
		}
		l.Add(strings.TrimSuffix(e.Name(), path.Ext(e.Name())), img)
	}
	return nil
}

// Solid returns a w x h image filled with c.
func Solid(w, h int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	return img
}

// Pattern builds an image from rows of characters. Each character is looked
// up in palette; characters missing from it stay transparent.
func Pattern(rows []string, palette map[rune]color.Color) *image.RGBA {
	w := 0
	for _, r := range rows {
		w = max(w, len([]rune(r)))
	}
	img := image.NewRGBA(image.Rect(0, 0, w, len(rows)))
	for y, row := range rows {
		for x, ch := range []rune(row) {
			if c, ok := palette[ch]; ok {
				img.Set(x, y, c)
			}
		}
	}
	return img
}
