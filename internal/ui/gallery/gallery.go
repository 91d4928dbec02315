// Package gallery loads profile photos and samples them for drawing in the
// header's hero surface.
package gallery

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg" // JPEG decoder for profile photos
	"image/png"
	"os"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// Loader opens the image behind a handle.
type Loader interface {
	Load(handle string) (image.Image, error)
}

// FileLoader treats handles as file paths.
type FileLoader struct{}

// Load decodes the file at path.
func (FileLoader) Load(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

// ReadyMsg reports that a photo finished loading. Err is set when the photo
// could not be decoded; the gallery then shows its placeholder.
type ReadyMsg struct {
	Handle     string
	Cols, Rows int
	Err        error
}

type sizeKey struct {
	handle     string
	cols, rows int
}

// Gallery is an ordered list of photo handles with a current index.
// Navigation is called from the UI goroutine; decoded pixels are shared
// with loader commands under mu.
type Gallery struct {
	handles []string
	index   int

	loader Loader
	cache  *Cache

	mu      sync.RWMutex
	pixels  map[sizeKey]*Pixels
	failed  map[sizeKey]bool
	pending map[sizeKey]bool
}

// New returns an empty gallery. A nil loader uses FileLoader; a nil cache
// disables the disk cache.
func New(loader Loader, cache *Cache) *Gallery {
	if loader == nil {
		loader = FileLoader{}
	}
	return &Gallery{
		loader:  loader,
		cache:   cache,
		pixels:  make(map[sizeKey]*Pixels),
		failed:  make(map[sizeKey]bool),
		pending: make(map[sizeKey]bool),
	}
}

// SetHandles replaces the photo list and resets the index.
func (g *Gallery) SetHandles(handles []string) {
	g.handles = append([]string(nil), handles...)
	g.index = 0
}

// Len returns the number of photos.
func (g *Gallery) Len() int { return len(g.handles) }

// Index returns the current photo index.
func (g *Gallery) Index() int { return g.index }

// Current returns the current handle, or "" when the gallery is empty.
func (g *Gallery) Current() string {
	if len(g.handles) == 0 {
		return ""
	}
	return g.handles[g.index]
}

// SetIndex moves to photo i. Returns false if i is out of range.
func (g *Gallery) SetIndex(i int) bool {
	if i < 0 || i >= len(g.handles) {
		return false
	}
	g.index = i
	return true
}

// Next moves to the following photo. Returns false at the last one.
func (g *Gallery) Next() bool { return g.SetIndex(g.index + 1) }

// Prev moves to the previous photo. Returns false at the first one.
func (g *Gallery) Prev() bool { return g.SetIndex(g.index - 1) }

// Pixels returns the current photo sampled at cols x rows cells, if it has
// been loaded.
func (g *Gallery) Pixels(cols, rows int) (*Pixels, bool) {
	h := g.Current()
	if h == "" {
		return nil, false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	p, ok := g.pixels[sizeKey{h, cols, rows}]
	return p, ok
}

// Failed reports whether the current photo could not be loaded at this size.
func (g *Gallery) Failed(cols, rows int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.failed[sizeKey{g.Current(), cols, rows}]
}

// Prepare returns a command that loads the current photo at cols x rows,
// or nil when there is nothing to load.
func (g *Gallery) Prepare(cols, rows int) tea.Cmd {
	h := g.Current()
	if h == "" || cols <= 0 || rows <= 0 {
		return nil
	}
	key := sizeKey{h, cols, rows}

	g.mu.Lock()
	defer g.mu.Unlock()
	if g.pixels[key] != nil || g.failed[key] || g.pending[key] {
		return nil
	}
	g.pending[key] = true

	return func() tea.Msg {
		p, err := g.load(key)
		g.mu.Lock()
		delete(g.pending, key)
		if err != nil {
			g.failed[key] = true
		} else {
			g.pixels[key] = p
		}
		g.mu.Unlock()
		return ReadyMsg{Handle: h, Cols: cols, Rows: rows, Err: err}
	}
}

func (g *Gallery) load(key sizeKey) (*Pixels, error) {
	if data := g.cache.Get(key.handle, key.cols, key.rows); data != nil {
		if img, err := png.Decode(bytes.NewReader(data)); err == nil {
			return fromImage(img), nil
		}
	}

	img, err := g.loader.Load(key.handle)
	if err != nil {
		return nil, err
	}
	p := Sample(img, key.cols, key.rows)

	if g.cache != nil {
		var buf bytes.Buffer
		if err := png.Encode(&buf, p.Image()); err == nil {
			_ = g.cache.Put(key.handle, key.cols, key.rows, buf.Bytes()) //nolint:errcheck // best-effort
		}
	}
	return p, nil
}
