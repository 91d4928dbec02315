package gallery

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const (
	cacheDirName = "portrait/gallery"
	cacheMaxAge  = 30 * 24 * time.Hour // 30 days
)

// Cache stores resized photos as PNG files so reopening a profile does not
// decode the originals again. A nil *Cache is valid and caches nothing.
type Cache struct {
	dir string
}

// NewCache creates a disk cache under baseDir, or under the user's cache
// directory when baseDir is empty.
func NewCache(baseDir string) (*Cache, error) {
	if baseDir == "" {
		userCache, err := os.UserCacheDir()
		if err != nil {
			return nil, err
		}
		baseDir = userCache
	}

	dir := filepath.Join(baseDir, cacheDirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	c := &Cache{dir: dir}
	go prune(dir, time.Now())

	return c, nil
}

// Dir returns the directory holding cached files.
func (c *Cache) Dir() string {
	if c == nil {
		return ""
	}
	return c.dir
}

// cacheKey identifies a photo rendered at a specific cell size.
func cacheKey(handle string, cols, rows int) string {
	data := fmt.Sprintf("%s:%d:%d", handle, cols, rows)
	hash := sha256.Sum256([]byte(data))
	return hex.EncodeToString(hash[:])
}

func (c *Cache) path(handle string, cols, rows int) string {
	return filepath.Join(c.dir, cacheKey(handle, cols, rows)+".png")
}

// Get returns cached PNG data, or nil when absent.
func (c *Cache) Get(handle string, cols, rows int) []byte {
	if c == nil {
		return nil
	}

	path := c.path(handle, cols, rows)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	// Touch the file to update mtime (keeps frequently used entries fresh)
	now := time.Now()
	_ = os.Chtimes(path, now, now) //nolint:errcheck // best-effort

	return data
}

// Put stores PNG data for a photo at a cell size.
func (c *Cache) Put(handle string, cols, rows int, data []byte) error {
	if c == nil {
		return nil
	}
	return os.WriteFile(c.path(handle, cols, rows), data, 0o600)
}

// prune removes entries not touched for cacheMaxAge.
func prune(dir string, now time.Time) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}

	cutoff := now.Add(-cacheMaxAge)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			_ = os.Remove(filepath.Join(dir, entry.Name())) //nolint:errcheck // best-effort cleanup
		}
	}
}
