package driver

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"
)

// Bump when CachePayload changes shape.
const cacheSchemaVersion uint16 = 1

// CacheKey identifies one compilation: the source hash folded with
// the options that influence the output.
type CacheKey [32]byte

// MakeCacheKey derives a key from the source content hash, the opt
// level, and the target triple.
func MakeCacheKey(contentHash [32]byte, opt int, target string) CacheKey {
	h := sha256.New()
	h.Write(contentHash[:])
	h.Write([]byte{cacheByte(opt)})
	h.Write([]byte(target))
	var key CacheKey
	copy(key[:], h.Sum(nil))
	return key
}

func cacheByte(opt int) byte {
	if opt < 0 || opt > 3 {
		return 0
	}
	return byte(opt)
}

// CachePayload is the cached result of lowering one clean file.
type CachePayload struct {
	Schema     uint16
	Path       string
	ModuleName string
	Output     string
}

// DiskCache stores lowered output keyed by CacheKey, one msgpack file
// per entry. Safe for concurrent use.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// OpenDiskCache initializes the cache under XDG_CACHE_HOME (or
// ~/.cache) in a subdirectory named after the app.
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

// OpenDiskCacheAt pins the cache to an explicit directory.
func OpenDiskCacheAt(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) pathFor(key CacheKey) string {
	return filepath.Join(c.dir, "out", hex.EncodeToString(key[:])+".mp")
}

// Put serializes a payload and installs it with an atomic rename.
func (c *DiskCache) Put(key CacheKey, payload *CachePayload) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	payload.Schema = cacheSchemaVersion
	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name())

	if err := msgpack.NewEncoder(f).Encode(payload); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), p)
}

// Get loads a payload. A missing entry or a schema mismatch reports
// (false, nil) so callers recompile.
func (c *DiskCache) Get(key CacheKey, out *CachePayload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer f.Close()

	if err := msgpack.NewDecoder(f).Decode(out); err != nil {
		return false, nil
	}
	if out.Schema != cacheSchemaVersion {
		return false, nil
	}
	return true, nil
}
