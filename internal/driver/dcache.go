package driver

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"sugarc/internal/rewrite"
	"sugarc/internal/source"
)

// Digest is a SHA-256 cache key.
type Digest = [sha256.Size]byte

// Current schema version - increment when DiskPayload format changes
const diskCacheSchemaVersion uint16 = 1

// DiskCache хранит результаты переписывания по хэшу содержимого и
// конфигурации на диске. Thread-safe for concurrent access.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// DiskPayload stores one cached rewrite result.
type DiskPayload struct {
	// Schema version for safe invalidation when format changes
	Schema uint16

	Code    string
	Changed bool
	Map     []byte
}

// OpenDiskCache initializes and returns a disk cache at the standard location.
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

func (c *DiskCache) pathFor(key Digest) string {
	hexKey := hex.EncodeToString(key[:])
	// подкаталог "rw" — для удобства очистки
	return filepath.Join(c.dir, "rw", hexKey+".mp")
}

// keyFor derives the cache key from the file content hash and everything that
// influences the output: mode, map request, the full operator table, and the
// full import registry. A sugar.toml change to either table lands here.
func keyFor(file *source.File, opts rewrite.Options) Digest {
	h := sha256.New()
	h.Write(file.Hash[:])

	var hdr [4]byte
	binary.LittleEndian.PutUint16(hdr[0:], diskCacheSchemaVersion)
	hdr[2] = byte(opts.Mode)
	if opts.WithMap {
		hdr[3] = 1
	}
	h.Write(hdr[:])

	if opts.Table != nil {
		for _, sym := range opts.Table.Symbols() {
			def, _ := opts.Table.Lookup(sym)
			fmt.Fprintf(h, "%s\x00%d\x00%d\x00%s\x00", def.Symbol, def.Precedence, def.Assoc, def.Call)
		}
	}

	if opts.Registry != nil {
		for _, mod := range opts.Registry.Modules() {
			exports, _ := opts.Registry.Module(mod)
			for _, name := range opts.Registry.Exports(mod) {
				sym := exports[name]
				fmt.Fprintf(h, "%s\x00%s\x00%d\x00%s\x00%s\x00%t\x00",
					mod, name, sym.Kind, sym.Canonical, sym.Concrete, sym.Parameterized)
			}
		}
	}

	var key Digest
	h.Sum(key[:0])
	return key
}

// Put serializes and writes a payload to the disk cache.
func (c *DiskCache) Put(key Digest, payload *DiskPayload) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		if err = os.Remove(f.Name()); err != nil && !errors.Is(err, os.ErrNotExist) {
			fmt.Printf("failed to remove temp file: %v", err)
		}
	}()

	enc := msgpack.NewEncoder(f)
	if err := enc.Encode(payload); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	// Атомарная замена
	return os.Rename(f.Name(), p)
}

// Get reads and deserializes a payload from the disk cache. A payload with a
// stale schema reports a miss.
func (c *DiskCache) Get(key Digest, out *DiskPayload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	p := c.pathFor(key)
	f, err := os.Open(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			fmt.Printf("failed to close cache file: %v", closeErr)
		}
	}()
	dec := msgpack.NewDecoder(f)
	if err := dec.Decode(out); err != nil {
		return false, err
	}
	if out.Schema != diskCacheSchemaVersion {
		return false, nil
	}
	return true, nil
}

// DropAll invalidates the cache, useful after format changes.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	// тривиально: переименуем каталог и удалим в фоне
	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		return err
	}
	return os.RemoveAll(old)
}

// resultToDiskPayload converts a rewrite result for caching.
func resultToDiskPayload(res rewrite.Result) *DiskPayload {
	return &DiskPayload{
		Schema:  diskCacheSchemaVersion,
		Code:    res.Code,
		Changed: res.Changed,
		Map:     res.Map,
	}
}

// diskPayloadToResult converts a cached payload back to a rewrite result.
func diskPayloadToResult(payload *DiskPayload) rewrite.Result {
	return rewrite.Result{
		Code:    payload.Code,
		Changed: payload.Changed,
		Map:     payload.Map,
	}
}
