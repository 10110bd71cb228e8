package driver

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"quill/internal/diag"
	"quill/internal/source"
	"quill/internal/syntax"
	"quill/internal/value"
)

// Current schema version - increment when DiskPayload format changes
const diskCacheSchemaVersion uint16 = 1

// DiskCache хранит потоки токенов по SHA-256 содержимого файла.
// Thread-safe for concurrent access.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// DiskPayload is the on-disk form of one tokenized file.
type DiskPayload struct {
	// Schema version for safe invalidation when format changes
	Schema uint16

	Path        string
	Tokens      []CachedToken
	Diagnostics []CachedDiagnostic
}

// CachedToken mirrors syntax.Token with exported fields for msgpack.
type CachedToken struct {
	Kind     uint8
	Position uint32
	Text     string
	Value    value.Value
}

// CachedDiagnostic mirrors diag.Diagnostic without notes; the lexer
// never attaches any.
type CachedDiagnostic struct {
	Severity uint8
	Code     uint16
	Message  string
	Start    uint32
	Length   uint32
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
	return OpenDiskCacheAt(filepath.Join(base, app))
}

// OpenDiskCacheAt uses dir as the cache root, creating it when missing.
func OpenDiskCacheAt(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create cache dir: %w", err)
	}
	return &DiskCache{dir: dir}, nil
}

// Dir returns the cache root.
func (c *DiskCache) Dir() string { return c.dir }

func (c *DiskCache) pathFor(key [32]byte) string {
	hexKey := hex.EncodeToString(key[:])
	return filepath.Join(c.dir, "tokens", hexKey[:2], hexKey+".mp")
}

// Put serializes and writes a payload to the disk cache.
func (c *DiskCache) Put(key [32]byte, payload *DiskPayload) (err error) {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err = os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		// после успешного Rename временного файла уже нет
		if rmErr := os.Remove(f.Name()); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) && err == nil {
			err = rmErr
		}
	}()

	if err = msgpack.NewEncoder(f).Encode(payload); err != nil {
		_ = f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	// Атомарная замена
	return os.Rename(f.Name(), p)
}

// Get reads and deserializes a payload from the disk cache. A missing entry
// is reported as (false, nil).
func (c *DiskCache) Get(key [32]byte, out *DiskPayload) (bool, error) {
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
		return false, fmt.Errorf("decode cache entry: %w", err)
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

	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		return err
	}
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return err
	}
	return os.RemoveAll(old)
}

// Store caches the token stream and diagnostics of file under its hash.
func (c *DiskCache) Store(file *source.File, tokens []syntax.Token, bag *diag.Bag) error {
	payload := &DiskPayload{
		Schema: diskCacheSchemaVersion,
		Path:   file.Path,
		Tokens: make([]CachedToken, len(tokens)),
	}
	for i, tok := range tokens {
		payload.Tokens[i] = CachedToken{
			Kind:     uint8(tok.Kind()),
			Position: tok.Position(),
			Text:     tok.Text(),
			Value:    tok.Value(),
		}
	}
	for _, d := range bag.Items() {
		payload.Diagnostics = append(payload.Diagnostics, CachedDiagnostic{
			Severity: uint8(d.Severity),
			Code:     uint16(d.Code),
			Message:  d.Message,
			Start:    d.Primary.Start,
			Length:   d.Primary.Length,
		})
	}
	return c.Put(file.Hash, payload)
}

// Lookup returns the cached token stream for file. Entries written under an
// older schema count as misses.
func (c *DiskCache) Lookup(file *source.File, maxDiagnostics int) ([]syntax.Token, *diag.Bag, bool, error) {
	var payload DiskPayload
	ok, err := c.Get(file.Hash, &payload)
	if err != nil || !ok || payload.Schema != diskCacheSchemaVersion {
		return nil, nil, false, err
	}

	tokens := make([]syntax.Token, len(payload.Tokens))
	for i, ct := range payload.Tokens {
		tokens[i] = syntax.NewToken(syntax.Kind(ct.Kind), ct.Position, ct.Text, ct.Value)
	}
	bag := diag.NewBag(maxDiagnostics)
	for _, cd := range payload.Diagnostics {
		bag.Add(diag.New(diag.Severity(cd.Severity), diag.Code(cd.Code), source.NewSpan(cd.Start, cd.Length), cd.Message))
	}
	return tokens, bag, true, nil
}
