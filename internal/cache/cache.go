// Package cache keeps solved answers on disk, keyed by day and input digest,
// so re-running an unchanged input skips parsing and solving.
package cache

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

	"advent/internal/report"
)

// Current schema version - increment when Entry format changes
const schemaVersion uint16 = 1

// Digest identifies one cached result.
type Digest [32]byte

// Disk хранит ответы по Digest на диске.
// Thread-safe for concurrent access.
type Disk struct {
	mu   sync.RWMutex
	dir  string
	salt string
}

// Entry is what one cache file holds.
type Entry struct {
	// Schema version for safe invalidation when format changes
	Schema uint16

	Day       int
	InputHash [32]byte
	Answers   []report.Answer
	Stored    time.Time
}

// DefaultDir returns $XDG_CACHE_HOME/app, falling back to ~/.cache/app.
func DefaultDir(app string) (string, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".cache")
	}
	return filepath.Join(base, app), nil
}

// Open creates dir if needed. salt is mixed into every key; pass the build
// fingerprint so a new binary never reuses answers from an old one.
func Open(dir, salt string) (*Disk, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("open cache: %w", err)
	}
	return &Disk{dir: dir, salt: salt}, nil
}

// Dir returns the cache root.
func (c *Disk) Dir() string {
	if c == nil {
		return ""
	}
	return c.dir
}

// Key derives the cache key for a day's input.
func (c *Disk) Key(day int, input [32]byte) Digest {
	h := sha256.New()
	h.Write([]byte(c.salt))
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(day))
	h.Write(buf[:])
	h.Write(input[:])
	var d Digest
	copy(d[:], h.Sum(nil))
	return d
}

func (c *Disk) pathFor(key Digest) string {
	// подкаталог "answers" для удобства очистки
	return filepath.Join(c.dir, "answers", hex.EncodeToString(key[:])+".mp")
}

// Put serializes and writes the answers for one day's input.
func (c *Disk) Put(day int, input [32]byte, answers []report.Answer) (err error) {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(c.Key(day, input))
	if err = os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(f.Name())
		}
	}()

	entry := Entry{
		Schema:    schemaVersion,
		Day:       day,
		InputHash: input,
		Answers:   answers,
		Stored:    time.Now().UTC(),
	}
	if err = msgpack.NewEncoder(f).Encode(&entry); err != nil {
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	// Атомарная замена
	return os.Rename(f.Name(), p)
}

// Get returns the cached answers for day and input. A missing, stale or
// foreign entry is a miss, not an error; an unreadable file is an error.
func (c *Disk) Get(day int, input [32]byte) ([]report.Answer, bool, error) {
	if c == nil {
		return nil, false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(c.Key(day, input)))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	defer f.Close()

	var entry Entry
	if err := msgpack.NewDecoder(f).Decode(&entry); err != nil {
		return nil, false, fmt.Errorf("decode cache entry: %w", err)
	}
	if entry.Schema != schemaVersion || entry.Day != day || entry.InputHash != input {
		return nil, false, nil
	}
	return entry.Answers, true, nil
}

// DropAll invalidates the cache.
func (c *Disk) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	// переименуем каталог и удалим
	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if err := os.RemoveAll(old); err != nil {
		return err
	}
	return os.MkdirAll(c.dir, 0o755)
}
