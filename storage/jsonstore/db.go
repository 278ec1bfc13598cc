// Package jsonstore persists named record collections as plain JSON array
// documents, one file per collection. It is the sole owner of all
// collections: every repository reads the full collection, mutates an
// in-memory copy and writes the full collection back, under a per-collection
// lock that serializes the read-modify-write sequence.
package jsonstore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/pkg/errors"
)

// ErrCorruptCollection is the cause of every load failure on structurally
// invalid persisted content. An absent file is not corrupt: it is
// initialized to an empty collection and persisted as such.
var ErrCorruptCollection = errors.New("corrupt collection")

type DB struct {
	dir string

	mu    sync.Mutex // guards locks
	locks map[string]*sync.RWMutex
}

func Open(dir string) (*DB, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "jsonstore.Open(%s)", dir)
	}
	return &DB{
		dir:   dir,
		locks: make(map[string]*sync.RWMutex),
	}, nil
}

// Verify loads each named collection once, initializing absent files and
// surfacing ErrCorruptCollection for malformed ones. Call it at startup so a
// corrupt collection is fatal before any request is served.
func (db *DB) Verify(names ...string) error {
	for _, name := range names {
		lock := db.collLock(name)
		lock.Lock()
		var records []json.RawMessage
		err := db.load(name, &records)
		lock.Unlock()
		if err != nil {
			return err
		}
	}
	return nil
}

// collLock returns the lock owning the named collection's read-modify-write
// sequences.
func (db *DB) collLock(name string) *sync.RWMutex {
	db.mu.Lock()
	defer db.mu.Unlock()

	lock, ok := db.locks[name]
	if !ok {
		lock = new(sync.RWMutex)
		db.locks[name] = lock
	}
	return lock
}

func (db *DB) path(name string) string {
	return filepath.Join(db.dir, name+".json")
}

// load decodes the whole named collection into dst. Callers must hold the
// collection lock.
func (db *DB) load(name string, dst interface{}) error {
	data, err := os.ReadFile(db.path(name))
	if err != nil {
		if os.IsNotExist(err) {
			// first access: initialize and persist the empty collection
			data = []byte("[]")
			if err := os.WriteFile(db.path(name), data, 0o644); err != nil {
				return errors.Wrapf(err, "initializing %s.json", name)
			}
		} else {
			return errors.Wrapf(err, "reading %s.json", name)
		}
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return errors.Wrapf(ErrCorruptCollection, "%s.json: %v", name, err)
	}
	return nil
}

// save writes the whole named collection back via a temp file + rename.
// Callers must hold the collection lock exclusively.
func (db *DB) save(name string, src interface{}) error {
	data, err := json.MarshalIndent(src, "", "  ")
	if err != nil {
		return errors.Wrapf(err, "encoding %s.json", name)
	}
	tmp := db.path(name) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return errors.Wrapf(err, "writing %s", tmp)
	}
	if err := os.Rename(tmp, db.path(name)); err != nil {
		return errors.Wrapf(err, "replacing %s.json", name)
	}
	return nil
}

// nextSeq returns the next value of the collection's persisted sequence
// counter. The counter only ever increases, so ids stay unique across
// restarts and (future) deletions. Callers must hold the collection lock
// exclusively.
func (db *DB) nextSeq(name string) (int, error) {
	path := filepath.Join(db.dir, name+".seq")

	var seq int
	data, err := os.ReadFile(path)
	if err == nil {
		seq, err = strconv.Atoi(string(data))
		if err != nil {
			return 0, errors.Wrapf(ErrCorruptCollection, "%s.seq: %v", name, err)
		}
	} else if !os.IsNotExist(err) {
		return 0, errors.Wrapf(err, "reading %s.seq", name)
	}

	seq++
	if err := os.WriteFile(path, []byte(strconv.Itoa(seq)), 0o644); err != nil {
		return 0, errors.Wrapf(err, "writing %s.seq", name)
	}
	return seq, nil
}
