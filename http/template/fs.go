package template

import (
	"errors"
	"fmt"
	"io/fs"
	"sync"
)

// mergeFS implements fs.FS over an ordered list of fs.FS.
type mergeFS struct {
	// A cache for minimizing ascertaining which fs.FS holds the template.
	cache map[string]fs.FS
	dirs  []fs.FS
	mu    sync.RWMutex
}

func newMergeFS(fss ...fs.FS) *mergeFS {
	dirs := make([]fs.FS, 0, len(fss))
	for _, dir := range fss {
		if dir != nil {
			dirs = append(dirs, dir)
		}
	}

	return &mergeFS{cache: make(map[string]fs.FS), dirs: dirs}
}

// Open opens the file matching the name using the following strategy:
// - check the cache
// - check each fs.FS in order
//
// Whenever a file is found and is not present in the cache, it is added.
// Nothing removes references from the cache.
//
// If a file is removed from an OS filesystem during runtime,
// then a reference to it from the cache returns the same error (fs.ErrNotExist)
// as if the cache did not have that reference.
func (mfs *mergeFS) Open(name string) (fs.File, error) {
	mfs.mu.RLock()
	dir, ok := mfs.cache[name]
	mfs.mu.RUnlock()
	if ok {
		return dir.Open(name)
	}

	for _, dir := range mfs.dirs {
		file, err := dir.Open(name)
		if err == nil {
			mfs.mu.Lock()
			mfs.cache[name] = dir
			mfs.mu.Unlock()

			return file, nil
		}

		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrInvalid) {
			continue
		}

		return nil, fmt.Errorf("unable to open template %s: %w", name, err)
	}

	return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
}
