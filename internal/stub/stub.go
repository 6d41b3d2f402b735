// Package stub creates placeholder files in the subdirectories of a
// target directory.
package stub

import (
	"fmt"
	"os"
	"path/filepath"
)

// Options controls a single stub-creation run
type Options struct {
	// Dir is the directory whose immediate subdirectories receive stubs.
	// Callers default this to the process working directory.
	Dir string

	// Name is the stub filename, e.g. "README.md"
	Name string

	// SkipFirst drops the first directory of the listing before creating
	// stubs. On by default to match the historical behavior; the listing
	// order comes from os.ReadDir, which sorts by name.
	SkipFirst bool

	// DryRun reports what would be created without touching the filesystem
	DryRun bool
}

// Creation records one stub that was (or would be) created
type Creation struct {
	// Dir is the subdirectory name relative to Options.Dir
	Dir string
	// Path is the full path of the stub file
	Path string
}

// Subdirs returns the names of the immediate subdirectories of dir, in
// listing order
func Subdirs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	return names, nil
}

// Create walks the immediate subdirectories of opts.Dir and creates the
// stub file in each one that lacks it. Existing files are never modified,
// so running twice is idempotent. Returns the creations in listing order.
func Create(opts Options) ([]Creation, error) {
	dirs, err := Subdirs(opts.Dir)
	if err != nil {
		return nil, err
	}

	if opts.SkipFirst && len(dirs) > 0 {
		dirs = dirs[1:]
	}

	var created []Creation
	for _, name := range dirs {
		path := filepath.Join(opts.Dir, name, opts.Name)
		ok, err := createIfMissing(path, opts.DryRun)
		if err != nil {
			return created, err
		}
		if ok {
			created = append(created, Creation{Dir: name, Path: path})
		}
	}
	return created, nil
}

// createIfMissing creates an empty file at path unless one already exists.
// O_EXCL guarantees an existing file is never truncated, even if it appears
// between the stat and the create.
func createIfMissing(path string, dryRun bool) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	}

	if dryRun {
		return true, nil
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		if os.IsExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to create %s: %w", path, err)
	}
	return true, f.Close()
}
