// Package printer reads the regular files of a folder and renders their
// contents with banner framing.
package printer

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// ErrNotDirectory is returned by Collect when the target path does not
// refer to an existing directory
var ErrNotDirectory = errors.New("not a valid directory")

// FileResult is the outcome of reading one file: either Content or Err is
// set. Keeping failures as values lets the batch continue past a bad file.
type FileResult struct {
	// Name is the file's base name
	Name string
	// Path is the full path of the file
	Path string
	// Content holds the file's bytes when the read succeeded
	Content []byte
	// Err records why the file could not be read as text
	Err error
}

// Match reports whether a filename passes the extension filter.
// An empty filter matches everything.
func Match(name, ext string) bool {
	return ext == "" || strings.HasSuffix(name, ext)
}

// Collect reads every regular file in folder (non-recursive) whose name
// passes the extension filter, in listing order. Read failures are
// isolated per file; only an invalid folder aborts.
func Collect(folder, ext string) ([]FileResult, error) {
	info, err := os.Stat(folder)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, folder)
	}

	entries, err := os.ReadDir(folder)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", folder, err)
	}

	var results []FileResult
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		if !Match(entry.Name(), ext) {
			continue
		}
		results = append(results, readFile(folder, entry.Name()))
	}
	return results, nil
}

// readFile reads one file into a FileResult, never returning an error
func readFile(folder, name string) FileResult {
	result := FileResult{
		Name: name,
		Path: filepath.Join(folder, name),
	}

	content, err := os.ReadFile(result.Path)
	if err != nil {
		result.Err = err
		return result
	}

	if !utf8.Valid(content) {
		result.Err = errors.New("content is not valid UTF-8 text")
		return result
	}

	result.Content = content
	return result
}

// Render writes each result to w: successes framed by banner lines,
// failures as a single error line. Returns the number of failures.
func Render(w io.Writer, results []FileResult) int {
	failures := 0
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(w, "Error reading file '%s': %v\n", r.Path, r.Err)
			failures++
			continue
		}
		fmt.Fprintf(w, "\n=== Contents of %s ===\n\n", r.Name)
		fmt.Fprintln(w, string(r.Content))
		fmt.Fprintf(w, "\n=== End of %s ===\n\n", r.Name)
	}
	return failures
}
