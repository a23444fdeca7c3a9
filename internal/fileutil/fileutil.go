// Package fileutil provides file and path helpers for site generation.
package fileutil

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// ErrSourceNotFound reports a missing copy source directory.
var ErrSourceNotFound = errors.New("source directory not found")

// IsMarkdown reports whether path has a Markdown extension.
func IsMarkdown(path string) bool {
	switch filepath.Ext(path) {
	case ".md", ".markdown":
		return true
	}
	return false
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// CleanDir removes everything inside dir without removing dir itself.
// A missing dir is not an error.
func CleanDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading dir: %w", err)
	}
	for _, entry := range entries {
		if err := os.RemoveAll(filepath.Join(dir, entry.Name())); err != nil {
			return fmt.Errorf("removing %s: %w", entry.Name(), err)
		}
	}
	return nil
}

// CopyDir recursively copies the contents of src into dst, creating
// directories as needed and preserving relative paths. Returns the
// number of files copied and their total size.
func CopyDir(src, dst string) (files int, bytes int64, err error) {
	info, err := os.Stat(src)
	if err != nil || !info.IsDir() {
		return 0, 0, fmt.Errorf("%w: %s", ErrSourceNotFound, src)
	}

	err = filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)

		if d.IsDir() {
			return os.MkdirAll(target, 0o750)
		}

		n, err := copyFile(path, target)
		if err != nil {
			return err
		}
		files++
		bytes += n
		return nil
	})
	if err != nil {
		return 0, 0, err
	}
	return files, bytes, nil
}

// copyFile copies one regular file and returns its size.
func copyFile(src, dst string) (int64, error) {
	in, err := os.Open(src) // #nosec G304 -- path comes from walking the static dir
	if err != nil {
		return 0, fmt.Errorf("opening %s: %w", src, err)
	}
	defer func() { _ = in.Close() }()

	out, err := os.Create(dst) // #nosec G304 -- target stays under the output dir
	if err != nil {
		return 0, fmt.Errorf("creating %s: %w", dst, err)
	}

	n, err := io.Copy(out, in)
	if err != nil {
		_ = out.Close()
		return 0, fmt.Errorf("copying to %s: %w", dst, err)
	}
	if err := out.Close(); err != nil {
		return 0, fmt.Errorf("closing %s: %w", dst, err)
	}
	return n, nil
}
