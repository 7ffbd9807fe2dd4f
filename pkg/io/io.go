package io

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

var _ FileIO = (*MediaFileSystem)(nil)

// MediaFileSystem is the default implementation of file io using the os package
type MediaFileSystem struct{}

// ReadFile is a wrapper around os.ReadFile
func (o *MediaFileSystem) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

// CreateTemp is a wrapper around os.CreateTemp that also returns the name of the new file
func (o *MediaFileSystem) CreateTemp(dir, pattern string) (io.WriteCloser, string, error) {
	f, err := os.CreateTemp(dir, pattern)
	if err != nil {
		return nil, "", err
	}
	return f, f.Name(), nil
}

// Rename is a wrapper around os.Rename. An existing target is replaced.
func (o *MediaFileSystem) Rename(source, target string) error {
	return os.Rename(source, target)
}

// Remove is a wrapper around os.Remove
func (o *MediaFileSystem) Remove(name string) error {
	return os.Remove(name)
}

// MkdirAll is a wrapper around os.MkdirAll
func (o *MediaFileSystem) MkdirAll(path string, mode os.FileMode) error {
	return os.MkdirAll(path, mode)
}

// WriteAtomic writes data to a temp file next to target and renames it into place.
// Readers see either the old contents or the new ones, never a partial write.
func WriteAtomic(fsys FileIO, target string, data []byte) error {
	w, name, err := fsys.CreateTemp(filepath.Dir(target), filepath.Base(target)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}

	committed := false
	defer func() {
		if !committed {
			_ = fsys.Remove(name)
		}
	}()

	if _, err := w.Write(data); err != nil {
		w.Close()
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := fsys.Rename(name, target); err != nil {
		return fmt.Errorf("failed to replace %s: %w", target, err)
	}
	committed = true

	return nil
}
