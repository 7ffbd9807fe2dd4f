package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"time"

	mio "github.com/kasuboski/mediarec/pkg/io"
	"github.com/kasuboski/mediarec/pkg/storage"
)

// File stores the snapshot as a single json document
type File struct {
	path string
	fs   mio.FileIO
}

var _ storage.Storage = (*File)(nil)

func New(path string) *File {
	return NewWithFS(path, &mio.MediaFileSystem{})
}

func NewWithFS(path string, fsys mio.FileIO) *File {
	return &File{path: path, fs: fsys}
}

// Init creates the parent directory of the snapshot file
func (f *File) Init(ctx context.Context) error {
	dir := filepath.Dir(f.path)
	if err := f.fs.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create snapshot directory: %w", err)
	}
	return nil
}

func (f *File) Read(ctx context.Context) ([]byte, error) {
	b, err := f.fs.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

// Write replaces the file atomically through a sibling temp file
func (f *File) Write(ctx context.Context, payload []byte, _ time.Time) error {
	return mio.WriteAtomic(f.fs, f.path, payload)
}

func (f *File) Driver() string {
	return storage.DriverFile
}

func (f *File) Close() error {
	return nil
}

func (f *File) Path() string {
	return f.path
}
