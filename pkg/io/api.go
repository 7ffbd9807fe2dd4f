package io

import (
	"io"
	"os"
)

//go:generate go run go.uber.org/mock/mockgen -package mocks -destination mocks/mock_io.go github.com/kasuboski/mediarec/pkg/io FileIO

// FileIO is an interface for the file operations snapshot files need
type FileIO interface {
	ReadFile(name string) ([]byte, error)
	CreateTemp(dir, pattern string) (io.WriteCloser, string, error)
	Rename(source, target string) error
	Remove(name string) error
	MkdirAll(name string, perm os.FileMode) error
}
