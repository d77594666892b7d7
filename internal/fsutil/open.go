// Package fsutil provides file system utility functions.
package fsutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// ErrIsDirectory is returned when a directory is given where a file is expected.
var ErrIsDirectory = errors.New("is a directory")

// ErrNotRegular is returned for devices, pipes and sockets when the caller
// asked for a regular file.
var ErrNotRegular = errors.New("not a regular file")

// OpenFile opens path for reading and checks what it points to. Directories
// are always rejected. When requireRegular is set, anything other than a
// regular file is rejected as well. On error no file handle is left open.
//
// The type is checked before opening, since opening a FIFO blocks until a
// writer appears, and again on the open handle in case path was replaced.
func OpenFile(path string, requireRegular bool) (*os.File, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if err := checkMode(path, info.Mode(), requireRegular); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	info, err = f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	if err := checkMode(path, info.Mode(), requireRegular); err != nil {
		f.Close()
		return nil, err
	}

	return f, nil
}

func checkMode(path string, mode fs.FileMode, requireRegular bool) error {
	switch {
	case mode.IsDir():
		return fmt.Errorf("%s: %w", path, ErrIsDirectory)
	case requireRegular && !mode.IsRegular():
		return fmt.Errorf("%s (%s): %w", path, mode.Type(), ErrNotRegular)
	}
	return nil
}
