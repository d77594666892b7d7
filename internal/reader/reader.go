// Package reader loads the input of a dump: a whole file, or at most a given
// number of bytes from its start.
package reader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"

	"github.com/specialistvlad/hexdump/internal/ctxlog"
	"github.com/specialistvlad/hexdump/internal/fsutil"
)

// Error describes a failure to open or read the input file.
type Error struct {
	Op   string
	Path string
	Err  error
}

// Error implements the error interface for Error.
func (e *Error) Error() string {
	return fmt.Sprintf("cannot %s '%s': %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying open or read error.
func (e *Error) Unwrap() error {
	return e.Err
}

// ReadFile returns the contents of the file at path. With a nil limit the
// whole file is read; otherwise at most *limit bytes are returned, and a file
// shorter than the limit is not an error. Without a limit only regular files
// are accepted, since devices and pipes may never reach EOF.
func ReadFile(ctx context.Context, path string, limit *uint64) ([]byte, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Opening input file.", "path", path, "limited", limit != nil)

	f, err := fsutil.OpenFile(path, limit == nil)
	if err != nil {
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) {
			err = pathErr.Err
		}
		return nil, &Error{Op: "open", Path: path, Err: err}
	}
	defer f.Close()

	data, err := Read(f, limit)
	if err != nil {
		return nil, &Error{Op: "read", Path: path, Err: err}
	}

	logger.Debug("Input file read.", "path", path, "bytes", len(data))
	return data, nil
}

// Read accumulates bytes from r until EOF or until *limit bytes have been
// collected. Short reads from r are retried, so the result is only shorter
// than the limit when r ran out of data.
func Read(r io.Reader, limit *uint64) ([]byte, error) {
	if limit != nil {
		n := int64(math.MaxInt64)
		if *limit < math.MaxInt64 {
			n = int64(*limit)
		}
		r = io.LimitReader(r, n)
	}
	return io.ReadAll(r)
}
