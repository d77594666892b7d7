//go:build linux || darwin || freebsd || netbsd || openbsd

package reader

import (
	"context"
	"path/filepath"
	"syscall"
	"testing"
	"time"

	"github.com/specialistvlad/hexdump/internal/fsutil"
	"github.com/stretchr/testify/require"
)

func TestReadFile_FIFOWithoutLimit(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	path := filepath.Join(t.TempDir(), "pipe")
	if err := syscall.Mkfifo(path, 0600); err != nil {
		t.Skipf("mkfifo not supported here: %v", err)
	}

	// --- Act ---
	done := make(chan error, 1)
	go func() {
		_, err := ReadFile(context.Background(), path, nil)
		done <- err
	}()

	// --- Assert ---
	select {
	case err := <-done:
		var readErr *Error
		require.ErrorAs(t, err, &readErr)
		require.Equal(t, "open", readErr.Op)
		require.ErrorIs(t, err, fsutil.ErrNotRegular)
	case <-time.After(2 * time.Second):
		t.Fatal("ReadFile blocked on a FIFO instead of rejecting it")
	}
}
