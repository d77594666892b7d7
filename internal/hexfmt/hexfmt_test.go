package hexfmt

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

// sequence returns n bytes counting up from zero.
func sequence(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i)
	}
	return b
}

func TestFormatLine(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		offset   int
		chunk    []byte
		expected string
	}{
		{
			name:     "Four bytes become two words",
			chunk:    []byte{0x00, 0x01, 0x02, 0x03},
			expected: "00000000 0100 0302",
		},
		{
			name:     "Single trailing byte uses two digits",
			offset:   16,
			chunk:    []byte{0x10},
			expected: "00000010 10",
		},
		{
			name:     "Odd length keeps the pairs and the tail",
			offset:   0x120,
			chunk:    []byte{0xff, 0x00, 0xab},
			expected: "00000120 00ff ab",
		},
		{
			name:     "Full line",
			chunk:    sequence(16),
			expected: "00000000 0100 0302 0504 0706 0908 0b0a 0d0c 0f0e",
		},
		{
			name:     "Empty chunk is only the offset",
			offset:   32,
			expected: "00000020",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.expected, FormatLine(tc.offset, tc.chunk))
		})
	}
}

func TestLines(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		data     []byte
		expected []string
	}{
		{
			name:     "Empty input yields no lines",
			data:     nil,
			expected: []string{},
		},
		{
			name: "Two full lines",
			data: sequence(32),
			expected: []string{
				"00000000 0100 0302 0504 0706 0908 0b0a 0d0c 0f0e",
				"00000010 1110 1312 1514 1716 1918 1b1a 1d1c 1f1e",
			},
		},
		{
			name: "Partial second line",
			data: sequence(20),
			expected: []string{
				"00000000 0100 0302 0504 0706 0908 0b0a 0d0c 0f0e",
				"00000010 1110 1312",
			},
		},
		{
			name: "Seventeen bytes leave one unpaired byte",
			data: sequence(17),
			expected: []string{
				"00000000 0100 0302 0504 0706 0908 0b0a 0d0c 0f0e",
				"00000010 10",
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if diff := cmp.Diff(tc.expected, Lines(tc.data)); diff != "" {
				t.Errorf("Lines() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLines_CountAndOffsets(t *testing.T) {
	t.Parallel()

	for _, n := range []int{0, 1, 15, 16, 17, 31, 32, 33, 255, 256, 1000} {
		n := n
		t.Run(fmt.Sprintf("len=%d", n), func(t *testing.T) {
			t.Parallel()

			lines := Lines(sequence(n))

			require.Len(t, lines, (n+BytesPerLine-1)/BytesPerLine)
			for i, line := range lines {
				require.True(t, strings.HasPrefix(line, fmt.Sprintf("%08x", i*BytesPerLine)), "line %d has offset %q", i, line[:8])
			}
		})
	}
}

func TestLines_RoundTrip(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	data := append([]byte("hexdump round trip \x00\xff\x7f"), sequence(41)...)
	require.Equal(t, 1, len(data)%2, "the input must end with an unpaired byte")

	// --- Act ---
	var rebuilt []byte
	for _, line := range Lines(data) {
		for _, group := range strings.Fields(line)[1:] {
			raw, err := hex.DecodeString(group)
			require.NoError(t, err)
			// Groups are little-endian, so the bytes come back reversed.
			for i := len(raw) - 1; i >= 0; i-- {
				rebuilt = append(rebuilt, raw[i])
			}
		}
	}

	// --- Assert ---
	require.Equal(t, data, rebuilt)
}

func TestLines_LimitIsPrefix(t *testing.T) {
	t.Parallel()

	data := sequence(100)
	full := Lines(data)

	for _, limit := range []int{0, 1, 16, 20, 33, 100} {
		limited := Lines(data[:limit])
		// Every complete line of the limited dump matches the full dump.
		for i := 0; i < limit/BytesPerLine; i++ {
			require.Equal(t, full[i], limited[i])
		}
	}
}

func TestWrite(t *testing.T) {
	t.Parallel()

	t.Run("Writes newline terminated lines", func(t *testing.T) {
		t.Parallel()
		out := &bytes.Buffer{}

		err := Write(out, []byte{0x00, 0x01, 0x02, 0x03})

		require.NoError(t, err)
		require.Equal(t, "00000000 0100 0302\n", out.String())
	})

	t.Run("Empty input writes nothing", func(t *testing.T) {
		t.Parallel()
		out := &bytes.Buffer{}

		require.NoError(t, Write(out, nil))
		require.Empty(t, out.String())
	})

	t.Run("Output is identical across calls", func(t *testing.T) {
		t.Parallel()
		first, second := &bytes.Buffer{}, &bytes.Buffer{}

		require.NoError(t, Write(first, sequence(77)))
		require.NoError(t, Write(second, sequence(77)))
		require.Equal(t, first.String(), second.String())
	})

	t.Run("Writer errors are returned", func(t *testing.T) {
		t.Parallel()

		err := Write(failingWriter{}, sequence(4))

		require.Error(t, err)
		require.ErrorIs(t, err, errWriteFailed)
	})
}

var errWriteFailed = errors.New("write failed")

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errWriteFailed }
