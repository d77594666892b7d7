package hexfmt

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"strings"
)

// BytesPerLine is the number of input bytes rendered on one line.
const BytesPerLine = 16

// FormatLine renders a single chunk of at most BytesPerLine bytes that starts
// at the given offset. Byte pairs are printed as little-endian 16-bit words;
// an unpaired trailing byte is printed on its own with two digits.
func FormatLine(offset int, chunk []byte) string {
	var sb strings.Builder
	sb.Grow(8 + len(chunk)/2*5 + 3)
	fmt.Fprintf(&sb, "%08x", offset)

	for i := 0; i < len(chunk); i += 2 {
		sb.WriteByte(' ')
		if i+1 < len(chunk) {
			fmt.Fprintf(&sb, "%04x", binary.LittleEndian.Uint16(chunk[i:i+2]))
		} else {
			fmt.Fprintf(&sb, "%02x", chunk[i])
		}
	}

	return sb.String()
}

// Lines splits data into BytesPerLine chunks and formats each of them.
// Empty input yields no lines.
func Lines(data []byte) []string {
	lines := make([]string, 0, (len(data)+BytesPerLine-1)/BytesPerLine)
	for offset := 0; offset < len(data); offset += BytesPerLine {
		end := min(offset+BytesPerLine, len(data))
		lines = append(lines, FormatLine(offset, data[offset:end]))
	}
	return lines
}

// Write formats data and writes every line, newline-terminated, to w.
func Write(w io.Writer, data []byte) error {
	bw := bufio.NewWriter(w)
	for _, line := range Lines(data) {
		if _, err := bw.WriteString(line); err != nil {
			return fmt.Errorf("failed to write dump line: %w", err)
		}
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("failed to write dump line: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to flush dump output: %w", err)
	}
	return nil
}
