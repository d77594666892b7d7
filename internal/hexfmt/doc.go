// Package hexfmt renders byte slices as little-endian hex dump lines: an
// eight digit offset followed by up to eight two-byte words, sixteen bytes
// per line.
package hexfmt
