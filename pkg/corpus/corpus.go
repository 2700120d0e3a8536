// Package corpus loads text inputs for the cstr CLI and benchmarks.
// Inputs are plain files, stdin ("-"), or zstd-compressed files, and
// are handed back line by line as string values.
package corpus

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"

	"cstr-go/pkg/buffers"
	"cstr-go/pkg/cstr"
)

// maxLineSize bounds a single corpus line.
const maxLineSize = 16 * 1024 * 1024

// Load reads the file at path and returns its lines. A path of "-"
// reads stdin; a ".zst" suffix selects transparent zstd decompression.
func Load(path string) ([]*cstr.CString, error) {
	if path == "-" {
		return Read(os.Stdin, false)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("corpus: open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f, strings.HasSuffix(path, ".zst"))
}

// Read returns every line of r as a CString. The terminating newline is
// not part of any line; an empty trailing line is dropped.
func Read(r io.Reader, compressed bool) ([]*cstr.CString, error) {
	if compressed {
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("corpus: zstd reader: %w", err)
		}
		defer dec.Close()
		r = dec
	}

	scratch := buffers.ScanBufferPool.Get()
	defer buffers.ScanBufferPool.Put(scratch)

	sc := bufio.NewScanner(r)
	sc.Buffer(scratch, maxLineSize)

	var lines []*cstr.CString
	for sc.Scan() {
		lines = append(lines, cstr.FromBytes(sc.Bytes()))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("corpus: scan: %w", err)
	}
	return lines, nil
}

// Write stores lines at path, one per line, zstd-compressed when the
// path ends in ".zst".
func Write(path string, lines []*cstr.CString) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("corpus: create %s: %w", path, err)
	}
	defer f.Close()

	var w io.Writer = f
	if strings.HasSuffix(path, ".zst") {
		enc, err := zstd.NewWriter(f)
		if err != nil {
			return fmt.Errorf("corpus: zstd writer: %w", err)
		}
		defer enc.Close()
		w = enc
	}

	bw := bufio.NewWriter(w)
	for _, line := range lines {
		if _, err := bw.Write(line.CBytes()[:line.Len()]); err != nil {
			return fmt.Errorf("corpus: write: %w", err)
		}
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("corpus: write: %w", err)
		}
	}
	return bw.Flush()
}
