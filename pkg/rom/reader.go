// Package rom provides read-only, memory-mapped access to ROM images and
// pattern scanning over them. Sprite data in a ROM is located by byte
// signature, so the reader is built around the searcher in pkg/search.
package rom

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/spritepal/patscan/pkg/search"
)

// ErrOutOfRange is returned by ReadBytes when the requested window extends
// past the end of the file.
var ErrOutOfRange = errors.New("rom: read past end of file")

// Reader is a read-only view of a ROM file. On unix platforms the file is
// memory mapped; elsewhere it is loaded into memory on Open. A Reader is
// safe for concurrent use since it never writes to the mapping.
type Reader struct {
	path    string
	data    []byte
	unmap func() error
}

// Open maps the ROM at path. The caller must Close the reader to release
// the mapping.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("rom: open %s: %w", path, err)
	}
	defer f.Close() //nolint:errcheck

	fi, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("rom: stat %s: %w", path, err)
	}

	data, unmap, err := mapFile(f, fi.Size())
	if err != nil {
		return nil, fmt.Errorf("rom: map %s: %w", path, err)
	}
	return &Reader{path: path, data: data, unmap: unmap}, nil
}

// Close releases the mapping. The reader must not be used afterwards.
func (r *Reader) Close() error {
	return r.unmap()
}

// Path returns the path the reader was opened with.
func (r *Reader) Path() string { return r.path }

// Size returns the length of the ROM in bytes.
func (r *Reader) Size() int64 { return int64(len(r.data)) }

// Bytes returns the underlying mapping. The returned slice must be treated
// as read-only and is only valid until Close.
func (r *Reader) Bytes() []byte { return r.data }

// ReadBytes copies size bytes starting at offset. It returns ErrOutOfRange
// when the window does not fit in the file.
func (r *Reader) ReadBytes(offset, size int64) ([]byte, error) {
	if offset < 0 || size < 0 || offset+size > int64(len(r.data)) {
		return nil, fmt.Errorf("%w: offset %d size %d in %d byte file", ErrOutOfRange, offset, size, len(r.data))
	}
	out := make([]byte, size)
	copy(out, r.data[offset:offset+size])
	return out, nil
}

// SearchPattern returns an iterator over the offsets of pattern within
// [start, end). An end of 0 (or past EOF) means end of file. After each hit
// the scan resumes step bytes later; a step below 1 is treated as 1.
// Offsets are absolute file offsets.
func (r *Reader) SearchPattern(pattern []byte, start, end, step int64) iter.Seq[int64] {
	size := int64(len(r.data))
	if end <= 0 || end > size {
		end = size
	}
	if start < 0 {
		start = 0
	}
	if start > end {
		start = end
	}
	window := r.data[start:end]

	return func(yield func(int64) bool) {
		for off := range search.All(window, pattern, step) {
			if !yield(start + off) {
				return
			}
		}
	}
}

// SearchPatternParallel scans the whole file for pattern using the given
// number of workers and returns every match offset in ascending order.
// Chunks overlap by len(pattern)-1 bytes so matches straddling a chunk
// boundary are not lost; each match is owned by the chunk its first byte
// falls in. workers below 1 means one per CPU.
func (r *Reader) SearchPatternParallel(ctx context.Context, pattern []byte, workers int) ([]int64, error) {
	size := int64(len(r.data))
	if len(pattern) == 0 || int64(len(pattern)) > size {
		return nil, nil
	}
	if workers < 1 {
		workers = runtime.NumCPU()
	}

	chunk := (size + int64(workers) - 1) / int64(workers)
	if chunk < int64(len(pattern)) {
		chunk = int64(len(pattern))
	}

	hits := make([][]int64, workers)
	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		start := int64(w) * chunk
		if start >= size {
			break
		}
		end := start + chunk + int64(len(pattern)) - 1
		if end > size {
			end = size
		}

		g.Go(func() error {
			window := r.data[start:end]
			for off := range search.All(window, pattern, 1) {
				if err := ctx.Err(); err != nil {
					return err
				}
				if off >= chunk {
					// Owned by the next worker.
					break
				}
				hits[w] = append(hits[w], start+off)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Workers cover disjoint, ascending start ranges and report in order,
	// so concatenation is already sorted.
	var all []int64
	for _, h := range hits {
		all = append(all, h...)
	}
	return all, nil
}
