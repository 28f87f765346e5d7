//go:build !unix

package rom

import (
	"io"
	"os"
)

// Platforms without mmap read the whole file up front.
func mapFile(f *os.File, size int64) ([]byte, func() error, error) {
	data := make([]byte, size)
	if _, err := io.ReadFull(f, data); err != nil {
		return nil, nil, err
	}
	return data, func() error { return nil }, nil
}
