//go:build !unix

package mmap

import (
	"fmt"
	"os"
)

// Region holds the contents of a whole file. Platforms without mmap read
// the file into memory instead.
type Region struct {
	path string
	data []byte
}

// Open reads the file at path.
func Open(path string) (*Region, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failure in read(%s): %w", path, err)
	}
	if len(data) == 0 {
		data = nil
	}
	return &Region{path: path, data: data}, nil
}

// Close releases the contents. Calling Close more than once is a no-op.
func (r *Region) Close() error {
	r.data = nil
	return nil
}
