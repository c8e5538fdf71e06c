//go:build unix

package mmap

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Region is a private, read-only mapping of a whole file. The mapping stays
// valid until Close.
type Region struct {
	path string
	fd   int
	data []byte // mmap'd MAP_PRIVATE, PROT_READ; nil for empty files
}

// Open maps the file at path.
func Open(path string) (*Region, error) {
	fd, err := unix.Open(path, unix.O_RDONLY|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, fmt.Errorf("failure in open(%s): %w", path, err)
	}

	var stat unix.Stat_t
	if err := unix.Fstat(fd, &stat); err != nil {
		unix.Close(fd)
		return nil, fmt.Errorf("failure in fstat(%s): %w", path, err)
	}

	// mmap rejects zero-length mappings.
	if stat.Size == 0 {
		return &Region{path: path, fd: fd}, nil
	}

	data, err := unix.Mmap(fd, 0, int(stat.Size), unix.PROT_READ, unix.MAP_PRIVATE)
	if err != nil {
		unix.Close(fd)
		return nil, fmt.Errorf("failure in mmap(%s): %w", path, err)
	}

	return &Region{path: path, fd: fd, data: data}, nil
}

// Close unmaps the region and closes the file descriptor. Calling Close
// more than once is a no-op.
func (r *Region) Close() error {
	if r.fd < 0 {
		return nil
	}
	var firstErr error
	if r.data != nil {
		if err := unix.Munmap(r.data); err != nil {
			firstErr = fmt.Errorf("failure in munmap(%s): %w", r.path, err)
		}
	}
	if err := unix.Close(r.fd); err != nil && firstErr == nil {
		firstErr = fmt.Errorf("failure in close(%s): %w", r.path, err)
	}
	r.data = nil
	r.fd = -1
	return firstErr
}
