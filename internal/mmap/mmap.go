// Package mmap provides a read-only memory-mapped view of a file.
package mmap

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// ErrInvalidUTF8 is returned when a mapped file is not valid UTF-8 text.
var ErrInvalidUTF8 = errors.New("file is not valid UTF-8")

// Bytes returns the mapped contents. The slice is invalid after Close.
func (r *Region) Bytes() []byte { return r.data }

func (r *Region) Len() int { return len(r.data) }

// Text returns a copy of the contents as a string.
func (r *Region) Text() (string, error) {
	if !utf8.Valid(r.data) {
		return "", fmt.Errorf("%s: %w", r.path, ErrInvalidUTF8)
	}
	return string(r.data), nil
}

// ReadText maps path, validates it as UTF-8 and returns a copy of its text.
func ReadText(path string) (string, error) {
	r, err := Open(path)
	if err != nil {
		return "", err
	}
	defer r.Close()

	return r.Text()
}
