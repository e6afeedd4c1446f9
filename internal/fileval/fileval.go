// Package fileval reads Julia source inputs and rejects files that clearly
// are not source text: directories, oversized files and binary content.
package fileval

import (
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"
)

// ErrNoInput is returned when standard input was requested but is a terminal.
var ErrNoInput = errors.New("no input: pass a file path or pipe Julia source on stdin")

// FileTooLargeError is returned when input exceeds the configured maximum size.
type FileTooLargeError struct {
	Path    string
	Size    int64
	MaxSize int64
}

func (e *FileTooLargeError) Error() string {
	return fmt.Sprintf(
		"%s: file too large (%d > %d bytes); increase [file-validation] max-file-size in .julint.toml to override",
		e.Path, e.Size, e.MaxSize,
	)
}

// DirectoryError is returned when a path names a directory.
type DirectoryError struct {
	Path string
}

func (e *DirectoryError) Error() string {
	return e.Path + ": is a directory"
}

// NotUTF8Error is returned when input does not appear to be valid UTF-8 text.
type NotUTF8Error struct {
	Path string
}

func (e *NotUTF8Error) Error() string {
	return e.Path + ": file does not appear to be valid UTF-8 text"
}

// ReadFile returns the contents of path after the pre-lint checks:
//  1. The path must not be a directory
//  2. Maximum size check (when maxSize > 0)
//  3. UTF-8 check
//
// An empty file is valid.
func ReadFile(path string, maxSize int64) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", err
	}
	if info.IsDir() {
		return "", &DirectoryError{Path: path}
	}
	if maxSize > 0 && info.Size() > maxSize {
		return "", &FileTooLargeError{Path: path, Size: info.Size(), MaxSize: maxSize}
	}

	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	return read(f, path, maxSize)
}

// ReadStdin reads all of r, which is reported under name in errors.
// It applies the same size and UTF-8 checks as ReadFile.
func ReadStdin(r io.Reader, name string, maxSize int64) (string, error) {
	if f, ok := r.(*os.File); ok && isTerminal(f) {
		return "", ErrNoInput
	}
	return read(r, name, maxSize)
}

// read consumes r once. The size is checked again on the bytes read since
// a file can grow after Stat and a stream has no size up front.
func read(r io.Reader, name string, maxSize int64) (string, error) {
	if maxSize > 0 {
		r = io.LimitReader(r, maxSize+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("%s: %w", name, err)
	}
	if maxSize > 0 && int64(len(data)) > maxSize {
		return "", &FileTooLargeError{Path: name, Size: int64(len(data)), MaxSize: maxSize}
	}
	if !utf8.Valid(data) {
		return "", &NotUTF8Error{Path: name}
	}
	return string(data), nil
}
