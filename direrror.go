package main

import "fmt"

// Wraps a directory creation failure with the path that could not be created.
type DirError struct {
	Path string
	Err  error
}

func (e *DirError) Error() string {
	return fmt.Sprintf("failed to create directory %q: %v", e.Path, e.Err)
}

func (e *DirError) Unwrap() error {
	return e.Err
}

func newDirError(path string, err error) *DirError {
	return &DirError{Path: path, Err: err}
}
