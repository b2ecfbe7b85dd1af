// Package gos hides the file system from the GUI packages. Browser builds
// have no files: reads report ErrNotExist and writes fail.
package gos

import "errors"

var ErrNotExist = errors.New("file does not exist (oswrap)")

// ReadFile(name) ([]byte, error)
// WriteFile(name, data) error
// IsNotExist(err) bool
