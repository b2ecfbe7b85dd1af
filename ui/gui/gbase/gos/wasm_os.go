//go:build js || wasm
// +build js wasm

package gos

import (
	"errors"
	"fmt"
)

func ReadFile(name string) ([]byte, error) {
	return nil, fmt.Errorf("read %s: %w", name, ErrNotExist)
}

func WriteFile(name string, data []byte) error {
	return fmt.Errorf("write %s: no file system in browser", name)
}

func IsNotExist(err error) bool {
	return errors.Is(err, ErrNotExist)
}
