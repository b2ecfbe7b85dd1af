//go:build !js && !wasm
// +build !js,!wasm

package gos

import (
	"errors"
	"os"
)

func ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

func WriteFile(name string, data []byte) error {
	return os.WriteFile(name, data, 0644)
}

func IsNotExist(err error) bool {
	return os.IsNotExist(err) || errors.Is(err, ErrNotExist)
}
