//go:build !js && !wasm
// +build !js,!wasm

package gdialog

import (
	"os"
	"path/filepath"

	"github.com/sqweek/dialog"
)

type Result struct {
	Path string
	Name string
	Data []byte
}

// OpenFile asks for a layout file and reads it.
func OpenFile(title string) (Result, error) {
	path, err := dialog.File().Title(title).Filter("Layout files", "txt", "layout").Load()
	if err != nil {
		return Result{}, err
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Path: path,
		Name: filepath.Base(path),
		Data: b,
	}, nil
}

// ShowError blocks on a native error box.
func ShowError(title, message string) {
	dialog.Message("%s", message).Title(title).Error()
}
