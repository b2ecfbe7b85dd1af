//go:build js && wasm
// +build js,wasm

package gdialog

import (
	"errors"
	"syscall/js"
)

type Result struct {
	Path string // empty
	Name string
	Data []byte
}

var ErrUnsupported = errors.New("file dialog is not available in the browser build")

func OpenFile(title string) (Result, error) {
	return Result{}, ErrUnsupported
}

func ShowError(title, message string) {
	js.Global().Call("alert", title+": "+message)
}
