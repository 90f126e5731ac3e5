//go:build js && wasm
// +build js,wasm

package gdialog

import "errors"

type Result struct {
	Path string
	Name string
	Data []byte
}

var errNoDialog = errors.New("file dialog is not available in the browser build")

func OpenFile(title string) (Result, error) {
	return Result{}, errNoDialog
}

func IsCancelled(err error) bool {
	return false
}
