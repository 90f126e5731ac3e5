//go:build js && wasm
// +build js,wasm

package gclipboard

import "errors"

var errNoClipboard = errors.New("clipboard is not available in the browser build")

func ReadAll() (string, error) {
	return "", errNoClipboard
}

func WriteAll(text string) error {
	return errNoClipboard
}

func Supported() bool {
	return false
}
