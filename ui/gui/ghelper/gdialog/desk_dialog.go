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

// OpenFile asks for a game file; dialog.ErrCancelled is returned as is
func OpenFile(title string) (Result, error) {
	path, err := dialog.File().Title(title).Filter("Game files", "txt", "fen", "uci").Filter("All files", "*").Load()
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

func IsCancelled(err error) bool {
	return err == dialog.ErrCancelled
}
