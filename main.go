package main

import (
	"evilboard/ui"
	"fmt"
	"os"
)

func main() {
	if err := ui.RunEvilBoard(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
