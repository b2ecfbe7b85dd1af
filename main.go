package main

import (
	"clickchess/ui"
	"fmt"
	"os"
)

func main() {
	if err := ui.RunClickChess(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
