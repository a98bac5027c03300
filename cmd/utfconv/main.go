package main

import (
	"os"

	"github.com/coregx/utfconv/cmd/utfconv/app"
)

func main() {
	if err := app.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
