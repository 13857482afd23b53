package main

import (
	"os"

	"github.com/Payback159/x0go/cmd/x0/app"
)

func main() {
	if err := app.NewX0Command().Execute(); err != nil {
		os.Exit(1)
	}
}
