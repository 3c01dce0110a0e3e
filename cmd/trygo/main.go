package main

import (
	"fmt"
	"os"

	"trygo/internal/app"
)

// version is overridden at release time via -ldflags "-X main.version=...".
var version = "0.1.0"

func main() {
	app.Version = version
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
