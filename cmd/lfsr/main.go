// cmd/lfsr/main.go
package main

import (
	"os"

	"lfsr/internal/app"
)

func main() {
	os.Exit(app.Run(os.Args[1:], os.Stdout, os.Stderr))
}
