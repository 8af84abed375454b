//go:build !ebiten

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "ising-gui needs the ebiten build tag.")
	fmt.Fprintln(os.Stderr, "Use `go run -tags ebiten ./cmd/ising-gui` or build with `-tags ebiten`; `./cmd/ising` is the console driver.")
	os.Exit(2)
}
