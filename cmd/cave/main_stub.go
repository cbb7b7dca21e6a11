//go:build !ebiten

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "The GUI build of cavemap requires the ebiten build tag.")
	fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten ./cmd/cave` or build with `-tags ebiten`.")
	fmt.Fprintln(os.Stderr, "For console output use ./cmd/cave-run instead.")
	os.Exit(2)
}
