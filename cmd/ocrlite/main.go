package main

import (
	"fmt"
	"os"

	"github.com/ocrlite/ocrlite/cmd/ocrlite/cmd"
	"github.com/ocrlite/ocrlite/internal/version"
)

func main() {
	ver, commit, date := version.Info()
	cmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", ver, commit, date)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
