package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/specpatch/specpatch/cmd/specpatch"
	"github.com/specpatch/specpatch/internal/version"
)

func main() {
	rootCmd := specpatch.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "SPECPATCH",
		Section: "1",
		Source:  "specpatch " + version.Version,
		Manual:  "specpatch manual",
	}

	err := doc.GenMan(rootCmd, header, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
