package main

import (
	"fmt"
	"os"

	"github.com/specpatch/specpatch/cmd/specpatch"
	"github.com/specpatch/specpatch/pkg/output/styles"
)

func main() {
	rootCmd := specpatch.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		// Print the error in red
		errorStyle := styles.GetStyle("Error")
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
