package main

import (
	"fmt"
	"os"

	checkcommits "github.com/arthur-debert/check-commits/cmd/check-commits"
	"github.com/arthur-debert/check-commits/pkg/ui/styles"
)

func main() {
	rootCmd := checkcommits.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		errorStyle := styles.GetStyle("Error")
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
