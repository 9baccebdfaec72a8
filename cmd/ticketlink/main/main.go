package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/ticketlink/cmd/ticketlink"
	"github.com/arthur-debert/ticketlink/pkg/style"
)

func main() {
	rootCmd := ticketlink.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		// Print the error in red
		fmt.Fprintln(os.Stderr, style.ErrorStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
