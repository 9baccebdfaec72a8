package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/ticketlink/cmd/ticketlink"
	"github.com/arthur-debert/ticketlink/internal/version"
)

func main() {
	rootCmd := ticketlink.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "TICKETLINK",
		Section: "1",
		Source:  "ticketlink " + version.Version,
		Manual:  "ticketlink manual",
	}

	err := doc.GenMan(rootCmd, header, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
