package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/teplostanski/mergeful/internal/cli"
	"github.com/teplostanski/mergeful/internal/version"
)

func main() {
	rootCmd := cli.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "MERGEFUL",
		Section: "1",
		Source:  "mergeful " + version.Version,
		Manual:  "mergeful manual",
	}

	if err := doc.GenMan(rootCmd, header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
