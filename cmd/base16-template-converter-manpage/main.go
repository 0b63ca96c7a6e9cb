package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/ntpeters/base16-template-converter/internal/cli"
	"github.com/ntpeters/base16-template-converter/internal/version"
)

func main() {
	rootCmd := cli.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "BASE16-TEMPLATE-CONVERTER",
		Section: "1",
		Source:  "base16-template-converter " + version.Version,
		Manual:  "base16-template-converter manual",
	}

	if err := doc.GenMan(rootCmd, header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
