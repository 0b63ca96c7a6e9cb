package main

import (
	"fmt"
	"os"

	"github.com/ntpeters/base16-template-converter/internal/cli"
	"github.com/ntpeters/base16-template-converter/pkg/errors"
)

func main() {
	rootCmd := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		// Per-file failures were already reported
		if !errors.IsErrorCode(err, errors.ErrConversionFailed) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
