// Package main is the entry point for the zpodtg CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/zpodfactory/zpodtg/internal/cmd"
	zerrors "github.com/zpodfactory/zpodtg/internal/errors"
)

func main() {
	rootCmd := cmd.NewRootCmd()

	if err := rootCmd.Execute(); err != nil {
		// Commands may wrap errors with an explicit exit code.
		var exitErr *zerrors.ExitError
		if errors.As(err, &exitErr) {
			if !exitErr.Printed {
				fmt.Fprintln(os.Stderr, "Error:", err)
			}
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(cmd.ExitGeneralError)
	}
}
