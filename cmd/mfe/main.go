// Package main is the entry point for the mfe CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/growth-blocks/mfe/internal/cmd"
	"github.com/growth-blocks/mfe/internal/cmdutil"
	mfeerrors "github.com/growth-blocks/mfe/internal/errors"
)

func main() {
	rootCmd := cmd.NewRootCmd(&cmdutil.GlobalConfig{})

	if err := rootCmd.Execute(); err != nil {
		var exitErr *mfeerrors.ExitError
		if errors.As(err, &exitErr) {
			// Only print if the command layer hasn't already printed it
			if !exitErr.Printed {
				fmt.Fprintln(os.Stderr, mfeerrors.Message(err))
			}
			os.Exit(exitErr.Code)
		}
		// Non-ExitError: flag or argument parsing failed
		fmt.Fprintln(os.Stderr, mfeerrors.Message(err))
		os.Exit(mfeerrors.ExitFailure)
	}
}
