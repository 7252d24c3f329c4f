package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0"

type rootFlags struct {
	definitionsPath string
	verbose         bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	f := &rootFlags{}

	root := &cobra.Command{
		Use:           "assess",
		Short:         "Score self-assessment questionnaires from the terminal",
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	root.PersistentFlags().StringVar(&f.definitionsPath, "definitions", "", "Path to the assessment definitions file (defaults to ASSESSMENT_DEFINITIONS_PATH)")
	root.PersistentFlags().BoolVarP(&f.verbose, "verbose", "v", false, "Log to stderr while running")

	root.AddCommand(newListCmd(f))
	root.AddCommand(newEvaluateCmd(f))
	return root
}
