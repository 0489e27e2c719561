// Command proteus-prove generates and verifies STARK proofs for the
// example computations shipped under examples/.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "proteus-prove:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "proteus-prove",
		Short: "Generate and verify transparent STARK proofs",
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable progress logging")
	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		level := zerolog.InfoLevel
		if !verbose {
			level = zerolog.Disabled
		}
		logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger().Level(level)
		cmd.SetContext(withLogger(cmd.Context(), logger))
	}

	root.AddCommand(newProveCmd(), newVerifyCmd(), newExamplesCmd())
	return root
}
