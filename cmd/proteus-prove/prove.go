package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/proteus-stark/proteus/pkg/proteus"
)

func newProveCmd() *cobra.Command {
	var length int
	var numQueries int
	var hashFunc string
	var outPath string

	cmd := &cobra.Command{
		Use:   "prove <example>",
		Short: "Generate a proof for one of the built-in example computations",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			ex, ok := registry()[args[0]]
			if !ok {
				return fmt.Errorf("unknown example %q (see 'proteus-prove examples list')", args[0])
			}

			a, tr, err := ex.build(length)
			if err != nil {
				return fmt.Errorf("failed to build %s trace: %w", ex.name, err)
			}

			params := proteus.DefaultParams()
			params.NumQueries = numQueries
			params.HashFunc = hashFunc

			proof, err := proteus.Prove(a, tr, params, logger)
			if err != nil {
				return fmt.Errorf("proof generation failed: %w", err)
			}

			data, err := proteus.ProofToJSON(proof)
			if err != nil {
				return fmt.Errorf("failed to serialize proof: %w", err)
			}

			if outPath == "" {
				_, err = os.Stdout.Write(append(data, '\n'))
				return err
			}
			return os.WriteFile(outPath, data, 0o644)
		},
	}

	cmd.Flags().IntVar(&length, "length", 16, "trace length (must be a power of two)")
	cmd.Flags().IntVar(&numQueries, "queries", 10, "number of FRI/trace queries")
	cmd.Flags().StringVar(&hashFunc, "hash", "sha256", "transcript hash: sha256 or sha3 (Merkle commitments always use sha256)")
	cmd.Flags().StringVar(&outPath, "out", "", "write proof JSON to this file instead of stdout")
	return cmd
}
