package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/proteus-stark/proteus/pkg/proteus"
)

func newVerifyCmd() *cobra.Command {
	var proofPath string
	var numQueries int
	var hashFunc string
	var exampleName string

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify a proof produced by 'prove'",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			ex, ok := registry()[exampleName]
			if !ok {
				return fmt.Errorf("unknown example %q (see 'proteus-prove examples list')", exampleName)
			}

			var data []byte
			var err error
			if proofPath == "" || proofPath == "-" {
				data, err = io.ReadAll(os.Stdin)
			} else {
				data, err = os.ReadFile(proofPath)
			}
			if err != nil {
				return fmt.Errorf("failed to read proof: %w", err)
			}

			proof, err := proteus.ProofFromJSON(data)
			if err != nil {
				return fmt.Errorf("failed to parse proof: %w", err)
			}

			a, err := ex.fromPublic(proof.PublicInputs)
			if err != nil {
				return fmt.Errorf("failed to reconstruct %s AIR from proof public inputs: %w", ex.name, err)
			}

			params := proteus.DefaultParams()
			params.NumQueries = numQueries
			params.HashFunc = hashFunc

			if proteus.Verify(a, proof, params, logger) {
				fmt.Fprintln(os.Stdout, "valid")
				return nil
			}
			fmt.Fprintln(os.Stdout, "invalid")
			os.Exit(1)
			return nil
		},
	}

	cmd.Flags().StringVar(&exampleName, "example", "", "which example AIR the proof was generated against (required)")
	cmd.Flags().StringVar(&proofPath, "proof", "", "proof JSON file to verify (default: stdin)")
	cmd.Flags().IntVar(&numQueries, "queries", 10, "number of FRI/trace queries the proof was generated with")
	cmd.Flags().StringVar(&hashFunc, "hash", "sha256", "transcript hash: sha256 or sha3 (Merkle commitments always use sha256)")
	cmd.MarkFlagRequired("example")
	return cmd
}
