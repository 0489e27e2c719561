package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

func newExamplesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "examples",
		Short: "Inspect the built-in example computations",
	}
	cmd.AddCommand(newExamplesListCmd())
	return cmd
}

func newExamplesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the built-in example computations",
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := registry()
			names := make([]string, 0, len(reg))
			for name := range reg {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				fmt.Printf("%-10s %s\n", name, reg[name].description)
			}
			return nil
		},
	}
}
