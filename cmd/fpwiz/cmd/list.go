package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceFootprint/pkg/footprint/registry"
)

func newListCmd(reg *registry.Registry) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered footprint wizards",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			printTitle(out, fmt.Sprintf("Wizards (%d)", len(reg.Names())))
			for _, w := range reg.Wizards() {
				fmt.Fprintf(out, "  %-20s %s\n", styleValue.Render(w.Name()), styleDim.Render(w.Description()))
			}
			return nil
		},
	}
}
