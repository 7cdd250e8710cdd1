package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceFootprint/pkg/footprint/paramexpr"
	"github.com/OpenTraceLab/OpenTraceFootprint/pkg/footprint/registry"
)

func newParamsCmd(reg *registry.Registry) *cobra.Command {
	var asOverrides bool

	cmd := &cobra.Command{
		Use:   "params <wizard>",
		Short: "Show a wizard's parameters and their defaults",
		Long: `Show a wizard's parameters grouped by page.

With --overrides the defaults are printed in the syntax accepted by
--set and --params, ready to be saved and edited:

  fpwiz params Hirose_FX23 --overrides > fx23.params`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := reg.Lookup(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			p := w.Parameters()

			if asOverrides {
				fmt.Fprintf(out, "# %s\n", w.Description())
				for _, param := range p.All() {
					a := paramexpr.Assignment{Page: param.Page, Key: param.Name, Value: param.Value()}
					fmt.Fprintln(out, a.String())
				}
				return nil
			}

			printTitle(out, w.Name())
			fmt.Fprintln(out, "  "+styleDim.Render(w.Description()))
			for _, page := range p.Pages() {
				fmt.Fprintln(out)
				printTitle(out, "  "+page)
				for _, param := range p.All() {
					if param.Page != page {
						continue
					}
					printField(out, param.Name, param.Value())
					detail := string(param.Unit)
					if param.Hint != "" {
						detail += ", " + param.Hint
					}
					fmt.Fprintln(out, "  "+styleKey.Render("")+styleDim.Render(detail))
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asOverrides, "overrides", false, "print defaults as an overrides file")
	return cmd
}
