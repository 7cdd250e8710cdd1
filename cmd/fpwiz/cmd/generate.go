package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceFootprint/pkg/footprint/registry"
	"github.com/OpenTraceLab/OpenTraceFootprint/pkg/kicad/modfile"
)

func newGenerateCmd(reg *registry.Registry) *cobra.Command {
	var (
		flags   paramFlags
		output  string
		libDir  string
		name    string
		library string
	)

	cmd := &cobra.Command{
		Use:   "generate <wizard>",
		Short: "Generate a footprint file",
		Long: `Run a wizard and write the footprint as a KiCad 6 .kicad_mod file.

Parameters start at the wizard defaults, then the [defaults.<wizard>]
table of the config file, then --params, then each --set in order.

Without -o the file is written to <lib>/<value>.kicad_mod, where <lib> is
--lib or output.library_dir from the config. Use -o - for stdout.`,
		Example: `  fpwiz generate Hirose_FX23 --set "Pins.pin count=60"
  fpwiz generate Hirose_FX23 --params fx23.params --lib Connector_Hirose.pretty
  fpwiz generate Hirose_FX23 -o -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			cfg := configFromContext(ctx)

			w, err := reg.Lookup(args[0])
			if err != nil {
				return err
			}

			fp, err := generate(ctx, w, flags)
			if err != nil {
				return err
			}
			if name != "" {
				fp.Name = name
			}

			var opts []modfile.WriteOption
			if library == "" {
				library = cfg.Output.Library
			}
			if library != "" {
				opts = append(opts, modfile.WithLibrary(library))
			}

			if output == "-" {
				return modfile.Write(cmd.OutOrStdout(), fp, opts...)
			}

			path := output
			if path == "" {
				if libDir == "" {
					libDir = cfg.Output.LibraryDir
				}
				path = modfile.LibraryPath(libDir, fp.Name)
			}

			if err := modfile.WriteFile(path, fp, opts...); err != nil {
				return err
			}
			logger.Debug("footprint written", "path", path)

			printSuccess(cmd.OutOrStdout(), "%s %s", fp.Name, styleDim.Render(fmt.Sprintf("(%d pads) -> %s", len(fp.Pads), path)))
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&flags.sets, "set", nil, `override a parameter, e.g. --set "Pins.pin count=60" (repeatable)`)
	cmd.Flags().StringVar(&flags.paramsFile, "params", "", "read parameter overrides from a file")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file, - for stdout")
	cmd.Flags().StringVar(&libDir, "lib", "", "footprint library directory (.pretty)")
	cmd.Flags().StringVar(&name, "name", "", "footprint name (default: the wizard's value)")
	cmd.Flags().StringVar(&library, "library", "", "library nickname written as a name prefix")
	cmd.MarkFlagsMutuallyExclusive("output", "lib")

	return cmd
}
