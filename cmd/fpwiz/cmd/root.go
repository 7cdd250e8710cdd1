// Package cmd implements the fpwiz command-line interface
package cmd

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceFootprint/internal/config"
	"github.com/OpenTraceLab/OpenTraceFootprint/pkg/footprint/fx23"
	"github.com/OpenTraceLab/OpenTraceFootprint/pkg/footprint/registry"
)

var version = "0.1.0"

// newRegistry registers every wizard fpwiz ships with
func newRegistry() *registry.Registry {
	reg := registry.New()
	reg.MustRegister(fx23.New())
	return reg
}

// Execute runs the root command
func Execute() error {
	root := newRootCmd(newRegistry())
	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}
	return nil
}

func newRootCmd(reg *registry.Registry) *cobra.Command {
	var (
		verbose    bool
		configPath string
	)

	root := &cobra.Command{
		Use:   "fpwiz",
		Short: "fpwiz - parametric KiCad footprint generator",
		Long: `fpwiz runs footprint wizards and writes KiCad 6 footprint files.

Examples:
  fpwiz list                                        # Registered wizards
  fpwiz params Hirose_FX23                          # Parameters and defaults
  fpwiz generate Hirose_FX23 --set "Pins.pin count=60" -o FX23-60S.kicad_mod
  fpwiz inspect FX23-60S.kicad_mod                  # Summarise a footprint file
  fpwiz view Hirose_FX23                            # Interactive preview`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			logger := newLogger(cmd.ErrOrStderr(), level)

			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			logger.Debug("configuration loaded", "path", configPath, "library_dir", cfg.Output.LibraryDir)

			ctx := withConfig(withLogger(cmd.Context(), logger), cfg)
			cmd.SetContext(ctx)
			return nil
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default: user config dir)")

	root.AddCommand(newListCmd(reg))
	root.AddCommand(newParamsCmd(reg))
	root.AddCommand(newGenerateCmd(reg))
	root.AddCommand(newInspectCmd())
	root.AddCommand(newViewCmd(reg))
	root.AddCommand(newConfigCmd())

	return root
}
