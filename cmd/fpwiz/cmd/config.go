package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceFootprint/internal/config"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return configFromContext(cmd.Context()).Encode(cmd.OutOrStdout())
		},
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write a default config file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			} else {
				p, err := config.DefaultPath()
				if err != nil {
					return err
				}
				path = p
			}

			if !force {
				if _, err := os.Stat(path); err == nil {
					printWarning(cmd.OutOrStdout(), "%s already exists, use --force to overwrite", path)
					return nil
				}
			}
			if err := config.Save(path, config.Default()); err != nil {
				return err
			}
			printSuccess(cmd.OutOrStdout(), "wrote %s", path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	cmd.AddCommand(initCmd)
	return cmd
}
