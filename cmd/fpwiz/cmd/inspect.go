package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceFootprint/pkg/footprint"
	"github.com/OpenTraceLab/OpenTraceFootprint/pkg/kicad/modfile"
)

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <file.kicad_mod>",
		Short: "Summarise a footprint file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fp, err := modfile.ParseFile(args[0])
			if err != nil {
				return err
			}
			printSummary(cmd.OutOrStdout(), fp)
			return nil
		},
	}
}

func printSummary(out io.Writer, fp *footprint.Footprint) {
	printTitle(out, fp.Name)
	if fp.Description != "" {
		printField(out, "Description", fp.Description)
	}
	printField(out, "Value", fp.Value)
	if fp.Attribute != "" {
		printField(out, "Attribute", string(fp.Attribute))
	}

	var connected, noConnect int
	for _, p := range fp.Pads {
		if p.NoConnect {
			noConnect++
		} else {
			connected++
		}
	}
	printField(out, "Pads", len(fp.Pads))
	printField(out, "  SMD", len(fp.PadsByType(footprint.PadSMD)))
	printField(out, "  Through-hole", len(fp.PadsByType(footprint.PadThroughHole)))
	if n := len(fp.PadsByType(footprint.PadNPTH)); n > 0 {
		printField(out, "  NPTH", n)
	}
	printField(out, "  Connected", connected)
	printField(out, "  No-connect", noConnect)

	for _, layer := range []string{footprint.LayerFrontFab, footprint.LayerFrontSilkscreen, footprint.LayerFrontCourtyard} {
		lines := fp.LinesOnLayer(layer)
		if len(lines) == 0 {
			continue
		}
		bbox := fp.LayerBoundingBox(layer)
		printField(out, layer, fmt.Sprintf("%d lines, %.2f x %.2f mm", len(lines), bbox.Width(), bbox.Height()))
	}

	if bbox := fp.BoundingBox(); !bbox.IsEmpty() {
		printField(out, "Extent", fmt.Sprintf("%.2f x %.2f mm", bbox.Width(), bbox.Height()))
	}
}
