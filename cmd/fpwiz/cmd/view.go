package cmd

import (
	"os"
	"strings"

	"gioui.org/app"
	"gioui.org/io/event"
	"gioui.org/io/key"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"
	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceFootprint/pkg/footprint"
	"github.com/OpenTraceLab/OpenTraceFootprint/pkg/footprint/registry"
	"github.com/OpenTraceLab/OpenTraceFootprint/pkg/kicad/modfile"
	"github.com/OpenTraceLab/OpenTraceFootprint/pkg/kicad/renderer"
)

// layerKeys toggles layer visibility in the viewer
var layerKeys = map[key.Name]string{
	"1": footprint.LayerFrontCopper,
	"2": footprint.LayerFrontFab,
	"3": footprint.LayerFrontSilkscreen,
	"4": footprint.LayerFrontCourtyard,
}

func newViewCmd(reg *registry.Registry) *cobra.Command {
	var flags paramFlags

	cmd := &cobra.Command{
		Use:   "view <wizard | file.kicad_mod>",
		Short: "Preview a footprint in an interactive viewer",
		Long: `Opens a footprint in a Gio window. The argument is either a wizard
name, run with the same parameter flags as generate, or a .kicad_mod file.

Controls:
  Left Click / R    - Rotate 90°
  Right Click / F   - Flip view
  Scroll Wheel      - Zoom in/out
  Space             - Fit footprint to window
  1-4               - Toggle F.Cu, F.Fab, F.SilkS, F.CrtYd
  X                 - Toggle text fields
  T                 - Next colour theme
  Q / Escape        - Quit`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			cfg := configFromContext(ctx)

			var fp *footprint.Footprint
			var err error
			if strings.HasSuffix(args[0], modfile.Extension) {
				fp, err = modfile.ParseFile(args[0])
			} else {
				var w footprint.Wizard
				if w, err = reg.Lookup(args[0]); err == nil {
					fp, err = generate(ctx, w, flags)
				}
			}
			if err != nil {
				return err
			}

			theme, err := renderer.ParseTheme(cfg.View.Theme)
			if err != nil {
				logger.Warn("falling back to the classic theme", "err", err)
			}

			printSummary(cmd.OutOrStdout(), fp)

			v := &viewer{
				fp:     fp,
				camera: renderer.NewCamera(cfg.View.Width, cfg.View.Height),
				opts:   renderer.Options{Layers: renderer.NewLayerConfig(), Theme: theme},
			}
			v.fit()

			go func() {
				w := new(app.Window)
				w.Option(app.Title("Footprint Viewer - " + fp.Name))
				w.Option(app.Size(unit.Dp(float32(cfg.View.Width)), unit.Dp(float32(cfg.View.Height))))

				if err := v.run(w); err != nil {
					logger.Error("viewer failed", "err", err)
					os.Exit(1)
				}
				os.Exit(0)
			}()
			app.Main()
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&flags.sets, "set", nil, "override a parameter (repeatable)")
	cmd.Flags().StringVar(&flags.paramsFile, "params", "", "read parameter overrides from a file")
	return cmd
}

type viewer struct {
	fp     *footprint.Footprint
	camera *renderer.Camera
	opts   renderer.Options
}

func (v *viewer) fit() {
	if bbox := v.fp.BoundingBox(); !bbox.IsEmpty() {
		v.camera.Fit(bbox)
	}
}

func (v *viewer) run(w *app.Window) error {
	var ops op.Ops

	for {
		switch e := w.Event().(type) {
		case app.DestroyEvent:
			return e.Err

		case app.FrameEvent:
			ops.Reset()
			gtx := app.NewContext(&ops, e)
			v.camera.UpdateScreenSize(e.Size.X, e.Size.Y)

			for {
				ev, ok := gtx.Event(key.Filter{})
				if !ok {
					break
				}
				if ke, ok := ev.(key.Event); ok && ke.State == key.Press {
					if v.handleKey(ke.Name) {
						return nil
					}
					w.Invalidate()
				}
			}

			for {
				ev, ok := gtx.Event(pointer.Filter{
					Target:  v,
					Kinds:   pointer.Press | pointer.Scroll,
					ScrollY: pointer.ScrollRange{Min: -100, Max: 100},
				})
				if !ok {
					break
				}
				pe, ok := ev.(pointer.Event)
				if !ok {
					continue
				}
				switch pe.Kind {
				case pointer.Press:
					if pe.Buttons == pointer.ButtonPrimary {
						v.camera.Rotate(90)
					} else if pe.Buttons == pointer.ButtonSecondary {
						v.camera.Flip()
					}
				case pointer.Scroll:
					factor := 1.0 - float64(pe.Scroll.Y)*0.1
					v.camera.ZoomAt(float64(pe.Position.X), float64(pe.Position.Y), factor)
				}
				w.Invalidate()
			}

			v.layout(gtx)
			e.Frame(&ops)
		}
	}
}

func (v *viewer) layout(gtx layout.Context) {
	renderer.RenderFootprint(gtx, v.camera, v.fp, v.opts)
	event.Op(gtx.Ops, v)
}

// handleKey applies a key press and reports whether the viewer should close
func (v *viewer) handleKey(k key.Name) bool {
	if layer, ok := layerKeys[k]; ok {
		v.opts.Layers.Toggle(layer)
		return false
	}

	switch k {
	case key.NameEscape, "Q":
		return true
	case "F":
		v.camera.Flip()
	case "R":
		v.camera.Rotate(90)
	case key.NameLeftArrow:
		v.camera.Rotate(-90)
	case key.NameSpace:
		v.fit()
	case "X":
		v.opts.NoTexts = !v.opts.NoTexts
	case "T":
		v.opts.Theme = (v.opts.Theme + 1) % renderer.ColorTheme(len(renderer.ThemeNames))
	}
	return false
}
