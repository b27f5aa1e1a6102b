package cmd

import (
	"github.com/spf13/cobra"

	appui "github.com/OpenTraceLab/OpenTraceSchematic/internal/ui"
	"github.com/OpenTraceLab/OpenTraceSchematic/pkg/route"
)

var uiCmd = &cobra.Command{
	Use:   "ui [design_file]",
	Short: "Launch the interactive schematic viewer",
	Long: `Open the routed schematic in a window. Left-drag a component to move
it (snapped to the grid, all nets re-route), drag empty space to pan,
scroll to zoom.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		viewer := appui.New(appui.Options{Theme: cfg.Theme})
		if len(args) == 1 {
			design, err := loadDesign(args[0])
			if err != nil {
				return err
			}
			engine := route.NewEngine(design)
			engine.Router = route.Router{StrictPins: cfg.Strict(), Logger: logger}
			viewer.SetEngine(engine, args[0])
		}
		return viewer.Run()
	},
}

func init() {
	rootCmd.AddCommand(uiCmd)
}
