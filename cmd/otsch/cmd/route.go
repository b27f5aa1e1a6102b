package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceSchematic/pkg/route"
	"github.com/OpenTraceLab/OpenTraceSchematic/pkg/schematic"
)

var routeJSONOut string

var routeCmd = &cobra.Command{
	Use:   "route <design_file>",
	Short: "Lay out components and route all nets",
	Long: `Place every component on the grid, route every net, and print a
summary. With --json, the placement map and route list are written out for
rendering or export collaborators.`,
	Args: cobra.ExactArgs(1),
	RunE: runRoute,
}

func init() {
	rootCmd.AddCommand(routeCmd)
	routeCmd.Flags().StringVar(&routeJSONOut, "json", "", "write placements and routes to a JSON file")
}

// layoutOutput is the external interface handed to rendering and export
// collaborators: the placement map and the routed polylines.
type layoutOutput struct {
	Placements map[string]schematic.Placement `json:"placements"`
	Routes     []schematic.Route              `json:"routes"`
}

func runRoute(cmd *cobra.Command, args []string) error {
	design, err := loadDesign(args[0])
	if err != nil {
		return err
	}

	engine := route.NewEngine(design)
	engine.Router = route.Router{StrictPins: cfg.Strict(), Logger: logger}

	routes := engine.Routes()
	logger.Info("routing complete",
		"components", len(design.Components),
		"nets", len(design.Nets),
		"routes", len(routes))

	bends := 0
	for _, rt := range routes {
		if n := len(rt.Path); n > 2 {
			bends += n - 2
		}
	}
	logger.Debug("route geometry", "bends", bends)

	if routeJSONOut != "" {
		out := layoutOutput{Placements: make(map[string]schematic.Placement), Routes: routes}
		engine.Placements().Each(func(id string, pl schematic.Placement) {
			out.Placements[id] = pl
		})
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return fmt.Errorf("encode layout: %w", err)
		}
		if err := os.WriteFile(routeJSONOut, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", routeJSONOut, err)
		}
		logger.Info("wrote layout", "file", routeJSONOut)
		return nil
	}

	for _, rt := range routes {
		fmt.Printf("%-12s %-16s %s  %d points\n", rt.ID, rt.NetName, rt.Color.Hex(), len(rt.Path))
	}
	return nil
}
