package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceSchematic/pkg/layout"
	"github.com/OpenTraceLab/OpenTraceSchematic/pkg/schematic"
)

var infoCmd = &cobra.Command{
	Use:   "info <design_file>",
	Short: "Show netlist statistics",
	Long: `Display component, pin and net statistics for a design file,
including connections that would not resolve to a declared pin.`,
	Args: cobra.ExactArgs(1),
	RunE: runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	design, err := loadDesign(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("Design: %s\n", args[0])
	if design.Name != "" {
		fmt.Printf("Name: %s\n", design.Name)
	}
	fmt.Println()

	fmt.Println("Components:")
	totalPins := 0
	for _, c := range design.Components {
		g := layout.SplitSides(c.Pins)
		totalPins += len(c.Pins)
		fmt.Printf("  %-8s %-20s pins=%d (L%d R%d T%d B%d) height=%.0fpx\n",
			c.ID, c.Name, len(c.Pins),
			len(g.Left), len(g.Right), len(g.Top), len(g.Bottom),
			layout.ComponentHeight(c))
	}
	fmt.Println()

	fmt.Println("Statistics:")
	fmt.Printf("  Components: %d\n", len(design.Components))
	fmt.Printf("  Pins: %d\n", totalPins)
	fmt.Printf("  Nets: %d\n", len(design.Nets))

	byClass := make(map[schematic.NetClass]int)
	for _, n := range design.Nets {
		byClass[n.Class]++
	}
	for _, cls := range []schematic.NetClass{schematic.ClassSignal, schematic.ClassPower, schematic.ClassGround} {
		if byClass[cls] > 0 {
			fmt.Printf("  Nets (%s): %d\n", cls, byClass[cls])
		}
	}
	if n := byClass[schematic.NetClass("")]; n > 0 {
		fmt.Printf("  Nets (unclassed): %d\n", n)
	}
	fmt.Println()

	// Connection health: report identifiers that match no declared pin.
	// Routing would still proceed with the fallback point for these.
	bad := 0
	for _, net := range design.Nets {
		for _, conn := range net.Connections {
			comp := design.Component(conn.ComponentID)
			if comp == nil {
				fmt.Printf("  WARNING net %s: unknown component %q\n", net.Name, conn.ComponentID)
				bad++
				continue
			}
			found := false
			for _, p := range comp.Pins {
				if p.Matches(conn.Pin) {
					found = true
					break
				}
			}
			if !found {
				fmt.Printf("  WARNING net %s: %s has no pin %q\n", net.Name, conn.ComponentID, conn.Pin)
				bad++
			}
		}
	}
	if bad == 0 {
		fmt.Println("All connections resolve.")
	} else {
		fmt.Printf("%d connection(s) fall back to the default pin point.\n", bad)
	}
	return nil
}
