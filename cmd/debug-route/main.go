// debug-route dumps the routing grid for a design file as ASCII art:
// blocked obstacle cells, routed wire cells, and their overlaps. Useful
// when a wire takes a surprising detour or the fallback path cuts through
// a body.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/OpenTraceLab/OpenTraceSchematic/pkg/layout"
	"github.com/OpenTraceLab/OpenTraceSchematic/pkg/netdsl"
	"github.com/OpenTraceLab/OpenTraceSchematic/pkg/route"
	"github.com/OpenTraceLab/OpenTraceSchematic/pkg/schematic"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: debug-route <design_file>")
		os.Exit(1)
	}

	var design *schematic.Design
	var err error
	if strings.EqualFold(filepath.Ext(os.Args[1]), ".json") {
		design, err = schematic.LoadJSONFile(os.Args[1])
	} else {
		design, err = netdsl.LoadFile(os.Args[1])
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	placements := layout.NewPlacements()
	layout.PlaceComponents(placements, design.Components)
	field := route.BuildField(placements)

	var router route.Router
	routes := router.Route(design, placements)

	// Collect wire cells, walking each polyline segment cell by cell
	wire := make(map[route.Cell]bool)
	for _, rt := range routes {
		for i := 0; i+1 < len(rt.Path); i++ {
			a := route.Cell{X: layout.ToGrid(rt.Path[i].X), Y: layout.ToGrid(rt.Path[i].Y)}
			b := route.Cell{X: layout.ToGrid(rt.Path[i+1].X), Y: layout.ToGrid(rt.Path[i+1].Y)}
			for c := a; ; {
				wire[c] = true
				if c == b {
					break
				}
				switch {
				case c.X < b.X:
					c.X++
				case c.X > b.X:
					c.X--
				case c.Y < b.Y:
					c.Y++
				default:
					c.Y--
				}
			}
		}
	}

	minX, minY, maxX, maxY := gridBounds(field, wire)
	fmt.Printf("Grid %d..%d x %d..%d, %d blocked cells, %d routes\n\n",
		minX, maxX, minY, maxY, len(field), len(routes))

	for y := minY; y <= maxY; y++ {
		var b strings.Builder
		for x := minX; x <= maxX; x++ {
			c := route.Cell{X: x, Y: y}
			switch {
			case wire[c] && field.Blocked(c):
				b.WriteByte('@')
			case wire[c]:
				b.WriteByte('o')
			case field.Blocked(c):
				b.WriteByte('#')
			default:
				b.WriteByte('.')
			}
		}
		fmt.Println(b.String())
	}

	fmt.Println()
	for _, rt := range routes {
		fmt.Printf("%-12s %-16s %d points\n", rt.ID, rt.NetName, len(rt.Path))
	}
}

func gridBounds(field route.Field, wire map[route.Cell]bool) (minX, minY, maxX, maxY int) {
	first := true
	visit := func(c route.Cell) {
		if first {
			minX, maxX, minY, maxY = c.X, c.X, c.Y, c.Y
			first = false
			return
		}
		if c.X < minX {
			minX = c.X
		}
		if c.X > maxX {
			maxX = c.X
		}
		if c.Y < minY {
			minY = c.Y
		}
		if c.Y > maxY {
			maxY = c.Y
		}
	}
	for c := range field {
		visit(c)
	}
	for c := range wire {
		visit(c)
	}
	return
}
