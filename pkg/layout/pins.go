package layout

import (
	"github.com/OpenTraceLab/OpenTraceSchematic/pkg/schematic"
)

// SideGroups holds a component's pins partitioned by declared side,
// preserving input order within each group. Pins without a valid side land
// in Left.
type SideGroups struct {
	Left, Right, Top, Bottom []schematic.Pin
}

// SplitSides partitions pins into side groups.
func SplitSides(pins []schematic.Pin) SideGroups {
	var g SideGroups
	for _, p := range pins {
		switch p.Side {
		case schematic.SideRight:
			g.Right = append(g.Right, p)
		case schematic.SideTop:
			g.Top = append(g.Top, p)
		case schematic.SideBottom:
			g.Bottom = append(g.Bottom, p)
		default:
			g.Left = append(g.Left, p)
		}
	}
	return g
}

// PinLocation is a resolved pin position: the exact pixel point on the
// component border, and the side it exits from.
type PinLocation struct {
	X, Y float64
	Side schematic.Side
}

// Point returns the pixel position.
func (l PinLocation) Point() schematic.Point {
	return schematic.Point{X: l.X, Y: l.Y}
}

// AccessCell returns the grid cell one step outward from the pin,
// perpendicular to the component edge. Routing starts and ends there so the
// search does not begin inside the body's obstacle cells.
func (l PinLocation) AccessCell() (gx, gy int) {
	dx, dy := l.Side.Delta()
	return ToGrid(l.X) + dx, ToGrid(l.Y) + dy
}

// LocatePin resolves a pin identifier to its pixel position on the placed
// body. Side groups are searched in a fixed order (left, right, top,
// bottom); within a group the pin's index sets its offset along the edge.
// The identifier matches either the pin number or the pin name.
//
// An unknown identifier resolves to a fallback point below the header on
// the left edge, with ok=false. Callers decide whether to warn; the
// fallback keeps routing total even on bad net data.
func LocatePin(c schematic.Component, pl schematic.Placement, ident string) (PinLocation, bool) {
	g := SplitSides(c.Pins)

	for i, p := range g.Left {
		if p.Matches(ident) {
			return PinLocation{
				X:    pl.X,
				Y:    pl.Y + sideOffset(i),
				Side: schematic.SideLeft,
			}, true
		}
	}
	for i, p := range g.Right {
		if p.Matches(ident) {
			return PinLocation{
				X:    pl.X + pl.W,
				Y:    pl.Y + sideOffset(i),
				Side: schematic.SideRight,
			}, true
		}
	}
	for i, p := range g.Top {
		if p.Matches(ident) {
			return PinLocation{
				X:    pl.X + spanOffset(pl.W, len(g.Top), i),
				Y:    pl.Y,
				Side: schematic.SideTop,
			}, true
		}
	}
	for i, p := range g.Bottom {
		if p.Matches(ident) {
			return PinLocation{
				X:    pl.X + spanOffset(pl.W, len(g.Bottom), i),
				Y:    pl.Y + pl.H,
				Side: schematic.SideBottom,
			}, true
		}
	}

	return PinLocation{X: pl.X, Y: pl.Y + HeaderHeight, Side: schematic.SideLeft}, false
}

// sideOffset is the vertical offset of the i-th pin in a left/right group:
// below the header, one spacing in, then two spacings per pin.
func sideOffset(i int) float64 {
	return HeaderHeight + PinSpacing + float64(i)*PinSpacing*2
}

// spanOffset distributes n top/bottom pins across the body width, snapped
// to the grid so the lead-in to the access cell stays orthogonal.
func spanOffset(width float64, n, i int) float64 {
	return Snap(width / float64(n+1) * float64(i+1))
}
