// Package route builds the obstacle field from placed components, finds
// orthogonal wire paths with an A* search, and assembles per-net routes.
package route

import (
	"github.com/OpenTraceLab/OpenTraceSchematic/pkg/layout"
	"github.com/OpenTraceLab/OpenTraceSchematic/pkg/schematic"
)

// Cell is a grid cell on the routing grid.
type Cell struct {
	X, Y int
}

// Field is the set of grid cells blocked by component bodies. It is
// ephemeral: rebuilt from scratch at the start of every routing pass.
type Field map[Cell]struct{}

// Clearance is the padding, in cells, kept between wires and component
// bodies.
const Clearance = 1

// BuildField rasterizes every placement plus clearance into blocked cells.
func BuildField(placements *layout.Placements) Field {
	f := make(Field)
	placements.Each(func(id string, pl schematic.Placement) {
		gx, gy := layout.ToGrid(pl.X), layout.ToGrid(pl.Y)
		gw, gh := layout.ToGrid(pl.W), layout.ToGrid(pl.H)
		for x := gx - Clearance; x <= gx+gw+Clearance; x++ {
			for y := gy - Clearance; y <= gy+gh+Clearance; y++ {
				f[Cell{x, y}] = struct{}{}
			}
		}
	})
	return f
}

// Blocked reports whether a cell lies inside a component footprint.
func (f Field) Blocked(c Cell) bool {
	_, ok := f[c]
	return ok
}

// Bounds is a rectangular search window in grid coordinates, inclusive.
type Bounds struct {
	MinX, MinY, MaxX, MaxY int
}

// BoundsAround returns the bounding rectangle of two cells expanded by
// margin cells on every side.
func BoundsAround(a, b Cell, margin int) Bounds {
	bo := Bounds{MinX: a.X, MinY: a.Y, MaxX: a.X, MaxY: a.Y}
	if b.X < bo.MinX {
		bo.MinX = b.X
	}
	if b.X > bo.MaxX {
		bo.MaxX = b.X
	}
	if b.Y < bo.MinY {
		bo.MinY = b.Y
	}
	if b.Y > bo.MaxY {
		bo.MaxY = b.Y
	}
	bo.MinX -= margin
	bo.MinY -= margin
	bo.MaxX += margin
	bo.MaxY += margin
	return bo
}

// Contains reports whether the cell lies inside the window.
func (b Bounds) Contains(c Cell) bool {
	return c.X >= b.MinX && c.X <= b.MaxX && c.Y >= b.MinY && c.Y <= b.MaxY
}
