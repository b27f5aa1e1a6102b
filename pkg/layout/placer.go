package layout

import (
	"github.com/OpenTraceLab/OpenTraceSchematic/pkg/schematic"
)

// Component body metrics, in pixels. Heights grow with the taller of the
// left and right pin columns; top/bottom pins spread across the fixed width
// and do not affect sizing.
const (
	BaseWidth    = 120.0
	MinHeight    = 60.0
	HeaderHeight = 30.0
	PinSpacing   = 10.0
)

// Flow layout pitch: components are placed in input order, left to right,
// wrapping after MaxColumns. The pitch leaves routing clearance between
// default placements.
const (
	ColumnPitch = 300.0
	RowPitch    = 260.0
	MaxColumns  = 4

	originX = 40.0
	originY = 40.0
)

// Placements is the mutable placement store, the only persistent state of
// the layout subsystem. The version token increments on every mutation so
// the routing engine can detect staleness without observing individual
// entries.
type Placements struct {
	entries map[string]schematic.Placement
	order   []string
	version uint64
}

// NewPlacements returns an empty placement store.
func NewPlacements() *Placements {
	return &Placements{entries: make(map[string]schematic.Placement)}
}

// Get returns the placement for a component id.
func (p *Placements) Get(id string) (schematic.Placement, bool) {
	pl, ok := p.entries[id]
	return pl, ok
}

// Len returns the number of placed components.
func (p *Placements) Len() int {
	return len(p.entries)
}

// Version returns the current mutation token.
func (p *Placements) Version() uint64 {
	return p.version
}

// Each visits placements in insertion order.
func (p *Placements) Each(fn func(id string, pl schematic.Placement)) {
	for _, id := range p.order {
		fn(id, p.entries[id])
	}
}

// Move sets a component's position, snapped to the grid, and bumps the
// version token. Width and height are never recomputed on move. Returns
// false if the id has no placement.
func (p *Placements) Move(id string, x, y float64) bool {
	pl, ok := p.entries[id]
	if !ok {
		return false
	}
	pl.X = Snap(x)
	pl.Y = Snap(y)
	p.entries[id] = pl
	p.version++
	return true
}

// Reset discards all placements. This is the only way placement state is
// ever wiped; re-running the placer on a populated store is a no-op.
func (p *Placements) Reset() {
	p.entries = make(map[string]schematic.Placement)
	p.order = p.order[:0]
	p.version++
}

func (p *Placements) set(id string, pl schematic.Placement) {
	if _, ok := p.entries[id]; !ok {
		p.order = append(p.order, id)
	}
	p.entries[id] = pl
	p.version++
}

// PlaceComponents assigns every component an initial position in a
// row-major flow layout. If the store already holds placements the call
// returns immediately: initial placement happens once, and manual moves
// survive later passes.
func PlaceComponents(p *Placements, comps []schematic.Component) {
	if p.Len() > 0 {
		return
	}
	for i, c := range comps {
		col := i % MaxColumns
		row := i / MaxColumns
		p.set(c.ID, schematic.Placement{
			X: Snap(originX + float64(col)*ColumnPitch),
			Y: Snap(originY + float64(row)*RowPitch),
			W: SnapUp(BaseWidth),
			H: ComponentHeight(c),
		})
	}
}

// ComponentHeight derives a body height from the pin count: tall enough
// for the header plus the taller of the two side columns, never below the
// minimum, rounded up to the grid. A component with no pins still gets the
// minimum height.
func ComponentHeight(c schematic.Component) float64 {
	g := SplitSides(c.Pins)
	n := len(g.Left)
	if len(g.Right) > n {
		n = len(g.Right)
	}
	content := HeaderHeight + 2*PinSpacing*float64(n)
	if content < MinHeight {
		content = MinHeight
	}
	return SnapUp(content)
}
