package route

import (
	"github.com/OpenTraceLab/OpenTraceSchematic/pkg/layout"
	"github.com/OpenTraceLab/OpenTraceSchematic/pkg/schematic"
)

// Engine owns the layout state for one design and caches the last routing
// pass. Routing is a pure function of (design, placements); the cache is
// keyed by explicit version tokens rather than observing mutations, so a
// stale read is impossible and an unchanged input never re-routes.
//
// Engine is not safe for concurrent use. Callers exposing concurrent edits
// must serialize access; each Routes call then acts on a snapshot.
type Engine struct {
	Router Router

	design     *schematic.Design
	placements *layout.Placements
	designVer  uint64

	cached       []schematic.Route
	cachedPlace  uint64
	cachedDesign uint64
	haveCache    bool
}

// NewEngine creates an engine and places the design's components.
func NewEngine(design *schematic.Design) *Engine {
	e := &Engine{
		design:     design,
		placements: layout.NewPlacements(),
	}
	layout.PlaceComponents(e.placements, design.Components)
	return e
}

// Design returns the current design.
func (e *Engine) Design() *schematic.Design {
	return e.design
}

// Placements exposes the placement store, shared read-only with rendering
// and export.
func (e *Engine) Placements() *layout.Placements {
	return e.placements
}

// SetDesign swaps the design. Existing placements survive so components
// keep their positions across netlist edits; new components are only
// placed after an explicit Reset.
func (e *Engine) SetDesign(design *schematic.Design) {
	e.design = design
	e.designVer++
	layout.PlaceComponents(e.placements, design.Components)
}

// MoveComponent drags one component to a new position, snapped to the
// grid. The next Routes call re-routes everything.
func (e *Engine) MoveComponent(id string, x, y float64) bool {
	return e.placements.Move(id, x, y)
}

// Reset wipes all placements and lays the design out from scratch.
func (e *Engine) Reset() {
	e.placements.Reset()
	layout.PlaceComponents(e.placements, e.design.Components)
}

// Routes returns the routed wires, recomputing only when the placement or
// design version changed since the cached pass.
func (e *Engine) Routes() []schematic.Route {
	pv := e.placements.Version()
	if e.haveCache && e.cachedPlace == pv && e.cachedDesign == e.designVer {
		return e.cached
	}
	e.cached = e.Router.Route(e.design, e.placements)
	e.cachedPlace = pv
	e.cachedDesign = e.designVer
	e.haveCache = true
	return e.cached
}
