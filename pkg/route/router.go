package route

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/OpenTraceLab/OpenTraceSchematic/pkg/layout"
	"github.com/OpenTraceLab/OpenTraceSchematic/pkg/schematic"
)

// searchMargin is the slack, in cells, added around a pin pair's access
// points to form the A* search window. Keeps worst-case search cost bounded
// on large sheets.
const searchMargin = 10

// Wire colors by net class.
var (
	ColorSignal = schematic.RGB(0x2E, 0x86, 0xC1)
	ColorPower  = schematic.RGB(0xC0, 0x39, 0x2B)
	ColorGround = schematic.RGB(0x1E, 0x84, 0x49)
)

// NetColor picks a wire color: the declared class wins, then well-known
// power/ground substrings in the net name, then the signal default.
func NetColor(n schematic.Net) schematic.Color {
	switch n.Class {
	case schematic.ClassPower:
		return ColorPower
	case schematic.ClassGround:
		return ColorGround
	case schematic.ClassSignal:
		return ColorSignal
	}
	name := strings.ToUpper(n.Name)
	if strings.Contains(name, "GND") {
		return ColorGround
	}
	for _, s := range []string{"VCC", "VDD", "3V3", "5V"} {
		if strings.Contains(name, s) {
			return ColorPower
		}
	}
	return ColorSignal
}

// Router turns a design plus placements into routed wire polylines.
// The zero value routes with the lenient pin policy and no logging.
type Router struct {
	// StrictPins makes unresolved pin identifiers warn through Logger
	// instead of silently falling back. The fallback point is still used
	// either way; routing never aborts on bad net data.
	StrictPins bool
	Logger     *log.Logger
}

// pinPoint is one resolved connection of a net.
type pinPoint struct {
	px  schematic.Point
	loc layout.PinLocation
}

// Route recomputes every route from scratch. For each net, connections are
// resolved to pin points in order; nets with fewer than two resolved points
// produce nothing. Consecutive pin pairs are chained, each pair routed
// independently through the shared obstacle field.
//
// Output order is net order, then segment order within the net. Route ids
// are "<netID>-<segment>".
func (r *Router) Route(design *schematic.Design, placements *layout.Placements) []schematic.Route {
	field := BuildField(placements)
	routes := make([]schematic.Route, 0, len(design.Nets))

	for _, net := range design.Nets {
		pts := r.resolve(design, placements, net)
		if len(pts) < 2 {
			continue
		}
		col := NetColor(net)
		for i := 0; i+1 < len(pts); i++ {
			path := r.routePair(pts[i], pts[i+1], field)
			routes = append(routes, schematic.Route{
				ID:      fmt.Sprintf("%s-%d", net.ID, i),
				NetID:   net.ID,
				NetName: net.Name,
				Segment: i,
				Color:   col,
				Path:    path,
			})
		}
	}
	return routes
}

// resolve maps a net's connections to pin points, skipping connections
// whose component is unknown or unplaced. Unresolvable pin identifiers
// keep their fallback point so leniency degrades gracefully.
func (r *Router) resolve(design *schematic.Design, placements *layout.Placements, net schematic.Net) []pinPoint {
	pts := make([]pinPoint, 0, len(net.Connections))
	for _, conn := range net.Connections {
		comp := design.Component(conn.ComponentID)
		if comp == nil {
			continue
		}
		pl, ok := placements.Get(conn.ComponentID)
		if !ok {
			continue
		}
		loc, found := layout.LocatePin(*comp, pl, conn.Pin)
		if !found && r.StrictPins && r.Logger != nil {
			r.Logger.Warn("pin not found, using fallback point",
				"net", net.Name, "component", conn.ComponentID, "pin", conn.Pin)
		}
		pts = append(pts, pinPoint{px: loc.Point(), loc: loc})
	}
	return pts
}

// routePair routes one consecutive pin pair. The search runs between the
// two access cells, one step outside each body; the literal pin points are
// then attached so the wire terminates exactly on the pins.
func (r *Router) routePair(a, b pinPoint, field Field) []schematic.Point {
	ax, ay := a.loc.AccessCell()
	bx, by := b.loc.AccessCell()
	start := Cell{ax, ay}
	end := Cell{bx, by}

	cells := FindPath(start, end, field, BoundsAround(start, end, searchMargin))

	path := make([]schematic.Point, 0, len(cells)+2)
	path = append(path, a.px)
	for _, c := range cells {
		path = append(path, schematic.Point{X: layout.ToPx(c.X), Y: layout.ToPx(c.Y)})
	}
	path = append(path, b.px)
	return compactPolyline(path)
}

// compactPolyline drops duplicate and collinear interior points from the
// assembled pixel polyline. The pin endpoints are always kept.
func compactPolyline(path []schematic.Point) []schematic.Point {
	if len(path) <= 2 {
		return path
	}
	out := path[:1]
	for i := 1; i < len(path); i++ {
		p := path[i]
		last := out[len(out)-1]
		if p == last {
			continue
		}
		if len(out) >= 2 {
			prev := out[len(out)-2]
			if (prev.X == last.X && last.X == p.X) || (prev.Y == last.Y && last.Y == p.Y) {
				out[len(out)-1] = p
				continue
			}
		}
		out = append(out, p)
	}
	return out
}
