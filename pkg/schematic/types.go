// Package schematic defines the data model for automatic schematic layout:
// components with sided pins, nets connecting them, and the derived placement
// and route geometry produced by the layout and routing passes.
package schematic

import (
	"fmt"
	"image/color"
)

// Side identifies which edge of a component body a pin sits on.
type Side string

const (
	SideLeft   Side = "left"
	SideRight  Side = "right"
	SideTop    Side = "top"
	SideBottom Side = "bottom"
)

// Valid reports whether s is one of the four component edges.
func (s Side) Valid() bool {
	switch s {
	case SideLeft, SideRight, SideTop, SideBottom:
		return true
	}
	return false
}

// Delta returns the outward unit direction for the side, in grid cells.
// A wire leaving a left-side pin first steps one cell to the left.
func (s Side) Delta() (dx, dy int) {
	switch s {
	case SideRight:
		return 1, 0
	case SideTop:
		return 0, -1
	case SideBottom:
		return 0, 1
	default:
		return -1, 0
	}
}

// Pin is a single connection point on a component. Number is the physical
// pin label ("1", "14", "A3"); Name is the logical signal name ("VCC",
// "PB5"). Net connections may reference a pin by either one.
type Pin struct {
	Number string `json:"pinNumber"`
	Name   string `json:"name"`
	Side   Side   `json:"side,omitempty"`
	Type   string `json:"type,omitempty"`
}

// Matches reports whether ident refers to this pin by number or name.
func (p Pin) Matches(ident string) bool {
	return ident != "" && (p.Number == ident || p.Name == ident)
}

// Component is a part to be placed on the schematic. The pin order is
// significant: it fixes each pin's offset along its declared side.
type Component struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Pins []Pin  `json:"pins"`
}

// NetClass selects the wire color for a net.
type NetClass string

const (
	ClassSignal NetClass = "signal"
	ClassPower  NetClass = "power"
	ClassGround NetClass = "ground"
)

// Connection references one pin of one component by identifier.
type Connection struct {
	ComponentID string `json:"componentId"`
	Pin         string `json:"pin"`
}

// Net is an ordered list of connections to be wired together. Routing
// chains consecutive connections; it does not build a Steiner tree.
type Net struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Class       NetClass     `json:"type,omitempty"`
	Connections []Connection `json:"connections"`
}

// Design is the full input to layout and routing: the component list and
// the net list, as produced by an upstream data source.
type Design struct {
	Name       string      `json:"name,omitempty"`
	Components []Component `json:"components"`
	Nets       []Net       `json:"nets"`
}

// Component returns the component with the given id, or nil.
func (d *Design) Component(id string) *Component {
	for i := range d.Components {
		if d.Components[i].ID == id {
			return &d.Components[i]
		}
	}
	return nil
}

// Point is a position in schematic pixel space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Placement is the placed body of one component in pixel space. X/Y is the
// top-left corner; all four values are multiples of the grid quantum.
type Placement struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// Color is a wire color that serializes as "#rrggbb" for downstream
// consumers.
type Color struct {
	color.NRGBA
}

// RGB builds an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{color.NRGBA{R: r, G: g, B: b, A: 0xFF}}
}

// Hex returns the "#rrggbb" form.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (c Color) MarshalJSON() ([]byte, error) {
	return []byte(`"` + c.Hex() + `"`), nil
}

// Route is one routed wire segment of a net: the polyline between two
// consecutive pins. Path starts and ends on the exact pin positions.
type Route struct {
	ID      string  `json:"id"`
	NetID   string  `json:"netId"`
	NetName string  `json:"netName"`
	Segment int     `json:"segment"`
	Color   Color   `json:"color"`
	Path    []Point `json:"path"`
}
