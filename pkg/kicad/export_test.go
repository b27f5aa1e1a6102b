package kicad

import (
	"bytes"
	"strings"
	"testing"

	"github.com/chewxy/sexp"

	"github.com/OpenTraceLab/OpenTraceSchematic/pkg/layout"
	"github.com/OpenTraceLab/OpenTraceSchematic/pkg/route"
	"github.com/OpenTraceLab/OpenTraceSchematic/pkg/schematic"
)

func exportFixture() (*schematic.Design, *layout.Placements, []schematic.Route) {
	d := &schematic.Design{
		Components: []schematic.Component{
			{ID: "U1", Name: "MCU", Pins: []schematic.Pin{{Number: "1", Side: schematic.SideRight}}},
			{ID: "R1", Pins: []schematic.Pin{{Number: "1", Side: schematic.SideLeft}}},
		},
		Nets: []schematic.Net{
			{ID: "N1", Connections: []schematic.Connection{
				{ComponentID: "U1", Pin: "1"},
				{ComponentID: "R1", Pin: "1"},
			}},
		},
	}
	p := layout.NewPlacements()
	layout.PlaceComponents(p, d.Components)
	var r route.Router
	return d, p, r.Route(d, p)
}

func TestExportWellFormed(t *testing.T) {
	d, p, routes := exportFixture()

	var buf bytes.Buffer
	e := &Exporter{Title: "Blinky"}
	if err := e.Export(&buf, d, p, routes); err != nil {
		t.Fatalf("Export: %v", err)
	}
	out := buf.String()

	// The whole sheet must parse back as a single s-expression.
	sexps, err := sexp.ParseString(out)
	if err != nil {
		t.Fatalf("exported sheet does not parse: %v", err)
	}
	if len(sexps) != 1 || sexps[0].IsLeaf() {
		t.Fatalf("expected one compound toplevel, got %d", len(sexps))
	}

	for _, want := range []string{
		"(kicad_sch", "(version 20231120)", `(generator "otsch")`,
		`(title "Blinky")`, "(rectangle", `(text "MCU"`, "(wire",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}

	// One wire element per polyline segment.
	wires := strings.Count(out, "(wire ")
	segs := 0
	for _, rt := range routes {
		segs += len(rt.Path) - 1
	}
	if wires != segs {
		t.Errorf("%d wire elements for %d polyline segments", wires, segs)
	}
}

func TestExportDeterministic(t *testing.T) {
	d, p, routes := exportFixture()
	e := &Exporter{Title: "Blinky"}

	var a, b bytes.Buffer
	if err := e.Export(&a, d, p, routes); err != nil {
		t.Fatalf("Export: %v", err)
	}
	if err := e.Export(&b, d, p, routes); err != nil {
		t.Fatalf("Export: %v", err)
	}
	if a.String() != b.String() {
		t.Error("two exports of the same input differ")
	}
}

func TestExportScale(t *testing.T) {
	d, p, routes := exportFixture()

	var buf bytes.Buffer
	e := &Exporter{Scale: 1.0}
	if err := e.Export(&buf, d, p, routes); err != nil {
		t.Fatalf("Export: %v", err)
	}
	// U1 sits at (40,40); at unit scale the rectangle keeps pixel values.
	if !strings.Contains(buf.String(), "(rectangle (start 40.00 40.00)") {
		t.Error("scale 1.0 not applied to placements")
	}

	buf.Reset()
	e = &Exporter{} // zero scale falls back to the default
	if err := e.Export(&buf, d, p, routes); err != nil {
		t.Fatalf("Export: %v", err)
	}
	if !strings.Contains(buf.String(), "(rectangle (start 4.00 4.00)") {
		t.Error("default scale not applied")
	}
}

func TestJunctionPoints(t *testing.T) {
	shared := schematic.Point{X: 100, Y: 100}
	routes := []schematic.Route{
		{Path: []schematic.Point{{X: 0, Y: 100}, shared}},
		{Path: []schematic.Point{shared, {X: 200, Y: 100}}},
		{Path: []schematic.Point{shared, {X: 100, Y: 200}}},
	}
	got := junctionPoints(routes)
	if len(got) != 1 || got[0] != shared {
		t.Errorf("junctions = %v, want just %v", got, shared)
	}

	// Two ends meeting is a plain chain, not a junction.
	got = junctionPoints(routes[:2])
	if len(got) != 0 {
		t.Errorf("junctions = %v, want none", got)
	}
}
