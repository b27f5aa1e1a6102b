package layout

import (
	"fmt"
	"testing"

	"github.com/OpenTraceLab/OpenTraceSchematic/pkg/schematic"
)

func sidePins(left, right int) []schematic.Pin {
	var pins []schematic.Pin
	for i := 0; i < left; i++ {
		pins = append(pins, schematic.Pin{Number: fmt.Sprintf("L%d", i), Side: schematic.SideLeft})
	}
	for i := 0; i < right; i++ {
		pins = append(pins, schematic.Pin{Number: fmt.Sprintf("R%d", i), Side: schematic.SideRight})
	}
	return pins
}

func TestPlaceComponentsFlow(t *testing.T) {
	var comps []schematic.Component
	for i := 0; i < 6; i++ {
		comps = append(comps, schematic.Component{ID: fmt.Sprintf("U%d", i)})
	}

	p := NewPlacements()
	PlaceComponents(p, comps)

	if p.Len() != 6 {
		t.Fatalf("Len = %d, want 6", p.Len())
	}

	cases := []struct {
		id   string
		x, y float64
	}{
		{"U0", 40, 40},
		{"U1", 340, 40},
		{"U3", 940, 40},
		{"U4", 40, 300}, // wraps after four columns
		{"U5", 340, 300},
	}
	for _, c := range cases {
		pl, ok := p.Get(c.id)
		if !ok {
			t.Fatalf("no placement for %s", c.id)
		}
		if pl.X != c.x || pl.Y != c.y {
			t.Errorf("%s at (%v,%v), want (%v,%v)", c.id, pl.X, pl.Y, c.x, c.y)
		}
		if pl.W != BaseWidth {
			t.Errorf("%s width = %v, want %v", c.id, pl.W, BaseWidth)
		}
	}
}

func TestPlaceComponentsInsertionOrder(t *testing.T) {
	comps := []schematic.Component{{ID: "B"}, {ID: "A"}, {ID: "C"}}
	p := NewPlacements()
	PlaceComponents(p, comps)

	var got []string
	p.Each(func(id string, _ schematic.Placement) {
		got = append(got, id)
	})
	want := []string{"B", "A", "C"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("iteration order %v, want %v", got, want)
		}
	}
}

func TestPlaceComponentsIdempotent(t *testing.T) {
	comps := []schematic.Component{{ID: "U1"}, {ID: "U2"}}
	p := NewPlacements()
	PlaceComponents(p, comps)

	if !p.Move("U1", 503, 207) {
		t.Fatal("Move failed")
	}
	pl, _ := p.Get("U1")
	if pl.X != 500 || pl.Y != 210 {
		t.Fatalf("moved to (%v,%v), want snapped (500,210)", pl.X, pl.Y)
	}

	// A second placement pass must not disturb the manual move.
	PlaceComponents(p, comps)
	pl, _ = p.Get("U1")
	if pl.X != 500 || pl.Y != 210 {
		t.Errorf("re-place overwrote manual move: (%v,%v)", pl.X, pl.Y)
	}

	// Only Reset wipes; a fresh pass then lays out from scratch.
	p.Reset()
	if p.Len() != 0 {
		t.Fatalf("Len after Reset = %d", p.Len())
	}
	PlaceComponents(p, comps)
	pl, _ = p.Get("U1")
	if pl.X != 40 || pl.Y != 40 {
		t.Errorf("U1 after reset at (%v,%v), want (40,40)", pl.X, pl.Y)
	}
}

func TestPlacementsVersion(t *testing.T) {
	p := NewPlacements()
	v0 := p.Version()
	PlaceComponents(p, []schematic.Component{{ID: "U1"}})
	if p.Version() == v0 {
		t.Error("version unchanged after placement")
	}
	v1 := p.Version()
	p.Move("U1", 100, 100)
	if p.Version() == v1 {
		t.Error("version unchanged after move")
	}
	if p.Move("nope", 0, 0) {
		t.Error("Move on unknown id reported success")
	}
}

func TestComponentHeight(t *testing.T) {
	cases := []struct {
		name        string
		left, right int
		want        float64
	}{
		{"no pins", 0, 0, MinHeight},
		{"one per side", 1, 1, MinHeight},
		{"taller side wins", 2, 6, 150}, // 30 + 2*10*6
		{"left heavy", 5, 1, 130},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			comp := schematic.Component{ID: "U1", Pins: sidePins(c.left, c.right)}
			if got := ComponentHeight(comp); got != c.want {
				t.Errorf("height = %v, want %v", got, c.want)
			}
		})
	}
}
