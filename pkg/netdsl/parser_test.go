package netdsl

import (
	"strings"
	"testing"

	"github.com/OpenTraceLab/OpenTraceSchematic/pkg/schematic"
)

const blinky = `
design "Blinky"

# the controller
component U1 "ATtiny85" {
    pin 1 "PB5" side left
    pin 4 "GND" side left
    pin 8 "VCC" side right type power
}

component R1 "330R" {
    pin 1
    pin 2
}

net VCC_RAIL "VCC" class power {
    U1.8
    R1.1
}

net N2 {
    U1.PB5
    R1.2
}
`

func mustParse(t *testing.T, input string) *File {
	t.Helper()
	p, err := NewParser()
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	f, err := p.ParseString(input)
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	return f
}

func TestParseFile(t *testing.T) {
	f := mustParse(t, blinky)

	if f.Design != "Blinky" {
		t.Errorf("design = %q", f.Design)
	}
	comps := f.Components()
	if len(comps) != 2 {
		t.Fatalf("got %d components", len(comps))
	}
	u1 := comps[0]
	if u1.Ref != "U1" || u1.Name != "ATtiny85" || len(u1.Pins) != 3 {
		t.Fatalf("U1 = %+v", u1)
	}
	if p := u1.Pins[0]; p.Number != "1" || p.Name != "PB5" || p.Side != "left" {
		t.Errorf("pin 1 = %+v", p)
	}
	if p := u1.Pins[2]; p.Side != "right" || p.Type != "power" {
		t.Errorf("pin 8 = %+v", p)
	}
	// Anonymous pins keep empty names and default side.
	if p := comps[1].Pins[0]; p.Name != "" || p.Side != "" {
		t.Errorf("R1 pin 1 = %+v", p)
	}

	nets := f.Nets()
	if len(nets) != 2 {
		t.Fatalf("got %d nets", len(nets))
	}
	if nets[0].ID != "VCC_RAIL" || nets[0].Class != "power" || len(nets[0].Conns) != 2 {
		t.Errorf("net 0 = %+v", nets[0])
	}
	// Connections accept numeric and named pins.
	if c := nets[1].Conns[0]; c.Component != "U1" || c.Pin != "PB5" {
		t.Errorf("conn = %+v", c)
	}
}

func TestToDesign(t *testing.T) {
	d, err := mustParse(t, blinky).ToDesign()
	if err != nil {
		t.Fatalf("ToDesign: %v", err)
	}
	if d.Name != "Blinky" || len(d.Components) != 2 || len(d.Nets) != 2 {
		t.Fatalf("design %q: %d components, %d nets", d.Name, len(d.Components), len(d.Nets))
	}
	if d.Nets[0].Class != schematic.ClassPower {
		t.Errorf("net class = %q", d.Nets[0].Class)
	}
	// A net without a quoted name falls back to its id.
	if d.Nets[1].Name != "N2" {
		t.Errorf("net name = %q", d.Nets[1].Name)
	}
	if d.Components[0].Pins[0].Side != schematic.SideLeft {
		t.Errorf("pin side = %q", d.Components[0].Pins[0].Side)
	}

	// A component without a quoted name falls back to its ref.
	d2, err := mustParse(t, `component C1 { pin 1 }`).ToDesign()
	if err != nil {
		t.Fatalf("ToDesign: %v", err)
	}
	if d2.Components[0].Name != "C1" {
		t.Errorf("component name = %q, want ref fallback", d2.Components[0].Name)
	}
}

func TestToDesignErrors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{
			"duplicate component",
			`component U1 { pin 1 }` + "\n" + `component U1 { pin 1 }`,
			"duplicate component",
		},
		{
			"unknown component in net",
			`component U1 { pin 1 }` + "\n" + `net N1 { U1.1 U9.1 }`,
			"unknown component",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := mustParse(t, c.input).ToDesign()
			if err == nil || !strings.Contains(err.Error(), c.want) {
				t.Errorf("err = %v, want substring %q", err, c.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	p, err := NewParser()
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	for _, input := range []string{
		`component { pin 1 }`,       // missing ref
		`net N1 class loud { }`,     // invalid class keyword
		`component U1 { pin 1`,      // unterminated block
		`pin 1 "floating"`,          // pin outside a component
	} {
		if _, err := p.ParseString(input); err == nil {
			t.Errorf("ParseString(%q) accepted invalid input", input)
		}
	}
}
