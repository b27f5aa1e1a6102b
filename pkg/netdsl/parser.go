package netdsl

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/participle/v2"

	"github.com/OpenTraceLab/OpenTraceSchematic/pkg/schematic"
)

// Parser parses .otnet netlist files.
type Parser struct {
	parser *participle.Parser[File]
}

// NewParser builds a netlist parser instance.
func NewParser() (*Parser, error) {
	parser, err := participle.Build[File](
		participle.Lexer(NetLexer),
		participle.Elide("Comment", "Whitespace"),
		participle.Unquote("String"),
		participle.UseLookahead(2),
	)
	if err != nil {
		return nil, fmt.Errorf("netdsl: build parser: %w", err)
	}
	return &Parser{parser: parser}, nil
}

// Parse parses a netlist from a reader.
func (p *Parser) Parse(r io.Reader) (*File, error) {
	file, err := p.parser.Parse("", r)
	if err != nil {
		return nil, fmt.Errorf("netdsl: parse: %w", err)
	}
	return file, nil
}

// ParseString parses a netlist from a string.
func (p *Parser) ParseString(input string) (*File, error) {
	file, err := p.parser.ParseString("", input)
	if err != nil {
		return nil, fmt.Errorf("netdsl: parse: %w", err)
	}
	return file, nil
}

// ParseFile parses a netlist from a file path.
func (p *Parser) ParseFile(filename string) (*File, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("netdsl: open file: %w", err)
	}
	defer f.Close()
	return p.Parse(f)
}

// ToDesign converts the parsed file into the schematic data model. A
// duplicate component ref or a connection to an undeclared component is a
// data error surfaced here, at the input boundary, not inside routing.
func (f *File) ToDesign() (*schematic.Design, error) {
	d := &schematic.Design{Name: f.Design}

	seen := make(map[string]bool)
	for _, cd := range f.Components() {
		if seen[cd.Ref] {
			return nil, fmt.Errorf("netdsl: duplicate component %q", cd.Ref)
		}
		seen[cd.Ref] = true

		comp := schematic.Component{ID: cd.Ref, Name: cd.Name}
		if comp.Name == "" {
			comp.Name = cd.Ref
		}
		for _, pd := range cd.Pins {
			comp.Pins = append(comp.Pins, schematic.Pin{
				Number: pd.Number,
				Name:   pd.Name,
				Side:   schematic.Side(pd.Side),
				Type:   pd.Type,
			})
		}
		d.Components = append(d.Components, comp)
	}

	for _, nd := range f.Nets() {
		net := schematic.Net{
			ID:    nd.ID,
			Name:  nd.Name,
			Class: schematic.NetClass(nd.Class),
		}
		if net.Name == "" {
			net.Name = nd.ID
		}
		for _, cd := range nd.Conns {
			if !seen[cd.Component] {
				return nil, fmt.Errorf("netdsl: net %q references unknown component %q", nd.ID, cd.Component)
			}
			net.Connections = append(net.Connections, schematic.Connection{
				ComponentID: cd.Component,
				Pin:         cd.Pin,
			})
		}
		d.Nets = append(d.Nets, net)
	}

	return d, nil
}

// LoadFile parses a .otnet file and converts it to a design in one step.
func LoadFile(path string) (*schematic.Design, error) {
	p, err := NewParser()
	if err != nil {
		return nil, err
	}
	file, err := p.ParseFile(path)
	if err != nil {
		return nil, err
	}
	return file.ToDesign()
}
