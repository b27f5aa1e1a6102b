package netdsl

// File represents a complete .otnet file: an optional design header
// followed by component and net declarations in any order.
type File struct {
	Design string  `parser:"( 'design' @String )?"`
	Decls  []*Decl `parser:"@@*"`
}

// Decl is a single top-level declaration.
type Decl struct {
	Component *ComponentDecl `parser:"  @@"`
	Net       *NetDecl       `parser:"| @@"`
}

// ComponentDecl declares a component and its pins.
// Example: component U1 "ATtiny85" { pin 1 "PB5" side left }
type ComponentDecl struct {
	Ref  string     `parser:"'component' @Ident"`
	Name string     `parser:"@String?"`
	Pins []*PinDecl `parser:"'{' @@* '}'"`
}

// PinDecl declares a single pin. Side and type are optional; a pin with no
// side lands on the left edge.
type PinDecl struct {
	Number string `parser:"'pin' @( Int | Ident )"`
	Name   string `parser:"@String?"`
	Side   string `parser:"( 'side' @( 'left' | 'right' | 'top' | 'bottom' ) )?"`
	Type   string `parser:"( 'type' @Ident )?"`
}

// NetDecl declares a net and its connections.
// Example: net N1 "GND_MAIN" class ground { U1.4 C1.2 }
type NetDecl struct {
	ID    string      `parser:"'net' @Ident"`
	Name  string      `parser:"@String?"`
	Class string      `parser:"( 'class' @( 'signal' | 'power' | 'ground' ) )?"`
	Conns []*ConnDecl `parser:"'{' @@* '}'"`
}

// ConnDecl references a component pin as REF.PIN.
type ConnDecl struct {
	Component string `parser:"@Ident"`
	Pin       string `parser:"'.' @( Int | Ident )"`
}

// Components returns the component declarations in file order.
func (f *File) Components() []*ComponentDecl {
	var out []*ComponentDecl
	for _, d := range f.Decls {
		if d.Component != nil {
			out = append(out, d.Component)
		}
	}
	return out
}

// Nets returns the net declarations in file order.
func (f *File) Nets() []*NetDecl {
	var out []*NetDecl
	for _, d := range f.Decls {
		if d.Net != nil {
			out = append(out, d.Net)
		}
	}
	return out
}
