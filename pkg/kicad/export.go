// Package kicad emits KiCad schematic files (.kicad_sch) from layout
// output. It consumes only the placement map and routed polylines; pin
// geometry is never re-derived here, so the export cannot drift from what
// the router actually wired.
package kicad

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/OpenTraceLab/OpenTraceSchematic/pkg/layout"
	"github.com/OpenTraceLab/OpenTraceSchematic/pkg/schematic"
)

// DefaultScale converts layout pixels to millimeters. At the default grid
// quantum of 10 px this maps one routing cell to 1 mm.
const DefaultScale = 0.1

// uuidNamespace seeds the deterministic (v5) element UUIDs, so identical
// inputs export byte-identical files.
var uuidNamespace = uuid.MustParse("f2dd1a38-96c4-5a8f-9e61-0b7a34c1d5e2")

// Exporter writes a minimal schematic sheet: one body outline and
// reference label per placed component, one wire per routed segment, and
// junction dots where three or more wire ends meet.
type Exporter struct {
	Scale float64 // mm per pixel; DefaultScale when zero
	Title string
}

// Export writes the schematic to w.
func (e *Exporter) Export(w io.Writer, design *schematic.Design, placements *layout.Placements, routes []schematic.Route) error {
	scale := e.Scale
	if scale <= 0 {
		scale = DefaultScale
	}

	var b strings.Builder
	b.WriteString("(kicad_sch\n")
	b.WriteString("  (version 20231120)\n")
	b.WriteString("  (generator \"otsch\")\n")
	fmt.Fprintf(&b, "  (uuid %q)\n", elementUUID("sheet", e.Title))
	b.WriteString("  (paper \"A4\")\n")
	if e.Title != "" {
		b.WriteString("  (title_block\n")
		fmt.Fprintf(&b, "    (title %q)\n", e.Title)
		b.WriteString("  )\n")
	}

	placements.Each(func(id string, pl schematic.Placement) {
		name := id
		if c := design.Component(id); c != nil && c.Name != "" {
			name = c.Name
		}
		fmt.Fprintf(&b, "  (rectangle (start %s %s) (end %s %s)\n",
			mm(pl.X, scale), mm(pl.Y, scale), mm(pl.X+pl.W, scale), mm(pl.Y+pl.H, scale))
		b.WriteString("    (stroke (width 0.2) (type default))\n")
		b.WriteString("    (fill (type none))\n")
		fmt.Fprintf(&b, "    (uuid %q)\n", elementUUID("comp", id))
		b.WriteString("  )\n")
		fmt.Fprintf(&b, "  (text %q (at %s %s 0)\n", name,
			mm(pl.X+4, scale), mm(pl.Y+4, scale))
		b.WriteString("    (effects (font (size 1.27 1.27)))\n")
		fmt.Fprintf(&b, "    (uuid %q)\n", elementUUID("label", id))
		b.WriteString("  )\n")
	})

	for _, rt := range routes {
		for i := 0; i+1 < len(rt.Path); i++ {
			a, c := rt.Path[i], rt.Path[i+1]
			fmt.Fprintf(&b, "  (wire (pts (xy %s %s) (xy %s %s))\n",
				mm(a.X, scale), mm(a.Y, scale), mm(c.X, scale), mm(c.Y, scale))
			b.WriteString("    (stroke (width 0.15) (type default))\n")
			fmt.Fprintf(&b, "    (uuid %q)\n", elementUUID("wire", fmt.Sprintf("%s:%d", rt.ID, i)))
			b.WriteString("  )\n")
		}
	}

	for _, j := range junctionPoints(routes) {
		fmt.Fprintf(&b, "  (junction (at %s %s) (diameter 0.9144) (color 0 0 0 0)\n",
			mm(j.X, scale), mm(j.Y, scale))
		fmt.Fprintf(&b, "    (uuid %q)\n", elementUUID("junction", fmt.Sprintf("%v,%v", j.X, j.Y)))
		b.WriteString("  )\n")
	}

	b.WriteString(")\n")

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("kicad: write schematic: %w", err)
	}
	return nil
}

// ExportFile writes the schematic to a file.
func (e *Exporter) ExportFile(path string, design *schematic.Design, placements *layout.Placements, routes []schematic.Route) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("kicad: create %s: %w", path, err)
	}
	if err := e.Export(f, design, placements, routes); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// junctionPoints finds wire endpoints shared by three or more route ends,
// in route order. A mid-chain pin touched by exactly two segments is a
// pass-through, not a junction.
func junctionPoints(routes []schematic.Route) []schematic.Point {
	counts := make(map[schematic.Point]int)
	var order []schematic.Point
	for _, rt := range routes {
		if len(rt.Path) == 0 {
			continue
		}
		for _, p := range []schematic.Point{rt.Path[0], rt.Path[len(rt.Path)-1]} {
			if counts[p] == 0 {
				order = append(order, p)
			}
			counts[p]++
		}
	}
	var out []schematic.Point
	for _, p := range order {
		if counts[p] >= 3 {
			out = append(out, p)
		}
	}
	return out
}

// mm formats a pixel coordinate as millimeters.
func mm(px, scale float64) string {
	return strconv.FormatFloat(px*scale, 'f', 2, 64)
}

// elementUUID derives a stable v5 UUID for an exported element.
func elementUUID(kind, id string) string {
	return uuid.NewSHA1(uuidNamespace, []byte(kind+":"+id)).String()
}
