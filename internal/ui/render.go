package ui

import (
	"image"

	"gioui.org/f32"
	gilayout "gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"

	layoutpkg "github.com/OpenTraceLab/OpenTraceSchematic/pkg/layout"
	"github.com/OpenTraceLab/OpenTraceSchematic/pkg/schematic"
)

// renderBodies draws every placed component: filled body, outline, header
// separator and pin ticks. The selected component gets the selection color.
func renderBodies(gtx gilayout.Context, camera *Camera, design *schematic.Design, placements *layoutpkg.Placements, colors *SchematicColors, selected string) {
	placements.Each(func(id string, pl schematic.Placement) {
		x0, y0 := camera.WorldToScreen(schematic.Point{X: pl.X, Y: pl.Y})
		x1, y1 := camera.WorldToScreen(schematic.Point{X: pl.X + pl.W, Y: pl.Y + pl.H})

		// Body fill
		rect := clip.Rect{
			Min: image.Pt(int(x0), int(y0)),
			Max: image.Pt(int(x1), int(y1)),
		}
		paint.FillShape(gtx.Ops, colors.BodyFill, rect.Op())

		outline := colors.Body
		if id == selected {
			outline = colors.Selection
		}

		// Outline
		var path clip.Path
		path.Begin(gtx.Ops)
		path.MoveTo(f32.Pt(float32(x0), float32(y0)))
		path.LineTo(f32.Pt(float32(x1), float32(y0)))
		path.LineTo(f32.Pt(float32(x1), float32(y1)))
		path.LineTo(f32.Pt(float32(x0), float32(y1)))
		path.Close()
		paint.FillShape(gtx.Ops, outline, clip.Stroke{
			Path:  path.End(),
			Width: 2.0,
		}.Op())

		// Header separator
		_, hy := camera.WorldToScreen(schematic.Point{X: pl.X, Y: pl.Y + layoutpkg.HeaderHeight})
		var hdr clip.Path
		hdr.Begin(gtx.Ops)
		hdr.MoveTo(f32.Pt(float32(x0), float32(hy)))
		hdr.LineTo(f32.Pt(float32(x1), float32(hy)))
		paint.FillShape(gtx.Ops, colors.Header, clip.Stroke{
			Path:  hdr.End(),
			Width: 1.0,
		}.Op())

		if comp := design.Component(id); comp != nil {
			renderPins(gtx, camera, *comp, pl, colors)
		}
	})
}

// renderPins marks every resolvable pin position with a small tick.
func renderPins(gtx gilayout.Context, camera *Camera, comp schematic.Component, pl schematic.Placement, colors *SchematicColors) {
	const tick = 3.0
	for _, pin := range comp.Pins {
		ident := pin.Number
		if ident == "" {
			ident = pin.Name
		}
		loc, ok := layoutpkg.LocatePin(comp, pl, ident)
		if !ok {
			continue
		}
		x, y := camera.WorldToScreen(loc.Point())
		paint.FillShape(gtx.Ops, colors.Pin, clip.Rect{
			Min: image.Pt(int(x-tick), int(y-tick)),
			Max: image.Pt(int(x+tick), int(y+tick)),
		}.Op())
	}
}

// renderRoutes draws every routed polyline in its net color, in route
// order so later nets draw on top.
func renderRoutes(gtx gilayout.Context, camera *Camera, routes []schematic.Route) {
	const wireWidth = 2.0

	for _, rt := range routes {
		if len(rt.Path) < 2 {
			continue
		}

		var path clip.Path
		path.Begin(gtx.Ops)

		x0, y0 := camera.WorldToScreen(rt.Path[0])
		path.MoveTo(f32.Pt(float32(x0), float32(y0)))
		for i := 1; i < len(rt.Path); i++ {
			x, y := camera.WorldToScreen(rt.Path[i])
			path.LineTo(f32.Pt(float32(x), float32(y)))
		}

		paint.FillShape(gtx.Ops, rt.Color.NRGBA, clip.Stroke{
			Path:  path.End(),
			Width: wireWidth,
		}.Op())
	}
}
