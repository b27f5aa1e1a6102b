// Package ui implements the interactive schematic viewer: a Gio window
// showing the routed design with pan, zoom and grid-snapped component
// dragging. Dragging mutates the placement store through the routing
// engine, so every move re-routes the sheet.
package ui

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"gioui.org/app"
	"gioui.org/f32"
	"gioui.org/font/gofont"
	"gioui.org/io/key"
	"gioui.org/io/pointer"
	gilayout "gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"gioui.org/x/explorer"

	"github.com/OpenTraceLab/OpenTraceSchematic/pkg/netdsl"
	"github.com/OpenTraceLab/OpenTraceSchematic/pkg/route"
	"github.com/OpenTraceLab/OpenTraceSchematic/pkg/schematic"
)

// Options configures the viewer at startup.
type Options struct {
	Theme string // "light" or "dark"
}

// App is the viewer application state.
type App struct {
	window   *app.Window
	theme    *material.Theme
	explorer *explorer.Explorer

	engine     *route.Engine
	camera     *Camera
	colorTheme Theme
	colors     *SchematicColors

	// UI widgets
	openFileBtn widget.Clickable
	themeBtn    widget.Clickable
	fitBtn      widget.Clickable
	resetBtn    widget.Clickable

	// Mouse interaction
	lastPointerPos f32.Point
	isPanning      bool
	dragComponent  string
	dragOffsetX    float64
	dragOffsetY    float64

	filepath string
}

// New creates a viewer with no design loaded.
func New(opts Options) *App {
	a := &App{
		theme:      material.NewTheme(),
		camera:     NewCamera(1200, 800),
		colorTheme: ThemeByName(opts.Theme),
	}
	a.theme.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()))
	a.colors = GetSchematicColors(a.colorTheme)
	return a
}

// SetEngine attaches a routing engine before Run.
func (a *App) SetEngine(engine *route.Engine, path string) {
	a.engine = engine
	a.filepath = path
}

// Run opens the window and blocks until the application exits.
func (a *App) Run() error {
	go func() {
		w := new(app.Window)
		w.Option(app.Title("OpenTraceSchematic Viewer"))
		w.Option(app.Size(unit.Dp(1200), unit.Dp(800)))
		a.window = w
		a.explorer = explorer.NewExplorer(w)

		if a.engine != nil {
			a.fitToView()
		}
		if err := a.loop(w); err != nil {
			log.Fatal(err)
		}
		os.Exit(0)
	}()
	app.Main()
	return nil
}

func (a *App) loop(w *app.Window) error {
	var ops op.Ops
	for {
		switch e := w.Event().(type) {
		case app.DestroyEvent:
			return e.Err

		case app.FrameEvent:
			gtx := gilayout.Context{
				Ops:         &ops,
				Constraints: gilayout.Exact(e.Size),
				Metric:      e.Metric,
				Now:         e.Now,
				Source:      e.Source,
			}
			a.camera.UpdateScreenSize(e.Size.X, e.Size.Y)
			a.handleInput(gtx)
			a.layout(gtx)
			e.Frame(&ops)
		}
	}
}

func (a *App) handleInput(gtx gilayout.Context) {
	if a.openFileBtn.Clicked(gtx) {
		a.openFilePicker()
	}
	if a.themeBtn.Clicked(gtx) {
		a.toggleTheme()
	}
	if a.fitBtn.Clicked(gtx) {
		a.fitToView()
	}
	if a.resetBtn.Clicked(gtx) && a.engine != nil {
		a.engine.Reset()
		a.fitToView()
	}

	// F for fit to view
	for {
		ev, ok := gtx.Event(key.Filter{Name: "F"})
		if !ok {
			break
		}
		if ke, ok := ev.(key.Event); ok && ke.State == key.Press {
			a.fitToView()
		}
	}

	// Q or Escape to quit
	for _, name := range []key.Name{"Q", key.NameEscape} {
		for {
			ev, ok := gtx.Event(key.Filter{Name: name})
			if !ok {
				break
			}
			if ke, ok := ev.(key.Event); ok && ke.State == key.Press {
				os.Exit(0)
			}
		}
	}

	// Handle mouse events
	for {
		ev, ok := gtx.Event(
			pointer.Filter{
				Kinds: pointer.Press | pointer.Drag | pointer.Release | pointer.Scroll,
			},
		)
		if !ok {
			break
		}
		pe, ok := ev.(pointer.Event)
		if !ok {
			continue
		}

		switch pe.Kind {
		case pointer.Press:
			if pe.Buttons == pointer.ButtonPrimary {
				a.lastPointerPos = pe.Position
				world := a.camera.ScreenToWorld(float64(pe.Position.X), float64(pe.Position.Y))
				if id, pl, hit := a.hitComponent(world); hit {
					a.dragComponent = id
					a.dragOffsetX = world.X - pl.X
					a.dragOffsetY = world.Y - pl.Y
				} else {
					a.isPanning = true
				}
			}

		case pointer.Drag:
			if pe.Buttons != pointer.ButtonPrimary {
				break
			}
			if a.dragComponent != "" {
				world := a.camera.ScreenToWorld(float64(pe.Position.X), float64(pe.Position.Y))
				a.engine.MoveComponent(a.dragComponent, world.X-a.dragOffsetX, world.Y-a.dragOffsetY)
				a.window.Invalidate()
			} else if a.isPanning {
				deltaX := float64(pe.Position.X - a.lastPointerPos.X)
				deltaY := float64(pe.Position.Y - a.lastPointerPos.Y)
				a.camera.Pan(deltaX, deltaY)
				a.window.Invalidate()
			}
			a.lastPointerPos = pe.Position

		case pointer.Release:
			a.isPanning = false
			a.dragComponent = ""

		case pointer.Scroll:
			zoomFactor := 1.0 + float64(pe.Scroll.Y)*0.1
			a.camera.ZoomAt(float64(pe.Position.X), float64(pe.Position.Y), zoomFactor)
			a.window.Invalidate()
		}
	}
}

// hitComponent finds the placement under a world position.
func (a *App) hitComponent(world schematic.Point) (string, schematic.Placement, bool) {
	if a.engine == nil {
		return "", schematic.Placement{}, false
	}
	var foundID string
	var foundPl schematic.Placement
	a.engine.Placements().Each(func(id string, pl schematic.Placement) {
		if world.X >= pl.X && world.X <= pl.X+pl.W && world.Y >= pl.Y && world.Y <= pl.Y+pl.H {
			foundID = id
			foundPl = pl
		}
	})
	return foundID, foundPl, foundID != ""
}

func (a *App) openFilePicker() {
	go func() {
		file, err := a.explorer.ChooseFile("")
		if err != nil {
			if err != explorer.ErrUserDecline {
				log.Printf("File picker error: %v", err)
			}
			return
		}
		defer file.Close()

		if f, ok := file.(*os.File); ok {
			a.loadDesign(f.Name())
			a.window.Invalidate()
		}
	}()
}

func (a *App) loadDesign(path string) {
	var design *schematic.Design
	var err error
	if strings.EqualFold(filepath.Ext(path), ".json") {
		design, err = schematic.LoadJSONFile(path)
	} else {
		design, err = netdsl.LoadFile(path)
	}
	if err != nil {
		log.Printf("Error loading design: %v", err)
		return
	}

	a.engine = route.NewEngine(design)
	a.filepath = path
	a.window.Option(app.Title("OpenTraceSchematic Viewer - " + path))
	a.fitToView()
}

func (a *App) toggleTheme() {
	if a.colorTheme == ThemeLight {
		a.colorTheme = ThemeDark
	} else {
		a.colorTheme = ThemeLight
	}
	a.colors = GetSchematicColors(a.colorTheme)
	a.window.Invalidate()
}

func (a *App) fitToView() {
	if a.engine == nil || a.engine.Placements().Len() == 0 {
		return
	}
	first := true
	var min, max schematic.Point
	a.engine.Placements().Each(func(id string, pl schematic.Placement) {
		if first {
			min = schematic.Point{X: pl.X, Y: pl.Y}
			max = schematic.Point{X: pl.X + pl.W, Y: pl.Y + pl.H}
			first = false
			return
		}
		if pl.X < min.X {
			min.X = pl.X
		}
		if pl.Y < min.Y {
			min.Y = pl.Y
		}
		if pl.X+pl.W > max.X {
			max.X = pl.X + pl.W
		}
		if pl.Y+pl.H > max.Y {
			max.Y = pl.Y + pl.H
		}
	})
	a.camera.Fit(min, max)
	if a.window != nil {
		a.window.Invalidate()
	}
}

func (a *App) layout(gtx gilayout.Context) gilayout.Dimensions {
	paint.Fill(gtx.Ops, a.colors.Background)

	return gilayout.Flex{Axis: gilayout.Vertical}.Layout(gtx,
		gilayout.Rigid(func(gtx gilayout.Context) gilayout.Dimensions {
			return a.layoutToolbar(gtx)
		}),
		gilayout.Flexed(1, func(gtx gilayout.Context) gilayout.Dimensions {
			return a.layoutCanvas(gtx)
		}),
	)
}

func (a *App) layoutToolbar(gtx gilayout.Context) gilayout.Dimensions {
	inset := gilayout.Inset{Top: 8, Bottom: 8, Left: 8, Right: 8}

	return inset.Layout(gtx, func(gtx gilayout.Context) gilayout.Dimensions {
		return gilayout.Flex{Axis: gilayout.Horizontal, Spacing: gilayout.SpaceBetween}.Layout(gtx,
			gilayout.Rigid(func(gtx gilayout.Context) gilayout.Dimensions {
				return gilayout.Flex{Axis: gilayout.Horizontal}.Layout(gtx,
					gilayout.Rigid(material.Button(a.theme, &a.openFileBtn, "Open").Layout),
					gilayout.Rigid(gilayout.Spacer{Width: 8}.Layout),
					gilayout.Rigid(material.Button(a.theme, &a.fitBtn, "Fit (F)").Layout),
					gilayout.Rigid(gilayout.Spacer{Width: 8}.Layout),
					gilayout.Rigid(material.Button(a.theme, &a.resetBtn, "Re-layout").Layout),
					gilayout.Rigid(gilayout.Spacer{Width: 8}.Layout),
					gilayout.Rigid(material.Button(a.theme, &a.themeBtn, "Theme: "+a.colorTheme.String()).Layout),
				)
			}),
			gilayout.Rigid(func(gtx gilayout.Context) gilayout.Dimensions {
				if a.engine == nil {
					return material.Body1(a.theme, "No design loaded").Layout(gtx)
				}
				info := fmt.Sprintf("Components: %d | Routes: %d | Zoom: %.1fx",
					len(a.engine.Design().Components),
					len(a.engine.Routes()),
					a.camera.Zoom)
				return material.Body1(a.theme, info).Layout(gtx)
			}),
		)
	})
}

func (a *App) layoutCanvas(gtx gilayout.Context) gilayout.Dimensions {
	if a.engine == nil {
		return gilayout.Center.Layout(gtx, func(gtx gilayout.Context) gilayout.Dimensions {
			return gilayout.Flex{Axis: gilayout.Vertical}.Layout(gtx,
				gilayout.Rigid(material.H4(a.theme, "OpenTraceSchematic").Layout),
				gilayout.Rigid(gilayout.Spacer{Height: 16}.Layout),
				gilayout.Rigid(material.Body1(a.theme, "Click 'Open' to select a .otnet or .json design").Layout),
				gilayout.Rigid(gilayout.Spacer{Height: 8}.Layout),
				gilayout.Rigid(material.Body2(a.theme, "Drag a component to move it | drag space to pan | scroll to zoom").Layout),
			)
		})
	}

	renderBodies(gtx, a.camera, a.engine.Design(), a.engine.Placements(), a.colors, a.dragComponent)
	renderRoutes(gtx, a.camera, a.engine.Routes())

	return gilayout.Dimensions{Size: gtx.Constraints.Max}
}
