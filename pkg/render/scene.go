// Package render turns a dock state snapshot into animated terminal output:
// a pixel-space Scene, a spring Animator that moves elements toward their
// targets, and a Compositor that rasterizes the scene into cells over a
// background view.
package render

import (
	"math"
	"time"

	"gitlab.com/tinyland/lab/orbit-reader/pkg/anchor"
	"gitlab.com/tinyland/lab/orbit-reader/pkg/dock"
	"gitlab.com/tinyland/lab/orbit-reader/pkg/geometry"
	"gitlab.com/tinyland/lab/orbit-reader/pkg/menu"
)

const (
	// SensorThickness is the depth of each edge hover strip in px.
	SensorThickness = 32.0
	// ItemStagger delays each menu item's motion by its index.
	ItemStagger = 20 * time.Millisecond
)

// OrbCaption is written across the centered orb.
var OrbCaption = []string{"O R B I T", "READER OS"}

// Zone IDs for hit-testing.
const ZoneOrb = "orb"

func ItemZone(id string) string       { return "item:" + id }
func SensorZone(e anchor.Edge) string { return "edge:" + e.String() }

// Metrics maps terminal cells onto the pixel space geometry works in.
type Metrics struct {
	CellW float64
	CellH float64
}

// DefaultMetrics approximates a common monospace cell.
var DefaultMetrics = Metrics{CellW: 8, CellH: 16}

// Size returns the pixel size of a cols x rows terminal.
func (m Metrics) Size(cols, rows int) (w, h float64) {
	return float64(cols) * m.CellW, float64(rows) * m.CellH
}

// Cell returns the cell containing pixel (x, y).
func (m Metrics) Cell(x, y float64) (col, row int) {
	return int(math.Floor(x / m.CellW)), int(math.Floor(y / m.CellH))
}

// Pose is an element's animated state: its center in px, scale and opacity.
type Pose struct {
	X, Y    float64
	Scale   float64
	Opacity float64
}

// Kind distinguishes scene elements.
type Kind int

const (
	KindOrb Kind = iota
	KindItem
)

// Element is one animated thing in the scene.
type Element struct {
	ID    string
	Kind  Kind
	Item  menu.Item // items only
	Frame geometry.Frame

	Caption     []string // orb only, drawn over the disc center
	Active      bool
	From        Pose // entrance start
	To          Pose // current target
	Size        float64
	Delay       time.Duration
	Interactive bool
}

// Sensor is an edge hover strip in px.
type Sensor struct {
	Edge       anchor.Edge
	X, Y, W, H float64
}

// Scene is everything the compositor draws for one state.
type Scene struct {
	Group    string
	Width    float64
	Height   float64
	Viewport geometry.Viewport
	Visible  bool

	ShowOrb bool
	Orb     Element
	Items   []Element
	Sensors []Sensor
}

// Elements returns the animated elements in draw order.
func (s Scene) Elements() []Element {
	out := make([]Element, 0, len(s.Items)+1)
	if s.ShowOrb {
		out = append(out, s.Orb)
	}
	return append(out, s.Items...)
}

var itemSizes = [...]float64{
	geometry.Desktop: 44,
	geometry.Mobile:  40,
}

// Build lays out the scene for st in a w x h px viewport with the default
// item stagger.
func Build(st dock.State, items []menu.Item, w, h float64, vp geometry.Viewport) Scene {
	return BuildStaggered(st, items, w, h, vp, ItemStagger)
}

// BuildStaggered is Build with a custom per-index item delay.
func BuildStaggered(st dock.State, items []menu.Item, w, h float64, vp geometry.Viewport, stagger time.Duration) Scene {
	visible := st.Visible()
	sc := Scene{
		Group:    GroupKey(st.Dock),
		Width:    w,
		Height:   h,
		Viewport: vp,
		Visible:  visible,
		ShowOrb:  st.ActiveItem != menu.Auth,
	}

	target := geometry.Orb(st.Dock, visible, vp)
	sc.Orb = Element{
		ID:          ZoneOrb,
		Kind:        KindOrb,
		Frame:       target,
		From:        orbPose(geometry.Orb(st.Dock, false, vp), w, h),
		To:          orbPose(target, w, h),
		Size:        target.Size.Px,
		Interactive: true,
	}
	if !st.Dock.IsDocked() {
		sc.Orb.Caption = OrbCaption
	}

	size := itemSizes[vp]
	for i, it := range items {
		p := geometry.Item(st.Dock, i, len(items), vp)
		sc.Items = append(sc.Items, Element{
			ID:          ItemZone(it.ID),
			Kind:        KindItem,
			Item:        it,
			Active:      it.ID == st.ActiveItem,
			From:        itemPose(p, p.Hidden, w, h, size),
			To:          itemPose(p, p.Frame(visible), w, h, size),
			Size:        size,
			Delay:       time.Duration(i) * stagger,
			Interactive: visible,
		})
	}

	if st.Sensors() {
		t := SensorThickness
		sc.Sensors = []Sensor{
			{Edge: anchor.LeftEdge, X: 0, Y: 0, W: t, H: h},
			{Edge: anchor.RightEdge, X: w - t, Y: 0, W: t, H: h},
			{Edge: anchor.TopEdge, X: 0, Y: 0, W: w, H: t},
			{Edge: anchor.BottomEdge, X: 0, Y: h - t, W: w, H: t},
		}
	}
	return sc
}

func orbPose(f geometry.Frame, w, h float64) Pose {
	x, y := f.Center(w, h)
	return Pose{X: x, Y: y, Scale: f.Scale, Opacity: f.Opacity}
}

func itemPose(p geometry.Placement, k geometry.Keyframe, w, h, size float64) Pose {
	x, y := p.Center(k, w, h, size, size)
	return Pose{X: x, Y: y, Scale: k.Scale, Opacity: k.Opacity}
}
