package geometry

import (
	"math"

	"gitlab.com/tinyland/lab/orbit-reader/pkg/anchor"
)

// Keyframe is one animation target for an element. TranslateX/TranslateY are
// relative to the element's own size (like a CSS transform), so Pct(-50)
// centers the element on its anchor.
type Keyframe struct {
	TranslateX Expr
	TranslateY Expr
	Scale      float64
	Opacity    float64
}

// Placement is the anchor point of a menu item plus its visible and hidden
// keyframes. Left resolves against the viewport width, Top against its height.
type Placement struct {
	Left    Expr
	Top     Expr
	Visible Keyframe
	Hidden  Keyframe
}

// Frame returns the visible or hidden keyframe.
func (p Placement) Frame(visible bool) Keyframe {
	if visible {
		return p.Visible
	}
	return p.Hidden
}

// Center resolves the element's center point for keyframe k in a vw x vh
// viewport, for an element of size w x h.
func (p Placement) Center(k Keyframe, vw, vh, w, h float64) (x, y float64) {
	x = p.Left.Resolve(vw) + k.TranslateX.Resolve(w) + w/2
	y = p.Top.Resolve(vh) + k.TranslateY.Resolve(h) + h/2
	return x, y
}

// ringTable holds the per-viewport menu ring constants.
type ringTable struct {
	centerRadius float64
	dockRadius   float64
	edgeOffset   float64 // retracted orb center, measured outward from the edge
	hideShift    float64
}

var ringTables = [...]ringTable{
	Desktop: {centerRadius: 280, dockRadius: 200, edgeOffset: 112, hideShift: 64},
	Mobile:  {centerRadius: 150, dockRadius: 110, edgeOffset: 72, hideShift: 40},
}

// Visible-state scale for center and docked rings.
const (
	CenterItemScale = 1.0
	DockedItemScale = 0.85
)

// arc is an angular range in degrees.
type arc struct{ start, end float64 }

// Arcs face away from their edge.
var dockArcs = map[anchor.Edge]arc{
	anchor.LeftEdge:   {-40, 40},
	anchor.RightEdge:  {140, 220},
	anchor.TopEdge:    {50, 130},
	anchor.BottomEdge: {230, 310},
}

// Radius returns the menu ring radius for a position and viewport.
func Radius(pos anchor.Position, vp Viewport) float64 {
	t := ringTables[vp]
	if pos.IsDocked() {
		return t.dockRadius
	}
	return t.centerRadius
}

// ItemAngle returns the angle in degrees of item index out of count.
// Center rings start at 12 o'clock and run clockwise in screen space. Docked
// rings subdivide the edge's arc over count-1 steps; a lone item sits at the
// arc midpoint.
func ItemAngle(pos anchor.Position, index, count int) float64 {
	edge, docked := pos.Edge()
	if !docked {
		return float64(index)*(360/float64(count)) - 90
	}
	a := dockArcs[edge]
	if count < 2 {
		return (a.start + a.end) / 2
	}
	step := (a.end - a.start) / float64(count-1)
	return a.start + float64(index)*step
}

// Item places menu item index of count around an orb anchored at pos.
// A non-positive count or an index outside [0, count) yields the zero
// Placement.
func Item(pos anchor.Position, index, count int, vp Viewport) Placement {
	if count <= 0 || index < 0 || index >= count {
		return Placement{}
	}

	t := ringTables[vp]
	r := Radius(pos, vp)
	rad := ItemAngle(pos, index, count) * math.Pi / 180
	dx := math.Cos(rad) * r
	dy := math.Sin(rad) * r

	centered := Keyframe{TranslateX: Pct(-50), TranslateY: Pct(-50)}

	edge, docked := pos.Edge()
	if !docked {
		visible := centered
		visible.Scale = CenterItemScale
		visible.Opacity = 1
		hidden := centered
		hidden.Scale = 0
		hidden.Opacity = 0
		return Placement{
			Left:    Pct(50).Plus(dx),
			Top:     Pct(50).Plus(dy),
			Visible: visible,
			Hidden:  hidden,
		}
	}

	var p Placement
	switch edge {
	case anchor.LeftEdge:
		p.Left = Pct(0).Plus(-t.edgeOffset + dx)
		p.Top = Pct(50).Plus(dy)
	case anchor.RightEdge:
		p.Left = Pct(100).Plus(t.edgeOffset + dx)
		p.Top = Pct(50).Plus(dy)
	case anchor.TopEdge:
		p.Left = Pct(50).Plus(dx)
		p.Top = Pct(0).Plus(-t.edgeOffset + dy)
	case anchor.BottomEdge:
		p.Left = Pct(50).Plus(dx)
		p.Top = Pct(100).Plus(t.edgeOffset + dy)
	}

	ox, oy := edge.Outward()
	p.Visible = centered
	p.Visible.Scale = DockedItemScale
	p.Visible.Opacity = 1
	p.Hidden = Keyframe{
		TranslateX: Pct(-50).Plus(ox * t.hideShift),
		TranslateY: Pct(-50).Plus(oy * t.hideShift),
		Scale:      DockedItemScale,
		Opacity:    0,
	}
	return p
}
