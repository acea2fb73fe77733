package geometry

import "gitlab.com/tinyland/lab/orbit-reader/pkg/anchor"

// Frame is one animation target for the orb disc.
type Frame struct {
	Size       Expr // width and height; the orb is always square
	Left       Expr
	Top        Expr
	TranslateX Expr // relative to Size
	TranslateY Expr // relative to Size
	Scale      float64
	Opacity    float64

	// HighlightX/HighlightY locate the gradient's bright spot as percentages
	// of the disc, so a docked orb glows toward the screen interior.
	HighlightX float64
	HighlightY float64
	Glow       bool
}

// Center resolves the disc's center point in a vw x vh viewport.
func (f Frame) Center(vw, vh float64) (x, y float64) {
	s := f.Size.Px
	x = f.Left.Resolve(vw) + f.TranslateX.Resolve(s) + s/2
	y = f.Top.Resolve(vh) + f.TranslateY.Resolve(s) + s/2
	return x, y
}

// Diameter returns the rendered diameter after scaling.
func (f Frame) Diameter() float64 {
	return f.Size.Px * f.Scale
}

type orbTable struct {
	centerSize float64 // rem
	dockedSize float64 // rem
	sliver     float64 // rem beyond the edge while revealed
	retracted  float64 // rem beyond the edge while hidden
}

var orbTables = [...]orbTable{
	Desktop: {centerSize: 28, dockedSize: 18, sliver: 16, retracted: 20},
	Mobile:  {centerSize: 18, dockedSize: 12, sliver: 10.5, retracted: 13},
}

// Orb returns the orb frame for pos. The center frame ignores visible: a
// centered orb is always shown. Docked frames differ between visible and
// hidden only by how far past the edge the disc sits, plus opacity.
func Orb(pos anchor.Position, visible bool, vp Viewport) Frame {
	t := orbTables[vp]

	edge, docked := pos.Edge()
	if !docked {
		return Frame{
			Size:       Rem(t.centerSize),
			Left:       Pct(50),
			Top:        Pct(50),
			TranslateX: Pct(-50),
			TranslateY: Pct(-50),
			Scale:      1,
			Opacity:    1,
			HighlightX: 30,
			HighlightY: 30,
			Glow:       true,
		}
	}

	off := t.sliver
	if !visible {
		off = t.retracted
	}
	f := Frame{
		Size:    Rem(t.dockedSize),
		Scale:   1,
		Opacity: 1,
		Glow:    visible,
	}
	if !visible {
		f.Opacity = 0
	}

	switch edge {
	case anchor.LeftEdge:
		f.Left, f.Top = Rem(-off), Pct(50)
		f.TranslateX, f.TranslateY = Pct(0), Pct(-50)
		f.HighlightX, f.HighlightY = 80, 50
	case anchor.RightEdge:
		f.Left, f.Top = Pct(100).Plus(off*PxPerRem), Pct(50)
		f.TranslateX, f.TranslateY = Pct(-100), Pct(-50)
		f.HighlightX, f.HighlightY = 20, 50
	case anchor.TopEdge:
		f.Left, f.Top = Pct(50), Rem(-off)
		f.TranslateX, f.TranslateY = Pct(-50), Pct(0)
		f.HighlightX, f.HighlightY = 50, 80
	case anchor.BottomEdge:
		f.Left, f.Top = Pct(50), Pct(100).Plus(off*PxPerRem)
		f.TranslateX, f.TranslateY = Pct(-50), Pct(-100)
		f.HighlightX, f.HighlightY = 50, 20
	}
	return f
}

// EdgeOffset returns how far outside the edge (px) the docked orb's center
// sits. Menu arcs are centered on this point.
func EdgeOffset(vp Viewport) float64 {
	return ringTables[vp].edgeOffset
}

// HideShift returns the outward shift (px) applied to hidden docked items.
func HideShift(vp Viewport) float64 {
	return ringTables[vp].hideShift
}
