// Package anchor defines the closed sets of orb anchor positions.
//
// Position is one of Center, Left, Right, Top or Bottom. Edge is one of the
// four docked positions and is used wherever center is not a legal value
// (the preferred dock, edge sensors). Both are structs with unexported
// fields, so no other package can construct a value outside the set; the zero
// Position is Center and the zero Edge is LeftEdge.
package anchor

import "fmt"

type position uint8

const (
	center position = iota
	left
	right
	top
	bottom
)

var positionNames = [...]string{"center", "left", "right", "top", "bottom"}

// Position is the orb's current anchor.
type Position struct {
	p position
}

// The five anchor positions.
var (
	Center = Position{center}
	Left   = Position{left}
	Right  = Position{right}
	Top    = Position{top}
	Bottom = Position{bottom}
)

// Positions returns all positions in declaration order.
func Positions() []Position {
	return []Position{Center, Left, Right, Top, Bottom}
}

// String returns the lower-case name of the position.
func (p Position) String() string {
	return positionNames[p.p]
}

// IsDocked reports whether p is attached to a screen edge.
func (p Position) IsDocked() bool {
	return p.p != center
}

// Edge returns the edge for a docked position. ok is false for Center.
func (p Position) Edge() (e Edge, ok bool) {
	if p.p == center {
		return Edge{}, false
	}
	return Edge{edge(p.p - 1)}, true
}

// MarshalText implements encoding.TextMarshaler.
func (p Position) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Position) UnmarshalText(text []byte) error {
	v, err := ParsePosition(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// ParsePosition parses a position name.
func ParsePosition(s string) (Position, error) {
	for i, name := range positionNames {
		if name == s {
			return Position{position(i)}, nil
		}
	}
	return Position{}, fmt.Errorf("anchor: unknown position %q", s)
}

type edge uint8

const (
	edgeLeft edge = iota
	edgeRight
	edgeTop
	edgeBottom
)

// Edge is one of the four screen edges.
type Edge struct {
	e edge
}

// The four screen edges.
var (
	LeftEdge   = Edge{edgeLeft}
	RightEdge  = Edge{edgeRight}
	TopEdge    = Edge{edgeTop}
	BottomEdge = Edge{edgeBottom}
)

// Edges returns all edges in the order left, right, top, bottom.
func Edges() []Edge {
	return []Edge{LeftEdge, RightEdge, TopEdge, BottomEdge}
}

// Position converts the edge into the matching docked position.
func (e Edge) Position() Position {
	return Position{position(e.e + 1)}
}

// String returns the lower-case name of the edge.
func (e Edge) String() string {
	return e.Position().String()
}

// Vertical reports whether the edge is the left or right side of the screen.
func (e Edge) Vertical() bool {
	return e.e == edgeLeft || e.e == edgeRight
}

// Outward returns the unit direction pointing off-screen through this edge.
func (e Edge) Outward() (dx, dy float64) {
	switch e.e {
	case edgeLeft:
		return -1, 0
	case edgeRight:
		return 1, 0
	case edgeTop:
		return 0, -1
	default:
		return 0, 1
	}
}

// MarshalText implements encoding.TextMarshaler.
func (e Edge) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (e *Edge) UnmarshalText(text []byte) error {
	v, err := ParseEdge(string(text))
	if err != nil {
		return err
	}
	*e = v
	return nil
}

// ParseEdge parses an edge name. "center" is rejected.
func ParseEdge(s string) (Edge, error) {
	p, err := ParsePosition(s)
	if err != nil {
		return Edge{}, err
	}
	e, ok := p.Edge()
	if !ok {
		return Edge{}, fmt.Errorf("anchor: %q is not an edge", s)
	}
	return e, nil
}
