package geometry

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/tinyland/lab/orbit-reader/pkg/anchor"
)

const eps = 1e-9

// viewport used to resolve placements in tests.
const (
	testVW = 1280.0
	testVH = 800.0
)

func itemCenter(p Placement, visible bool) (float64, float64) {
	return p.Center(p.Frame(visible), testVW, testVH, 40, 40)
}

// --- Expr ---

func TestExprResolve(t *testing.T) {
	assert.InDelta(t, 640.0, Pct(50).Resolve(1280), eps)
	assert.InDelta(t, 752.0, Pct(50).Plus(112).Resolve(1280), eps)
	assert.InDelta(t, -256.0, Rem(-16).Resolve(1280), eps)
}

func TestExprString(t *testing.T) {
	tests := []struct {
		expr Expr
		want string
	}{
		{Pct(50), "50%"},
		{Px(12), "12px"},
		{Pct(100).Plus(112), "calc(100% + 112px)"},
		{Pct(-50).Plus(-64), "calc(-50% - 64px)"},
		{Rem(-16), "-256px"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.expr.String())
	}
}

// --- Viewport ---

func TestClassify(t *testing.T) {
	assert.Equal(t, Mobile, Classify(767))
	assert.Equal(t, Desktop, Classify(768))
	assert.Equal(t, Desktop, Classify(1920))
	assert.Equal(t, Mobile, ClassifyWith(900, 1000))
	assert.Equal(t, Desktop, ClassifyWith(800, 0), "zero breakpoint falls back to default")
	assert.Equal(t, Classify(500), Classify(500))
}

// --- Menu ring ---

func TestRadiusTable(t *testing.T) {
	assert.Equal(t, 280.0, Radius(anchor.Center, Desktop))
	assert.Equal(t, 150.0, Radius(anchor.Center, Mobile))
	for _, e := range anchor.Edges() {
		assert.Equal(t, 200.0, Radius(e.Position(), Desktop))
		assert.Equal(t, 110.0, Radius(e.Position(), Mobile))
	}
}

func TestCenterRingFiveItems(t *testing.T) {
	const n = 5
	cx, cy := testVW/2, testVH/2

	p0 := Item(anchor.Center, 0, n, Desktop)
	x, y := itemCenter(p0, true)
	assert.InDelta(t, cx, x, 1e-6, "item 0 sits directly above the orb")
	assert.InDelta(t, cy-280, y, 1e-6)

	for i := 0; i < n; i++ {
		assert.InDelta(t, float64(i)*72-90, ItemAngle(anchor.Center, i, n), eps)

		x, y := itemCenter(Item(anchor.Center, i, n, Desktop), true)
		assert.InDelta(t, 280.0, math.Hypot(x-cx, y-cy), 1e-6, "item %d radius", i)
	}
}

func TestCenterRingHiddenCollapsesIntoOrb(t *testing.T) {
	p := Item(anchor.Center, 2, 6, Mobile)
	assert.Equal(t, 0.0, p.Hidden.Scale)
	assert.Equal(t, 0.0, p.Hidden.Opacity)
	assert.Equal(t, CenterItemScale, p.Visible.Scale)
	assert.Equal(t, 1.0, p.Visible.Opacity)

	vx, vy := itemCenter(p, true)
	hx, hy := itemCenter(p, false)
	assert.InDelta(t, vx, hx, eps, "center items do not slide")
	assert.InDelta(t, vy, hy, eps)
}

func TestDockedArcs(t *testing.T) {
	tests := []struct {
		edge       anchor.Edge
		start, end float64
	}{
		{anchor.LeftEdge, -40, 40},
		{anchor.RightEdge, 140, 220},
		{anchor.TopEdge, 50, 130},
		{anchor.BottomEdge, 230, 310},
	}
	for _, tt := range tests {
		pos := tt.edge.Position()
		assert.InDelta(t, tt.start, ItemAngle(pos, 0, 6), eps, tt.edge.String())
		assert.InDelta(t, tt.end, ItemAngle(pos, 5, 6), eps, tt.edge.String())
		assert.InDelta(t, (tt.start+tt.end)/2, ItemAngle(pos, 0, 1), eps, "lone item at arc midpoint")
	}
}

func TestDockedItemsOrbitRetractedOrbCenter(t *testing.T) {
	for _, vp := range []Viewport{Desktop, Mobile} {
		for _, e := range anchor.Edges() {
			pos := e.Position()
			ox, oy := Orb(pos, true, vp).Center(testVW, testVH)
			r := Radius(pos, vp)
			for i := 0; i < 6; i++ {
				x, y := itemCenter(Item(pos, i, 6, vp), true)
				assert.InDelta(t, r, math.Hypot(x-ox, y-oy), 1e-6, "%s/%s item %d", vp, e, i)
			}
		}
	}
}

func TestDockedHiddenShiftsOutward(t *testing.T) {
	for _, vp := range []Viewport{Desktop, Mobile} {
		for _, e := range anchor.Edges() {
			p := Item(e.Position(), 1, 6, vp)
			vx, vy := itemCenter(p, true)
			hx, hy := itemCenter(p, false)
			dx, dy := e.Outward()
			assert.InDelta(t, dx*HideShift(vp), hx-vx, eps, "%s/%s", vp, e)
			assert.InDelta(t, dy*HideShift(vp), hy-vy, eps, "%s/%s", vp, e)
			assert.Equal(t, DockedItemScale, p.Visible.Scale)
			assert.Equal(t, 0.0, p.Hidden.Opacity)
		}
	}
	assert.Equal(t, 64.0, HideShift(Desktop))
	assert.Equal(t, 40.0, HideShift(Mobile))
}

func TestItemIsDeterministic(t *testing.T) {
	for _, pos := range anchor.Positions() {
		for _, vp := range []Viewport{Desktop, Mobile} {
			for i := 0; i < 6; i++ {
				a := Item(pos, i, 6, vp)
				b := Item(pos, i, 6, vp)
				require.Empty(t, cmp.Diff(a, b), "Item(%s,%d,6,%s) not deterministic", pos, i, vp)
			}
		}
	}
}

func TestItemOutOfRange(t *testing.T) {
	assert.Equal(t, Placement{}, Item(anchor.Left, 0, 0, Desktop))
	assert.Equal(t, Placement{}, Item(anchor.Left, 3, 3, Desktop))
	assert.Equal(t, Placement{}, Item(anchor.Center, -1, 3, Desktop))
}

// --- Orb ---

func TestOrbCenterFrame(t *testing.T) {
	f := Orb(anchor.Center, false, Desktop)
	assert.Equal(t, 28*PxPerRem, f.Size.Px)
	x, y := f.Center(testVW, testVH)
	assert.InDelta(t, testVW/2, x, eps)
	assert.InDelta(t, testVH/2, y, eps)
	assert.Equal(t, 1.0, f.Opacity, "center orb ignores hidden")
	assert.Equal(t, 18*PxPerRem, Orb(anchor.Center, true, Mobile).Size.Px)
}

func TestOrbDockedFrames(t *testing.T) {
	tests := []struct {
		vp              Viewport
		size            float64
		visible, hidden float64 // rem past the edge
	}{
		{Desktop, 18, 16, 20},
		{Mobile, 12, 10.5, 13},
	}
	for _, tt := range tests {
		require.InDelta(t, EdgeOffset(tt.vp), (tt.visible-tt.size/2)*PxPerRem, eps)

		f := Orb(anchor.Left, true, tt.vp)
		assert.Equal(t, tt.size*PxPerRem, f.Size.Px)
		assert.Equal(t, "-"+fmtNum(tt.visible*PxPerRem)+"px", f.Left.String())
		assert.True(t, f.Glow)

		h := Orb(anchor.Left, false, tt.vp)
		assert.Equal(t, -tt.hidden*PxPerRem, h.Left.Px)
		assert.Equal(t, 0.0, h.Opacity)
		assert.False(t, h.Glow)

		// The retracted disc lies completely off-screen.
		hx, _ := h.Center(testVW, testVH)
		assert.Less(t, hx+h.Size.Px/2, 0.0)

		// Only a sliver of the revealed disc is on-screen.
		vx, _ := f.Center(testVW, testVH)
		assert.Greater(t, vx+f.Size.Px/2, 0.0)
	}
}

func TestOrbDockedEdgesAreSymmetric(t *testing.T) {
	lx, ly := Orb(anchor.Left, true, Desktop).Center(testVW, testVH)
	rx, ry := Orb(anchor.Right, true, Desktop).Center(testVW, testVH)
	tx, ty := Orb(anchor.Top, true, Desktop).Center(testVW, testVH)
	bx, by := Orb(anchor.Bottom, true, Desktop).Center(testVW, testVH)

	assert.InDelta(t, -112.0, lx, eps)
	assert.InDelta(t, testVW+112, rx, eps)
	assert.InDelta(t, ly, ry, eps)
	assert.InDelta(t, -112.0, ty, eps)
	assert.InDelta(t, testVH+112, by, eps)
	assert.InDelta(t, tx, bx, eps)
}
