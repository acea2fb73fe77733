package render

import (
	"math"
	"strings"

	zone "github.com/lrstanley/bubblezone"

	"gitlab.com/tinyland/lab/orbit-reader/pkg/theme"
)

// PoseFunc reports an element's current pose.
type PoseFunc func(id string) (Pose, bool)

// Targets returns a PoseFunc that places every element on its target, for
// static output.
func Targets(sc Scene) PoseFunc {
	poses := make(map[string]Pose)
	for _, el := range sc.Elements() {
		poses[el.ID] = el.To
	}
	return func(id string) (Pose, bool) {
		p, ok := poses[id]
		return p, ok
	}
}

// Compositor rasterizes scenes into canvas cells.
type Compositor struct {
	Metrics Metrics
	Theme   theme.Theme
	// Zones receives hit-test marks. Nil disables marking.
	Zones *zone.Manager
}

// Draw rasterizes sc into a cols x rows canvas using the current poses.
// Sensors are drawn first, then the orb, then the menu items on top. The
// orb and ring are skipped entirely while the auth overlay is open.
func (c Compositor) Draw(sc Scene, poses PoseFunc, cols, rows int) *Canvas {
	cv := NewCanvas(cols, rows)
	for _, s := range sc.Sensors {
		c.drawSensor(cv, s)
	}
	if !sc.ShowOrb {
		return cv
	}
	if p, ok := poses(sc.Orb.ID); ok {
		c.drawOrb(cv, sc.Orb, p)
	}
	for _, el := range sc.Items {
		if p, ok := poses(el.ID); ok {
			c.drawItem(cv, el, p)
		}
	}
	return cv
}

// markers splits a zone mark into its start and end sequences.
func (c Compositor) markers(id string) (start, end string, ok bool) {
	if c.Zones == nil || !c.Zones.Enabled() {
		return "", "", false
	}
	const sentinel = "\x00"
	return strings.Cut(c.Zones.Mark(id, sentinel), sentinel)
}

func (c Compositor) mark(cv *Canvas, id string, x0, y0, x1, y1 int) {
	if start, end, ok := c.markers(id); ok {
		cv.Mark(x0, y0, x1, y1, start, end)
	}
}

func (c Compositor) drawSensor(cv *Canvas, s Sensor) {
	m := c.Metrics
	x0, y0 := m.Cell(s.X, s.Y)
	x1, y1 := m.Cell(s.X+s.W-1, s.Y+s.H-1)
	c.mark(cv, SensorZone(s.Edge), x0, y0, x1, y1)
}

// Orb shading, brightest first.
var orbRamp = []rune{'█', '█', '▓', '▒', '░'}

func (c Compositor) drawOrb(cv *Canvas, el Element, p Pose) {
	if p.Opacity < 0.05 || p.Scale <= 0 {
		return
	}
	m, th := c.Metrics, c.Theme
	r := el.Size * p.Scale / 2
	halo := 0.0
	if el.Frame.Glow && p.Opacity > 0.5 {
		halo = m.CellW * 1.5
	}

	// Highlight point, as a fraction of the disc's bounding box.
	hx := p.X - r + 2*r*el.Frame.HighlightX/100
	hy := p.Y - r + 2*r*el.Frame.HighlightY/100
	colors := []string{th.OrbCore, th.OrbMid, th.OrbMid, th.OrbRim, th.OrbRim}

	c0, r0 := m.Cell(p.X-r-halo, p.Y-r-halo)
	c1, r1 := m.Cell(p.X+r+halo, p.Y+r+halo)
	minX, minY, maxX, maxY := cv.w, cv.h, -1, -1
	for row := max(r0, 0); row <= min(r1, cv.h-1); row++ {
		for col := max(c0, 0); col <= min(c1, cv.w-1); col++ {
			px := (float64(col) + 0.5) * m.CellW
			py := (float64(row) + 0.5) * m.CellH
			d := math.Hypot(px-p.X, py-p.Y)
			switch {
			case d <= r:
				t := math.Hypot(px-hx, py-hy) / (2 * r)
				level := int(math.Min(t/(0.85*p.Opacity)*float64(len(orbRamp)), float64(len(orbRamp)-1)))
				cv.Set(col, row, orbRamp[level], Style{FG: colors[level]})
				minX, minY = min(minX, col), min(minY, row)
				maxX, maxY = max(maxX, col), max(maxY, row)
			case d <= r+halo:
				cv.Set(col, row, '·', Style{FG: th.OrbGlow})
			}
		}
	}
	if p.Opacity > 0.5 && len(el.Caption) > 0 {
		col, row := m.Cell(p.X, p.Y)
		row -= len(el.Caption) / 2
		for i, line := range el.Caption {
			st := Style{FG: th.Foreground, Bold: i == 0}
			if i > 0 {
				st = Style{FG: th.OrbCore}
			}
			cv.Text(col-strWidth(line)/2, row+i, line, st)
		}
	}
	if el.Interactive && maxX >= 0 {
		c.mark(cv, el.ID, minX, minY, maxX, maxY)
	}
}

func (c Compositor) drawItem(cv *Canvas, el Element, p Pose) {
	if p.Opacity < 0.2 {
		return
	}
	th := c.Theme
	st := Style{FG: th.Item}
	switch {
	case p.Opacity < 0.6:
		st = Style{FG: th.Dim}
	case el.Active:
		st = Style{FG: th.ItemActive, Bold: true}
	case el.Item.Special:
		st = Style{FG: th.Special}
	}

	icon := "(" + string(el.Item.Icon) + ")"
	label := strings.ToUpper(el.Item.Label)
	if p.Scale < 0.6 {
		label = ""
	}
	iw := strWidth(icon)
	lw := strWidth(label)
	w := max(iw, lw)

	col, row := c.Metrics.Cell(p.X, p.Y)
	left := col - w/2
	cv.Text(left+(w-iw)/2, row, icon, st)
	bottom := row
	if label != "" {
		cv.Text(left+(w-lw)/2, row+1, label, st)
		bottom = row + 1
	}
	if el.Interactive {
		c.mark(cv, el.ID, left, row, left+w-1, bottom)
	}
}
