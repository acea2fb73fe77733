package render

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
)

// SpringConfig describes a damped spring in physical terms.
type SpringConfig struct {
	Stiffness float64
	Damping   float64
	Mass      float64
}

// DefaultSpring is critically damped: angular frequency 10, damping ratio 1.
var DefaultSpring = SpringConfig{Stiffness: 100, Damping: 20, Mass: 1}

// Params converts to harmonica's angular frequency and damping ratio.
func (c SpringConfig) Params() (freq, ratio float64) {
	if c.Mass <= 0 {
		c.Mass = 1
	}
	freq = math.Sqrt(c.Stiffness / c.Mass)
	ratio = c.Damping / (2 * math.Sqrt(c.Stiffness*c.Mass))
	return freq, ratio
}

// Rest thresholds.
const (
	restDistance = 0.5   // px
	restUnit     = 0.005 // scale and opacity
)

type axis struct {
	pos, vel float64
}

type body struct {
	x, y, scale, opacity axis
	to                   Pose
	delay                time.Duration
	waited               time.Duration
}

func (b *body) pose() Pose {
	return Pose{X: b.x.pos, Y: b.y.pos, Scale: b.scale.pos, Opacity: b.opacity.pos}
}

func (b *body) place(p Pose) {
	b.x = axis{pos: p.X}
	b.y = axis{pos: p.Y}
	b.scale = axis{pos: p.Scale}
	b.opacity = axis{pos: p.Opacity}
}

func (b *body) settled() bool {
	near := func(a axis, target, eps float64) bool {
		return math.Abs(a.pos-target) < eps && math.Abs(a.vel) < eps*10
	}
	return b.waited >= b.delay &&
		near(b.x, b.to.X, restDistance) &&
		near(b.y, b.to.Y, restDistance) &&
		near(b.scale, b.to.Scale, restUnit) &&
		near(b.opacity, b.to.Opacity, restUnit)
}

// Animator springs every scene element toward its target pose, one frame per
// Step.
type Animator struct {
	spring harmonica.Spring
	dt     time.Duration
	bodies map[string]*body
}

// NewAnimator creates an animator stepping at fps frames per second.
func NewAnimator(fps int, cfg SpringConfig) *Animator {
	if fps <= 0 {
		fps = 60
	}
	freq, ratio := cfg.Params()
	return &Animator{
		spring: harmonica.NewSpring(harmonica.FPS(fps), freq, ratio),
		dt:     time.Second / time.Duration(fps),
		bodies: map[string]*body{},
	}
}

// FrameInterval is the time covered by one Step.
func (a *Animator) FrameInterval() time.Duration {
	return a.dt
}

// Sync retargets the animator at sc. Elements not seen before start from
// their From pose; with replay set, every element does. Elements that left
// the scene are dropped.
func (a *Animator) Sync(sc Scene, replay bool) {
	els := sc.Elements()
	keep := make(map[string]bool, len(els))
	for _, el := range els {
		keep[el.ID] = true
		b, ok := a.bodies[el.ID]
		if !ok || replay {
			b = &body{}
			b.place(el.From)
			a.bodies[el.ID] = b
		} else if b.to == el.To {
			continue
		}
		b.to = el.To
		b.delay = el.Delay
		b.waited = 0
	}
	for id := range a.bodies {
		if !keep[id] {
			delete(a.bodies, id)
		}
	}
}

// Step advances every element by one frame.
func (a *Animator) Step() {
	for _, b := range a.bodies {
		if b.waited < b.delay {
			b.waited += a.dt
			continue
		}
		b.x.pos, b.x.vel = a.spring.Update(b.x.pos, b.x.vel, b.to.X)
		b.y.pos, b.y.vel = a.spring.Update(b.y.pos, b.y.vel, b.to.Y)
		b.scale.pos, b.scale.vel = a.spring.Update(b.scale.pos, b.scale.vel, b.to.Scale)
		b.opacity.pos, b.opacity.vel = a.spring.Update(b.opacity.pos, b.opacity.vel, b.to.Opacity)
	}
}

// Snap moves every element to its target.
func (a *Animator) Snap() {
	for _, b := range a.bodies {
		b.place(b.to)
		b.waited = b.delay
	}
}

// Settled reports whether every element is at rest on its target.
func (a *Animator) Settled() bool {
	for _, b := range a.bodies {
		if !b.settled() {
			return false
		}
	}
	return true
}

// Pose returns the current pose of element id.
func (a *Animator) Pose(id string) (Pose, bool) {
	b, ok := a.bodies[id]
	if !ok {
		return Pose{}, false
	}
	return b.pose(), true
}
