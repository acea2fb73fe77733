// Package geometry computes where the orb and its menu ring sit for every
// dock position. All functions are pure: identical inputs always produce
// identical outputs and nothing is cached or mutated.
//
// Lengths are expressed in CSS-like pixel units. A position is an Expr, a
// percentage of some reference length plus a fixed pixel offset, so the same
// placement can be resolved against any concrete viewport size.
package geometry

import (
	"fmt"
	"strconv"
)

// PxPerRem converts rem lengths into pixels.
const PxPerRem = 16.0

// Expr is a composite length: Percent of a reference length plus Px pixels.
// It mirrors a CSS calc() expression such as calc(100% + 112px).
type Expr struct {
	Percent float64
	Px      float64
}

// Pct returns an Expr of p percent with no pixel offset.
func Pct(p float64) Expr {
	return Expr{Percent: p}
}

// Px returns an Expr of a fixed pixel length.
func Px(px float64) Expr {
	return Expr{Px: px}
}

// Rem returns an Expr of a fixed rem length.
func Rem(r float64) Expr {
	return Expr{Px: r * PxPerRem}
}

// Plus returns e offset by px pixels.
func (e Expr) Plus(px float64) Expr {
	e.Px += px
	return e
}

// Resolve evaluates the expression against a reference length in pixels.
func (e Expr) Resolve(total float64) float64 {
	return total*e.Percent/100 + e.Px
}

// String renders the expression in CSS notation.
func (e Expr) String() string {
	switch {
	case e.Px == 0:
		return fmtNum(e.Percent) + "%"
	case e.Percent == 0:
		return fmtNum(e.Px) + "px"
	case e.Px < 0:
		return fmt.Sprintf("calc(%s%% - %spx)", fmtNum(e.Percent), fmtNum(-e.Px))
	default:
		return fmt.Sprintf("calc(%s%% + %spx)", fmtNum(e.Percent), fmtNum(e.Px))
	}
}

func fmtNum(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
