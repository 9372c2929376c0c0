// seehuhn.de/go/hachure - hand-drawn outlines and hatch fills
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package hachure

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// Segment is a directed line segment from P1 to P2.
//
// Segment values are immutable; the intersection queries return their
// results instead of storing them, so a Segment can be shared freely.
type Segment struct {
	P1, P2 vec.Vec2
}

// NewSegment returns the segment from (x1, y1) to (x2, y2).
func NewSegment(x1, y1, x2, y2 float64) Segment {
	return Segment{
		P1: vec.Vec2{X: x1, Y: y1},
		P2: vec.Vec2{X: x2, Y: y2},
	}
}

// LineCoefficients returns a, b and c such that a*x + b*y + c = 0 holds
// for both end points of the segment.
func (s Segment) LineCoefficients() (a, b, c float64) {
	a = s.P2.Y - s.P1.Y
	b = s.P1.X - s.P2.X
	c = s.P2.X*s.P1.Y - s.P1.X*s.P2.Y
	return a, b, c
}

// lineForm is the explicit form of a line: either x = x0 for a vertical
// line, or y = slope*x + intercept.
type lineForm struct {
	vertical  bool
	x0        float64
	slope     float64
	intercept float64
}

// explicitForm converts the coefficient form a*x + b*y + c = 0 into a
// lineForm.  The point p, which must lie on the line, is used for
// degenerate lines where both a and b vanish.
func explicitForm(a, b, c float64, p vec.Vec2) lineForm {
	if math.Abs(b) <= verticalThreshold {
		x0 := p.X
		if a != 0 {
			x0 = -c / a
		}
		return lineForm{vertical: true, x0: x0}
	}
	return lineForm{slope: -a / b, intercept: -c / b}
}

// at evaluates a non-vertical line at x.
func (l lineForm) at(x float64) float64 {
	return l.slope*x + l.intercept
}

// Intersect determines where the line through s crosses the line through
// (x1, y1) and (x2, y2).
//
// For parallel lines, the second return value is false unless the lines
// coincide; in this case the first end point of s that lies within the
// extent of the other segment is returned.  If exactly one of the lines is
// vertical, the intersection must lie within the vertical extent of the
// vertical segment.
//
// In the general case, where neither line is vertical and the lines are
// not parallel, the intersection of the two infinite lines is returned
// and the second return value is always true.  No check is made whether
// the point lies within either segment.  The hatch iterator only calls
// this with segments which are known to cross; callers needing a strict
// segment/segment test must check the extents themselves.
func (s Segment) Intersect(x1, y1, x2, y2 float64) (vec.Vec2, bool) {
	other := NewSegment(x1, y1, x2, y2)

	a1, b1, c1 := s.LineCoefficients()
	a2, b2, c2 := other.LineCoefficients()
	l1 := explicitForm(a1, b1, c1, s.P1)
	l2 := explicitForm(a2, b2, c2, other.P1)

	switch {
	case l1.vertical && l2.vertical:
		if !nearlyEqual(l1.x0, l2.x0) {
			return vec.Vec2{}, false
		}
		// both segments lie on the same vertical line
		if within(s.P1.Y, y1, y2) {
			return s.P1, true
		} else if within(s.P2.Y, y1, y2) {
			return s.P2, true
		}
		return vec.Vec2{}, false

	case l1.vertical:
		p := vec.Vec2{X: s.P1.X, Y: l2.at(s.P1.X)}
		if !within(p.Y, s.P1.Y, s.P2.Y) {
			return vec.Vec2{}, false
		}
		return p, true

	case l2.vertical:
		p := vec.Vec2{X: x1, Y: l1.at(x1)}
		if !within(p.Y, y1, y2) {
			return vec.Vec2{}, false
		}
		return p, true

	case nearlyEqual(l1.slope, l2.slope):
		if !nearlyEqual(l1.intercept, l2.intercept) {
			return vec.Vec2{}, false
		}
		// both segments lie on the same line
		if within(s.P1.X, x1, x2) {
			return s.P1, true
		} else if within(s.P2.X, x1, x2) {
			return s.P2, true
		}
		return vec.Vec2{}, false
	}

	x := (l2.intercept - l1.intercept) / (l1.slope - l2.slope)
	return vec.Vec2{X: x, Y: l1.at(x)}, true
}

// IntersectCircle returns the points where the infinite line through s
// crosses the circle with centre (cx, cy) and radius r.
//
// The result has length 0 if the line misses the circle, length 1 if the
// line is tangent to the circle, and length 2 otherwise.  The points are
// not restricted to the segment itself.  If there are two points, the one
// further along the direction P1→P2 comes first.  A segment with
// coincident end points has no direction and gives an empty result.
func (s Segment) IntersectCircle(cx, cy, r float64) []vec.Vec2 {
	// Substitute P(u) = P1 + u*(P2-P1) into |P(u) - centre|² = r².
	d := s.P2.Sub(s.P1)
	f := s.P1.Sub(vec.Vec2{X: cx, Y: cy})

	a := d.Dot(d)
	if a == 0 {
		return nil
	}
	b := 2 * d.Dot(f)
	c := f.Dot(f) - r*r

	disc := b*b - 4*a*c
	switch {
	case disc < 0:
		return nil
	case disc == 0:
		u := -b / (2 * a)
		return []vec.Vec2{s.P1.Add(d.Mul(u))}
	}

	sq := math.Sqrt(disc)
	u1 := (-b + sq) / (2 * a)
	u2 := (-b - sq) / (2 * a)
	return []vec.Vec2{
		s.P1.Add(d.Mul(u1)),
		s.P1.Add(d.Mul(u2)),
	}
}

// within reports whether v lies in the closed interval spanned by a and b.
func within(v, a, b float64) bool {
	return v >= min(a, b) && v <= max(a, b)
}

// nearlyEqual compares two coordinates or slopes with a relative tolerance.
func nearlyEqual(a, b float64) bool {
	return math.Abs(a-b) <= equalityTolerance*max(1, math.Abs(a), math.Abs(b))
}
