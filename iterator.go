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
	"iter"
	"math"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Line is a hatch line from A to B.
type Line struct {
	A, B vec.Vec2
}

// sweepMode selects how the iterator advances across the box.
type sweepMode int

const (
	sweepOblique    sweepMode = iota // general angle, clipped against the box edges
	sweepVertical                    // vertical hatch lines, sweeping along x
	sweepHorizontal                  // horizontal hatch lines, sweeping along y
)

// Iterator generates the hatch lines filling a box, or the circle
// inscribed in the box, one line at a time.
//
// The box uses a y-down coordinate system: top < bottom and left < right.
// The sweep cursor only ever moves forward, so an Iterator can be drained
// exactly once.  An Iterator is not safe for concurrent use.
type Iterator struct {
	top, bottom float64
	left, right float64
	gap         float64
	tanAngle    float64

	mode sweepMode
	done bool

	// pos is the sweep cursor.  In oblique mode it is the x coordinate of
	// the midpoint of the candidate hatch line.
	pos float64

	deltaX float64 // horizontal extent of a hatch line across the box (oblique mode)
	hGap   float64 // horizontal distance between hatch lines (oblique mode)
}

// New returns an iterator over the hatch lines of the box with the given
// edges.  The hatch lines are gap units apart.  The hatch angle is given
// by its sine, cosine and tangent; an angle with sine 0 gives vertical
// lines, an angle with sine ±1 gives horizontal lines.
//
// The gap must be positive.  If the box has zero width or height, the
// iterator yields no lines.
func New(top, bottom, left, right, gap, sinAngle, cosAngle, tanAngle float64) *Iterator {
	it := &Iterator{
		top:      top,
		bottom:   bottom,
		left:     left,
		right:    right,
		gap:      gap,
		tanAngle: tanAngle,
	}

	switch {
	case math.Abs(sinAngle) < verticalHatchThreshold:
		it.mode = sweepVertical
		it.pos = left + gap
	case math.Abs(sinAngle) > horizontalHatchThreshold:
		it.mode = sweepHorizontal
		it.pos = top + gap
	default:
		it.mode = sweepOblique
		it.deltaX = (bottom - top) * math.Abs(tanAngle)
		it.pos = left - math.Abs(it.deltaX)
		it.hGap = math.Abs(gap / cosAngle)
	}

	if right <= left || bottom <= top {
		it.done = true
	}
	return it
}

// NewForRect returns an iterator over the hatch lines of box, at the given
// angle in degrees.  LLy is used as the top edge and URy as the bottom edge.
func NewForRect(box rect.Rect, gap, angleDeg float64) *Iterator {
	theta := angleDeg * math.Pi / 180
	sin, cos := math.Sincos(theta)
	return New(box.LLy, box.URy, box.LLx, box.URx, gap, sin, cos, math.Tan(theta))
}

// NextLine returns the next hatch line, clipped to the box.  The second
// return value is false once the box has been covered.
func (it *Iterator) NextLine() (Line, bool) {
	if it.done {
		return Line{}, false
	}

	switch it.mode {
	case sweepVertical:
		if it.pos >= it.right {
			it.done = true
			return Line{}, false
		}
		l := Line{
			A: vec.Vec2{X: it.pos, Y: it.top},
			B: vec.Vec2{X: it.pos, Y: it.bottom},
		}
		it.pos += it.gap
		return l, true

	case sweepHorizontal:
		if it.pos >= it.bottom {
			it.done = true
			return Line{}, false
		}
		l := Line{
			A: vec.Vec2{X: it.left, Y: it.pos},
			B: vec.Vec2{X: it.right, Y: it.pos},
		}
		it.pos += it.gap
		return l, true
	}

	xLower, xUpper, ok := it.seek()
	if !ok {
		return Line{}, false
	}

	lower := vec.Vec2{X: xLower, Y: it.bottom}
	upper := vec.Vec2{X: xUpper, Y: it.top}
	s := Segment{P1: lower, P2: upper}
	if p, ok := s.Intersect(it.left, it.bottom, it.left, it.top); ok {
		lower = p
	}
	if p, ok := s.Intersect(it.right, it.bottom, it.right, it.top); ok {
		upper = p
	}
	if it.tanAngle > 0 {
		lower.X = it.right - (lower.X - it.left)
		upper.X = it.right - (upper.X - it.left)
	}

	it.pos += it.hGap
	return Line{A: lower, B: upper}, true
}

// NextCircleLine returns the next hatch line of the circle inscribed in
// the box, as a chord of the circle.  The radius is half the box height
// and the circle touches the top, bottom and left edges.  The second
// return value is false once the circle has been covered.
func (it *Iterator) NextCircleLine() (Line, bool) {
	if it.done {
		return Line{}, false
	}

	r := (it.bottom - it.top) / 2
	cx := it.left + r
	cy := it.top + r

	switch it.mode {
	case sweepVertical:
		for it.pos < it.right {
			x := it.pos
			it.pos += it.gap
			h2 := r*r - (x-cx)*(x-cx)
			if h2 < 0 {
				// the box is wider than the circle
				continue
			}
			h := math.Sqrt(h2)
			return Line{
				A: vec.Vec2{X: x, Y: cy + h},
				B: vec.Vec2{X: x, Y: cy - h},
			}, true
		}
		it.done = true
		return Line{}, false

	case sweepHorizontal:
		for it.pos < it.bottom {
			y := it.pos
			it.pos += it.gap
			h2 := r*r - (y-cy)*(y-cy)
			if h2 < 0 {
				continue
			}
			h := math.Sqrt(h2)
			return Line{
				A: vec.Vec2{X: cx + h, Y: y},
				B: vec.Vec2{X: cx - h, Y: y},
			}, true
		}
		it.done = true
		return Line{}, false
	}

	for {
		xLower, xUpper, ok := it.seek()
		if !ok {
			return Line{}, false
		}
		s := NewSegment(xLower, it.bottom, xUpper, it.top)
		it.pos += it.hGap

		// Tangent lines and misses are skipped, only proper chords are
		// returned.
		if pts := s.IntersectCircle(cx, cy, r); len(pts) == 2 {
			return Line{A: pts[0], B: pts[1]}, true
		}
	}
}

// seek advances the oblique sweep cursor until the candidate hatch line
// overlaps the horizontal range of the box, and returns the x coordinates
// of the candidate's lower and upper end point.  The result is false once
// the cursor has moved past right + deltaX.
func (it *Iterator) seek() (xLower, xUpper float64, ok bool) {
	limit := it.right + it.deltaX
	if it.pos >= limit {
		it.done = true
		return 0, 0, false
	}

	for {
		xLower = it.pos - it.deltaX/2
		xUpper = it.pos + it.deltaX/2
		leftOf := xLower < it.left && xUpper < it.left
		rightOf := xLower > it.right && xUpper > it.right
		if !leftOf && !rightOf {
			return xLower, xUpper, true
		}

		it.pos += it.hGap
		if it.pos > limit {
			it.done = true
			return 0, 0, false
		}
	}
}

// Lines returns an iterator over the remaining hatch lines of the box.
func (it *Iterator) Lines() iter.Seq[Line] {
	return func(yield func(Line) bool) {
		for {
			l, ok := it.NextLine()
			if !ok || !yield(l) {
				return
			}
		}
	}
}

// CircleLines returns an iterator over the remaining hatch lines of the
// circle inscribed in the box.
func (it *Iterator) CircleLines() iter.Seq[Line] {
	return func(yield func(Line) bool) {
		for {
			l, ok := it.NextCircleLine()
			if !ok || !yield(l) {
				return
			}
		}
	}
}
