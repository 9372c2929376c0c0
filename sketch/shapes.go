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

package sketch

import (
	"iter"
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/hachure"
)

// Rect draws a rectangle with top-left corner (x, y), width w and height
// h, filled with hatch lines.
func (s *Sketcher) Rect(x, y, w, h float64) *Shape {
	left, right := min(x, x+w), max(x, x+w)
	top, bottom := min(y, y+h), max(y, y+h)

	sh := s.newShape()
	s.line(sh.Outline, left, top, right, top)
	s.line(sh.Outline, right, top, right, bottom)
	s.line(sh.Outline, right, bottom, left, bottom)
	s.line(sh.Outline, left, bottom, left, top)

	it := hachure.NewForRect(rect.Rect{LLx: left, LLy: top, URx: right, URy: bottom},
		s.HachureGap, s.HachureAngle)
	s.zigzag(sh.Hachure, it.Lines())

	return sh
}

// Triangle draws the outline of the triangle with the given corners.
func (s *Sketcher) Triangle(x1, y1, x2, y2, x3, y3 float64) *Shape {
	sh := s.newShape()
	s.line(sh.Outline, x1, y1, x2, y2)
	s.line(sh.Outline, x2, y2, x3, y3)
	s.line(sh.Outline, x3, y3, x1, y1)
	return sh
}

// Ellipse draws the outline of the ellipse with centre (cx, cy), width w
// and height h.
//
// Ellipses with a radius of zero, or with a radius smaller than a quarter
// of the roughness, are not drawn and give an empty shape.
func (s *Sketcher) Ellipse(cx, cy, w, h float64) *Shape {
	sh := s.newShape()
	s.ellipse(sh.Outline, cx, cy, w, h)
	return sh
}

// Circle draws a circle with centre (cx, cy) and radius r, filled with
// hatch lines.
func (s *Sketcher) Circle(cx, cy, r float64) *Shape {
	r = math.Abs(r)

	sh := s.newShape()
	box := rect.Rect{LLx: cx - r, LLy: cy - r, URx: cx + r, URy: cy + r}
	it := hachure.NewForRect(box, s.HachureGap, s.HachureAngle)
	s.zigzag(sh.Hachure, it.CircleLines())

	s.ellipse(sh.Outline, cx, cy, 2*r, 2*r)
	return sh
}

// Sector draws a circular sector with centre (cx, cy) and radius r.  The
// arc runs counter-clockwise from startDeg to endDeg, with angles
// measured in degrees from the positive x-axis.
func (s *Sketcher) Sector(cx, cy, r, startDeg, endDeg float64) *Shape {
	const off = 1.0

	start := startDeg * math.Pi / 180
	end := endDeg * math.Pi / 180
	inc := 2 * math.Pi / float64(s.steps())

	arc := func() []vec.Vec2 {
		var pts []vec.Vec2
		for theta := start; theta < end; theta += inc {
			pts = append(pts, vec.Vec2{
				X: s.offset(-off, off) + cx + r*math.Cos(theta),
				Y: s.offset(-off, off) + cy - r*math.Sin(theta),
			})
		}
		return append(pts, vec.Vec2{
			X: s.offset(-off, off) + cx + r*math.Cos(end),
			Y: s.offset(-off, off) + cy - r*math.Sin(end),
		})
	}

	sh := s.newShape()
	first := arc()
	cardinal(sh.Outline, first, 0)
	cardinal(sh.Outline, arc(), 0)

	a, b := first[0], first[len(first)-1]
	s.line(sh.Outline, cx, cy, a.X, a.Y)
	s.line(sh.Outline, cx, cy, b.X, b.Y)
	return sh
}

// ellipse appends two perturbed passes around the ellipse to p.
func (s *Sketcher) ellipse(p *path.Data, cx, cy, w, h float64) {
	rx := math.Abs(w / 2)
	ry := math.Abs(h / 2)
	if rx == 0 || ry == 0 {
		return
	}
	if rx < s.roughness/4 || ry < s.roughness/4 {
		return
	}

	rx += s.offset(-rx*0.05, rx*0.05)
	ry += s.offset(-ry*0.05, ry*0.05)

	s.ellipsePass(p, cx, cy, rx, ry, 1)
	s.ellipsePass(p, cx, cy, rx, ry, 1.5)
}

// ellipsePass appends one closed, perturbed spline around the ellipse.
// The starting angle is randomised near the top of the ellipse.
func (s *Sketcher) ellipsePass(p *path.Data, cx, cy, rx, ry, off float64) {
	steps := s.steps()
	radial := s.offset(-0.5, 0.5) - math.Pi/2
	inc := 2 * math.Pi / float64(steps)

	pts := make([]vec.Vec2, 0, steps+1)
	for i := range steps + 1 {
		theta := radial + float64(i)*inc
		pts = append(pts, vec.Vec2{
			X: s.offset(-off, off) + cx + rx*math.Cos(theta),
			Y: s.offset(-off, off) + cy + ry*math.Sin(theta),
		})
	}
	cardinal(p, pts, 0)
}

// zigzag draws the given hatch lines, joining the end of each line to the
// start of the next one.
func (s *Sketcher) zigzag(p *path.Data, lines iter.Seq[hachure.Line]) {
	var prev hachure.Line
	first := true
	for l := range lines {
		if !first {
			s.line(p, prev.B.X, prev.B.Y, l.A.X, l.A.Y)
		}
		s.line(p, l.A.X, l.A.Y, l.B.X, l.B.Y)
		prev = l
		first = false
	}
}

// steps returns the number of spline points for a full ellipse.
func (s *Sketcher) steps() int {
	if s.EllipseSteps < 3 {
		return DefaultEllipseSteps
	}
	return s.EllipseSteps
}
