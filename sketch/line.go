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
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// maxLineOffset is the largest random displacement of a line's spline
// points, before scaling by the roughness.
const maxLineOffset = 2.0

// Line draws a hand-drawn line from (x1, y1) to (x2, y2).
func (s *Sketcher) Line(x1, y1, x2, y2 float64) *Shape {
	sh := s.newShape()
	s.line(sh.Outline, x1, y1, x2, y2)
	return sh
}

// line appends two perturbed strokes from (x1, y1) to (x2, y2) to p.
//
// Each stroke is a cardinal spline through four points: the two end
// points and two intermediate points near the start of the line.  The
// random displacement is at most 10% of the line length.
func (s *Sketcher) line(p *path.Data, x1, y1, x2, y2 float64) {
	off := maxLineOffset
	if length := math.Hypot(x2-x1, y2-y1); maxLineOffset*10 > length {
		off = length / 10
	}
	diverge := 0.2 + s.rng.Float64()*0.2

	midX := s.bowing * maxLineOffset * (y2 - y1) / 200
	midY := s.bowing * maxLineOffset * (x1 - x2) / 200
	midX = s.offset(-midX, midX)
	midY = s.offset(-midY, midY)

	for range 2 {
		pts := []vec.Vec2{
			{
				X: x1 + s.offset(-off, off),
				Y: y1 + s.offset(-off, off),
			},
			{
				X: x1 + (x2-x1)*diverge + midX + s.offset(-off, off),
				Y: y1 + (y2-y1)*diverge + midY + s.offset(-off, off),
			},
			{
				X: x1 + 2*(x2-x1)*diverge + midX + s.offset(-off, off),
				Y: y1 + 2*(y2-y1)*diverge + midY + s.offset(-off, off),
			},
			{
				X: x2 + s.offset(-off, off),
				Y: y2 + s.offset(-off, off),
			},
		}
		cardinal(p, pts, 0)
	}
}

// cardinal appends an open cardinal spline through pts to p.
//
// The tangent at an interior point is (1-tension)/2 times the difference
// of its neighbours.  The first and the last segment are quadratic, the
// segments in between are cubic.
func cardinal(p *path.Data, pts []vec.Vec2, tension float64) {
	n := len(pts)
	if n == 0 {
		return
	}
	p.MoveTo(pts[0])
	if n < 3 {
		for _, pt := range pts[1:] {
			p.LineTo(pt)
		}
		return
	}

	// t[i] is the tangent at pts[i+1]
	a := (1 - tension) / 2
	t := make([]vec.Vec2, n-2)
	for i := range t {
		t[i] = pts[i+2].Sub(pts[i]).Mul(a)
	}

	p.QuadTo(pts[1].Sub(t[0].Mul(2.0/3)), pts[1])
	for i := 1; i < n-2; i++ {
		p.CubeTo(pts[i].Add(t[i-1]), pts[i+1].Sub(t[i]), pts[i+1])
	}
	p.QuadTo(pts[n-2].Add(t[n-3].Mul(2.0/3)), pts[n-1])
}
