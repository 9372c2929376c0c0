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
	"math/rand/v2"
	"testing"

	"seehuhn.de/go/geom/vec"
)

func TestLineCoefficients(t *testing.T) {
	segs := []Segment{
		NewSegment(0, 0, 10, 10),
		NewSegment(-3, 7, 4, -2),
		NewSegment(5, 0, 5, 20),
		NewSegment(1, 1, 9, 1),
	}
	for _, s := range segs {
		a, b, c := s.LineCoefficients()
		for _, p := range []vec.Vec2{s.P1, s.P2} {
			if v := a*p.X + b*p.Y + c; v != 0 {
				t.Errorf("%v: a*x+b*y+c = %g at %v", s, v, p)
			}
		}
	}
}

func TestIntersect(t *testing.T) {
	cases := []struct {
		name   string
		s      Segment
		other  Segment
		want   vec.Vec2
		wantOK bool
	}{
		{
			name:   "diagonals",
			s:      NewSegment(0, 0, 10, 10),
			other:  NewSegment(0, 10, 10, 0),
			want:   vec.Vec2{X: 5, Y: 5},
			wantOK: true,
		},
		{
			name:   "first_vertical",
			s:      NewSegment(2, -5, 2, 5),
			other:  NewSegment(0, 0, 10, 1),
			want:   vec.Vec2{X: 2, Y: 0.2},
			wantOK: true,
		},
		{
			name:   "first_vertical_out_of_range",
			s:      NewSegment(2, 0, 2, 1),
			other:  NewSegment(0, 5, 10, 5),
			wantOK: false,
		},
		{
			name:   "second_vertical",
			s:      NewSegment(0, 0, 10, 10),
			other:  NewSegment(3, 0, 3, 10),
			want:   vec.Vec2{X: 3, Y: 3},
			wantOK: true,
		},
		{
			name:   "second_vertical_out_of_range",
			s:      NewSegment(0, 5, 10, 5),
			other:  NewSegment(2, 0, 2, 1),
			wantOK: false,
		},
		{
			name:   "almost_vertical",
			s:      NewSegment(0, 0, 1e-6, 10),
			other:  NewSegment(-5, 5, 5, 5),
			want:   vec.Vec2{X: 0, Y: 5},
			wantOK: true,
		},
		{
			name:   "parallel_vertical",
			s:      NewSegment(0, 0, 0, 5),
			other:  NewSegment(1, 0, 1, 5),
			wantOK: false,
		},
		{
			name:   "collinear_vertical_second_end",
			s:      NewSegment(0, 0, 0, 10),
			other:  NewSegment(0, 5, 0, 15),
			want:   vec.Vec2{X: 0, Y: 10},
			wantOK: true,
		},
		{
			name:   "collinear_vertical_first_end",
			s:      NewSegment(0, 12, 0, 20),
			other:  NewSegment(0, 5, 0, 15),
			want:   vec.Vec2{X: 0, Y: 12},
			wantOK: true,
		},
		{
			name:   "collinear_vertical_disjoint",
			s:      NewSegment(0, 0, 0, 1),
			other:  NewSegment(0, 5, 0, 6),
			wantOK: false,
		},
		{
			name:   "parallel",
			s:      NewSegment(0, 0, 10, 10),
			other:  NewSegment(0, 1, 10, 11),
			wantOK: false,
		},
		{
			name:   "parallel_rounded_slopes",
			s:      NewSegment(0, 0.1, 0.3, 0.2),
			other:  NewSegment(0, 1, 3, 2),
			wantOK: false,
		},
		{
			name:   "collinear_horizontal",
			s:      NewSegment(0, 0, 10, 0),
			other:  NewSegment(5, 0, 20, 0),
			want:   vec.Vec2{X: 10, Y: 0},
			wantOK: true,
		},
		{
			name:   "collinear_disjoint",
			s:      NewSegment(0, 0, 1, 1),
			other:  NewSegment(5, 5, 6, 6),
			wantOK: false,
		},
		{
			// The general case does not check the segment extents.
			name:   "general_case_outside_both",
			s:      NewSegment(0, 0, 1, 1),
			other:  NewSegment(10, 0, 11, -1),
			want:   vec.Vec2{X: 5, Y: 5},
			wantOK: true,
		},
	}

	const eps = 1e-9
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok := c.s.Intersect(c.other.P1.X, c.other.P1.Y, c.other.P2.X, c.other.P2.Y)
			if ok != c.wantOK {
				t.Fatalf("ok = %t, want %t", ok, c.wantOK)
			}
			if !ok {
				return
			}
			if got.Sub(c.want).Length() > eps {
				t.Errorf("got %v, want %v", got, c.want)
			}
		})
	}
}

// TestIntersectRandom checks that for crossing, non-parallel segments the
// intersection lies on both lines and within the second segment.
func TestIntersectRandom(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	coord := func() float64 { return rng.Float64()*200 - 100 }

	for i := range 1000 {
		p1 := vec.Vec2{X: coord(), Y: coord()}
		p2 := vec.Vec2{X: coord(), Y: coord()}
		d1 := p2.Sub(p1)
		if d1.Length() < 1 {
			continue
		}

		// a second segment through a point of the first one
		q := p1.Add(d1.Mul(rng.Float64()))
		phi := rng.Float64() * 2 * math.Pi
		d2 := vec.Vec2{X: math.Cos(phi), Y: math.Sin(phi)}
		cross := (d1.X*d2.Y - d1.Y*d2.X) / d1.Length()
		if math.Abs(cross) < 0.1 {
			continue
		}
		q1 := q.Sub(d2.Mul(1 + 50*rng.Float64()))
		q2 := q.Add(d2.Mul(1 + 50*rng.Float64()))

		s := Segment{P1: p1, P2: p2}
		got, ok := s.Intersect(q1.X, q1.Y, q2.X, q2.Y)
		if !ok {
			t.Fatalf("%d: no intersection for %v and %v-%v", i, s, q1, q2)
		}

		for _, seg := range []Segment{s, {P1: q1, P2: q2}} {
			a, b, c := seg.LineCoefficients()
			dist := math.Abs(a*got.X+b*got.Y+c) / math.Hypot(a, b)
			if dist > 1e-6 {
				t.Errorf("%d: %v is %g away from the line through %v", i, got, dist, seg)
			}
		}

		const eps = 1e-6
		if got.X < min(q1.X, q2.X)-eps || got.X > max(q1.X, q2.X)+eps ||
			got.Y < min(q1.Y, q2.Y)-eps || got.Y > max(q1.Y, q2.Y)+eps {
			t.Errorf("%d: %v outside of %v-%v", i, got, q1, q2)
		}
	}
}

func TestIntersectCircle(t *testing.T) {
	cases := []struct {
		name string
		s    Segment
		cx   float64
		cy   float64
		r    float64
		want []vec.Vec2
	}{
		{
			name: "through_centre",
			s:    NewSegment(-10, 0, 10, 0),
			r:    5,
			want: []vec.Vec2{{X: 5, Y: 0}, {X: -5, Y: 0}},
		},
		{
			name: "through_centre_reversed",
			s:    NewSegment(10, 0, -10, 0),
			r:    5,
			want: []vec.Vec2{{X: -5, Y: 0}, {X: 5, Y: 0}},
		},
		{
			name: "short_segment",
			s:    NewSegment(0, 0, 1, 0),
			cx:   0,
			cy:   0,
			r:    5,
			want: []vec.Vec2{{X: 5, Y: 0}, {X: -5, Y: 0}},
		},
		{
			name: "tangent",
			s:    NewSegment(-10, 5, 10, 5),
			r:    5,
			want: []vec.Vec2{{X: 0, Y: 5}},
		},
		{
			name: "miss",
			s:    NewSegment(-10, 6, 10, 6),
			r:    5,
			want: nil,
		},
		{
			name: "offset_centre",
			s:    NewSegment(0, 3, 1, 3),
			cx:   10,
			cy:   3,
			r:    2,
			want: []vec.Vec2{{X: 12, Y: 3}, {X: 8, Y: 3}},
		},
		{
			name: "point",
			s:    NewSegment(1, 1, 1, 1),
			r:    5,
			want: nil,
		},
	}

	const eps = 1e-9
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := c.s.IntersectCircle(c.cx, c.cy, c.r)
			if len(got) != len(c.want) {
				t.Fatalf("got %d points %v, want %d", len(got), got, len(c.want))
			}
			for i := range got {
				if got[i].Sub(c.want[i]).Length() > eps {
					t.Errorf("point %d: got %v, want %v", i, got[i], c.want[i])
				}
			}
		})
	}
}

func TestIntersectCircleOnCircle(t *testing.T) {
	s := NewSegment(1, 2, 4, 7)
	centre := vec.Vec2{X: 3, Y: 3}
	const r = 4.0

	pts := s.IntersectCircle(centre.X, centre.Y, r)
	if len(pts) != 2 {
		t.Fatalf("got %d points, want 2", len(pts))
	}
	a, b, c := s.LineCoefficients()
	for _, p := range pts {
		if d := p.Sub(centre).Length(); math.Abs(d-r) > 1e-9 {
			t.Errorf("%v is %g from the centre, want %g", p, d, r)
		}
		if v := a*p.X + b*p.Y + c; math.Abs(v) > 1e-9 {
			t.Errorf("%v is not on the line (residual %g)", p, v)
		}
	}
}
