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

package raster

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// strokeSegment is a flattened piece of a stroked path, in user space.
type strokeSegment struct {
	A, B vec.Vec2
	T    vec.Vec2 // unit tangent from A to B
	N    vec.Vec2 // unit normal, T rotated by 90 degrees counter-clockwise
}

// reversed returns the segment traversed from B to A.
func (s strokeSegment) reversed() strokeSegment {
	return strokeSegment{A: s.B, B: s.A, T: s.T.Mul(-1), N: s.N.Mul(-1)}
}

// Stroke inks the outline of p, using Width, Cap, Join and MiterLimit.
// Coverage is passed to emit row by row.
func (r *Rasterizer) Stroke(p *path.Data, emit EmitFunc) {
	r.flatten(p)
	if len(r.starts) == 0 && len(r.dots) == 0 {
		return
	}

	r.outline = r.outline[:0]
	r.outlineOffs = r.outlineOffs[:0]
	d := r.Width / 2

	// A subpath of zero length has no direction.  Only round caps make
	// it visible.
	if r.Cap == graphics.LineCapRound {
		for _, pt := range r.dots {
			start := len(r.outline)
			r.addArc(pt, d, vec.Vec2{X: 1}, 2*math.Pi, true)
			r.outlineOffs = append(r.outlineOffs, start)
		}
	}

	for i := range r.starts {
		segs := r.subpath(i)
		if r.closed[i] {
			// outer and inner ring, traversed in opposite directions
			r.polygon(func() { r.side(segs, d, true) })
			r.polygon(func() { r.side(r.reverse(segs), d, true) })
		} else {
			r.polygon(func() {
				first, last := segs[0], segs[len(segs)-1]
				r.side(segs, d, false)
				r.addCap(last.B, last.T, d)
				r.side(r.reverse(segs), d, false)
				r.addCap(first.A, first.T.Mul(-1), d)
			})
		}
	}

	r.fillOutlines(emit)
}

// polygon records the vertices appended by build as one outline
// polygon.  Polygons with fewer than three vertices are dropped.
func (r *Rasterizer) polygon(build func()) {
	start := len(r.outline)
	build()
	if len(r.outline)-start < 3 {
		r.outline = r.outline[:start]
		return
	}
	r.outlineOffs = append(r.outlineOffs, start)
}

// subpath returns the segments of subpath i.
func (r *Rasterizer) subpath(i int) []strokeSegment {
	end := len(r.segs)
	if i+1 < len(r.starts) {
		end = r.starts[i+1]
	}
	return r.segs[r.starts[i]:end]
}

// reverse returns segs in reverse order and direction.  The result uses
// scratch space, which is overwritten by the next call.
func (r *Rasterizer) reverse(segs []strokeSegment) []strokeSegment {
	r.rev = r.rev[:0]
	for i := len(segs) - 1; i >= 0; i-- {
		r.rev = append(r.rev, segs[i].reversed())
	}
	return r.rev
}

// flatten splits p into subpaths of straight segments.  The results are
// stored in r.segs, r.starts, r.closed and r.dots.
func (r *Rasterizer) flatten(p *path.Data) {
	r.segs = r.segs[:0]
	r.starts = r.starts[:0]
	r.closed = r.closed[:0]
	r.dots = r.dots[:0]

	var cur, start vec.Vec2
	first := 0    // index of the current subpath's first segment
	open := false // inside a subpath
	drawn := false

	finish := func(closed bool) {
		switch {
		case len(r.segs) > first:
			r.starts = append(r.starts, first)
			r.closed = append(r.closed, closed)
		case drawn || closed:
			r.dots = append(r.dots, start)
		}
		first = len(r.segs)
		open = false
		drawn = false
	}

	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			if open {
				finish(false)
			}
			cur = p.Coords[k]
			start = cur
			open = true
			k++
		case path.CmdLineTo:
			if open {
				r.addSegment(cur, p.Coords[k])
				cur = p.Coords[k]
				drawn = true
			}
			k++
		case path.CmdQuadTo:
			if open {
				r.flattenQuadratic(cur, p.Coords[k], p.Coords[k+1], r.addSegment)
				cur = p.Coords[k+1]
				drawn = true
			}
			k += 2
		case path.CmdCubeTo:
			if open {
				r.flattenCubic(cur, p.Coords[k], p.Coords[k+1], p.Coords[k+2], r.addSegment)
				cur = p.Coords[k+2]
				drawn = true
			}
			k += 3
		case path.CmdClose:
			if open {
				if cur != start {
					r.addSegment(cur, start)
				}
				cur = start
				finish(true)
			}
		}
	}
	if open {
		finish(false)
	}
}

// addSegment appends the segment a-b, unless it has zero length.
func (r *Rasterizer) addSegment(a, b vec.Vec2) {
	v := b.Sub(a)
	l := v.Length()
	if l < zeroLengthThreshold {
		return
	}
	t := v.Mul(1 / l)
	r.segs = append(r.segs, strokeSegment{A: a, B: b, T: t, N: vec.Vec2{X: -t.Y, Y: t.X}})
}

// side appends the offset curve at distance d on the +N side of segs.
// For closed subpaths the corner between the last and the first segment
// is included, and the resulting vertices form a closed ring.
func (r *Rasterizer) side(segs []strokeSegment, d float64, closed bool) {
	n := len(segs)
	skip := closed // for closed rings, the first vertex comes from the last corner
	for i := range n {
		seg := &segs[i]
		if !skip {
			r.outline = append(r.outline, seg.A.Add(seg.N.Mul(d)))
		}
		skip = false

		var next *strokeSegment
		switch {
		case i < n-1:
			next = &segs[i+1]
		case closed:
			next = &segs[0]
		default:
			r.outline = append(r.outline, seg.B.Add(seg.N.Mul(d)))
			return
		}

		sin := seg.T.X*next.T.Y - seg.T.Y*next.T.X
		switch {
		case math.Abs(sin) < collinearityThreshold:
			r.outline = append(r.outline, seg.B.Add(seg.N.Mul(d)))
		case sin > 0:
			// +N is the inside of the corner
			skip = r.addInner(seg.B, seg.T, next.T, d)
		default:
			r.outline = append(r.outline, seg.B.Add(seg.N.Mul(d)))
			r.addJoin(seg.B, seg.T, next.T, d)
		}
	}
	if closed && !skip {
		r.outline = append(r.outline, segs[0].A.Add(segs[0].N.Mul(d)))
	}
}

// addInner adds the inside vertex of the corner at P, where the tangent
// turns from T1 to T2.  If the two offset lines intersect, only the
// intersection is added and the result is true.  Otherwise both offset
// points are added.
func (r *Rasterizer) addInner(P, T1, T2 vec.Vec2, d float64) bool {
	N1 := vec.Vec2{X: -T1.Y, Y: T1.X}
	N2 := vec.Vec2{X: -T2.Y, Y: T2.X}

	cos := T1.Dot(T2)
	cosHalf := math.Sqrt((1 + cos) / 2)
	dir := N1.Add(N2)
	if l := dir.Length(); cos < 1-1e-9 && cosHalf >= 1e-9 && l >= 1e-9 {
		r.outline = append(r.outline, P.Add(dir.Mul(d/(l*cosHalf))))
		return true
	}

	r.outline = append(r.outline, P.Add(N1.Mul(d)), P.Add(N2.Mul(d)))
	return false
}

// addCap adds the cap at the end point P of a stroke.  T points away from
// the stroke.  The cap runs from the +N to the -N side of T.
func (r *Rasterizer) addCap(P, T vec.Vec2, d float64) {
	N := vec.Vec2{X: -T.Y, Y: T.X}
	switch r.Cap {
	case graphics.LineCapSquare:
		ext := P.Add(T.Mul(d))
		r.outline = append(r.outline, ext.Add(N.Mul(d)), ext.Sub(N.Mul(d)))
	case graphics.LineCapRound:
		r.addArc(P, d, N, -math.Pi, true)
	}
}

// addJoin adds the outside of the corner at P, where the tangent turns
// from T1 to T2.  The offset points of both segments are added by the
// caller.
func (r *Rasterizer) addJoin(P, T1, T2 vec.Vec2, d float64) {
	cos := T1.Dot(T2)
	sin := T1.X*T2.Y - T1.Y*T2.X
	if math.Abs(sin) < collinearityThreshold {
		return
	}
	if cos < cuspCosineThreshold {
		r.addCap(P, T1, d)
		r.addCap(P, T2.Mul(-1), d)
		return
	}

	N1 := vec.Vec2{X: -T1.Y, Y: T1.X}
	switch r.Join {
	case graphics.LineJoinMiter:
		// The miter length relative to the line width is 1/cos(θ/2),
		// where θ is the turning angle.
		cosHalf := math.Sqrt((1 + cos) / 2)
		if cosHalf > 0 && 1/cosHalf <= r.MiterLimit+1e-10 {
			N2 := vec.Vec2{X: -T2.Y, Y: T2.X}
			dir := N1.Add(N2)
			if l := dir.Length(); l > zeroLengthThreshold {
				r.outline = append(r.outline, P.Add(dir.Mul(d/(l*cosHalf))))
			}
		}
	case graphics.LineJoinRound:
		sweep := math.Acos(max(-1, min(1, cos)))
		if sin < 0 {
			sweep = -sweep
		}
		r.addArc(P, d, N1, sweep, false)
	}
}

// addArc adds the vertices of a circular arc around center.  The arc
// starts in direction dir and turns by sweep radians, counter-clockwise
// for positive values.  The start vertex is only added if withStart is
// set.
func (r *Rasterizer) addArc(center vec.Vec2, radius float64, dir vec.Vec2, sweep float64, withStart bool) {
	devRadius := max(
		r.linear(vec.Vec2{X: radius}).Length(),
		r.linear(vec.Vec2{Y: radius}).Length(),
	)

	// A chord spanning angle φ deviates from the arc by radius*(1-cos(φ/2)).
	n := 1
	if devRadius >= r.Flatness {
		step := 2 * math.Acos(1-r.Flatness/devRadius)
		if step <= 0 || math.IsNaN(step) {
			step = math.Pi / 4
		}
		n = max(int(math.Ceil(math.Abs(sweep)/step)), 1)
	}

	i0 := 1
	if withStart {
		i0 = 0
	}
	for i := i0; i <= n; i++ {
		sin, cos := math.Sincos(sweep * float64(i) / float64(n))
		v := vec.Vec2{
			X: dir.X*cos - dir.Y*sin,
			Y: dir.X*sin + dir.Y*cos,
		}
		r.outline = append(r.outline, center.Add(v.Mul(radius)))
	}
}
