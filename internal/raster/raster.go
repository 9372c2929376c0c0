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

// Package raster strokes sketch paths into anti-aliased pixel coverage.
//
// A [Rasterizer] turns each stroked path into outline polygons, following
// the PDF rules for line width, caps, joins and the miter limit, and fills
// the outlines with the nonzero winding rule.  Coverage values range from
// 0 (pixel untouched) to 1 (pixel fully inked) and are passed to a
// callback one row at a time.
package raster

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// EmitFunc receives the coverage of pixels xMin, xMin+1, ... in row y.
// The slice is only valid during the call.
type EmitFunc func(y, xMin int, coverage []float32)

// edge is a non-horizontal polygon edge in device coordinates.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64 // inverse slope, (x1-x0)/(y1-y0)
}

// Rasterizer converts stroked paths to pixel coverage.  Buffers are kept
// between calls, so a single Rasterizer should be reused for all paths of
// an image.
//
// A Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	// CTM maps user space to device (pixel) space.  Must be non-singular.
	CTM matrix.Matrix

	// Clip is the device-space rectangle receiving output.  The
	// coordinates must be integers.
	Clip rect.Rect

	// Flatness is the maximal distance, in device pixels, between a curve
	// and its polygonal approximation.  Must be positive.
	Flatness float64

	// Width is the line width in user space units.
	Width float64

	// Cap is the shape at the open ends of a stroke.
	Cap graphics.LineCapStyle

	// Join is the shape at the corners of a stroke.
	Join graphics.LineJoinStyle

	// MiterLimit bounds the length of miter joins relative to the line
	// width.  Longer miters are drawn as bevels.  Must be at least 1.
	MiterLimit float64

	// denseLimit is the largest bounding box area, in pixels, which is
	// scanned using full 2D buffers.  Larger outlines use an active edge
	// list instead.
	denseLimit int

	cover       []float32 // signed vertical crossing per pixel, reused for output
	area        []float32 // area to the right of the crossing within the pixel
	edges       []edge
	active      []int // indices into edges crossing the current row
	rowTouched  []bool
	bboxEmpty   bool
	bboxX0      float64
	bboxX1      float64
	bboxY0      float64
	bboxY1      float64
	outline     []vec.Vec2 // vertices of all outline polygons
	outlineOffs []int      // start of each polygon in outline

	segs   []strokeSegment // flattened segments of all subpaths
	starts []int           // start of each subpath in segs
	closed []bool          // whether each subpath is closed
	dots   []vec.Vec2      // subpaths of zero length
	rev    []strokeSegment // scratch space for reversed subpaths
}

// NewRasterizer returns a Rasterizer for the given clip rectangle, with
// the PDF default graphics state.
func NewRasterizer(clip rect.Rect) *Rasterizer {
	return &Rasterizer{
		CTM:        matrix.Identity,
		Clip:       clip,
		Flatness:   defaultFlatness,
		Width:      1,
		Cap:        graphics.LineCapButt,
		Join:       graphics.LineJoinMiter,
		MiterLimit: defaultMiterLimit,

		denseLimit: denseAreaLimit,
	}
}

// linear applies the linear part of the CTM to v.
func (r *Rasterizer) linear(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: r.CTM[0]*v.X + r.CTM[2]*v.Y,
		Y: r.CTM[1]*v.X + r.CTM[3]*v.Y,
	}
}

// flattenQuadratic approximates the quadratic Bézier curve p0, p1, p2
// by line segments.
func (r *Rasterizer) flattenQuadratic(p0, p1, p2 vec.Vec2, emit func(a, b vec.Vec2)) {
	// the distance between curve and chord is at most |p0 - 2p1 + p2|/4
	dev := r.linear(p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25)).Length()
	n := 1
	if dev > r.Flatness {
		n = int(math.Ceil(math.Sqrt(dev / r.Flatness)))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s).Add(p1.Mul(2 * s * t)).Add(p2.Mul(t * t))
		emit(prev, pt)
		prev = pt
	}
}

// flattenCubic approximates the cubic Bézier curve p0, ..., p3 by line
// segments.  The number of segments follows Wang's formula.
func (r *Rasterizer) flattenCubic(p0, p1, p2, p3 vec.Vec2, emit func(a, b vec.Vec2)) {
	d1 := r.linear(p0.Sub(p1.Mul(2)).Add(p2)).Length()
	d2 := r.linear(p1.Sub(p2.Mul(2)).Add(p3)).Length()
	n := 1
	if m := max(d1, d2); m > 0 {
		if k := math.Sqrt(3 * m / (4 * r.Flatness)); k > 1 {
			n = int(math.Ceil(k))
		}
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t))
		emit(prev, pt)
		prev = pt
	}
}

// addEdge transforms the user space segment a-b to device space and adds
// it to the edge list.
func (r *Rasterizer) addEdge(a, b vec.Vec2) {
	x0 := r.CTM[0]*a.X + r.CTM[2]*a.Y + r.CTM[4]
	y0 := r.CTM[1]*a.X + r.CTM[3]*a.Y + r.CTM[5]
	x1 := r.CTM[0]*b.X + r.CTM[2]*b.Y + r.CTM[4]
	y1 := r.CTM[1]*b.X + r.CTM[3]*b.Y + r.CTM[5]

	dy := y1 - y0
	if math.Abs(dy) < horizontalEdgeThreshold {
		return
	}
	r.edges = append(r.edges, edge{x0: x0, y0: y0, x1: x1, y1: y1, dxdy: (x1 - x0) / dy})

	if r.bboxEmpty {
		r.bboxX0, r.bboxX1 = min(x0, x1), max(x0, x1)
		r.bboxY0, r.bboxY1 = min(y0, y1), max(y0, y1)
		r.bboxEmpty = false
		return
	}
	r.bboxX0 = min(r.bboxX0, x0, x1)
	r.bboxX1 = max(r.bboxX1, x0, x1)
	r.bboxY0 = min(r.bboxY0, y0, y1)
	r.bboxY1 = max(r.bboxY1, y0, y1)
}

// fillOutlines fills all outline polygons together, using the nonzero
// winding rule, so that overlapping parts of a stroke are inked once.
func (r *Rasterizer) fillOutlines(emit EmitFunc) {
	r.edges = r.edges[:0]
	r.bboxEmpty = true
	for i, start := range r.outlineOffs {
		end := len(r.outline)
		if i+1 < len(r.outlineOffs) {
			end = r.outlineOffs[i+1]
		}
		poly := r.outline[start:end]
		if len(poly) < 2 {
			continue
		}
		for j := 1; j < len(poly); j++ {
			r.addEdge(poly[j-1], poly[j])
		}
		r.addEdge(poly[len(poly)-1], poly[0])
	}
	if len(r.edges) == 0 {
		return
	}

	xMin := max(int(math.Floor(r.bboxX0)), int(r.Clip.LLx))
	xMax := min(int(math.Floor(r.bboxX1))+1, int(r.Clip.URx))
	yMin := max(int(math.Floor(r.bboxY0)), int(r.Clip.LLy))
	yMax := min(int(math.Floor(r.bboxY1))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return
	}

	if (xMax-xMin)*(yMax-yMin) < r.denseLimit {
		r.scanDense(xMin, xMax, yMin, yMax, emit)
	} else {
		r.scanSparse(xMin, xMax, yMin, yMax, emit)
	}
}

// The coverage of a row is accumulated in two buffers.  An edge crossing
// pixel column x over a vertical distance dy adds ±dy to cover[x] and
// ±dy*(1-f) to area[x], where f is the horizontal position of the
// crossing within the pixel and the sign is the edge direction.  Summing
// cover from the left and adding the pixel's own area gives the signed
// area of the polygon within each pixel.

// accumulate adds the contribution of e within row y.  The buffers hold
// pixels xMin to xMax-1; crossings left of xMin are folded into the first
// pixel.
func (r *Rasterizer) accumulate(e *edge, y int, cover, area []float32, xMin, xMax int) {
	top := max(float64(y), min(e.y0, e.y1))
	bot := min(float64(y+1), max(e.y0, e.y1))
	if bot <= top {
		return
	}
	sign := float32(1)
	if e.y1 < e.y0 {
		sign = -1
	}

	xTop := e.x0 + e.dxdy*(top-e.y0)
	xBot := e.x0 + e.dxdy*(bot-e.y0)
	pixLeft := int(math.Floor(min(xTop, xBot)))
	pixRight := int(math.Floor(max(xTop, xBot)))

	switch {
	case pixRight < xMin:
		c := sign * float32(bot-top)
		cover[0] += c
		area[0] += c
		return
	case pixLeft >= xMax:
		return
	case pixLeft == pixRight:
		r.accumulateColumn(e, top, bot, sign, pixLeft, cover, area, xMin, xMax)
		return
	}

	dydx := 1 / e.dxdy
	for pix := pixLeft; pix <= pixRight; pix++ {
		ya := e.y0 + dydx*(float64(pix)-e.x0)
		yb := e.y0 + dydx*(float64(pix+1)-e.x0)
		lo := max(min(ya, yb), top)
		hi := min(max(ya, yb), bot)
		if hi <= lo {
			continue
		}
		r.accumulateColumn(e, lo, hi, sign, pix, cover, area, xMin, xMax)
	}
}

// accumulateColumn adds the part of e between top and bot, which lies
// within pixel column pix.
func (r *Rasterizer) accumulateColumn(e *edge, top, bot float64, sign float32, pix int, cover, area []float32, xMin, xMax int) {
	c := sign * float32(bot-top)
	if pix < xMin {
		cover[0] += c
		area[0] += c
		return
	}
	if pix >= xMax {
		return
	}

	xMid := e.x0 + e.dxdy*((top+bot)/2-e.y0)
	f := xMid - float64(pix)
	i := pix - xMin
	cover[i] += c
	area[i] += c * float32(1-f)
}

// integrate turns the accumulated buffers of one row into coverage
// values in [0, 1], stored in cover.
func integrate(cover, area []float32) {
	var acc float32
	for i := range cover {
		v := acc + area[i]
		acc += cover[i]
		if v < 0 {
			v = -v
		}
		cover[i] = min(v, 1)
	}
}

// trimZeros returns the part of coverage between the first and the last
// non-zero value, and the offset of that part.
func trimZeros(coverage []float32) ([]float32, int) {
	lo, hi := 0, len(coverage)
	for lo < hi && coverage[lo] == 0 {
		lo++
	}
	for hi > lo && coverage[hi-1] == 0 {
		hi--
	}
	if lo == hi {
		return nil, 0
	}
	return coverage[lo:hi], lo
}

// scanDense accumulates all edges into buffers covering the whole
// bounding box, then integrates row by row.
func (r *Rasterizer) scanDense(xMin, xMax, yMin, yMax int, emit EmitFunc) {
	w := xMax - xMin
	h := yMax - yMin
	r.cover = slices.Grow(r.cover[:0], w*h)[:w*h]
	r.area = slices.Grow(r.area[:0], w*h)[:w*h]
	r.rowTouched = slices.Grow(r.rowTouched[:0], h)[:h]
	clear(r.cover)
	clear(r.area)
	clear(r.rowTouched)

	for i := range r.edges {
		e := &r.edges[i]
		y0 := max(int(math.Floor(min(e.y0, e.y1))), yMin)
		y1 := min(int(math.Floor(max(e.y0, e.y1)))+1, yMax)
		for y := y0; y < y1; y++ {
			row := y - yMin
			off := row * w
			r.accumulate(e, y, r.cover[off:off+w], r.area[off:off+w], xMin, xMax)
			r.rowTouched[row] = true
		}
	}

	for row := range h {
		if !r.rowTouched[row] {
			continue
		}
		off := row * w
		coverage := r.cover[off : off+w]
		integrate(coverage, r.area[off:off+w])
		if c, dx := trimZeros(coverage); c != nil {
			emit(yMin+row, xMin+dx, c)
		}
	}
}

// scanSparse walks the rows from top to bottom, keeping a list of the
// edges crossing the current row.  Only one row of buffers is needed.
func (r *Rasterizer) scanSparse(xMin, xMax, yMin, yMax int, emit EmitFunc) {
	w := xMax - xMin
	r.cover = slices.Grow(r.cover[:0], w)[:w]
	r.area = slices.Grow(r.area[:0], w)[:w]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(min(a.y0, a.y1), min(b.y0, b.y1))
	})

	r.active = r.active[:0]
	next := 0
	for y := yMin; y < yMax; y++ {
		top := float64(y)
		for next < len(r.edges) && min(r.edges[next].y0, r.edges[next].y1) < top+1 {
			r.active = append(r.active, next)
			next++
		}
		if len(r.active) == 0 {
			continue
		}

		clear(r.cover)
		clear(r.area)
		touched := false
		for i := 0; i < len(r.active); {
			e := &r.edges[r.active[i]]
			if max(e.y0, e.y1) <= top {
				last := len(r.active) - 1
				r.active[i] = r.active[last]
				r.active = r.active[:last]
				continue
			}
			r.accumulate(e, y, r.cover, r.area, xMin, xMax)
			touched = true
			i++
		}
		if !touched {
			continue
		}

		integrate(r.cover, r.area)
		if c, dx := trimZeros(r.cover); c != nil {
			emit(y, xMin+dx, c)
		}
	}
}

// Default graphics state values.
const (
	// defaultFlatness is the curve tolerance in device pixels.
	defaultFlatness = 0.25

	// defaultMiterLimit is the PDF default.  Corners sharper than about
	// 11.5 degrees are beveled.
	defaultMiterLimit = 10.0
)

// Numerical tolerances.
const (
	// horizontalEdgeThreshold is the smallest vertical extent of an edge
	// which contributes to coverage.
	horizontalEdgeThreshold = 1e-10

	// denseAreaLimit is the default for Rasterizer.denseLimit.
	denseAreaLimit = 65536

	// zeroLengthThreshold is the shortest stroke segment kept after
	// flattening.
	zeroLengthThreshold = 1e-10

	// collinearityThreshold is the smallest |sin| of the turning angle at
	// which a corner gets a join.
	collinearityThreshold = 1e-6

	// cuspCosineThreshold detects corners where the path reverses, about
	// 179.2 degrees.  These get two caps instead of a join.
	cuspCosineThreshold = -0.9999
)
