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
	"image"
	"math"
	"testing"

	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

const epsilon = 1e-5

// strokeGrid strokes p and returns the coverage of every pixel in the
// clip rectangle, indexed as grid[y][x].
func strokeGrid(r *Rasterizer, p *path.Data) [][]float32 {
	w, h := int(r.Clip.URx), int(r.Clip.URy)
	grid := make([][]float32, h)
	for y := range grid {
		grid[y] = make([]float32, w)
	}
	r.Stroke(p, func(y, xMin int, coverage []float32) {
		copy(grid[y][xMin:], coverage)
	})
	return grid
}

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < epsilon
}

// TestPolygonCoverage checks exact coverage values for the triangle
// (0,0), (10,0), (10,1), whose diagonal edge is y = x/10.  Pixel x has
// coverage (2x+1)/20.
func TestPolygonCoverage(t *testing.T) {
	for _, limit := range []int{1 << 30, 0} {
		r := NewRasterizer(rect.Rect{URx: 10, URy: 1})
		r.denseLimit = limit
		r.outline = []vec.Vec2{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 1}}
		r.outlineOffs = []int{0}

		coverage := make([]float32, 10)
		r.fillOutlines(func(y, xMin int, cov []float32) {
			if y == 0 {
				copy(coverage[xMin:], cov)
			}
		})

		for x := range 10 {
			want := float32(2*x+1) / 20
			if !near(coverage[x], want) {
				t.Errorf("limit %d, pixel %d: coverage %.4f, want %.4f", limit, x, coverage[x], want)
			}
		}
	}
}

// TestCompareVector checks the coverage of a non-convex polygon against
// the rasterizer from golang.org/x/image/vector.
func TestCompareVector(t *testing.T) {
	poly := []vec.Vec2{
		{X: 2.5, Y: 1.25},
		{X: 27.3, Y: 4.1},
		{X: 14.2, Y: 9.6},
		{X: 29.1, Y: 18.7},
		{X: 3.7, Y: 17.2},
		{X: 9.9, Y: 8.8},
	}
	const w, h = 32, 20

	ref := vector.NewRasterizer(w, h)
	ref.MoveTo(float32(poly[0].X), float32(poly[0].Y))
	for _, p := range poly[1:] {
		ref.LineTo(float32(p.X), float32(p.Y))
	}
	ref.ClosePath()
	want := image.NewAlpha(image.Rect(0, 0, w, h))
	ref.Draw(want, want.Bounds(), image.Opaque, image.Point{})

	for _, limit := range []int{1 << 30, 0} {
		r := NewRasterizer(rect.Rect{URx: w, URy: h})
		r.denseLimit = limit
		r.outline = append(r.outline[:0], poly...)
		r.outlineOffs = []int{0}

		got := make([][]float32, h)
		for y := range got {
			got[y] = make([]float32, w)
		}
		r.fillOutlines(func(y, xMin int, cov []float32) {
			copy(got[y][xMin:], cov)
		})

		for y := range h {
			for x := range w {
				a := float32(want.AlphaAt(x, y).A) / 255
				if math.Abs(float64(got[y][x]-a)) > 2.0/255 {
					t.Errorf("limit %d, pixel (%d, %d): coverage %.4f, want %.4f",
						limit, x, y, got[y][x], a)
				}
			}
		}
	}
}

func TestLineCaps(t *testing.T) {
	p := (&path.Data{}).MoveTo(vec.Vec2{X: 5, Y: 5}).LineTo(vec.Vec2{X: 15, Y: 5})

	cases := []struct {
		cap      graphics.LineCapStyle
		min, max float32 // coverage of pixel (15, 5), just past the end point
	}{
		{graphics.LineCapButt, 0, 0},
		{graphics.LineCapSquare, 1, 1},
		{graphics.LineCapRound, 0.6, 0.8},
	}
	for _, tc := range cases {
		t.Run(tc.cap.String(), func(t *testing.T) {
			r := NewRasterizer(rect.Rect{URx: 20, URy: 10})
			r.Width = 2
			r.Cap = tc.cap
			grid := strokeGrid(r, p)

			for x := 5; x < 15; x++ {
				for _, y := range []int{4, 5} {
					if !near(grid[y][x], 1) {
						t.Errorf("pixel (%d, %d): coverage %g, want 1", x, y, grid[y][x])
					}
				}
				for _, y := range []int{3, 6} {
					if grid[y][x] != 0 {
						t.Errorf("pixel (%d, %d): coverage %g, want 0", x, y, grid[y][x])
					}
				}
			}

			got := grid[5][15]
			if got < tc.min-epsilon || got > tc.max+epsilon {
				t.Errorf("end pixel coverage %g, want in [%g, %g]", got, tc.min, tc.max)
			}
			if grid[5][16] != 0 {
				t.Errorf("pixel (16, 5): coverage %g, want 0", grid[5][16])
			}
		})
	}
}

func TestLineJoins(t *testing.T) {
	// a right angle at (10, 10); the outside of the corner is at (12, 12)
	p := (&path.Data{}).
		MoveTo(vec.Vec2{X: 2, Y: 10}).
		LineTo(vec.Vec2{X: 10, Y: 10}).
		LineTo(vec.Vec2{X: 10, Y: 2})

	cases := []struct {
		name       string
		join       graphics.LineJoinStyle
		miterLimit float64
		min, max   float32 // coverage of pixel (11, 11)
	}{
		{"miter", graphics.LineJoinMiter, 10, 1, 1},
		{"miter_limit", graphics.LineJoinMiter, 1.2, 0, 0},
		{"bevel", graphics.LineJoinBevel, 10, 0, 0},
		{"round", graphics.LineJoinRound, 10, 0.15, 0.45},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := NewRasterizer(rect.Rect{URx: 20, URy: 20})
			r.Width = 4
			r.Join = tc.join
			r.MiterLimit = tc.miterLimit
			grid := strokeGrid(r, p)

			got := grid[11][11]
			if got < tc.min-1e-4 || got > tc.max+1e-4 {
				t.Errorf("corner coverage %g, want in [%g, %g]", got, tc.min, tc.max)
			}

			// the inside of the corner is always filled
			if !near(grid[8][8], 1) {
				t.Errorf("inner corner coverage %g, want 1", grid[8][8])
			}
		})
	}
}

func TestClosedSubpath(t *testing.T) {
	p := (&path.Data{}).
		MoveTo(vec.Vec2{X: 5, Y: 5}).
		LineTo(vec.Vec2{X: 15, Y: 5}).
		LineTo(vec.Vec2{X: 15, Y: 15}).
		LineTo(vec.Vec2{X: 5, Y: 15}).
		Close()

	r := NewRasterizer(rect.Rect{URx: 20, URy: 20})
	r.Width = 2
	r.Cap = graphics.LineCapRound // must not matter for closed subpaths
	grid := strokeGrid(r, p)

	checks := []struct {
		x, y int
		want float32
	}{
		{10, 10, 0}, // inside the square
		{4, 10, 1},
		{5, 10, 1},
		{6, 10, 0},
		{3, 10, 0},
		{4, 4, 1}, // miter at the closing corner
		{15, 15, 1},
		{16, 16, 0},
	}
	for _, c := range checks {
		if !near(grid[c.y][c.x], c.want) {
			t.Errorf("pixel (%d, %d): coverage %g, want %g", c.x, c.y, grid[c.y][c.x], c.want)
		}
	}
}

func TestZeroLengthSubpath(t *testing.T) {
	p := (&path.Data{}).MoveTo(vec.Vec2{X: 5, Y: 5}).LineTo(vec.Vec2{X: 5, Y: 5})

	r := NewRasterizer(rect.Rect{URx: 10, URy: 10})
	r.Width = 4
	if grid := strokeGrid(r, p); grid[5][5] != 0 {
		t.Errorf("butt cap: coverage %g, want 0", grid[5][5])
	}

	r.Cap = graphics.LineCapRound
	if grid := strokeGrid(r, p); !near(grid[5][5], 1) {
		t.Errorf("round cap: coverage %g, want 1", grid[5][5])
	}
}

func TestCTM(t *testing.T) {
	p := (&path.Data{}).MoveTo(vec.Vec2{X: 2, Y: 2}).LineTo(vec.Vec2{X: 8, Y: 2})

	r := NewRasterizer(rect.Rect{URx: 20, URy: 10})
	r.CTM = matrix.Matrix{2, 0, 0, 2, 0, 0}
	grid := strokeGrid(r, p)

	// device space stroke covers x in [4, 16] and y in [3, 5]
	for _, c := range []struct {
		x, y int
		want float32
	}{
		{10, 3, 1},
		{10, 4, 1},
		{10, 5, 0},
		{10, 2, 0},
		{4, 3, 1},
		{16, 3, 0},
	} {
		if !near(grid[c.y][c.x], c.want) {
			t.Errorf("pixel (%d, %d): coverage %g, want %g", c.x, c.y, grid[c.y][c.x], c.want)
		}
	}
}

func TestCurve(t *testing.T) {
	// the apex of this curve is at (10, 5), with a horizontal tangent
	p := (&path.Data{}).
		MoveTo(vec.Vec2{X: 2, Y: 10}).
		QuadTo(vec.Vec2{X: 10, Y: 0}, vec.Vec2{X: 18, Y: 10})

	r := NewRasterizer(rect.Rect{URx: 20, URy: 12})
	r.Width = 2
	grid := strokeGrid(r, p)

	if grid[4][9] < 0.85 {
		t.Errorf("pixel (9, 4) below the apex: coverage %g", grid[4][9])
	}
	if grid[2][9] != 0 {
		t.Errorf("pixel (9, 2) above the curve: coverage %g", grid[2][9])
	}
}

// TestScanModes checks that both scan strategies give the same result.
func TestScanModes(t *testing.T) {
	p := (&path.Data{}).
		MoveTo(vec.Vec2{X: 3, Y: 17}).
		CubeTo(vec.Vec2{X: 5, Y: 1}, vec.Vec2{X: 15, Y: 25}, vec.Vec2{X: 17, Y: 3}).
		LineTo(vec.Vec2{X: 4, Y: 4})

	dense := NewRasterizer(rect.Rect{URx: 20, URy: 20})
	dense.Width = 1.5
	dense.Join = graphics.LineJoinRound
	dense.denseLimit = 1 << 30

	sparse := NewRasterizer(rect.Rect{URx: 20, URy: 20})
	sparse.Width = 1.5
	sparse.Join = graphics.LineJoinRound
	sparse.denseLimit = 0

	a := strokeGrid(dense, p)
	b := strokeGrid(sparse, p)
	inked := 0
	for y := range a {
		for x := range a[y] {
			if !near(a[y][x], b[y][x]) {
				t.Errorf("pixel (%d, %d): dense %g, sparse %g", x, y, a[y][x], b[y][x])
			}
			if a[y][x] > 0 {
				inked++
			}
		}
	}
	if inked == 0 {
		t.Error("nothing was drawn")
	}
}

func TestInkGray(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 4, 2))
	for i := range img.Pix {
		img.Pix[i] = 255
	}

	emit := InkGray(img)
	emit(1, 1, []float32{1, 0.5, 0})
	emit(5, 0, []float32{1})      // outside, ignored
	emit(0, 3, []float32{1, 1, 1}) // clipped on the right

	want := []uint8{
		255, 255, 255, 0,
		255, 0, 128, 255,
	}
	for i, v := range img.Pix {
		if v != want[i] {
			t.Errorf("pixel %d: got %d, want %d", i, v, want[i])
		}
	}
}

func BenchmarkStroke(b *testing.B) {
	p := &path.Data{}
	p.MoveTo(vec.Vec2{X: 10, Y: 10})
	for i := range 20 {
		x := 10 + 20*float64(i)
		p.CubeTo(vec.Vec2{X: x + 5, Y: 100}, vec.Vec2{X: x + 15, Y: 100}, vec.Vec2{X: x + 20, Y: 10})
	}

	r := NewRasterizer(rect.Rect{URx: 420, URy: 110})
	r.Width = 2
	r.Join = graphics.LineJoinRound
	r.Cap = graphics.LineCapRound
	emit := func(y, xMin int, coverage []float32) {}

	for b.Loop() {
		r.Stroke(p, emit)
	}
}
