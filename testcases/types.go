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

package testcases

import "seehuhn.de/go/geom/rect"

// TestCase defines a single hatch fill.
type TestCase struct {
	Name     string    // lowercase a-z, 0-9 and _ only
	Box      rect.Rect // LLx/URx are the left/right edges, LLy/URy the top/bottom edges
	Gap      float64   // distance between hatch lines (>0)
	AngleDeg float64   // hatch angle in degrees
	Circle   bool      // fill the circle inscribed in the box instead of the box
}

// box is a helper to create the box with the given edges.
func box(left, top, right, bottom float64) rect.Rect {
	return rect.Rect{LLx: left, LLy: top, URx: right, URy: bottom}
}
