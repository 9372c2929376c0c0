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

// Package hachure computes hatch lines ("hachure") for filling rectangles
// and circles with a hand-drawn look.
//
// An [Iterator] sweeps a box and yields one hatch line per call, clipped
// to the box or to the circle inscribed in it.  The clipping uses the
// line/line and line/circle intersection tests of [Segment].
//
// All coordinates use a y-down convention: the top edge of a box has the
// smaller y coordinate.
package hachure

//go:generate go run ./testcases/export

// Numerical thresholds.  These are fixed; they are part of the behaviour
// of the iterator and not tuning parameters.
const (
	// verticalHatchThreshold classifies a hatch angle as vertical when
	// |sin(angle)| is below this value.
	verticalHatchThreshold = 1e-4

	// horizontalHatchThreshold classifies a hatch angle as horizontal
	// when |sin(angle)| is above this value.
	horizontalHatchThreshold = 0.9999

	// verticalThreshold classifies a line as vertical in the intersection
	// test when the b coefficient of a*x + b*y + c = 0 is at most this
	// value in magnitude.
	verticalThreshold = 1e-5

	// equalityTolerance is the relative tolerance used to decide whether
	// two slopes, intercepts or x positions are the same.
	equalityTolerance = 1e-9
)
