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

var verticalCases = []TestCase{
	{
		Name:     "square_gap2",
		Box:      box(0, 0, 10, 10),
		Gap:      2,
		AngleDeg: 0,
	},
	{
		Name:     "wide",
		Box:      box(0, 0, 100, 20),
		Gap:      7,
		AngleDeg: 0,
	},
	{
		Name:     "angle_180",
		Box:      box(5, -3, 25, 17),
		Gap:      3,
		AngleDeg: 180,
	},
}

var horizontalCases = []TestCase{
	{
		Name:     "square_gap2",
		Box:      box(0, 0, 10, 10),
		Gap:      2,
		AngleDeg: 90,
	},
	{
		Name:     "tall",
		Box:      box(0, 0, 20, 100),
		Gap:      6,
		AngleDeg: 90,
	},
	{
		Name:     "angle_270",
		Box:      box(-10, -10, 10, 10),
		Gap:      4,
		AngleDeg: 270,
	},
}

var obliqueCases = []TestCase{
	{
		Name:     "square_45",
		Box:      box(0, 0, 10, 10),
		Gap:      2,
		AngleDeg: 45,
	},
	{
		Name:     "rect_45",
		Box:      box(0, 0, 200, 100),
		Gap:      8.5,
		AngleDeg: 45,
	},
	{
		Name:     "rect_30",
		Box:      box(0, 0, 120, 80),
		Gap:      5,
		AngleDeg: 30,
	},
	{
		Name:     "rect_135",
		Box:      box(0, 0, 120, 80),
		Gap:      5,
		AngleDeg: 135,
	},
	{
		Name:     "rect_minus_60",
		Box:      box(0, 0, 80, 120),
		Gap:      6,
		AngleDeg: -60,
	},
	{
		Name:     "offset_box",
		Box:      box(50, 20, 130, 60),
		Gap:      4,
		AngleDeg: 45,
	},
}

var circleCases = []TestCase{
	{
		Name:     "circle_45",
		Box:      box(0, 0, 100, 100),
		Gap:      8.5,
		AngleDeg: 45,
		Circle:   true,
	},
	{
		Name:     "circle_vertical",
		Box:      box(0, 0, 60, 60),
		Gap:      5,
		AngleDeg: 0,
		Circle:   true,
	},
	{
		Name:     "circle_horizontal",
		Box:      box(0, 0, 60, 60),
		Gap:      5,
		AngleDeg: 90,
		Circle:   true,
	},
	{
		Name:     "circle_30",
		Box:      box(0, 0, 80, 80),
		Gap:      6,
		AngleDeg: 30,
		Circle:   true,
	},
	{
		Name:     "circle_offset",
		Box:      box(40, 10, 80, 50),
		Gap:      3,
		AngleDeg: 60,
		Circle:   true,
	},
}

var degenerateCases = []TestCase{
	{
		Name:     "zero_width_oblique",
		Box:      box(10, 0, 10, 10),
		Gap:      2,
		AngleDeg: 45,
	},
	{
		Name:     "zero_height_oblique",
		Box:      box(0, 10, 10, 10),
		Gap:      2,
		AngleDeg: 45,
	},
	{
		Name:     "zero_width_vertical",
		Box:      box(10, 0, 10, 10),
		Gap:      2,
		AngleDeg: 0,
	},
	{
		Name:     "zero_height_horizontal",
		Box:      box(0, 10, 10, 10),
		Gap:      2,
		AngleDeg: 90,
	},
	{
		Name:     "zero_size_circle",
		Box:      box(5, 5, 5, 5),
		Gap:      1,
		AngleDeg: 45,
		Circle:   true,
	},
}

// steepCases have hatch lines which are almost, but not quite,
// axis-aligned.  The horizontal extent of a hatch line is then much larger
// (or much smaller) than the box.
var steepCases = []TestCase{
	{
		Name:     "near_horizontal",
		Box:      box(0, 0, 10, 10),
		Gap:      1,
		AngleDeg: 89,
	},
	{
		Name:     "near_vertical",
		Box:      box(0, 0, 10, 10),
		Gap:      1,
		AngleDeg: 0.01,
	},
	{
		Name:     "narrow_box",
		Box:      box(0, 0, 1, 100),
		Gap:      0.5,
		AngleDeg: 80,
	},
	{
		Name:     "near_horizontal_circle",
		Box:      box(0, 0, 40, 40),
		Gap:      2,
		AngleDeg: 88,
		Circle:   true,
	},
}
