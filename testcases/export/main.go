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

// Command export writes the test cases, together with the hatch lines
// computed for them, to JSON.  The output serves as reference data for
// other implementations of the hatching algorithm.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/hachure"
	"seehuhn.de/go/hachure/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			out.TestCases = append(out.TestCases, toJSON(category, tc))
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name   string       `json:"name"`
	Top    float64      `json:"top"`
	Bottom float64      `json:"bottom"`
	Left   float64      `json:"left"`
	Right  float64      `json:"right"`
	Gap    float64      `json:"gap"`
	Angle  float64      `json:"angle"`
	Circle bool         `json:"circle,omitempty"`
	Lines  [][4]float64 `json:"lines"`
}

func toJSON(category string, tc testcases.TestCase) jsonTestCase {
	jtc := jsonTestCase{
		Name:   category + "_" + tc.Name,
		Top:    tc.Box.LLy,
		Bottom: tc.Box.URy,
		Left:   tc.Box.LLx,
		Right:  tc.Box.URx,
		Gap:    tc.Gap,
		Angle:  tc.AngleDeg,
		Circle: tc.Circle,
		Lines:  [][4]float64{},
	}

	it := hachure.NewForRect(tc.Box, tc.Gap, tc.AngleDeg)
	lines := it.Lines()
	if tc.Circle {
		lines = it.CircleLines()
	}
	for l := range lines {
		jtc.Lines = append(jtc.Lines, [4]float64{l.A.X, l.A.Y, l.B.X, l.B.Y})
	}
	return jtc
}
