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

// Command genpdf generates reference images for the hatching test cases.
// It draws each test case into a PDF file and renders it to PNG using
// Ghostscript.
package main

import (
	"fmt"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/hachure"
	"seehuhn.de/go/hachure/testcases"
)

const (
	refDir = "testdata/reference"
	margin = 10.0
)

func main() {
	if err := os.MkdirAll(refDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(refDir, name+".pdf")
			pngPath := filepath.Join(refDir, name+".png")

			if err := generatePDF(tc, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}

			if err := renderPNG(pdfPath, pngPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generatePDF(tc testcases.TestCase, pdfPath string) error {
	b := tc.Box
	width := max(b.URx-b.LLx, 0) + 2*margin
	height := max(b.URy-b.LLy, 0) + 2*margin

	paper := &pdf.Rectangle{URx: width, URy: height}
	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// PDF origin is bottom-left; the box uses a y-down convention with
	// its top-left corner at (LLx, LLy).
	page.Transform(matrix.Matrix{1, 0, 0, -1, margin - b.LLx, height - margin + b.LLy})

	// box outline in grey
	page.SetStrokeColor(color.DeviceGray(0.6))
	page.SetLineWidth(0.5)
	page.Rectangle(b.LLx, b.LLy, b.URx-b.LLx, b.URy-b.LLy)
	page.Stroke()

	// hatch lines in black
	page.SetStrokeColor(color.DeviceGray(0))
	page.SetLineWidth(1)
	page.SetLineCap(graphics.LineCapRound)

	it := hachure.NewForRect(b, tc.Gap, tc.AngleDeg)
	lines := it.Lines()
	if tc.Circle {
		lines = it.CircleLines()
	}
	n := 0
	for l := range lines {
		page.MoveTo(l.A.X, l.A.Y)
		page.LineTo(l.B.X, l.B.Y)
		n++
	}
	if n > 0 {
		page.Stroke()
	}

	return page.Close()
}

func renderPNG(pdfPath, pngPath string) error {
	// -sDEVICE=pnggray: 8-bit grayscale
	// -r72: 72 DPI (1 point = 1 pixel)
	// -dGraphicsAlphaBits=4: 4x supersampling for anti-aliasing
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=pnggray",
		"-r72",
		"-dGraphicsAlphaBits=4",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
