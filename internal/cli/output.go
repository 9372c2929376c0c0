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

package cli

import (
	"encoding/json"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/hachure/internal/raster"
	"seehuhn.de/go/hachure/sketch"
)

// Output formats supported by the draw command.
const (
	formatPDF  = "pdf"
	formatPNG  = "png"
	formatJSON = "json"
)

// outputFormat determines the output format from an explicit format
// name or, if that is empty, from the extension of fname.
func outputFormat(format, fname string) (string, error) {
	if format == "" {
		format = strings.TrimPrefix(filepath.Ext(fname), ".")
	}
	format = strings.ToLower(format)
	switch format {
	case formatPDF, formatPNG, formatJSON:
		return format, nil
	}
	return "", fmt.Errorf("output format %q: %w", format, ErrUnknownFormat)
}

// writeOutput writes the sketched shapes to fname in the given format.
// For PNG output, scale is the number of pixels per scene unit.
func writeOutput(fname, format string, sc *Scene, shapes []*sketch.Shape, scale float64) error {
	if format == formatPDF {
		return writePDF(fname, sc, shapes)
	}

	f, err := os.Create(fname)
	if err != nil {
		return err
	}

	switch format {
	case formatPNG:
		err = writePNG(f, sc, shapes, scale)
	case formatJSON:
		err = writeJSON(f, shapes)
	default:
		err = fmt.Errorf("output format %q: %w", format, ErrUnknownFormat)
	}
	if err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// writePDF writes a single-page PDF file with all shapes stroked in black.
func writePDF(fname string, sc *Scene, shapes []*sketch.Shape) error {
	lineCap, err := sc.cap()
	if err != nil {
		return err
	}
	lineJoin, err := sc.join()
	if err != nil {
		return err
	}

	paper := &pdf.Rectangle{URx: *sc.Width, URy: *sc.Height}
	page, err := document.CreateSinglePage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// scene coordinates have the origin at the top left
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, *sc.Height})

	page.SetStrokeColor(color.DeviceGray(0))
	page.SetLineWidth(*sc.StrokeWidth)
	page.SetLineCap(lineCap)
	page.SetLineJoin(lineJoin)
	page.SetMiterLimit(*sc.MiterLimit)

	for _, sh := range shapes {
		for _, p := range []*path.Data{sh.Outline, sh.Hachure} {
			if len(p.Cmds) == 0 {
				continue
			}
			for cmd, pts := range p.Iter().ToCubic() {
				switch cmd {
				case path.CmdMoveTo:
					page.MoveTo(pts[0].X, pts[0].Y)
				case path.CmdLineTo:
					page.LineTo(pts[0].X, pts[0].Y)
				case path.CmdCubeTo:
					page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
				case path.CmdClose:
					page.ClosePath()
				}
			}
			page.Stroke()
		}
	}

	return page.Close()
}

// writePNG renders the shapes in black on white, with the same stroke
// style as the PDF output.
func writePNG(w io.Writer, sc *Scene, shapes []*sketch.Shape, scale float64) error {
	if !(scale > 0) {
		return fmt.Errorf("invalid scale %g", scale)
	}
	lineCap, err := sc.cap()
	if err != nil {
		return err
	}
	lineJoin, err := sc.join()
	if err != nil {
		return err
	}

	width := int(math.Ceil(*sc.Width * scale))
	height := int(math.Ceil(*sc.Height * scale))
	img := image.NewGray(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	r := raster.NewRasterizer(rect.Rect{URx: float64(width), URy: float64(height)})
	r.CTM = matrix.Matrix{scale, 0, 0, scale, 0, 0}
	r.Width = *sc.StrokeWidth
	r.Cap = lineCap
	r.Join = lineJoin
	r.MiterLimit = *sc.MiterLimit

	ink := raster.InkGray(img)
	for _, sh := range shapes {
		r.Stroke(sh.Outline, ink)
		r.Stroke(sh.Hachure, ink)
	}

	return png.Encode(w, img)
}

// jsonShape is the JSON representation of a [sketch.Shape].
type jsonShape struct {
	ID      string        `json:"id"`
	Outline []jsonSegment `json:"outline"`
	Hachure []jsonSegment `json:"hachure,omitempty"`
}

type jsonSegment struct {
	Cmd string      `json:"cmd"`
	Pts [][]float64 `json:"pts"`
}

func writeJSON(w io.Writer, shapes []*sketch.Shape) error {
	out := make([]jsonShape, len(shapes))
	for i, sh := range shapes {
		out[i] = jsonShape{
			ID:      sh.ID.String(),
			Outline: pathToJSON(sh.Outline),
			Hachure: pathToJSON(sh.Hachure),
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func pathToJSON(p *path.Data) []jsonSegment {
	var segs []jsonSegment
	for cmd, pts := range p.Iter() {
		seg := jsonSegment{Pts: make([][]float64, len(pts))}
		switch cmd {
		case path.CmdMoveTo:
			seg.Cmd = "M"
		case path.CmdLineTo:
			seg.Cmd = "L"
		case path.CmdQuadTo:
			seg.Cmd = "Q"
		case path.CmdCubeTo:
			seg.Cmd = "C"
		case path.CmdClose:
			seg.Cmd = "Z"
		}
		for i, pt := range pts {
			seg.Pts[i] = []float64{pt.X, pt.Y}
		}
		segs = append(segs, seg)
	}
	return segs
}
