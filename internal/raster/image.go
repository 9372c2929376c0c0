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

import "image"

// InkGray returns an EmitFunc which paints black ink onto img.  A pixel
// with coverage c keeps the fraction 1-c of its previous brightness.
// Rows and columns outside img are ignored.
func InkGray(img *image.Gray) EmitFunc {
	b := img.Bounds()
	return func(y, xMin int, coverage []float32) {
		if y < b.Min.Y || y >= b.Max.Y {
			return
		}
		for i, c := range coverage {
			x := xMin + i
			if x < b.Min.X || x >= b.Max.X || c <= 0 {
				continue
			}
			k := img.PixOffset(x, y)
			v := float32(img.Pix[k]) * (1 - min(c, 1))
			img.Pix[k] = uint8(v + 0.5)
		}
	}
}
