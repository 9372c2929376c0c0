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
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/hachure"
)

type hatchOptions struct {
	top, bottom float64
	left, right float64
	gap         float64
	angle       float64
	circle      bool
	format      string
}

// hatchLine is the serialized form of a [hachure.Line].
type hatchLine struct {
	X1 float64 `json:"x1" yaml:"x1"`
	Y1 float64 `json:"y1" yaml:"y1"`
	X2 float64 `json:"x2" yaml:"x2"`
	Y2 float64 `json:"y2" yaml:"y2"`
}

func newHatchCmd() *cobra.Command {
	opts := hatchOptions{
		bottom: 100,
		right:  100,
		gap:    8.5,
		angle:  45,
		format: "json",
	}

	cmd := &cobra.Command{
		Use:   "hatch",
		Short: "Print the hatch lines filling a box",
		Long: `Print the hatch lines filling an axis-aligned box, or the circle
inscribed in the box if --circle is given.  The y axis points down.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHatch(cmd, opts)
		},
	}

	cmd.Flags().Float64Var(&opts.top, "top", opts.top, "top edge of the box")
	cmd.Flags().Float64Var(&opts.bottom, "bottom", opts.bottom, "bottom edge of the box")
	cmd.Flags().Float64Var(&opts.left, "left", opts.left, "left edge of the box")
	cmd.Flags().Float64Var(&opts.right, "right", opts.right, "right edge of the box")
	cmd.Flags().Float64Var(&opts.gap, "gap", opts.gap, "distance between hatch lines")
	cmd.Flags().Float64Var(&opts.angle, "angle", opts.angle, "hatch angle in degrees")
	cmd.Flags().BoolVar(&opts.circle, "circle", false, "hatch the inscribed circle")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: json or yaml")

	return cmd
}

func runHatch(cmd *cobra.Command, opts hatchOptions) error {
	logger := loggerFromContext(cmd.Context())

	if opts.gap <= 0 {
		return fmt.Errorf("invalid gap %g", opts.gap)
	}

	box := rect.Rect{LLx: opts.left, LLy: opts.top, URx: opts.right, URy: opts.bottom}
	it := hachure.NewForRect(box, opts.gap, opts.angle)

	seq := it.Lines()
	if opts.circle {
		seq = it.CircleLines()
	}
	lines := []hatchLine{}
	for l := range seq {
		lines = append(lines, hatchLine{X1: l.A.X, Y1: l.A.Y, X2: l.B.X, Y2: l.B.Y})
	}
	logger.Debug("hatched", "box", box, "circle", opts.circle, "lines", len(lines))

	return encodeLines(cmd.OutOrStdout(), opts.format, lines)
}

func encodeLines(w io.Writer, format string, lines []hatchLine) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(lines)
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(lines); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("hatch format %q: %w", format, ErrUnknownFormat)
}
