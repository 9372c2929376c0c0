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
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

type drawOptions struct {
	output string
	format string
	seed   uint64
	scale  float64
}

func newDrawCmd() *cobra.Command {
	var opts drawOptions

	cmd := &cobra.Command{
		Use:   "draw SCENE",
		Short: "Sketch the shapes of a scene file",
		Long: `Sketch the shapes described in a TOML or YAML scene file and write
the result as PDF, PNG or JSON.

Without --output, the result is written next to the scene file, with
the extension replaced by the output format.

The scene's seed is used unless --seed is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDraw(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: pdf, png or json (default from output name, else pdf)")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "random seed (default from the scene file)")
	cmd.Flags().Float64Var(&opts.scale, "scale", 1, "pixels per scene unit for PNG output")

	return cmd
}

func runDraw(cmd *cobra.Command, input string, opts drawOptions) error {
	logger := loggerFromContext(cmd.Context())
	prog := newProgress(logger)

	sc, err := LoadScene(input)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("seed") {
		sc.Seed = opts.seed
	}
	logger.Debug("loaded scene", "file", input, "shapes", len(sc.Shapes), "seed", sc.Seed)

	output := opts.output
	format := opts.format
	if output == "" {
		if format == "" {
			format = formatPDF
		}
		output = strings.TrimSuffix(input, filepath.Ext(input)) + "." + strings.ToLower(format)
	}
	format, err = outputFormat(format, output)
	if err != nil {
		return err
	}

	shapes, err := sc.Sketch()
	if err != nil {
		return err
	}
	if err := cmd.Context().Err(); err != nil {
		return err
	}

	if err := writeOutput(output, format, sc, shapes, opts.scale); err != nil {
		return err
	}
	prog.done("wrote "+output, "format", format, "shapes", len(shapes))
	return nil
}
