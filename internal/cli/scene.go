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
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/hachure/sketch"
)

// Errors returned when loading or drawing a scene.
var (
	ErrUnknownShape  = errors.New("unknown shape kind")
	ErrUnknownFormat = errors.New("unknown format")
)

// Defaults for scene fields which the sketch package does not cover.
const (
	defaultSceneWidth  = 400.0 // PDF points
	defaultSceneHeight = 300.0
	defaultStrokeWidth = 1.0
	defaultMiterLimit  = 10.0
)

// Scene describes a page of hand-drawn shapes.
//
// Scenes are read from TOML or YAML files.  Fields left unset take the
// default values of the sketch package.  After [ParseScene], all pointer
// fields are set.
type Scene struct {
	Seed   uint64   `toml:"seed" yaml:"seed"`
	Width  *float64 `toml:"width" yaml:"width"`
	Height *float64 `toml:"height" yaml:"height"`

	Roughness    *float64 `toml:"roughness" yaml:"roughness"`
	Bowing       *float64 `toml:"bowing" yaml:"bowing"`
	HachureGap   *float64 `toml:"hachure_gap" yaml:"hachure_gap"`
	HachureAngle *float64 `toml:"hachure_angle" yaml:"hachure_angle"`

	StrokeWidth *float64 `toml:"stroke_width" yaml:"stroke_width"`
	LineCap     string   `toml:"line_cap" yaml:"line_cap"`
	LineJoin    string   `toml:"line_join" yaml:"line_join"`
	MiterLimit  *float64 `toml:"miter_limit" yaml:"miter_limit"`

	Shapes []ShapeConfig `toml:"shape" yaml:"shapes"`
}

// ShapeConfig describes a single shape of a scene.  Which of the
// coordinate fields are used depends on Kind:
//
//	line      X1, Y1, X2, Y2
//	rect      X, Y, W, H
//	triangle  X1, Y1, X2, Y2, X3, Y3
//	ellipse   X, Y (centre), W, H
//	circle    X, Y (centre), R
//	sector    X, Y (centre), R, Start, End (degrees)
type ShapeConfig struct {
	Kind string `toml:"kind" yaml:"kind"`

	X float64 `toml:"x" yaml:"x"`
	Y float64 `toml:"y" yaml:"y"`
	W float64 `toml:"w" yaml:"w"`
	H float64 `toml:"h" yaml:"h"`
	R float64 `toml:"r" yaml:"r"`

	X1 float64 `toml:"x1" yaml:"x1"`
	Y1 float64 `toml:"y1" yaml:"y1"`
	X2 float64 `toml:"x2" yaml:"x2"`
	Y2 float64 `toml:"y2" yaml:"y2"`
	X3 float64 `toml:"x3" yaml:"x3"`
	Y3 float64 `toml:"y3" yaml:"y3"`

	Start float64 `toml:"start" yaml:"start"`
	End   float64 `toml:"end" yaml:"end"`

	// Roughness overrides the scene roughness for this shape.
	Roughness *float64 `toml:"roughness" yaml:"roughness"`
}

// LoadScene reads a scene file.  The format is chosen by the file
// extension: ".toml" for TOML, ".yaml" or ".yml" for YAML.
func LoadScene(fname string) (*Scene, error) {
	data, err := os.ReadFile(fname)
	if err != nil {
		return nil, err
	}
	return ParseScene(data, filepath.Ext(fname))
}

// ParseScene decodes a scene in the format given by ext, fills in
// defaults and validates the result.
func ParseScene(data []byte, ext string) (*Scene, error) {
	sc := &Scene{}
	switch strings.ToLower(ext) {
	case ".toml":
		if _, err := toml.Decode(string(data), sc); err != nil {
			return nil, fmt.Errorf("failed to parse scene: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, sc); err != nil {
			return nil, fmt.Errorf("failed to parse scene: %w", err)
		}
	default:
		return nil, fmt.Errorf("scene file %q: %w", ext, ErrUnknownFormat)
	}

	sc.setDefaults()
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return sc, nil
}

func (sc *Scene) setDefaults() {
	if sc.Width == nil {
		sc.Width = ptr(defaultSceneWidth)
	}
	if sc.Height == nil {
		sc.Height = ptr(defaultSceneHeight)
	}
	if sc.Roughness == nil {
		sc.Roughness = ptr(sketch.DefaultRoughness)
	}
	if sc.Bowing == nil {
		sc.Bowing = ptr(sketch.DefaultBowing)
	}
	if sc.HachureGap == nil {
		sc.HachureGap = ptr(sketch.DefaultHachureGap)
	}
	if sc.HachureAngle == nil {
		sc.HachureAngle = ptr(sketch.DefaultHachureAngle)
	}
	if sc.StrokeWidth == nil {
		sc.StrokeWidth = ptr(defaultStrokeWidth)
	}
	if sc.MiterLimit == nil {
		sc.MiterLimit = ptr(defaultMiterLimit)
	}
	if sc.LineCap == "" {
		sc.LineCap = "round"
	}
	if sc.LineJoin == "" {
		sc.LineJoin = "round"
	}
}

// Validate checks that the scene can be drawn.
func (sc *Scene) Validate() error {
	if !(*sc.Width > 0 && *sc.Height > 0) {
		return fmt.Errorf("invalid page size %gx%g", *sc.Width, *sc.Height)
	}
	if !(*sc.HachureGap > 0) {
		return fmt.Errorf("invalid hachure gap %g", *sc.HachureGap)
	}
	if !(*sc.StrokeWidth > 0) {
		return fmt.Errorf("invalid stroke width %g", *sc.StrokeWidth)
	}
	if !(*sc.MiterLimit >= 1) {
		return fmt.Errorf("invalid miter limit %g", *sc.MiterLimit)
	}
	if _, err := sc.cap(); err != nil {
		return err
	}
	if _, err := sc.join(); err != nil {
		return err
	}
	for i, cfg := range sc.Shapes {
		switch cfg.Kind {
		case "line", "rect", "triangle", "ellipse", "circle", "sector":
		default:
			return fmt.Errorf("shape %d: %w %q", i, ErrUnknownShape, cfg.Kind)
		}
	}
	return nil
}

// Sketch draws all shapes of the scene, in order.
func (sc *Scene) Sketch() ([]*sketch.Shape, error) {
	s := sketch.New(sc.Seed)
	s.HachureGap = *sc.HachureGap
	s.HachureAngle = *sc.HachureAngle
	s.SetBowing(*sc.Bowing)

	shapes := make([]*sketch.Shape, 0, len(sc.Shapes))
	for i, cfg := range sc.Shapes {
		roughness := *sc.Roughness
		if cfg.Roughness != nil {
			roughness = *cfg.Roughness
		}
		s.SetRoughness(roughness)

		var sh *sketch.Shape
		switch cfg.Kind {
		case "line":
			sh = s.Line(cfg.X1, cfg.Y1, cfg.X2, cfg.Y2)
		case "rect":
			sh = s.Rect(cfg.X, cfg.Y, cfg.W, cfg.H)
		case "triangle":
			sh = s.Triangle(cfg.X1, cfg.Y1, cfg.X2, cfg.Y2, cfg.X3, cfg.Y3)
		case "ellipse":
			sh = s.Ellipse(cfg.X, cfg.Y, cfg.W, cfg.H)
		case "circle":
			sh = s.Circle(cfg.X, cfg.Y, cfg.R)
		case "sector":
			sh = s.Sector(cfg.X, cfg.Y, cfg.R, cfg.Start, cfg.End)
		default:
			return nil, fmt.Errorf("shape %d: %w %q", i, ErrUnknownShape, cfg.Kind)
		}
		shapes = append(shapes, sh)
	}
	return shapes, nil
}

func (sc *Scene) cap() (graphics.LineCapStyle, error) {
	switch sc.LineCap {
	case "butt":
		return graphics.LineCapButt, nil
	case "round":
		return graphics.LineCapRound, nil
	case "square":
		return graphics.LineCapSquare, nil
	}
	return 0, fmt.Errorf("invalid line cap %q", sc.LineCap)
}

func (sc *Scene) join() (graphics.LineJoinStyle, error) {
	switch sc.LineJoin {
	case "miter":
		return graphics.LineJoinMiter, nil
	case "round":
		return graphics.LineJoinRound, nil
	case "bevel":
		return graphics.LineJoinBevel, nil
	}
	return 0, fmt.Errorf("invalid line join %q", sc.LineJoin)
}

func ptr[T any](v T) *T {
	return &v
}
