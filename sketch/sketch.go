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

// Package sketch draws lines and simple shapes in a hand-drawn style.
//
// Every line is drawn twice as a slightly perturbed spline, and closed
// rectangles and circles are filled with zig-zag hatch lines computed by
// the [hachure.Iterator].  The output of each drawing operation is a
// [Shape], whose paths consist of open subpaths meant to be stroked.
//
// The perturbation is random but reproducible: a [Sketcher] created with
// a given seed always produces the same paths for the same sequence of
// calls.
package sketch

import (
	"encoding/binary"
	"math/rand/v2"

	"github.com/google/uuid"
	"seehuhn.de/go/geom/path"
)

// Default values for the sketch parameters.
const (
	DefaultRoughness    = 1.0
	DefaultBowing       = 1.0
	DefaultHachureGap   = 8.5
	DefaultHachureAngle = 45.0
	DefaultEllipseSteps = 40

	// maxRoughness bounds both roughness and bowing.
	maxRoughness = 10.0
)

// Sketcher draws shapes in a hand-drawn style.
//
// A Sketcher is not safe for concurrent use.
type Sketcher struct {
	// HachureGap is the distance between hatch lines of filled shapes.
	// Must be positive.
	HachureGap float64

	// HachureAngle is the angle of the hatch lines in degrees.
	HachureAngle float64

	// EllipseSteps is the number of spline points used for a full ellipse.
	EllipseSteps int

	roughness float64
	bowing    float64

	src *rand.ChaCha8
	rng *rand.Rand
}

// New returns a Sketcher with default parameters, whose random
// perturbations are derived from seed.
func New(seed uint64) *Sketcher {
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:], seed)
	src := rand.NewChaCha8(key)

	return &Sketcher{
		HachureGap:   DefaultHachureGap,
		HachureAngle: DefaultHachureAngle,
		EllipseSteps: DefaultEllipseSteps,
		roughness:    DefaultRoughness,
		bowing:       DefaultBowing,
		src:          src,
		rng:          rand.New(src),
	}
}

// Roughness returns the current roughness.
func (s *Sketcher) Roughness() float64 {
	return s.roughness
}

// SetRoughness sets the general sketchiness of the drawing.  0 is precise,
// 1 is a typical neat sketch and 5 is very sketchy.  The value is clamped
// to the range [0, 10].
func (s *Sketcher) SetRoughness(roughness float64) {
	s.roughness = max(0, min(roughness, maxRoughness))
}

// Bowing returns the current bowing.
func (s *Sketcher) Bowing() float64 {
	return s.bowing
}

// SetBowing sets how much straight lines bend.  The value is clamped to
// the range [0, 10].
func (s *Sketcher) SetBowing(bowing float64) {
	s.bowing = max(0, min(bowing, maxRoughness))
}

// offset returns a random value in [minValue, maxValue), scaled by the
// roughness.
func (s *Sketcher) offset(minValue, maxValue float64) float64 {
	return s.roughness * (minValue + s.rng.Float64()*(maxValue-minValue))
}

// Shape is the output of a single drawing operation.
type Shape struct {
	// ID identifies the shape.  All strokes of one shape share the ID.
	ID uuid.UUID

	// Outline holds the strokes of the shape's boundary.
	Outline *path.Data

	// Hachure holds the hatch strokes filling the shape.  It is empty for
	// shapes which are not filled.
	Hachure *path.Data
}

// newShape allocates a shape with a fresh ID.
func (s *Sketcher) newShape() *Shape {
	return &Shape{
		ID:      uuid.Must(uuid.NewRandomFromReader(s.src)),
		Outline: &path.Data{},
		Hachure: &path.Data{},
	}
}

// IsEmpty reports whether the shape has no strokes at all.
func (sh *Shape) IsEmpty() bool {
	return len(sh.Outline.Cmds) == 0 && len(sh.Hachure.Cmds) == 0
}
