// seehuhn.de/go/qrimage - render QR code paths to images
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

package qrimage

import (
	"seehuhn.de/go/geom/vec"
)

// Op is one operation of a [Path].
//
// The operations understood by the backends are [Move], [Line], [Arc],
// [Curve] and [Close]. Any other implementation of Op is rejected with an
// [UnsupportedOpError].
type Op interface {
	// Kind returns a short lower-case name for the operation.
	Kind() string
}

// Move starts a new subpath at P.
type Move struct {
	P vec.Vec2
}

// Line adds a straight line to P.
type Line struct {
	P vec.Vec2
}

// Arc adds an elliptic arc to P, using the SVG arc parametrisation.
type Arc struct {
	RX, RY float64 // radii
	Angle  float64 // rotation of the x-axis, in degrees
	Large  bool    // use the large arc
	Sweep  bool    // use the positive-angle direction
	P      vec.Vec2
}

// Curve adds a cubic Bézier curve with control points C1 and C2, ending
// at P.
type Curve struct {
	C1, C2, P vec.Vec2
}

// Close closes the current subpath.
type Close struct{}

func (Move) Kind() string  { return "move" }
func (Line) Kind() string  { return "line" }
func (Arc) Kind() string   { return "arc" }
func (Curve) Kind() string { return "curve" }
func (Close) Kind() string { return "close" }

// Path is a sequence of drawing operations.
//
// The builder methods work like append: they return the extended path and
// the result must be used in place of the receiver.
type Path []Op

// MoveTo appends a [Move] operation.
func (p Path) MoveTo(x, y float64) Path {
	return append(p, Move{P: vec.Vec2{X: x, Y: y}})
}

// LineTo appends a [Line] operation.
func (p Path) LineTo(x, y float64) Path {
	return append(p, Line{P: vec.Vec2{X: x, Y: y}})
}

// ArcTo appends an [Arc] operation.
func (p Path) ArcTo(rx, ry, angle float64, large, sweep bool, x, y float64) Path {
	return append(p, Arc{
		RX: rx, RY: ry,
		Angle: angle,
		Large: large, Sweep: sweep,
		P: vec.Vec2{X: x, Y: y},
	})
}

// CurveTo appends a [Curve] operation.
func (p Path) CurveTo(x1, y1, x2, y2, x3, y3 float64) Path {
	return append(p, Curve{
		C1: vec.Vec2{X: x1, Y: y1},
		C2: vec.Vec2{X: x2, Y: y2},
		P:  vec.Vec2{X: x3, Y: y3},
	})
}

// Close appends a [Close] operation.
func (p Path) Close() Path {
	return append(p, Close{})
}

// Validate checks that p only contains the five supported operation kinds.
// The returned error is an [*UnsupportedOpError].
func (p Path) Validate() error {
	for _, op := range p {
		switch op.(type) {
		case Move, Line, Arc, Curve, Close:
			// pass
		default:
			return &UnsupportedOpError{Kind: opKind(op)}
		}
	}
	return nil
}

func opKind(op Op) string {
	if op == nil {
		return "<nil>"
	}
	return op.Kind()
}
