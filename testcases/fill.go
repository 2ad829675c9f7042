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

package testcases

import (
	"math"

	"seehuhn.de/go/qrimage"
)

var fillCases = []TestCase{
	{
		Name: "triangle",
		Doc:  doc(64, solid(qrimage.Black, triangle(10, 50, 32, 10, 54, 50))),
	},
	{
		Name: "rectangle",
		Doc:  doc(64, solid(qrimage.Black, rectangle(10, 10, 44, 44))),
	},
	{
		Name: "star",
		Doc:  doc(64, solid(qrimage.Black, fivePointStar(32, 32, 25))),
	},
	{
		// the second draw finds its own color and restores the background
		Name: "twice",
		Doc: doc(64,
			solid(qrimage.Black, rectangle(10, 10, 44, 44)),
			solid(qrimage.Black, rectangle(10, 10, 44, 44))),
	},
	{
		Name: "two_rectangles",
		Doc: doc(64, solid(qrimage.Black,
			append(rectangle(4, 4, 20, 20), rectangle(30, 30, 60, 60)...))),
	},
	{
		Name: "colors",
		Doc: doc(64,
			solid(qrimage.RGB{R: 0xcc}, rectangle(4, 4, 30, 30)),
			solid(qrimage.RGB{G: 0x99}, rectangle(34, 4, 60, 30)),
			solid(qrimage.RGB{B: 0xff}, rectangle(4, 34, 60, 60))),
	},
	{
		Name: "clipped",
		Doc:  doc(32, solid(qrimage.Black, rectangle(-10, -10, 16, 16))),
	},
}

// triangle builds a triangular path.
func triangle(x1, y1, x2, y2, x3, y3 float64) qrimage.Path {
	var p qrimage.Path
	return p.MoveTo(x1, y1).LineTo(x2, y2).LineTo(x3, y3).Close()
}

// fivePointStar builds a five-pointed star (self-intersecting).
func fivePointStar(cx, cy, r float64) qrimage.Path {
	// five points, connecting every second point
	var pts [5][2]float64
	for i := range 5 {
		angle := float64(i)*2*math.Pi/5 - math.Pi/2
		pts[i] = [2]float64{cx + r*math.Cos(angle), cy + r*math.Sin(angle)}
	}

	var p qrimage.Path
	for k, i := range []int{0, 2, 4, 1, 3} {
		if k == 0 {
			p = p.MoveTo(pts[i][0], pts[i][1])
		} else {
			p = p.LineTo(pts[i][0], pts[i][1])
		}
	}
	return p.Close()
}
