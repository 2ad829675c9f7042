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
	"seehuhn.de/go/qrimage"
)

// kappa for cubic Bezier approximation of a quarter circle
const kappa = 0.5522847498307936

var curveCases = []TestCase{
	{
		Name: "circle",
		Doc:  doc(64, solid(qrimage.Black, circle(32, 32, 25))),
	},
	{
		Name: "cubic",
		Doc: doc(64, solid(qrimage.Black,
			qrimage.Path{}.MoveTo(10, 50).CurveTo(20, 10, 44, 10, 54, 50).Close())),
	},
	{
		Name: "rounded_arc",
		Doc:  doc(64, solid(qrimage.Black, roundedRect(8, 8, 56, 56, 8))),
	},
	{
		// dots made from two half circle arcs, as used for round modules
		Name: "dots",
		Doc: scaled(64, 8, 0, solid(qrimage.Black,
			append(dot(1, 1), append(dot(3, 3), dot(5, 1)...)...))),
	},
}

// circle builds a circle from four cubic Bézier curves.
func circle(cx, cy, r float64) qrimage.Path {
	k := kappa * r
	var p qrimage.Path
	return p.MoveTo(cx, cy-r).
		CurveTo(cx+k, cy-r, cx+r, cy-k, cx+r, cy).
		CurveTo(cx+r, cy+k, cx+k, cy+r, cx, cy+r).
		CurveTo(cx-k, cy+r, cx-r, cy+k, cx-r, cy).
		CurveTo(cx-r, cy-k, cx-k, cy-r, cx, cy-r).
		Close()
}

// roundedRect builds a rectangle with elliptic arcs at the corners.
func roundedRect(x1, y1, x2, y2, r float64) qrimage.Path {
	var p qrimage.Path
	return p.MoveTo(x1+r, y1).
		LineTo(x2-r, y1).ArcTo(r, r, 0, false, true, x2, y1+r).
		LineTo(x2, y2-r).ArcTo(r, r, 0, false, true, x2-r, y2).
		LineTo(x1+r, y2).ArcTo(r, r, 0, false, true, x1, y2-r).
		LineTo(x1, y1+r).ArcTo(r, r, 0, false, true, x1+r, y1).
		Close()
}

// dot builds a filled circle of diameter one module at module (x, y).
func dot(x, y float64) qrimage.Path {
	var p qrimage.Path
	return p.MoveTo(x, y+0.5).
		ArcTo(0.5, 0.5, 0, false, true, x+1, y+0.5).
		ArcTo(0.5, 0.5, 0, false, true, x, y+0.5).
		Close()
}
