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

// largeCases contains test cases with many polygons or large canvases.
var largeCases = []TestCase{
	{
		Name: "version1_scale40",
		Doc:  scaled(1160, 40, 4, solid(qrimage.Black, version1())),
	},
	{
		Name: "checkerboard",
		Doc:  scaled(512, 8, 2, solid(qrimage.Black, checkerboard(60))),
	},
}

// checkerboard builds n×n modules with every second module dark. The
// modules are shrunk so that neighbours do not share corner pixels.
func checkerboard(n int) qrimage.Path {
	var p qrimage.Path
	for y := range n {
		for x := range n {
			if (x+y)%2 == 0 {
				fx, fy := float64(x), float64(y)
				p = append(p, rectangle(fx, fy, fx+0.75, fy+0.75)...)
			}
		}
	}
	return p
}
