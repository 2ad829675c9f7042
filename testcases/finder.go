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

var finderCases = []TestCase{
	{
		Name: "single",
		Doc:  scaled(44, 4, 2, solid(qrimage.Black, finder(0, 0))),
	},
	{
		// one draw call per square
		Name: "separate_draws",
		Doc: scaled(44, 4, 2,
			solid(qrimage.Black, rectangle(0, 0, 7, 7)),
			solid(qrimage.Black, rectangle(1, 1, 6, 6)),
			solid(qrimage.Black, rectangle(2, 2, 5, 5))),
	},
	{
		Name: "version1",
		Doc:  scaled(116, 4, 4, solid(qrimage.Black, version1())),
	},
	{
		Name: "colored",
		Doc: scaled(116, 4, 4,
			solid(qrimage.RGB{R: 0x20, G: 0x40, B: 0x80}, version1())),
	},
}

// finder builds the three nested squares of a finder pattern with its
// upper left corner at module (x, y).
func finder(x, y float64) qrimage.Path {
	p := rectangle(x, y, x+7, y+7)
	p = append(p, rectangle(x+1, y+1, x+6, y+6)...)
	return append(p, rectangle(x+2, y+2, x+5, y+5)...)
}

// version1 builds the function patterns of a 21×21 symbol: three finder
// patterns and the two timing patterns.
func version1() qrimage.Path {
	p := finder(0, 0)
	p = append(p, finder(14, 0)...)
	p = append(p, finder(0, 14)...)
	for i := 8.0; i <= 12; i += 2 {
		p = append(p, rectangle(i, 6, i+1, 7)...)
		p = append(p, rectangle(6, i, 7, i+1)...)
	}
	return p
}
