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

var transformCases = []TestCase{
	{
		Name: "scale",
		Doc: &qrimage.Document{
			Size:       64,
			Background: qrimage.White,
			Scale:      8,
			Draws:      []qrimage.Draw{solid(qrimage.Black, rectangle(1, 1, 7, 7))},
		},
	},
	{
		Name: "scale_fraction",
		Doc: &qrimage.Document{
			Size:       64,
			Background: qrimage.White,
			Scale:      2.5,
			Draws:      []qrimage.Draw{solid(qrimage.Black, triangle(2, 22, 12, 2, 22, 22))},
		},
	},
	{
		Name: "translate",
		Doc: &qrimage.Document{
			Size:       64,
			Background: qrimage.White,
			Translate:  []float64{20, 10},
			Draws:      []qrimage.Draw{solid(qrimage.Black, rectangle(0, 0, 30, 30))},
		},
	},
	{
		// the offset is applied in module units, before scaling
		Name: "scale_translate",
		Doc:  scaled(64, 6, 2, solid(qrimage.Black, rectangle(0, 0, 4, 4))),
	},
	{
		Name: "dark_background",
		Doc: &qrimage.Document{
			Size:       48,
			Background: qrimage.RGB{R: 0x10, G: 0x10, B: 0x10},
			Scale:      4,
			Translate:  []float64{2, 2},
			Draws:      []qrimage.Draw{solid(qrimage.White, finder(0, 0))},
		},
	},
}
