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

var gradientCases = []TestCase{
	{Name: "vertical", Doc: gradientDoc(qrimage.Vertical)},
	{Name: "horizontal", Doc: gradientDoc(qrimage.Horizontal)},
	{Name: "diagonal", Doc: gradientDoc(qrimage.Diagonal)},
	{Name: "inverse_diagonal", Doc: gradientDoc(qrimage.InverseDiagonal)},
	{Name: "radial", Doc: gradientDoc(qrimage.Radial)},
}

// gradientDoc fills a version 1 symbol with a gradient across the whole
// symbol area.
func gradientDoc(t qrimage.GradientType) *qrimage.Document {
	g := &qrimage.Gradient{
		Start: qrimage.RGB{R: 0x00, G: 0x33, B: 0x99},
		End:   qrimage.RGB{R: 0xcc, G: 0x00, B: 0x66},
		Type:  t,
	}
	d := scaled(116, 4, 4)
	d.Draws = []qrimage.Draw{{
		Gradient: g,
		Box:      [4]float64{0, 0, 21, 21},
		Path:     version1(),
	}}
	return d
}
