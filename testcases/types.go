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

// Package testcases contains named drawing sessions which are shared by
// the backend tests, the benchmarks and the reference image generator.
package testcases

import (
	"seehuhn.de/go/qrimage"
)

// TestCase defines a single rendering test.
type TestCase struct {
	Name string            // lowercase a-z, 0-9 and _ only
	Doc  *qrimage.Document // the drawing session to replay
}

// doc builds a document on a white background.
func doc(size int, draws ...qrimage.Draw) *qrimage.Document {
	return &qrimage.Document{
		Size:       size,
		Background: qrimage.White,
		Draws:      draws,
	}
}

// scaled builds a document with a module scale and a quiet zone offset.
func scaled(size int, scale, quiet float64, draws ...qrimage.Draw) *qrimage.Document {
	d := doc(size, draws...)
	d.Scale = scale
	d.Translate = []float64{quiet, quiet}
	return d
}

// solid fills p with color c.
func solid(c qrimage.RGB, p qrimage.Path) qrimage.Draw {
	return qrimage.Draw{Color: &c, Path: p}
}

// rectangle builds a closed rectangular path.
func rectangle(x1, y1, x2, y2 float64) qrimage.Path {
	var p qrimage.Path
	return p.MoveTo(x1, y1).LineTo(x2, y1).LineTo(x2, y2).LineTo(x1, y2).Close()
}
