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

// Package qrimage renders the vector paths produced by a QR code front end
// into image bytes.
//
// All renderers implement [Backend]. Two strategies are available:
//
//   - seehuhn.de/go/qrimage/raster fills the paths directly into an
//     in-memory pixel canvas and encodes the result as PNG, BMP or TIFF.
//   - seehuhn.de/go/qrimage/convert renders an intermediate SVG or PDF
//     document and pipes it through an external converter such as
//     ImageMagick's convert.
//
// A drawing session is a call to [Backend.New], followed by optional
// [Backend.Scale] and [Backend.Translate] calls, any number of draw calls
// and a final [Backend.Done]. [Document] records such a session in JSON
// form and replays it onto a backend.
//
// The raster backend approximates curves and arcs by straight segments
// through their control and end points, and uses a fill toggle instead of
// a real fill rule: a closed shape whose first point lands on a pixel of
// the requested color is filled with the background color instead. This is
// enough to render nested finder patterns as alternating rings.
package qrimage

//go:generate go run ./testcases/export
