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

package raster

import (
	"image"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/qrimage/pixel"
)

// labelSize is the height of the debug label font, in pixels.
const labelSize = 8

// label is a debug annotation for one polygon vertex.
type label struct {
	text string
	at   vec.Vec2 // vertex position in device coordinates
	col  pixel.Pixel
}

// overlay returns a copy of c with the labels drawn on top.
// The text is placed just below and right of each vertex.
func overlay(c *Canvas, labels []label) image.Image {
	img := image.NewRGBA(c.Bounds())
	draw.Draw(img, img.Bounds(), c, image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  img,
		Face: basicfont.Face7x13,
	}
	for _, l := range labels {
		d.Src = image.NewUniform(l.col)
		d.Dot = fixed.P(int(l.at.X)+1, int(l.at.Y)+labelSize)
		d.DrawString(l.text)
	}
	return img
}
