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
	"image/color"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/qrimage/pixel"
)

// Canvas is a square image of packed pixels.
//
// Canvas implements [draw.Image], so that it can be passed to the standard
// image encoders and drawing functions.
type Canvas struct {
	Pix        []pixel.Pixel // row-major, Size*Size entries
	Size       int
	Background pixel.Pixel
}

// NewCanvas allocates a size×size canvas filled with the background pixel.
func NewCanvas(size int, background pixel.Pixel) *Canvas {
	c := &Canvas{
		Pix:        make([]pixel.Pixel, size*size),
		Size:       size,
		Background: background,
	}
	for i := range c.Pix {
		c.Pix[i] = background
	}
	return c
}

// ColorModel implements the [image.Image] interface.
func (c *Canvas) ColorModel() color.Model {
	return pixel.Model
}

// Bounds implements the [image.Image] interface.
func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.Size, c.Size)
}

// Clip returns the canvas area in device coordinates.
func (c *Canvas) Clip() rect.Rect {
	return rect.Rect{
		LLx: 0,
		LLy: 0,
		URx: float64(c.Size),
		URy: float64(c.Size),
	}
}

// At implements the [image.Image] interface.
func (c *Canvas) At(x, y int) color.Color {
	p, ok := c.PixelAt(x, y)
	if !ok {
		return color.RGBA{}
	}
	return p
}

// Set implements the [draw.Image] interface.
func (c *Canvas) Set(x, y int, col color.Color) {
	c.SetPixel(x, y, pixel.FromColor(col))
}

// PixelAt returns the pixel at (x, y). The second return value is false if
// the point lies outside the canvas.
func (c *Canvas) PixelAt(x, y int) (pixel.Pixel, bool) {
	if x < 0 || y < 0 || x >= c.Size || y >= c.Size {
		return 0, false
	}
	return c.Pix[y*c.Size+x], true
}

// SetPixel sets the pixel at (x, y). Points outside the canvas are ignored.
func (c *Canvas) SetPixel(x, y int, p pixel.Pixel) {
	if x < 0 || y < 0 || x >= c.Size || y >= c.Size {
		return
	}
	c.Pix[y*c.Size+x] = p
}

// HLine sets the pixels from (xMin, y) to (xMax, y), both inclusive.
// The caller must ensure that the span lies inside the canvas.
func (c *Canvas) HLine(y, xMin, xMax int, p pixel.Pixel) {
	row := c.Pix[y*c.Size:]
	for x := xMin; x <= xMax; x++ {
		row[x] = p
	}
}
