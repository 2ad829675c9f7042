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

// Package pixel packs 8-bit RGB colors into single integer pixel values.
//
// A packed pixel stores red in bits 16-23, green in bits 8-15 and blue in
// bits 0-7, the layout used by libgd true color images.
package pixel

import "image/color"

// Pixel is a packed 0xRRGGBB color value.
type Pixel uint32

// Pack combines three 8-bit channels into a pixel.
func Pack(r, g, b uint8) Pixel {
	var p Pixel
	p |= Pixel(r) << 16
	p |= Pixel(g) << 8
	p |= Pixel(b)
	return p
}

// Unpack splits the pixel into its three channels.
func (p Pixel) Unpack() (r, g, b uint8) {
	return uint8(p >> 16), uint8(p >> 8), uint8(p)
}

// Invert returns the pixel with every channel c replaced by 255-c.
func Invert(p Pixel) Pixel {
	r, g, b := p.Unpack()
	return Pack(255-r, 255-g, 255-b)
}

// RGBA implements the [color.Color] interface.
// Pixels are always opaque.
func (p Pixel) RGBA() (r, g, b, a uint32) {
	r8, g8, b8 := p.Unpack()
	r = uint32(r8)
	r |= r << 8
	g = uint32(g8)
	g |= g << 8
	b = uint32(b8)
	b |= b << 8
	return r, g, b, 0xffff
}

// Model converts arbitrary colors to pixels. Alpha is dropped, so colors
// with alpha < 1 are treated as if composited onto black.
var Model color.Model = color.ModelFunc(convert)

func convert(c color.Color) color.Color {
	if p, ok := c.(Pixel); ok {
		return p
	}
	r, g, b, _ := c.RGBA()
	return Pack(uint8(r>>8), uint8(g>>8), uint8(b>>8))
}

// FromColor converts c to a pixel.
func FromColor(c color.Color) Pixel {
	return Model.Convert(c).(Pixel)
}
