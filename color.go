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

package qrimage

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB is an opaque 8-bit sRGB color.
//
// RGB implements [image/color.Color]. In JSON and TOML, colors are written
// as "#rrggbb" or "#rgb".
type RGB struct {
	R, G, B uint8
}

// Common colors.
var (
	Black = RGB{0, 0, 0}
	White = RGB{255, 255, 255}
)

// ParseRGB parses a color in "#rrggbb" or "#rgb" notation.
func ParseRGB(s string) (RGB, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return RGB{}, fmt.Errorf("qrimage: invalid color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return RGB{R: r, G: g, B: b}, nil
}

// RGBA implements the [image/color.Color] interface.
func (c RGB) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// Hex returns the color in "#rrggbb" notation.
func (c RGB) Hex() string {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.Hex()
}

func (c RGB) String() string {
	return c.Hex()
}

// MarshalText implements [encoding.TextMarshaler].
func (c RGB) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (c *RGB) UnmarshalText(text []byte) error {
	v, err := ParseRGB(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// GradientType selects the direction of a [Gradient].
type GradientType int

// These are the supported gradient directions.
const (
	Vertical GradientType = iota
	Horizontal
	Diagonal
	InverseDiagonal
	Radial
)

var gradientNames = []string{
	Vertical:        "vertical",
	Horizontal:      "horizontal",
	Diagonal:        "diagonal",
	InverseDiagonal: "inverse_diagonal",
	Radial:          "radial",
}

func (t GradientType) String() string {
	if t < 0 || int(t) >= len(gradientNames) {
		return fmt.Sprintf("GradientType(%d)", int(t))
	}
	return gradientNames[t]
}

// MarshalText implements [encoding.TextMarshaler].
func (t GradientType) MarshalText() ([]byte, error) {
	if t < 0 || int(t) >= len(gradientNames) {
		return nil, fmt.Errorf("qrimage: invalid gradient type %d", int(t))
	}
	return []byte(gradientNames[t]), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (t *GradientType) UnmarshalText(text []byte) error {
	for i, name := range gradientNames {
		if name == string(text) {
			*t = GradientType(i)
			return nil
		}
	}
	return fmt.Errorf("qrimage: unknown gradient type %q", text)
}

// Gradient describes a two-color gradient fill.
type Gradient struct {
	Start RGB          `json:"start"`
	End   RGB          `json:"end"`
	Type  GradientType `json:"type"`
}
