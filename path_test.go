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
	"errors"
	"testing"

	"seehuhn.de/go/geom/vec"
)

type bogusOp struct{}

func (bogusOp) Kind() string { return "bogus" }

func TestPathBuilders(t *testing.T) {
	var p Path
	p = p.MoveTo(1, 2).LineTo(3, 4).ArcTo(1, 2, 30, true, false, 5, 6).CurveTo(1, 1, 2, 2, 3, 3).Close()

	want := Path{
		Move{P: vec.Vec2{X: 1, Y: 2}},
		Line{P: vec.Vec2{X: 3, Y: 4}},
		Arc{RX: 1, RY: 2, Angle: 30, Large: true, P: vec.Vec2{X: 5, Y: 6}},
		Curve{C1: vec.Vec2{X: 1, Y: 1}, C2: vec.Vec2{X: 2, Y: 2}, P: vec.Vec2{X: 3, Y: 3}},
		Close{},
	}
	if len(p) != len(want) {
		t.Fatalf("got %d ops, want %d", len(p), len(want))
	}
	for i := range want {
		if p[i] != want[i] {
			t.Errorf("op %d: got %#v, want %#v", i, p[i], want[i])
		}
	}

	kinds := []string{"move", "line", "arc", "curve", "close"}
	for i, op := range p {
		if op.Kind() != kinds[i] {
			t.Errorf("op %d: kind %q, want %q", i, op.Kind(), kinds[i])
		}
	}

	if err := p.Validate(); err != nil {
		t.Error(err)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		p    Path
		kind string
	}{
		{Path{Move{}, bogusOp{}, Close{}}, "bogus"},
		{Path{Move{}, nil}, "<nil>"},
	}
	for _, c := range cases {
		err := c.p.Validate()
		if !errors.Is(err, ErrUnsupportedOp) {
			t.Errorf("%v: got %v", c.p, err)
			continue
		}
		var opErr *UnsupportedOpError
		if !errors.As(err, &opErr) || opErr.Kind != c.kind {
			t.Errorf("got %v, want kind %q", err, c.kind)
		}
	}

	var empty Path
	if err := empty.Validate(); err != nil {
		t.Errorf("empty path: %v", err)
	}
}

func TestParseRGB(t *testing.T) {
	cases := []struct {
		in   string
		want RGB
	}{
		{"#000000", Black},
		{"#fff", White},
		{"#FF8000", RGB{R: 255, G: 128}},
		{"#0a141e", RGB{R: 10, G: 20, B: 30}},
	}
	for _, c := range cases {
		got, err := ParseRGB(c.in)
		if err != nil {
			t.Errorf("%s: %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("%s: got %v, want %v", c.in, got, c.want)
		}
	}

	for _, in := range []string{"", "red", "#12", "#gggggg"} {
		if _, err := ParseRGB(in); err == nil {
			t.Errorf("%q: no error", in)
		}
	}
}

func TestHex(t *testing.T) {
	for _, c := range []RGB{Black, White, {R: 10, G: 20, B: 30}, {R: 255, G: 128}} {
		back, err := ParseRGB(c.Hex())
		if err != nil {
			t.Fatal(err)
		}
		if back != c {
			t.Errorf("%v: round trip gave %v", c, back)
		}
	}
}

func TestGradientType(t *testing.T) {
	for typ := Vertical; typ <= Radial; typ++ {
		text, err := typ.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var back GradientType
		if err := back.UnmarshalText(text); err != nil {
			t.Fatal(err)
		}
		if back != typ {
			t.Errorf("%s: round trip gave %s", typ, back)
		}
	}
	if _, err := GradientType(17).MarshalText(); err == nil {
		t.Error("invalid gradient type marshalled")
	}
}
