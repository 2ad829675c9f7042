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

package svg

import (
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"io"
	"strings"
	"testing"

	"seehuhn.de/go/qrimage"
)

// element is a generic XML element, used to inspect the output.
type element struct {
	XMLName  xml.Name
	Attrs    []xml.Attr `xml:",any,attr"`
	Children []element  `xml:",any"`
}

func (e *element) attr(name string) string {
	for _, a := range e.Attrs {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}

// find returns all descendants with the given local name, in document
// order.
func (e *element) find(name string) []*element {
	var res []*element
	for i := range e.Children {
		c := &e.Children[i]
		if c.XMLName.Local == name {
			res = append(res, c)
		}
		res = append(res, c.find(name)...)
	}
	return res
}

func parse(t *testing.T, data []byte) *element {
	t.Helper()
	root := &element{}
	if err := xml.Unmarshal(data, root); err != nil {
		t.Fatalf("invalid XML: %v\n%s", err, data)
	}
	if root.XMLName.Local != "svg" {
		t.Fatalf("root element is %q", root.XMLName.Local)
	}
	return root
}

func render(t *testing.T, draw func(b *Backend)) []byte {
	t.Helper()
	b := NewBackend(nil)
	if err := b.New(100, qrimage.White); err != nil {
		t.Fatal(err)
	}
	draw(b)
	data, err := b.Done(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	return data
}

func TestDocument(t *testing.T) {
	data := render(t, func(b *Backend) {
		var p qrimage.Path
		p = p.MoveTo(0, 0).LineTo(7, 0).LineTo(7, 7).LineTo(0, 7).Close()
		if err := b.DrawPathWithColor(p, qrimage.RGB{R: 0xff, B: 0x96}); err != nil {
			t.Fatal(err)
		}
	})

	root := parse(t, data)
	if got := root.attr("viewBox"); got != "0 0 100 100" {
		t.Errorf("viewBox = %q", got)
	}

	rects := root.find("rect")
	if len(rects) != 1 || rects[0].attr("fill") != "#ffffff" {
		t.Errorf("background rect missing")
	}

	paths := root.find("path")
	if len(paths) != 1 {
		t.Fatalf("got %d paths, want 1", len(paths))
	}
	if got := paths[0].attr("fill"); got != "#ff0096" {
		t.Errorf("fill = %q", got)
	}
	if got := paths[0].attr("fill-rule"); got != "evenodd" {
		t.Errorf("fill-rule = %q", got)
	}
	if got, want := paths[0].attr("d"), "M0 0 L7 0 L7 7 L0 7 Z"; got != want {
		t.Errorf("d = %q, want %q", got, want)
	}
}

func TestPathData(t *testing.T) {
	var p qrimage.Path
	p = p.MoveTo(1.5, 2).
		ArcTo(0.5, 0.25, 30, true, false, 3, 4).
		CurveTo(1, 2, 3, 4, 5, 6).
		Close()

	want := "M1.5 2 A0.5 0.25 30 1 0 3 4 C1 2 3 4 5 6 Z"
	if got := pathData(p); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestGroups(t *testing.T) {
	data := render(t, func(b *Backend) {
		b.Scale(10)
		b.Translate(4, 4)
		b.Push()
		b.Rotate(90)
		b.Rotate(90)
		b.Pop()
		b.Push() // left open
		b.Rotate(180)
	})

	root := parse(t, data)
	groups := root.find("g")
	var transforms []string
	for _, g := range groups {
		transforms = append(transforms, g.attr("transform"))
	}
	want := []string{"scale(10)", "translate(4 4)", "rotate(90)", "rotate(90)", "rotate(180)"}
	if strings.Join(transforms, ",") != strings.Join(want, ",") {
		t.Errorf("got %v, want %v", transforms, want)
	}

	// the two 90° rotations are nested, the 180° rotation is a sibling
	translate := groups[1]
	if len(translate.Children) != 2 {
		t.Errorf("translate group has %d children, want 2", len(translate.Children))
	}
}

func TestPopWithoutPush(t *testing.T) {
	data := render(t, func(b *Backend) {
		b.Scale(2)
		b.Pop()
	})
	parse(t, data)
}

func TestGradients(t *testing.T) {
	cases := []struct {
		typ  qrimage.GradientType
		elem string
		want map[string]string
	}{
		{qrimage.Horizontal, "linearGradient", map[string]string{"x1": "10", "y1": "20", "x2": "40", "y2": "20"}},
		{qrimage.Vertical, "linearGradient", map[string]string{"x1": "10", "y1": "20", "x2": "10", "y2": "60"}},
		{qrimage.Diagonal, "linearGradient", map[string]string{"x1": "10", "y1": "20", "x2": "40", "y2": "60"}},
		{qrimage.InverseDiagonal, "linearGradient", map[string]string{"x1": "10", "y1": "60", "x2": "40", "y2": "20"}},
		{qrimage.Radial, "radialGradient", map[string]string{"cx": "25", "cy": "40", "r": "20"}},
	}
	for _, c := range cases {
		t.Run(c.typ.String(), func(t *testing.T) {
			g := qrimage.Gradient{Start: qrimage.Black, End: qrimage.RGB{R: 0xff}, Type: c.typ}
			data := render(t, func(b *Backend) {
				var p qrimage.Path
				p = p.MoveTo(10, 20).LineTo(40, 20).LineTo(40, 60).Close()
				if err := b.DrawPathWithGradient(p, g, 10, 20, 30, 40); err != nil {
					t.Fatal(err)
				}
			})

			root := parse(t, data)
			grads := root.find(c.elem)
			if len(grads) != 1 {
				t.Fatalf("got %d %s elements", len(grads), c.elem)
			}
			for k, v := range c.want {
				if got := grads[0].attr(k); got != v {
					t.Errorf("%s = %q, want %q", k, got, v)
				}
			}

			stops := grads[0].find("stop")
			if len(stops) != 2 || stops[0].attr("stop-color") != "#000000" || stops[1].attr("stop-color") != "#ff0000" {
				t.Errorf("wrong stops")
			}

			paths := root.find("path")
			id := grads[0].attr("id")
			if len(paths) != 1 || paths[0].attr("fill") != "url(#"+id+")" {
				t.Errorf("path does not reference gradient %q", id)
			}
		})
	}
}

type bogusOp struct{}

func (bogusOp) Kind() string { return "bogus" }

func TestErrors(t *testing.T) {
	b := NewBackend(nil)
	if err := b.DrawPathWithColor(nil, qrimage.Black); !errors.Is(err, qrimage.ErrNoCanvas) {
		t.Errorf("draw before New: got %v", err)
	}
	if err := b.New(0, qrimage.White); err == nil {
		t.Error("New(0) succeeded")
	}

	if err := b.New(10, qrimage.White); err != nil {
		t.Fatal(err)
	}
	err := b.DrawPathWithColor(qrimage.Path{bogusOp{}}, qrimage.Black)
	if !errors.Is(err, qrimage.ErrUnsupportedOp) {
		t.Errorf("got %v, want ErrUnsupportedOp", err)
	}
	g := qrimage.Gradient{Type: qrimage.GradientType(99)}
	if err := b.DrawPathWithGradient(nil, g, 0, 0, 1, 1); err == nil {
		t.Error("unknown gradient type accepted")
	}

	data, err := b.Done(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	root := parse(t, data)
	if n := len(root.find("path")) + len(root.find("defs")); n != 0 {
		t.Errorf("failed draws left %d elements", n)
	}

	if _, err := b.Done(context.Background()); !errors.Is(err, qrimage.ErrNoCanvas) {
		t.Errorf("second Done: got %v", err)
	}
}

// TestReplay checks that every test document produces well-formed SVG.
func TestReplay(t *testing.T) {
	var p qrimage.Path
	doc := &qrimage.Document{
		Size:       40,
		Background: qrimage.White,
		Scale:      4,
		Translate:  []float64{1, 1},
		Draws: []qrimage.Draw{
			{Color: &qrimage.Black, Path: p.MoveTo(0, 0).LineTo(7, 0).LineTo(7, 7).Close()},
		},
	}
	data, err := doc.Replay(context.Background(), NewBackend(nil))
	if err != nil {
		t.Fatal(err)
	}

	dec := xml.NewDecoder(bytes.NewReader(data))
	for {
		_, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatal(err)
		}
	}
}
