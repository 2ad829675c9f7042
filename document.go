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
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"seehuhn.de/go/geom/vec"
)

// Document is a recorded drawing session, which can be replayed onto any
// [Backend]. Documents are stored as JSON.
type Document struct {
	Size       int       `json:"size"`
	Background RGB       `json:"background"`
	Scale      float64   `json:"scale,omitempty"`     // zero means no Scale call
	Translate  []float64 `json:"translate,omitempty"` // nil or [x, y]
	Draws      []Draw    `json:"draws"`
}

// Draw is one draw call of a [Document].
// Exactly one of Color and Gradient must be set.
type Draw struct {
	Color    *RGB       `json:"color,omitempty"`
	Gradient *Gradient  `json:"gradient,omitempty"`
	Box      [4]float64 `json:"box,omitzero"` // x, y, width, height of the gradient
	Path     Path       `json:"path"`
}

// ReadDocument decodes a JSON document from r.
// Unknown fields are rejected.
func ReadDocument(r io.Reader) (*Document, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	doc := &Document{}
	if err := dec.Decode(doc); err != nil {
		return nil, fmt.Errorf("qrimage: decoding document: %w", err)
	}
	if err := doc.check(); err != nil {
		return nil, err
	}
	return doc, nil
}

// WriteTo writes the document as indented JSON.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return 0, err
	}
	data = append(data, '\n')
	n, err := w.Write(data)
	return int64(n), err
}

func (d *Document) check() error {
	if d.Size <= 0 {
		return fmt.Errorf("qrimage: invalid document size %d", d.Size)
	}
	if d.Translate != nil && len(d.Translate) != 2 {
		return fmt.Errorf("qrimage: translate needs 2 values, got %d", len(d.Translate))
	}
	for i, dr := range d.Draws {
		if (dr.Color == nil) == (dr.Gradient == nil) {
			return fmt.Errorf("qrimage: draw %d: need exactly one of color and gradient", i)
		}
	}
	return nil
}

// Replay issues the drawing calls recorded in d to b, and returns the
// result of b.Done. If a drawing call fails, Done is not called and a
// backend implementing [Discarder] is discarded.
func (d *Document) Replay(ctx context.Context, b Backend) ([]byte, error) {
	if err := d.check(); err != nil {
		return nil, err
	}
	if err := b.New(d.Size, d.Background); err != nil {
		return nil, err
	}
	if d.Scale != 0 {
		b.Scale(d.Scale)
	}
	if d.Translate != nil {
		b.Translate(d.Translate[0], d.Translate[1])
	}
	for i, dr := range d.Draws {
		var err error
		if dr.Gradient != nil {
			err = b.DrawPathWithGradient(dr.Path, *dr.Gradient, dr.Box[0], dr.Box[1], dr.Box[2], dr.Box[3])
		} else {
			err = b.DrawPathWithColor(dr.Path, *dr.Color)
		}
		if err != nil {
			if dis, ok := b.(Discarder); ok {
				dis.Discard()
			}
			return nil, fmt.Errorf("draw %d: %w", i, err)
		}
	}
	return b.Done(ctx)
}

// jsonSegment is the JSON form of a path operation.
type jsonSegment struct {
	Cmd   string      `json:"cmd"`
	Pts   [][]float64 `json:"pts,omitempty"`
	RX    float64     `json:"rx,omitempty"`
	RY    float64     `json:"ry,omitempty"`
	Angle float64     `json:"angle,omitempty"`
	Large bool        `json:"large,omitempty"`
	Sweep bool        `json:"sweep,omitempty"`
}

var errUnknownCmd = errors.New("unknown path command")

// MarshalJSON implements [json.Marshaler].
func (p Path) MarshalJSON() ([]byte, error) {
	segs := make([]jsonSegment, 0, len(p))
	for _, op := range p {
		var seg jsonSegment
		switch op := op.(type) {
		case Move:
			seg = jsonSegment{Cmd: "M", Pts: pts(op.P)}
		case Line:
			seg = jsonSegment{Cmd: "L", Pts: pts(op.P)}
		case Arc:
			seg = jsonSegment{
				Cmd:   "A",
				Pts:   pts(op.P),
				RX:    op.RX,
				RY:    op.RY,
				Angle: op.Angle,
				Large: op.Large,
				Sweep: op.Sweep,
			}
		case Curve:
			seg = jsonSegment{Cmd: "C", Pts: pts(op.C1, op.C2, op.P)}
		case Close:
			seg = jsonSegment{Cmd: "Z"}
		default:
			return nil, &UnsupportedOpError{Kind: opKind(op)}
		}
		segs = append(segs, seg)
	}
	return json.Marshal(segs)
}

// UnmarshalJSON implements [json.Unmarshaler].
func (p *Path) UnmarshalJSON(data []byte) error {
	var segs []jsonSegment
	if err := json.Unmarshal(data, &segs); err != nil {
		return err
	}

	res := make(Path, 0, len(segs))
	for i, seg := range segs {
		want := 1
		switch seg.Cmd {
		case "C":
			want = 3
		case "Z":
			want = 0
		case "M", "L", "A":
			// pass
		default:
			return fmt.Errorf("segment %d: %w %q", i, errUnknownCmd, seg.Cmd)
		}
		if len(seg.Pts) != want {
			return fmt.Errorf("segment %d: %q needs %d points, got %d", i, seg.Cmd, want, len(seg.Pts))
		}
		v := make([]vec.Vec2, want)
		for j, pt := range seg.Pts {
			if len(pt) != 2 {
				return fmt.Errorf("segment %d: point %d has %d coordinates", i, j, len(pt))
			}
			v[j] = vec.Vec2{X: pt[0], Y: pt[1]}
		}

		switch seg.Cmd {
		case "M":
			res = append(res, Move{P: v[0]})
		case "L":
			res = append(res, Line{P: v[0]})
		case "A":
			res = append(res, Arc{
				RX: seg.RX, RY: seg.RY,
				Angle: seg.Angle,
				Large: seg.Large, Sweep: seg.Sweep,
				P: v[0],
			})
		case "C":
			res = append(res, Curve{C1: v[0], C2: v[1], P: v[2]})
		case "Z":
			res = append(res, Close{})
		}
	}
	*p = res
	return nil
}

func pts(v ...vec.Vec2) [][]float64 {
	res := make([][]float64, len(v))
	for i, pt := range v {
		res[i] = []float64{pt.X, pt.Y}
	}
	return res
}
