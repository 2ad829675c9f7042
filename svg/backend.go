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

// Package svg implements a [qrimage.Backend] which writes an SVG document.
//
// Transformations are written as nested <g> elements, so that all
// operations of the interface are supported: curves and arcs are kept as
// SVG path segments and gradients become gradient definitions.
package svg

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"seehuhn.de/go/qrimage"
)

// Options configure a [Backend].
type Options struct {
	// Logger receives debug records. If nil, [qrimage.Logger] is used.
	Logger *slog.Logger
}

// Backend writes drawing calls as an SVG document.
type Backend struct {
	log *slog.Logger

	buf    *bytes.Buffer // nil if no image is in progress
	depth  int           // number of open <g> elements
	stack  []int         // depth at each Push
	nextID int           // counter for gradient ids
}

var (
	_ qrimage.Backend   = (*Backend)(nil)
	_ qrimage.Discarder = (*Backend)(nil)
)

// NewBackend returns a new SVG backend.
// If opts is nil, default options are used.
func NewBackend(opts *Options) *Backend {
	if opts == nil {
		opts = &Options{}
	}
	return &Backend{
		log: qrimage.LoggerOr(opts.Logger),
	}
}

func (b *Backend) printf(format string, a ...any) {
	fmt.Fprintf(b.buf, format, a...)
}

// New implements the [qrimage.Backend] interface.
func (b *Backend) New(size int, background qrimage.RGB) error {
	if size <= 0 {
		return fmt.Errorf("svg: invalid image size %d", size)
	}
	b.log.Debug("new", "size", size, "background", background)

	b.buf = &bytes.Buffer{}
	b.depth = 0
	b.stack = b.stack[:0]
	b.nextID = 0

	b.printf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" version="1.1" width="%d" height="%d" viewBox="0 0 %d %d">
`, size, size, size, size)
	b.printf(`<rect x="0" y="0" width="%d" height="%d" fill="%s"/>
`, size, size, background.Hex())
	return nil
}

// Scale implements the [qrimage.Backend] interface.
func (b *Backend) Scale(s float64) {
	b.log.Debug("scale", "scale", s)
	b.group("scale(" + num(s) + ")")
}

// Translate implements the [qrimage.Backend] interface.
func (b *Backend) Translate(x, y float64) {
	b.log.Debug("translate", "translate", []float64{x, y})
	b.group("translate(" + num(x) + " " + num(y) + ")")
}

// Rotate implements the [qrimage.Backend] interface.
func (b *Backend) Rotate(degrees int) {
	b.log.Debug("rotate", "degrees", degrees)
	b.group("rotate(" + strconv.Itoa(degrees) + ")")
}

// group opens a new <g> element with the given transform.
func (b *Backend) group(transform string) {
	if b.buf == nil {
		return
	}
	b.printf("<g transform=\"%s\">\n", transform)
	b.depth++
}

// Push implements the [qrimage.Backend] interface.
func (b *Backend) Push() {
	b.stack = append(b.stack, b.depth)
}

// Pop implements the [qrimage.Backend] interface.
// All groups opened since the matching Push are closed. Unbalanced calls
// are ignored.
func (b *Backend) Pop() {
	if len(b.stack) == 0 {
		b.log.Debug("pop without push")
		return
	}
	depth := b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]
	b.closeGroups(depth)
}

func (b *Backend) closeGroups(depth int) {
	for b.depth > depth {
		if b.buf != nil {
			b.printf("</g>\n")
		}
		b.depth--
	}
}

// DrawPathWithColor implements the [qrimage.Backend] interface.
func (b *Backend) DrawPathWithColor(p qrimage.Path, c qrimage.RGB) error {
	if b.buf == nil {
		return qrimage.ErrNoCanvas
	}
	if err := p.Validate(); err != nil {
		return err
	}
	b.log.Debug("draw", "ops", len(p), "color", c)
	b.printf("<path fill=\"%s\" fill-rule=\"evenodd\" d=\"%s\"/>\n", c.Hex(), pathData(p))
	return nil
}

// DrawPathWithGradient implements the [qrimage.Backend] interface.
// The gradient spans the box with upper left corner (x, y).
func (b *Backend) DrawPathWithGradient(p qrimage.Path, g qrimage.Gradient, x, y, width, height float64) error {
	if b.buf == nil {
		return qrimage.ErrNoCanvas
	}
	if err := p.Validate(); err != nil {
		return err
	}
	b.log.Debug("gradient", "ops", len(p), "type", g.Type)

	id := "g" + strconv.Itoa(b.nextID)
	var open, end string
	switch g.Type {
	case qrimage.Radial:
		r := max(width, height) / 2
		open = fmt.Sprintf(`<radialGradient id="%s" gradientUnits="userSpaceOnUse" cx="%s" cy="%s" r="%s">`,
			id, num(x+width/2), num(y+height/2), num(r))
		end = "</radialGradient>"
	case qrimage.Horizontal, qrimage.Vertical, qrimage.Diagonal, qrimage.InverseDiagonal:
		x1, y1, x2, y2 := x, y, x, y
		switch g.Type {
		case qrimage.Horizontal:
			x2 = x + width
		case qrimage.Vertical:
			y2 = y + height
		case qrimage.Diagonal:
			x2, y2 = x+width, y+height
		case qrimage.InverseDiagonal:
			y1 = y + height
			x2 = x + width
		}
		open = fmt.Sprintf(`<linearGradient id="%s" gradientUnits="userSpaceOnUse" x1="%s" y1="%s" x2="%s" y2="%s">`,
			id, num(x1), num(y1), num(x2), num(y2))
		end = "</linearGradient>"
	default:
		return fmt.Errorf("svg: unknown gradient type %d", int(g.Type))
	}
	b.nextID++

	b.printf(`<defs>
%s
<stop offset="0" stop-color="%s"/>
<stop offset="1" stop-color="%s"/>
%s
</defs>
`, open, g.Start.Hex(), g.End.Hex(), end)

	b.printf("<path fill=\"url(#%s)\" fill-rule=\"evenodd\" d=\"%s\"/>\n", id, pathData(p))
	return nil
}

// Done implements the [qrimage.Backend] interface.
// Open groups are closed and the SVG document is returned.
func (b *Backend) Done(ctx context.Context) ([]byte, error) {
	if b.buf == nil {
		return nil, qrimage.ErrNoCanvas
	}
	buf := b.buf
	defer func() {
		b.buf = nil
		b.stack = b.stack[:0]
		b.depth = 0
	}()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	b.closeGroups(0)
	b.printf("</svg>\n")
	b.log.Debug("done", "bytes", buf.Len())
	return buf.Bytes(), nil
}

// Discard drops the document in progress.
func (b *Backend) Discard() {
	b.buf = nil
	b.stack = b.stack[:0]
	b.depth = 0
}

// pathData converts p to the value of an SVG "d" attribute.
// The path must have been validated.
func pathData(p qrimage.Path) string {
	var buf bytes.Buffer
	for i, op := range p {
		if i > 0 {
			buf.WriteByte(' ')
		}
		switch op := op.(type) {
		case qrimage.Move:
			fmt.Fprintf(&buf, "M%s %s", num(op.P.X), num(op.P.Y))
		case qrimage.Line:
			fmt.Fprintf(&buf, "L%s %s", num(op.P.X), num(op.P.Y))
		case qrimage.Arc:
			fmt.Fprintf(&buf, "A%s %s %s %s %s %s %s",
				num(op.RX), num(op.RY), num(op.Angle),
				flag(op.Large), flag(op.Sweep),
				num(op.P.X), num(op.P.Y))
		case qrimage.Curve:
			fmt.Fprintf(&buf, "C%s %s %s %s %s %s",
				num(op.C1.X), num(op.C1.Y),
				num(op.C2.X), num(op.C2.Y),
				num(op.P.X), num(op.P.Y))
		case qrimage.Close:
			buf.WriteByte('Z')
		}
	}
	return buf.String()
}

// num formats a coordinate using the shortest exact representation.
func num(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}

func flag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
