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

// Package raster implements a [qrimage.Backend] which fills paths directly
// into an in-memory pixel canvas.
//
// The backend only supports what QR code renderers need: scaling,
// translation and solid fills of closed polygons. Curves and arcs are
// replaced by straight segments through their control points and end
// points, gradients are drawn using their start color, and Rotate, Push and
// Pop have no effect.
//
// Instead of a fill rule, the backend uses a fill toggle: before a closed
// subpath is filled, the canvas pixel at its first point is inspected. If
// this pixel already has the requested color, the subpath is filled with
// the background color instead. Nested squares, as found in QR code finder
// patterns, thus come out as alternating rings.
package raster

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"log/slog"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/qrimage"
	"seehuhn.de/go/qrimage/pixel"
)

// Options configure a [Backend].
// The zero value is valid and produces PNG output.
type Options struct {
	// Format is the output image format.
	Format Format

	// Labels enables debug labels. If set, every vertex of every filled
	// polygon is annotated with "j:i", where j is the index of the polygon
	// within its draw call and i is the index of the vertex. Labels are
	// only visible in [Backend.DebugImage], never in the output of Done.
	Labels bool

	// Logger receives debug records. If nil, [qrimage.Logger] is used.
	Logger *slog.Logger
}

// Stats counts the filled polygons of the current image.
type Stats struct {
	Polygons int // number of filled polygons
	Vertices int // total number of vertices of the filled polygons
}

// Backend renders paths into a [Canvas].
type Backend struct {
	opts Options
	log  *slog.Logger

	canvas *Canvas
	ras    *Rasterizer

	scale float64
	shift vec.Vec2
	ctm   matrix.Matrix // maps path coordinates to device coordinates

	pts   []vec.Vec2 // transformed points of the current subpath
	stats Stats

	labels    []label
	lastDebug image.Image
}

var (
	_ qrimage.Backend   = (*Backend)(nil)
	_ qrimage.Discarder = (*Backend)(nil)
)

// NewBackend returns a new raster backend.
// If opts is nil, default options are used.
func NewBackend(opts *Options) *Backend {
	if opts == nil {
		opts = &Options{}
	}
	return &Backend{
		opts:  *opts,
		log:   qrimage.LoggerOr(opts.Logger),
		ras:   NewRasterizer(rect.Rect{}),
		scale: 1,
		ctm:   matrix.Identity,
	}
}

// New implements the [qrimage.Backend] interface.
func (b *Backend) New(size int, background qrimage.RGB) error {
	if size <= 0 {
		return fmt.Errorf("raster: invalid image size %d", size)
	}
	b.log.Debug("new", "size", size, "background", background)

	b.canvas = NewCanvas(size, pixel.Pack(background.R, background.G, background.B))
	b.ras.Reset(b.canvas.Clip())
	b.scale = 1
	b.shift = vec.Vec2{}
	b.updateCTM()
	b.stats = Stats{}
	b.labels = b.labels[:0]
	b.lastDebug = nil
	return nil
}

// Scale implements the [qrimage.Backend] interface.
func (b *Backend) Scale(s float64) {
	b.log.Debug("scale", "scale", s)
	b.scale = s
	b.updateCTM()
}

// Translate implements the [qrimage.Backend] interface.
// The offset is applied before scaling.
func (b *Backend) Translate(x, y float64) {
	b.log.Debug("translate", "translate", []float64{x, y})
	b.shift = vec.Vec2{X: x, Y: y}
	b.updateCTM()
}

// Rotate implements the [qrimage.Backend] interface.
// The raster backend cannot rotate; the call is ignored.
func (b *Backend) Rotate(degrees int) {
	b.log.Debug("rotate ignored", "degrees", degrees)
}

// Push implements the [qrimage.Backend] interface.
// The raster backend keeps no transformation stack; the call is ignored.
func (b *Backend) Push() {
	b.log.Debug("push ignored")
}

// Pop implements the [qrimage.Backend] interface.
// The raster backend keeps no transformation stack; the call is ignored.
func (b *Backend) Pop() {
	b.log.Debug("pop ignored")
}

func (b *Backend) updateCTM() {
	s := b.scale
	b.ctm = matrix.Matrix{s, 0, 0, s, s * b.shift.X, s * b.shift.Y}
}

// transform maps a point from path coordinates to device coordinates.
func (b *Backend) transform(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: b.ctm[0]*v.X + b.ctm[2]*v.Y + b.ctm[4],
		Y: b.ctm[1]*v.X + b.ctm[3]*v.Y + b.ctm[5],
	}
}

// DrawPathWithColor implements the [qrimage.Backend] interface.
//
// The path is checked before anything is drawn, so that a path with an
// unsupported operation leaves the canvas unchanged. Points after the last
// Close operation are discarded.
func (b *Backend) DrawPathWithColor(p qrimage.Path, c qrimage.RGB) error {
	if b.canvas == nil {
		return qrimage.ErrNoCanvas
	}
	if err := p.Validate(); err != nil {
		return err
	}
	b.log.Debug("draw", "ops", len(p), "color", c)

	fg := pixel.Pack(c.R, c.G, c.B)
	pts := b.pts[:0]
	j := 0
	for _, op := range p {
		switch op := op.(type) {
		case qrimage.Move:
			pts = append(pts, b.transform(op.P))
		case qrimage.Line:
			pts = append(pts, b.transform(op.P))
		case qrimage.Arc:
			// only the end point is used
			pts = append(pts, b.transform(op.P))
		case qrimage.Curve:
			// straight segments through the control points
			pts = append(pts, b.transform(op.C1), b.transform(op.C2), b.transform(op.P))
		case qrimage.Close:
			if len(pts) == 0 {
				continue
			}
			b.fillPolygon(pts, fg, j)
			j++
			pts = pts[:0]
		}
	}
	b.pts = pts[:0]
	return nil
}

// DrawPathWithGradient implements the [qrimage.Backend] interface.
// Gradients are not supported; the path is filled with the start color.
func (b *Backend) DrawPathWithGradient(p qrimage.Path, g qrimage.Gradient, x, y, width, height float64) error {
	b.log.Debug("gradient replaced by start color", "type", g.Type, "start", g.Start)
	return b.DrawPathWithColor(p, g.Start)
}

// fillPolygon fills the polygon pts, using the fill toggle to choose
// between fg and the background pixel. The index j is used for the debug
// labels.
func (b *Backend) fillPolygon(pts []vec.Vec2, fg pixel.Pixel, j int) {
	fill := fg
	first := pts[0]
	at, ok := b.canvas.PixelAt(int(math.Round(first.X)), int(math.Round(first.Y)))
	if ok && at == fg {
		fill = b.canvas.Background
	}

	n := b.ras.Fill(polygon(pts), func(y, xMin, xMax int) {
		b.canvas.HLine(y, xMin, xMax, fill)
	})
	b.stats.Polygons++
	b.stats.Vertices += n

	if b.log.Enabled(context.Background(), slog.LevelDebug) {
		b.log.Debug("fill",
			"polygon", j,
			"points", n,
			"toggled", fill != fg,
			"pixel", fmt.Sprintf("%06x", uint32(fill)))
	}

	if b.opts.Labels {
		col := pixel.Invert(fill)
		for i, v := range pts {
			b.labels = append(b.labels, label{
				text: fmt.Sprintf("%d:%d", j, i),
				at:   v,
				col:  col,
			})
		}
	}
}

// Canvas returns the canvas of the image in progress, or nil if there is
// none.
func (b *Backend) Canvas() *Canvas {
	return b.canvas
}

// Stats returns fill statistics for the image in progress, or for the
// image most recently finished by Done.
func (b *Backend) Stats() Stats {
	return b.stats
}

// DebugImage returns the canvas with the debug labels drawn on top.
// After Done, it returns the debug image of the finished image.
// The result is nil if labels are disabled or no image has been started.
func (b *Backend) DebugImage() image.Image {
	if !b.opts.Labels {
		return nil
	}
	if b.canvas == nil {
		return b.lastDebug
	}
	return overlay(b.canvas, b.labels)
}

// Done implements the [qrimage.Backend] interface.
// The canvas is released, also when encoding fails.
func (b *Backend) Done(ctx context.Context) ([]byte, error) {
	if b.canvas == nil {
		return nil, qrimage.ErrNoCanvas
	}
	c := b.canvas
	defer func() {
		b.canvas = nil
		b.labels = b.labels[:0]
	}()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if b.opts.Labels {
		b.lastDebug = overlay(c, b.labels)
	}

	buf := &bytes.Buffer{}
	if err := Encode(buf, c, b.opts.Format); err != nil {
		return nil, err
	}
	b.log.Debug("done",
		"size", c.Size,
		"format", b.opts.Format,
		"polygons", b.stats.Polygons,
		"bytes", buf.Len())
	return buf.Bytes(), nil
}

// Discard drops the image in progress.
func (b *Backend) Discard() {
	b.canvas = nil
	b.labels = b.labels[:0]
}

// polygon returns the closed polygon through pts as a path.
func polygon(pts []vec.Vec2) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		for i := range pts {
			cmd := path.CmdLineTo
			if i == 0 {
				cmd = path.CmdMoveTo
			}
			if !yield(cmd, pts[i:i+1]) {
				return
			}
		}
		yield(path.CmdClose, nil)
	}
}
