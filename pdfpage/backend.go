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

// Package pdfpage implements a [qrimage.Backend] which writes a single page
// PDF file.
//
// One unit of the image size corresponds to one PDF point, and the origin
// is at the top left corner of the page. Arcs are replaced by straight
// lines to their end points, and gradients are drawn using their start
// color.
package pdfpage

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/qrimage"
)

// Options configure a [Backend].
type Options struct {
	// TempDir is the directory for the intermediate PDF file.
	// If empty, [os.TempDir] is used.
	TempDir string

	// Logger receives debug records. If nil, [qrimage.Logger] is used.
	Logger *slog.Logger
}

// Backend draws into a one-page PDF document.
type Backend struct {
	opts Options
	log  *slog.Logger

	page  *document.Page // nil if no image is in progress
	dir   string         // temporary directory holding the PDF file
	size  int
	ctm   matrix.Matrix // maps path coordinates to page coordinates
	saved []matrix.Matrix
}

var (
	_ qrimage.Backend   = (*Backend)(nil)
	_ qrimage.Discarder = (*Backend)(nil)
)

// NewBackend returns a new PDF backend.
// If opts is nil, default options are used.
func NewBackend(opts *Options) *Backend {
	if opts == nil {
		opts = &Options{}
	}
	return &Backend{
		opts: *opts,
		log:  qrimage.LoggerOr(opts.Logger),
		ctm:  matrix.Identity,
	}
}

func (b *Backend) fileName() string {
	return filepath.Join(b.dir, "image.pdf")
}

// New implements the [qrimage.Backend] interface.
// An image which is still in progress is discarded.
func (b *Backend) New(size int, background qrimage.RGB) error {
	if size <= 0 {
		return fmt.Errorf("pdfpage: invalid image size %d", size)
	}
	b.Discard()
	b.log.Debug("new", "size", size, "background", background)

	dir, err := os.MkdirTemp(b.opts.TempDir, "qrimage-*")
	if err != nil {
		return err
	}
	b.dir = dir

	paper := &pdf.Rectangle{
		URx: float64(size),
		URy: float64(size),
	}
	page, err := document.CreateSinglePage(b.fileName(), paper, pdf.V1_7, nil)
	if err != nil {
		os.RemoveAll(dir)
		b.dir = ""
		return err
	}
	b.page = page
	b.size = size

	page.SetFillColor(deviceRGB(background))
	page.Rectangle(0, 0, float64(size), float64(size))
	page.Fill()

	// PDF origin is bottom-left; QR code coordinates assume top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(size)})

	b.ctm = matrix.Identity
	b.saved = b.saved[:0]
	return nil
}

// Scale implements the [qrimage.Backend] interface.
func (b *Backend) Scale(s float64) {
	b.log.Debug("scale", "scale", s)
	b.ctm = concat(b.ctm, matrix.Matrix{s, 0, 0, s, 0, 0})
}

// Translate implements the [qrimage.Backend] interface.
func (b *Backend) Translate(x, y float64) {
	b.log.Debug("translate", "translate", []float64{x, y})
	b.ctm = concat(b.ctm, matrix.Matrix{1, 0, 0, 1, x, y})
}

// Rotate implements the [qrimage.Backend] interface.
func (b *Backend) Rotate(degrees int) {
	b.log.Debug("rotate", "degrees", degrees)
	phi := float64(degrees) * math.Pi / 180
	sin, cos := math.Sincos(phi)
	b.ctm = concat(b.ctm, matrix.Matrix{cos, sin, -sin, cos, 0, 0})
}

// Push implements the [qrimage.Backend] interface.
func (b *Backend) Push() {
	b.saved = append(b.saved, b.ctm)
}

// Pop implements the [qrimage.Backend] interface.
// Unbalanced calls are ignored.
func (b *Backend) Pop() {
	if len(b.saved) == 0 {
		b.log.Debug("pop without push")
		return
	}
	b.ctm = b.saved[len(b.saved)-1]
	b.saved = b.saved[:len(b.saved)-1]
}

// concat returns the transformation which first applies t and then m.
func concat(m, t matrix.Matrix) matrix.Matrix {
	return matrix.Matrix{
		m[0]*t[0] + m[2]*t[1],
		m[1]*t[0] + m[3]*t[1],
		m[0]*t[2] + m[2]*t[3],
		m[1]*t[2] + m[3]*t[3],
		m[0]*t[4] + m[2]*t[5] + m[4],
		m[1]*t[4] + m[3]*t[5] + m[5],
	}
}

func (b *Backend) apply(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: b.ctm[0]*v.X + b.ctm[2]*v.Y + b.ctm[4],
		Y: b.ctm[1]*v.X + b.ctm[3]*v.Y + b.ctm[5],
	}
}

// DrawPathWithColor implements the [qrimage.Backend] interface.
// Subpaths are combined using the even-odd rule.
func (b *Backend) DrawPathWithColor(p qrimage.Path, c qrimage.RGB) error {
	if b.page == nil {
		return qrimage.ErrNoCanvas
	}
	if err := p.Validate(); err != nil {
		return err
	}
	b.log.Debug("draw", "ops", len(p), "color", c)

	b.page.SetFillColor(deviceRGB(c))
	open := false
	moveTo := func(v vec.Vec2) {
		v = b.apply(v)
		b.page.MoveTo(v.X, v.Y)
		open = true
	}
	lineTo := func(v vec.Vec2) {
		if !open {
			moveTo(v)
			return
		}
		v = b.apply(v)
		b.page.LineTo(v.X, v.Y)
	}
	for _, op := range p {
		switch op := op.(type) {
		case qrimage.Move:
			moveTo(op.P)
		case qrimage.Line:
			lineTo(op.P)
		case qrimage.Arc:
			lineTo(op.P)
		case qrimage.Curve:
			if !open {
				moveTo(op.C1)
			}
			c1, c2, end := b.apply(op.C1), b.apply(op.C2), b.apply(op.P)
			b.page.CurveTo(c1.X, c1.Y, c2.X, c2.Y, end.X, end.Y)
		case qrimage.Close:
			if open {
				b.page.ClosePath()
			}
		}
	}
	if open {
		b.page.FillEvenOdd()
	}
	return nil
}

// DrawPathWithGradient implements the [qrimage.Backend] interface.
// Gradients are not supported; the path is filled with the start color.
func (b *Backend) DrawPathWithGradient(p qrimage.Path, g qrimage.Gradient, x, y, width, height float64) error {
	b.log.Debug("gradient replaced by start color", "type", g.Type, "start", g.Start)
	return b.DrawPathWithColor(p, g.Start)
}

// Done implements the [qrimage.Backend] interface.
// The PDF file is finished and its contents are returned. The temporary
// file is removed on all paths.
func (b *Backend) Done(ctx context.Context) ([]byte, error) {
	if b.page == nil {
		return nil, qrimage.ErrNoCanvas
	}
	page := b.page
	b.page = nil
	defer b.removeTemp()

	err := page.Close()
	if err != nil {
		return nil, fmt.Errorf("pdfpage: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(b.fileName())
	if err != nil {
		return nil, err
	}
	b.log.Debug("done", "size", b.size, "bytes", len(data))
	return data, nil
}

// Discard abandons the image in progress and removes its temporary file.
func (b *Backend) Discard() {
	if b.page == nil {
		return
	}
	b.log.Debug("discarding unfinished page")
	b.page.Close()
	b.page = nil
	b.removeTemp()
}

func (b *Backend) removeTemp() {
	if b.dir == "" {
		return
	}
	if err := os.RemoveAll(b.dir); err != nil {
		b.log.Warn("cannot remove temporary directory", "dir", b.dir, "error", err)
	}
	b.dir = ""
}

func deviceRGB(c qrimage.RGB) color.Color {
	return color.DeviceRGB{float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255}
}
