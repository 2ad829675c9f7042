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

package convert

import (
	"bytes"
	"context"
	"log/slog"

	"seehuhn.de/go/qrimage"
	"seehuhn.de/go/qrimage/pdfpage"
	"seehuhn.de/go/qrimage/svg"
)

// Options configure a [Backend].
type Options struct {
	// Logger receives debug records. If nil, [qrimage.Logger] is used.
	Logger *slog.Logger

	// TempDir is the directory for the temporary file of the PDF
	// intermediate. If empty, the system default is used.
	TempDir string
}

// Backend renders an intermediate vector image and runs it through the
// external converter.
type Backend struct {
	inner qrimage.Backend // produces the converter payload
	pipe  *Pipeline
	log   *slog.Logger
}

var (
	_ qrimage.Backend   = (*Backend)(nil)
	_ qrimage.Discarder = (*Backend)(nil)
)

// NewBackend returns a backend which uses the converter described by cfg.
// If cfg is nil, [DefaultConfig] is used. The converter is located before
// anything else is done, so that a missing tool is reported immediately.
func NewBackend(cfg *Config, opts *Options) (*Backend, error) {
	if opts == nil {
		opts = &Options{}
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}
	log := qrimage.LoggerOr(opts.Logger)

	pipe, err := NewPipeline(cfg, log)
	if err != nil {
		return nil, err
	}

	var inner qrimage.Backend
	switch cfg.Intermediate {
	case IntermediatePDF:
		inner = pdfpage.NewBackend(&pdfpage.Options{TempDir: opts.TempDir, Logger: log})
	default:
		inner = svg.NewBackend(&svg.Options{Logger: log})
	}

	return &Backend{
		inner: inner,
		pipe:  pipe,
		log:   log,
	}, nil
}

// Pipeline returns the conversion pipeline used by the backend.
func (b *Backend) Pipeline() *Pipeline {
	return b.pipe
}

// New implements the [qrimage.Backend] interface.
func (b *Backend) New(size int, background qrimage.RGB) error {
	return b.inner.New(size, background)
}

// Scale implements the [qrimage.Backend] interface.
func (b *Backend) Scale(s float64) {
	b.inner.Scale(s)
}

// Translate implements the [qrimage.Backend] interface.
func (b *Backend) Translate(x, y float64) {
	b.inner.Translate(x, y)
}

// Rotate implements the [qrimage.Backend] interface.
func (b *Backend) Rotate(degrees int) {
	b.inner.Rotate(degrees)
}

// Push implements the [qrimage.Backend] interface.
func (b *Backend) Push() {
	b.inner.Push()
}

// Pop implements the [qrimage.Backend] interface.
func (b *Backend) Pop() {
	b.inner.Pop()
}

// DrawPathWithColor implements the [qrimage.Backend] interface.
func (b *Backend) DrawPathWithColor(p qrimage.Path, c qrimage.RGB) error {
	return b.inner.DrawPathWithColor(p, c)
}

// DrawPathWithGradient implements the [qrimage.Backend] interface.
func (b *Backend) DrawPathWithGradient(p qrimage.Path, g qrimage.Gradient, x, y, width, height float64) error {
	return b.inner.DrawPathWithGradient(p, g, x, y, width, height)
}

// Done finishes the intermediate image and converts it.
// Conversion errors are returned as [*ConversionError].
func (b *Backend) Done(ctx context.Context) ([]byte, error) {
	payload, err := b.inner.Done(ctx)
	if err != nil {
		return nil, err
	}
	b.log.Debug("payload", "bytes", len(payload))
	return b.pipe.Convert(ctx, bytes.NewReader(payload))
}

// Discard abandons the intermediate image without running the converter.
func (b *Backend) Discard() {
	if dis, ok := b.inner.(qrimage.Discarder); ok {
		dis.Discard()
	}
}
