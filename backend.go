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

import "context"

// Backend is a drawing target for QR code paths.
//
// A Backend is used for one image at a time: New starts an image and Done
// finishes it. Backends are not safe for concurrent use.
type Backend interface {
	// New starts a new size×size image filled with the background color.
	New(size int, background RGB) error

	// Scale sets the scale factor which is applied to all following
	// coordinates.
	Scale(s float64)

	// Translate sets the offset which is added to all following
	// coordinates, before scaling.
	Translate(x, y float64)

	// Rotate rotates the drawing by the given angle.
	// Backends may ignore this.
	Rotate(degrees int)

	// Push saves the current transformation.
	// Backends may ignore this.
	Push()

	// Pop restores the transformation saved by the matching Push.
	// Backends may ignore this.
	Pop()

	// DrawPathWithColor fills the closed subpaths of p with color c.
	DrawPathWithColor(p Path, c RGB) error

	// DrawPathWithGradient fills the closed subpaths of p with a gradient
	// spanning the given box.
	DrawPathWithGradient(p Path, g Gradient, x, y, width, height float64) error

	// Done finishes the image and returns the encoded bytes.
	// After Done, the backend needs a new call to New before it can draw
	// again.
	Done(ctx context.Context) ([]byte, error)
}

// Discarder is implemented by backends which can abandon an image in
// progress. Discard releases the image without producing output; it does
// nothing if no image is in progress.
type Discarder interface {
	Discard()
}
