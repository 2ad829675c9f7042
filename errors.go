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
	"fmt"
)

var (
	// ErrNoCanvas is returned by a backend which is used before New or
	// after Done.
	ErrNoCanvas = errors.New("qrimage: no image in progress")

	// ErrUnsupportedOp matches every [*UnsupportedOpError].
	ErrUnsupportedOp = errors.New("qrimage: unsupported path operation")
)

// UnsupportedOpError is returned when a path contains an operation which is
// not one of [Move], [Line], [Arc], [Curve] or [Close].
type UnsupportedOpError struct {
	Kind string
}

func (e *UnsupportedOpError) Error() string {
	return fmt.Sprintf("qrimage: unsupported path operation %q", e.Kind)
}

// Is reports whether target is [ErrUnsupportedOp].
func (e *UnsupportedOpError) Is(target error) bool {
	return target == ErrUnsupportedOp
}
