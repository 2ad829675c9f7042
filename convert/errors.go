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
	"errors"
	"fmt"
)

var (
	// ErrToolNotFound is returned when the converter executable cannot be
	// located. No process is started in this case.
	ErrToolNotFound = errors.New("convert: converter not found")

	// ErrConversionFailed matches every [*ConversionError].
	ErrConversionFailed = errors.New("convert: conversion failed")

	// ErrStreamIO indicates that reading from or writing to one of the
	// converter's streams failed. It is always wrapped inside a
	// [*ConversionError].
	ErrStreamIO = errors.New("convert: stream I/O failed")
)

// ConversionError is returned when the converter did not produce usable
// output.
type ConversionError struct {
	// Stderr is everything the converter wrote to its error stream.
	Stderr string

	// ExitCode is the exit status of the converter, or -1 if the process
	// did not exit normally.
	ExitCode int

	// Err is the underlying cause, if any.
	Err error
}

// Error returns the text written to the error stream. If the converter
// wrote nothing there, a generic message is returned.
func (e *ConversionError) Error() string {
	if e.Stderr != "" {
		return e.Stderr
	}
	if e.Err != nil {
		return fmt.Sprintf("convert: failed to write image: %v", e.Err)
	}
	return "convert: failed to write image"
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

// Is reports whether target is [ErrConversionFailed].
func (e *ConversionError) Is(target error) bool {
	return target == ErrConversionFailed
}

// ConfigError reports an invalid configuration value.
type ConfigError struct {
	Key    string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("convert: config key %q: %s", e.Key, e.Reason)
}
