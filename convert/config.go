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
	"io"
	"time"

	"github.com/BurntSushi/toml"
)

// Intermediate formats which can be piped into the converter.
const (
	IntermediateSVG = "svg"
	IntermediatePDF = "pdf"
)

// Config describes how the converter is invoked.
//
// The optional parameters Background, Alpha, Quality, Resize and Density
// are only passed to the converter if they are non-nil. In a TOML file, an
// empty string or a zero removes a parameter.
type Config struct {
	// Tool is the name or path of the converter executable.
	Tool string `toml:"tool"`

	// Format is the output format token, for example "png" or "jpg".
	Format string `toml:"format"`

	// Intermediate selects the payload format fed to the converter:
	// [IntermediateSVG] or [IntermediatePDF].
	Intermediate string `toml:"intermediate"`

	Background *string `toml:"background"` // ImageMagick color, e.g. "white"
	Alpha      *string `toml:"alpha"`      // alpha channel handling mode
	Quality    *int    `toml:"quality"`    // 1-100
	Resize     *int    `toml:"resize"`     // 1-100, percent
	Density    *int    `toml:"density"`    // DPI, > 0

	// Timeout bounds a single conversion. Zero means no limit.
	Timeout time.Duration `toml:"timeout"`
}

// DefaultConfig returns the default configuration: ImageMagick's convert
// producing PNG from SVG, on a white background.
func DefaultConfig() *Config {
	return &Config{
		Tool:         "convert",
		Format:       "png",
		Intermediate: IntermediateSVG,
		Background:   ptr("white"),
		Alpha:        ptr("background"),
	}
}

func ptr[T any](v T) *T {
	return &v
}

// LoadConfig reads a TOML configuration from r. Keys which are missing in
// the input keep their default values. Unknown keys are an error.
func LoadConfig(r io.Reader) (*Config, error) {
	cfg := DefaultConfig()
	md, err := toml.NewDecoder(r).Decode(cfg)
	if err != nil {
		return nil, err
	}
	return cfg.finish(md)
}

// LoadConfigFile reads a TOML configuration file.
func LoadConfigFile(fname string) (*Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(fname, cfg)
	if err != nil {
		return nil, err
	}
	return cfg.finish(md)
}

func (c *Config) finish(md toml.MetaData) (*Config, error) {
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, &ConfigError{Key: undecoded[0].String(), Reason: "unknown key"}
	}

	if c.Background != nil && *c.Background == "" {
		c.Background = nil
	}
	if c.Alpha != nil && *c.Alpha == "" {
		c.Alpha = nil
	}
	for _, p := range []**int{&c.Quality, &c.Resize, &c.Density} {
		if *p != nil && **p == 0 {
			*p = nil
		}
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// WriteTo writes the configuration in TOML format.
func (c *Config) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	err := toml.NewEncoder(cw).Encode(c)
	return cw.n, err
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}

// Validate checks that all values are in range.
// The returned error is a [*ConfigError].
func (c *Config) Validate() error {
	if c.Tool == "" {
		return &ConfigError{Key: "tool", Reason: "must not be empty"}
	}
	if !isToken(c.Format) {
		return &ConfigError{Key: "format", Reason: "must be a non-empty alphanumeric token"}
	}
	switch c.Intermediate {
	case IntermediateSVG, IntermediatePDF:
		// pass
	default:
		return &ConfigError{Key: "intermediate", Reason: "must be \"svg\" or \"pdf\""}
	}
	if c.Background != nil && *c.Background == "" {
		return &ConfigError{Key: "background", Reason: "must not be empty"}
	}
	if c.Alpha != nil && *c.Alpha == "" {
		return &ConfigError{Key: "alpha", Reason: "must not be empty"}
	}
	if c.Quality != nil && (*c.Quality < 1 || *c.Quality > 100) {
		return &ConfigError{Key: "quality", Reason: "must be between 1 and 100"}
	}
	if c.Resize != nil && (*c.Resize < 1 || *c.Resize > 100) {
		return &ConfigError{Key: "resize", Reason: "must be between 1 and 100"}
	}
	if c.Density != nil && *c.Density <= 0 {
		return &ConfigError{Key: "density", Reason: "must be positive"}
	}
	if c.Timeout < 0 {
		return &ConfigError{Key: "timeout", Reason: "must not be negative"}
	}
	return nil
}

func isToken(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !('a' <= r && r <= 'z' || 'A' <= r && r <= 'Z' || '0' <= r && r <= '9') {
			return false
		}
	}
	return true
}
