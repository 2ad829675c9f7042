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
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigEmpty(t *testing.T) {
	cfg, err := LoadConfig(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfig(t *testing.T) {
	in := `
tool = "magick"
format = "jpg"
intermediate = "pdf"
quality = 85
density = 300
timeout = "5s"
`
	cfg, err := LoadConfig(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, "magick", cfg.Tool)
	assert.Equal(t, "jpg", cfg.Format)
	assert.Equal(t, IntermediatePDF, cfg.Intermediate)
	assert.Equal(t, ptr(85), cfg.Quality)
	assert.Equal(t, ptr(300), cfg.Density)
	assert.Nil(t, cfg.Resize)
	assert.Equal(t, 5*time.Second, cfg.Timeout)

	// unset keys keep their defaults
	assert.Equal(t, ptr("white"), cfg.Background)
}

func TestLoadConfigRemovesParameters(t *testing.T) {
	in := `
background = ""
alpha = ""
quality = 0
`
	cfg, err := LoadConfig(strings.NewReader(in))
	require.NoError(t, err)
	assert.Nil(t, cfg.Background)
	assert.Nil(t, cfg.Alpha)
	assert.Nil(t, cfg.Quality)
	assert.Equal(t, "convert - png:-", BuildCommand(cfg).Line)
}

func TestLoadConfigErrors(t *testing.T) {
	cases := []struct {
		in  string
		key string
	}{
		{`colour = "red"`, "colour"},
		{`quality = 200`, "quality"},
		{`resize = -5`, "resize"},
		{`density = -1`, "density"},
		{`format = "png -write x"`, "format"},
		{`intermediate = "eps"`, "intermediate"},
		{`tool = ""`, "tool"},
		{`timeout = "-1s"`, "timeout"},
	}
	for _, c := range cases {
		_, err := LoadConfig(strings.NewReader(c.in))
		var cfgErr *ConfigError
		if assert.ErrorAs(t, err, &cfgErr, c.in) {
			assert.Equal(t, c.key, cfgErr.Key, c.in)
		}
	}
}

func TestLoadConfigSyntax(t *testing.T) {
	_, err := LoadConfig(strings.NewReader(`quality = `))
	assert.Error(t, err)
}

func TestConfigWriteTo(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Quality = ptr(70)
	cfg.Timeout = 90 * time.Second

	buf := &bytes.Buffer{}
	n, err := cfg.WriteTo(buf)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)
	assert.Contains(t, buf.String(), `tool = "convert"`)
	assert.NotContains(t, buf.String(), "resize")

	fname := filepath.Join(t.TempDir(), "qrimage.toml")
	require.NoError(t, os.WriteFile(fname, buf.Bytes(), 0o644))
	back, err := LoadConfigFile(fname)
	require.NoError(t, err)
	assert.Equal(t, cfg, back)
}

func TestLoadConfigFileMissing(t *testing.T) {
	_, err := LoadConfigFile(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
