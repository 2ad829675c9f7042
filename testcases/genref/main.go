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

// Command genref generates reference images for the raster tests.
// It renders every test case through the external converter, and
// optionally through the raster backend for side-by-side comparison.
// Run it from the module root: the raster package tests compare against
// the files testdata/reference/<category>_<name>_raster.png.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/qrimage"
	"seehuhn.de/go/qrimage/convert"
	"seehuhn.de/go/qrimage/raster"
	"seehuhn.de/go/qrimage/testcases"
)

func main() {
	refDir := flag.String("o", "testdata/reference", "output directory")
	configFile := flag.String("config", "", "converter configuration (TOML)")
	withRaster := flag.Bool("raster", false, "also write the raster backend output")
	debug := flag.Bool("debug", false, "log converter runs to stderr")
	flag.Parse()

	if *debug {
		qrimage.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	cfg := convert.DefaultConfig()
	if *configFile != "" {
		var err error
		cfg, err = convert.LoadConfigFile(*configFile)
		if err != nil {
			panic(err)
		}
	}
	cfg.Format = "png"

	conv, err := convert.NewBackend(cfg, nil)
	if err != nil {
		panic(err)
	}
	ras := raster.NewBackend(nil)

	if err := os.MkdirAll(*refDir, 0755); err != nil {
		panic(err)
	}

	ctx := context.Background()
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name

			if err := render(ctx, tc, conv, filepath.Join(*refDir, name+".png")); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			if *withRaster {
				if err := render(ctx, tc, ras, filepath.Join(*refDir, name+"_raster.png")); err != nil {
					panic(fmt.Errorf("%s: %w", name, err))
				}
			}
		}
	}
}

func render(ctx context.Context, tc testcases.TestCase, b qrimage.Backend, fname string) error {
	data, err := tc.Doc.Replay(ctx, b)
	if err != nil {
		return err
	}
	return os.WriteFile(fname, data, 0644)
}
