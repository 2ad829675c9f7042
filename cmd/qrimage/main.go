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

// Command qrimage renders a JSON drawing document to an image.
//
// Usage:
//
//	qrimage [-backend raster|convert] [-config file.toml] [-format png|bmp|tiff]
//	        [-o out] [-labels file.png] [-debug] [-timeout d] [doc.json]
//
// The document is read from standard input if no file is given, and the
// image is written to standard output if -o is not used.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image/png"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/h2non/filetype"

	"seehuhn.de/go/qrimage"
	"seehuhn.de/go/qrimage/convert"
	"seehuhn.de/go/qrimage/raster"
)

type cliOpts struct {
	backend    string
	configFile string
	format     string
	output     string
	labels     string
	debug      bool
	timeout    time.Duration
	input      string
}

func parseCLIOpts() *cliOpts {
	opt := &cliOpts{}
	flag.StringVar(&opt.backend, "backend", "raster", "rendering backend: raster or convert")
	flag.StringVar(&opt.configFile, "config", "", "converter configuration file (TOML)")
	flag.StringVar(&opt.format, "format", "", "output format (default png)")
	flag.StringVar(&opt.output, "o", "", "output file (default stdout)")
	flag.StringVar(&opt.labels, "labels", "", "write the labelled debug image to this PNG file (raster only)")
	flag.BoolVar(&opt.debug, "debug", false, "write debug logs to stderr")
	flag.DurationVar(&opt.timeout, "timeout", 0, "limit for rendering and conversion (0 means none)")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [options] [doc.json]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	switch flag.NArg() {
	case 0:
		// read from stdin
	case 1:
		opt.input = flag.Arg(0)
	default:
		flag.Usage()
		os.Exit(2)
	}
	return opt
}

func main() {
	opt := parseCLIOpts()

	if opt.debug {
		qrimage.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if err := run(opt); err != nil {
		fmt.Fprintln(os.Stderr, "qrimage:", err)
		var convErr *convert.ConversionError
		if errors.As(err, &convErr) && convErr.ExitCode > 0 {
			os.Exit(convErr.ExitCode)
		}
		os.Exit(1)
	}
}

func run(opt *cliOpts) error {
	doc, err := readDocument(opt.input)
	if err != nil {
		return err
	}

	ctx := context.Background()
	if opt.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opt.timeout)
		defer cancel()
	}

	var data []byte
	switch opt.backend {
	case "raster":
		data, err = renderRaster(ctx, doc, opt)
	case "convert":
		data, err = renderConvert(ctx, doc, opt)
	default:
		return fmt.Errorf("unknown backend %q", opt.backend)
	}
	if err != nil {
		return err
	}

	log := qrimage.Logger()
	if log.Enabled(ctx, slog.LevelDebug) {
		kind, _ := filetype.Match(data)
		log.Debug("output", "bytes", len(data), "mime", kind.MIME.Value)
	}

	if opt.output == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(opt.output, data, 0644)
}

func readDocument(fname string) (*qrimage.Document, error) {
	var r io.Reader = os.Stdin
	if fname != "" {
		f, err := os.Open(fname)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	return qrimage.ReadDocument(r)
}

func renderRaster(ctx context.Context, doc *qrimage.Document, opt *cliOpts) ([]byte, error) {
	rOpts := &raster.Options{Labels: opt.labels != ""}
	if opt.format != "" {
		f, err := raster.ParseFormat(opt.format)
		if err != nil {
			return nil, err
		}
		rOpts.Format = f
	}

	b := raster.NewBackend(rOpts)
	data, err := doc.Replay(ctx, b)
	if err != nil {
		return nil, err
	}

	if opt.labels != "" {
		if err := writePNG(opt.labels, b); err != nil {
			return nil, err
		}
	}
	return data, nil
}

func writePNG(fname string, b *raster.Backend) error {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	err = png.Encode(f, b.DebugImage())
	if err2 := f.Close(); err == nil {
		err = err2
	}
	return err
}

func renderConvert(ctx context.Context, doc *qrimage.Document, opt *cliOpts) ([]byte, error) {
	cfg := convert.DefaultConfig()
	if opt.configFile != "" {
		var err error
		cfg, err = convert.LoadConfigFile(opt.configFile)
		if err != nil {
			return nil, err
		}
	}
	if opt.format != "" {
		cfg.Format = opt.format
	}
	if opt.timeout > 0 {
		cfg.Timeout = opt.timeout
	}
	if opt.labels != "" {
		return nil, errors.New("-labels needs the raster backend")
	}

	b, err := convert.NewBackend(cfg, nil)
	if err != nil {
		return nil, err
	}
	return doc.Replay(ctx, b)
}
