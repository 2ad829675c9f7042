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
	"fmt"
	"io"
	"os"
	"strings"
	"testing"
	"time"
)

// helperEnv selects the behaviour of the test binary when it is started as
// a fake converter.
const helperEnv = "QRIMAGE_HELPER"

const helperStderr = "convert: no decode delegate for this image format `' @ error/constitute.c/ReadImage/746.\n"

func TestMain(m *testing.M) {
	if mode := os.Getenv(helperEnv); mode != "" {
		os.Exit(runHelper(mode))
	}
	os.Exit(m.Run())
}

// runHelper imitates a converter. The return value is the exit status.
func runHelper(mode string) int {
	switch mode {
	case "echo":
		io.Copy(os.Stdout, os.Stdin)
	case "stderr":
		// fail without reading the input
		fmt.Fprint(os.Stderr, helperStderr)
		return 1
	case "silent":
		io.Copy(io.Discard, os.Stdin)
	case "args":
		io.Copy(io.Discard, os.Stdin)
		fmt.Print(strings.Join(os.Args[1:], "\n"))
	case "flood":
		chunk := bytes.Repeat([]byte{'x'}, 1<<20)
		os.Stderr.Write(chunk)
		os.Stdout.Write(chunk)
		io.Copy(io.Discard, os.Stdin)
	case "sleep":
		time.Sleep(time.Minute)
	case "early":
		// answer without reading the input
		fmt.Print("data")
	case "partial":
		io.Copy(io.Discard, os.Stdin)
		fmt.Print("data")
		fmt.Fprint(os.Stderr, "warning")
		return 3
	default:
		fmt.Fprintf(os.Stderr, "unknown helper mode %q\n", mode)
		return 2
	}
	return 0
}

// helperConfig returns a configuration which runs the test binary in the
// given helper mode.
func helperConfig(t *testing.T, mode string) *Config {
	t.Helper()
	exe, err := os.Executable()
	if err != nil {
		t.Fatal(err)
	}
	t.Setenv(helperEnv, mode)

	cfg := DefaultConfig()
	cfg.Tool = exe
	return cfg
}
