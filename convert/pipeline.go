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
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"syscall"

	"github.com/h2non/filetype"
	"golang.org/x/sync/errgroup"

	"seehuhn.de/go/qrimage"
)

// State is a stage of a single conversion run.
type State int

// These are the stages of a conversion run, in order.
const (
	Idle State = iota
	Spawned
	Writing
	Draining
	Exited
	Succeeded
	Failed
)

var stateNames = []string{
	Idle:      "idle",
	Spawned:   "spawned",
	Writing:   "writing",
	Draining:  "draining",
	Exited:    "exited",
	Succeeded: "succeeded",
	Failed:    "failed",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("State(%d)", int(s))
	}
	return stateNames[s]
}

// Pipeline runs the external converter.
//
// A Pipeline holds no per-run state: every call to Convert starts its own
// process, so that concurrent calls are safe.
type Pipeline struct {
	cfg  Config
	cmd  *Command
	path string   // resolved converter executable
	argv []string // argument vector, argv[0] is the configured tool
	log  *slog.Logger
}

// NewPipeline checks the configuration, locates the converter and builds
// its command line. If the converter cannot be found, the error wraps
// [ErrToolNotFound].
//
// If cfg is nil, [DefaultConfig] is used. If logger is nil,
// [qrimage.Logger] is used.
func NewPipeline(cfg *Config, logger *slog.Logger) (*Pipeline, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	path, err := exec.LookPath(cfg.Tool)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrToolNotFound, cfg.Tool, err)
	}

	cmd := BuildCommand(cfg)
	argv, err := cmd.Argv()
	if err != nil {
		return nil, err
	}

	log := qrimage.LoggerOr(logger)
	log.Debug("converter", "tool", path, "cmd", cmd.Line)

	return &Pipeline{
		cfg:  *cfg,
		cmd:  cmd,
		path: path,
		argv: argv,
		log:  log,
	}, nil
}

// Command returns the converter command.
func (p *Pipeline) Command() *Command {
	return p.cmd
}

// Convert feeds payload to the converter and returns the converted image.
//
// Standard output and standard error are drained concurrently while the
// payload is written. The result is either non-empty image data, or an
// error which is a [*ConversionError]. The process is reaped and all
// pipes are closed before Convert returns.
//
// A converter which exits with a non-zero status but produces output is
// considered successful; a warning is logged.
func (p *Pipeline) Convert(ctx context.Context, payload io.Reader) ([]byte, error) {
	if p.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.cfg.Timeout)
		defer cancel()
	}

	state := Idle
	setState := func(s State, args ...any) {
		p.log.Debug("state", append([]any{"from", state, "state", s}, args...)...)
		state = s
	}

	cmd := exec.CommandContext(ctx, p.path, p.argv[1:]...)
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, p.fail(setState, &ConversionError{ExitCode: -1, Err: err})
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		stdin.Close()
		return nil, p.fail(setState, &ConversionError{ExitCode: -1, Err: err})
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		stdin.Close()
		stdout.Close()
		return nil, p.fail(setState, &ConversionError{ExitCode: -1, Err: err})
	}
	if err := cmd.Start(); err != nil {
		// Start closes the pipes on failure
		return nil, p.fail(setState, &ConversionError{ExitCode: -1, Err: err})
	}
	setState(Spawned, "pid", cmd.Process.Pid, "cmd", p.cmd.Line)

	// Unblock the drains if the context ends while a grandchild process
	// still holds the pipes open.
	stop := context.AfterFunc(ctx, func() {
		stdout.Close()
		stderr.Close()
	})
	defer stop()

	var out, errOut bytes.Buffer
	var drains errgroup.Group
	drains.Go(func() error {
		if _, err := io.Copy(&out, stdout); err != nil {
			return fmt.Errorf("%w: reading output: %w", ErrStreamIO, err)
		}
		return nil
	})
	drains.Go(func() error {
		if _, err := io.Copy(&errOut, stderr); err != nil {
			return fmt.Errorf("%w: reading error stream: %w", ErrStreamIO, err)
		}
		return nil
	})

	setState(Writing)
	n, writeErr := io.Copy(stdin, payload)
	if err := stdin.Close(); writeErr == nil {
		writeErr = err
	}
	if writeErr != nil {
		writeErr = fmt.Errorf("%w: writing payload: %w", ErrStreamIO, writeErr)
	}

	setState(Draining, "written", n)
	drainErr := drains.Wait()
	waitErr := cmd.Wait()

	exitCode := -1
	if cmd.ProcessState != nil {
		exitCode = cmd.ProcessState.ExitCode()
	}
	setState(Exited, "exit", exitCode, "bytes", out.Len(), "stderr", errOut.Len())

	// A converter may stop reading once it has what it needs.
	if errors.Is(writeErr, syscall.EPIPE) && drainErr == nil && out.Len() > 0 {
		p.log.Warn("converter closed its input early",
			"written", n,
			"exit", exitCode)
		writeErr = nil
	}

	cause := errors.Join(ctx.Err(), drainErr, writeErr)
	if out.Len() == 0 || cause != nil {
		if cause == nil {
			cause = waitErr
		}
		return nil, p.fail(setState, &ConversionError{
			Stderr:   errOut.String(),
			ExitCode: exitCode,
			Err:      cause,
		})
	}

	if waitErr != nil {
		p.log.Warn("converter reported an error",
			"exit", exitCode,
			"error", waitErr,
			"stderr", errOut.String())
	}

	mime := "unknown"
	if kind, err := filetype.Match(out.Bytes()); err == nil && kind != filetype.Unknown {
		mime = kind.MIME.Value
	}
	setState(Succeeded, "bytes", out.Len(), "mime", mime)
	return out.Bytes(), nil
}

func (p *Pipeline) fail(setState func(State, ...any), err *ConversionError) error {
	setState(Failed, "exit", err.ExitCode, "error", err)
	return err
}
