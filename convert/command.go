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
	"fmt"
	"regexp"
	"strconv"

	"github.com/alessio/shellescape"
	"github.com/mattn/go-shellwords"
)

// params lists the optional converter parameters, in command line order.
var params = []string{"background", "alpha", "quality", "resize", "density"}

// placeholder matches a "{name}" placeholder in a command template.
var placeholder = regexp.MustCompile(`\{([^}]+)\}`)

// Command is a converter invocation.
type Command struct {
	// Template is the command line with "{name}" placeholders, for example
	// "{tool} -quality {quality} - {type}:-".
	Template string

	// Args holds the value for each placeholder.
	Args map[string]string

	// Line is the template with every placeholder replaced by its shell
	// escaped value.
	Line string
}

// BuildCommand constructs the converter command for cfg.
//
// Only the template text is taken verbatim; every configuration value is
// inserted through shell escaping, so that values cannot add arguments.
// The command reads the intermediate image from standard input and writes
// the converted image to standard output.
func BuildCommand(cfg *Config) *Command {
	args := map[string]string{
		"tool": cfg.Tool,
		"type": cfg.Format,
	}

	template := "{tool}"
	for _, name := range params {
		val, ok := cfg.param(name)
		if !ok {
			continue
		}
		template += " -" + name + " {" + name + "}"
		args[name] = val
	}
	template += " -"        // read from stdin
	template += " {type}:-" // write to stdout

	return &Command{
		Template: template,
		Args:     args,
		Line:     resolve(template, args),
	}
}

// param returns the value of the named optional parameter. The second
// return value is false if the parameter is not set.
func (c *Config) param(name string) (string, bool) {
	var s *string
	var n *int
	switch name {
	case "background":
		s = c.Background
	case "alpha":
		s = c.Alpha
	case "quality":
		n = c.Quality
	case "resize":
		n = c.Resize
	case "density":
		n = c.Density
	}
	switch {
	case s != nil:
		return *s, true
	case n != nil:
		return strconv.Itoa(*n), true
	default:
		return "", false
	}
}

// resolve replaces every placeholder in template by the escaped value
// from args. Placeholders without a value become an empty argument.
func resolve(template string, args map[string]string) string {
	return placeholder.ReplaceAllStringFunc(template, func(m string) string {
		name := placeholder.FindStringSubmatch(m)[1]
		return shellescape.Quote(args[name])
	})
}

// Argv splits the command line into the argument vector which is executed.
// No shell is involved.
func (c *Command) Argv() ([]string, error) {
	argv, err := shellwords.Parse(c.Line)
	if err != nil {
		return nil, fmt.Errorf("convert: parsing command %q: %w", c.Line, err)
	}
	if len(argv) == 0 {
		return nil, fmt.Errorf("convert: empty command %q", c.Line)
	}
	return argv, nil
}

func (c *Command) String() string {
	return c.Line
}
