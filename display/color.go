// Package display renders pawfetch output: 24-bit colored text spans, the
// info block, and the two-column layout that places it beside the art.
package display

import (
	"fmt"
	"regexp"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"

	"pawfetch/errors"
)

// ansiRegex matches ANSI SGR escape codes for removal/measurement purposes
var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// rgb is a termenv.Color emitting an exact 24-bit sequence.
type rgb struct {
	r, g, b uint8
}

func (c rgb) Sequence(bg bool) string {
	prefix := termenv.Foreground
	if bg {
		prefix = termenv.Background
	}
	return fmt.Sprintf("%s;2;%d;%d;%d", prefix, c.r, c.g, c.b)
}

// parseHex accepts exactly "#RRGGBB".
func parseHex(hex string) (rgb, error) {
	if len(hex) != 7 || hex[0] != '#' {
		return rgb{}, errors.New(errors.ErrRender,
			fmt.Sprintf("Invalid color %q", hex),
			"Colors must be written as #RRGGBB")
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return rgb{}, errors.WrapWithCode(err, errors.ErrRender,
			fmt.Sprintf("Invalid color %q", hex),
			"Colors must be written as #RRGGBB")
	}
	r, g, b := c.RGB255()
	return rgb{r, g, b}, nil
}

// Colorize wraps text in a 24-bit foreground escape sequence followed by a
// reset: "\x1b[38;2;R;G;Bm" + text + "\x1b[0m".
func Colorize(text, hex string) (string, error) {
	c, err := parseHex(hex)
	if err != nil {
		return "", err
	}
	return termenv.TrueColor.String(text).Foreground(c).String(), nil
}

// ColorizeArt colors each art line with colors[i%3].
func ColorizeArt(lines []string, colors [3]string) ([]string, error) {
	out := make([]string, len(lines))
	for i, line := range lines {
		colored, err := Colorize(line, colors[i%3])
		if err != nil {
			return nil, err
		}
		out[i] = colored
	}
	return out, nil
}

// StripANSI removes color escape sequences from s.
func StripANSI(s string) string {
	return ansiRegex.ReplaceAllString(s, "")
}
