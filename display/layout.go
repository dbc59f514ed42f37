package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"pawfetch/config"
	"pawfetch/sysinfo"
)

// ColumnWidth is the width the art column is padded to.
const ColumnWidth = 45

// indent prefixes every info line.
const indent = "    "

// labelWidth is the raw width of a label plus the spaces after it.
const labelWidth = 8

// PadMode selects how the art column width is measured.
type PadMode int

const (
	// PadRaw counts every code point of the colored string, escape sequences
	// included. Lines whose escape sequences differ in length end up
	// misaligned; this matches the historical output.
	PadRaw PadMode = iota

	// PadVisible counts terminal cells of the string with escape sequences
	// removed.
	PadVisible
)

// field is one labeled row of the info block.
type field struct {
	label string
	value string
}

func fields(info *sysinfo.SystemInfo) []field {
	return []field{
		{"os", info.Distro},
		{"krnl", info.Kernel},
		{"pkgs", info.Packages},
		{"cpu", info.CPU},
		{"gpu", info.GPU},
		{"mem", info.Memory},
		{"up", info.Uptime},
	}
}

// InfoBlock builds the colored info lines: a title framed by paw emoji, one
// line per metric, and a trailing indent-only line.
func InfoBlock(info *sysinfo.SystemInfo, p config.Palette) ([]string, error) {
	title := sysinfo.FormatTitle(p.HostnameFormat, info.Username, info.Hostname)
	coloredTitle, err := Colorize(title, p.Title)
	if err != nil {
		return nil, err
	}

	lines := []string{indent + "🐾 " + coloredTitle + " 🐾"}
	for _, f := range fields(info) {
		label, err := Colorize(f.label, p.Info)
		if err != nil {
			return nil, err
		}
		value, err := Colorize(f.value, p.InfoSub)
		if err != nil {
			return nil, err
		}
		gap := strings.Repeat(" ", labelWidth-len(f.label))
		lines = append(lines, indent+label+gap+value)
	}
	return append(lines, indent), nil
}

// Compose zips left and right into rows, extending the shorter side with
// empty strings. Each row is left padded to width, one space, then right.
func Compose(left, right []string, width int, mode PadMode) []string {
	n := len(left)
	if len(right) > n {
		n = len(right)
	}

	rows := make([]string, n)
	for i := 0; i < n; i++ {
		var l, r string
		if i < len(left) {
			l = left[i]
		}
		if i < len(right) {
			r = right[i]
		}
		rows[i] = pad(l, width, mode) + " " + r
	}
	return rows
}

func pad(s string, width int, mode PadMode) string {
	if mode == PadVisible {
		if n := width - VisibleWidth(s); n > 0 {
			return s + strings.Repeat(" ", n)
		}
		return s
	}
	// fmt measures string width in runes.
	return fmt.Sprintf("%-*s", width, s)
}

// VisibleWidth calculates the visible width of a string excluding ANSI escape codes.
func VisibleWidth(s string) int {
	return runewidth.StringWidth(StripANSI(s))
}

// Render writes each row followed by a newline.
func Render(w io.Writer, rows []string) error {
	for _, row := range rows {
		if _, err := fmt.Fprintln(w, row); err != nil {
			return err
		}
	}
	return nil
}
