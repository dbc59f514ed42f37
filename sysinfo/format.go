// Package sysinfo - Parsing and formatting of raw probe output
package sysinfo

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Fallback literals shown when a guarded probe fails.
const (
	GPUFallback    = "gpu isn't supported :3"
	DistroFallback = "unsupported distro :3"
)

const gib = 1024 * 1024 * 1024

// ParseCPUModelLine returns the value part of an lscpu "Model name:" line.
//
// Example: ParseCPUModelLine("Model name:   AMD Ryzen 7 5800X") returns "AMD Ryzen 7 5800X"
func ParseCPUModelLine(line string) (string, error) {
	_, value, ok := strings.Cut(line, ":")
	if !ok {
		return "", fmt.Errorf("no ':' in cpu model line %q", line)
	}
	return strings.TrimSpace(value), nil
}

// FormatCPU shortens a CPU model name for display.
//
// The name is lowercased, cut at the frequency suffix (" @") and stripped of
// the " cpu" token and the vendor prefix.
//
// Example: FormatCPU("Intel(R) Core(TM) i7-8700K CPU @ 3.70GHz") returns "i7-8700k"
func FormatCPU(model string) string {
	name := strings.ToLower(strings.TrimSpace(model))
	name, _, _ = strings.Cut(name, " @")
	name = strings.ReplaceAll(name, " cpu", "")
	if strings.Contains(name, "amd") {
		return strings.TrimSpace(strings.ReplaceAll(name, "amd", ""))
	}
	name = strings.ReplaceAll(name, "intel(r) core(tm)", "")
	name = strings.ReplaceAll(name, "cpu @", "")
	return strings.TrimSpace(name)
}

// FormatMemory renders used/total physical memory in whole GiB, where used is
// total minus available.
//
// Rounding follows fmt's %.0f: to nearest, ties to even.
//
// Example: FormatMemory(16<<30, 16<<30) returns "0 gb / 16 gb"
func FormatMemory(total, available uint64) string {
	var used uint64
	if available < total {
		used = total - available
	}
	return fmt.Sprintf("%.0f gb / %.0f gb", float64(used)/gib, float64(total)/gib)
}

// ParseGPU extracts a GPU name from lspci display-device output.
//
// NVIDIA cards use the marketing name inside the first [...] pair; anything
// else uses the text after the last ':'. The "amd", "nvidia" and "geforce"
// vendor tokens are removed. An NVIDIA line without brackets is a parse error.
func ParseGPU(devices string) (string, error) {
	info := strings.ToLower(devices)

	var name string
	switch {
	case strings.Contains(info, "nvidia"):
		_, rest, ok := strings.Cut(info, "[")
		if !ok {
			return "", fmt.Errorf("no bracketed model name in %q", strings.TrimSpace(devices))
		}
		name, _, _ = strings.Cut(rest, "]")
		name = strings.TrimSpace(name)
	case strings.Contains(info, "amd"):
		name = strings.ReplaceAll(afterLastColon(info), "amd", "")
	default:
		name = afterLastColon(info)
	}

	name = strings.ReplaceAll(name, "nvidia", "")
	name = strings.ReplaceAll(name, "geforce", "")
	return strings.TrimSpace(name), nil
}

func afterLastColon(s string) string {
	if i := strings.LastIndex(s, ":"); i >= 0 {
		s = s[i+1:]
	}
	return strings.TrimSpace(s)
}

// FilterDisplayDevices keeps the lspci lines describing VGA, 3D or display
// controllers, matched case-insensitively.
func FilterDisplayDevices(lspci string) string {
	var b strings.Builder
	scanner := bufio.NewScanner(strings.NewReader(lspci))
	for scanner.Scan() {
		line := scanner.Text()
		lower := strings.ToLower(line)
		if strings.Contains(lower, "vga") || strings.Contains(lower, "3d") || strings.Contains(lower, "display") {
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// FormatDistro cleans an os-release PRETTY_NAME value.
//
// Example: FormatDistro(`"Arch Linux"`) returns "arch"
func FormatDistro(prettyName string) string {
	name := strings.Trim(strings.TrimSpace(prettyName), `"`)
	return strings.ReplaceAll(strings.ToLower(name), " linux", "")
}

// ParseDistroLine parses a raw PRETTY_NAME=... line from os-release.
//
// Example: ParseDistroLine(`PRETTY_NAME="Arch Linux"`) returns "arch"
func ParseDistroLine(line string) (string, error) {
	_, value, ok := strings.Cut(line, "=")
	if !ok {
		return "", fmt.Errorf("no '=' in os-release line %q", line)
	}
	return FormatDistro(value), nil
}

// FormatKernel lowercases a kernel release string.
func FormatKernel(release string) string {
	return strings.ToLower(release)
}

// CountLines counts newline-terminated and trailing unterminated lines,
// matching `wc -l` for well-formed command output.
func CountLines(out []byte) int {
	count := 0
	scanner := bufio.NewScanner(strings.NewReader(string(out)))
	for scanner.Scan() {
		count++
	}
	return count
}

// FormatPackages renders a package total.
func FormatPackages(total int) string {
	return strconv.Itoa(total)
}

// FormatUptime renders an uptime with whole days, hours and minutes, leaving
// out leading zero units.
//
// Example: FormatUptime(90061 * time.Second) returns "1d 1h 1m"
func FormatUptime(uptime time.Duration) string {
	secs := int64(uptime / time.Second)
	days := secs / 86400
	hours := secs % 86400 / 3600
	minutes := secs % 3600 / 60

	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh %dm", days, hours, minutes)
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	default:
		return fmt.Sprintf("%dm", minutes)
	}
}

// FormatTitle fills the {user} and {hostname} placeholders of a hostname
// format and lowercases the result.
//
// Example: FormatTitle("{user}@{hostname}", "Paw", "Box") returns "paw@box"
func FormatTitle(format, user, hostname string) string {
	r := strings.NewReplacer("{user}", user, "{hostname}", hostname)
	return strings.ToLower(r.Replace(format))
}
