package sysinfo

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/exec"
	"os/user"
	"strings"
	"time"

	"github.com/acobaugh/osrelease"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
)

// DefaultOSReleasePath is where the OS release metadata is read from.
const DefaultOSReleasePath = "/etc/os-release"

// Host is the Querier for the machine pawfetch runs on. It scrapes lscpu,
// lspci and package manager output, reads os-release, and asks gopsutil for
// memory and boot time.
type Host struct {
	// OSReleasePath overrides DefaultOSReleasePath when set.
	OSReleasePath string

	// run executes a command and returns its stdout.
	run func(ctx context.Context, name string, args ...string) ([]byte, error)
}

// NewHost returns a Host that runs real commands.
func NewHost() *Host {
	return &Host{
		OSReleasePath: DefaultOSReleasePath,
		run:           runCommand,
	}
}

// runCommand runs name with args and returns raw stdout bytes.
func runCommand(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

// CPUModel reads the first "Model name:" line of lscpu. When lscpu is not
// usable it falls back to gopsutil's cpu.Info.
func (h *Host) CPUModel(ctx context.Context) (string, error) {
	out, err := h.run(ctx, "lscpu")
	if err == nil {
		scanner := bufio.NewScanner(strings.NewReader(string(out)))
		for scanner.Scan() {
			if line := scanner.Text(); strings.Contains(line, "Model name:") {
				return ParseCPUModelLine(line)
			}
		}
		err = fmt.Errorf("lscpu reported no model name")
	}

	infos, cerr := cpu.InfoWithContext(ctx)
	if cerr != nil || len(infos) == 0 || infos[0].ModelName == "" {
		return "", fmt.Errorf("lscpu: %w", err)
	}
	return infos[0].ModelName, nil
}

// Memory returns total and available physical memory.
func (h *Host) Memory(ctx context.Context) (uint64, uint64, error) {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return 0, 0, err
	}
	return vm.Total, vm.Available, nil
}

// DisplayDevices lists the lspci lines for VGA, 3D and display controllers.
// No matching device is an error.
func (h *Host) DisplayDevices(ctx context.Context) (string, error) {
	out, err := h.run(ctx, "lspci")
	if err != nil {
		return "", fmt.Errorf("lspci: %w", err)
	}
	devices := FilterDisplayDevices(string(out))
	if devices == "" {
		return "", fmt.Errorf("lspci reported no display devices")
	}
	return devices, nil
}

// PrettyName returns PRETTY_NAME from the os-release file.
func (h *Host) PrettyName(ctx context.Context) (string, error) {
	path := h.OSReleasePath
	if path == "" {
		path = DefaultOSReleasePath
	}
	release, err := osrelease.ReadFile(path)
	if err != nil {
		return "", err
	}
	name, ok := release["PRETTY_NAME"]
	if !ok {
		return "", fmt.Errorf("%s has no PRETTY_NAME", path)
	}
	return name, nil
}

// PackageCount runs the manager's listing command and counts its lines.
func (h *Host) PackageCount(ctx context.Context, m PackageManager) (int, error) {
	out, err := h.run(ctx, m.Name, m.Args...)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", m.Name, err)
	}
	return CountLines(out), nil
}

// BootTime returns the boot timestamp reported by the kernel.
func (h *Host) BootTime(ctx context.Context) (time.Time, error) {
	secs, err := host.BootTimeWithContext(ctx)
	if err != nil {
		return time.Time{}, err
	}
	return time.Unix(int64(secs), 0), nil
}

// Username returns the login name of the current user.
func (h *Host) Username() (string, error) {
	u, err := user.Current()
	if err != nil {
		return "", err
	}
	return u.Username, nil
}

// Hostname returns the network node name.
func (h *Host) Hostname() (string, error) {
	return os.Hostname()
}
