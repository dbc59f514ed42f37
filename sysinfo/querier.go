package sysinfo

import (
	"context"
	"time"
)

// Querier answers the individual questions pawfetch asks about the host.
// Each method returns raw data; parsing and formatting happen in the
// Collector so implementations can be swapped freely.
type Querier interface {
	// CPUModel returns the CPU model name as reported by the OS.
	CPUModel(ctx context.Context) (string, error)

	// Memory returns total and available physical memory in bytes.
	Memory(ctx context.Context) (total, available uint64, err error)

	// DisplayDevices returns the PCI device lines for display-class devices.
	DisplayDevices(ctx context.Context) (string, error)

	// PrettyName returns the PRETTY_NAME value of the OS release metadata.
	PrettyName(ctx context.Context) (string, error)

	// KernelRelease returns the kernel release string.
	KernelRelease(ctx context.Context) (string, error)

	// PackageCount returns the number of packages installed through m.
	PackageCount(ctx context.Context, m PackageManager) (int, error)

	// BootTime returns the time the system booted.
	BootTime(ctx context.Context) (time.Time, error)

	// Username returns the current user's login name.
	Username() (string, error)

	// Hostname returns the network node name.
	Hostname() (string, error)
}

// PackageManager describes a command whose output has one line per
// installed package.
type PackageManager struct {
	Name string
	Args []string
}

// DefaultPackageManagers are the managers summed into the package count.
var DefaultPackageManagers = []PackageManager{
	{Name: "pacman", Args: []string{"-Qq"}},
	{Name: "flatpak", Args: []string{"list", "--columns=application"}},
}
