// Package sysinfo gathers the facts pawfetch displays: distro, kernel,
// package count, CPU, GPU, memory and uptime.
//
// Raw facts come from a Querier. The Collector turns them into display-ready
// strings, substituting a fallback literal for the probes that are allowed to
// fail (GPU, distro, package managers) and returning an error for the rest.
package sysinfo

import (
	"context"
	"time"

	"pawfetch/errors"
	"pawfetch/logger"
)

// SystemInfo holds one display-ready string per probe.
type SystemInfo struct {
	// Username is the current user's login name
	Username string

	// Hostname is the computer's network name
	Hostname string

	// Distro is the cleaned os-release PRETTY_NAME
	Distro string

	// Kernel is the lowercased kernel release
	Kernel string

	// Packages is the summed count of installed packages
	Packages string

	// CPU is the shortened processor model
	CPU string

	// GPU is the shortened graphics adapter name
	GPU string

	// Memory shows used/total RAM in whole gigabytes
	Memory string

	// Uptime is the formatted time since boot
	Uptime string
}

// Collector runs probes against a Querier.
type Collector struct {
	q        Querier
	log      logger.Logger
	managers []PackageManager
	now      func() time.Time
}

// NewCollector creates a Collector summing DefaultPackageManagers.
func NewCollector(q Querier, log logger.Logger) *Collector {
	return &Collector{
		q:        q,
		log:      log,
		managers: DefaultPackageManagers,
		now:      time.Now,
	}
}

// WithPackageManagers replaces the package managers summed by Packages.
func (c *Collector) WithPackageManagers(managers ...PackageManager) *Collector {
	c.managers = managers
	return c
}

// Collect runs every probe in turn. Probes with a fallback never fail; the
// first error from any other probe aborts the collection.
func (c *Collector) Collect(ctx context.Context) (*SystemInfo, error) {
	info := &SystemInfo{}
	var err error

	if info.Username, err = c.Username(); err != nil {
		return nil, err
	}
	if info.Hostname, err = c.Hostname(); err != nil {
		return nil, err
	}
	if info.CPU, err = c.CPU(ctx); err != nil {
		return nil, err
	}
	if info.Memory, err = c.Memory(ctx); err != nil {
		return nil, err
	}
	info.GPU = c.GPU(ctx)
	info.Distro = c.Distro(ctx)
	if info.Kernel, err = c.Kernel(ctx); err != nil {
		return nil, err
	}
	info.Packages = c.Packages(ctx)
	if info.Uptime, err = c.Uptime(ctx); err != nil {
		return nil, err
	}

	return info, nil
}

// CPU returns the shortened CPU model.
func (c *Collector) CPU(ctx context.Context) (string, error) {
	model, err := c.q.CPUModel(ctx)
	if err != nil {
		return "", errors.Wrap(err, "Failed to read CPU model")
	}
	return FormatCPU(model), nil
}

// Memory returns "<used> gb / <total> gb".
func (c *Collector) Memory(ctx context.Context) (string, error) {
	total, available, err := c.q.Memory(ctx)
	if err != nil {
		return "", errors.Wrap(err, "Failed to read memory statistics")
	}
	return FormatMemory(total, available), nil
}

// GPU returns the shortened GPU name, or GPUFallback if it cannot be
// determined.
func (c *Collector) GPU(ctx context.Context) string {
	devices, err := c.q.DisplayDevices(ctx)
	if err != nil {
		c.log.Debug("gpu probe failed, using fallback", "err", err)
		return GPUFallback
	}
	name, err := ParseGPU(devices)
	if err != nil {
		c.log.Debug("gpu probe output not understood, using fallback", "err", err)
		return GPUFallback
	}
	return name
}

// Distro returns the cleaned distribution name, or DistroFallback.
func (c *Collector) Distro(ctx context.Context) string {
	name, err := c.q.PrettyName(ctx)
	if err != nil {
		c.log.Debug("distro probe failed, using fallback", "err", err)
		return DistroFallback
	}
	return FormatDistro(name)
}

// Kernel returns the lowercased kernel release.
func (c *Collector) Kernel(ctx context.Context) (string, error) {
	release, err := c.q.KernelRelease(ctx)
	if err != nil {
		return "", errors.Wrap(err, "Failed to read kernel release")
	}
	return FormatKernel(release), nil
}

// Packages returns the summed package count. A manager that fails
// contributes zero.
func (c *Collector) Packages(ctx context.Context) string {
	total := 0
	for _, m := range c.managers {
		n, err := c.q.PackageCount(ctx, m)
		if err != nil {
			c.log.Debug("package manager unavailable, counting as zero", "manager", m.Name, "err", err)
			continue
		}
		total += n
	}
	return FormatPackages(total)
}

// Uptime returns the time since boot.
func (c *Collector) Uptime(ctx context.Context) (string, error) {
	boot, err := c.q.BootTime(ctx)
	if err != nil {
		return "", errors.Wrap(err, "Failed to read boot time")
	}
	return FormatUptime(c.now().Sub(boot)), nil
}

// Username returns the current user's login name.
func (c *Collector) Username() (string, error) {
	name, err := c.q.Username()
	if err != nil {
		return "", errors.Wrap(err, "Failed to look up current user")
	}
	return name, nil
}

// Hostname returns the network node name.
func (c *Collector) Hostname() (string, error) {
	name, err := c.q.Hostname()
	if err != nil {
		return "", errors.Wrap(err, "Failed to look up hostname")
	}
	return name, nil
}
