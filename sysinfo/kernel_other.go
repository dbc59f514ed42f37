//go:build !unix

package sysinfo

import (
	"context"

	"github.com/shirou/gopsutil/v4/host"
)

// KernelRelease asks gopsutil for the kernel version where uname is unavailable.
func (h *Host) KernelRelease(ctx context.Context) (string, error) {
	return host.KernelVersionWithContext(ctx)
}
