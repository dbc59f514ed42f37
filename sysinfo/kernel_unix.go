//go:build unix

package sysinfo

import (
	"context"

	"golang.org/x/sys/unix"
)

// KernelRelease returns the release field of uname(2).
func (h *Host) KernelRelease(ctx context.Context) (string, error) {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return "", err
	}
	return unix.ByteSliceToString(uts.Release[:]), nil
}
