package sysinfo

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedHost returns a Host whose commands answer from outputs, keyed by
// the full command line. Unknown commands fail.
func scriptedHost(outputs map[string]string) *Host {
	return &Host{
		run: func(ctx context.Context, name string, args ...string) ([]byte, error) {
			cmd := strings.Join(append([]string{name}, args...), " ")
			out, ok := outputs[cmd]
			if !ok {
				return nil, fmt.Errorf("exec: %q: executable file not found in $PATH", name)
			}
			return []byte(out), nil
		},
	}
}

const lscpuOutput = `Architecture:                       x86_64
CPU op-mode(s):                     32-bit, 64-bit
Vendor ID:                          GenuineIntel
Model name:                         Intel(R) Core(TM) i7-8700K CPU @ 3.70GHz
CPU family:                         6
`

func TestHost_CPUModel(t *testing.T) {
	h := scriptedHost(map[string]string{"lscpu": lscpuOutput})

	got, err := h.CPUModel(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Intel(R) Core(TM) i7-8700K CPU @ 3.70GHz", got)
	assert.Equal(t, "i7-8700k", FormatCPU(got))
}

func TestHost_DisplayDevices(t *testing.T) {
	h := scriptedHost(map[string]string{
		"lspci": "00:00.0 Host bridge: Intel Corporation 8th Gen Core\n" +
			"01:00.0 VGA compatible controller: NVIDIA Corporation TU106 [GeForce RTX 2060] (rev a1)\n",
	})

	got, err := h.DisplayDevices(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "01:00.0 VGA compatible controller: NVIDIA Corporation TU106 [GeForce RTX 2060] (rev a1)\n", got)
}

func TestHost_DisplayDevicesErrors(t *testing.T) {
	t.Run("lspci missing", func(t *testing.T) {
		_, err := scriptedHost(nil).DisplayDevices(context.Background())
		assert.Error(t, err)
	})

	t.Run("no display devices", func(t *testing.T) {
		h := scriptedHost(map[string]string{"lspci": "00:00.0 Host bridge: Intel Corporation Device\n"})
		_, err := h.DisplayDevices(context.Background())
		assert.Error(t, err)
	})
}

func TestHost_PackageCount(t *testing.T) {
	h := scriptedHost(map[string]string{
		"pacman -Qq":                        "base\nbash\ncoreutils\n",
		"flatpak list --columns=application": "org.mozilla.firefox\n",
	})

	n, err := h.PackageCount(context.Background(), DefaultPackageManagers[0])
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	n, err = h.PackageCount(context.Background(), DefaultPackageManagers[1])
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = h.PackageCount(context.Background(), PackageManager{Name: "dpkg-query", Args: []string{"-f", ".\n", "-W"}})
	assert.Error(t, err)
}

func TestHost_PrettyName(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "os-release")
	content := "NAME=\"Arch Linux\"\nPRETTY_NAME=\"Arch Linux\"\nID=arch\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	h := &Host{OSReleasePath: path}
	got, err := h.PrettyName(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "arch", FormatDistro(got))
}

func TestHost_PrettyNameErrors(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		h := &Host{OSReleasePath: filepath.Join(dir, "absent")}
		_, err := h.PrettyName(context.Background())
		assert.Error(t, err)
	})

	t.Run("missing key", func(t *testing.T) {
		path := filepath.Join(dir, "os-release")
		require.NoError(t, os.WriteFile(path, []byte("NAME=Gentoo\nID=gentoo\n"), 0o644))

		h := &Host{OSReleasePath: path}
		_, err := h.PrettyName(context.Background())
		assert.Error(t, err)
	})
}

func TestHost_KernelRelease(t *testing.T) {
	got, err := NewHost().KernelRelease(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, got)
}
