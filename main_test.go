package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pawfetch/config"
	"pawfetch/display"
	"pawfetch/errors"
	"pawfetch/sysinfo"
)

type stubQuerier struct {
	cpuErr     error
	devicesErr error
}

func (s *stubQuerier) CPUModel(ctx context.Context) (string, error) {
	return "Intel(R) Core(TM) i7-8700K CPU @ 3.70GHz", s.cpuErr
}
func (s *stubQuerier) Memory(ctx context.Context) (uint64, uint64, error) {
	return 16 << 30, 16 << 30, nil
}
func (s *stubQuerier) DisplayDevices(ctx context.Context) (string, error) {
	return "01:00.0 VGA compatible controller: NVIDIA Corporation [GeForce GTX 1080]\n", s.devicesErr
}
func (s *stubQuerier) PrettyName(ctx context.Context) (string, error) { return "Arch Linux", nil }
func (s *stubQuerier) KernelRelease(ctx context.Context) (string, error) {
	return "6.9.7-arch1-1", nil
}
func (s *stubQuerier) PackageCount(ctx context.Context, m sysinfo.PackageManager) (int, error) {
	if m.Name == "flatpak" {
		return 0, fmt.Errorf("flatpak: not found")
	}
	return 812, nil
}
func (s *stubQuerier) BootTime(ctx context.Context) (time.Time, error) {
	return time.Now().Add(-3661 * time.Second), nil
}
func (s *stubQuerier) Username() (string, error) { return "paw", nil }
func (s *stubQuerier) Hostname() (string, error) { return "burrow", nil }

func execute(t *testing.T, q sysinfo.Querier, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(q)
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func plainLines(out string) []string {
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(display.StripANSI(l), " ")
	}
	return lines
}

func TestRootCmd_FirstRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pawfetch", "config.paw")

	stdout, _, err := execute(t, &stubQuerier{}, "--config", path)
	require.NoError(t, err)

	_, err = os.Stat(path)
	require.NoError(t, err, "config should be created on first run")

	lines := plainLines(stdout)
	require.Len(t, lines, 11)
	assert.True(t, strings.HasSuffix(lines[0], "    🐾 paw@burrow 🐾"))
	assert.True(t, strings.HasSuffix(lines[1], "    os      arch"))
	assert.True(t, strings.HasSuffix(lines[2], "    krnl    6.9.7-arch1-1"))
	assert.True(t, strings.HasSuffix(lines[3], "    pkgs    812"))
	assert.True(t, strings.HasSuffix(lines[4], "    cpu     i7-8700k"))
	assert.True(t, strings.HasSuffix(lines[5], "    gpu     gtx 1080"))
	assert.True(t, strings.HasSuffix(lines[6], "    mem     0 gb / 16 gb"))
	assert.True(t, strings.HasSuffix(lines[7], "    up      1h 1m"))
}

func TestRootCmd_SecondRunUsesSavedConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.paw")
	custom := config.Defaults()
	custom[config.KeyHostnameFormat] = "{hostname} ~ {user}"
	require.NoError(t, config.Save(path, custom))

	stdout, _, err := execute(t, &stubQuerier{}, "--config", path)
	require.NoError(t, err)
	assert.Contains(t, plainLines(stdout)[0], "🐾 burrow ~ paw 🐾")
}

func TestRootCmd_ConfigFromEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "env.paw")
	t.Setenv("PAWFETCH_CONFIG", path)

	_, _, err := execute(t, &stubQuerier{})
	require.NoError(t, err)

	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestRootCmd_GPUFallback(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.paw")

	stdout, stderr, err := execute(t, &stubQuerier{devicesErr: fmt.Errorf("exit status 1")}, "--config", path, "--debug")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(plainLines(stdout)[5], "    gpu     gpu isn't supported :3"))
	assert.Contains(t, stderr, "gpu probe failed")
}

func TestRootCmd_VisibleWidthAlignsColumn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.paw")

	stdout, _, err := execute(t, &stubQuerier{}, "--config", path, "--visible-width")
	require.NoError(t, err)

	for _, line := range strings.Split(strings.TrimSuffix(stdout, "\n"), "\n") {
		plain := display.StripANSI(line)
		assert.Equal(t, " ", string([]rune(plain)[display.ColumnWidth]), "separator column in %q", plain)
	}
}

func TestRootCmd_RejectsArguments(t *testing.T) {
	_, _, err := execute(t, &stubQuerier{}, "extra")
	assert.Error(t, err)
}

func TestRootCmd_FatalErrorsPrintNothing(t *testing.T) {
	t.Run("probe failure", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.paw")
		stdout, _, err := execute(t, &stubQuerier{cpuErr: fmt.Errorf("lscpu: not found")}, "--config", path)
		require.Error(t, err)
		assert.True(t, errors.IsCode(err, errors.ErrProbe))
		assert.Empty(t, stdout)
	})

	t.Run("missing setting", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.paw")
		require.NoError(t, os.WriteFile(path, []byte("[settings]\ntitle_color = #ffffff\n"), 0o644))

		stdout, _, err := execute(t, &stubQuerier{}, "--config", path)
		require.Error(t, err)
		assert.True(t, errors.IsCode(err, errors.ErrConfig))
		assert.Empty(t, stdout)
	})

	t.Run("invalid color", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.paw")
		bad := config.Defaults()
		bad[config.KeyASCIIColor1] = "cyan"
		require.NoError(t, config.Save(path, bad))

		stdout, _, err := execute(t, &stubQuerier{}, "--config", path)
		require.Error(t, err)
		assert.True(t, errors.IsCode(err, errors.ErrRender))
		assert.Empty(t, stdout)
	})
}
