// Package main provides the pawfetch command-line tool for displaying system
// information next to a colored paw.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"pawfetch/ascii"
	"pawfetch/config"
	"pawfetch/display"
	"pawfetch/logger"
	"pawfetch/sysinfo"
)

// options are the resolved flag/environment values for one run.
type options struct {
	configPath   string
	debug        bool
	visibleWidth bool
}

func main() {
	if err := newRootCmd(sysinfo.NewHost()).ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, display.FormatError(err))
		os.Exit(1)
	}
}

// newRootCmd builds the pawfetch command. Flags can also be set through
// PAWFETCH_* environment variables.
func newRootCmd(q sysinfo.Querier) *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "pawfetch",
		Short: "Show system information next to a colored paw",
		Long: `pawfetch prints distro, kernel, package count, CPU, GPU, memory and
uptime beside a paw drawn in braille characters.

Colors and the title format are read from ~/.config/pawfetch/config.paw,
which is created with defaults on first run.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := options{
				configPath:   v.GetString("config"),
				debug:        v.GetBool("debug"),
				visibleWidth: v.GetBool("visible-width"),
			}
			return run(cmd.Context(), opts, q, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	flags := cmd.Flags()
	flags.String("config", "", "config file (default ~/.config/pawfetch/config.paw)")
	flags.Bool("debug", false, "log probe failures and config handling to stderr")
	flags.Bool("visible-width", false, "pad the art column by visible width instead of raw length")

	v.SetEnvPrefix("PAWFETCH")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	_ = v.BindPFlags(flags)

	return cmd
}

// run loads the settings, collects system information and prints the
// two-column layout to stdout.
func run(ctx context.Context, opts options, q sysinfo.Querier, stdout, stderr io.Writer) error {
	log := logger.New(stderr, opts.debug)

	path := opts.configPath
	if path == "" {
		var err error
		if path, err = config.DefaultPath(); err != nil {
			return err
		}
	}

	settings, err := config.Load(path, log)
	if err != nil {
		return err
	}
	palette, err := settings.Palette()
	if err != nil {
		return err
	}

	art, err := display.ColorizeArt(ascii.Paw(), palette.Art)
	if err != nil {
		return err
	}

	info, err := sysinfo.NewCollector(q, log).Collect(ctx)
	if err != nil {
		return err
	}

	block, err := display.InfoBlock(info, palette)
	if err != nil {
		return err
	}

	mode := display.PadRaw
	if opts.visibleWidth {
		mode = display.PadVisible
	}
	return display.Render(stdout, display.Compose(art, block, display.ColumnWidth, mode))
}
