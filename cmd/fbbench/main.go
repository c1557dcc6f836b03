package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/srlehn/fbtft/framebuffer"
	"github.com/srlehn/fbtft/internal/errors"
)

var rootCmd = &cobra.Command{
	Use:              filepath.Base(os.Args[0]),
	Short:            "fbbench show bitmaps on fbtft displays and measure the frame rate",
	Long:             "fbbench show bitmaps on fbtft displays and measure the frame rate",
	SilenceUsage:     true,
	TraverseChildren: true,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
		os.Exit(1)
	},
}

func init() {
	cobra.EnablePrefixMatching = true
	rootCmd.PersistentFlags().StringVarP(&deviceFlag, `device`, `D`, ``, `framebuffer device (default $FRAMEBUFFER, /dev/fb1, /dev/fb0)`)
	rootCmd.PersistentFlags().BoolVarP(&debugFlag, `debug`, `d`, false, `debug errors`)
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, `log-level`, `warn`, `log level (debug, info, warn, error)`)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var (
	deviceFlag   string
	debugFlag    bool
	logLevelFlag string
)

func run(fn func() error) {
	var err error
	if fn == nil {
		err = errors.NilParam()
	} else {
		err = fn()
	}
	if err == nil {
		return
	}
	if stackFramer, ok := err.(interface{ ErrorStack() string }); debugFlag && ok {
		fmt.Fprintln(os.Stderr, stackFramer.ErrorStack())
	} else {
		fmt.Fprintln(os.Stderr, err.Error())
	}
	os.Exit(1)
}

func newLogger() (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(logLevelFlag))); err != nil {
		return nil, errors.New(err)
	}
	if debugFlag {
		lvl = min(lvl, slog.LevelDebug)
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})), nil
}

// openSurface opens --device or probes the default devices.
func openSurface(logger *slog.Logger) (*framebuffer.Surface, error) {
	opts := framebuffer.Options{framebuffer.SetLogger(logger)}
	if len(deviceFlag) > 0 {
		return framebuffer.Open(deviceFlag, opts)
	}
	return framebuffer.Probe(nil, opts)
}
