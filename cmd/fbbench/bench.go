package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/srlehn/fbtft/bench"
	"github.com/srlehn/fbtft/fit"
	"github.com/srlehn/fbtft/internal/consts"
	"github.com/srlehn/fbtft/internal/errors"
	"github.com/srlehn/fbtft/internal/linux"
	"github.com/srlehn/fbtft/resize/rdefault"
	"github.com/srlehn/fbtft/transform"
)

func init() {
	rootCmd.AddCommand(benchCmd)
	addPresentationFlags(benchCmd)
	benchCmd.Flags().DurationVar(&durationFlag, `duration`, bench.DefaultDuration, `run time, 0 until interrupted`)
	benchCmd.Flags().IntVar(&maxImagesFlag, `max-images`, bench.DefaultMaxImages, `number of images to cycle through`)
	benchCmd.Flags().Uint64Var(&overlayFlag, `overlay`, bench.DefaultOverlayInterval, `draw statistics every n frames, 0 never`)
}

var benchCmd = &cobra.Command{
	Use:   benchCmdStr + ` [dir]`,
	Short: "cycle the bitmaps of a directory as fast as possible",
	Long:  "cycle the *.bmp files of a directory (default: current directory) as fast as possible and report the frame rate",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		run(func() error { return runBench(args) })
	},
}

var benchCmdStr = "bench"

var (
	fitFlag       string
	rotateFlag    string
	mirrorFlag    string
	filterFlag    string
	durationFlag  time.Duration
	maxImagesFlag int
	overlayFlag   uint64
)

func addPresentationFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&fitFlag, `fit`, fit.ModeScale.String(), `fit mode (scale, stretch, auto)`)
	cmd.Flags().StringVar(&rotateFlag, `rotate`, `0`, `rotation in degrees (0, 90, 180, 270)`)
	cmd.Flags().StringVar(&mirrorFlag, `mirror`, transform.MirrorNone.String(), `mirror (none, horizontal, vertical, both)`)
	cmd.Flags().StringVar(&filterFlag, `filter`, ``, fmt.Sprintf(`resize filter %v`, rdefault.Names()))
}

func presentationOptions() (bench.Options, error) {
	mode, err := fit.ParseMode(fitFlag)
	if err != nil {
		return nil, err
	}
	rotation, err := transform.ParseRotation(rotateFlag)
	if err != nil {
		return nil, err
	}
	mirror, err := transform.ParseMirror(mirrorFlag)
	if err != nil {
		return nil, err
	}
	rsz, err := rdefault.ByName(filterFlag)
	if err != nil {
		return nil, err
	}
	return bench.Options{
		bench.SetFitMode(mode),
		bench.SetResizer(rsz),
		bench.SetTransform(rotation, mirror),
	}, nil
}

func runBench(args []string) error {
	dir := `.`
	if len(args) > 0 {
		dir = args[0]
	}
	images, err := bench.ScanDir(dir, maxImagesFlag)
	if err != nil {
		return err
	}
	if len(images) == 0 {
		return errors.Kind(consts.ErrInvalidArgument, `no *.bmp files in `+dir, nil)
	}
	logger, err := newLogger()
	if err != nil {
		return err
	}
	presOpts, err := presentationOptions()
	if err != nil {
		return err
	}
	cfg, err := bench.NewConfig(images,
		presOpts,
		bench.SetDuration(durationFlag),
		bench.SetOverlayInterval(overlayFlag),
		bench.SetLogger(logger),
	)
	if err != nil {
		return err
	}

	surf, err := openSurface(logger)
	if err != nil {
		return err
	}
	defer surf.Close()

	warnTextConsole(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	stats, err := bench.Run(ctx, surf, cfg)
	if err != nil {
		return err
	}
	fmt.Println(renderResults(stats, surf.Path(), surf.Geometry()))
	return nil
}

// warnTextConsole warns if the controlling console is in text mode,
// the kernel then draws console output over the primary framebuffer.
func warnTextConsole(logger *slog.Logger) {
	mode, isConsole, err := linux.KDGetMode(os.Stdin.Fd())
	if err != nil || !isConsole || !mode.TextMode() {
		return
	}
	logger.Warn(`console in text mode, its output may overwrite frames on /dev/fb0`, `mode`, mode.String())
}
