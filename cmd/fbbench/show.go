package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/srlehn/fbtft"
	"github.com/srlehn/fbtft/bmp"
	"github.com/srlehn/fbtft/fit"
	"github.com/srlehn/fbtft/internal/logx"
	"github.com/srlehn/fbtft/resize/rdefault"
	"github.com/srlehn/fbtft/transform"
)

func init() {
	rootCmd.AddCommand(showCmd)
	addPresentationFlags(showCmd)
	showCmd.Flags().DurationVar(&holdFlag, `hold`, 0, `wait before exiting`)
}

var showCmd = &cobra.Command{
	Use:   showCmdStr + ` /path/to/image.bmp`,
	Short: "display a bitmap",
	Long:  `display a bitmap fitted to the display`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		run(func() error { return show(args[0]) })
	},
}

var showCmdStr = "show"

var holdFlag time.Duration

func presentation() (fbtft.Presentation, error) {
	var p fbtft.Presentation
	var err error
	if p.Fitter.Mode, err = fit.ParseMode(fitFlag); err != nil {
		return p, err
	}
	if p.Fitter.Resizer, err = rdefault.ByName(filterFlag); err != nil {
		return p, err
	}
	if p.Rotation, err = transform.ParseRotation(rotateFlag); err != nil {
		return p, err
	}
	if p.Mirror, err = transform.ParseMirror(mirrorFlag); err != nil {
		return p, err
	}
	return p, nil
}

func show(bmpFile string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}
	p, err := presentation()
	if err != nil {
		return err
	}
	img, err := bmp.DecodeFile(bmpFile)
	if err != nil {
		return err
	}
	surf, err := openSurface(logger)
	if err != nil {
		return err
	}
	defer surf.Close()
	err = logx.TimeIt(func() error { return p.Show(surf, img) }, `show `+bmpFile, surf)
	if err != nil {
		return err
	}
	if err := surf.Sync(); err != nil {
		return err
	}
	time.Sleep(holdFlag)
	return nil
}
