package main

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/srlehn/fbtft/internal/consts"
	"github.com/srlehn/fbtft/internal/errors"
	"github.com/srlehn/fbtft/internal/util"
	"github.com/srlehn/fbtft/rgb565"
)

func init() {
	rootCmd.AddCommand(clearCmd)
	clearCmd.Flags().StringVar(&colorFlag, `color`, `0x0000`, `packed 5-6-5 colour or name (`+strings.Join(util.MapsKeysSorted(colorNames), `, `)+`)`)
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "fill the display with one colour",
	Long:  `fill the display with one colour`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		run(clearSurface)
	},
}

var colorFlag string

var colorNames = map[string]rgb565.Color{
	`black`:   rgb565.Black,
	`white`:   rgb565.White,
	`red`:     rgb565.Red,
	`green`:   rgb565.Green,
	`blue`:    rgb565.Blue,
	`yellow`:  rgb565.Yellow,
	`cyan`:    rgb565.Cyan,
	`magenta`: rgb565.Magenta,
}

func parseColor(s string) (rgb565.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := colorNames[s]; ok {
		return c, nil
	}
	v, err := strconv.ParseUint(s, 0, 16)
	if err != nil {
		return 0, errors.Kind(consts.ErrInvalidArgument, `colour "`+s+`"`, err)
	}
	return rgb565.Color(v), nil
}

func clearSurface() error {
	c, err := parseColor(colorFlag)
	if err != nil {
		return err
	}
	logger, err := newLogger()
	if err != nil {
		return err
	}
	surf, err := openSurface(logger)
	if err != nil {
		return err
	}
	defer surf.Close()
	if err := surf.Clear(c); err != nil {
		return err
	}
	return surf.Sync()
}
