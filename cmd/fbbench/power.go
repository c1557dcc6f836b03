package main

import (
	"github.com/spf13/cobra"

	"github.com/srlehn/fbtft/framebuffer"
)

func init() { rootCmd.AddCommand(powerCmd) }

var powerCmd = &cobra.Command{
	Use:       "power on|off|suspend",
	Short:     "switch the display power",
	Long:      `switch the display power through the blank attribute of the framebuffer`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{`on`, `off`, `suspend`},
	Run: func(cmd *cobra.Command, args []string) {
		run(func() error { return power(args[0]) })
	},
}

func power(modeStr string) error {
	mode, err := framebuffer.ParsePowerMode(modeStr)
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
	return surf.SetPowerMode(mode)
}
