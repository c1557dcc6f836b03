package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() { rootCmd.AddCommand(infoCmd) }

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "print the display geometry",
	Long:  `print the geometry and screen information reported by the framebuffer device`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		run(info)
	},
}

func info() error {
	logger, err := newLogger()
	if err != nil {
		return err
	}
	surf, err := openSurface(logger)
	if err != nil {
		return err
	}
	defer surf.Close()
	i := surf.Info()
	g := i.Geometry
	fmt.Printf("device:     %s\n", i.Path)
	fmt.Printf("driver:     %s\n", i.Fix.Name())
	fmt.Printf("resolution: %dx%d, %d bpp\n", g.Width, g.Height, g.BitsPerPixel)
	fmt.Printf("virtual:    %dx%d\n", i.Var.XResVirtual, i.Var.YResVirtual)
	fmt.Printf("stride:     %d pixels (%d bytes)\n", g.Stride, i.Fix.LineLength)
	fmt.Printf("memory:     %d bytes\n", g.MemLen)
	fmt.Printf("red:        offset %d length %d\n", i.Var.Red.Offset, i.Var.Red.Length)
	fmt.Printf("green:      offset %d length %d\n", i.Var.Green.Offset, i.Var.Green.Length)
	fmt.Printf("blue:       offset %d length %d\n", i.Var.Blue.Offset, i.Var.Blue.Length)
	fmt.Printf("size:       %dx%d mm\n", i.Var.Width, i.Var.Height)
	return nil
}
