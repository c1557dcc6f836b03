package framebuffer

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/srlehn/fbtft/internal/consts"
	"github.com/srlehn/fbtft/internal/errors"
	"github.com/srlehn/fbtft/internal/logx"
)

// PowerMode values are the ones the kernel's blank attribute takes.
type PowerMode int

const (
	PowerOn      PowerMode = 0
	PowerOff     PowerMode = 1
	PowerSuspend PowerMode = 4
)

func (m PowerMode) String() string {
	switch m {
	case PowerOn:
		return `on`
	case PowerOff:
		return `off`
	case PowerSuspend:
		return `suspend`
	}
	return `power mode ` + strconv.Itoa(int(m))
}

// ParsePowerMode accepts on, off and suspend.
func ParsePowerMode(s string) (PowerMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case `on`:
		return PowerOn, nil
	case `off`:
		return PowerOff, nil
	case `suspend`:
		return PowerSuspend, nil
	}
	return PowerOn, errors.Kind(consts.ErrInvalidArgument, `power mode "`+s+`"`, nil)
}

// fbtft SPI panels first, then the generic framebuffer class
func defaultPowerCtlPaths() []string {
	return []string{
		`/sys/bus/spi/devices/spi0.0/graphics/%s/blank`,
		`/sys/class/graphics/%s/blank`,
	}
}

// SetPowerMode writes mode to the first control file that can be opened.
func (s *Surface) SetPowerMode(mode PowerMode) error {
	if s == nil {
		return errors.NilReceiver()
	}
	switch mode {
	case PowerOn, PowerOff, PowerSuspend:
	default:
		return errors.Kind(consts.ErrInvalidArgument, mode.String(), nil)
	}
	if len(s.name) == 0 {
		return errors.Kind(consts.ErrDevice, `power control: surface without device name`, nil)
	}
	var tried []string
	for _, tmpl := range s.powerCtlPaths {
		ctlPath := tmpl
		if strings.Contains(tmpl, `%s`) {
			ctlPath = fmt.Sprintf(tmpl, s.name)
		}
		f, err := os.OpenFile(ctlPath, os.O_WRONLY, 0)
		if err != nil {
			tried = append(tried, ctlPath)
			continue
		}
		_, errWrite := f.WriteString(strconv.Itoa(int(mode)) + "\n")
		errClose := f.Close()
		if err := errors.Join(errWrite, errClose); err != nil {
			return errors.Kind(consts.ErrDevice, `power control `+ctlPath, err)
		}
		logx.Debug(`power mode set`, s, `mode`, mode.String(), `control`, ctlPath)
		return nil
	}
	return errors.Kind(consts.ErrDevice, `no power control file (tried `+strings.Join(tried, `, `)+`)`, nil)
}
