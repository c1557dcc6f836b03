// Package bench measures how fast bitmaps can be decoded, fitted and
// presented on a display surface.
package bench

import (
	"context"
	"fmt"
	"image"
	"log/slog"
	"os"
	"path/filepath"
	"time"
	"unicode/utf8"

	"github.com/shirou/gopsutil/v3/process"

	"github.com/srlehn/fbtft/bmp"
	"github.com/srlehn/fbtft/framebuffer"
	"github.com/srlehn/fbtft/internal/consts"
	"github.com/srlehn/fbtft/internal/errors"
	"github.com/srlehn/fbtft/internal/logx"
	"github.com/srlehn/fbtft/overlay"
	"github.com/srlehn/fbtft/rgb565"
	"github.com/srlehn/fbtft/transform"
)

// Surface is the part of a framebuffer.Surface a run writes to.
type Surface interface {
	Geometry() framebuffer.Geometry
	Present(img *rgb565.Image) error
}

var _ Surface = (*framebuffer.Surface)(nil)

const (
	progressInterval = 1000
	lineHeight       = 16
)

type runner struct {
	cfg   *Config
	surf  Surface
	geom  framebuffer.Geometry
	frame *rgb565.Image
	stats Stats
}

// Run shows the configured images in turn until ctx is done, the
// duration has passed or MaxFrames frames were presented. Images that
// fail to load are replaced by an error frame. Cancellation ends the
// run without error, only a failing surface aborts it.
func Run(ctx context.Context, surf Surface, cfg *Config) (Stats, error) {
	if surf == nil || cfg == nil {
		return Stats{}, errors.NilParam()
	}
	if len(cfg.Images) == 0 {
		return Stats{}, errors.Kind(consts.ErrInvalidArgument, `no images to show`, nil)
	}
	g := surf.Geometry()
	if g.Width <= 0 || g.Height <= 0 {
		return Stats{}, errors.Kind(consts.ErrInvalidArgument, `surface without size`, nil)
	}
	r := &runner{cfg: cfg, surf: surf, geom: g, frame: rgb565.New(g.Width, g.Height)}
	r.stats.Images = len(cfg.Images)

	if err := r.splash(); err != nil {
		return r.stats, err
	}
	wait(ctx, cfg.Splash)

	cpu := newCPUMeter(cfg)
	logx.Info(`benchmark started`, cfg, `images`, len(cfg.Images), `geometry`, g,
		`fit`, cfg.Fitter.Mode.String(), `rotation`, cfg.Rotation.String(), `mirror`, cfg.Mirror.String())
	r.stats.Begin(time.Now())
	for i := 0; ; i = (i + 1) % len(cfg.Images) {
		if ctx.Err() != nil {
			logx.Info(`benchmark interrupted`, cfg)
			break
		}
		if cfg.MaxFrames > 0 && r.stats.Frames >= cfg.MaxFrames {
			break
		}
		if cfg.Duration > 0 && r.stats.Elapsed() >= cfg.Duration {
			break
		}
		if err := r.showFrame(cfg.Images[i]); err != nil {
			return r.stats, err
		}
		if r.stats.Frames%progressInterval == 0 {
			logx.Info(`benchmark progress`, cfg, `stats`, r.stats)
		}
	}
	r.stats.Finish(time.Now())
	if cpu != nil {
		if pct, err := cpu.Percent(0); !logx.IsErr(err, cfg, slog.LevelWarn) {
			r.stats.CPUPercent = pct
		}
	}
	logx.Info(`benchmark finished`, cfg, `stats`, r.stats)

	if err := r.results(); err != nil {
		return r.stats, err
	}
	wait(ctx, cfg.ResultsHold)
	return r.stats, nil
}

func (r *runner) showFrame(path string) error {
	if err := r.render(path); err != nil {
		logx.Warn(`image not shown`, r.cfg, `path`, path, `err`, err.Error())
		r.errorFrame(path)
	}
	r.stats.Update(time.Now())
	if n := r.cfg.OverlayInterval; n > 0 && r.stats.Frames%n == 0 {
		r.drawStats()
	}
	if err := r.surf.Present(r.frame); err != nil {
		return err
	}
	r.stats.Frames++
	return nil
}

// render decodes, fits and transforms path into the frame. With a
// quarter turn the image is fitted to the transposed surface so that
// the rotation yields the surface size.
func (r *runner) render(path string) error {
	src, err := bmp.DecodeFile(path)
	if err != nil {
		return err
	}
	w, h := r.geom.Width, r.geom.Height
	if r.cfg.Rotation.Swaps() {
		w, h = h, w
	}
	work := r.frame
	if w != r.geom.Width || h != r.geom.Height || r.cfg.Rotation != transform.Deg0 || r.cfg.Mirror != transform.MirrorNone {
		work = rgb565.New(w, h)
	}
	if err := r.cfg.Fitter.Fit(work, src); err != nil {
		return err
	}
	if work == r.frame {
		return nil
	}
	out, err := transform.Apply(work, r.cfg.Rotation, r.cfg.Mirror)
	if err != nil {
		return err
	}
	copy(r.frame.Pix, out.Pix)
	return nil
}

func (r *runner) errorFrame(path string) {
	r.frame.Fill(rgb565.White)
	overlay.DrawText(r.frame, image.Pt(10, 50), `Failed to load image`, rgb565.Red, rgb565.White)
	overlay.DrawText(r.frame, image.Pt(10, 50+lineHeight+4), shortName(path, maxNameLen), rgb565.Red, rgb565.White)
}

const maxNameLen = 31

// shortName returns the base name of path cut to at most n runes.
func shortName(path string, n int) string {
	name := filepath.Base(path)
	if utf8.RuneCountInString(name) <= n {
		return name
	}
	return string([]rune(name)[:n])
}

// drawStats puts the counters at the top left of portrait surfaces and
// as rotated labels along the right edge of landscape ones.
func (r *runner) drawStats() {
	s := r.stats
	elapsed := s.Elapsed()
	lines := []struct {
		text string
		fg   rgb565.Color
	}{
		{fmt.Sprintf(`FPS: %.1f`, s.CurrentFPS), rgb565.Red},
		{fmt.Sprintf(`MAX: %.1f`, s.MaxFPS), rgb565.Green},
		{fmt.Sprintf(`Frames: %d`, s.Frames), rgb565.Blue},
		{fmt.Sprintf(`Time: %d.%d s`, elapsed/time.Second, (elapsed%time.Second)/(100*time.Millisecond)), rgb565.Black},
	}
	w := r.geom.Width
	if w > r.geom.Height {
		x := w - 10
		for _, l := range lines {
			x -= overlay.Measure(l.text).Y + 2
			overlay.DrawTextRotated(r.frame, image.Pt(x, 10), l.text, l.fg, rgb565.White)
		}
		return
	}
	for i, l := range lines {
		overlay.DrawText(r.frame, image.Pt(10, 10+i*(lineHeight+2)), l.text, l.fg, rgb565.White)
	}
}

func (r *runner) splash() error {
	r.frame.Fill(rgb565.White)
	overlay.DrawText(r.frame, image.Pt(10, 10), `FBTFT LCD Benchmark`, rgb565.Black, rgb565.White)
	overlay.DrawText(r.frame, image.Pt(10, 10+lineHeight+4), `Starting...`, rgb565.Red, rgb565.White)
	return r.surf.Present(r.frame)
}

func (r *runner) results() error {
	s := r.stats
	r.frame.Fill(rgb565.White)
	lines := []struct {
		text string
		fg   rgb565.Color
	}{
		{`Benchmark Results`, rgb565.Black},
		{fmt.Sprintf(`Total Frames: %d`, s.Frames), rgb565.Blue},
		{fmt.Sprintf(`Time: %.1f sec`, s.Elapsed().Seconds()), rgb565.Blue},
		{fmt.Sprintf(`Avg FPS: %.1f`, s.AverageFPS), rgb565.Green},
		{fmt.Sprintf(`Max FPS: %.1f`, s.MaxFPS), rgb565.Red},
		{fmt.Sprintf(`Images: %d`, s.Images), rgb565.Black},
		{fmt.Sprintf(`CPU: %.1f %%`, s.CPUPercent), rgb565.Black},
	}
	y := 10
	for i, l := range lines {
		overlay.DrawText(r.frame, image.Pt(10, y), l.text, l.fg, rgb565.White)
		y += lineHeight + 4
		if i == 0 {
			y += lineHeight
		}
	}
	return r.surf.Present(r.frame)
}

func wait(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}

type cpuMeter interface {
	Percent(interval time.Duration) (float64, error)
}

// newCPUMeter primes the process CPU meter, later calls report the
// usage since the previous one.
func newCPUMeter(cfg *Config) cpuMeter {
	proc, err := process.NewProcess(int32(os.Getpid()))
	if logx.IsErr(err, cfg, slog.LevelWarn) {
		return nil
	}
	if _, err := proc.Percent(0); logx.IsErr(err, cfg, slog.LevelWarn) {
		return nil
	}
	return proc
}
