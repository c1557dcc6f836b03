package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/srlehn/fbtft/bench"
	"github.com/srlehn/fbtft/framebuffer"
)

var (
	resultsStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color(`63`)).
			Padding(0, 1)
	titleStyle = lipgloss.NewStyle().Bold(true)
	keyStyle   = lipgloss.NewStyle().Width(14)
)

func renderResults(stats bench.Stats, device string, g framebuffer.Geometry) string {
	rows := [][2]string{
		{`Total Frames`, fmt.Sprintf(`%d`, stats.Frames)},
		{`Total Time`, fmt.Sprintf(`%.1f s`, stats.Elapsed().Seconds())},
		{`Average FPS`, fmt.Sprintf(`%.1f`, stats.AverageFPS)},
		{`Maximum FPS`, fmt.Sprintf(`%.1f`, stats.MaxFPS)},
		{`CPU`, fmt.Sprintf(`%.1f %%`, stats.CPUPercent)},
		{`Images`, fmt.Sprintf(`%d`, stats.Images)},
		{`Device`, device},
		{`Resolution`, fmt.Sprintf(`%dx%d`, g.Width, g.Height)},
	}
	lines := []string{titleStyle.Render(`FBTFT Benchmark Results`)}
	for _, row := range rows {
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, keyStyle.Render(row[0]), row[1]))
	}
	return resultsStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
