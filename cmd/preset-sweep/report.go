package main

import (
	"fmt"
	"strings"
	"time"

	"hexflake/internal/engine"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	nameStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("213")).Width(22)
	cellStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Width(12).Align(lipgloss.Right)
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	boxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
)

type statsRow struct {
	generations  uint64
	crystalCells int
	extent       int
	vapour       float64
	boundary     float64
	crystal      float64
}

func newStatsRow(s *engine.Session) statsRow {
	st := s.Stats()
	return statsRow{
		generations:  s.Frame(),
		crystalCells: st.CrystalCells,
		extent:       st.Extent,
		vapour:       st.VapourMass,
		boundary:     st.BoundaryMass,
		crystal:      st.CrystalMass,
	}
}

func renderReport(results []result, elapsed time.Duration) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("Preset sweep (%d presets, %s)", len(results), elapsed.Round(time.Millisecond))))
	b.WriteString("\n")

	head := []string{nameStyle.Render("preset")}
	for _, h := range []string{"size", "gens", "crystal", "extent", "vapour", "boundary", "ice", "time"} {
		head = append(head, cellStyle.Render(h))
	}
	rows := []string{labelStyle.Render(lipgloss.JoinHorizontal(lipgloss.Top, head...))}
	for _, r := range results {
		cells := []string{
			nameStyle.Render(fmt.Sprintf("%d %s", r.preset, r.name)),
			cellStyle.Render(fmt.Sprintf("%d", r.size)),
			cellStyle.Render(fmt.Sprintf("%d", r.stats.generations)),
			cellStyle.Render(fmt.Sprintf("%d", r.stats.crystalCells)),
			cellStyle.Render(fmt.Sprintf("%d", r.stats.extent)),
			cellStyle.Render(fmt.Sprintf("%.1f", r.stats.vapour)),
			cellStyle.Render(fmt.Sprintf("%.1f", r.stats.boundary)),
			cellStyle.Render(fmt.Sprintf("%.1f", r.stats.crystal)),
			cellStyle.Render(r.elapsed.Round(time.Millisecond).String()),
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	b.WriteString(boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...)))
	b.WriteString("\n")

	for _, r := range results {
		if chart := growthChart(r); chart != "" {
			b.WriteString(graphStyle.Render(chart))
			b.WriteString("\n")
		}
	}
	return b.String()
}

// growthChart plots crystal cells per tick. Histories shorter than two
// points are skipped.
func growthChart(r result) string {
	if len(r.history) < 2 {
		return ""
	}
	return asciigraph.Plot(r.history,
		asciigraph.Height(6),
		asciigraph.Width(60),
		asciigraph.Caption(fmt.Sprintf("%s: crystal cells per tick", r.name)),
	)
}
