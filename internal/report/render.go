// Package report renders mood insights for the terminal.
package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/thrivetrack/backend/internal/service"
)

const barWidth = 20

var (
	subtle = lipgloss.Color("#a6adc8")
	accent = lipgloss.Color("#b9a7f3")

	pane = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(accent).
		Padding(0, 1)

	title   = lipgloss.NewStyle().Foreground(accent).Bold(true)
	heading = lipgloss.NewStyle().Bold(true).MarginTop(1)
	muted   = lipgloss.NewStyle().Foreground(subtle)
	warm    = lipgloss.NewStyle().Foreground(lipgloss.Color("#f06292")).Bold(true)
)

// Render lays out a report as summary, trend, breakdown, insights and,
// when present, the support prompt
func Render(userID string, r *service.InsightsReport) string {
	var b strings.Builder

	b.WriteString(title.Render(fmt.Sprintf("Mood insights for %s (%s)", userID, r.Range)))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Entries: %d   Average: %s   Most common: %s\n",
		r.TotalEntries, r.AverageMood, r.MostCommonCategory))

	b.WriteString(heading.Render("Mood over time"))
	b.WriteString("\n")
	if len(r.TrendPoints) == 0 {
		b.WriteString(muted.Render("No check-ins in this period yet."))
		b.WriteString("\n")
	}
	for _, p := range r.TrendPoints {
		line := fmt.Sprintf("%-6s %s %.1f", p.Label, bar(p.Value/5), p.Value)
		if p.Interpolated {
			line = muted.Render(line + " (carried forward)")
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString(heading.Render("Breakdown"))
	b.WriteString("\n")
	for _, row := range r.BreakdownRows {
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(row.Color)).Render("●")
		b.WriteString(fmt.Sprintf("%s %-10s %3d  %3d%%\n", swatch, row.Label, row.Count, row.PercentOfTotal))
	}

	if len(r.Insights) > 0 {
		b.WriteString(heading.Render("Insights"))
		b.WriteString("\n")
		for _, s := range r.Insights {
			b.WriteString("• " + s + "\n")
		}
	}

	if r.SupportPrompt != nil {
		b.WriteString("\n")
		b.WriteString(warm.Render(r.SupportPrompt.Message))
		b.WriteString("\n")
		b.WriteString(muted.Render("Resources: " + r.SupportPrompt.ResourcesURL))
		b.WriteString("\n")
	}

	return pane.Render(strings.TrimRight(b.String(), "\n"))
}

func bar(fraction float64) string {
	n := int(fraction*barWidth + 0.5)
	if n < 0 {
		n = 0
	}
	if n > barWidth {
		n = barWidth
	}
	return strings.Repeat("█", n) + strings.Repeat("░", barWidth-n)
}
