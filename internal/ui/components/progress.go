package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathpath/internal/ui/theme"
)

const (
	filledCell = "█"
	emptyCell  = "░"
)

// ProgressBar displays a horizontal progress bar.
type ProgressBar struct {
	Label       string
	Percent     float64
	ShowPercent bool
	Width       int
}

// NewProgressBar creates a new progress bar.
func NewProgressBar(label string, percent float64, showPercent bool, width int) ProgressBar {
	return ProgressBar{
		Label:       label,
		Percent:     percent,
		ShowPercent: showPercent,
		Width:       width,
	}
}

// Cells returns the number of filled and empty cells for the bar body.
func (p ProgressBar) Cells() (filled, empty int) {
	barWidth := p.Width - lipgloss.Width(p.label()) - p.percentWidth()
	if barWidth < 4 {
		barWidth = 4
	}
	filled = int(float64(barWidth) * p.Percent)
	filled = min(max(filled, 0), barWidth)
	return filled, barWidth - filled
}

func (p ProgressBar) label() string {
	if p.Label == "" {
		return ""
	}
	return p.Label + "  "
}

func (p ProgressBar) percentWidth() int {
	if p.ShowPercent {
		return 6 // "  100%"
	}
	return 0
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	var b strings.Builder
	if l := p.label(); l != "" {
		b.WriteString(theme.Body.Render(l))
	}

	filled, empty := p.Cells()
	b.WriteString(theme.ProgressFilled.Render(strings.Repeat(filledCell, filled)))
	b.WriteString(theme.ProgressEmpty.Render(strings.Repeat(emptyCell, empty)))

	if p.ShowPercent {
		pct := int(p.Percent * 100)
		pct = min(max(pct, 0), 100)
		b.WriteString(theme.Hint.Render(fmt.Sprintf("  %d%%", pct)))
	}
	return b.String()
}
