package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/camposb/preu/internal/ui/theme"
)

// ScoreBar displays a horizontal 0-100 score bar, used for topic
// mastery and weekly goal progress.
type ScoreBar struct {
	Label     string
	Score     int // 0-100
	ShowScore bool
	Width     int
}

// NewScoreBar creates a new score bar.
func NewScoreBar(label string, score int, showScore bool, width int) ScoreBar {
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return ScoreBar{
		Label:     label,
		Score:     score,
		ShowScore: showScore,
		Width:     width,
	}
}

// View renders the bar.
func (p ScoreBar) View() string {
	var result string

	if p.Label != "" {
		result += lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label) + "  "
	}

	labelWidth := lipgloss.Width(result)
	scoreWidth := 0
	if p.ShowScore {
		scoreWidth = 6 // "  100%"
	}

	barWidth := p.Width - labelWidth - scoreWidth
	if barWidth < 4 {
		barWidth = 4
	}

	filled := barWidth * p.Score / 100
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}
	empty := barWidth - filled

	filledStr := lipgloss.NewStyle().
		Background(theme.Secondary).
		Render(strings.Repeat(" ", filled))

	emptyStr := lipgloss.NewStyle().
		Background(theme.Border).
		Render(strings.Repeat(" ", empty))

	result += filledStr + emptyStr

	if p.ShowScore {
		result += lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("  %d%%", p.Score))
	}

	return result
}
