package practice

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/camposb/preu/internal/catalog"
	prac "github.com/camposb/preu/internal/practice"
	"github.com/camposb/preu/internal/progress"
	"github.com/camposb/preu/internal/ui/theme"
)

func (s *PracticeScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Presiona una tecla para volver.", s.errMsg))
	}

	switch s.phase {
	case phasePickSubject:
		return s.renderSubjectPick(width)
	case phasePickMode:
		return s.renderModePick(width)
	case phaseQuestion:
		return s.renderQuestion(width)
	case phaseResults:
		return s.renderResults(width)
	}
	return ""
}

func (s *PracticeScreen) renderSubjectPick(width int) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render("¿Qué materia quieres practicar?"))
	b.WriteString("\n\n")

	for i, sub := range s.subjects {
		prefix := "    "
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			prefix = "  ▸ "
			style = style.Foreground(theme.Primary).Bold(true)
		}
		track := lipgloss.NewStyle().Foreground(theme.TextDim).Render("  " + strings.ToUpper(sub.Track))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(prefix+sub.Name)+track))
		b.WriteString("\n")
	}
	return b.String()
}

func (s *PracticeScreen) renderModePick(width int) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render(catalog.SubjectName(s.subjectID)))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render("Elige el tipo de sesión"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.modeMenu.View()))
	return b.String()
}

func (s *PracticeScreen) renderQuestion(width int) string {
	var b strings.Builder

	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render("  " + catalog.SubjectName(s.sess.SubjectID))

	counter := fmt.Sprintf("P %d/%d  ·  respondidas %d",
		s.sess.Current+1, len(s.sess.Questions), s.sess.AnsweredCount())
	if s.sess.TimeLimit > 0 {
		counter += "  ·  " + prac.FormatClock(prac.Remaining(s.sess, s.now))
	}
	infoRight := lipgloss.NewStyle().Foreground(theme.TextDim).Render(counter)

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}

	b.WriteString(infoLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	if s.timeUp {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Bold(true).
			Render("Tiempo cumplido. Presiona f para corregir."))
		b.WriteString("\n\n")
	}

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.mc.View()))

	if s.grading {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Corrigiendo..."))
	}

	return b.String()
}

func (s *PracticeScreen) renderResults(width int) string {
	res := s.result
	var b strings.Builder
	b.WriteString("\n")

	b.WriteString(theme.Title.Width(width).Render(fmt.Sprintf("Puntaje: %d%%", res.Attempt.ScorePct)))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render(
		fmt.Sprintf("%d de %d correctas", res.Correct, res.Total)))
	b.WriteString("\n\n")

	avg := progress.AverageScore(s.st.Data().Attempts)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Text).Render(progress.ScoreMessage(res.Attempt.ScorePct, avg))))
	b.WriteString("\n\n")

	for i, d := range res.Details {
		marker := lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
		if d.Correct {
			marker = lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
		}
		stem := d.Question.Stem
		if runes := []rune(stem); len(runes) > 60 {
			stem = string(runes[:57]) + "..."
		}
		line := fmt.Sprintf("%s  %d. %s", marker, i+1, stem)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Text).Render(line)))
		b.WriteString("\n")
		if !d.Correct && len(d.Question.Explanation) > 0 {
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.TextDim).Render("      "+d.Question.Explanation[0])))
			b.WriteString("\n")
		}
	}

	return b.String()
}
