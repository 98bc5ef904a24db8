package screens

import (
	"fmt"
	"strings"

	"github.com/TomoakiAbebe/rac-tourist/internal/application"
	"github.com/TomoakiAbebe/rac-tourist/internal/domain"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

const progressWidth = 30

// Options controls one-shot rendering.
type Options struct {
	// Plain drops colours and text attributes.
	Plain bool
}

func newProgressBar(plain bool) progress.Model {
	if plain {
		return progress.New(progress.WithWidth(progressWidth), progress.WithFillCharacters('=', '-'))
	}
	return progress.New(progress.WithWidth(progressWidth), progress.WithSolidFill("39"))
}

// renderInterview draws the question screen. cursor < 0 hides the cursor.
func renderInterview(view application.InterviewView, cursor int, bar progress.Model, s styles) string {
	lines := []string{
		s.title.Render(view.Title),
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			s.header.Render(fmt.Sprintf("step %d/%d ", view.Step, view.TotalSteps)),
			bar.ViewAs(view.Progress),
		),
		s.section.Render(renderHint(view.Hint, s)),
	}

	if len(view.Venues) == 0 {
		lines = append(lines, s.section.Render(s.empty.Render("No venues in this category.")))
	}
	for i, venue := range view.Venues {
		lines = append(lines, s.section.Render(renderVenue(venue, i == cursor, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderHint(hint application.HintPanel, s styles) string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		s.customer.Render(hint.CustomerName),
		s.persona.Render(hint.PersonaText),
		s.header.Render("About the "+strings.ToLower(hint.CategoryLabel)+":"),
		s.hint.Render(hint.Hint),
	)
}

func renderVenue(venue domain.Venue, selected bool, s styles) string {
	marker := "  "
	if selected {
		marker = s.cursor.Render("> ")
	}

	title := marker + s.venue.Render(venue.Name) + " " + s.venueID.Render("["+string(venue.ID)+"]")
	parts := []string{title}
	if venue.Description != "" {
		parts = append(parts, "  "+venue.Description)
	}
	parts = append(parts, "  "+venueMeta(venue, s))
	if selected && venue.Detail != "" {
		parts = append(parts, "  "+s.detail.Render(venue.Detail))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func venueMeta(venue domain.Venue, s styles) string {
	meta := make([]string, 0, 4)
	if venue.AgeTarget != "" {
		meta = append(meta, "for "+venue.AgeTarget)
	}
	if venue.DurationMinutes > 0 {
		meta = append(meta, fmt.Sprintf("%d min", venue.DurationMinutes))
	}
	meta = append(meta, formatCost(venue))

	line := s.meta.Render(strings.Join(meta, " | "))
	if venue.RainSafe {
		line += " " + s.rainOK.Render("rain OK")
	}
	return line
}

func formatCost(venue domain.Venue) string {
	if venue.IsFree() {
		return "free"
	}
	return fmt.Sprintf("%d yen", venue.CostAmount)
}

func renderPlan(view application.PlanView, s styles) string {
	lines := []string{
		s.title.Render("Your plan for " + view.CustomerName),
	}

	if len(view.Entries) == 0 {
		lines = append(lines, s.empty.Render("Nothing selected yet."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, entry := range view.Entries {
		row := lipgloss.JoinHorizontal(
			lipgloss.Top,
			s.slot.Render(fmt.Sprintf("%-12s", entry.Slot)),
			s.header.Render(fmt.Sprintf("%-22s", entry.Category.Label())),
			s.venue.Render(entry.Venue.Name),
		)
		lines = append(lines, s.section.Render(lipgloss.JoinVertical(lipgloss.Left, row, "  "+venueMeta(entry.Venue, s))))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderResult(view application.ResultView, s styles) string {
	report := view.Report
	lines := []string{
		s.title.Render(view.Headline),
		s.score.Render(fmt.Sprintf("Score: %d / 100", report.Score)) + " " +
			s.header.Render(fmt.Sprintf("(correct %d/%d)", report.CorrectCount, report.TotalCategories)),
		s.section.Render(view.Banner),
	}

	feedback := make([]string, 0, len(view.Lines))
	for _, line := range view.Lines {
		feedback = append(feedback, feedbackLine(line, s))
	}
	lines = append(lines, s.section.Render(lipgloss.JoinVertical(lipgloss.Left, feedback...)))

	if len(report.AllTags) > 0 {
		lines = append(lines, s.section.Render(s.meta.Render("tags: "+strings.Join(report.AllTags, ", "))))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func feedbackLine(line application.FeedbackLine, s styles) string {
	if line.Correct {
		return s.correct.Render("[ok] ") + fmt.Sprintf("%s: %s", line.CategoryLabel, line.SelectedName)
	}
	return s.wrong.Render("[x]  ") + fmt.Sprintf("%s: %s (answer: %s)", line.CategoryLabel, line.SelectedName, line.CorrectName)
}
