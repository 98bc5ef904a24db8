package screens

import (
	"context"
	"errors"
	"fmt"

	"github.com/TomoakiAbebe/rac-tourist/internal/application"
	"github.com/TomoakiAbebe/rac-tourist/internal/domain"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Interview is the part of the interview service the play program drives.
type Interview interface {
	CurrentScreen() application.Screen
	InterviewView() (application.InterviewView, error)
	PlanView() (application.PlanView, error)
	ResultView() (application.ResultView, error)
	Start(ctx context.Context) (domain.Session, error)
	SelectVenue(ctx context.Context, id domain.VenueID) error
	GoBack(ctx context.Context) error
	Restart(ctx context.Context) error
}

// Opener loads the catalog and opens or resumes the session.
type Opener func(ctx context.Context) (Interview, application.OpenOutcome, error)

type openedMsg struct {
	interview Interview
	outcome   application.OpenOutcome
	err       error
}

// PlayModel is the interactive bubbletea program behind `rac play`.
type PlayModel struct {
	ctx       context.Context
	open      Opener
	interview Interview

	spinner  spinner.Model
	progress progress.Model
	styles   styles

	loading    bool
	cursor     int
	showResult bool
	status     string
	err        error
}

func NewPlayModel(ctx context.Context, open Opener) PlayModel {
	return PlayModel{
		ctx:  ctx,
		open: open,
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
		),
		progress: newProgressBar(false),
		styles:   newStyles(false),
		loading:  true,
	}
}

// Err is the error that ended the program, if any.
func (m PlayModel) Err() error {
	return m.err
}

func (m PlayModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		interview, outcome, err := m.open(m.ctx)
		return openedMsg{interview: interview, outcome: outcome, err: err}
	})
}

func (m PlayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case openedMsg:
		m.loading = false
		if msg.err != nil && msg.interview == nil {
			m.err = msg.err
			return m, tea.Quit
		}
		m.interview = msg.interview
		m.status = openStatus(msg.outcome, msg.err)
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg.String())
	default:
		return m, nil
	}
}

func openStatus(outcome application.OpenOutcome, err error) string {
	if err != nil {
		return describeError(err)
	}
	switch outcome {
	case application.OpenResumed:
		return "Resumed your previous session."
	case application.OpenRecovered:
		return "Saved progress was unreadable, so a new session was started."
	default:
		return ""
	}
}

func (m PlayModel) handleKey(key string) (tea.Model, tea.Cmd) {
	if key == "ctrl+c" || key == "q" {
		return m, tea.Quit
	}
	if m.loading || m.interview == nil {
		return m, nil
	}

	m.status = ""
	if key == "r" {
		m.restart()
		return m, nil
	}

	switch m.interview.CurrentScreen() {
	case application.ScreenHome:
		if key == "enter" || key == "s" {
			m.cursor = 0
			if _, err := m.interview.Start(m.ctx); err != nil {
				m.status = describeError(err)
			}
		}
	case application.ScreenInterview:
		m.handleInterviewKey(key)
	case application.ScreenPlan:
		switch {
		case m.showResult && isBackKey(key):
			m.showResult = false
		case !m.showResult && key == "enter":
			m.showResult = true
		case !m.showResult && isBackKey(key):
			m.goBack()
		}
	}

	return m, nil
}

func (m *PlayModel) handleInterviewKey(key string) {
	view, err := m.interview.InterviewView()
	if err != nil {
		m.status = describeError(err)
		return
	}

	switch {
	case key == "up" || key == "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case key == "down" || key == "j":
		if m.cursor < len(view.Venues)-1 {
			m.cursor++
		}
	case key == "enter":
		if m.cursor >= len(view.Venues) {
			return
		}
		if err := m.interview.SelectVenue(m.ctx, view.Venues[m.cursor].ID); err != nil {
			m.status = describeError(err)
		}
		m.cursor = 0
	case isBackKey(key):
		m.goBack()
	}
}

func (m *PlayModel) goBack() {
	m.cursor = 0
	if err := m.interview.GoBack(m.ctx); err != nil {
		m.status = describeError(err)
	}
}

func (m *PlayModel) restart() {
	m.cursor = 0
	m.showResult = false
	if err := m.interview.Restart(m.ctx); err != nil {
		m.status = describeError(err)
		return
	}
	if _, err := m.interview.Start(m.ctx); err != nil {
		m.status = describeError(err)
	}
}

func isBackKey(key string) bool {
	return key == "b" || key == "left" || key == "backspace"
}

func describeError(err error) string {
	switch {
	case errors.Is(err, domain.ErrAtStart):
		return "Already at the first question."
	case errors.Is(err, domain.ErrPersistenceWrite):
		return "Progress could not be saved; continuing in memory."
	case errors.Is(err, domain.ErrEmptyCatalog):
		return "The catalog has no customers."
	default:
		return err.Error()
	}
}

func (m PlayModel) View() string {
	if m.loading {
		return fmt.Sprintf("%s Loading catalog...\n", m.spinner.View())
	}
	if m.interview == nil {
		return ""
	}

	body, help := m.body()
	parts := []string{body}
	if m.status != "" {
		parts = append(parts, m.styles.section.Render(m.styles.status.Render(m.status)))
	}
	parts = append(parts, m.styles.section.Render(m.styles.help.Render(help)))

	return lipgloss.JoinVertical(lipgloss.Left, parts...) + "\n"
}

func (m PlayModel) body() (string, string) {
	switch m.interview.CurrentScreen() {
	case application.ScreenInterview:
		view, err := m.interview.InterviewView()
		if err != nil {
			return describeError(err), "q quit"
		}
		return renderInterview(view, m.cursor, m.progress, m.styles),
			"up/down move | enter choose | b back | r restart | q quit"
	case application.ScreenPlan:
		if m.showResult {
			view, err := m.interview.ResultView()
			if err != nil {
				return describeError(err), "q quit"
			}
			return renderResult(view, m.styles), "b back to plan | r play again | q quit"
		}
		view, err := m.interview.PlanView()
		if err != nil {
			return describeError(err), "q quit"
		}
		return renderPlan(view, m.styles), "enter see result | b back | r restart | q quit"
	default:
		return m.styles.title.Render("Trip planning interview"), "enter start | q quit"
	}
}
