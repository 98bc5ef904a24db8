// Package screens renders interview, plan and result screens for the
// terminal, either once or as the interactive play program.
package screens

import (
	"errors"
	"io"

	"github.com/TomoakiAbebe/rac-tourist/internal/application"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUnexpectedRenderModel = errors.New("unexpected final bubbletea model type")

type renderReadyMsg struct{}

type model struct {
	draw   func() string
	output string
}

func (m model) Init() tea.Cmd {
	return func() tea.Msg {
		return renderReadyMsg{}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case renderReadyMsg:
		m.output = m.draw()
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m model) View() string {
	return m.output
}

func render(draw func() string) (string, error) {
	p := tea.NewProgram(
		model{draw: draw},
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	rendered, ok := finalModel.(model)
	if !ok {
		return "", ErrUnexpectedRenderModel
	}

	return rendered.View(), nil
}

func RenderInterview(view application.InterviewView, opts Options) (string, error) {
	return render(func() string {
		return renderInterview(view, -1, newProgressBar(opts.Plain), newStyles(opts.Plain))
	})
}

func RenderPlan(view application.PlanView, opts Options) (string, error) {
	return render(func() string {
		return renderPlan(view, newStyles(opts.Plain))
	})
}

func RenderResult(view application.ResultView, opts Options) (string, error) {
	return render(func() string {
		return renderResult(view, newStyles(opts.Plain))
	})
}
