package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	failStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	spinnerSeq  = []string{"|", "/", "-", "\\"}
	tickEvery   = 120 * time.Millisecond
	actionLimit = 2 * time.Minute
)

type actionMsg struct {
	details []string
	err     error
}

type tickMsg time.Time

type model struct {
	title   string
	started time.Time
	frame   int
	details []string
	err     error
	done    bool
	action  func(context.Context) ([]string, error)
	cancel  context.CancelFunc
	ctx     context.Context
}

func newModel(title string, action func(context.Context) ([]string, error)) model {
	ctx, cancel := context.WithTimeout(context.Background(), actionLimit)
	return model{title: title, started: time.Now(), action: action, ctx: ctx, cancel: cancel}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(m.runAction(), tick())
}

func (m model) runAction() tea.Cmd {
	return func() tea.Msg {
		details, err := m.action(m.ctx)
		return actionMsg{details: details, err: err}
	}
}

func tick() tea.Cmd {
	return tea.Tick(tickEvery, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.cancel()
			m.err = context.Canceled
			m.done = true
			return m, tea.Quit
		}
	case tickMsg:
		if m.done {
			return m, nil
		}
		m.frame++
		return m, tick()
	case actionMsg:
		m.cancel()
		m.details = msg.details
		m.err = msg.err
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

func (m model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n")
	elapsed := mutedStyle.Render(time.Since(m.started).Truncate(time.Millisecond).String())
	if !m.done {
		fmt.Fprintf(&b, "\n%s running %s\n", spinnerSeq[m.frame%len(spinnerSeq)], elapsed)
		return b.String()
	}
	if m.err != nil {
		fmt.Fprintf(&b, "%s: %v %s\n", failStyle.Render("FAILED"), m.err, elapsed)
	} else {
		fmt.Fprintf(&b, "%s %s\n", okStyle.Render("OK"), elapsed)
	}
	for _, d := range m.details {
		b.WriteString("- " + d + "\n")
	}
	return b.String()
}

// Run executes action behind a progress view and returns its result once the
// program exits.
func Run(title string, action func(context.Context) ([]string, error)) ([]string, error) {
	p := tea.NewProgram(newModel(title, action))
	final, err := p.Run()
	if err != nil {
		return nil, err
	}
	res := final.(model)
	return res.details, res.err
}
