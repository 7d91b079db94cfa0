package cmd

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// spinnerTask describes a blocking call shown behind a spinner. Done is left on screen
// when the call succeeds; an empty Done clears the line.
type spinnerTask struct {
	Label string
	Done  string
	Run   func(context.Context) error
}

type taskDoneMsg struct {
	err error
}

type taskSpinnerModel struct {
	spinner   spinner.Model
	task      spinnerTask
	run       tea.Cmd
	startedAt time.Time
	now       func() time.Time
	err       error
	done      bool
}

func newTaskSpinnerModel(task spinnerTask, run tea.Cmd, now func() time.Time) taskSpinnerModel {
	s := spinner.New(
		spinner.WithSpinner(spinner.MiniDot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("214"))),
	)

	return taskSpinnerModel{
		spinner:   s,
		task:      task,
		run:       run,
		startedAt: now(),
		now:       now,
	}
}

func (m taskSpinnerModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.run)
}

func (m taskSpinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case taskDoneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m taskSpinnerModel) View() string {
	if m.done {
		if m.err != nil || m.task.Done == "" {
			return ""
		}
		return fmt.Sprintf("%s (%s)\n", m.task.Done, m.elapsed())
	}

	return fmt.Sprintf("%s %s %s", m.spinner.View(), m.task.Label, lipgloss.NewStyle().Faint(true).Render(m.elapsed()))
}

func (m taskSpinnerModel) elapsed() string {
	return m.now().Sub(m.startedAt).Truncate(100 * time.Millisecond).String()
}

// runWithSpinner animates on output until task.Run returns and hands back its error.
func runWithSpinner(ctx context.Context, output io.Writer, task spinnerTask) error {
	runCmd := func() tea.Msg {
		return taskDoneMsg{err: task.Run(ctx)}
	}

	p := tea.NewProgram(
		newTaskSpinnerModel(task, runCmd, time.Now),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(taskSpinnerModel)
	if !ok {
		return fmt.Errorf("unexpected final spinner model type %T", finalModel)
	}

	return result.err
}
