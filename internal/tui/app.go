// Package tui provides the interactive terminal view of today's tasks.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fentz26/ttrack/internal/model"
	"github.com/fentz26/ttrack/internal/store"
	"github.com/fentz26/ttrack/internal/timeutil"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#10B981")).
			Padding(0, 1)

	groupStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#6366F1"))

	activeStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#10B981"))

	endedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EF4444"))

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EF4444"))

	inputBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#6366F1")).
			Padding(0, 1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280")).
			Italic(true)
)

// App is the interactive today view: the day's grouped tasks above a
// command bar, refreshed every second so elapsed times stay live.
type App struct {
	days  *store.Days
	tasks *store.Tasks
	clock model.Clock

	input   textinput.Model
	day     model.DayWithTasks
	message string
	width   int
	height  int
}

// New creates the TUI application on the given repositories.
func New(days *store.Days, tasks *store.Tasks, clock model.Clock) *App {
	ti := textinput.New()
	ti.Placeholder = "start <description> | rename <description> | stop"
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 60

	return &App{
		days:  days,
		tasks: tasks,
		clock: clock,
		input: ti,
	}
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

type dayLoadedMsg struct {
	day model.DayWithTasks
}

type errMsg struct {
	err error
}

type tickMsg time.Time

func (a *App) Init() tea.Cmd {
	return tea.Batch(a.refresh, tick())
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (a *App) refresh() tea.Msg {
	today, err := a.days.Today()
	if err != nil {
		return errMsg{err}
	}
	day, err := a.tasks.DayWithTasks(today)
	if err != nil {
		return errMsg{err}
	}
	return dayLoadedMsg{day}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case dayLoadedMsg:
		a.day = msg.day
		return a, nil

	case errMsg:
		a.message = msg.err.Error()
		return a, nil

	case tickMsg:
		// A re-render per second keeps the running delta moving.
		return a, tick()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return a, tea.Quit
		case "enter":
			cmd := a.execute(strings.TrimSpace(a.input.Value()))
			a.input.SetValue("")
			return a, cmd
		}
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

// execute runs one command-bar line against the repositories.
func (a *App) execute(line string) tea.Cmd {
	if line == "" {
		return nil
	}
	a.message = ""

	today, err := a.days.Today()
	if err != nil {
		a.message = err.Error()
		return nil
	}

	verb, rest, _ := strings.Cut(line, " ")
	switch verb {
	case "start":
		_, err = a.tasks.Start(today, rest)
	case "rename":
		_, err = a.tasks.RenameCurrent(today, rest)
	case "stop":
		_, err = a.tasks.Stop(today)
	default:
		err = fmt.Errorf("unknown command %q", verb)
	}
	if err != nil {
		a.message = err.Error()
		return nil
	}
	return a.refresh
}

func (a *App) View() string {
	now := a.clock.Now()
	var b strings.Builder

	total := timeutil.FormatDelta(a.day.TotalDelta(now))
	b.WriteString(titleStyle.Render(fmt.Sprintf("ttrack %s (%s)", a.day.Day.DateString(), total)))
	b.WriteString("\n\n")

	if a.day.IsEmpty() {
		b.WriteString(mutedStyle.Render("  no tasks recorded"))
		b.WriteString("\n")
	}
	for _, group := range a.day.TaskGroups(now) {
		b.WriteString(fmt.Sprintf("  %s %s\n",
			groupStyle.Render(group.Description),
			mutedStyle.Render("("+timeutil.FormatDelta(group.Delta(now))+")"),
		))
		for _, task := range group.Tasks {
			b.WriteString("  " + taskLine(now, task) + "\n")
		}
	}
	b.WriteString("\n")

	if a.message != "" {
		b.WriteString(errorStyle.Render(a.message))
		b.WriteString("\n")
	}
	b.WriteString(inputBoxStyle.Render(a.input.View()))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter: run command, esc: quit"))
	return b.String()
}

func taskLine(now time.Time, task model.Task) string {
	arrow := endedStyle.Render("->")
	if task.IsActive() {
		arrow = activeStyle.Render("->")
	}
	elapsed := "running ..."
	if delta, ok := task.Delta(now); ok {
		elapsed = timeutil.FormatDelta(delta)
	}
	end := "..."
	if task.End != nil {
		end = task.End.Short()
	}
	span := mutedStyle.Render(fmt.Sprintf("(%s - %s)", task.Start.Short(), end))
	return fmt.Sprintf(" %s %s %s", arrow, elapsed, span)
}
