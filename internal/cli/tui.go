package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/mwiater/gostddev/internal/sample"
	"github.com/mwiater/gostddev/internal/stats"
)

// ErrAborted is returned when the user leaves the terminal UI before the
// sample is complete.
var ErrAborted = errors.New("session aborted")

var (
	headerStyle = lipgloss.NewStyle().Background(lipgloss.Color("62")).Foreground(lipgloss.Color("230")).Padding(0, 1)
	promptStyle = lipgloss.NewStyle().Faint(true)
	valueStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	helpStyle   = lipgloss.NewStyle().Faint(true)
)

// model is the Bubble Tea model for entering a sample one value at a time.
type model struct {
	messages sample.Messages
	input    textinput.Model
	builder  sample.Builder

	invalid bool // last submission failed to parse
	done    bool
	aborted bool

	sample sample.Sample
	result stats.Result
	err    error

	width, height int
}

func newModel(msgs sample.Messages) *model {
	ti := textinput.New()
	ti.Prompt = msgs.PromptFor(1)
	ti.Placeholder = "0.0"
	ti.CharLimit = 64
	ti.Focus()

	return &model{
		messages: msgs,
		input:    ti,
	}
}

func (m *model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.aborted = true
			return m, tea.Quit
		case tea.KeyEnter:
			return m.submit()
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.input.Width = max(msg.Width-lipgloss.Width(m.input.Prompt)-4, 1)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit validates the current input line. Invalid text is dropped and the
// same position is asked for again.
func (m *model) submit() (tea.Model, tea.Cmd) {
	pos := m.builder.Next()
	text := m.input.Value()
	m.input.Reset()

	v, err := sample.ParseValue(text)
	if err != nil {
		logrus.WithFields(logrus.Fields{"position": pos, "input": text}).Debug("rejected input")
		m.invalid = true
		return m, nil
	}
	m.invalid = false
	if err := m.builder.Append(v); err != nil {
		m.err = err
		return m, tea.Quit
	}
	logrus.WithFields(logrus.Fields{"position": pos, "value": v}).Debug("accepted value")

	if !m.builder.Full() {
		m.input.Prompt = m.messages.PromptFor(m.builder.Next())
		return m, nil
	}

	s, err := m.builder.Sample()
	if err == nil {
		m.result, err = stats.Compute(s.Values())
	}
	if err != nil {
		m.err = err
		return m, tea.Quit
	}
	m.sample = s
	m.done = true
	return m, tea.Quit
}

func (m *model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(m.messages.Header) + "\n\n")
	for i, v := range m.builder.Values() {
		b.WriteString(fmt.Sprintf("  %s%s\n", promptStyle.Render(m.messages.PromptFor(i+1)), valueStyle.Render(sample.FormatValue(v))))
	}
	if m.done || m.aborted {
		return b.String()
	}

	b.WriteString("  " + m.input.View() + "\n")
	if m.invalid {
		b.WriteString("  " + errorStyle.Render(m.messages.Invalid) + "\n")
	}
	b.WriteString(helpStyle.Render(fmt.Sprintf("  %d/%d  (enter to submit, esc to quit)", m.builder.Len(), sample.Size)))
	return b.String()
}

// runTUI collects the sample through the terminal UI. The report itself is
// printed by the caller once the program has released the terminal.
func runTUI(ctx context.Context, in io.Reader, out io.Writer, msgs sample.Messages) (sample.Sample, stats.Result, error) {
	m := newModel(msgs)
	p := tea.NewProgram(m, tea.WithContext(ctx), tea.WithInput(in), tea.WithOutput(out))

	final, err := p.Run()
	if err != nil {
		return sample.Sample{}, stats.Result{}, errors.Wrap(err, "running terminal UI")
	}
	fm, ok := final.(*model)
	if !ok {
		return sample.Sample{}, stats.Result{}, errors.Errorf("unexpected model type %T", final)
	}
	if fm.err != nil {
		return sample.Sample{}, stats.Result{}, fm.err
	}
	if !fm.done {
		return sample.Sample{}, stats.Result{}, ErrAborted
	}
	return fm.sample, fm.result, nil
}
