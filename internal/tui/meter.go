// Package tui is an interactive terminal password meter.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/5w1tchy/pwmeter/internal/presenter"
)

const barWidth = 40

var accentColor = lipgloss.Color("#6551f3")

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(accentColor)
	buttonStyle = lipgloss.NewStyle().Foreground(accentColor)
	pressedBtn  = lipgloss.NewStyle().Reverse(true).Foreground(accentColor)
	metaStyle   = lipgloss.NewStyle().Faint(true)
	helpStyle   = lipgloss.NewStyle().Faint(true)
)

type meterModel struct {
	input    textinput.Model
	progress progress.Model

	bar      barWidget
	label    textWidget
	entropy  textWidget
	length   textWidget
	feedback listWidget
	toggle   buttonWidget

	binding    presenter.Binding
	visibility *presenter.Visibility
	quitting   bool
}

func newMeterModel() *meterModel {
	m := &meterModel{
		input:    textinput.New(),
		progress: progress.New(progress.WithDefaultGradient(), progress.WithWidth(barWidth), progress.WithoutPercentage()),
	}
	m.input.Prompt = "Password: "
	m.input.EchoCharacter = '•'
	m.input.Focus()

	m.binding = presenter.Binding{
		Bar:         &m.bar,
		Label:       &m.label,
		Entropy:     &m.entropy,
		Length:      &m.length,
		Suggestions: &m.feedback,
	}
	m.binding.Reset()
	m.visibility = presenter.NewVisibility(fieldWidget{input: &m.input}, &m.toggle)
	return m
}

func (m *meterModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *meterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyTab:
			m.visibility.Toggle()
			return m, nil
		}
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if v := m.input.Value(); v != before {
		m.binding.Update(v)
	}
	return m, cmd
}

func (m *meterModel) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Password strength"))
	sb.WriteString("\n\n")

	btn := buttonStyle
	if m.toggle.pressed {
		btn = pressedBtn
	}
	sb.WriteString(m.input.View())
	sb.WriteString("  ")
	sb.WriteString(btn.Render("[" + m.toggle.label + "]"))
	sb.WriteString("\n\n")

	sb.WriteString(m.progress.ViewAs(float64(m.bar.percent) / 100))
	sb.WriteString(fmt.Sprintf(" %3d%%\n", m.bar.percent))
	if m.label.text != "" {
		sb.WriteString(classStyle(m.bar.class).Render(m.label.text))
		sb.WriteString("\n")
	}
	if m.entropy.text != "" {
		sb.WriteString(metaStyle.Render(m.entropy.text + "  " + m.length.text))
		sb.WriteString("\n")
	}
	if len(m.feedback.items) > 0 {
		sb.WriteString("\n")
		for _, s := range m.feedback.items {
			sb.WriteString("  • " + s + "\n")
		}
	}

	sb.WriteString("\n")
	sb.WriteString(helpStyle.Render("tab: show/hide • esc: quit"))
	sb.WriteString("\n")
	return sb.String()
}

// Run starts the interactive meter on the terminal.
func Run() error {
	_, err := tea.NewProgram(newMeterModel()).Run()
	return err
}
