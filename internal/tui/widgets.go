package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
)

// Terminal implementations of the presenter widget slots.

type barWidget struct {
	class   string
	percent int
}

func (b *barWidget) SetLevel(class string, percent int) {
	b.class, b.percent = class, percent
}

type textWidget struct{ text string }

func (t *textWidget) SetText(s string) { t.text = s }

type listWidget struct{ items []string }

func (l *listWidget) SetItems(items []string) {
	l.items = append(l.items[:0], items...)
}

// fieldWidget switches the echo mode of the password input.
type fieldWidget struct{ input *textinput.Model }

func (f fieldWidget) SetMasked(masked bool) {
	if masked {
		f.input.EchoMode = textinput.EchoPassword
	} else {
		f.input.EchoMode = textinput.EchoNormal
	}
}

type buttonWidget struct {
	label   string
	pressed bool
}

func (b *buttonWidget) SetText(s string)  { b.label = s }
func (b *buttonWidget) SetPressed(p bool) { b.pressed = p }

var classColors = map[string]lipgloss.Color{
	"very-weak": lipgloss.Color("#d9534f"),
	"weak":      lipgloss.Color("#f0ad4e"),
	"good":      lipgloss.Color("#5bc0de"),
	"strong":    lipgloss.Color("#5cb85c"),
}

func classStyle(class string) lipgloss.Style {
	c, ok := classColors[class]
	if !ok {
		return lipgloss.NewStyle().Faint(true)
	}
	return lipgloss.NewStyle().Bold(true).Foreground(c)
}
