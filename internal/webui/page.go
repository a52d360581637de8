// Package webui renders the meter as a server-side HTML page.
package webui

import (
	_ "embed"
	"html/template"
	"io"

	"github.com/5w1tchy/pwmeter/internal/presenter"
)

//go:embed meter.html
var meterHTML string

var pageTmpl = template.Must(template.New("meter").Parse(meterHTML))

// ContentSecurityPolicy allows the inline style block and the bar width attribute.
const ContentSecurityPolicy = "default-src 'self'; style-src 'self' 'unsafe-inline'; form-action 'self'"

// Bar is the progress bar. ARIA min/max are fixed by the template.
type Bar struct {
	Class    string
	Width    int
	ValueNow int
}

func (b *Bar) SetLevel(class string, percent int) {
	b.Class = class
	b.Width = percent
	b.ValueNow = percent
}

type Text struct{ Value string }

func (t *Text) SetText(s string) { t.Value = s }

type List struct{ Items []string }

func (l *List) SetItems(items []string) {
	l.Items = append(l.Items[:0], items...)
}

// Field is the password input.
type Field struct {
	Value  string
	Masked bool
}

func (f *Field) SetMasked(m bool) { f.Masked = m }

// Type is the input type attribute for the current visibility.
func (f *Field) Type() string {
	if f.Masked {
		return "password"
	}
	return "text"
}

type Button struct {
	Label   string
	Pressed bool
}

func (b *Button) SetText(s string)  { b.Label = s }
func (b *Button) SetPressed(p bool) { b.Pressed = p }

// Page holds every widget of the meter page.
type Page struct {
	Password Field
	Toggle   Button
	Bar      Bar
	Strength Text
	Entropy  Text
	Len      Text
	Feedback List
}

// NewPage returns a page in its initial state: empty, masked, bar at zero.
func NewPage() *Page {
	p := &Page{}
	p.Binding().Reset()
	p.Visibility()
	return p
}

// Binding exposes the page widgets as presenter output slots.
func (p *Page) Binding() presenter.Binding {
	return presenter.Binding{
		Bar:         &p.Bar,
		Label:       &p.Strength,
		Entropy:     &p.Entropy,
		Length:      &p.Len,
		Suggestions: &p.Feedback,
	}
}

// Visibility binds the password field and toggle button, starting masked.
func (p *Page) Visibility() *presenter.Visibility {
	return presenter.NewVisibility(&p.Password, &p.Toggle)
}

// Render writes the page as HTML. Every widget value is escaped.
func Render(w io.Writer, p *Page) error {
	return pageTmpl.Execute(w, p)
}
