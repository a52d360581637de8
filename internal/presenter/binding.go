package presenter

import "github.com/5w1tchy/pwmeter/internal/strength"

// Meter is a progress-bar-like widget with an accessible value.
type Meter interface {
	// SetLevel replaces any previous strength class with class and sets both
	// the width and the accessible current value to percent.
	SetLevel(class string, percent int)
}

type Text interface {
	SetText(string)
}

type List interface {
	SetItems([]string)
}

// Binding enumerates the output slots of a meter. Nil slots are skipped.
type Binding struct {
	Bar         Meter
	Label       Text
	Entropy     Text
	Length      Text
	Suggestions List
}

// Reset puts the bar in its page-load state.
func (b Binding) Reset() {
	if b.Bar != nil {
		b.Bar.SetLevel("", 0)
	}
}

// Apply pushes st into every bound slot.
func (b Binding) Apply(st UIState) {
	if b.Bar != nil {
		b.Bar.SetLevel(st.BarClass, st.BarWidth)
	}
	if b.Label != nil {
		b.Label.SetText(st.Label + " " + st.Emoji)
	}
	if b.Entropy != nil {
		b.Entropy.SetText(st.EntropyText)
	}
	if b.Length != nil {
		b.Length.SetText(st.LengthText)
	}
	if b.Suggestions != nil {
		b.Suggestions.SetItems(st.Suggestions)
	}
}

// Update runs one full analyze, present, apply pass for pwd.
func (b Binding) Update(pwd string) UIState {
	st := Present(strength.Analyze(pwd))
	b.Apply(st)
	return st
}
